package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/user/moviecenter/internal/config"
	"github.com/user/moviecenter/internal/model"
	"github.com/user/moviecenter/internal/repository"
	"github.com/user/moviecenter/internal/service"
)

func main() {
	// 加载环境变量
	if err := godotenv.Load(); err != nil {
		log.Println("未找到 .env 文件，使用系统环境变量")
	}

	cfg := config.Load()
	inspect, err := parseFlags(cfg, os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("参数错误: %v", err)
	}

	if inspect != "" {
		if err := inspectPage(os.Stdout, inspect); err != nil {
			log.Fatalf("读取页面失败: %v", err)
		}
		return
	}

	gallery, err := service.NewGalleryService(cfg)
	if err != nil {
		log.Fatalf("初始化画廊失败: %v", err)
	}

	if err := run(cfg, gallery); err != nil {
		log.Fatalf("生成电影页面失败: %v", err)
	}
}

// parseFlags 解析命令行参数并覆盖 cfg，返回 -inspect 指定的页面路径
func parseFlags(cfg *config.Config, args []string) (inspect string, err error) {
	fs := flag.NewFlagSet("center", flag.ContinueOnError)
	var noBrowser bool
	fs.StringVar(&inspect, "inspect", "", "列出已生成页面中的电影，不重新生成")
	fs.StringVar(&cfg.CatalogPath, "catalog", cfg.CatalogPath, "电影清单文件（.json/.yaml），默认使用内置清单")
	fs.StringVar(&cfg.OutputPath, "out", cfg.OutputPath, "页面输出路径")
	fs.BoolVar(&noBrowser, "no-browser", false, "只生成页面，不打开浏览器")
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	if fs.NArg() > 0 {
		return "", fmt.Errorf("多余的参数: %v", fs.Args())
	}
	if noBrowser {
		cfg.OpenBrowser = false
	}
	return inspect, nil
}

// run 构造电影清单，按顺序交给渲染器，只调用一次
func run(cfg *config.Config, opener service.MoviesPageOpener) error {
	movies, err := loadMovies(cfg)
	if err != nil {
		return err
	}
	return opener.OpenMoviesPage(movies)
}

func loadMovies(cfg *config.Config) ([]model.Movie, error) {
	return repository.InitMovies(cfg.CatalogPath)
}

func inspectPage(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	tiles, err := service.ParseGalleryPage(f)
	if err != nil {
		return err
	}
	for _, t := range tiles {
		fmt.Fprintf(w, "%d\t%s\t%s\n", t.ID, t.Movie.Title, t.Movie.TrailerYouTubeURL)
	}
	fmt.Fprintf(w, "共 %d 部电影\n", len(tiles))
	return nil
}
