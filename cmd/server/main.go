package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/user/moviecenter/internal/config"
	"github.com/user/moviecenter/internal/handler"
	"github.com/user/moviecenter/internal/repository"
	"github.com/user/moviecenter/internal/router"
	"github.com/user/moviecenter/internal/service"
	"golang.org/x/sync/errgroup"
)

// setup 加载电影清单并组装 gin 引擎
func setup(cfg *config.Config) (*gin.Engine, *repository.Repositories, error) {
	movies, err := repository.InitMovies(cfg.CatalogPath)
	if err != nil {
		return nil, nil, err
	}
	repos := repository.NewRepositories(movies)

	gallery, err := service.NewGalleryService(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("初始化画廊失败: %w", err)
	}

	h := handler.NewHandler(repos, cfg, gallery)
	return router.NewEngine(cfg, h), repos, nil
}

func main() {
	// 加载环境变量
	if err := godotenv.Load(); err != nil {
		log.Println("未找到 .env 文件，使用系统环境变量")
	}

	// 加载配置
	cfg := config.Load()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r, repos, err := setup(cfg)
	if err != nil {
		log.Fatalf("启动失败: %v", err)
	}

	srv := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("服务器启动于 http://localhost:%s （%d 部电影）", cfg.Port, repos.Movie.Count())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		// 收到信号或监听失败时关闭服务器
		<-gctx.Done()
		log.Println("正在关闭服务器...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Printf("服务器异常退出: %v", err)
		os.Exit(1)
	}
	log.Println("服务器已退出")
}
