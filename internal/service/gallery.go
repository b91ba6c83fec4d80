package service

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log"
	"path/filepath"
	"strconv"

	"github.com/user/moviecenter/internal/config"
	"github.com/user/moviecenter/internal/model"
	"github.com/user/moviecenter/internal/utils"
	"github.com/user/moviecenter/web"
)

// ErrNoMovies 渲染时没有任何电影
var ErrNoMovies = errors.New("没有可展示的电影")

// MoviesPageOpener 画廊渲染器入口：生成页面并打开
type MoviesPageOpener interface {
	OpenMoviesPage(movies []model.Movie) error
}

// GalleryService 电影画廊渲染服务
type GalleryService struct {
	cfg  *config.Config
	tmpl *template.Template
	open func(url string) error
}

// NewGalleryService 创建画廊服务，模板只解析一次
func NewGalleryService(cfg *config.Config) (*GalleryService, error) {
	tmpl, err := web.ParsePage(web.Templates(), "gallery", utils.TemplateFuncs())
	if err != nil {
		return nil, fmt.Errorf("解析画廊模板失败: %w", err)
	}
	return &GalleryService{
		cfg:  cfg,
		tmpl: tmpl,
		open: utils.OpenBrowser,
	}, nil
}

// SetOpener 替换打开页面的方式
func (s *GalleryService) SetOpener(open func(url string) error) {
	s.open = open
}

// BuildPage 组装页面数据，卡片顺序与传入顺序一致
func (s *GalleryService) BuildPage(movies []model.Movie, linkDetails bool) model.GalleryPage {
	tiles := make([]model.MovieTile, 0, len(movies))
	for i, m := range movies {
		id := utils.YouTubeID(m.TrailerYouTubeURL)
		if id == "" {
			log.Printf("[GalleryService] 无法从预告片链接提取 YouTube ID: %s (%s)", m.Title, m.TrailerYouTubeURL)
		}
		tile := model.MovieTile{ID: i, Movie: m, TrailerYouTubeID: id}
		if linkDetails {
			tile.DetailURL = "/movie/" + strconv.Itoa(i)
		}
		tiles = append(tiles, tile)
	}
	return model.GalleryPage{
		SiteName:    s.cfg.SiteName,
		Title:       s.cfg.SiteName,
		Movies:      tiles,
		LinkDetails: linkDetails,
	}
}

// Render 渲染静态画廊页面
func (s *GalleryService) Render(w io.Writer, movies []model.Movie) error {
	if len(movies) == 0 {
		return ErrNoMovies
	}
	return s.tmpl.Execute(w, s.BuildPage(movies, false))
}

// RenderBytes 渲染到内存，linkDetails 为 true 时卡片带详情页链接
func (s *GalleryService) RenderBytes(movies []model.Movie, linkDetails bool) ([]byte, error) {
	if len(movies) == 0 {
		return nil, ErrNoMovies
	}
	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, s.BuildPage(movies, linkDetails)); err != nil {
		return nil, fmt.Errorf("渲染画廊页面失败: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile 渲染并原子写入输出文件，返回绝对路径
func (s *GalleryService) WriteFile(movies []model.Movie) (string, error) {
	b, err := s.RenderBytes(movies, false)
	if err != nil {
		return "", err
	}
	path, err := filepath.Abs(s.cfg.OutputPath)
	if err != nil {
		return "", fmt.Errorf("解析输出路径失败: %w", err)
	}
	if err := utils.WriteFileAtomic(path, b); err != nil {
		return "", fmt.Errorf("写入画廊页面失败: %w", err)
	}
	log.Printf("[GalleryService] 已生成 %d 部电影的页面: %s", len(movies), path)
	return path, nil
}

// OpenMoviesPage 生成画廊页面并在浏览器中打开
func (s *GalleryService) OpenMoviesPage(movies []model.Movie) error {
	path, err := s.WriteFile(movies)
	if err != nil {
		return err
	}
	if !s.cfg.OpenBrowser {
		log.Println("[GalleryService] 已关闭自动打开浏览器")
		return nil
	}
	u, err := utils.FileURL(path)
	if err != nil {
		return fmt.Errorf("生成页面地址失败: %w", err)
	}
	if err := s.open(u); err != nil {
		return fmt.Errorf("打开浏览器失败: %w", err)
	}
	return nil
}
