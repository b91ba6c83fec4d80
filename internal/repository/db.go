package repository

import (
	"fmt"
	"log"

	"github.com/user/moviecenter/internal/model"
)

// InitMovies 加载电影清单：配置了清单文件则读取文件，否则使用内置清单
func InitMovies(catalogPath string) ([]model.Movie, error) {
	if catalogPath == "" {
		return DefaultMovies()
	}
	movies, err := LoadMovies(catalogPath)
	if err != nil {
		return nil, fmt.Errorf("加载电影清单失败: %w", err)
	}
	log.Printf("[Repository] 已从 %s 加载 %d 部电影", catalogPath, len(movies))
	return movies, nil
}

// Repositories 仓库集合
type Repositories struct {
	Movie *MovieRepository
}

// NewRepositories 创建仓库集合
func NewRepositories(movies []model.Movie) *Repositories {
	return &Repositories{
		Movie: NewMovieRepository(movies),
	}
}
