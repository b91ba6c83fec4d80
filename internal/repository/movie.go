package repository

import (
	"strings"

	"github.com/user/moviecenter/internal/model"
)

// MovieRepository 只读的内存电影清单，按编写顺序保存
type MovieRepository struct {
	movies []model.Movie
}

func NewMovieRepository(movies []model.Movie) *MovieRepository {
	// 复制一份，调用方后续修改切片不影响仓库
	cp := make([]model.Movie, len(movies))
	copy(cp, movies)
	return &MovieRepository{movies: cp}
}

// All 返回全部电影（副本）
func (r *MovieRepository) All() []model.Movie {
	out := make([]model.Movie, len(r.movies))
	copy(out, r.movies)
	return out
}

// Count 电影数量
func (r *MovieRepository) Count() int {
	return len(r.movies)
}

// FindByID 根据清单位置查找电影，越界返回 nil
func (r *MovieRepository) FindByID(id int) *model.Movie {
	if id < 0 || id >= len(r.movies) {
		return nil
	}
	m := r.movies[id]
	return &m
}

// Search 按标题和简介做大小写不敏感的子串匹配，返回卡片（带 ID）
func (r *MovieRepository) Search(keyword string, limit int) []model.MovieTile {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return nil
	}
	var out []model.MovieTile
	for i, m := range r.movies {
		if limit > 0 && len(out) >= limit {
			break
		}
		if strings.Contains(strings.ToLower(m.Title), keyword) ||
			strings.Contains(strings.ToLower(m.Storyline), keyword) {
			out = append(out, model.MovieTile{ID: i, Movie: m})
		}
	}
	return out
}
