package handler

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/user/moviecenter/internal/model"
	"github.com/user/moviecenter/internal/utils"
)

const (
	suggestLimit      = 5
	suggestMaxKeyword = 100 // 关键词最大长度（字符数）
)

// MovieList 全部电影（按清单顺序）
func (h *Handler) MovieList(c *gin.Context) {
	page := h.Gallery.BuildPage(h.Repos.Movie.All(), true)
	utils.Success(c, page.Movies)
}

// MovieDetail 单部电影
func (h *Handler) MovieDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.NotFound(c, "")
		return
	}
	m := h.Repos.Movie.FindByID(id)
	if m == nil {
		utils.NotFound(c, "")
		return
	}
	tile := model.MovieTile{ID: id, Movie: *m}
	h.fillTile(&tile)
	utils.Success(c, tile)
}

// MovieSuggest 按关键词联想电影
func (h *Handler) MovieSuggest(c *gin.Context) {
	keyword := strings.ToLower(strings.TrimSpace(c.Query("q")))
	if keyword == "" {
		utils.BadRequest(c, "缺少关键词")
		return
	}
	if utf8.RuneCountInString(keyword) > suggestMaxKeyword {
		utils.BadRequest(c, "关键词过长")
		return
	}

	if cached, ok := h.suggest.Get(keyword); ok {
		utils.Success(c, cached)
		return
	}

	tiles := h.Repos.Movie.Search(keyword, suggestLimit)
	if tiles == nil {
		tiles = []model.MovieTile{}
	}
	for i := range tiles {
		h.fillTile(&tiles[i])
	}
	h.suggest.Set(keyword, tiles)
	utils.Success(c, tiles)
}

// History 当前会话最近看过的电影
func (h *Handler) History(c *gin.Context) {
	tiles := []model.MovieTile{}
	for _, id := range historyIDs(c) {
		m := h.Repos.Movie.FindByID(id)
		if m == nil {
			continue
		}
		tile := model.MovieTile{ID: id, Movie: *m}
		h.fillTile(&tile)
		tiles = append(tiles, tile)
	}
	utils.Success(c, tiles)
}

func (h *Handler) fillTile(t *model.MovieTile) {
	t.TrailerYouTubeID = utils.YouTubeID(t.Movie.TrailerYouTubeURL)
	t.DetailURL = "/movie/" + strconv.Itoa(t.ID)
}
