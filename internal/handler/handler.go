package handler

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/user/moviecenter/internal/config"
	"github.com/user/moviecenter/internal/model"
	"github.com/user/moviecenter/internal/repository"
	"github.com/user/moviecenter/internal/service"
	"github.com/user/moviecenter/internal/utils"
)

const galleryCacheKey = "page:gallery"

// Handler HTTP 处理器
type Handler struct {
	Repos   *repository.Repositories
	Config  *config.Config
	Gallery *service.GalleryService

	pages   *utils.PageCache
	suggest *utils.SearchCache[[]model.MovieTile]
}

// NewHandler 创建处理器
func NewHandler(repos *repository.Repositories, cfg *config.Config, gallery *service.GalleryService) *Handler {
	return &Handler{
		Repos:   repos,
		Config:  cfg,
		Gallery: gallery,
		pages:   utils.NewPageCache(cfg.PageCache),
		suggest: utils.NewSearchCache[[]model.MovieTile](256, time.Hour),
	}
}

// RenderData 统一封装公共渲染数据
func (h *Handler) RenderData(c *gin.Context, data gin.H) gin.H {
	res := gin.H{
		"SiteName":    h.Config.SiteName,
		"SiteUrl":     h.Config.SiteUrl,
		"Title":       h.Config.SiteName,
		"Path":        c.Request.URL.Path,
		"LinkDetails": true,
	}
	for k, v := range data {
		res[k] = v
	}
	return res
}

// Home 首页：电影画廊
func (h *Handler) Home(c *gin.Context) {
	b, err := h.pages.GetOrRender(galleryCacheKey, func() ([]byte, error) {
		return h.Gallery.RenderBytes(h.Repos.Movie.All(), true)
	})
	if err != nil {
		log.Printf("[Handler] 渲染首页失败: %v", err)
		c.String(http.StatusInternalServerError, "页面渲染失败")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", b)
}

// Movie 电影详情页
func (h *Handler) Movie(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.NotFound(c)
		return
	}
	movie := h.Repos.Movie.FindByID(id)
	if movie == nil {
		h.NotFound(c)
		return
	}

	recordHistory(c, id)

	c.HTML(http.StatusOK, "movie.html", h.RenderData(c, gin.H{
		"Title":            movie.Title + " - " + h.Config.SiteName,
		"MovieID":          id,
		"Movie":            movie,
		"TrailerYouTubeID": utils.YouTubeID(movie.TrailerYouTubeURL),
	}))
}

// NotFound 404 页面
func (h *Handler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", h.RenderData(c, gin.H{
		"Title":   "404 - " + h.Config.SiteName,
		"Message": "页面不存在",
	}))
}
