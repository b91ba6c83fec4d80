package router

import (
	"io/fs"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/multitemplate"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/user/moviecenter/internal/config"
	"github.com/user/moviecenter/internal/handler"
	"github.com/user/moviecenter/internal/middleware"
	"github.com/user/moviecenter/internal/utils"
	"github.com/user/moviecenter/web"
)

// NewEngine 组装 gin 引擎：中间件、Session、模板和路由
func NewEngine(cfg *config.Config, h *handler.Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// 启用 gzip，默认压缩级别
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// 匿名 Session，只保存浏览记录
	store := cookie.NewStore([]byte(cfg.AppSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("moviecenter", store))

	r.HTMLRender = LoadTemplates(web.Templates())

	r.Use(middleware.Logger())
	r.Use(middleware.Security())

	RegisterRoutes(r, h)
	return r
}

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ==================== 页面 ====================
	r.GET("/", h.Home)
	r.GET("/movie/:id", h.Movie)

	// ==================== API ====================
	api := r.Group("/api")
	{
		api.GET("/movies", h.MovieList)
		api.GET("/movies/suggest", h.MovieSuggest)
		api.GET("/movies/:id", h.MovieDetail)
		api.GET("/history", h.History)
	}

	r.NoRoute(h.NotFound)
}

// LoadTemplates 使用 multitemplate 加载模板，每个页面单独组装布局和局部模板
// 首页由 GalleryService 渲染并缓存，不在这里注册
func LoadTemplates(fsys fs.FS) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	pages := []string{"movie", "404"}
	for _, page := range pages {
		tmpl, err := web.ParsePage(fsys, page, utils.TemplateFuncs())
		if err != nil {
			panic(err)
		}
		r.Add(page+".html", tmpl)
	}

	return r
}
