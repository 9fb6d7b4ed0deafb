package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/xiebiao/bookapi/docs" // 注册swagger文档
	"github.com/xiebiao/bookapi/internal/infrastructure/config"
	"github.com/xiebiao/bookapi/internal/interface/http/handler"
	"github.com/xiebiao/bookapi/internal/interface/http/middleware"
)

// DocsIndexPath 文档首页
const DocsIndexPath = "/api-docs/index.html"

// New 创建并配置Gin引擎
// 中间件顺序：日志 → 指标 → panic恢复 → CORS → 限流
// 恢复放在日志和指标之后，panic产生的500才会被记录
func New(cfg *config.Config, bookHandler *handler.BookHandler) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()

	// 未注册的方法按400返回，而不是gin默认的404
	r.HandleMethodNotAllowed = true

	// 1. 全局中间件
	r.Use(middleware.Logger())
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics())
	}
	r.Use(
		middleware.Recovery(),
		middleware.CORS(cfg.CORS),
		middleware.RateLimit(cfg.Server.RateLimit, cfg.Server.RateLimitBurst),
	)
	r.NoMethod(handler.MethodNotAllowed)

	// 2. 系统路由
	r.GET("/health", bookHandler.Health)
	if cfg.Metrics.Enabled {
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	// 3. 文档路由
	if cfg.Docs.Enabled {
		r.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusFound, DocsIndexPath)
		})
		r.GET("/api-docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// 4. 图书路由
	books := r.Group("/api/books")
	{
		books.GET("", bookHandler.ListBooks)
		books.POST("", bookHandler.CreateBooks)

		books.GET("/:id", bookHandler.GetBook)
		books.PATCH("/:id", bookHandler.UpdateBook)
		books.PUT("/:id", bookHandler.ReplaceBook)
		books.DELETE("/:id", bookHandler.DeleteBook)
	}

	return r
}
