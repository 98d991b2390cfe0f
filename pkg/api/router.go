package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"intellecta-site/pkg/logger"
	"intellecta-site/pkg/middleware"
	"intellecta-site/pkg/web"
)

// RouterConfig wires the middleware around the handlers.
type RouterConfig struct {
	AllowedOrigins []string
	Limiter        *middleware.RateLimiter
	Log            *logger.Logger
	// Gatherer backs /metrics; nil serves the default registry.
	Gatherer prometheus.Gatherer
}

// NewRouter registers every route of the site.
func NewRouter(h *Handlers, cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(cfg.Log))
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	router.GET("/", h.Page)
	router.GET("/health", h.HealthCheck)
	router.GET(heroStreamURL, h.HeroStream)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	router.StaticFS("/static", http.FS(web.StaticFS()))

	submit := router.Group("")
	if cfg.Limiter != nil {
		submit.Use(cfg.Limiter.Middleware())
	}
	submit.POST("/contact", h.SubmitContact)
	submit.POST(enquiriesURL, h.CreateEnquiry)
	submit.OPTIONS(enquiriesURL, func(c *gin.Context) { c.Status(http.StatusNoContent) })

	return router
}
