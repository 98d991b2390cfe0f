package cli

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"intellecta-site/pkg/api"
	"intellecta-site/pkg/config"
	"intellecta-site/pkg/content"
	"intellecta-site/pkg/links"
	"intellecta-site/pkg/logger"
	"intellecta-site/pkg/metrics"
	"intellecta-site/pkg/middleware"
	"intellecta-site/pkg/services"
)

// app is the wired site shared by serve and export.
type app struct {
	cfg      *config.Config
	log      *logger.Logger
	site     *content.Site
	statuses *services.StatusStore
	limiter  *middleware.RateLimiter
	handlers *api.Handlers
	router   *gin.Engine
}

func newApp(cfg *config.Config, log *logger.Logger, reg *prometheus.Registry) (*app, error) {
	site, err := content.Load()
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}

	builder := links.Builder{Email: cfg.Contact.Email, WhatsAppNumber: cfg.Contact.WhatsAppNumber}
	statuses := services.NewStatusStore(cfg.Contact.StatusResetDelay)
	enquiries := services.NewEnquiryService(builder, statuses, log)

	handlers := api.NewHandlers(enquiries, site, metrics.NewSiteMetrics(reg), log, api.Options{
		BaseURL:      cfg.Site.BaseURL,
		Links:        builder,
		HeroInterval: cfg.Site.HeroInterval,
		ResetDelay:   cfg.Contact.StatusResetDelay,
	})

	limiter := middleware.NewRateLimiter(cfg.Limits.RatePerSecond, cfg.Limits.Burst)

	gin.SetMode(cfg.Server.Mode)
	router := api.NewRouter(handlers, api.RouterConfig{
		AllowedOrigins: cfg.CORS.Origins(),
		Limiter:        limiter,
		Log:            log,
		Gatherer:       reg,
	})

	return &app{
		cfg:      cfg,
		log:      log,
		site:     site,
		statuses: statuses,
		limiter:  limiter,
		handlers: handlers,
		router:   router,
	}, nil
}

func loadApp() (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	log, err := logger.New(logger.Options{Level: cfg.Log.Level, HumanReadable: cfg.Log.Human})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return newApp(cfg, log, prometheus.NewRegistry())
}
