package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"cityreport-be/controllers"
	"cityreport-be/events"
	"cityreport-be/middlewares"
	"cityreport-be/repository"
	"cityreport-be/store"
)

// Deps is everything the HTTP layer needs. A nil Counter disables rate limiting.
type Deps struct {
	Log             zerolog.Logger
	Repo            repository.Repository
	Snapshot        store.Snapshot
	Publisher       events.Publisher
	Counter         middlewares.Counter
	DailyLimit      int
	RateLimitPrefix string
	JWTSecret       string
	CORSOrigin      string
	Registry        *prometheus.Registry
}

func NewRouter(d Deps) *gin.Engine {
	if d.Publisher == nil {
		d.Publisher = events.NopPublisher{}
	}
	if d.Registry == nil {
		d.Registry = prometheus.NewRegistry()
	}
	metrics := middlewares.NewMetrics(d.Registry)

	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger(d.Log), metrics.Middleware())
	r.Use(cors.New(corsConfig(d.CORSOrigin)))

	authMiddleware := middlewares.AuthMiddleware(d.JWTSecret, d.Log)
	submit := []gin.HandlerFunc{authMiddleware}
	if d.Counter != nil {
		submit = append(submit, middlewares.ComplaintRateLimiter(d.Counter, d.DailyLimit, d.RateLimitPrefix, d.Log))
	}

	ac := controllers.NewAuthController(d.Repo, d.JWTSecret, d.Log)
	AuthRoutes(r, ac)
	UserRoutes(r, ac, authMiddleware)
	ComplaintRoutes(r, controllers.NewComplaintController(d.Repo, d.Publisher, metrics, d.Log), submit...)
	CatalogRoutes(r, controllers.NewCatalogController(d.Snapshot))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{})))

	return r
}

func corsConfig(origin string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if origin == "" || origin == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = strings.Split(origin, ",")
	}
	return cfg
}
