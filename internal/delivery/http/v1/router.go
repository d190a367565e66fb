package v1

import (
	"fmt"
	"net/http"
	"time"

	"agroflow-backend/config"
	"agroflow-backend/internal/delivery/http/middleware"
	"agroflow-backend/internal/domain"
	"agroflow-backend/internal/usecase"
	"agroflow-backend/pkg/security"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	NewsUC    domain.NewsUsecase
	VideoUC   domain.VideoUsecase
	HealthUC  usecase.HealthUsecase
	Redis     *goredis.Client // nil when not configured
	Events    *security.EventLogger
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	production := deps.Config.IsProduction()

	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.AllowedOrigins, production)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(gin.LoggerWithFormatter(func(p gin.LogFormatterParams) string {
		return fmt.Sprintf("%s | %3d | %13v | %15s | %-7s %s | %v\n",
			p.TimeStamp.Format(time.RFC3339),
			p.StatusCode,
			p.Latency,
			p.ClientIP,
			p.Method,
			p.Path,
			p.Keys["RequestID"],
		)
	}))
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler(production))

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, deps.HealthUC.Check(c.Request.Context()))
	})

	contactLimiter := middleware.RateLimitMiddleware(middleware.ContactRateLimitConfig(
		deps.Config.ContactRateLimit,
		deps.Config.RateLimitWindow(),
		deps.Redis,
		deps.Events,
	))
	NewContactHandler(api, deps.ContactUC, production, contactLimiter)
	NewMediaHandler(api, deps.NewsUC, deps.VideoUC)

	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
