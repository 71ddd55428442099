package apiHttp

import (
	"context"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/coopconnect/backend/docs"
	"github.com/coopconnect/backend/pkg/limiter"
	"github.com/coopconnect/backend/pkg/logger"
	"github.com/coopconnect/backend/pkg/validator"

	internalV1 "github.com/coopconnect/backend/internal/api/http/internal/v1"
	"github.com/coopconnect/backend/internal/config"
	"github.com/coopconnect/backend/internal/service"

	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 2 * time.Second

// Pinger reports whether the database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	services *service.Services
	config   *config.Config
	db       Pinger
}

func NewHandlers(services *service.Services, cfg *config.Config, db Pinger) *Handler {
	return &Handler{
		services: services,
		config:   cfg,
		db:       db,
	}
}

func (h *Handler) Init() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	validator.RegisterGinValidator()

	router.Use(
		requestIDMiddleware,
		ginzap.GinzapWithConfig(logger.Logger(), &ginzap.Config{
			TimeFormat: time.RFC3339,
			UTC:        true,
			Context: func(c *gin.Context) []zap.Field {
				return []zap.Field{zap.String("request_id", c.GetString(requestIDKey))}
			},
		}),
		limiter.Limit(h.config.Limiter.RPS, h.config.Limiter.Burst, h.config.Limiter.TTL),
		corsMiddleware(h.config.HttpServer.AllowedOrigins),
	)
	router.Use(ginzap.RecoveryWithZap(logger.Logger(), true))

	if h.config.HttpServer.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.NewHandler(), ginSwagger.InstanceName("internal")))
	}

	router.GET("/healthz", h.healthz)

	h.initAPI(router)

	return router
}

// The dashboard calls resource paths at the root, so v1 is mounted there.
func (h *Handler) initAPI(router *gin.Engine) {
	internalHandlersV1 := internalV1.NewHandler(h.services)
	internalHandlersV1.Init(&router.RouterGroup)
}

func (h *Handler) healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		logger.Error("database ping failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
