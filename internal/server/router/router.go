package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-ledger-service/internal/server/handlers"
	"github.com/fekuna/omnipos-ledger-service/pkg/logger"
	"github.com/fekuna/omnipos-ledger-service/pkg/middleware"
)

// New wires the Gin engine with the ledger routes and middlewares.
func New(handler *handlers.LedgerHandler, log logger.ZapLogger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	if log == nil {
		log = logger.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(contextMiddleware())
	r.Use(zapLoggerMiddleware(log))

	r.GET("/healthz", handler.Health)

	v1 := r.Group("/api/v1")
	{
		stock := v1.Group("/stock")
		stock.POST("/adjust", handler.AdjustStock)
		stock.POST("/reserve", handler.ReserveStock)
		stock.POST("/release", handler.ReleaseStock)
		stock.GET("/low", handler.ListLowStock)
		stock.GET("/:material_id", handler.GetStock)
		stock.PUT("/:material_id", handler.ConfigureStock)

		v1.GET("/movements", handler.ListMovements)

		attributions := v1.Group("/attributions")
		attributions.POST("", handler.CreateAttribution)
		attributions.GET("", handler.ListAttributions)
		attributions.GET("/:id", handler.GetAttribution)
		attributions.PATCH("/:id/status", handler.UpdateAttributionStatus)
		attributions.DELETE("/:id", handler.DeleteAttribution)

		tickets := v1.Group("/repair-tickets")
		tickets.POST("", handler.CreateRepairTicket)
		tickets.GET("", handler.ListRepairTickets)
		tickets.GET("/:id", handler.GetRepairTicket)
		tickets.PATCH("/:id/status", handler.UpdateRepairTicketStatus)

		v1.GET("/dashboard", handler.Dashboard)

		v1.PUT("/materials/:id", handler.PutMaterial)
		v1.PUT("/request-lines/:id", handler.PutRequestLine)
	}

	log.Info("router initialized")
	return r
}

// contextMiddleware exposes caller headers to the usecases the same way
// the gRPC context interceptor does.
func contextMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		for _, h := range []string{middleware.HeaderUserID, middleware.HeaderRequestID, middleware.HeaderAcceptLanguage} {
			if v := c.GetHeader(h); v != "" {
				ctx = middleware.WithValue(ctx, h, v)
			}
		}
		if middleware.Value(ctx, middleware.HeaderRequestID) == "" {
			ctx = middleware.WithValue(ctx, middleware.HeaderRequestID, uuid.NewString())
		}
		c.Header("X-Request-ID", middleware.Value(ctx, middleware.HeaderRequestID))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func zapLoggerMiddleware(log logger.ZapLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("request_id", middleware.Value(c.Request.Context(), middleware.HeaderRequestID)),
		)
	}
}
