package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// NewRouter wires every route onto a gin engine and wraps it with CORS.
func NewRouter(h *Handler, logger *zap.Logger) http.Handler {
	r := gin.New()
	r.Use(requestLogger(logger))
	r.Use(gin.Recovery())

	r.GET("/healthz", h.Health)

	api := r.Group("/api")
	{
		api.GET("/share/:code", h.GetEventByShareCode)

		events := api.Group("/events")
		events.POST("", h.CreateEvent)
		events.GET("", h.ListEvents)
		events.GET("/:id", h.GetEvent)
		events.PUT("/:id", h.UpdateEvent)
		events.DELETE("/:id", h.DeleteEvent)
		events.GET("/:id/board", h.Board)

		events.POST("/:id/participants", h.RegisterParticipant)
		events.GET("/:id/participants", h.ListParticipants)
		events.GET("/:id/participants/lookup", h.LookupParticipants)
		events.GET("/:id/participants/:pid/selection", h.Selection)

		events.POST("/:id/time-slots", h.SubmitAvailability)
		events.GET("/:id/time-slots", h.ListTimeSlots)

		events.POST("/:id/votes", h.CastVote)
		events.GET("/:id/votes", h.ListVotes)

		events.GET("/:id/results", h.Results)
	}

	return cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Accept-Language", "X-Edit-Token"},
		AllowCredentials: true,
	}).Handler(r)
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
