package middlewares

import (
	"log/slog"
	"time"

	"littlelemon/logger"
	"littlelemon/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger ใส่ request id แล้ว log ทุก request เป็น JSON
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		utils.SetRequestID(c, id)
		c.Header(RequestIDHeader, id)

		start := time.Now()
		c.Next()

		attrs := []slog.Attr{
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
		}
		if a := utils.CurrentActor(c); a != nil {
			attrs = append(attrs, slog.Uint64("user_id", uint64(a.UserID)), slog.String("roles", a.Caps.String()))
		}
		if len(c.Errors) > 0 && c.Writer.Status() >= 500 {
			log.Error("http_request", id, "request failed", c.Errors.Last().Err, attrs...)
			return
		}
		log.Info("http_request", id, "request handled", attrs...)
	}
}
