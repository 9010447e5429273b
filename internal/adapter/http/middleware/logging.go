package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const accessLogMessage = "http request"

// GinZapMiddleware writes one access log entry per request. The level follows
// the response: server errors at error, client errors at warn, health probes
// at debug, everything else at info.
func GinZapMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", GetRequestID(c)),
		}
		if route := c.FullPath(); route != "" {
			fields = append(fields, zap.String("route", route))
		}
		if obraID := c.Param("id"); obraID != "" {
			fields = append(fields, zap.String("obra_id", obraID))
		}
		if taskID := c.Param("taskId"); taskID != "" {
			fields = append(fields, zap.String("task_id", taskID))
		}
		if lang, ok := c.Get("lang"); ok {
			fields = append(fields, zap.Any("lang", lang))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		if ce := logger.Check(accessLevel(c.FullPath(), status), accessLogMessage); ce != nil {
			ce.Write(fields...)
		}
	}
}

func accessLevel(route string, status int) zapcore.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zapcore.ErrorLevel
	case status >= http.StatusBadRequest:
		return zapcore.WarnLevel
	case route == "/api/health" || route == "/api/health/report":
		return zapcore.DebugLevel
	default:
		return zapcore.InfoLevel
	}
}
