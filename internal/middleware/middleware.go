package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	RequestIDHeader = "X-Request-Id"
	loggerKey       = "_log"
)

// LoggerConfig tunes RequestLogger.
type LoggerConfig struct {
	Logger   *zerolog.Logger
	SkipPath []string
}

// GetLogger returns the request-scoped logger, or the global one outside a request.
func GetLogger(c *gin.Context) zerolog.Logger {
	if logger, ok := c.Get(loggerKey); ok {
		return logger.(zerolog.Logger)
	}
	return log.Logger
}

// RequestLogger tags every request with an xid request id and logs failed requests:
// 4xx as warnings and 5xx as errors.
func RequestLogger(config ...LoggerConfig) gin.HandlerFunc {
	var cfg LoggerConfig
	if len(config) > 0 {
		cfg = config[0]
	}

	skip := make(map[string]struct{}, len(cfg.SkipPath))
	for _, path := range cfg.SkipPath {
		skip[path] = struct{}{}
	}

	sublog := log.Logger
	if cfg.Logger != nil {
		sublog = *cfg.Logger
	}

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		fullPath := path
		if raw := c.Request.URL.RawQuery; raw != "" {
			fullPath = path + "?" + raw
		}

		id := xid.New().String()
		c.Writer.Header().Set(RequestIDHeader, id)
		reqlogger := sublog.With().Str("request_id", id).Logger()
		c.Set(loggerKey, reqlogger)

		c.Next()

		if _, ok := skip[path]; ok {
			return
		}

		status := c.Writer.Status()
		if status < http.StatusBadRequest {
			return
		}

		msg := "Request"
		if len(c.Errors) > 0 {
			msg = c.Errors.String()
		}

		dumplogger := reqlogger.With().
			Str("method", c.Request.Method).
			Str("path", fullPath).
			Str("ip", c.ClientIP()).
			Str("user-agent", c.Request.UserAgent()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Logger()

		if status >= http.StatusInternalServerError {
			dumplogger.Error().Msg(msg)
		} else {
			dumplogger.Warn().Msg(msg)
		}
	}
}

// CORS allows the browser form to call the API. An empty origin list or "*" allows
// every origin.
func CORS(origins []string) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowHeaders = []string{"Origin", "X-Requested-With", "Content-Length", "Content-Type", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.ExposeHeaders = []string{RequestIDHeader, "Content-Disposition"}

	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
	}

	return cors.New(corsConfig)
}
