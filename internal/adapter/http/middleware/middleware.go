package middleware

import (
	"net/http"
	"sync/atomic"
	"time"

	"campus-ledger/pkg/apperror"
	"campus-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// HeaderRequestID carries the request correlation ID in both directions.
const HeaderRequestID = "X-Request-ID"

// RequestID reuses the caller's X-Request-ID or assigns a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Set(response.CtxRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("request_id", response.RequestID(c)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				response.Error(c, apperror.InternalError(nil))
				c.Abort()
			}
		}()
		c.Next()
	}
}

// MaxBodySize returns middleware that limits the request body size.
// Once the limit is exceeded the reader returns an error and the
// request is rejected with 413 Payload Too Large.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}

// InFlightGuard admits one ledger write at a time. A write arriving while
// another is outstanding is rejected with 409 instead of queued.
type InFlightGuard struct {
	busy atomic.Bool
	log  zerolog.Logger
}

func NewInFlightGuard(log zerolog.Logger) *InFlightGuard {
	return &InFlightGuard{log: log}
}

// Handler returns the gin middleware.
func (g *InFlightGuard) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !g.busy.CompareAndSwap(false, true) {
			g.log.Warn().Str("path", c.Request.URL.Path).Msg("rejecting concurrent ledger write")
			response.Error(c, apperror.ErrOperationInProgress())
			c.Abort()
			return
		}
		defer g.busy.Store(false)
		c.Next()
	}
}

// Busy reports whether a write is in flight.
func (g *InFlightGuard) Busy() bool {
	return g.busy.Load()
}
