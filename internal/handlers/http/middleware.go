package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
	messageKey      = "message"
)

// requestContext aplica o timeout, o request id e o span da requisição.
func (h *Handlers) requestContext() gin.HandlerFunc {
	tracer := otel.Tracer("sweaters/internal/handlers/http")

	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Header(requestIDHeader, requestID)

		ctx := otel.GetTextMapPropagator().Extract(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))
		ctx, span := tracer.Start(ctx, spanName(c.Request.Method, c.FullPath()))
		span.SetAttributes(attribute.String("request_id", requestID))
		defer span.End()

		if h.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, h.timeout)
			defer cancel()
		}
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		span.SetAttributes(attribute.Int("http.status_code", c.Writer.Status()))
	}
}

// spanName usa a rota registrada; requisições sem rota caem em "unmatched".
func spanName(method, fullPath string) string {
	if fullPath == "" {
		fullPath = "unmatched"
	}
	return method + " " + fullPath
}

// logAPICall registra uma linha por chamada da API.
func (h *Handlers) logAPICall() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		attrs := []any{
			"endpoint", c.FullPath(),
			"method", c.Request.Method,
			"request_data", c.Request.URL.RawQuery,
			"status_code", c.Writer.Status(),
			"request_id", c.GetString(requestIDKey),
			"latency", time.Since(start),
		}
		if msg := c.GetString(messageKey); msg != "" {
			attrs = append(attrs, "message", msg)
		}
		if userID := c.Param("userid"); userID != "" {
			attrs = append(attrs, "user_id", userID)
		}
		if gameID := c.Param("gameid"); gameID != "" {
			attrs = append(attrs, "game_id", gameID)
		}

		if c.Writer.Status() >= 500 {
			h.logger.ErrorContext(c.Request.Context(), "API Call", attrs...)
			return
		}
		h.logger.InfoContext(c.Request.Context(), "API Call", attrs...)
	}
}
