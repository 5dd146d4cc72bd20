package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/KasumiMercury/production-autoschedule/internal/observability/logging"
	"github.com/KasumiMercury/production-autoschedule/internal/observability/metrics"
)

const RequestIDHeader = "X-Request-ID"

type GinConfig struct {
	SkipPaths []string
	Module    logging.Module
	// Worker marks routes driven by a queue rather than a user.
	Worker          bool
	TracerName      string
	JobNameResolver func(c *gin.Context) string
	HTTPMetrics     *metrics.HTTPMetrics
}

// Gin traces, logs and measures every request outside SkipPaths.
func Gin(cfg GinConfig) gin.HandlerFunc {
	tracer := otel.Tracer(cfg.TracerName)
	propagator := otel.GetTextMapPropagator()

	spanKind := trace.SpanKindServer
	if cfg.Worker {
		spanKind = trace.SpanKindConsumer
	}

	return func(c *gin.Context) {
		if slices.Contains(cfg.SkipPaths, c.Request.URL.Path) {
			c.Next()
			return
		}

		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}

		ctx := propagator.Extract(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))
		if cfg.Module != "" {
			ctx = logging.WithModule(ctx, cfg.Module)
		}
		ctx, span := tracer.Start(ctx, c.Request.Method+" "+route,
			trace.WithSpanKind(spanKind),
			trace.WithAttributes(
				attribute.String("http.method", c.Request.Method),
				attribute.String("http.route", route),
				attribute.String("request_id", requestID),
			),
		)
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		status := c.Writer.Status()
		duration := time.Since(start)

		span.SetAttributes(attribute.Int("http.status_code", status))
		if status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(status))
		}

		if cfg.HTTPMetrics != nil {
			cfg.HTTPMetrics.RecordRequest(ctx, c.Request.Method, route, status, duration)
		}

		attrs := []any{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("route", route),
			slog.Int("status", status),
			slog.Duration("latency", duration),
		}
		if cfg.JobNameResolver != nil {
			attrs = append(attrs, slog.String("job", cfg.JobNameResolver(c)))
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("error", c.Errors.String()))
		}

		switch {
		case status >= http.StatusInternalServerError:
			slog.ErrorContext(ctx, "request failed", attrs...)
		case status >= http.StatusBadRequest:
			slog.WarnContext(ctx, "request rejected", attrs...)
		default:
			slog.InfoContext(ctx, "request completed", attrs...)
		}
	}
}

// PanicRecoveryGin turns a panic into a 500 response and an error log.
func PanicRecoveryGin() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				slog.ErrorContext(c.Request.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(r)),
					slog.String("path", c.Request.URL.Path),
					slog.String("stack", string(debug.Stack())),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error":   "internal server error",
				})
			}
		}()
		c.Next()
	}
}
