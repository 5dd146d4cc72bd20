package logging

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

type Environment string

const (
	EnvDev  Environment = "dev"
	EnvProd Environment = "prod"
)

// Module names the component a log line comes from.
type Module string

type ServiceInfo struct {
	Name     string
	Version  string
	Revision string
}

type Config struct {
	Service       ServiceInfo
	Environment   Environment
	DefaultModule Module
	GCPProjectID  string
	Level         slog.Leveler
}

type moduleKey struct{}

// WithModule overrides the module attribute for logs written with ctx.
func WithModule(ctx context.Context, module Module) context.Context {
	return context.WithValue(ctx, moduleKey{}, module)
}

func moduleFrom(ctx context.Context) (Module, bool) {
	module, ok := ctx.Value(moduleKey{}).(Module)
	return module, ok
}

// NewHandler returns a JSON handler that stamps service metadata, the
// module and the active trace on every record.
func NewHandler(w io.Writer, cfg Config) slog.Handler {
	level := cfg.Level
	if level == nil {
		level = slog.LevelInfo
	}

	base := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: replaceAttr,
	})

	attrs := []slog.Attr{
		slog.Group("service",
			slog.String("name", cfg.Service.Name),
			slog.String("version", cfg.Service.Version),
			slog.String("revision", cfg.Service.Revision),
		),
		slog.String("env", string(cfg.Environment)),
	}

	return &handler{
		next:          base.WithAttrs(attrs),
		defaultModule: cfg.DefaultModule,
		projectID:     cfg.GCPProjectID,
	}
}

func NewLogger(w io.Writer, cfg Config) *slog.Logger {
	return slog.New(NewHandler(w, cfg))
}

type handler struct {
	next          slog.Handler
	defaultModule Module
	projectID     string
}

func (h *handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *handler) Handle(ctx context.Context, record slog.Record) error {
	module := h.defaultModule
	if m, ok := moduleFrom(ctx); ok {
		module = m
	}
	if module != "" {
		record.AddAttrs(slog.String("module", string(module)))
	}

	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		record.AddAttrs(
			slog.String("trace_id", sc.TraceID().String()),
			slog.String("span_id", sc.SpanID().String()),
		)
		record.AddAttrs(gcpTraceAttrs(ctx, h.projectID)...)
	}

	return h.next.Handle(ctx, record)
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &handler{next: h.next.WithAttrs(attrs), defaultModule: h.defaultModule, projectID: h.projectID}
}

func (h *handler) WithGroup(name string) slog.Handler {
	return &handler{next: h.next.WithGroup(name), defaultModule: h.defaultModule, projectID: h.projectID}
}
