package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/vango-dev/extstats/pkg/markup"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Doctype is written before the root element by RenderPage.
const Doctype = "<!DOCTYPE html>\n"

// Default tracer name for renders.
const defaultTracerName = "extstats/render"

// RendererConfig configures the renderer.
type RendererConfig struct {
	// Logger receives render failures.
	// If nil, slog.Default() is used.
	Logger *slog.Logger

	// Metrics records render statistics. Nil disables metrics.
	Metrics *Metrics

	// TracerName is the OpenTelemetry tracer name (default: "extstats/render").
	TracerName string
}

// Renderer renders markup trees. It holds no per-render state and is safe
// for concurrent use.
type Renderer struct {
	config RendererConfig
	logger *slog.Logger
	tracer trace.Tracer
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.TracerName == "" {
		config.TracerName = defaultTracerName
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{
		config: config,
		logger: logger.With("component", "render"),
		tracer: otel.Tracer(config.TracerName),
	}
}

// RenderToString renders a tree to a string. name is the page kind used in
// metrics labels, span names and logs; keep it low-cardinality ("list",
// "ext"), not per-page.
//
// A malformed tree is returned as a *markup.Fault error.
func (r *Renderer) RenderToString(ctx context.Context, name string, node any) (string, error) {
	_, span := r.tracer.Start(ctx, "render "+name,
		trace.WithAttributes(attribute.String("extstats.page", name)),
	)
	defer span.End()

	start := time.Now()
	out, err := markup.TryRender(node)
	duration := time.Since(start)

	if err != nil {
		var fault *markup.Fault
		code := "unknown"
		if errors.As(err, &fault) {
			code = string(fault.Code)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.config.Metrics.observeFault(name, code, duration)
		r.logger.ErrorContext(ctx, "render failed", "page", name, "code", code, "error", err)
		return "", fmt.Errorf("render %s: %w", name, err)
	}

	span.SetAttributes(attribute.Int("extstats.bytes", len(out)))
	span.SetStatus(codes.Ok, "")
	r.config.Metrics.observe(name, len(out), duration)
	return out, nil
}

// RenderToWriter renders a tree and writes it to w. Nothing is written when
// rendering fails.
func (r *Renderer) RenderToWriter(ctx context.Context, w io.Writer, name string, node any) error {
	out, err := r.RenderToString(ctx, name, node)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// RenderPage writes a complete HTML document: the DOCTYPE followed by the
// rendered root.
func (r *Renderer) RenderPage(ctx context.Context, w io.Writer, name string, root *markup.Node) error {
	out, err := r.RenderToString(ctx, name, root)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, Doctype); err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}
