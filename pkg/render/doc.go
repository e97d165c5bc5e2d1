// Package render turns markup trees into pages for the site builder and the
// HTTP server.
//
// It wraps markup.Render with the concerns a long-running process needs:
//
//   - Malformed trees are reported as errors instead of crashing the caller
//   - Render count, duration, size and faults are recorded as Prometheus metrics
//   - Each render runs in an OpenTelemetry span
//   - Failures are logged with slog
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(ctx, "index", node)
//
// To write a complete document (with DOCTYPE) to a writer:
//
//	err := renderer.RenderPage(ctx, w, "index", node)
//
// # Metrics
//
//	metrics := render.NewMetrics(render.WithNamespace("extstats"))
//	renderer := render.NewRenderer(render.RendererConfig{Metrics: metrics})
package render
