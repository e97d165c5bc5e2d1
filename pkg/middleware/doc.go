// Package middleware provides net/http middleware for observability.
//
// # Prometheus Metrics
//
// The Prometheus middleware collects request metrics labeled by route
// pattern, so /ext/abc.html and /ext/xyz.html share one series:
//   - extstats_http_requests_total: requests by route, method and status
//   - extstats_http_request_duration_seconds: request duration histogram
//   - extstats_http_requests_in_flight: requests being served
//   - extstats_http_response_size_bytes: response size histogram
//
// Mount it on a chi router next to the metrics endpoint:
//
//	r := chi.NewRouter()
//	r.Use(middleware.Prometheus(middleware.WithRegistry(reg)))
//	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
//
// # OpenTelemetry Middleware
//
// The OpenTelemetry middleware starts a server span per request and stores
// it in the request context. The span is renamed to "METHOD /route" once
// the router has matched the request.
//
//	r.Use(middleware.OpenTelemetry(
//	    middleware.WithTracerName("extstats"),
//	    middleware.WithRequestFilter(func(r *http.Request) bool {
//	        return r.URL.Path != "/healthz"
//	    }),
//	))
//
// The tracer comes from the global OpenTelemetry tracer provider unless
// WithTracerProvider is given. Configure it in main() before serving.
package middleware
