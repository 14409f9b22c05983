// Package server exposes URI parsing over HTTP.
//
// Endpoints:
//   - GET  /v1/parse?uri=...&delimiter=...  parse a URI from the query string
//   - POST /v1/parse                        parse {"uri": "...", "delimiter": "..."}
//   - GET  /healthz                         liveness probe
//   - GET  /metrics                         Prometheus metrics (when enabled)
//
// A successful parse returns the uri.Components snapshot as JSON. An invalid
// port returns 422 with {"error": "...", "input": "..."}.
//
// Every request gets an X-Request-ID (taken from the request or generated)
// and passes a shared token-bucket rate limiter before reaching a handler.
// Each request parses into its own uri.URI, so handlers share no parse state.
package server
