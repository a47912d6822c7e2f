// Package transport provides the HTTP plumbing shared by all handlers:
// error-to-status mapping, JSON error responses, and middleware for
// panic recovery, request IDs (X-Request-ID), structured logging via
// log/slog, and CORS.
//
// Handlers live in the transport/http subpackage; this package stays
// free of routing so middleware can be tested in isolation.
package transport
