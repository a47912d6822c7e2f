// Package http wires the HTTP surface of the backend: the login and
// admin-management endpoints, the content CRUD endpoints, file uploads,
// health, and metrics. Routing uses net/http method patterns; the
// middleware stack lives in pkg/transport.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/profkom/profkom-backend/pkg/api"
	"github.com/profkom/profkom-backend/pkg/auth"
	"github.com/profkom/profkom-backend/pkg/auth/token"
	"github.com/profkom/profkom-backend/pkg/content"
	"github.com/profkom/profkom-backend/pkg/credential"
	"github.com/profkom/profkom-backend/pkg/uploads"
)

// Handlers holds the services the HTTP layer dispatches into.
type Handlers struct {
	credentials *credential.Service
	content     *content.Service
	codec       *token.Codec
	gate        *auth.Gate
	saver       *uploads.Saver
	logger      *slog.Logger
}

// NewHandlers creates the handler set. The saver may be nil when uploads
// are disabled.
func NewHandlers(
	credentials *credential.Service,
	contentSvc *content.Service,
	codec *token.Codec,
	gate *auth.Gate,
	saver *uploads.Saver,
	logger *slog.Logger,
) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{
		credentials: credentials,
		content:     contentSvc,
		codec:       codec,
		gate:        gate,
		saver:       saver,
		logger:      logger,
	}
}

// Routes registers every endpoint on the given mux. Public reads stay
// anonymous; everything mutating goes through RequireRole("admin").
func (h *Handlers) Routes(mux *http.ServeMux) {
	anon := h.gate.AllowAnonymous()
	admin := h.gate.RequireRole(auth.RoleAdmin)

	mux.Handle("POST /api/admin/login", anon(http.HandlerFunc(h.login)))
	mux.Handle("GET /api/admin", admin(http.HandlerFunc(h.adminList)))
	mux.Handle("POST /api/admin", admin(http.HandlerFunc(h.adminCreate)))
	mux.Handle("PUT /api/admin/{id}", admin(http.HandlerFunc(h.adminEdit)))
	mux.Handle("DELETE /api/admin/{id}", admin(http.HandlerFunc(h.adminDelete)))

	h.contentRoutes(mux, anon, admin)

	if h.saver != nil {
		mux.Handle("POST /api/uploads", admin(http.HandlerFunc(h.upload)))
		mux.Handle("GET /uploads/", http.StripPrefix(uploads.URLPrefix,
			http.FileServer(http.Dir(h.saver.Dir()))))
	}

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
}

// writeJSON serializes v with the given status. Encoding failures after
// the header is written can only be logged.
func (h *Handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encoding response", "error", err)
	}
}

// decodeJSON parses the request body into v, rejecting unknown fields.
func decodeJSON(r *http.Request, v any) *api.APIError {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return api.NewInvalidRequestError("body", "invalid JSON body")
	}
	return nil
}

// pathID parses the {id} path segment.
func pathID(r *http.Request) (int, *api.APIError) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		return 0, api.NewInvalidRequestError("id", "id must be a positive integer")
	}
	return id, nil
}
