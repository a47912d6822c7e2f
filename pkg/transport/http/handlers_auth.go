package http

import (
	"errors"
	"net/http"

	"github.com/profkom/profkom-backend/pkg/api"
	"github.com/profkom/profkom-backend/pkg/credential"
	"github.com/profkom/profkom-backend/pkg/observability"
	"github.com/profkom/profkom-backend/pkg/storage"
	"github.com/profkom/profkom-backend/pkg/transport"
)

// login authenticates a username/password pair and returns a fresh token.
// A candidate password that fails the strength policy is rejected as a
// validation error before any account lookup happens.
func (h *Handlers) login(w http.ResponseWriter, r *http.Request) {
	var req api.LoginRequest
	if apiErr := decodeJSON(r, &req); apiErr != nil {
		transport.WriteAPIError(w, apiErr)
		return
	}
	if apiErr := api.ValidateLoginRequest(&req); apiErr != nil {
		transport.WriteAPIError(w, apiErr)
		return
	}

	cred, err := h.credentials.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, credential.ErrWeakPassword):
			observability.LoginAttemptsTotal.WithLabelValues("rejected").Inc()
			transport.WriteAPIError(w, api.NewInvalidRequestError("password", err.Error()))
		case errors.Is(err, credential.ErrInvalidCredentials):
			observability.LoginAttemptsTotal.WithLabelValues("rejected").Inc()
			transport.WriteAPIError(w, api.NewUnauthenticatedError())
		default:
			observability.LoginAttemptsTotal.WithLabelValues("error").Inc()
			h.logger.Error("login failed", "error", err)
			transport.WriteError(w, err)
		}
		return
	}

	tok, expires, err := h.codec.Mint(cred.ID, cred.Username, cred.Role)
	if err != nil {
		observability.LoginAttemptsTotal.WithLabelValues("error").Inc()
		h.logger.Error("minting token", "error", err)
		transport.WriteError(w, err)
		return
	}

	observability.LoginAttemptsTotal.WithLabelValues("ok").Inc()
	h.logger.Info("admin logged in", "username", cred.Username, "role", cred.Role)
	h.writeJSON(w, http.StatusOK, api.LoginResponse{
		Token:    tok,
		Expires:  expires,
		Username: cred.Username,
		Role:     cred.Role,
	})
}

// adminList returns every account without password hashes.
func (h *Handlers) adminList(w http.ResponseWriter, r *http.Request) {
	creds, err := h.credentials.List(r.Context())
	if err != nil {
		transport.WriteError(w, err)
		return
	}

	out := make([]api.AdminSummary, 0, len(creds))
	for _, c := range creds {
		out = append(out, api.AdminSummary{ID: c.ID, Username: c.Username, Role: c.Role})
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) adminCreate(w http.ResponseWriter, r *http.Request) {
	var req api.AdminCreateRequest
	if apiErr := decodeJSON(r, &req); apiErr != nil {
		transport.WriteAPIError(w, apiErr)
		return
	}
	if apiErr := api.ValidateAdminCreateRequest(&req); apiErr != nil {
		transport.WriteAPIError(w, apiErr)
		return
	}

	cred, err := h.credentials.Create(r.Context(), req.Username, req.Password, req.Role)
	if err != nil {
		transport.WriteError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, api.AdminSummary{
		ID:       cred.ID,
		Username: cred.Username,
		Role:     cred.Role,
	})
}

// adminEdit updates the password and/or role of an account. Empty fields
// are left unchanged; an empty request is a no-op that still returns 204.
func (h *Handlers) adminEdit(w http.ResponseWriter, r *http.Request) {
	id, apiErr := pathID(r)
	if apiErr != nil {
		transport.WriteAPIError(w, apiErr)
		return
	}

	var req api.AdminEditRequest
	if apiErr := decodeJSON(r, &req); apiErr != nil {
		transport.WriteAPIError(w, apiErr)
		return
	}

	cred, err := h.credentials.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			transport.WriteAPIError(w, api.NewNotFoundError("admin not found"))
			return
		}
		transport.WriteError(w, err)
		return
	}

	if req.Password != "" {
		if err := h.credentials.UpdatePassword(r.Context(), cred, req.Password); err != nil {
			transport.WriteError(w, err)
			return
		}
	}
	if req.Role != "" {
		if err := h.credentials.UpdateRole(r.Context(), cred, req.Role); err != nil {
			transport.WriteError(w, err)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) adminDelete(w http.ResponseWriter, r *http.Request) {
	id, apiErr := pathID(r)
	if apiErr != nil {
		transport.WriteAPIError(w, apiErr)
		return
	}

	if err := h.credentials.Delete(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			transport.WriteAPIError(w, api.NewNotFoundError("admin not found"))
			return
		}
		transport.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
