package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/profkom/profkom-backend/pkg/api"
	"github.com/profkom/profkom-backend/pkg/auth"
	"github.com/profkom/profkom-backend/pkg/credential"
	"github.com/profkom/profkom-backend/pkg/storage"
)

// HTTPStatusFromError maps an APIError type to the corresponding HTTP
// status code.
func HTTPStatusFromError(err *api.APIError) int {
	switch err.Type {
	case api.ErrorTypeInvalidRequest:
		return http.StatusBadRequest
	case api.ErrorTypeNotFound:
		return http.StatusNotFound
	case api.ErrorTypeConflict:
		return http.StatusConflict
	case api.ErrorTypeUnauthenticated:
		return http.StatusUnauthorized
	case api.ErrorTypeForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// WriteErrorResponse writes a JSON error response using the ErrorResponse
// wrapper format from pkg/api. It sets the Content-Type header and writes
// the HTTP status code.
func WriteErrorResponse(w http.ResponseWriter, apiErr *api.APIError, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(api.ErrorResponse{Error: apiErr})
}

// WriteAPIError writes an APIError response, deriving the HTTP status code
// from the error type.
func WriteAPIError(w http.ResponseWriter, apiErr *api.APIError) {
	WriteErrorResponse(w, apiErr, HTTPStatusFromError(apiErr))
}

// WriteError translates any service-layer error into a JSON error
// response. Sentinel errors from the storage, credential, and auth
// packages get their canonical status; APIErrors pass through; anything
// else becomes an opaque 500.
func WriteError(w http.ResponseWriter, err error) {
	var apiErr *api.APIError
	switch {
	case errors.As(err, &apiErr):
		// Keep the handler-supplied type and message.
	case errors.Is(err, storage.ErrNotFound):
		apiErr = api.NewNotFoundError("record not found")
	case errors.Is(err, storage.ErrConflict), errors.Is(err, credential.ErrDuplicateUsername):
		apiErr = api.NewConflictError("record already exists")
	case errors.Is(err, credential.ErrInvalidCredentials):
		apiErr = api.NewUnauthenticatedError()
	case errors.Is(err, credential.ErrWeakPassword):
		apiErr = api.NewInvalidRequestError("password", err.Error())
	case errors.Is(err, auth.ErrUnauthenticated):
		apiErr = api.NewUnauthenticatedError()
	case errors.Is(err, auth.ErrForbidden):
		apiErr = api.NewForbiddenError()
	default:
		apiErr = api.NewServerError("internal server error")
	}
	WriteAPIError(w, apiErr)
}
