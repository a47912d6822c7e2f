package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/profkom/profkom-backend/pkg/api"
	"github.com/profkom/profkom-backend/pkg/auth"
	"github.com/profkom/profkom-backend/pkg/credential"
	"github.com/profkom/profkom-backend/pkg/storage"
)

func TestHTTPStatusFromError(t *testing.T) {
	cases := []struct {
		errType api.ErrorType
		want    int
	}{
		{api.ErrorTypeInvalidRequest, http.StatusBadRequest},
		{api.ErrorTypeNotFound, http.StatusNotFound},
		{api.ErrorTypeConflict, http.StatusConflict},
		{api.ErrorTypeUnauthenticated, http.StatusUnauthorized},
		{api.ErrorTypeForbidden, http.StatusForbidden},
		{api.ErrorTypeServerError, http.StatusInternalServerError},
		{api.ErrorType("unknown"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := HTTPStatusFromError(&api.APIError{Type: tc.errType})
		if got != tc.want {
			t.Errorf("HTTPStatusFromError(%s) = %d, want %d", tc.errType, got, tc.want)
		}
	}
}

func TestWriteError_SentinelMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantType   api.ErrorType
	}{
		{"not found", storage.ErrNotFound, http.StatusNotFound, api.ErrorTypeNotFound},
		{"wrapped not found", fmt.Errorf("loading news: %w", storage.ErrNotFound), http.StatusNotFound, api.ErrorTypeNotFound},
		{"conflict", storage.ErrConflict, http.StatusConflict, api.ErrorTypeConflict},
		{"duplicate username", credential.ErrDuplicateUsername, http.StatusConflict, api.ErrorTypeConflict},
		{"bad credentials", credential.ErrInvalidCredentials, http.StatusUnauthorized, api.ErrorTypeUnauthenticated},
		{"weak password", credential.ErrWeakPassword, http.StatusBadRequest, api.ErrorTypeInvalidRequest},
		{"unauthenticated", auth.ErrUnauthenticated, http.StatusUnauthorized, api.ErrorTypeUnauthenticated},
		{"forbidden", auth.ErrForbidden, http.StatusForbidden, api.ErrorTypeForbidden},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError, api.ErrorTypeServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tc.err)

			if rec.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
			var resp api.ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("body is not an error response: %v", err)
			}
			if resp.Error.Type != tc.wantType {
				t.Errorf("type = %q, want %q", resp.Error.Type, tc.wantType)
			}
		})
	}
}

func TestWriteError_NeverLeaksInternals(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, errors.New("pq: password authentication failed for user postgres"))

	var resp api.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("body is not an error response: %v", err)
	}
	if resp.Error.Message != "internal server error" {
		t.Errorf("message = %q, internal detail must not reach the client", resp.Error.Message)
	}
}

func TestWriteError_APIErrorPassesThrough(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, api.NewInvalidRequestError("title", "title is required"))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	var resp api.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("body: %v", err)
	}
	if resp.Error.Param != "title" {
		t.Errorf("param = %q, want title", resp.Error.Param)
	}
}
