package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/profkom/profkom-backend/pkg/auth/token"
)

var testKey = []byte("gate-test-key")

// okHandler records the identity it saw.
func okHandler(got **Identity) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*got = IdentityFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireRole_ValidToken(t *testing.T) {
	codec := token.New(testKey)
	gate := NewGate(codec, nil)

	tok, _, err := codec.Mint(1, "alice", "admin")
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}

	var id *Identity
	handler := gate.RequireRole("admin")(okHandler(&id))

	r := httptest.NewRequest("POST", "/api/news", nil)
	r.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if id == nil {
		t.Fatal("identity not injected")
	}
	if id.Subject != "alice" || id.Role != "admin" {
		t.Errorf("identity = %+v, want subject=alice role=admin", id)
	}
}

func TestRequireRole_WrongRole(t *testing.T) {
	codec := token.New(testKey)
	gate := NewGate(codec, nil)

	tok, _, err := codec.Mint(2, "bob", "viewer")
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}

	var id *Identity
	handler := gate.RequireRole("admin")(okHandler(&id))

	r := httptest.NewRequest("POST", "/api/news", nil)
	r.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
	if id != nil {
		t.Error("handler ran despite forbidden role")
	}
}

func TestRequireRole_Unauthenticated(t *testing.T) {
	codec := token.New(testKey)
	gate := NewGate(codec, nil)

	expiredCodec := token.New(testKey, token.WithClock(func() time.Time {
		return time.Now().Add(-24 * time.Hour)
	}))
	expiredTok, _, err := expiredCodec.Mint(1, "alice", "admin")
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}

	otherKey := token.New([]byte("some other key"))
	forgedTok, _, err := otherKey.Mint(1, "alice", "admin")
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"wrong scheme", "Basic YWxpY2U6cGFzcw=="},
		{"empty bearer", "Bearer "},
		{"garbage token", "Bearer not.a.token"},
		{"two segments", "Bearer abc.def"},
		{"expired token", "Bearer " + expiredTok},
		{"forged token", "Bearer " + forgedTok},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id *Identity
			handler := gate.RequireRole("admin")(okHandler(&id))

			r := httptest.NewRequest("DELETE", "/api/news/1", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
			if id != nil {
				t.Error("handler ran despite failed authentication")
			}
		})
	}
}

func TestAllowAnonymous_NeverBlocks(t *testing.T) {
	codec := token.New(testKey)
	gate := NewGate(codec, nil)

	var id *Identity
	handler := gate.AllowAnonymous()(okHandler(&id))

	// No credentials at all.
	r := httptest.NewRequest("GET", "/api/news", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}

	// Even a garbage Authorization header does not block.
	r = httptest.NewRequest("GET", "/api/news", nil)
	r.Header.Set("Authorization", "Bearer garbage")
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Errorf("status with garbage token = %d, want 200", w.Code)
	}
}

func TestIdentityFromContext_Unset(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	if id := IdentityFromContext(r.Context()); id != nil {
		t.Errorf("IdentityFromContext on fresh context = %+v, want nil", id)
	}
}
