package auth

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/profkom/profkom-backend/pkg/auth/token"
	"github.com/profkom/profkom-backend/pkg/observability"
)

// Verifier checks a token string and returns its claims. Satisfied by
// *token.Codec.
type Verifier interface {
	Verify(tokenStr string) (*token.Claims, error)
}

// Gate authorizes requests by verifying bearer tokens. It holds no mutable
// state and is safe for concurrent use.
type Gate struct {
	verifier Verifier
	logger   *slog.Logger
}

// NewGate creates a Gate verifying tokens with the given verifier.
func NewGate(verifier Verifier, logger *slog.Logger) *Gate {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gate{verifier: verifier, logger: logger}
}

// AllowAnonymous returns middleware that never blocks. Requests pass through
// with no identity in the context; any Authorization header is ignored.
func (g *Gate) AllowAnonymous() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return next
	}
}

// RequireRole returns middleware that admits only requests carrying a valid
// token whose role equals the given role. On success the identity is
// injected into the request context.
func (g *Gate) RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, ok := bearerToken(r)
			if !ok {
				g.reject(w, r, "missing_credentials", nil)
				return
			}

			claims, err := g.verifier.Verify(tokenStr)
			if err != nil {
				// Malformed, bad signature, expired, and not-yet-valid all
				// look the same to the caller.
				g.reject(w, r, rejectionReason(err), err)
				return
			}

			if claims.Role != role {
				g.logger.Warn("authorization denied",
					"subject", claims.Subject,
					"role", claims.Role,
					"required_role", role,
					"path", r.URL.Path,
				)
				observability.AuthRejectedTotal.WithLabelValues("forbidden").Inc()
				http.Error(w, `{"error":{"type":"forbidden","message":"insufficient role"}}`, http.StatusForbidden)
				return
			}

			ctx := SetIdentity(r.Context(), &Identity{
				Subject: claims.Subject,
				Role:    claims.Role,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// reject writes a 401 response. The body never distinguishes why
// verification failed; the reason goes to logs and metrics only.
func (g *Gate) reject(w http.ResponseWriter, r *http.Request, reason string, err error) {
	g.logger.Warn("authentication failed",
		"path", r.URL.Path,
		"remote_addr", r.RemoteAddr,
		"reason", reason,
		"error", err,
	)
	observability.AuthRejectedTotal.WithLabelValues(reason).Inc()
	http.Error(w, `{"error":{"type":"unauthenticated","message":"authentication required"}}`, http.StatusUnauthorized)
}

// bearerToken extracts the token from the Authorization header. The literal
// "Bearer " scheme prefix is required.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	tokenStr := strings.TrimPrefix(header, "Bearer ")
	if tokenStr == "" {
		return "", false
	}
	return tokenStr, true
}

// rejectionReason maps a verification error to a metric label.
func rejectionReason(err error) string {
	switch err {
	case token.ErrMalformed:
		return "malformed"
	case token.ErrBadSignature:
		return "bad_signature"
	case token.ErrExpired:
		return "expired"
	case token.ErrNotYetValid:
		return "not_yet_valid"
	default:
		return "other"
	}
}
