// Package token implements the bearer-token scheme used by the admin API:
// a three-segment HMAC-SHA256 signed token built directly from primitives
// (JSON, base64url, crypto/hmac) rather than a token library.
//
// The wire format is a compatibility contract with existing clients:
// header and claims are UTF-8 JSON, each base64url-encoded without padding,
// joined with the signature segment by dots. Verification checks exactly
// three things (signature, expiry, not-before) and nothing else. There is
// no issuer or audience validation, no key rotation, and no revocation:
// adding any of those would change which tokens are accepted.
//
// A consequence worth knowing: the role inside a token is frozen at mint
// time. Editing an account's role does not invalidate tokens already issued;
// the staleness window is bounded by the token lifetime.
package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Sentinel errors for token verification failures.
var (
	// ErrMalformed is returned when a token does not have exactly three
	// segments, or a segment fails base64url decoding or JSON parsing.
	ErrMalformed = errors.New("malformed token")

	// ErrBadSignature is returned when the recomputed signature does not
	// match the token's signature segment.
	ErrBadSignature = errors.New("bad token signature")

	// ErrExpired is returned when the current time is at or after exp.
	ErrExpired = errors.New("token expired")

	// ErrNotYetValid is returned when the current time is before nbf.
	ErrNotYetValid = errors.New("token not yet valid")
)

// Lifetime is the fixed validity window of a minted token.
const Lifetime = 12 * time.Hour

// FallbackKey is the development signing key used when none is configured.
// It is a known weak default, not a security feature; deployments must
// override it and the server warns at startup when they have not.
const FallbackKey = "profkomoflvivuniarethebestprofkominworld"

// header is the fixed first segment. Serialized once by hand so the encoded
// bytes never depend on struct field ordering.
const headerJSON = `{"alg":"HS256","typ":"JWT"}`

// Claims is the payload embedded in a token. JSON field names are part of
// the wire format.
type Claims struct {
	UniqueName string `json:"unique_name"`
	Role       string `json:"role"`
	UserID     string `json:"userId"`
	Subject    string `json:"sub"`
	TokenID    string `json:"jti"`
	IssuedAt   int64  `json:"iat"`
	NotBefore  int64  `json:"nbf"`
	ExpiresAt  int64  `json:"exp"`
}

// Codec mints and verifies tokens with a single symmetric key. The key is
// immutable after construction, so a Codec is safe for unbounded concurrent
// use.
type Codec struct {
	key []byte
	now func() time.Time
}

// Option configures a Codec.
type Option func(*Codec)

// WithClock overrides the wall clock. Used in tests to pin token lifetimes.
func WithClock(now func() time.Time) Option {
	return func(c *Codec) { c.now = now }
}

// New creates a Codec signing with the given key.
func New(key []byte, opts ...Option) *Codec {
	c := &Codec{key: key, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Mint builds a token for the given account. The claim set is frozen at
// call time: iat and nbf are now, exp is now plus Lifetime, and jti is a
// fresh random identifier. It returns the token string and its expiry.
func (c *Codec) Mint(userID int, username, role string) (string, time.Time, error) {
	now := c.now()
	expires := now.Add(Lifetime)

	claims := Claims{
		UniqueName: username,
		Role:       role,
		UserID:     strconv.Itoa(userID),
		Subject:    username,
		TokenID:    uuid.NewString(),
		IssuedAt:   now.Unix(),
		NotBefore:  now.Unix(),
		ExpiresAt:  expires.Unix(),
	}

	payloadJSON, err := json.Marshal(claims)
	if err != nil {
		return "", time.Time{}, err
	}

	headerSeg := base64.RawURLEncoding.EncodeToString([]byte(headerJSON))
	payloadSeg := base64.RawURLEncoding.EncodeToString(payloadJSON)
	signingInput := headerSeg + "." + payloadSeg
	signatureSeg := base64.RawURLEncoding.EncodeToString(c.sign(signingInput))

	return signingInput + "." + signatureSeg, time.Unix(expires.Unix(), 0).UTC(), nil
}

// Verify decodes and checks a token string, returning its claims on
// success. Checks run in order: structure, signature, expiry, not-before.
// Verification is a pure computation; calling it twice on the same token
// yields the same result.
func (c *Codec) Verify(tokenStr string) (*Claims, error) {
	segments := strings.Split(tokenStr, ".")
	if len(segments) != 3 {
		return nil, ErrMalformed
	}

	if _, err := base64.RawURLEncoding.DecodeString(segments[0]); err != nil {
		return nil, ErrMalformed
	}
	payloadJSON, err := base64.RawURLEncoding.DecodeString(segments[1])
	if err != nil {
		return nil, ErrMalformed
	}
	signature, err := base64.RawURLEncoding.DecodeString(segments[2])
	if err != nil {
		return nil, ErrMalformed
	}

	// Signature before JSON: a tampered payload that still decodes as
	// base64 must fail as a forgery, not as a parse error.
	expected := c.sign(segments[0] + "." + segments[1])
	if !hmac.Equal(signature, expected) {
		return nil, ErrBadSignature
	}

	var claims Claims
	if err := json.Unmarshal(payloadJSON, &claims); err != nil {
		return nil, ErrMalformed
	}

	now := c.now().Unix()
	if now >= claims.ExpiresAt {
		return nil, ErrExpired
	}
	if now < claims.NotBefore {
		return nil, ErrNotYetValid
	}

	return &claims, nil
}

// sign computes the HMAC-SHA256 signature over the dot-joined header and
// payload segments.
func (c *Codec) sign(signingInput string) []byte {
	mac := hmac.New(sha256.New, c.key)
	mac.Write([]byte(signingInput))
	return mac.Sum(nil)
}
