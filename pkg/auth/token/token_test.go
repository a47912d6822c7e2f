package token

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

var testKey = []byte("test-signing-key-not-for-production")

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestMintVerify_RoundTrip(t *testing.T) {
	c := New(testKey)

	tok, expires, err := c.Mint(7, "alice", "admin")
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}
	if got := time.Until(expires); got < 11*time.Hour || got > 12*time.Hour {
		t.Errorf("expiry %v from now, want ~12h", got)
	}

	claims, err := c.Verify(tok)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Subject != "alice" {
		t.Errorf("Subject = %q, want %q", claims.Subject, "alice")
	}
	if claims.UniqueName != "alice" {
		t.Errorf("UniqueName = %q, want %q", claims.UniqueName, "alice")
	}
	if claims.Role != "admin" {
		t.Errorf("Role = %q, want %q", claims.Role, "admin")
	}
	if claims.UserID != "7" {
		t.Errorf("UserID = %q, want %q", claims.UserID, "7")
	}
	if claims.TokenID == "" {
		t.Error("TokenID is empty")
	}
	if claims.ExpiresAt != claims.IssuedAt+int64(Lifetime/time.Second) {
		t.Errorf("exp = iat + %d, want iat + %d", claims.ExpiresAt-claims.IssuedAt, int64(Lifetime/time.Second))
	}
	if claims.NotBefore != claims.IssuedAt {
		t.Errorf("nbf = %d, want iat %d", claims.NotBefore, claims.IssuedAt)
	}
}

func TestMint_UniqueTokenIDs(t *testing.T) {
	c := New(testKey, WithClock(fixedClock(time.Unix(1700000000, 0))))

	a, _, err := c.Mint(1, "alice", "admin")
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}
	b, _, err := c.Mint(1, "alice", "admin")
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}
	if a == b {
		t.Error("two tokens minted with identical inputs and clock are identical, jti is not random")
	}
}

func TestVerify_WireFormat(t *testing.T) {
	c := New(testKey)
	tok, _, err := c.Mint(1, "alice", "admin")
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}

	segments := strings.Split(tok, ".")
	if len(segments) != 3 {
		t.Fatalf("token has %d segments, want 3", len(segments))
	}
	for i, seg := range segments {
		if strings.ContainsAny(seg, "+/=") {
			t.Errorf("segment %d contains non-base64url characters: %q", i, seg)
		}
	}

	headerBytes, err := base64.RawURLEncoding.DecodeString(segments[0])
	if err != nil {
		t.Fatalf("decoding header: %v", err)
	}
	var header map[string]string
	if err := json.Unmarshal(headerBytes, &header); err != nil {
		t.Fatalf("parsing header: %v", err)
	}
	if header["alg"] != "HS256" || header["typ"] != "JWT" {
		t.Errorf("header = %v, want alg=HS256 typ=JWT", header)
	}
}

// The hand-built format must remain parseable by the ecosystem JWT library,
// since external clients may treat it as a standard token.
func TestVerify_InteropWithJWTLibrary(t *testing.T) {
	c := New(testKey)
	tok, _, err := c.Mint(3, "alice", "admin")
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}

	parsed, err := jwtlib.Parse(tok, func(t *jwtlib.Token) (any, error) {
		return testKey, nil
	}, jwtlib.WithValidMethods([]string{"HS256"}))
	if err != nil {
		t.Fatalf("jwt library rejected minted token: %v", err)
	}
	if !parsed.Valid {
		t.Fatal("jwt library considers minted token invalid")
	}

	claims, ok := parsed.Claims.(jwtlib.MapClaims)
	if !ok {
		t.Fatal("claims are not a map")
	}
	if claims["sub"] != "alice" || claims["role"] != "admin" {
		t.Errorf("claims = %v, want sub=alice role=admin", claims)
	}
}

func TestVerify_TamperedPayload(t *testing.T) {
	c := New(testKey)
	tok, _, err := c.Mint(1, "alice", "admin")
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}

	segments := strings.Split(tok, ".")

	// Flip every character of the payload in turn; each single-character
	// change must be detected as a forgery.
	for i := 0; i < len(segments[1]); i++ {
		flipped := flipBase64Char(segments[1], i)
		tampered := segments[0] + "." + flipped + "." + segments[2]

		if _, err := c.Verify(tampered); !errors.Is(err, ErrBadSignature) {
			t.Fatalf("Verify(payload flipped at %d) = %v, want ErrBadSignature", i, err)
		}
	}
}

// flipBase64Char replaces the character at index i with a different
// base64url alphabet character, keeping the segment decodable.
func flipBase64Char(s string, i int) string {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
	b := []byte(s)
	replacement := alphabet[0]
	if b[i] == replacement {
		replacement = alphabet[1]
	}
	b[i] = replacement
	return string(b)
}

func TestVerify_Malformed(t *testing.T) {
	c := New(testKey)
	valid, _, err := c.Mint(1, "alice", "admin")
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}
	segments := strings.Split(valid, ".")

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"two segments", segments[0] + "." + segments[1]},
		{"four segments", valid + ".extra"},
		{"non-base64 header", "!!!." + segments[1] + "." + segments[2]},
		{"non-base64 payload", segments[0] + ".!!!." + segments[2]},
		{"non-base64 signature", segments[0] + "." + segments[1] + ".!!!"},
		{"padded base64", segments[0] + "." + segments[1] + "==." + segments[2]},
		{"garbage", "not a token at all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := c.Verify(tt.token); !errors.Is(err, ErrMalformed) {
				t.Errorf("Verify(%q) = %v, want ErrMalformed", tt.token, err)
			}
		})
	}
}

func TestVerify_WrongKey(t *testing.T) {
	minter := New(testKey)
	verifier := New([]byte("a completely different key"))

	tok, _, err := minter.Mint(1, "alice", "admin")
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}

	if _, err := verifier.Verify(tok); !errors.Is(err, ErrBadSignature) {
		t.Errorf("Verify with wrong key = %v, want ErrBadSignature", err)
	}
}

func TestVerify_ExpiryBoundary(t *testing.T) {
	minted := time.Unix(1700000000, 0)
	c := New(testKey, WithClock(fixedClock(minted)))

	tok, expires, err := c.Mint(1, "alice", "admin")
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}

	// One second before expiry: accepted.
	before := New(testKey, WithClock(fixedClock(expires.Add(-time.Second))))
	if _, err := before.Verify(tok); err != nil {
		t.Errorf("Verify one second before expiry = %v, want nil", err)
	}

	// Exactly at expiry: rejected.
	at := New(testKey, WithClock(fixedClock(expires)))
	if _, err := at.Verify(tok); !errors.Is(err, ErrExpired) {
		t.Errorf("Verify at expiry = %v, want ErrExpired", err)
	}

	// After expiry: rejected.
	after := New(testKey, WithClock(fixedClock(expires.Add(time.Hour))))
	if _, err := after.Verify(tok); !errors.Is(err, ErrExpired) {
		t.Errorf("Verify after expiry = %v, want ErrExpired", err)
	}
}

func TestVerify_NotYetValid(t *testing.T) {
	minted := time.Unix(1700000000, 0)
	minter := New(testKey, WithClock(fixedClock(minted)))

	tok, _, err := minter.Mint(1, "alice", "admin")
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}

	early := New(testKey, WithClock(fixedClock(minted.Add(-time.Minute))))
	if _, err := early.Verify(tok); !errors.Is(err, ErrNotYetValid) {
		t.Errorf("Verify before nbf = %v, want ErrNotYetValid", err)
	}
}

func TestVerify_Idempotent(t *testing.T) {
	c := New(testKey)
	tok, _, err := c.Mint(1, "alice", "admin")
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}

	first, err := c.Verify(tok)
	if err != nil {
		t.Fatalf("first Verify: %v", err)
	}
	second, err := c.Verify(tok)
	if err != nil {
		t.Fatalf("second Verify: %v", err)
	}
	if *first != *second {
		t.Errorf("repeated Verify differs: %+v vs %+v", first, second)
	}
}
