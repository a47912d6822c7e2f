// Package password implements the admin password policy and the salted
// slow hashing of stored passwords.
//
// Hashing uses bcrypt: the salt and the cost parameter are embedded in the
// encoded hash, and comparison is delegated to the library's constant-time
// check.
package password

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

// MinLength is the minimum accepted password length in characters.
const MinLength = 8

// DefaultCost is the bcrypt cost used for new hashes.
const DefaultCost = bcrypt.DefaultCost

// IsAcceptable reports whether a candidate password satisfies the policy:
// at least MinLength characters, at least one uppercase letter, one digit,
// and one character that is neither a letter nor a digit (underscore counts).
//
// The policy is checked before every password-setting operation and also on
// every login attempt. Rejecting a login whose candidate is weak, even when
// it would match the stored hash, is deliberate behavior carried over from
// the system this backend replaces.
func IsAcceptable(password string) bool {
	if password == "" {
		return false
	}
	if utf8.RuneCountInString(password) < MinLength {
		return false
	}

	var hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case !unicode.IsLetter(r):
			hasSpecial = true
		}
	}
	return hasUpper && hasDigit && hasSpecial
}

// Hash produces a salted bcrypt hash of the password. The plaintext is never
// stored.
func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether the candidate matches the stored hash.
// bcrypt performs the comparison in constant time.
func Verify(hash, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)) == nil
}
