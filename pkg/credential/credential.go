// Package credential manages the administrative accounts: lookup, creation,
// password and role edits, deletion, and the disaster-recovery bootstrap
// account seeded into an empty store.
//
// The persistence interface is defined here, by the consumer; pkg/storage
// provides memory and postgres implementations.
package credential

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/profkom/profkom-backend/pkg/auth/password"
	"github.com/profkom/profkom-backend/pkg/storage"
)

// Sentinel errors.
var (
	// ErrWeakPassword is returned when a candidate password fails the policy.
	ErrWeakPassword = errors.New("password does not meet the security requirements")

	// ErrDuplicateUsername is returned when creating an account whose
	// username already exists.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrInvalidCredentials is returned on login for both unknown usernames
	// and wrong passwords, so callers cannot tell the cases apart.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Bootstrap account seeded when the store is empty. The password satisfies
// the policy; change it after recovery.
const (
	BootstrapUsername = "admin@gmail.com"
	bootstrapPassword = "@Admin123"
)

// Credential is one administrative account. The zero ID means "not yet
// persisted"; the store assigns IDs on insert.
type Credential struct {
	ID           int
	Username     string
	PasswordHash string
	Role         string
}

// Store is the persistence interface for credentials. Implementations must
// return storage.ErrNotFound for missing records and storage.ErrConflict for
// username collisions, and must serialize concurrent writes per record.
type Store interface {
	FindByUsername(ctx context.Context, username string) (*Credential, error)
	FindByID(ctx context.Context, id int) (*Credential, error)
	List(ctx context.Context) ([]Credential, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Insert(ctx context.Context, c *Credential) error
	Update(ctx context.Context, c *Credential) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

// Service implements account operations over a Store.
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService creates a credential service.
func NewService(store Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger}
}

// Authenticate verifies a username/password pair and returns the matching
// credential.
//
// The password policy is checked against the candidate before the hash
// comparison, so a weak-looking candidate fails with ErrWeakPassword even if
// it would have matched the stored hash. That mirrors the system this
// backend replaces and is covered by tests; do not reorder the checks.
func (s *Service) Authenticate(ctx context.Context, username, candidate string) (*Credential, error) {
	if !password.IsAcceptable(candidate) {
		return nil, ErrWeakPassword
	}

	cred, err := s.store.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("looking up credential: %w", err)
	}

	if !password.Verify(cred.PasswordHash, candidate) {
		return nil, ErrInvalidCredentials
	}

	if cred.Role == "" {
		cred.Role = "admin"
	}
	return cred, nil
}

// Create adds a new account. Role defaults to "admin" when empty.
func (s *Service) Create(ctx context.Context, username, plaintext, role string) (*Credential, error) {
	if !password.IsAcceptable(plaintext) {
		return nil, ErrWeakPassword
	}

	exists, err := s.store.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("checking username: %w", err)
	}
	if exists {
		return nil, ErrDuplicateUsername
	}

	hash, err := password.Hash(plaintext)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	if role == "" {
		role = "admin"
	}
	cred := &Credential{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.store.Insert(ctx, cred); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("inserting credential: %w", err)
	}

	s.logger.Info("admin account created", "username", username, "role", role)
	return cred, nil
}

// FindByID returns the account with the given ID.
func (s *Service) FindByID(ctx context.Context, id int) (*Credential, error) {
	return s.store.FindByID(ctx, id)
}

// List returns all accounts.
func (s *Service) List(ctx context.Context) ([]Credential, error) {
	return s.store.List(ctx)
}

// UpdatePassword replaces the account's password after re-validating the
// policy. The mutation is in place; issued tokens stay valid.
func (s *Service) UpdatePassword(ctx context.Context, cred *Credential, plaintext string) error {
	if !password.IsAcceptable(plaintext) {
		return ErrWeakPassword
	}
	hash, err := password.Hash(plaintext)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	cred.PasswordHash = hash
	if err := s.store.Update(ctx, cred); err != nil {
		return fmt.Errorf("updating credential: %w", err)
	}
	s.logger.Info("admin password updated", "username", cred.Username)
	return nil
}

// UpdateRole replaces the account's role. Tokens already minted keep the old
// role until they expire.
func (s *Service) UpdateRole(ctx context.Context, cred *Credential, role string) error {
	cred.Role = role
	if err := s.store.Update(ctx, cred); err != nil {
		return fmt.Errorf("updating credential: %w", err)
	}
	s.logger.Info("admin role updated", "username", cred.Username, "role", role)
	return nil
}

// Delete removes the account permanently. There is no soft delete.
func (s *Service) Delete(ctx context.Context, id int) error {
	return s.store.Delete(ctx, id)
}

// Bootstrap seeds the disaster-recovery account when the store holds no
// credentials at all. Safe to call on every startup.
func (s *Service) Bootstrap(ctx context.Context) error {
	n, err := s.store.Count(ctx)
	if err != nil {
		return fmt.Errorf("counting credentials: %w", err)
	}
	if n > 0 {
		return nil
	}

	if _, err := s.Create(ctx, BootstrapUsername, bootstrapPassword, "admin"); err != nil {
		return fmt.Errorf("seeding bootstrap account: %w", err)
	}
	s.logger.Info("seeded bootstrap admin account", "username", BootstrapUsername)
	return nil
}
