// Package postgres provides PostgreSQL implementations of credential.Store
// and content.Store. It uses pgx/v5 for connection pooling and applies
// embedded SQL migrations on startup when configured.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/profkom/profkom-backend/pkg/content"
	"github.com/profkom/profkom-backend/pkg/credential"
	"github.com/profkom/profkom-backend/pkg/storage"
)

// Store is a PostgreSQL-backed store for admins and content entities.
type Store struct {
	pool *pgxpool.Pool
}

// Ensure Store implements both consumer interfaces at compile time.
var (
	_ credential.Store = (*Store)(nil)
	_ content.Store    = (*Store)(nil)
)

// New creates a new PostgreSQL store with the given configuration.
// If MigrateOnStart is true, schema migrations are applied automatically.
func New(ctx context.Context, cfg Config) (*Store, error) {
	cfg.defaults()

	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parsing DSN: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	// Verify connectivity.
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &Store{pool: pool}

	if cfg.MigrateOnStart {
		if err := s.migrate(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("running migrations: %w", err)
		}
	}

	return s, nil
}

// Close releases the connection pool.
func (s *Store) Close() {
	s.pool.Close()
}

// --- credential.Store ---

func (s *Store) FindByUsername(ctx context.Context, username string) (*credential.Credential, error) {
	return s.findAdmin(ctx, "username = $1", username)
}

func (s *Store) FindByID(ctx context.Context, id int) (*credential.Credential, error) {
	return s.findAdmin(ctx, "id = $1", id)
}

func (s *Store) findAdmin(ctx context.Context, where string, arg any) (*credential.Credential, error) {
	var c credential.Credential
	err := s.pool.QueryRow(ctx,
		"SELECT id, username, password_hash, role FROM admins WHERE "+where, arg,
	).Scan(&c.ID, &c.Username, &c.PasswordHash, &c.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("querying admin: %w", err)
	}
	return &c, nil
}

func (s *Store) List(ctx context.Context) ([]credential.Credential, error) {
	rows, err := s.pool.Query(ctx,
		"SELECT id, username, password_hash, role FROM admins ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("listing admins: %w", err)
	}
	defer rows.Close()

	var out []credential.Credential
	for rows.Next() {
		var c credential.Credential
		if err := rows.Scan(&c.ID, &c.Username, &c.PasswordHash, &c.Role); err != nil {
			return nil, fmt.Errorf("scanning admin: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM admins WHERE username = $1)", username,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking admin existence: %w", err)
	}
	return exists, nil
}

func (s *Store) Insert(ctx context.Context, c *credential.Credential) error {
	err := s.pool.QueryRow(ctx, `
		INSERT INTO admins (username, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id
	`, c.Username, c.PasswordHash, c.Role).Scan(&c.ID)
	if err != nil {
		if isDuplicateKey(err) {
			return storage.ErrConflict
		}
		return fmt.Errorf("inserting admin: %w", err)
	}
	return nil
}

func (s *Store) Update(ctx context.Context, c *credential.Credential) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE admins SET username = $2, password_hash = $3, role = $4
		WHERE id = $1
	`, c.ID, c.Username, c.PasswordHash, c.Role)
	if err != nil {
		return fmt.Errorf("updating admin: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id int) error {
	tag, err := s.pool.Exec(ctx, "DELETE FROM admins WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("deleting admin: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx, "SELECT COUNT(*) FROM admins").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting admins: %w", err)
	}
	return n, nil
}

// isDuplicateKey checks if the error is a PostgreSQL unique violation (23505).
func isDuplicateKey(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23505")
}
