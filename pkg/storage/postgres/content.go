package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/profkom/profkom-backend/pkg/api"
	"github.com/profkom/profkom-backend/pkg/storage"
)

// --- content.Store: news ---

func (s *Store) ListNews(ctx context.Context) ([]api.News, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, title, content, image_url, is_important, published_at
		FROM news ORDER BY published_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing news: %w", err)
	}
	defer rows.Close()

	var out []api.News
	for rows.Next() {
		var n api.News
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.ImageURL, &n.IsImportant, &n.PublishedAt); err != nil {
			return nil, fmt.Errorf("scanning news: %w", err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (s *Store) GetNews(ctx context.Context, id int) (*api.News, error) {
	var n api.News
	err := s.pool.QueryRow(ctx, `
		SELECT id, title, content, image_url, is_important, published_at
		FROM news WHERE id = $1`, id,
	).Scan(&n.ID, &n.Title, &n.Content, &n.ImageURL, &n.IsImportant, &n.PublishedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("querying news: %w", err)
	}
	return &n, nil
}

func (s *Store) InsertNews(ctx context.Context, n *api.News) error {
	err := s.pool.QueryRow(ctx, `
		INSERT INTO news (title, content, image_url, is_important, published_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, n.Title, n.Content, n.ImageURL, n.IsImportant, n.PublishedAt).Scan(&n.ID)
	if err != nil {
		return fmt.Errorf("inserting news: %w", err)
	}
	return nil
}

func (s *Store) UpdateNews(ctx context.Context, n *api.News) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE news SET title = $2, content = $3, image_url = $4, is_important = $5
		WHERE id = $1
	`, n.ID, n.Title, n.Content, n.ImageURL, n.IsImportant)
	if err != nil {
		return fmt.Errorf("updating news: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteNews(ctx context.Context, id int) error {
	return s.deleteByID(ctx, "news", id)
}

// --- content.Store: events ---

func (s *Store) ListEvents(ctx context.Context) ([]api.Event, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, title, description, starts_at, ends_at, location, image_url
		FROM events ORDER BY starts_at, id`)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	defer rows.Close()

	var out []api.Event
	for rows.Next() {
		var e api.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.StartsAt, &e.EndsAt, &e.Location, &e.ImageURL); err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) GetEvent(ctx context.Context, id int) (*api.Event, error) {
	var e api.Event
	err := s.pool.QueryRow(ctx, `
		SELECT id, title, description, starts_at, ends_at, location, image_url
		FROM events WHERE id = $1`, id,
	).Scan(&e.ID, &e.Title, &e.Description, &e.StartsAt, &e.EndsAt, &e.Location, &e.ImageURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("querying event: %w", err)
	}
	return &e, nil
}

func (s *Store) InsertEvent(ctx context.Context, e *api.Event) error {
	err := s.pool.QueryRow(ctx, `
		INSERT INTO events (title, description, starts_at, ends_at, location, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, e.Title, e.Description, e.StartsAt, e.EndsAt, e.Location, e.ImageURL).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}
	return nil
}

func (s *Store) UpdateEvent(ctx context.Context, e *api.Event) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE events SET title = $2, description = $3, starts_at = $4, ends_at = $5, location = $6, image_url = $7
		WHERE id = $1
	`, e.ID, e.Title, e.Description, e.StartsAt, e.EndsAt, e.Location, e.ImageURL)
	if err != nil {
		return fmt.Errorf("updating event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteEvent(ctx context.Context, id int) error {
	return s.deleteByID(ctx, "events", id)
}

// --- content.Store: team ---

func (s *Store) ListTeam(ctx context.Context) ([]api.TeamMember, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, position, content, image_url, email, phone, order_ind, is_active, created_at
		FROM team_members ORDER BY order_ind, id`)
	if err != nil {
		return nil, fmt.Errorf("listing team: %w", err)
	}
	defer rows.Close()

	var out []api.TeamMember
	for rows.Next() {
		var m api.TeamMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Position, &m.Content, &m.ImageURL, &m.Email, &m.Phone, &m.OrderInd, &m.IsActive, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning team member: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *Store) GetTeamMember(ctx context.Context, id int) (*api.TeamMember, error) {
	var m api.TeamMember
	err := s.pool.QueryRow(ctx, `
		SELECT id, name, position, content, image_url, email, phone, order_ind, is_active, created_at
		FROM team_members WHERE id = $1`, id,
	).Scan(&m.ID, &m.Name, &m.Position, &m.Content, &m.ImageURL, &m.Email, &m.Phone, &m.OrderInd, &m.IsActive, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("querying team member: %w", err)
	}
	return &m, nil
}

func (s *Store) InsertTeamMember(ctx context.Context, m *api.TeamMember) error {
	err := s.pool.QueryRow(ctx, `
		INSERT INTO team_members (name, position, content, image_url, email, phone, order_ind, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`, m.Name, m.Position, m.Content, m.ImageURL, m.Email, m.Phone, m.OrderInd, m.IsActive, m.CreatedAt).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("inserting team member: %w", err)
	}
	return nil
}

func (s *Store) UpdateTeamMember(ctx context.Context, m *api.TeamMember) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE team_members SET name = $2, position = $3, content = $4, image_url = $5,
			email = $6, phone = $7, order_ind = $8, is_active = $9
		WHERE id = $1
	`, m.ID, m.Name, m.Position, m.Content, m.ImageURL, m.Email, m.Phone, m.OrderInd, m.IsActive)
	if err != nil {
		return fmt.Errorf("updating team member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteTeamMember(ctx context.Context, id int) error {
	return s.deleteByID(ctx, "team_members", id)
}

// --- content.Store: units ---

func (s *Store) ListUnits(ctx context.Context) ([]api.Unit, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, content, order_ind, is_active, image_url, created_at, updated_at
		FROM units ORDER BY order_ind, id`)
	if err != nil {
		return nil, fmt.Errorf("listing units: %w", err)
	}
	defer rows.Close()

	var out []api.Unit
	for rows.Next() {
		var u api.Unit
		if err := rows.Scan(&u.ID, &u.Name, &u.Content, &u.OrderInd, &u.IsActive, &u.ImageURL, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning unit: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (s *Store) GetUnit(ctx context.Context, id int) (*api.Unit, error) {
	var u api.Unit
	err := s.pool.QueryRow(ctx, `
		SELECT id, name, content, order_ind, is_active, image_url, created_at, updated_at
		FROM units WHERE id = $1`, id,
	).Scan(&u.ID, &u.Name, &u.Content, &u.OrderInd, &u.IsActive, &u.ImageURL, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("querying unit: %w", err)
	}
	return &u, nil
}

func (s *Store) InsertUnit(ctx context.Context, u *api.Unit) error {
	err := s.pool.QueryRow(ctx, `
		INSERT INTO units (name, content, order_ind, is_active, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, u.Name, u.Content, u.OrderInd, u.IsActive, u.ImageURL, u.CreatedAt, u.UpdatedAt).Scan(&u.ID)
	if err != nil {
		return fmt.Errorf("inserting unit: %w", err)
	}
	return nil
}

func (s *Store) UpdateUnit(ctx context.Context, u *api.Unit) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE units SET name = $2, content = $3, order_ind = $4, is_active = $5,
			image_url = $6, updated_at = $7
		WHERE id = $1
	`, u.ID, u.Name, u.Content, u.OrderInd, u.IsActive, u.ImageURL, u.UpdatedAt)
	if err != nil {
		return fmt.Errorf("updating unit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteUnit(ctx context.Context, id int) error {
	return s.deleteByID(ctx, "units", id)
}

// --- content.Store: profs ---

func (s *Store) ListProfs(ctx context.Context) ([]api.Prof, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, description, image_url, order_ind, is_active, created_at
		FROM profs ORDER BY order_ind, id`)
	if err != nil {
		return nil, fmt.Errorf("listing profs: %w", err)
	}
	defer rows.Close()

	var out []api.Prof
	for rows.Next() {
		var p api.Prof
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.ImageURL, &p.OrderInd, &p.IsActive, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning prof: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) GetProf(ctx context.Context, id int) (*api.Prof, error) {
	var p api.Prof
	err := s.pool.QueryRow(ctx, `
		SELECT id, name, description, image_url, order_ind, is_active, created_at
		FROM profs WHERE id = $1`, id,
	).Scan(&p.ID, &p.Name, &p.Description, &p.ImageURL, &p.OrderInd, &p.IsActive, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("querying prof: %w", err)
	}
	return &p, nil
}

func (s *Store) InsertProf(ctx context.Context, p *api.Prof) error {
	err := s.pool.QueryRow(ctx, `
		INSERT INTO profs (name, description, image_url, order_ind, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, p.Name, p.Description, p.ImageURL, p.OrderInd, p.IsActive, p.CreatedAt).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("inserting prof: %w", err)
	}
	return nil
}

func (s *Store) UpdateProf(ctx context.Context, p *api.Prof) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE profs SET name = $2, description = $3, image_url = $4, order_ind = $5, is_active = $6
		WHERE id = $1
	`, p.ID, p.Name, p.Description, p.ImageURL, p.OrderInd, p.IsActive)
	if err != nil {
		return fmt.Errorf("updating prof: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteProf(ctx context.Context, id int) error {
	return s.deleteByID(ctx, "profs", id)
}

// deleteByID removes one row from the named table. Table names are
// compile-time constants, never user input.
func (s *Store) deleteByID(ctx context.Context, table string, id int) error {
	tag, err := s.pool.Exec(ctx, "DELETE FROM "+table+" WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("deleting from %s: %w", table, err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
