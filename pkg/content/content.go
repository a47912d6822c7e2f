// Package content holds the CRUD services for the public site's entities:
// news posts, events, team members, units, and the prof listing.
//
// Reads are anonymous; writes happen only behind the admin gate, which is
// the transport layer's concern. The persistence interface is defined here
// and implemented by pkg/storage.
package content

import (
	"context"
	"time"

	"github.com/profkom/profkom-backend/pkg/api"
)

// Store is the persistence interface for content entities. Implementations
// return storage.ErrNotFound for missing records. List methods apply the
// site's canonical ordering: news newest first, everything else by order
// index.
type Store interface {
	ListNews(ctx context.Context) ([]api.News, error)
	GetNews(ctx context.Context, id int) (*api.News, error)
	InsertNews(ctx context.Context, n *api.News) error
	UpdateNews(ctx context.Context, n *api.News) error
	DeleteNews(ctx context.Context, id int) error

	ListEvents(ctx context.Context) ([]api.Event, error)
	GetEvent(ctx context.Context, id int) (*api.Event, error)
	InsertEvent(ctx context.Context, e *api.Event) error
	UpdateEvent(ctx context.Context, e *api.Event) error
	DeleteEvent(ctx context.Context, id int) error

	ListTeam(ctx context.Context) ([]api.TeamMember, error)
	GetTeamMember(ctx context.Context, id int) (*api.TeamMember, error)
	InsertTeamMember(ctx context.Context, m *api.TeamMember) error
	UpdateTeamMember(ctx context.Context, m *api.TeamMember) error
	DeleteTeamMember(ctx context.Context, id int) error

	ListUnits(ctx context.Context) ([]api.Unit, error)
	GetUnit(ctx context.Context, id int) (*api.Unit, error)
	InsertUnit(ctx context.Context, u *api.Unit) error
	UpdateUnit(ctx context.Context, u *api.Unit) error
	DeleteUnit(ctx context.Context, id int) error

	ListProfs(ctx context.Context) ([]api.Prof, error)
	GetProf(ctx context.Context, id int) (*api.Prof, error)
	InsertProf(ctx context.Context, p *api.Prof) error
	UpdateProf(ctx context.Context, p *api.Prof) error
	DeleteProf(ctx context.Context, id int) error
}

// Service validates and persists content entities.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService creates a content service.
func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// --- News ---

func (s *Service) ListNews(ctx context.Context) ([]api.News, error) {
	return s.store.ListNews(ctx)
}

func (s *Service) GetNews(ctx context.Context, id int) (*api.News, error) {
	return s.store.GetNews(ctx, id)
}

// CreateNews stores a new post, stamping PublishedAt with the current time.
func (s *Service) CreateNews(ctx context.Context, n *api.News) error {
	if err := api.ValidateNews(n); err != nil {
		return err
	}
	n.PublishedAt = s.now().UTC()
	return s.store.InsertNews(ctx, n)
}

// UpdateNews replaces an existing post. PublishedAt is preserved.
func (s *Service) UpdateNews(ctx context.Context, n *api.News) error {
	if err := api.ValidateNews(n); err != nil {
		return err
	}
	existing, err := s.store.GetNews(ctx, n.ID)
	if err != nil {
		return err
	}
	n.PublishedAt = existing.PublishedAt
	if n.ImageURL == "" {
		n.ImageURL = existing.ImageURL
	}
	return s.store.UpdateNews(ctx, n)
}

func (s *Service) DeleteNews(ctx context.Context, id int) error {
	return s.store.DeleteNews(ctx, id)
}

// --- Events ---

func (s *Service) ListEvents(ctx context.Context) ([]api.Event, error) {
	return s.store.ListEvents(ctx)
}

func (s *Service) GetEvent(ctx context.Context, id int) (*api.Event, error) {
	return s.store.GetEvent(ctx, id)
}

func (s *Service) CreateEvent(ctx context.Context, e *api.Event) error {
	if err := api.ValidateEvent(e); err != nil {
		return err
	}
	return s.store.InsertEvent(ctx, e)
}

func (s *Service) UpdateEvent(ctx context.Context, e *api.Event) error {
	if err := api.ValidateEvent(e); err != nil {
		return err
	}
	existing, err := s.store.GetEvent(ctx, e.ID)
	if err != nil {
		return err
	}
	if e.ImageURL == "" {
		e.ImageURL = existing.ImageURL
	}
	return s.store.UpdateEvent(ctx, e)
}

func (s *Service) DeleteEvent(ctx context.Context, id int) error {
	return s.store.DeleteEvent(ctx, id)
}

// --- Team ---

func (s *Service) ListTeam(ctx context.Context) ([]api.TeamMember, error) {
	return s.store.ListTeam(ctx)
}

func (s *Service) GetTeamMember(ctx context.Context, id int) (*api.TeamMember, error) {
	return s.store.GetTeamMember(ctx, id)
}

func (s *Service) CreateTeamMember(ctx context.Context, m *api.TeamMember) error {
	if err := api.ValidateTeamMember(m); err != nil {
		return err
	}
	m.CreatedAt = s.now().UTC()
	return s.store.InsertTeamMember(ctx, m)
}

func (s *Service) UpdateTeamMember(ctx context.Context, m *api.TeamMember) error {
	if err := api.ValidateTeamMember(m); err != nil {
		return err
	}
	existing, err := s.store.GetTeamMember(ctx, m.ID)
	if err != nil {
		return err
	}
	m.CreatedAt = existing.CreatedAt
	if m.ImageURL == "" {
		m.ImageURL = existing.ImageURL
	}
	return s.store.UpdateTeamMember(ctx, m)
}

func (s *Service) DeleteTeamMember(ctx context.Context, id int) error {
	return s.store.DeleteTeamMember(ctx, id)
}

// --- Units ---

func (s *Service) ListUnits(ctx context.Context) ([]api.Unit, error) {
	return s.store.ListUnits(ctx)
}

func (s *Service) GetUnit(ctx context.Context, id int) (*api.Unit, error) {
	return s.store.GetUnit(ctx, id)
}

func (s *Service) CreateUnit(ctx context.Context, u *api.Unit) error {
	if err := api.ValidateUnit(u); err != nil {
		return err
	}
	u.CreatedAt = s.now().UTC()
	u.UpdatedAt = nil
	return s.store.InsertUnit(ctx, u)
}

func (s *Service) UpdateUnit(ctx context.Context, u *api.Unit) error {
	if err := api.ValidateUnit(u); err != nil {
		return err
	}
	existing, err := s.store.GetUnit(ctx, u.ID)
	if err != nil {
		return err
	}
	u.CreatedAt = existing.CreatedAt
	if u.ImageURL == "" {
		u.ImageURL = existing.ImageURL
	}
	now := s.now().UTC()
	u.UpdatedAt = &now
	return s.store.UpdateUnit(ctx, u)
}

func (s *Service) DeleteUnit(ctx context.Context, id int) error {
	return s.store.DeleteUnit(ctx, id)
}

// --- Prof ---

func (s *Service) ListProfs(ctx context.Context) ([]api.Prof, error) {
	return s.store.ListProfs(ctx)
}

func (s *Service) GetProf(ctx context.Context, id int) (*api.Prof, error) {
	return s.store.GetProf(ctx, id)
}

func (s *Service) CreateProf(ctx context.Context, p *api.Prof) error {
	if err := api.ValidateProf(p); err != nil {
		return err
	}
	p.CreatedAt = s.now().UTC()
	return s.store.InsertProf(ctx, p)
}

func (s *Service) UpdateProf(ctx context.Context, p *api.Prof) error {
	if err := api.ValidateProf(p); err != nil {
		return err
	}
	existing, err := s.store.GetProf(ctx, p.ID)
	if err != nil {
		return err
	}
	p.CreatedAt = existing.CreatedAt
	if p.ImageURL == "" {
		p.ImageURL = existing.ImageURL
	}
	return s.store.UpdateProf(ctx, p)
}

func (s *Service) DeleteProf(ctx context.Context, id int) error {
	return s.store.DeleteProf(ctx, id)
}
