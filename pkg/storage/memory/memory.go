// Package memory provides in-memory implementations of the credential and
// content stores for tests and lightweight deployments. Data is lost when
// the process restarts.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/profkom/profkom-backend/pkg/api"
	"github.com/profkom/profkom-backend/pkg/content"
	"github.com/profkom/profkom-backend/pkg/credential"
	"github.com/profkom/profkom-backend/pkg/storage"
)

// Store is a mutex-guarded in-memory store for all entities. The mutex also
// serializes writes per record, which the credential service requires.
type Store struct {
	mu sync.RWMutex

	admins map[int]credential.Credential
	news   map[int]api.News
	events map[int]api.Event
	team   map[int]api.TeamMember
	units  map[int]api.Unit
	profs  map[int]api.Prof

	nextID int
}

// Ensure Store implements both consumer interfaces at compile time.
var (
	_ credential.Store = (*Store)(nil)
	_ content.Store    = (*Store)(nil)
)

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		admins: make(map[int]credential.Credential),
		news:   make(map[int]api.News),
		events: make(map[int]api.Event),
		team:   make(map[int]api.TeamMember),
		units:  make(map[int]api.Unit),
		profs:  make(map[int]api.Prof),
		nextID: 1,
	}
}

// allocID hands out the next identifier. Callers must hold the write lock.
func (s *Store) allocID() int {
	id := s.nextID
	s.nextID++
	return id
}

// --- credential.Store ---

func (s *Store) FindByUsername(_ context.Context, username string) (*credential.Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.admins {
		if c.Username == username {
			cp := c
			return &cp, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *Store) FindByID(_ context.Context, id int) (*credential.Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.admins[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	cp := c
	return &cp, nil
}

func (s *Store) List(_ context.Context) ([]credential.Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]credential.Credential, 0, len(s.admins))
	for _, c := range s.admins {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) ExistsByUsername(_ context.Context, username string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.admins {
		if c.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) Insert(_ context.Context, c *credential.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.admins {
		if existing.Username == c.Username {
			return storage.ErrConflict
		}
	}
	c.ID = s.allocID()
	s.admins[c.ID] = *c
	return nil
}

func (s *Store) Update(_ context.Context, c *credential.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.admins[c.ID]; !ok {
		return storage.ErrNotFound
	}
	s.admins[c.ID] = *c
	return nil
}

func (s *Store) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.admins[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.admins, id)
	return nil
}

func (s *Store) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.admins), nil
}

// --- content.Store: news ---

func (s *Store) ListNews(_ context.Context) ([]api.News, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]api.News, 0, len(s.news))
	for _, n := range s.news {
		out = append(out, n)
	}
	// Newest first; ID breaks ties for posts published in the same instant.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].PublishedAt.Equal(out[j].PublishedAt) {
			return out[i].PublishedAt.After(out[j].PublishedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *Store) GetNews(_ context.Context, id int) (*api.News, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.news[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &n, nil
}

func (s *Store) InsertNews(_ context.Context, n *api.News) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n.ID = s.allocID()
	s.news[n.ID] = *n
	return nil
}

func (s *Store) UpdateNews(_ context.Context, n *api.News) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.news[n.ID]; !ok {
		return storage.ErrNotFound
	}
	s.news[n.ID] = *n
	return nil
}

func (s *Store) DeleteNews(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.news[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.news, id)
	return nil
}

// --- content.Store: events ---

func (s *Store) ListEvents(_ context.Context) ([]api.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]api.Event, 0, len(s.events))
	for _, e := range s.events {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartsAt.Equal(out[j].StartsAt) {
			return out[i].StartsAt.Before(out[j].StartsAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) GetEvent(_ context.Context, id int) (*api.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.events[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &e, nil
}

func (s *Store) InsertEvent(_ context.Context, e *api.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = s.allocID()
	s.events[e.ID] = *e
	return nil
}

func (s *Store) UpdateEvent(_ context.Context, e *api.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[e.ID]; !ok {
		return storage.ErrNotFound
	}
	s.events[e.ID] = *e
	return nil
}

func (s *Store) DeleteEvent(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.events, id)
	return nil
}

// --- content.Store: team ---

func (s *Store) ListTeam(_ context.Context) ([]api.TeamMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]api.TeamMember, 0, len(s.team))
	for _, m := range s.team {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].OrderInd != out[j].OrderInd {
			return out[i].OrderInd < out[j].OrderInd
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) GetTeamMember(_ context.Context, id int) (*api.TeamMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.team[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &m, nil
}

func (s *Store) InsertTeamMember(_ context.Context, m *api.TeamMember) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m.ID = s.allocID()
	s.team[m.ID] = *m
	return nil
}

func (s *Store) UpdateTeamMember(_ context.Context, m *api.TeamMember) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.team[m.ID]; !ok {
		return storage.ErrNotFound
	}
	s.team[m.ID] = *m
	return nil
}

func (s *Store) DeleteTeamMember(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.team[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.team, id)
	return nil
}

// --- content.Store: units ---

func (s *Store) ListUnits(_ context.Context) ([]api.Unit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]api.Unit, 0, len(s.units))
	for _, u := range s.units {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].OrderInd != out[j].OrderInd {
			return out[i].OrderInd < out[j].OrderInd
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) GetUnit(_ context.Context, id int) (*api.Unit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.units[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &u, nil
}

func (s *Store) InsertUnit(_ context.Context, u *api.Unit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u.ID = s.allocID()
	s.units[u.ID] = *u
	return nil
}

func (s *Store) UpdateUnit(_ context.Context, u *api.Unit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.units[u.ID]; !ok {
		return storage.ErrNotFound
	}
	s.units[u.ID] = *u
	return nil
}

func (s *Store) DeleteUnit(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.units[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.units, id)
	return nil
}

// --- content.Store: profs ---

func (s *Store) ListProfs(_ context.Context) ([]api.Prof, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]api.Prof, 0, len(s.profs))
	for _, p := range s.profs {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].OrderInd != out[j].OrderInd {
			return out[i].OrderInd < out[j].OrderInd
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) GetProf(_ context.Context, id int) (*api.Prof, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profs[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &p, nil
}

func (s *Store) InsertProf(_ context.Context, p *api.Prof) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.allocID()
	s.profs[p.ID] = *p
	return nil
}

func (s *Store) UpdateProf(_ context.Context, p *api.Prof) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.profs[p.ID]; !ok {
		return storage.ErrNotFound
	}
	s.profs[p.ID] = *p
	return nil
}

func (s *Store) DeleteProf(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.profs[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.profs, id)
	return nil
}
