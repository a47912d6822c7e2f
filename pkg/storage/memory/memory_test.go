package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/profkom/profkom-backend/pkg/api"
	"github.com/profkom/profkom-backend/pkg/credential"
	"github.com/profkom/profkom-backend/pkg/storage"
)

func TestCredentialCRUD(t *testing.T) {
	s := New()
	ctx := context.Background()

	c := &credential.Credential{Username: "alice", PasswordHash: "$2a$10$fake", Role: "admin"}
	if err := s.Insert(ctx, c); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if c.ID == 0 {
		t.Fatal("Insert did not assign an ID")
	}

	got, err := s.FindByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("FindByUsername: %v", err)
	}
	if got.ID != c.ID || got.Role != "admin" {
		t.Errorf("FindByUsername = %+v", got)
	}

	// Duplicate username.
	dup := &credential.Credential{Username: "alice", PasswordHash: "x"}
	if err := s.Insert(ctx, dup); !errors.Is(err, storage.ErrConflict) {
		t.Errorf("Insert duplicate = %v, want ErrConflict", err)
	}

	// Update in place.
	got.Role = "viewer"
	if err := s.Update(ctx, got); err != nil {
		t.Fatalf("Update: %v", err)
	}
	again, _ := s.FindByID(ctx, c.ID)
	if again.Role != "viewer" {
		t.Errorf("Role after Update = %q, want viewer", again.Role)
	}

	// Returned values are copies, not aliases into the store.
	again.Role = "mutated"
	fresh, _ := s.FindByID(ctx, c.ID)
	if fresh.Role != "viewer" {
		t.Error("mutating a returned credential leaked into the store")
	}

	if err := s.Delete(ctx, c.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.FindByID(ctx, c.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("FindByID after delete = %v, want ErrNotFound", err)
	}
	if err := s.Delete(ctx, c.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("second Delete = %v, want ErrNotFound", err)
	}
}

func TestListNews_NewestFirst(t *testing.T) {
	s := New()
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, offset := range []time.Duration{0, 2 * time.Hour, time.Hour} {
		n := &api.News{Title: "post", PublishedAt: base.Add(offset)}
		if err := s.InsertNews(ctx, n); err != nil {
			t.Fatalf("InsertNews %d: %v", i, err)
		}
	}

	list, err := s.ListNews(ctx)
	if err != nil {
		t.Fatalf("ListNews: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("len = %d, want 3", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i].PublishedAt.After(list[i-1].PublishedAt) {
			t.Errorf("list not ordered newest first: %v before %v", list[i-1].PublishedAt, list[i].PublishedAt)
		}
	}
}

func TestListTeam_OrderIndAscending(t *testing.T) {
	s := New()
	ctx := context.Background()

	for _, ord := range []int{3, 1, 2} {
		m := &api.TeamMember{Name: "member", Position: "role", OrderInd: ord}
		if err := s.InsertTeamMember(ctx, m); err != nil {
			t.Fatalf("InsertTeamMember: %v", err)
		}
	}

	list, err := s.ListTeam(ctx)
	if err != nil {
		t.Fatalf("ListTeam: %v", err)
	}
	for i, m := range list {
		if m.OrderInd != i+1 {
			t.Errorf("position %d has OrderInd %d, want %d", i, m.OrderInd, i+1)
		}
	}
}

func TestContentNotFound(t *testing.T) {
	s := New()
	ctx := context.Background()

	if _, err := s.GetNews(ctx, 42); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("GetNews = %v, want ErrNotFound", err)
	}
	if err := s.UpdateUnit(ctx, &api.Unit{ID: 42, Name: "x"}); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("UpdateUnit = %v, want ErrNotFound", err)
	}
	if err := s.DeleteProf(ctx, 42); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("DeleteProf = %v, want ErrNotFound", err)
	}
}

func TestIDsUniqueAcrossEntities(t *testing.T) {
	s := New()
	ctx := context.Background()

	n := &api.News{Title: "a"}
	e := &api.Event{Title: "b"}
	if err := s.InsertNews(ctx, n); err != nil {
		t.Fatalf("InsertNews: %v", err)
	}
	if err := s.InsertEvent(ctx, e); err != nil {
		t.Fatalf("InsertEvent: %v", err)
	}
	if n.ID == e.ID {
		t.Errorf("news and event share ID %d", n.ID)
	}
}
