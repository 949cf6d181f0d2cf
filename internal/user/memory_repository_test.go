package user

import (
	"context"
	"errors"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestGetOrCreateCreates(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	u, created, err := repo.GetOrCreate(ctx, Profile{TelegramID: 42, FirstName: strPtr("Ann")})
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}
	if !created {
		t.Fatalf("expected created=true for a new identity")
	}
	if u.ID == 0 {
		t.Fatalf("expected assigned internal id")
	}
	if u.TelegramID != 42 {
		t.Fatalf("expected telegram id 42, got %d", u.TelegramID)
	}
}

func TestGetOrCreateReturnsExisting(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	first, _, err := repo.GetOrCreate(ctx, Profile{TelegramID: 42, FirstName: strPtr("Ann")})
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, created, err := repo.GetOrCreate(ctx, Profile{TelegramID: 42, FirstName: strPtr("Ann")})
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if created {
		t.Fatalf("expected created=false for an existing identity")
	}
	if second.ID != first.ID {
		t.Fatalf("internal id changed: %d then %d", first.ID, second.ID)
	}
}

func TestGetOrCreateReconcilesChangedFields(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	initial, _, err := repo.GetOrCreate(ctx, Profile{TelegramID: 42, FirstName: strPtr("Ann"), Username: strPtr("ann42")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, _, err := repo.GetOrCreate(ctx, Profile{TelegramID: 42, FirstName: strPtr("Anna")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.FirstName == nil || *updated.FirstName != "Anna" {
		t.Fatalf("expected first name Anna, got %v", updated.FirstName)
	}
	// The auth payload omitted the username; the stored value must survive.
	if updated.Username == nil || *updated.Username != "ann42" {
		t.Fatalf("nil field overwrote stored username: %v", updated.Username)
	}
	if !updated.UpdatedAt.After(initial.UpdatedAt) && !updated.UpdatedAt.Equal(initial.UpdatedAt) {
		t.Fatalf("updated_at went backwards")
	}
}

func TestGetByID(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	u, _, err := repo.GetOrCreate(ctx, Profile{TelegramID: 42, FirstName: strPtr("Ann")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got.TelegramID != 42 {
		t.Fatalf("expected telegram id 42, got %d", got.TelegramID)
	}

	if _, err := repo.GetByID(ctx, 9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
