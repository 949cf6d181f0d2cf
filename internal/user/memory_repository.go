package user

import (
	"context"
	"sync"
	"time"
)

type memoryRepository struct {
	mu         sync.Mutex
	byTelegram map[int64]*User
	byID       map[int64]*User
	nextID     int64
}

// NewMemoryRepository builds an in-memory user store for development and tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		byTelegram: make(map[int64]*User),
		byID:       make(map[int64]*User),
		nextID:     1,
	}
}

func (r *memoryRepository) GetOrCreate(_ context.Context, profile Profile) (User, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	if existing, ok := r.byTelegram[profile.TelegramID]; ok {
		changed := false
		if profile.Username != nil && !equal(existing.Username, profile.Username) {
			existing.Username = profile.Username
			changed = true
		}
		if profile.FirstName != nil && !equal(existing.FirstName, profile.FirstName) {
			existing.FirstName = profile.FirstName
			changed = true
		}
		if profile.LastName != nil && !equal(existing.LastName, profile.LastName) {
			existing.LastName = profile.LastName
			changed = true
		}
		if changed {
			existing.UpdatedAt = now
		}
		return *existing, false, nil
	}

	u := &User{
		ID:         r.nextID,
		TelegramID: profile.TelegramID,
		Username:   profile.Username,
		FirstName:  profile.FirstName,
		LastName:   profile.LastName,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	r.nextID++
	r.byTelegram[u.TelegramID] = u
	r.byID[u.ID] = u
	return *u, true, nil
}

func (r *memoryRepository) GetByID(_ context.Context, id int64) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return *u, nil
}

func equal(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
