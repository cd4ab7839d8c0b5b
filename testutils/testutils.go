// Package testutils provides in-memory repository fakes matching the
// contracts of the Mongo-backed repositories, for handler and usecase tests
// that should not need a database.
package testutils

import (
	"context"
	"sort"
	"sync"
	"time"

	"jotbox/model"
)

// MemUserRepo is an in-memory usecase.UserRepository with the same email
// uniqueness semantics as the Mongo unique index.
type MemUserRepo struct {
	mu    sync.Mutex
	users map[string]*model.User // keyed by id
}

func NewMemUserRepo() *MemUserRepo {
	return &MemUserRepo{users: make(map[string]*model.User)}
}

func (r *MemUserRepo) Insert(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return model.ErrEmailTaken
		}
	}

	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *MemUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			found := *user
			return &found, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (r *MemUserRepo) FindByID(_ context.Context, userID string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	found := *user
	return &found, nil
}

// MemNotesRepo is an in-memory usecase.NotesRepository. Ownership filtering
// matches the Mongo repository: a foreign-owned note behaves exactly like a
// missing one.
type MemNotesRepo struct {
	mu    sync.Mutex
	notes []*model.Note // insertion order preserved
}

func NewMemNotesRepo() *MemNotesRepo {
	return &MemNotesRepo{}
}

func (r *MemNotesRepo) Insert(_ context.Context, note *model.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *note
	r.notes = append(r.notes, &stored)
	return nil
}

func (r *MemNotesRepo) FindByOwner(_ context.Context, ownerID string) ([]*model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	owned := []*model.Note{}
	for _, note := range r.notes {
		if note.UserID == ownerID {
			found := *note
			owned = append(owned, &found)
		}
	}

	sort.SliceStable(owned, func(i, j int) bool {
		return owned[i].UpdatedAt.After(owned[j].UpdatedAt)
	})

	return owned, nil
}

func (r *MemNotesRepo) FindByID(_ context.Context, ownerID, noteID string) (*model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	note := r.find(ownerID, noteID)
	if note == nil {
		return nil, model.ErrNoteNotFound
	}
	found := *note
	return &found, nil
}

func (r *MemNotesRepo) Update(_ context.Context, ownerID, noteID string, patch model.NotePatch) (*model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	note := r.find(ownerID, noteID)
	if note == nil {
		return nil, model.ErrNoteNotFound
	}

	if patch.Title != nil {
		note.Title = *patch.Title
	}
	if patch.Content != nil {
		note.Content = *patch.Content
	}
	note.UpdatedAt = time.Now().UTC()

	updated := *note
	return &updated, nil
}

func (r *MemNotesRepo) Delete(_ context.Context, ownerID, noteID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, note := range r.notes {
		if note.ID == noteID && note.UserID == ownerID {
			r.notes = append(r.notes[:i], r.notes[i+1:]...)
			return nil
		}
	}
	return model.ErrNoteNotFound
}

func (r *MemNotesRepo) find(ownerID, noteID string) *model.Note {
	for _, note := range r.notes {
		if note.ID == noteID && note.UserID == ownerID {
			return note
		}
	}
	return nil
}
