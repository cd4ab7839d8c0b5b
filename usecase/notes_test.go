package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"jotbox/model"
	"jotbox/testutils"
)

func strPtr(s string) *string { return &s }

func TestCreateNote(t *testing.T) {
	svc := NewNotesService(testutils.NewMemNotesRepo())
	ctx := context.Background()

	note, err := svc.Create(ctx, "owner-1", "Groceries", "milk, eggs")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if note.ID == "" {
		t.Error("Expected a generated note id")
	}
	if note.UserID != "owner-1" {
		t.Errorf("Expected owner-1, got %q", note.UserID)
	}
	if note.CreatedAt.IsZero() || note.UpdatedAt.IsZero() {
		t.Error("Expected timestamps to be set")
	}
	if !note.CreatedAt.Equal(note.UpdatedAt) {
		t.Error("Expected created_at == updated_at on a fresh note")
	}
}

func TestCreateNoteDefaultsContent(t *testing.T) {
	svc := NewNotesService(testutils.NewMemNotesRepo())

	note, err := svc.Create(context.Background(), "owner-1", "T", "")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if note.Content != "" {
		t.Errorf("Expected empty content, got %q", note.Content)
	}
}

func TestCreateNoteValidation(t *testing.T) {
	svc := NewNotesService(testutils.NewMemNotesRepo())
	ctx := context.Background()

	tests := []struct {
		name  string
		title string
	}{
		{name: "Empty Title", title: ""},
		{name: "Whitespace Title", title: "   "},
		{name: "Title Too Long", title: strings.Repeat("x", 201)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, "owner-1", tt.title, "content")
			if !IsNoteValidationError(err) {
				t.Errorf("Expected a validation error, got %v", err)
			}
		})
	}
}

func TestCreateNoteMultibyteTitle(t *testing.T) {
	svc := NewNotesService(testutils.NewMemNotesRepo())
	ctx := context.Background()

	// 100 CJK characters are 300 bytes but well within the 200-character limit
	title := strings.Repeat("注", 100)
	note, err := svc.Create(ctx, "owner-1", title, "")
	if err != nil {
		t.Fatalf("Create rejected a 100-character multibyte title: %v", err)
	}
	if note.Title != title {
		t.Errorf("Title stored as %q, want %q", note.Title, title)
	}

	// 201 characters is over the limit regardless of byte width
	if _, err := svc.Create(ctx, "owner-1", strings.Repeat("注", 201), ""); !IsNoteValidationError(err) {
		t.Errorf("Expected a validation error for a 201-character title, got %v", err)
	}
}

func TestListOrderedByRecency(t *testing.T) {
	svc := NewNotesService(testutils.NewMemNotesRepo())
	ctx := context.Background()

	n1, err := svc.Create(ctx, "owner-1", "N1", "")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	time.Sleep(2 * time.Millisecond)
	n2, err := svc.Create(ctx, "owner-1", "N2", "")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	notes, err := svc.List(ctx, "owner-1")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("Expected 2 notes, got %d", len(notes))
	}
	if notes[0].ID != n2.ID || notes[1].ID != n1.ID {
		t.Error("Expected most recently updated note first")
	}

	// Updating N1 moves it to the front
	time.Sleep(2 * time.Millisecond)
	if _, err := svc.Update(ctx, "owner-1", n1.ID, model.NotePatch{Content: strPtr("v2")}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	notes, err = svc.List(ctx, "owner-1")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if notes[0].ID != n1.ID {
		t.Error("Expected updated note to list first")
	}
}

func TestOwnershipIsolation(t *testing.T) {
	svc := NewNotesService(testutils.NewMemNotesRepo())
	ctx := context.Background()

	note, err := svc.Create(ctx, "user-a", "A's note", "private")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Every operation through B's identity yields not-found, never forbidden
	if _, err := svc.Get(ctx, "user-b", note.ID); !errors.Is(err, model.ErrNoteNotFound) {
		t.Errorf("Get as foreign user: expected ErrNoteNotFound, got %v", err)
	}
	if _, err := svc.Update(ctx, "user-b", note.ID, model.NotePatch{Title: strPtr("stolen")}); !errors.Is(err, model.ErrNoteNotFound) {
		t.Errorf("Update as foreign user: expected ErrNoteNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, "user-b", note.ID); !errors.Is(err, model.ErrNoteNotFound) {
		t.Errorf("Delete as foreign user: expected ErrNoteNotFound, got %v", err)
	}

	// The owner still sees the unmodified note
	got, err := svc.Get(ctx, "user-a", note.ID)
	if err != nil {
		t.Fatalf("Get as owner failed: %v", err)
	}
	if got.Title != "A's note" {
		t.Errorf("Note title changed to %q after foreign access attempts", got.Title)
	}

	// B's listing contains nothing of A's
	foreign, err := svc.List(ctx, "user-b")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(foreign) != 0 {
		t.Errorf("Expected empty listing for user-b, got %d notes", len(foreign))
	}
}

func TestPartialUpdate(t *testing.T) {
	svc := NewNotesService(testutils.NewMemNotesRepo())
	ctx := context.Background()

	note, err := svc.Create(ctx, "owner-1", "Original Title", "original content")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	time.Sleep(2 * time.Millisecond)

	// Update title only
	updated, err := svc.Update(ctx, "owner-1", note.ID, model.NotePatch{Title: strPtr("New Title")})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Title != "New Title" {
		t.Errorf("Expected title to change, got %q", updated.Title)
	}
	if updated.Content != "original content" {
		t.Errorf("Content must be untouched, got %q", updated.Content)
	}
	if !updated.UpdatedAt.After(note.UpdatedAt) {
		t.Error("Expected updated_at to advance")
	}
	if !updated.CreatedAt.Equal(note.CreatedAt) {
		t.Error("created_at must never change")
	}

	// Update content only
	updated2, err := svc.Update(ctx, "owner-1", note.ID, model.NotePatch{Content: strPtr("new content")})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated2.Title != "New Title" {
		t.Errorf("Title must be untouched, got %q", updated2.Title)
	}
	if updated2.Content != "new content" {
		t.Errorf("Expected content to change, got %q", updated2.Content)
	}
}

func TestUpdateValidatesTitle(t *testing.T) {
	svc := NewNotesService(testutils.NewMemNotesRepo())
	ctx := context.Background()

	note, err := svc.Create(ctx, "owner-1", "T", "")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := svc.Update(ctx, "owner-1", note.ID, model.NotePatch{Title: strPtr("  ")}); !IsNoteValidationError(err) {
		t.Errorf("Expected a validation error for blank title, got %v", err)
	}
}

func TestDeleteThenGet(t *testing.T) {
	svc := NewNotesService(testutils.NewMemNotesRepo())
	ctx := context.Background()

	note, err := svc.Create(ctx, "owner-1", "T", "")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := svc.Delete(ctx, "owner-1", note.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := svc.Get(ctx, "owner-1", note.ID); !errors.Is(err, model.ErrNoteNotFound) {
		t.Errorf("Expected ErrNoteNotFound after delete, got %v", err)
	}

	if err := svc.Delete(ctx, "owner-1", note.ID); !errors.Is(err, model.ErrNoteNotFound) {
		t.Errorf("Expected ErrNoteNotFound on double delete, got %v", err)
	}
}
