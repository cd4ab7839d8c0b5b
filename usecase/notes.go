package usecase

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"jotbox/model"
	"jotbox/utils"

	"github.com/google/uuid"
)

// NotesRepository is the persistence surface the notes service needs. Every
// method takes the owner id; ownership is enforced unconditionally below this
// line, never above it.
type NotesRepository interface {
	Insert(ctx context.Context, note *model.Note) error
	FindByOwner(ctx context.Context, ownerID string) ([]*model.Note, error)
	FindByID(ctx context.Context, ownerID, noteID string) (*model.Note, error)
	Update(ctx context.Context, ownerID, noteID string, patch model.NotePatch) (*model.Note, error)
	Delete(ctx context.Context, ownerID, noteID string) error
}

type NotesService struct {
	NotesRepo NotesRepository
}

func NewNotesService(repo NotesRepository) *NotesService {
	return &NotesService{NotesRepo: repo}
}

var (
	errTitleRequired = errors.New("note title is required")
	errTitleTooLong  = errors.New("note title exceeds maximum length")
)

// IsNoteValidationError reports whether err is a caller-input problem.
func IsNoteValidationError(err error) bool {
	return errors.Is(err, errTitleRequired) || errors.Is(err, errTitleTooLong)
}

func validateTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", errTitleRequired
	}
	// Length limits count characters, not bytes, matching the binding layer.
	if utf8.RuneCountInString(trimmed) > utils.MaxTitleLength {
		return "", errTitleTooLong
	}
	return trimmed, nil
}

// Create stores a new note owned by ownerID. Content is optional and
// defaults to empty.
func (s *NotesService) Create(ctx context.Context, ownerID, title, content string) (*model.Note, error) {
	trimmed, err := validateTitle(title)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	note := &model.Note{
		ID:        uuid.NewString(),
		UserID:    ownerID,
		Title:     trimmed,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.NotesRepo.Insert(ctx, note); err != nil {
		return nil, err
	}

	utils.TrackNoteOperation("create")
	return note, nil
}

// List returns the owner's notes, most recently updated first.
func (s *NotesService) List(ctx context.Context, ownerID string) ([]*model.Note, error) {
	return s.NotesRepo.FindByOwner(ctx, ownerID)
}

func (s *NotesService) Get(ctx context.Context, ownerID, noteID string) (*model.Note, error) {
	return s.NotesRepo.FindByID(ctx, ownerID, noteID)
}

// Update applies a partial patch. Absent fields keep their prior value;
// updated_at is always refreshed.
func (s *NotesService) Update(ctx context.Context, ownerID, noteID string, patch model.NotePatch) (*model.Note, error) {
	if patch.Title != nil {
		trimmed, err := validateTitle(*patch.Title)
		if err != nil {
			return nil, err
		}
		patch.Title = &trimmed
	}

	note, err := s.NotesRepo.Update(ctx, ownerID, noteID, patch)
	if err != nil {
		return nil, err
	}

	utils.TrackNoteOperation("update")
	return note, nil
}

func (s *NotesService) Delete(ctx context.Context, ownerID, noteID string) error {
	if err := s.NotesRepo.Delete(ctx, ownerID, noteID); err != nil {
		return err
	}

	utils.TrackNoteOperation("delete")
	return nil
}
