package service

import (
	"context"
	"strings"

	"github.com/jacklucas/notes-api/internal/logger"
	"github.com/jacklucas/notes-api/internal/store"
	"github.com/jacklucas/notes-api/internal/utils"
	"github.com/jacklucas/notes-api/models"
)

// noteService implements [NoteService] on top of the note repository and the
// shared tag resolver. Ownership is enforced one layer down: every repository
// call carries the userID, so a foreign note simply does not exist from this
// service's point of view.
type noteService struct {
	noteRepository store.NoteRepository
	tagResolver    *tagResolver
	uuid           *utils.UUIDGenerator

	logger *logger.Logger
}

func NewNoteService(noteRepository store.NoteRepository, tagRepository store.TagRepository, logger *logger.Logger) NoteService {
	uuid := utils.NewUUIDGenerator()
	return &noteService{
		noteRepository: noteRepository,
		tagResolver:    newTagResolver(tagRepository, uuid, logger),
		uuid:           uuid,
		logger:         logger,
	}
}

// CreateNote persists a new note. Title and content are stored exactly as
// given; only the tag names pass through normalization.
func (s *noteService) CreateNote(ctx context.Context, userID string, req models.CreateNoteRequest) (*models.Note, error) {
	fields := make([]models.FieldErrorItem, 0, 2)
	if strings.TrimSpace(req.Title) == "" {
		fields = append(fields, fieldError("title", "must not be blank"))
	}
	if req.Content == nil {
		fields = append(fields, fieldError("content", "must not be null"))
	}
	if len(fields) > 0 {
		return nil, newValidationError(fields...)
	}

	tags, err := s.tagResolver.Resolve(ctx, userID, req.Tags)
	if err != nil {
		return nil, err
	}

	note := models.NewNote(userID, req.Title, *req.Content)
	note.ID = s.uuid.Generate()
	note.Tags = tags

	if err := s.noteRepository.Create(ctx, note); err != nil {
		return nil, err
	}

	return note, nil
}

func (s *noteService) GetNote(ctx context.Context, userID string, noteID string) (*models.Note, error) {
	return s.noteRepository.GetByID(ctx, noteID, userID)
}

func (s *noteService) ListNotes(ctx context.Context, userID string, tagName string, req models.PageRequest) (models.Page[*models.Note], error) {
	req = req.Normalize()

	notes, total, err := s.noteRepository.List(ctx, userID, strings.TrimSpace(tagName), req)
	if err != nil {
		return models.Page[*models.Note]{}, err
	}

	return models.NewPage(notes, req, total), nil
}

// ReplaceNote applies full PUT semantics: every mutable field is
// overwritten, title and content are stored trimmed, and an absent tag list
// clears the tag set.
func (s *noteService) ReplaceNote(ctx context.Context, userID string, noteID string, req models.PutNoteRequest) (*models.Note, error) {
	fields := make([]models.FieldErrorItem, 0, 3)
	if strings.TrimSpace(req.Title) == "" {
		fields = append(fields, fieldError("title", "must not be blank"))
	}
	if req.Content == nil {
		fields = append(fields, fieldError("content", "must not be null"))
	}
	if req.Archived == nil {
		fields = append(fields, fieldError("archived", "must not be null"))
	}
	if len(fields) > 0 {
		return nil, newValidationError(fields...)
	}

	note, err := s.noteRepository.GetByID(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}

	tags, err := s.tagResolver.Resolve(ctx, userID, req.Tags)
	if err != nil {
		return nil, err
	}

	note.Title = strings.TrimSpace(req.Title)
	note.Content = strings.TrimSpace(*req.Content)
	note.Archived = *req.Archived
	note.Tags = tags
	note.Touch()

	if err := s.noteRepository.Update(ctx, note); err != nil {
		return nil, err
	}

	return note, nil
}

// PatchNote applies partial update semantics: only present fields change,
// and they are stored exactly as given. A present tag list replaces the
// whole tag set, including the empty list, which clears it.
func (s *noteService) PatchNote(ctx context.Context, userID string, noteID string, req models.PatchNoteRequest) (*models.Note, error) {
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return nil, newValidationError(fieldError("title", "must not be blank"))
	}

	note, err := s.noteRepository.GetByID(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Content != nil {
		note.Content = *req.Content
	}
	if req.Archived != nil {
		note.Archived = *req.Archived
	}
	if req.Tags != nil {
		tags, resolveErr := s.tagResolver.Resolve(ctx, userID, *req.Tags)
		if resolveErr != nil {
			return nil, resolveErr
		}
		note.Tags = tags
	}

	note.Touch()

	if err := s.noteRepository.Update(ctx, note); err != nil {
		return nil, err
	}

	return note, nil
}

func (s *noteService) DeleteNote(ctx context.Context, userID string, noteID string) error {
	return s.noteRepository.Delete(ctx, noteID, userID)
}
