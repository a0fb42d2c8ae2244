package store

import (
	"context"

	"github.com/jacklucas/notes-api/models"
)

// NoteRepository defines the persistence operations for notes.
// Every method is scoped by the owner's user id: a note that exists but
// belongs to a different owner behaves exactly like a missing note.
type NoteRepository interface {
	// Create persists a new note together with its tag links in a single
	// transaction.
	Create(ctx context.Context, note *models.Note) error

	// GetByID returns the note with the given id owned by userID, with its
	// tags loaded. Returns [ErrNoteNotFound] when no such note exists for
	// this owner.
	GetByID(ctx context.Context, noteID string, userID string) (*models.Note, error)

	// List returns one page of the owner's notes plus the total match count.
	// When tagName is non-empty only notes carrying that exact tag are
	// returned.
	List(ctx context.Context, userID string, tagName string, req models.PageRequest) ([]*models.Note, int64, error)

	// Update rewrites the note row and replaces its tag links in a single
	// transaction. Returns [ErrNoteNotFound] when the note does not exist
	// for this owner.
	Update(ctx context.Context, note *models.Note) error

	// Delete removes the note; its tag links go with it via ON DELETE
	// CASCADE. Returns [ErrNoteNotFound] when nothing was deleted.
	Delete(ctx context.Context, noteID string, userID string) error
}

// TagRepository defines the persistence operations for tags.
// Tag names are unique per owner; collisions surface as [ErrTagNameTaken].
type TagRepository interface {
	// Create persists a new tag. Returns [ErrTagNameTaken] when the owner
	// already has a tag with this name.
	Create(ctx context.Context, tag *models.Tag) error

	// GetByID returns the tag with the given id owned by userID.
	// Returns [ErrTagNotFound] when no such tag exists for this owner.
	GetByID(ctx context.Context, tagID string, userID string) (*models.Tag, error)

	// FindByName returns the owner's tag with the exact given name.
	// Returns [ErrTagNotFound] when no such tag exists.
	FindByName(ctx context.Context, userID string, name string) (*models.Tag, error)

	// List returns one page of the owner's tags plus the total count.
	List(ctx context.Context, userID string, req models.PageRequest) ([]*models.Tag, int64, error)

	// Rename changes the tag's name. Returns [ErrTagNotFound] when the tag
	// does not exist for this owner and [ErrTagNameTaken] when the new name
	// collides with another of the owner's tags.
	Rename(ctx context.Context, tagID string, userID string, newName string) error

	// Delete removes the tag and detaches it from every note via ON DELETE
	// CASCADE. Returns [ErrTagNotFound] when nothing was deleted.
	Delete(ctx context.Context, tagID string, userID string) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
