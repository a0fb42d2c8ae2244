package service

import (
	"context"

	"github.com/jacklucas/notes-api/models"
)

// NoteService exposes the note operations consumed by the HTTP layer.
// Every call is scoped to the authenticated owner's userID; a note that
// belongs to another owner is indistinguishable from a missing one.
type NoteService interface {
	// CreateNote validates the request, resolves its tag names, and
	// persists a new note for the owner.
	CreateNote(ctx context.Context, userID string, req models.CreateNoteRequest) (*models.Note, error)

	// GetNote returns one of the owner's notes with tags loaded.
	GetNote(ctx context.Context, userID string, noteID string) (*models.Note, error)

	// ListNotes returns one page of the owner's notes, optionally narrowed
	// to notes carrying the exact tag name.
	ListNotes(ctx context.Context, userID string, tagName string, req models.PageRequest) (models.Page[*models.Note], error)

	// ReplaceNote overwrites every mutable field of the note. Title and
	// content are stored trimmed; an absent tag list clears all tags.
	ReplaceNote(ctx context.Context, userID string, noteID string, req models.PutNoteRequest) (*models.Note, error)

	// PatchNote applies only the fields present in the request. A present
	// tag list replaces the whole tag set.
	PatchNote(ctx context.Context, userID string, noteID string, req models.PatchNoteRequest) (*models.Note, error)

	// DeleteNote removes one of the owner's notes.
	DeleteNote(ctx context.Context, userID string, noteID string) error
}

// TagService exposes the tag operations consumed by the HTTP layer.
type TagService interface {
	// CreateTag persists a new tag. A name the owner already uses is a
	// conflict, unlike the silent reuse performed during note tagging.
	CreateTag(ctx context.Context, userID string, req models.CreateTagRequest) (*models.Tag, error)

	// GetTag returns one of the owner's tags.
	GetTag(ctx context.Context, userID string, tagID string) (*models.Tag, error)

	// ListTags returns one page of the owner's tags.
	ListTags(ctx context.Context, userID string, req models.PageRequest) (models.Page[*models.Tag], error)

	// RenameTag changes a tag's name. Renaming a tag to its current name
	// is a no-op success; a name used by another of the owner's tags is a
	// conflict.
	RenameTag(ctx context.Context, userID string, tagID string, req models.PutTagRequest) (*models.Tag, error)

	// DeleteTag removes the tag and detaches it from every note.
	DeleteTag(ctx context.Context, userID string, tagID string) error
}

// AppInfoService reports build-time application metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
