package store

import "github.com/jacklucas/notes-api/internal/logger"

// Storages bundles every repository the service layer depends on.
type Storages struct {
	NoteRepository NoteRepository
	TagRepository  TagRepository
}

// NewStorages wires the PostgreSQL-backed repositories to the given database
// connection and logger.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		NoteRepository: NewNoteRepository(db, log),
		TagRepository:  NewTagRepository(db, log),
	}
}
