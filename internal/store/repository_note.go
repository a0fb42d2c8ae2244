package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jacklucas/notes-api/internal/logger"
	"github.com/jacklucas/notes-api/models"
)

// noteRepository is the PostgreSQL-backed implementation of [NoteRepository].
// It keeps the "notes" table and the "note_tags" link table consistent by
// running every write that touches both inside a single transaction.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (user_id, note_id, tag counts).
type noteRepository struct {
	*DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

// Create persists a new note row and one link row per attached tag.
// The note and its links commit or roll back together.
func (r *noteRepository) Create(ctx context.Context, note *models.Note) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.Create").
			Str("user_id", note.UserID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, insertNote,
		note.ID,
		note.UserID,
		note.Title,
		note.Content,
		note.Archived,
		note.CreatedAt,
		note.UpdatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.Create").
			Str("note_id", note.ID).
			Str("user_id", note.UserID).
			Msg("failed to insert note")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := insertNoteLinks(ctx, tx, note); err != nil {
		log.Err(err).
			Str("func", "noteRepository.Create").
			Str("note_id", note.ID).
			Int("tags_count", len(note.Tags)).
			Msg("failed to link tags to note")
		return err
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "noteRepository.Create").
			Str("note_id", note.ID).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Debug().
		Str("func", "noteRepository.Create").
		Str("note_id", note.ID).
		Str("user_id", note.UserID).
		Int("tags_count", len(note.Tags)).
		Msg("note created")

	return nil
}

// GetByID returns one note with its tags loaded. Absence and foreign
// ownership both surface as [ErrNoteNotFound].
func (r *noteRepository) GetByID(ctx context.Context, noteID string, userID string) (*models.Note, error) {
	log := logger.FromContext(ctx)

	var note models.Note
	row := r.DB.QueryRowContext(ctx, getNoteByID, noteID, userID)

	err := row.Scan(
		&note.ID,
		&note.UserID,
		&note.Title,
		&note.Content,
		&note.Archived,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoteNotFound
		}
		log.Err(err).
			Str("func", "noteRepository.GetByID").
			Str("note_id", noteID).
			Str("user_id", userID).
			Msg("failed to scan note row")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	tags, err := r.loadTags(ctx, note.ID)
	if err != nil {
		return nil, err
	}
	note.Tags = tags

	return &note, nil
}

// List returns one page of the owner's notes plus the total match count.
// Tags are loaded per returned note, so the cost is bounded by the page size.
func (r *noteRepository) List(ctx context.Context, userID string, tagName string, req models.PageRequest) ([]*models.Note, int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNotesQuery(userID, tagName, req)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.List").
			Str("user_id", userID).
			Msg("failed to build list query")
		return nil, 0, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.List").
			Str("user_id", userID).
			Str("tag", tagName).
			Msg("failed to execute list query")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]*models.Note, 0, req.Size)

	for rows.Next() {
		var note models.Note

		scanErr := rows.Scan(
			&note.ID,
			&note.UserID,
			&note.Title,
			&note.Content,
			&note.Archived,
			&note.CreatedAt,
			&note.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "noteRepository.List").
				Str("user_id", userID).
				Msg("failed to scan note row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		notes = append(notes, &note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "noteRepository.List").
			Str("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	for _, note := range notes {
		tags, tagsErr := r.loadTags(ctx, note.ID)
		if tagsErr != nil {
			return nil, 0, tagsErr
		}
		note.Tags = tags
	}

	countQuery, countArgs, err := buildCountNotesQuery(userID, tagName)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.List").
			Str("user_id", userID).
			Msg("failed to build count query")
		return nil, 0, err
	}

	var total int64
	if err := r.DB.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).
			Str("func", "noteRepository.List").
			Str("user_id", userID).
			Msg("failed to count notes")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return notes, total, nil
}

// Update rewrites the note row and replaces its tag links atomically.
// The UPDATE is owner-scoped, so a zero row count means the note does not
// exist for this owner.
func (r *noteRepository) Update(ctx context.Context, note *models.Note) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.Update").
			Str("note_id", note.ID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, updateNote,
		note.ID,
		note.UserID,
		note.Title,
		note.Content,
		note.Archived,
		note.UpdatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.Update").
			Str("note_id", note.ID).
			Str("user_id", note.UserID).
			Msg("failed to update note")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.Update").
			Str("note_id", note.ID).
			Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	if _, err := tx.ExecContext(ctx, deleteNoteTags, note.ID); err != nil {
		log.Err(err).
			Str("func", "noteRepository.Update").
			Str("note_id", note.ID).
			Msg("failed to clear tag links")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := insertNoteLinks(ctx, tx, note); err != nil {
		log.Err(err).
			Str("func", "noteRepository.Update").
			Str("note_id", note.ID).
			Int("tags_count", len(note.Tags)).
			Msg("failed to link tags to note")
		return err
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "noteRepository.Update").
			Str("note_id", note.ID).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Debug().
		Str("func", "noteRepository.Update").
		Str("note_id", note.ID).
		Str("user_id", note.UserID).
		Int("tags_count", len(note.Tags)).
		Msg("note updated")

	return nil
}

// Delete removes one note. The note_tags links disappear with it through
// the ON DELETE CASCADE constraint.
func (r *noteRepository) Delete(ctx context.Context, noteID string, userID string) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteNoteByID, noteID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.Delete").
			Str("note_id", noteID).
			Str("user_id", userID).
			Msg("failed to delete note")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.Delete").
			Str("note_id", noteID).
			Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

// loadTags fetches the tags attached to one note, sorted by name.
func (r *noteRepository) loadTags(ctx context.Context, noteID string) ([]models.Tag, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getTagsForNote, noteID)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.loadTags").
			Str("note_id", noteID).
			Msg("failed to query note tags")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tags := make([]models.Tag, 0, 8)

	for rows.Next() {
		var tag models.Tag

		scanErr := rows.Scan(&tag.ID, &tag.UserID, &tag.Name, &tag.CreatedAt)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "noteRepository.loadTags").
				Str("note_id", noteID).
				Msg("failed to scan tag row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		tags = append(tags, tag)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "noteRepository.loadTags").
			Str("note_id", noteID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return tags, nil
}

// insertNoteLinks writes one note_tags row per tag inside the caller's
// transaction.
func insertNoteLinks(ctx context.Context, tx *sql.Tx, note *models.Note) error {
	for _, tag := range note.Tags {
		if _, err := tx.ExecContext(ctx, insertNoteTag, note.ID, tag.ID); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}
	return nil
}
