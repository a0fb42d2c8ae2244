package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jacklucas/notes-api/internal/logger"
	"github.com/jacklucas/notes-api/models"
)

// tagRepository is the PostgreSQL-backed implementation of [TagRepository].
// Per-owner name uniqueness is enforced by the UNIQUE (user_id, name)
// constraint on the tags table; this repository translates the resulting
// unique_violation errors into [ErrTagNameTaken].
type tagRepository struct {
	*DB
	logger *logger.Logger
}

// NewTagRepository constructs a [TagRepository] backed by the provided
// database connection and logger.
func NewTagRepository(db *DB, logger *logger.Logger) TagRepository {
	return &tagRepository{
		DB:     db,
		logger: logger,
	}
}

// Create persists a new tag.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrTagNameTaken].
//   - Any other driver-level error → wrapped as [ErrExecutingStatement].
func (r *tagRepository) Create(ctx context.Context, tag *models.Tag) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, insertTag, tag.ID, tag.UserID, tag.Name, tag.CreatedAt)
	if err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return ErrTagNameTaken
		default:
			log.Err(err).
				Str("func", "tagRepository.Create").
				Str("user_id", tag.UserID).
				Str("name", tag.Name).
				Msg("failed to insert tag")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

// GetByID returns one tag scoped to its owner. Absence and foreign ownership
// both surface as [ErrTagNotFound].
func (r *tagRepository) GetByID(ctx context.Context, tagID string, userID string) (*models.Tag, error) {
	log := logger.FromContext(ctx)

	var tag models.Tag
	row := r.DB.QueryRowContext(ctx, getTagByID, tagID, userID)

	if err := row.Scan(&tag.ID, &tag.UserID, &tag.Name, &tag.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTagNotFound
		}
		log.Err(err).
			Str("func", "tagRepository.GetByID").
			Str("tag_id", tagID).
			Str("user_id", userID).
			Msg("failed to scan tag row")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return &tag, nil
}

// FindByName returns the owner's tag with the exact given name.
// The match is case-sensitive.
func (r *tagRepository) FindByName(ctx context.Context, userID string, name string) (*models.Tag, error) {
	log := logger.FromContext(ctx)

	var tag models.Tag
	row := r.DB.QueryRowContext(ctx, getTagByName, userID, name)

	if err := row.Scan(&tag.ID, &tag.UserID, &tag.Name, &tag.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTagNotFound
		}
		log.Err(err).
			Str("func", "tagRepository.FindByName").
			Str("user_id", userID).
			Str("name", name).
			Msg("failed to scan tag row")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return &tag, nil
}

// List returns one page of the owner's tags plus the total count.
func (r *tagRepository) List(ctx context.Context, userID string, req models.PageRequest) ([]*models.Tag, int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListTagsQuery(userID, req)
	if err != nil {
		log.Err(err).
			Str("func", "tagRepository.List").
			Str("user_id", userID).
			Msg("failed to build list query")
		return nil, 0, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "tagRepository.List").
			Str("user_id", userID).
			Msg("failed to execute list query")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tags := make([]*models.Tag, 0, req.Size)

	for rows.Next() {
		var tag models.Tag

		scanErr := rows.Scan(&tag.ID, &tag.UserID, &tag.Name, &tag.CreatedAt)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "tagRepository.List").
				Str("user_id", userID).
				Msg("failed to scan tag row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		tags = append(tags, &tag)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "tagRepository.List").
			Str("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	countQuery, countArgs, err := buildCountTagsQuery(userID)
	if err != nil {
		log.Err(err).
			Str("func", "tagRepository.List").
			Str("user_id", userID).
			Msg("failed to build count query")
		return nil, 0, err
	}

	var total int64
	if err := r.DB.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).
			Str("func", "tagRepository.List").
			Str("user_id", userID).
			Msg("failed to count tags")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return tags, total, nil
}

// Rename changes the tag's name.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrTagNameTaken].
//   - Zero affected rows → [ErrTagNotFound].
func (r *tagRepository) Rename(ctx context.Context, tagID string, userID string, newName string) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, renameTag, tagID, userID, newName)
	if err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return ErrTagNameTaken
		default:
			log.Err(err).
				Str("func", "tagRepository.Rename").
				Str("tag_id", tagID).
				Str("user_id", userID).
				Msg("failed to rename tag")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "tagRepository.Rename").
			Str("tag_id", tagID).
			Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrTagNotFound
	}

	return nil
}

// Delete removes one tag. Links to notes disappear with it through the
// ON DELETE CASCADE constraint; the notes themselves are untouched.
func (r *tagRepository) Delete(ctx context.Context, tagID string, userID string) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteTagByID, tagID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "tagRepository.Delete").
			Str("tag_id", tagID).
			Str("user_id", userID).
			Msg("failed to delete tag")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "tagRepository.Delete").
			Str("tag_id", tagID).
			Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrTagNotFound
	}

	return nil
}
