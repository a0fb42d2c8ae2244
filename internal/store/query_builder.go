package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jacklucas/notes-api/models"
)

// psql is the shared squirrel statement builder configured for PostgreSQL
// positional placeholders ($1, $2, ...).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// noteSortColumns whitelists the note columns a caller may sort by. Anything
// outside this set falls back to created_at so that user input never reaches
// the ORDER BY clause verbatim.
var noteSortColumns = map[string]string{
	"created_at": "n.created_at",
	"updated_at": "n.updated_at",
	"title":      "n.title",
}

// tagSortColumns whitelists the tag columns a caller may sort by.
var tagSortColumns = map[string]string{
	"created_at": "created_at",
	"name":       "name",
}

func orderClause(columns map[string]string, req models.PageRequest) string {
	column, ok := columns[req.Sort]
	if !ok {
		column = columns[models.DefaultSort]
	}

	direction := "DESC"
	if req.Order == models.OrderAsc {
		direction = "ASC"
	}

	return fmt.Sprintf("%s %s", column, direction)
}

// buildListNotesQuery builds the paged SELECT over notes for one owner.
// When tagName is non-empty the query joins through note_tags so that only
// notes carrying that exact tag are returned.
func buildListNotesQuery(userID string, tagName string, req models.PageRequest) (string, []any, error) {
	builder := psql.
		Select("n.id", "n.user_id", "n.title", "n.content", "n.archived", "n.created_at", "n.updated_at").
		From("notes n").
		Where(sq.Eq{"n.user_id": userID})

	if tagName != "" {
		builder = builder.
			Join("note_tags nt ON nt.note_id = n.id").
			Join("tags t ON t.id = nt.tag_id").
			Where(sq.Eq{"t.name": tagName})
	}

	builder = builder.
		OrderBy(orderClause(noteSortColumns, req)).
		Limit(uint64(req.Size)).
		Offset(uint64(req.Offset()))

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildCountNotesQuery builds the matching COUNT(*) for [buildListNotesQuery],
// with the same owner scope and optional tag filter but no ordering or paging.
func buildCountNotesQuery(userID string, tagName string) (string, []any, error) {
	builder := psql.
		Select("COUNT(*)").
		From("notes n").
		Where(sq.Eq{"n.user_id": userID})

	if tagName != "" {
		builder = builder.
			Join("note_tags nt ON nt.note_id = n.id").
			Join("tags t ON t.id = nt.tag_id").
			Where(sq.Eq{"t.name": tagName})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildListTagsQuery builds the paged SELECT over one owner's tags.
func buildListTagsQuery(userID string, req models.PageRequest) (string, []any, error) {
	query, args, err := psql.
		Select("id", "user_id", "name", "created_at").
		From("tags").
		Where(sq.Eq{"user_id": userID}).
		OrderBy(orderClause(tagSortColumns, req)).
		Limit(uint64(req.Size)).
		Offset(uint64(req.Offset())).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildCountTagsQuery builds the matching COUNT(*) for [buildListTagsQuery].
func buildCountTagsQuery(userID string) (string, []any, error) {
	query, args, err := psql.
		Select("COUNT(*)").
		From("tags").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
