package store

const (
	insertNote = `INSERT INTO notes (id, user_id, title, content, archived, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7);`

	updateNote = `UPDATE notes
    SET title = $3, content = $4, archived = $5, updated_at = $6
    WHERE id = $1 AND user_id = $2;`

	getNoteByID = `SELECT id, user_id, title, content, archived, created_at, updated_at
    FROM notes
    WHERE id = $1 AND user_id = $2;`

	deleteNoteByID = `DELETE FROM notes
    WHERE id = $1 AND user_id = $2;`

	deleteNoteTags = `DELETE FROM note_tags
    WHERE note_id = $1;`

	insertNoteTag = `INSERT INTO note_tags (note_id, tag_id)
    VALUES ($1, $2);`

	getTagsForNote = `SELECT t.id, t.user_id, t.name, t.created_at
    FROM tags t
    JOIN note_tags nt ON nt.tag_id = t.id
    WHERE nt.note_id = $1
    ORDER BY t.name;`

	insertTag = `INSERT INTO tags (id, user_id, name, created_at)
    VALUES ($1, $2, $3, $4);`

	getTagByID = `SELECT id, user_id, name, created_at
    FROM tags
    WHERE id = $1 AND user_id = $2;`

	getTagByName = `SELECT id, user_id, name, created_at
    FROM tags
    WHERE user_id = $1 AND name = $2;`

	renameTag = `UPDATE tags
    SET name = $3
    WHERE id = $1 AND user_id = $2;`

	deleteTagByID = `DELETE FROM tags
    WHERE id = $1 AND user_id = $2;`
)
