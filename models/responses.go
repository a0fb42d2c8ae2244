package models

import "time"

// NoteResponse is the outward view of a note. Tag names are surfaced as a
// plain list; their order is not significant.
type NoteResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Archived  bool      `json:"archived"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Tags      []string  `json:"tags"`
}

// NoteResponseFrom converts a persisted note into its outward view.
func NoteResponseFrom(n *Note) NoteResponse {
	return NoteResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		Archived:  n.Archived,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
		Tags:      n.TagNames(),
	}
}

// TagResponse is the outward view of a tag.
type TagResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// TagResponseFrom converts a persisted tag into its outward view.
func TagResponseFrom(t *Tag) TagResponse {
	return TagResponse{
		ID:        t.ID,
		Name:      t.Name,
		CreatedAt: t.CreatedAt,
	}
}

// FieldErrorItem names a single request field that failed validation
// together with a human-readable message.
type FieldErrorItem struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// ErrorResponse is the JSON body returned for every failed request.
// FieldErrors is populated only for validation failures.
type ErrorResponse struct {
	Status      int              `json:"status"`
	Error       string           `json:"error"`
	Message     string           `json:"message"`
	Path        string           `json:"path"`
	Timestamp   time.Time        `json:"timestamp"`
	FieldErrors []FieldErrorItem `json:"field_errors,omitempty"`
}
