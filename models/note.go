package models

import "time"

// Note represents a single free-text note owned by exactly one user.
// The owner is fixed at creation time and never changes afterwards.
type Note struct {
	// ID is the unique identifier of the note (UUID in string form).
	ID string `json:"id"`

	// UserID is the identifier of the owning user. It is taken from the
	// authenticated caller, never from a request body, and is not exposed
	// via JSON.
	UserID string `json:"-"`

	// Title is the required, non-blank note title.
	Title string `json:"title"`

	// Content is the free-text body of the note. It may be empty but is
	// always present on a persisted note.
	Content string `json:"content"`

	// Archived marks the note as archived. New notes start unarchived.
	Archived bool `json:"archived"`

	// CreatedAt is set once when the note is first persisted.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed on every mutation of the note.
	// Invariant: UpdatedAt >= CreatedAt.
	UpdatedAt time.Time `json:"updated_at"`

	// Tags is the set of tags associated with the note. A tag appears at
	// most once per note.
	Tags []Tag `json:"tags"`
}

// NewNote builds an unpersisted note for the given owner with both
// timestamps set to the current time. The ID is assigned by the caller.
func NewNote(userID, title, content string) *Note {
	now := time.Now().UTC()
	return &Note{
		UserID:    userID,
		Title:     title,
		Content:   content,
		Archived:  false,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch refreshes UpdatedAt. Called by the service before every mutation
// is persisted.
func (n *Note) Touch() {
	n.UpdatedAt = time.Now().UTC()
}

// TagNames returns the names of the note's tags in association order.
func (n *Note) TagNames() []string {
	names := make([]string, 0, len(n.Tags))
	for _, t := range n.Tags {
		names = append(names, t.Name)
	}
	return names
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}
