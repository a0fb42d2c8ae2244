package models

import "time"

// Tag is a user-scoped label attached to notes via a many-to-many
// association. Tag names are unique per owner after trimming; the
// uniqueness is enforced by the database, not by application code.
type Tag struct {
	// ID is the unique identifier of the tag (UUID in string form).
	ID string `json:"id"`

	// UserID is the identifier of the owning user. Not exposed via JSON.
	UserID string `json:"-"`

	// Name is the trimmed, non-blank tag name. Comparison is exact and
	// case-sensitive: "Work" and "work" are two different tags.
	Name string `json:"name"`

	// CreatedAt is set once when the tag is first persisted.
	CreatedAt time.Time `json:"created_at"`
}

// NewTag builds an unpersisted tag for the given owner. The name is
// expected to be already trimmed by the caller.
func NewTag(userID, name string) *Tag {
	return &Tag{
		UserID:    userID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
}

// TableName returns the name of the database table
// associated with the Tag model.
func (t Tag) TableName() string {
	return "tags"
}
