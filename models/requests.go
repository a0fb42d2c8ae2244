package models

// CreateNoteRequest is the payload of POST /api/notes.
//
// Content is a pointer so that an absent field can be told apart from an
// explicit empty string: a note may be created with empty content, but the
// field itself is required.
type CreateNoteRequest struct {
	// Title is required and must be non-blank.
	Title string `json:"title"`

	// Content is required but may be the empty string.
	Content *string `json:"content"`

	// Tags is an optional list of tag names to resolve and attach.
	// Blank entries are discarded, duplicates collapse to one tag.
	Tags []string `json:"tags"`
}

// PutNoteRequest is the payload of PUT /api/notes/{id}. Replace semantics
// are exhaustive: every mutable field is overwritten, and an absent tag
// list clears all tags.
type PutNoteRequest struct {
	// Title is required and must be non-blank. Stored trimmed.
	Title string `json:"title"`

	// Content is required but may be the empty string. Stored trimmed.
	Content *string `json:"content"`

	// Archived is required.
	Archived *bool `json:"archived"`

	// Tags replaces the full tag set; nil or empty clears it.
	Tags []string `json:"tags"`
}

// PatchNoteRequest is the payload of PATCH /api/notes/{id}. Every field is
// optional; nil means "leave the current value untouched". A present tags
// field replaces the whole tag set (no merge), and a present title must be
// non-blank.
type PatchNoteRequest struct {
	Title    *string   `json:"title"`
	Content  *string   `json:"content"`
	Archived *bool     `json:"archived"`
	Tags     *[]string `json:"tags"`
}

// CreateTagRequest is the payload of POST /api/tags.
type CreateTagRequest struct {
	// Name is required and must be non-blank after trimming.
	Name string `json:"name"`
}

// PutTagRequest is the payload of PUT /api/tags/{id} (rename).
type PutTagRequest struct {
	// Name is required and must be non-blank after trimming.
	Name string `json:"name"`
}
