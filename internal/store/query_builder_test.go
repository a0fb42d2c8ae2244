package store

import (
	"strings"
	"testing"

	"github.com/jacklucas/notes-api/models"
)

func TestBuildListNotesQuery_NoFilter(t *testing.T) {
	req := models.PageRequest{}.Normalize()

	query, args, err := buildListNotesQuery("auth0|user-1", "", req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(query, "JOIN") {
		t.Errorf("expected no join without tag filter, got: %s", query)
	}
	if !strings.Contains(query, "ORDER BY n.created_at DESC") {
		t.Errorf("expected default order by created_at desc, got: %s", query)
	}
	if !strings.Contains(query, "LIMIT 20") {
		t.Errorf("expected default page size limit, got: %s", query)
	}
	if len(args) != 1 || args[0] != "auth0|user-1" {
		t.Errorf("expected single user_id arg, got: %v", args)
	}
}

func TestBuildListNotesQuery_TagFilter(t *testing.T) {
	req := models.PageRequest{}.Normalize()

	query, args, err := buildListNotesQuery("auth0|user-1", "work", req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(query, "JOIN note_tags nt ON nt.note_id = n.id") {
		t.Errorf("expected join through note_tags, got: %s", query)
	}
	if !strings.Contains(query, "JOIN tags t ON t.id = nt.tag_id") {
		t.Errorf("expected join to tags, got: %s", query)
	}
	if len(args) != 2 || args[1] != "work" {
		t.Errorf("expected user_id and tag name args, got: %v", args)
	}
}

func TestBuildListNotesQuery_SortWhitelist(t *testing.T) {
	tests := []struct {
		name     string
		sort     string
		order    string
		expected string
	}{
		{name: "title asc", sort: "title", order: models.OrderAsc, expected: "ORDER BY n.title ASC"},
		{name: "updated_at desc", sort: "updated_at", order: models.OrderDesc, expected: "ORDER BY n.updated_at DESC"},
		{name: "unknown column falls back", sort: "user_id", order: models.OrderDesc, expected: "ORDER BY n.created_at DESC"},
		{name: "injection attempt falls back", sort: "created_at; DROP TABLE notes", order: models.OrderDesc, expected: "ORDER BY n.created_at DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := models.PageRequest{Sort: tt.sort, Order: tt.order}.Normalize()

			query, _, err := buildListNotesQuery("auth0|user-1", "", req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(query, tt.expected) {
				t.Errorf("expected %q in query, got: %s", tt.expected, query)
			}
		})
	}
}

func TestBuildListNotesQuery_Paging(t *testing.T) {
	req := models.PageRequest{Page: 2, Size: 10}.Normalize()

	query, _, err := buildListNotesQuery("auth0|user-1", "", req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(query, "LIMIT 10") {
		t.Errorf("expected LIMIT 10, got: %s", query)
	}
	if !strings.Contains(query, "OFFSET 20") {
		t.Errorf("expected OFFSET 20, got: %s", query)
	}
}

func TestBuildCountNotesQuery(t *testing.T) {
	query, args, err := buildCountNotesQuery("auth0|user-1", "work")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(query, "COUNT(*)") {
		t.Errorf("expected count query, got: %s", query)
	}
	if strings.Contains(query, "ORDER BY") || strings.Contains(query, "LIMIT") {
		t.Errorf("count query must not page or sort, got: %s", query)
	}
	if len(args) != 2 {
		t.Errorf("expected user_id and tag name args, got: %v", args)
	}
}

func TestBuildListTagsQuery(t *testing.T) {
	req := models.PageRequest{Sort: "name", Order: models.OrderAsc}.Normalize()

	query, args, err := buildListTagsQuery("auth0|user-1", req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(query, "ORDER BY name ASC") {
		t.Errorf("expected order by name asc, got: %s", query)
	}
	if len(args) != 1 || args[0] != "auth0|user-1" {
		t.Errorf("expected single user_id arg, got: %v", args)
	}
}

func TestBuildCountTagsQuery(t *testing.T) {
	query, args, err := buildCountTagsQuery("auth0|user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(query, "COUNT(*)") {
		t.Errorf("expected count query, got: %s", query)
	}
	if len(args) != 1 {
		t.Errorf("expected single user_id arg, got: %v", args)
	}
}
