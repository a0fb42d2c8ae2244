package service

import (
	"context"
	"errors"

	"github.com/jacklucas/notes-api/models"
)

// ─────────────────────────────────────────────
// Mock: store.NoteRepository
// ─────────────────────────────────────────────

type mockNoteRepository struct {
	createFn  func(ctx context.Context, note *models.Note) error
	getByIDFn func(ctx context.Context, noteID string, userID string) (*models.Note, error)
	listFn    func(ctx context.Context, userID string, tagName string, req models.PageRequest) ([]*models.Note, int64, error)
	updateFn  func(ctx context.Context, note *models.Note) error
	deleteFn  func(ctx context.Context, noteID string, userID string) error
}

func (m *mockNoteRepository) Create(ctx context.Context, note *models.Note) error {
	if m.createFn != nil {
		return m.createFn(ctx, note)
	}
	return nil
}

func (m *mockNoteRepository) GetByID(ctx context.Context, noteID string, userID string) (*models.Note, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, noteID, userID)
	}
	return nil, nil
}

func (m *mockNoteRepository) List(ctx context.Context, userID string, tagName string, req models.PageRequest) ([]*models.Note, int64, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, tagName, req)
	}
	return nil, 0, nil
}

func (m *mockNoteRepository) Update(ctx context.Context, note *models.Note) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, note)
	}
	return nil
}

func (m *mockNoteRepository) Delete(ctx context.Context, noteID string, userID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, noteID, userID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.TagRepository
// ─────────────────────────────────────────────

type mockTagRepository struct {
	createFn     func(ctx context.Context, tag *models.Tag) error
	getByIDFn    func(ctx context.Context, tagID string, userID string) (*models.Tag, error)
	findByNameFn func(ctx context.Context, userID string, name string) (*models.Tag, error)
	listFn       func(ctx context.Context, userID string, req models.PageRequest) ([]*models.Tag, int64, error)
	renameFn     func(ctx context.Context, tagID string, userID string, newName string) error
	deleteFn     func(ctx context.Context, tagID string, userID string) error
}

func (m *mockTagRepository) Create(ctx context.Context, tag *models.Tag) error {
	if m.createFn != nil {
		return m.createFn(ctx, tag)
	}
	return nil
}

func (m *mockTagRepository) GetByID(ctx context.Context, tagID string, userID string) (*models.Tag, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, tagID, userID)
	}
	return nil, nil
}

func (m *mockTagRepository) FindByName(ctx context.Context, userID string, name string) (*models.Tag, error) {
	if m.findByNameFn != nil {
		return m.findByNameFn(ctx, userID, name)
	}
	return nil, nil
}

func (m *mockTagRepository) List(ctx context.Context, userID string, req models.PageRequest) ([]*models.Tag, int64, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, req)
	}
	return nil, 0, nil
}

func (m *mockTagRepository) Rename(ctx context.Context, tagID string, userID string, newName string) error {
	if m.renameFn != nil {
		return m.renameFn(ctx, tagID, userID, newName)
	}
	return nil
}

func (m *mockTagRepository) Delete(ctx context.Context, tagID string, userID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, tagID, userID)
	}
	return nil
}

var errStorage = errors.New("storage error")

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }
