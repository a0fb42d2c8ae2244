package http

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jacklucas/notes-api/internal/logger"
	"github.com/jacklucas/notes-api/internal/service"
	"github.com/jacklucas/notes-api/models"
	"github.com/stretchr/testify/require"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "notes-idp"
	testUserID  = "auth0|user-1"
)

// ─────────────────────────────────────────────
// Mock: service.NoteService
// ─────────────────────────────────────────────

type mockNoteSvc struct {
	createFn  func(ctx context.Context, userID string, req models.CreateNoteRequest) (*models.Note, error)
	getFn     func(ctx context.Context, userID string, noteID string) (*models.Note, error)
	listFn    func(ctx context.Context, userID string, tagName string, req models.PageRequest) (models.Page[*models.Note], error)
	replaceFn func(ctx context.Context, userID string, noteID string, req models.PutNoteRequest) (*models.Note, error)
	patchFn   func(ctx context.Context, userID string, noteID string, req models.PatchNoteRequest) (*models.Note, error)
	deleteFn  func(ctx context.Context, userID string, noteID string) error
}

func (m *mockNoteSvc) CreateNote(ctx context.Context, userID string, req models.CreateNoteRequest) (*models.Note, error) {
	if m.createFn != nil {
		return m.createFn(ctx, userID, req)
	}
	return &models.Note{}, nil
}

func (m *mockNoteSvc) GetNote(ctx context.Context, userID string, noteID string) (*models.Note, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID, noteID)
	}
	return &models.Note{}, nil
}

func (m *mockNoteSvc) ListNotes(ctx context.Context, userID string, tagName string, req models.PageRequest) (models.Page[*models.Note], error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, tagName, req)
	}
	return models.Page[*models.Note]{}, nil
}

func (m *mockNoteSvc) ReplaceNote(ctx context.Context, userID string, noteID string, req models.PutNoteRequest) (*models.Note, error) {
	if m.replaceFn != nil {
		return m.replaceFn(ctx, userID, noteID, req)
	}
	return &models.Note{}, nil
}

func (m *mockNoteSvc) PatchNote(ctx context.Context, userID string, noteID string, req models.PatchNoteRequest) (*models.Note, error) {
	if m.patchFn != nil {
		return m.patchFn(ctx, userID, noteID, req)
	}
	return &models.Note{}, nil
}

func (m *mockNoteSvc) DeleteNote(ctx context.Context, userID string, noteID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, noteID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: service.TagService
// ─────────────────────────────────────────────

type mockTagSvc struct {
	createFn func(ctx context.Context, userID string, req models.CreateTagRequest) (*models.Tag, error)
	getFn    func(ctx context.Context, userID string, tagID string) (*models.Tag, error)
	listFn   func(ctx context.Context, userID string, req models.PageRequest) (models.Page[*models.Tag], error)
	renameFn func(ctx context.Context, userID string, tagID string, req models.PutTagRequest) (*models.Tag, error)
	deleteFn func(ctx context.Context, userID string, tagID string) error
}

func (m *mockTagSvc) CreateTag(ctx context.Context, userID string, req models.CreateTagRequest) (*models.Tag, error) {
	if m.createFn != nil {
		return m.createFn(ctx, userID, req)
	}
	return &models.Tag{}, nil
}

func (m *mockTagSvc) GetTag(ctx context.Context, userID string, tagID string) (*models.Tag, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID, tagID)
	}
	return &models.Tag{}, nil
}

func (m *mockTagSvc) ListTags(ctx context.Context, userID string, req models.PageRequest) (models.Page[*models.Tag], error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, req)
	}
	return models.Page[*models.Tag]{}, nil
}

func (m *mockTagSvc) RenameTag(ctx context.Context, userID string, tagID string, req models.PutTagRequest) (*models.Tag, error) {
	if m.renameFn != nil {
		return m.renameFn(ctx, userID, tagID, req)
	}
	return &models.Tag{}, nil
}

func (m *mockTagSvc) DeleteTag(ctx context.Context, userID string, tagID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, tagID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: service.AppInfoService
// ─────────────────────────────────────────────

type mockAppInfoSvc struct {
	version string
}

func (m *mockAppInfoSvc) GetAppVersion(_ context.Context) string {
	if m.version != "" {
		return m.version
	}
	return "0.0.0-test"
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestHandler(noteSvc service.NoteService, tagSvc service.TagService) *Handler {
	return &Handler{
		services: &service.Services{
			NoteService:    noteSvc,
			TagService:     tagSvc,
			AppInfoService: &mockAppInfoSvc{},
		},
		tokenSignKey: testSignKey,
		tokenIssuer:  testIssuer,
		logger:       logger.Nop(),
	}
}

// validBearer signs a JWT the auth middleware accepts and returns the full
// "Bearer <token>" header value.
func validBearer(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   testUserID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})
	signed, err := token.SignedString([]byte(testSignKey))
	require.NoError(t, err)
	return "Bearer " + signed
}
