package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jacklucas/notes-api/internal/logger"
	"github.com/jacklucas/notes-api/models"
)

func newTestTagRepo(t *testing.T) (*tagRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &tagRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestTagCreate_Success(t *testing.T) {
	repo, mock, db := newTestTagRepo(t)
	defer db.Close()

	tag := models.NewTag("auth0|user-1", "work")

	mock.ExpectExec("INSERT INTO tags").
		WithArgs(tag.ID, tag.UserID, tag.Name, tag.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Create(context.Background(), tag); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTagCreate_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestTagRepo(t)
	defer db.Close()

	tag := models.NewTag("auth0|user-1", "work")

	mock.ExpectExec("INSERT INTO tags").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := repo.Create(context.Background(), tag)
	if !errors.Is(err, ErrTagNameTaken) {
		t.Fatalf("expected ErrTagNameTaken, got %v", err)
	}
}

func TestTagCreate_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestTagRepo(t)
	defer db.Close()

	tag := models.NewTag("auth0|user-1", "work")

	mock.ExpectExec("INSERT INTO tags").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	err := repo.Create(context.Background(), tag)
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestTagGetByID_Success(t *testing.T) {
	repo, mock, db := newTestTagRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"id", "user_id", "name", "created_at"}).
		AddRow("tag-1", "auth0|user-1", "work", now)

	mock.ExpectQuery("SELECT id, user_id, name, created_at").
		WithArgs("tag-1", "auth0|user-1").
		WillReturnRows(rows)

	tag, err := repo.GetByID(context.Background(), "tag-1", "auth0|user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tag.Name != "work" {
		t.Errorf("expected name work, got %s", tag.Name)
	}
}

func TestTagGetByID_NotFound(t *testing.T) {
	repo, mock, db := newTestTagRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, user_id, name, created_at").
		WithArgs("tag-1", "auth0|user-1").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "tag-1", "auth0|user-1")
	if !errors.Is(err, ErrTagNotFound) {
		t.Fatalf("expected ErrTagNotFound, got %v", err)
	}
}

func TestTagFindByName_Success(t *testing.T) {
	repo, mock, db := newTestTagRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"id", "user_id", "name", "created_at"}).
		AddRow("tag-1", "auth0|user-1", "Work", now)

	mock.ExpectQuery("SELECT id, user_id, name, created_at").
		WithArgs("auth0|user-1", "Work").
		WillReturnRows(rows)

	tag, err := repo.FindByName(context.Background(), "auth0|user-1", "Work")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tag.ID != "tag-1" {
		t.Errorf("expected id tag-1, got %s", tag.ID)
	}
}

func TestTagFindByName_NotFound(t *testing.T) {
	repo, mock, db := newTestTagRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, user_id, name, created_at").
		WithArgs("auth0|user-1", "missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByName(context.Background(), "auth0|user-1", "missing")
	if !errors.Is(err, ErrTagNotFound) {
		t.Fatalf("expected ErrTagNotFound, got %v", err)
	}
}

func TestTagList_Success(t *testing.T) {
	repo, mock, db := newTestTagRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"id", "user_id", "name", "created_at"}).
		AddRow("tag-1", "auth0|user-1", "work", now).
		AddRow("tag-2", "auth0|user-1", "home", now)

	mock.ExpectQuery("SELECT id, user_id, name, created_at FROM tags").
		WithArgs("auth0|user-1").
		WillReturnRows(rows)

	countRows := sqlmock.NewRows([]string{"count"}).AddRow(2)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM tags`).
		WithArgs("auth0|user-1").
		WillReturnRows(countRows)

	req := models.PageRequest{}.Normalize()
	tags, total, err := repo.List(context.Background(), "auth0|user-1", req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tags) != 2 {
		t.Errorf("expected 2 tags, got %d", len(tags))
	}
	if total != 2 {
		t.Errorf("expected total 2, got %d", total)
	}
}

func TestTagRename_Success(t *testing.T) {
	repo, mock, db := newTestTagRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE tags").
		WithArgs("tag-1", "auth0|user-1", "projects").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Rename(context.Background(), "tag-1", "auth0|user-1", "projects"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTagRename_NameTaken(t *testing.T) {
	repo, mock, db := newTestTagRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE tags").
		WithArgs("tag-1", "auth0|user-1", "projects").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := repo.Rename(context.Background(), "tag-1", "auth0|user-1", "projects")
	if !errors.Is(err, ErrTagNameTaken) {
		t.Fatalf("expected ErrTagNameTaken, got %v", err)
	}
}

func TestTagRename_NotFound(t *testing.T) {
	repo, mock, db := newTestTagRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE tags").
		WithArgs("tag-1", "auth0|user-1", "projects").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Rename(context.Background(), "tag-1", "auth0|user-1", "projects")
	if !errors.Is(err, ErrTagNotFound) {
		t.Fatalf("expected ErrTagNotFound, got %v", err)
	}
}

func TestTagDelete_Success(t *testing.T) {
	repo, mock, db := newTestTagRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM tags").
		WithArgs("tag-1", "auth0|user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), "tag-1", "auth0|user-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTagDelete_NotFound(t *testing.T) {
	repo, mock, db := newTestTagRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM tags").
		WithArgs("tag-1", "auth0|user-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "tag-1", "auth0|user-1")
	if !errors.Is(err, ErrTagNotFound) {
		t.Fatalf("expected ErrTagNotFound, got %v", err)
	}
}
