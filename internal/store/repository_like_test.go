package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestLikePost_Success(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(10)).
		WillReturnRows(existsRow(true))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(1)).
		WillReturnRows(existsRow(true))
	mock.ExpectExec("INSERT INTO likes").
		WithArgs(int64(10), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	liked, err := repo.LikePost(context.Background(), 10, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !liked {
		t.Error("expected liked=true")
	}
}

func TestLikePost_AlreadyLiked(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(10)).
		WillReturnRows(existsRow(true))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(1)).
		WillReturnRows(existsRow(true))
	mock.ExpectExec("INSERT INTO likes").
		WithArgs(int64(10), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0)) // ON CONFLICT DO NOTHING
	mock.ExpectCommit()

	liked, err := repo.LikePost(context.Background(), 10, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if liked {
		t.Error("expected liked=false for an existing like")
	}
}

func TestLikePost_PostNotFound(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(42)).
		WillReturnRows(existsRow(false))
	mock.ExpectRollback()

	_, err := repo.LikePost(context.Background(), 42, 1)
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestLikePost_UserNotFound(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(10)).
		WillReturnRows(existsRow(true))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(42)).
		WillReturnRows(existsRow(false))
	mock.ExpectRollback()

	_, err := repo.LikePost(context.Background(), 10, 42)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUnlikePost_NoLike(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(10)).
		WillReturnRows(existsRow(true))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(1)).
		WillReturnRows(existsRow(true))
	mock.ExpectExec("DELETE FROM likes").
		WithArgs(int64(10), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	removed, err := repo.UnlikePost(context.Background(), 10, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed {
		t.Error("expected removed=false when no like exists")
	}
}

func TestIsPostLiked_Success(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(10)).
		WillReturnRows(existsRow(true))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(1)).
		WillReturnRows(existsRow(true))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(10), int64(1)).
		WillReturnRows(existsRow(true))

	liked, err := repo.IsPostLiked(context.Background(), 10, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !liked {
		t.Error("expected liked=true")
	}
}

func TestCountPostLikes_PostNotFound(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(42)).
		WillReturnRows(existsRow(false))

	_, err := repo.CountPostLikes(context.Background(), 42)
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}
