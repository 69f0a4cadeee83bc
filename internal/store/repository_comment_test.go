package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-social-api/models"
)

func TestCommentPost_Success(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	comment := models.Comment{PostID: 10, UserID: 1, Text: "nice"}
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(10)).
		WillReturnRows(existsRow(true))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(1)).
		WillReturnRows(existsRow(true))
	mock.ExpectQuery("INSERT INTO comments").
		WithArgs(comment.PostID, comment.UserID, comment.Text).
		WillReturnRows(sqlmock.
			NewRows([]string{"id", "post_id", "user_id", "text", "timestamp"}).
			AddRow(5, 10, 1, "nice", now))
	mock.ExpectCommit()

	created, err := repo.CommentPost(context.Background(), comment)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 5 {
		t.Errorf("expected ID=5, got %d", created.ID)
	}
	if created.Text != "nice" {
		t.Errorf("expected text nice, got %s", created.Text)
	}
}

func TestCommentPost_PostNotFound(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	comment := models.Comment{PostID: 42, UserID: 1, Text: "nice"}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(42)).
		WillReturnRows(existsRow(false))
	mock.ExpectRollback()

	_, err := repo.CommentPost(context.Background(), comment)
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestCommentPost_UserNotFound(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	comment := models.Comment{PostID: 10, UserID: 42, Text: "nice"}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(10)).
		WillReturnRows(existsRow(true))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(42)).
		WillReturnRows(existsRow(false))
	mock.ExpectRollback()

	_, err := repo.CommentPost(context.Background(), comment)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestGetPostComments_Success(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"id", "post_id", "user_id", "text", "timestamp"}).
		AddRow(1, 10, 1, "first", now).
		AddRow(2, 10, 2, "second", now.Add(time.Minute))

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(10)).
		WillReturnRows(existsRow(true))
	mock.ExpectQuery("SELECT id, post_id").
		WithArgs(int64(10)).
		WillReturnRows(rows)

	comments, err := repo.GetPostComments(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(comments) != 2 {
		t.Errorf("expected 2 comments, got %d", len(comments))
	}
	if comments[0].Text != "first" {
		t.Errorf("expected oldest comment first, got %s", comments[0].Text)
	}
}

func TestGetPostComments_PostNotFound(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(42)).
		WillReturnRows(existsRow(false))

	_, err := repo.GetPostComments(context.Background(), 42)
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestCountPostComments_Success(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(10)).
		WillReturnRows(existsRow(true))
	mock.ExpectQuery("SELECT COUNT").
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountPostComments(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Errorf("expected count=2, got %d", count)
	}
}

func TestDeleteComment_Success(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM comments").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	deleted, err := repo.DeleteComment(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !deleted {
		t.Error("expected deleted=true")
	}
}

func TestDeleteComment_Missing(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM comments").
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.DeleteComment(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted {
		t.Error("expected deleted=false for a missing comment")
	}
}
