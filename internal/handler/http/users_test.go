// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-social-api/internal/store"
	"github.com/MKhiriev/go-social-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// POST /users
// ─────────────────────────────────────────────

func TestCreateUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, userSvc, _ := newTestHandler(t, ctrl)

	userSvc.EXPECT().
		Create(gomock.Any(), models.UserCreate{Username: "alice", Name: "Alice", Email: "alice@example.com", Password: "secret"}).
		Return(models.User{ID: 1, Username: "alice", Name: "Alice", Email: "alice@example.com"}, nil)

	rec := doRequest(t, h, http.MethodPost, "/users",
		`{"username": "alice", "name": "Alice", "email": "alice@example.com", "password": "secret"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id": 1, "username": "alice", "name": "Alice", "description": "", "email": "alice@example.com"}`, rec.Body.String())
}

func TestCreateUser_ValidationErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, userSvc, _ := newTestHandler(t, ctrl)

	userSvc.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(models.User{}, models.ValidationErrors{"username": "required field"})

	rec := doRequest(t, h, http.MethodPost, "/users", `{"name": "Alice"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "required field", decodeErrors(t, rec)["username"])
}

func TestCreateUser_UsernameTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, userSvc, _ := newTestHandler(t, ctrl)

	userSvc.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrUsernameTaken)

	rec := doRequest(t, h, http.MethodPost, "/users",
		`{"username": "alice", "name": "Alice", "email": "alice@example.com", "password": "secret"}`)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, msgUsernameTaken, decodeErrors(t, rec)["username"])
}

func TestCreateUser_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(t, ctrl)

	rec := doRequest(t, h, http.MethodPost, "/users", `{not json`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// GET /users/{user_id}
// ─────────────────────────────────────────────

func TestGetUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, userSvc, _ := newTestHandler(t, ctrl)

	userSvc.EXPECT().
		Get(gomock.Any(), int64(1)).
		Return(models.User{ID: 1, Username: "alice"}, nil)

	rec := doRequest(t, h, http.MethodGet, "/users/1", "")

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestGetUser_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, userSvc, _ := newTestHandler(t, ctrl)

	userSvc.EXPECT().
		Get(gomock.Any(), int64(42)).
		Return(models.User{}, store.ErrUserNotFound)

	rec := doRequest(t, h, http.MethodGet, "/users/42", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, msgUserNotFound, decodeErrors(t, rec)["user_id"])
}

// TestGetUser_ZeroID verifies that id 0 is not rejected by the path parser:
// it reaches the store's existence check and comes back as the 404 envelope,
// exactly like any other nonexistent id.
func TestGetUser_ZeroID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, userSvc, _ := newTestHandler(t, ctrl)

	userSvc.EXPECT().
		Get(gomock.Any(), int64(0)).
		Return(models.User{}, store.ErrUserNotFound)

	rec := doRequest(t, h, http.MethodGet, "/users/0", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, msgUserNotFound, decodeErrors(t, rec)["user_id"])
}

func TestGetUser_NonNumericID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(t, ctrl)

	rec := doRequest(t, h, http.MethodGet, "/users/alice", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeErrors(t, rec), "user_id")
}

// ─────────────────────────────────────────────
// PUT /users/{user_id}
// ─────────────────────────────────────────────

func TestEditUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, userSvc, _ := newTestHandler(t, ctrl)

	userSvc.EXPECT().
		Edit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, update models.UserUpdate) (models.User, error) {
			// the path id wins over anything in the body
			assert.Equal(t, int64(1), update.ID)
			require.NotNil(t, update.Name)
			assert.Equal(t, "Alice B.", *update.Name)
			return models.User{ID: 1, Username: "alice", Name: "Alice B."}, nil
		})

	rec := doRequest(t, h, http.MethodPut, "/users/1", `{"name": "Alice B."}`)

	require.Equal(t, http.StatusOK, rec.Code)
}

// ─────────────────────────────────────────────
// DELETE /users/{user_id}
// ─────────────────────────────────────────────

func TestDeleteUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, userSvc, _ := newTestHandler(t, ctrl)

	userSvc.EXPECT().
		Delete(gomock.Any(), int64(1)).
		Return(true, nil)

	rec := doRequest(t, h, http.MethodDelete, "/users/1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deleted": true}`, rec.Body.String())
}

// ─────────────────────────────────────────────
// POST /users/{user_id}/verify_password
// ─────────────────────────────────────────────

func TestVerifyPassword(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
		want  string
	}{
		{name: "matching password", valid: true, want: `{"valid": true}`},
		{name: "wrong password", valid: false, want: `{"valid": false}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			h, userSvc, _ := newTestHandler(t, ctrl)

			userSvc.EXPECT().
				VerifyPassword(gomock.Any(), int64(1), "secret").
				Return(tt.valid, nil)

			rec := doRequest(t, h, http.MethodPost, "/users/1/verify_password", `{"password": "secret"}`)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}

// ─────────────────────────────────────────────
// follow graph
// ─────────────────────────────────────────────

func TestFollow_RendersFollowingTrue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, userSvc, _ := newTestHandler(t, ctrl)

	// the rendered state is the same whether the edge is new or repeated
	userSvc.EXPECT().
		Follow(gomock.Any(), int64(1), int64(2)).
		Return(false, nil)

	rec := doRequest(t, h, http.MethodPut, "/users/1/followers/2", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"following": true}`, rec.Body.String())
}

func TestUnfollow_RendersFollowingFalse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, userSvc, _ := newTestHandler(t, ctrl)

	userSvc.EXPECT().
		Unfollow(gomock.Any(), int64(1), int64(2)).
		Return(true, nil)

	rec := doRequest(t, h, http.MethodDelete, "/users/1/followers/2", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"following": false}`, rec.Body.String())
}

func TestFollow_FollowerNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, userSvc, _ := newTestHandler(t, ctrl)

	userSvc.EXPECT().
		Follow(gomock.Any(), int64(1), int64(42)).
		Return(false, store.ErrUserNotFound)

	rec := doRequest(t, h, http.MethodPut, "/users/1/followers/42", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, msgUserNotFound, decodeErrors(t, rec)["user_id"])
}

func TestIsFollowing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, userSvc, _ := newTestHandler(t, ctrl)

	userSvc.EXPECT().
		IsFollowing(gomock.Any(), int64(1), int64(2)).
		Return(true, nil)

	rec := doRequest(t, h, http.MethodGet, "/users/1/followers/2", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"following": true}`, rec.Body.String())
}

func TestFollowers_ListingAndLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, userSvc, _ := newTestHandler(t, ctrl)

	userSvc.EXPECT().
		Followers(gomock.Any(), int64(1), int64(5)).
		Return([]models.User{{ID: 2, Username: "bob"}, {ID: 3, Username: "carol"}}, nil)

	rec := doRequest(t, h, http.MethodGet, "/users/1/followers?limit=5", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var followers []models.User
	require.NoError(t, decodeBody(t, rec, &followers))
	require.Len(t, followers, 2)
	assert.Equal(t, "bob", followers[0].Username)
}

func TestFollowers_ExplicitZeroLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, userSvc, _ := newTestHandler(t, ctrl)

	// limit=0 passes through as zero instead of collapsing into "absent"
	userSvc.EXPECT().
		Followers(gomock.Any(), int64(1), int64(0)).
		Return([]models.User{}, nil)

	rec := doRequest(t, h, http.MethodGet, "/users/1/followers?limit=0", "")

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestFollowers_InvalidLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(t, ctrl)

	rec := doRequest(t, h, http.MethodGet, "/users/1/followers?limit=lots", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeErrors(t, rec), "limit")
}

func TestFollowersCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, userSvc, _ := newTestHandler(t, ctrl)

	userSvc.EXPECT().
		FollowersCount(gomock.Any(), int64(1)).
		Return(int64(7), nil)

	rec := doRequest(t, h, http.MethodGet, "/users/1/followers_count", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"followers_count": 7}`, rec.Body.String())
}

func TestFolloweesCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, userSvc, _ := newTestHandler(t, ctrl)

	userSvc.EXPECT().
		FolloweesCount(gomock.Any(), int64(1)).
		Return(int64(3), nil)

	rec := doRequest(t, h, http.MethodGet, "/users/1/followees_count", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"followees_count": 3}`, rec.Body.String())
}

// ─────────────────────────────────────────────
// GET /users/{user_id}/posts
// ─────────────────────────────────────────────

func TestUserPosts_NotFoundBeforeListing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, postSvc := newTestHandler(t, ctrl)

	postSvc.EXPECT().
		UserPosts(gomock.Any(), int64(42), int64(-1)).
		Return(nil, store.ErrUserNotFound)

	rec := doRequest(t, h, http.MethodGet, "/users/42/posts", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, msgUserNotFound, decodeErrors(t, rec)["user_id"])
}

func TestUserPostsCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, postSvc := newTestHandler(t, ctrl)

	postSvc.EXPECT().
		UserPostsCount(gomock.Any(), int64(1)).
		Return(int64(4), nil)

	rec := doRequest(t, h, http.MethodGet, "/users/1/posts_count", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"posts_count": 4}`, rec.Body.String())
}
