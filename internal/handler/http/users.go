package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/internal/utils"
	"github.com/MKhiriev/go-social-api/models"
)

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.UserCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.UserService.Create(ctx, req)
	if err != nil {
		renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated) //nolint:errcheck // response already committed
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.List(r.Context())
	if err != nil {
		renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK) //nolint:errcheck // response already committed
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "user_id")
	if !ok {
		return
	}

	user, err := h.services.UserService.Get(r.Context(), userID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK) //nolint:errcheck // response already committed
}

func (h *Handler) editUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := pathID(w, r, "user_id")
	if !ok {
		return
	}

	var update models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	update.ID = userID

	updated, err := h.services.UserService.Edit(r.Context(), update)
	if err != nil {
		renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK) //nolint:errcheck // response already committed
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "user_id")
	if !ok {
		return
	}

	deleted, err := h.services.UserService.Delete(r.Context(), userID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.DeletedResponse{Deleted: deleted}, http.StatusOK) //nolint:errcheck // response already committed
}

func (h *Handler) verifyPassword(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := pathID(w, r, "user_id")
	if !ok {
		return
	}

	var req models.PasswordVerify
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	valid, err := h.services.UserService.VerifyPassword(r.Context(), userID, req.Password)
	if err != nil {
		renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ValidResponse{Valid: valid}, http.StatusOK) //nolint:errcheck // response already committed
}

func (h *Handler) userPosts(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "user_id")
	if !ok {
		return
	}
	limit, ok := queryLimit(w, r)
	if !ok {
		return
	}

	posts, err := h.services.PostService.UserPosts(r.Context(), userID, limit)
	if err != nil {
		renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, posts, http.StatusOK) //nolint:errcheck // response already committed
}

func (h *Handler) userPostsCount(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "user_id")
	if !ok {
		return
	}

	count, err := h.services.PostService.UserPostsCount(r.Context(), userID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.PostsCountResponse{PostsCount: count}, http.StatusOK) //nolint:errcheck // response already committed
}

func (h *Handler) followers(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "user_id")
	if !ok {
		return
	}
	limit, ok := queryLimit(w, r)
	if !ok {
		return
	}

	followers, err := h.services.UserService.Followers(r.Context(), userID, limit)
	if err != nil {
		renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, followers, http.StatusOK) //nolint:errcheck // response already committed
}

func (h *Handler) followersCount(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "user_id")
	if !ok {
		return
	}

	count, err := h.services.UserService.FollowersCount(r.Context(), userID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.FollowersCountResponse{FollowersCount: count}, http.StatusOK) //nolint:errcheck // response already committed
}

func (h *Handler) followees(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "user_id")
	if !ok {
		return
	}
	limit, ok := queryLimit(w, r)
	if !ok {
		return
	}

	followees, err := h.services.UserService.Followees(r.Context(), userID, limit)
	if err != nil {
		renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, followees, http.StatusOK) //nolint:errcheck // response already committed
}

func (h *Handler) followeesCount(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "user_id")
	if !ok {
		return
	}

	count, err := h.services.UserService.FolloweesCount(r.Context(), userID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.FolloweesCountResponse{FolloweesCount: count}, http.StatusOK) //nolint:errcheck // response already committed
}

// follow records a follow edge. The rendered state is always "following":
// repeating the request is a no-op, not an error.
func (h *Handler) follow(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "user_id")
	if !ok {
		return
	}
	followerID, ok := pathID(w, r, "follower_id")
	if !ok {
		return
	}

	if _, err := h.services.UserService.Follow(r.Context(), userID, followerID); err != nil {
		renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.FollowingResponse{Following: true}, http.StatusOK) //nolint:errcheck // response already committed
}

func (h *Handler) unfollow(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "user_id")
	if !ok {
		return
	}
	followerID, ok := pathID(w, r, "follower_id")
	if !ok {
		return
	}

	if _, err := h.services.UserService.Unfollow(r.Context(), userID, followerID); err != nil {
		renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.FollowingResponse{Following: false}, http.StatusOK) //nolint:errcheck // response already committed
}

func (h *Handler) isFollowing(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "user_id")
	if !ok {
		return
	}
	followerID, ok := pathID(w, r, "follower_id")
	if !ok {
		return
	}

	following, err := h.services.UserService.IsFollowing(r.Context(), userID, followerID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.FollowingResponse{Following: following}, http.StatusOK) //nolint:errcheck // response already committed
}
