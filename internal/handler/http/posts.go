package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/internal/utils"
	"github.com/MKhiriev/go-social-api/models"
)

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryLimit(w, r)
	if !ok {
		return
	}

	posts, err := h.services.PostService.List(r.Context(), limit)
	if err != nil {
		renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, posts, http.StatusOK) //nolint:errcheck // response already committed
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var post models.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.PostService.Create(r.Context(), post)
	if err != nil {
		renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated) //nolint:errcheck // response already committed
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(w, r, "post_id")
	if !ok {
		return
	}

	post, err := h.services.PostService.Get(r.Context(), postID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, post, http.StatusOK) //nolint:errcheck // response already committed
}

func (h *Handler) editPost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	postID, ok := pathID(w, r, "post_id")
	if !ok {
		return
	}

	var update models.PostUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.PostService.EditText(r.Context(), postID, update.Text)
	if err != nil {
		renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK) //nolint:errcheck // response already committed
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(w, r, "post_id")
	if !ok {
		return
	}

	deleted, err := h.services.PostService.Delete(r.Context(), postID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.DeletedResponse{Deleted: deleted}, http.StatusOK) //nolint:errcheck // response already committed
}

func (h *Handler) likesCount(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(w, r, "post_id")
	if !ok {
		return
	}

	count, err := h.services.PostService.LikesCount(r.Context(), postID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.LikesCountResponse{LikesCount: count}, http.StatusOK) //nolint:errcheck // response already committed
}

// like records a like edge. The rendered state is always "liked": repeating
// the request is a no-op, not an error.
func (h *Handler) like(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(w, r, "post_id")
	if !ok {
		return
	}
	userID, ok := pathID(w, r, "user_id")
	if !ok {
		return
	}

	if _, err := h.services.PostService.Like(r.Context(), postID, userID); err != nil {
		renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.LikedResponse{Liked: true}, http.StatusOK) //nolint:errcheck // response already committed
}

func (h *Handler) unlike(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(w, r, "post_id")
	if !ok {
		return
	}
	userID, ok := pathID(w, r, "user_id")
	if !ok {
		return
	}

	if _, err := h.services.PostService.Unlike(r.Context(), postID, userID); err != nil {
		renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.LikedResponse{Liked: false}, http.StatusOK) //nolint:errcheck // response already committed
}

func (h *Handler) isLiked(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(w, r, "post_id")
	if !ok {
		return
	}
	userID, ok := pathID(w, r, "user_id")
	if !ok {
		return
	}

	liked, err := h.services.PostService.IsLiked(r.Context(), postID, userID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.LikedResponse{Liked: liked}, http.StatusOK) //nolint:errcheck // response already committed
}

func (h *Handler) postComments(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(w, r, "post_id")
	if !ok {
		return
	}

	comments, err := h.services.PostService.Comments(r.Context(), postID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.CommentsResponse{Comments: comments}, http.StatusOK) //nolint:errcheck // response already committed
}

func (h *Handler) postCommentsCount(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(w, r, "post_id")
	if !ok {
		return
	}

	count, err := h.services.PostService.CommentsCount(r.Context(), postID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.CommentsCountResponse{CommentsCount: count}, http.StatusOK) //nolint:errcheck // response already committed
}

func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	postID, ok := pathID(w, r, "post_id")
	if !ok {
		return
	}

	var req models.CommentCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.PostService.Comment(r.Context(), postID, req)
	if err != nil {
		renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated) //nolint:errcheck // response already committed
}

func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
	commentID, ok := pathID(w, r, "comment_id")
	if !ok {
		return
	}

	deleted, err := h.services.PostService.DeleteComment(r.Context(), commentID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.DeletedResponse{Deleted: deleted}, http.StatusOK) //nolint:errcheck // response already committed
}
