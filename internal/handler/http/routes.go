package http

import (
	"net/http"

	"github.com/MKhiriev/go-social-api/internal/utils"
	"github.com/MKhiriev/go-social-api/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	router.Get("/", h.healthCheck)

	router.Route("/users", func(r chi.Router) {
		r.Post("/", h.createUser)
		r.Get("/", h.listUsers)

		r.Route("/{user_id}", func(r chi.Router) {
			r.Get("/", h.getUser)
			r.Put("/", h.editUser)
			r.Delete("/", h.deleteUser)
			r.Post("/verify_password", h.verifyPassword)

			r.Get("/posts", h.userPosts)
			r.Get("/posts_count", h.userPostsCount)

			r.Get("/followers", h.followers)
			r.Get("/followers_count", h.followersCount)
			r.Get("/followees", h.followees)
			r.Get("/followees_count", h.followeesCount)

			r.Put("/followers/{follower_id}", h.follow)
			r.Delete("/followers/{follower_id}", h.unfollow)
			r.Get("/followers/{follower_id}", h.isFollowing)
		})
	})

	router.Route("/posts", func(r chi.Router) {
		r.Get("/", h.listPosts)
		r.Post("/", h.createPost)

		r.Route("/{post_id}", func(r chi.Router) {
			r.Get("/", h.getPost)
			r.Patch("/", h.editPost)
			r.Delete("/", h.deletePost)

			r.Get("/likes_count", h.likesCount)
			r.Put("/likes/{user_id}", h.like)
			r.Delete("/likes/{user_id}", h.unlike)
			r.Get("/likes/{user_id}", h.isLiked)

			r.Get("/comments", h.postComments)
			r.Get("/comments_count", h.postCommentsCount)
			r.Post("/comments", h.createComment)
		})
	})

	router.Delete("/comments/{comment_id}", h.deleteComment)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.StatusResponse{Status: "OK"}, http.StatusOK) //nolint:errcheck // response already committed
}
