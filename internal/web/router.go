package web

import (
	"net/http"

	"github.com/gorilla/mux"

	"socialnet/internal/common"
)

// NewRouter wires every route onto a gorilla mux. Mutating routes are
// method-restricted; auth-only routes are wrapped with RequireAuth.
func NewRouter(h *Handler, tokens *common.TokenManager, cookieName string) *mux.Router {
	router := mux.NewRouter()
	router.Use(common.LoggingMiddleware)
	router.Use(common.SessionMiddleware(tokens, cookieName))

	router.HandleFunc("/", h.Home).Methods(http.MethodGet)

	// /register/ and /signup/ behave identically.
	router.HandleFunc("/register/", h.RegisterForm).Methods(http.MethodGet)
	router.HandleFunc("/register/", h.Register).Methods(http.MethodPost)
	router.HandleFunc("/signup/", h.RegisterForm).Methods(http.MethodGet)
	router.HandleFunc("/signup/", h.Register).Methods(http.MethodPost)

	router.HandleFunc("/login/", h.LoginForm).Methods(http.MethodGet)
	router.HandleFunc("/login/", h.Login).Methods(http.MethodPost)
	router.HandleFunc("/logout/", h.Logout).Methods(http.MethodPost)

	router.HandleFunc("/profile/{username}/", common.RequireAuth(h.Profile)).Methods(http.MethodGet)

	router.HandleFunc("/post/create/", common.RequireAuth(h.PostCreateForm)).Methods(http.MethodGet)
	router.HandleFunc("/post/create/", common.RequireAuth(h.PostCreate)).Methods(http.MethodPost)
	router.HandleFunc("/post/{id:[0-9]+}/edit/", common.RequireAuth(h.PostEditForm)).Methods(http.MethodGet)
	router.HandleFunc("/post/{id:[0-9]+}/edit/", common.RequireAuth(h.PostEdit)).Methods(http.MethodPost)
	router.HandleFunc("/post/{id:[0-9]+}/delete/", common.RequireAuth(h.PostDeleteConfirm)).Methods(http.MethodGet)
	router.HandleFunc("/post/{id:[0-9]+}/delete/", common.RequireAuth(h.PostDelete)).Methods(http.MethodPost)

	router.HandleFunc("/post/{id:[0-9]+}/like-toggle/", common.RequireAuth(h.LikeToggle)).Methods(http.MethodPost)
	router.HandleFunc("/post/{id:[0-9]+}/comment/", common.RequireAuth(h.CommentAdd)).Methods(http.MethodPost)
	router.HandleFunc("/comment/{id:[0-9]+}/delete/", common.RequireAuth(h.CommentDelete)).Methods(http.MethodPost)

	router.HandleFunc("/friend/request/{username}/", common.RequireAuth(h.FriendRequest)).Methods(http.MethodPost)
	router.HandleFunc("/friend/accept/{id:[0-9]+}/", common.RequireAuth(h.FriendAccept)).Methods(http.MethodPost)

	router.HandleFunc("/notifications/", common.RequireAuth(h.Notifications)).Methods(http.MethodGet)
	router.HandleFunc("/notifications/{id:[0-9]+}/read/", common.RequireAuth(h.NotificationRead)).Methods(http.MethodPost)

	return router
}
