package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// CreateMux registers every route. protect wraps the routes that need a
// signed-in caller.
func CreateMux(h *Handlers, protect func(http.Handler) http.Handler, metricsHandler http.Handler) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/stats", h.Stats).Methods(http.MethodGet)
	if metricsHandler != nil {
		r.Handle("/metrics", metricsHandler).Methods(http.MethodGet)
	}

	auth := r.PathPrefix("/api/auth").Subrouter()
	auth.HandleFunc("/register", h.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", h.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", h.RefreshToken).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(mux.MiddlewareFunc(protect))

	api.HandleFunc("/users/me", h.GetCurrentUser).Methods(http.MethodGet)
	api.HandleFunc("/users/me/avatar", h.UploadAvatar).Methods(http.MethodPut)
	api.HandleFunc("/users", h.SearchUsers).Methods(http.MethodGet)
	api.HandleFunc("/users/username/{username}", h.GetUserByUsername).Methods(http.MethodGet)
	api.HandleFunc("/users/{userId}", h.GetUser).Methods(http.MethodGet)

	api.HandleFunc("/follow", h.Follow).Methods(http.MethodPost)
	api.HandleFunc("/follow/followers", h.GetFollowers).Methods(http.MethodGet)
	api.HandleFunc("/follow/followers/{userId}", h.GetFollowers).Methods(http.MethodGet)
	api.HandleFunc("/follow/following", h.GetFollowing).Methods(http.MethodGet)
	api.HandleFunc("/follow/following/{userId}", h.GetFollowing).Methods(http.MethodGet)
	api.HandleFunc("/follow/{followingId}", h.Unfollow).Methods(http.MethodDelete)

	api.HandleFunc("/posts", h.CreatePost).Methods(http.MethodPost)
	api.HandleFunc("/posts/timeline", h.GetTimeline).Methods(http.MethodGet)
	api.HandleFunc("/posts/timeline/{userId}", h.GetTimeline).Methods(http.MethodGet)
	api.HandleFunc("/posts/conversation/{userId1}/{userId2}", h.GetConversation).Methods(http.MethodGet)

	api.HandleFunc("/wall", h.GetWall).Methods(http.MethodGet)
	api.HandleFunc("/wall/{userId}", h.GetWall).Methods(http.MethodGet)

	api.HandleFunc("/directmessages", h.SendDirectMessage).Methods(http.MethodPost)
	api.HandleFunc("/directmessages/received", h.GetReceivedDirectMessages).Methods(http.MethodGet)
	api.HandleFunc("/directmessages/{messageId}/read", h.MarkDirectMessageAsRead).Methods(http.MethodPut)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		WriteError(w, "NOT_FOUND", "route not found", http.StatusNotFound)
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		WriteError(w, "METHOD_NOT_ALLOWED", "method not allowed", http.StatusMethodNotAllowed)
	})

	return r
}
