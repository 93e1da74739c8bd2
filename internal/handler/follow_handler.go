package handlers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"socialwall/internal/models"
	"socialwall/internal/service"
)

type FollowRequest struct {
	FollowingID string `json:"followingId" validate:"required"`
}

func (h *Handlers) Follow(w http.ResponseWriter, r *http.Request) {
	followerID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var req FollowRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	followingID, ok := pathID(w, req.FollowingID, service.KindInvalidUser)
	if !ok {
		return
	}

	follow, err := h.FollowService.Follow(r.Context(), followerID, followingID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, follow, http.StatusCreated)
}

func (h *Handlers) Unfollow(w http.ResponseWriter, r *http.Request) {
	followerID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	followingID, ok := pathID(w, mux.Vars(r)["followingId"], service.KindInvalidUser)
	if !ok {
		return
	}

	if err := h.FollowService.Unfollow(r.Context(), followerID, followingID); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// targetUser resolves {userId} when present and falls back to the caller.
func targetUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	if userID, present := mux.Vars(r)["userId"]; present {
		return pathID(w, userID, service.KindInvalidUser)
	}
	return currentUserID(w, r)
}

func (h *Handlers) GetFollowers(w http.ResponseWriter, r *http.Request) {
	h.writeFollows(w, r, h.FollowService.GetFollowers)
}

func (h *Handlers) GetFollowing(w http.ResponseWriter, r *http.Request) {
	h.writeFollows(w, r, h.FollowService.GetFollowing)
}

func (h *Handlers) writeFollows(w http.ResponseWriter, r *http.Request, list func(ctx context.Context, userID string) ([]models.Follow, error)) {
	userID, ok := targetUser(w, r)
	if !ok {
		return
	}

	follows, err := list(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	if follows == nil {
		follows = []models.Follow{}
	}
	WriteJSON(w, follows, http.StatusOK)
}
