package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"socialwall/internal/metrics"
	"socialwall/internal/models"
	"socialwall/internal/service"
)

type CreatePostRequest struct {
	RecipientID string `json:"recipientId" validate:"required"`
	Message     string `json:"message" validate:"notblank"`
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	senderID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var req CreatePostRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	recipientID, ok := pathID(w, req.RecipientID, service.KindInvalidRecipient)
	if !ok {
		return
	}

	post, err := h.PostService.CreatePost(r.Context(), service.CreatePostRequest{
		SenderID:    senderID,
		RecipientID: recipientID,
		Message:     req.Message,
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, models.NewPostView(*post), http.StatusCreated)
}

func (h *Handlers) GetTimeline(w http.ResponseWriter, r *http.Request) {
	userID, ok := targetUser(w, r)
	if !ok {
		return
	}

	timeline, err := h.FeedService.GetTimeline(r.Context(), userID)
	h.writeFeed(w, r, metrics.FeedTimeline, timeline, err)
}

func (h *Handlers) GetConversation(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	userID1, ok := pathID(w, vars["userId1"], service.KindInvalidUser)
	if !ok {
		return
	}
	userID2, ok := pathID(w, vars["userId2"], service.KindInvalidUser)
	if !ok {
		return
	}

	conversation, err := h.FeedService.GetConversation(r.Context(), userID1, userID2)
	h.writeFeed(w, r, metrics.FeedConversation, conversation, err)
}

func (h *Handlers) GetWall(w http.ResponseWriter, r *http.Request) {
	userID, ok := targetUser(w, r)
	if !ok {
		return
	}

	wall, err := h.FeedService.GetWall(r.Context(), userID)
	h.writeFeed(w, r, metrics.FeedWall, wall, err)
}

func (h *Handlers) writeFeed(w http.ResponseWriter, r *http.Request, feed string, posts []models.PostView, err error) {
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	if posts == nil {
		posts = []models.PostView{}
	}
	if h.Metrics != nil {
		h.Metrics.ObserveFeed(feed, len(posts))
	}

	WriteJSON(w, posts, http.StatusOK)
}
