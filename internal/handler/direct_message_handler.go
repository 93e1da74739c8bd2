package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"socialwall/internal/models"
	"socialwall/internal/service"
)

type SendDirectMessageRequest struct {
	RecipientID string `json:"recipientId" validate:"required"`
	Message     string `json:"message" validate:"notblank"`
}

func (h *Handlers) SendDirectMessage(w http.ResponseWriter, r *http.Request) {
	senderID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var req SendDirectMessageRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	recipientID, ok := pathID(w, req.RecipientID, service.KindInvalidRecipient)
	if !ok {
		return
	}

	message, err := h.DirectMessageService.Send(r.Context(), service.SendDirectMessageRequest{
		SenderID:    senderID,
		RecipientID: recipientID,
		Message:     req.Message,
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, message, http.StatusCreated)
}

func (h *Handlers) GetReceivedDirectMessages(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	messages, err := h.DirectMessageService.GetReceived(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	if messages == nil {
		messages = []models.DirectMessage{}
	}
	WriteJSON(w, messages, http.StatusOK)
}

func (h *Handlers) MarkDirectMessageAsRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	messageID, ok := pathID(w, mux.Vars(r)["messageId"], service.KindMessageNotFound)
	if !ok {
		return
	}

	if err := h.DirectMessageService.MarkAsRead(r.Context(), userID, messageID); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
