package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"socialwall/internal/service"
)

const (
	CodeInternal    = "INTERNAL_SERVER_ERROR"
	CodeRateLimited = "RATE_LIMITED"
)

// ErrorResponse is the single error envelope of the API.
type ErrorResponse struct {
	ErrorCode string         `json:"errorCode"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
}

func WriteJSON(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

func WriteError(w http.ResponseWriter, code, message string, statusCode int) {
	WriteJSON(w, ErrorResponse{ErrorCode: code, Message: message}, statusCode)
}

func writeClientError(w http.ResponseWriter, kind service.Kind, message string) {
	WriteError(w, string(kind), message, statusFor(kind))
}

func statusFor(kind service.Kind) int {
	switch kind {
	case service.KindValidation, service.KindInvalidUser, service.KindInvalidRecipient:
		return http.StatusBadRequest
	case service.KindInvalidCredentials, service.KindUnauthorized:
		return http.StatusUnauthorized
	case service.KindUserNotFound, service.KindMessageNotFound:
		return http.StatusNotFound
	case service.KindAlreadyFollowing, service.KindMutualFollow, service.KindUserAlreadyExists:
		return http.StatusConflict
	case service.KindNotFollowing:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

// writeServiceError maps a service failure onto the envelope. Anything that is
// not a client error is logged and reported as a 500 without its text.
func (h *Handlers) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if e, ok := service.AsError(err); ok {
		h.logger.Debug("request rejected", "path", r.URL.Path, "code", e.Kind, "error", e.Message)
		WriteJSON(w, ErrorResponse{ErrorCode: string(e.Kind), Message: e.Message, Details: e.Details}, statusFor(e.Kind))
		return
	}

	h.logger.Error("request failed", slog.String("method", r.Method), slog.String("path", r.URL.Path), slog.Any("error", err))
	WriteError(w, CodeInternal, "an unexpected error occurred, please try again later", http.StatusInternalServerError)
}
