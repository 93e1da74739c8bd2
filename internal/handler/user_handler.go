package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"socialwall/internal/models"
	"socialwall/internal/service"
)

type UserResponse struct {
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func newUserResponse(u *models.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Username:  u.Username,
		Email:     u.Email,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
	}
}

func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	h.writeUser(w, r, userID)
}

func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, mux.Vars(r)["userId"], service.KindInvalidUser)
	if !ok {
		return
	}
	h.writeUser(w, r, userID)
}

func (h *Handlers) writeUser(w http.ResponseWriter, r *http.Request, userID string) {
	user, err := h.UserService.GetUser(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, newUserResponse(user), http.StatusOK)
}

func (h *Handlers) GetUserByUsername(w http.ResponseWriter, r *http.Request) {
	user, err := h.UserService.GetByUsername(r.Context(), mux.Vars(r)["username"])
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, newUserResponse(user), http.StatusOK)
}

func (h *Handlers) SearchUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.Search(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	response := make([]UserResponse, 0, len(users))
	for i := range users {
		response = append(response, newUserResponse(&users[i]))
	}
	WriteJSON(w, response, http.StatusOK)
}

func (h *Handlers) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize+1024*1024)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		writeClientError(w, service.KindValidation, "avatar must be a multipart upload within the size limit")
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		writeClientError(w, service.KindValidation, "avatar file is required")
		return
	}
	defer file.Close()

	if header.Size > h.Cfg.MaxUploadSize {
		writeClientError(w, service.KindValidation, "avatar is too large")
		return
	}

	user, err := h.UserService.UploadAvatar(r.Context(), userID, header.Filename, file, header.Size)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, newUserResponse(user), http.StatusOK)
}
