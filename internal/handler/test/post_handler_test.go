package test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"socialwall/internal/models"
	"socialwall/internal/service"
)

func TestCreatePost(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		setup      func(f *fixture)
		wantStatus int
		wantCode   string
	}{
		{
			name: "created",
			body: map[string]string{"recipientId": otherID, "message": "hello"},
			setup: func(f *fixture) {
				f.posts.On("CreatePost", mock.Anything, service.CreatePostRequest{SenderID: callerID, RecipientID: otherID, Message: "hello"}).
					Return(&models.Post{PostID: "p1", SenderID: callerID, RecipientID: otherID, Message: "hello", CreatedAt: time.Now()}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "blank message",
			body:       map[string]string{"recipientId": otherID, "message": "   "},
			setup:      func(f *fixture) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "malformed recipient",
			body:       map[string]string{"recipientId": "xyz", "message": "hi"},
			setup:      func(f *fixture) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_RECIPIENT_ID",
		},
		{
			name: "unknown recipient",
			body: map[string]string{"recipientId": thirdID, "message": "hi"},
			setup: func(f *fixture) {
				f.posts.On("CreatePost", mock.Anything, mock.Anything).
					Return(nil, &service.Error{Kind: service.KindInvalidRecipient, Message: "recipient does not exist"})
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_RECIPIENT_ID",
		},
		{
			name: "too long",
			body: map[string]string{"recipientId": otherID, "message": strings.Repeat("x", 501)},
			setup: func(f *fixture) {
				f.posts.On("CreatePost", mock.Anything, mock.Anything).
					Return(nil, &service.Error{Kind: service.KindValidation, Message: "message must be at most 500 characters"})
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			rec := f.do(t, http.MethodPost, "/api/posts", tt.body, true)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).ErrorCode)
			}
		})
	}
}

func TestCreatePostRejectsInvalidJSON(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/posts", "not an object", true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decodeError(t, rec).ErrorCode)
	f.posts.AssertNotCalled(t, "CreatePost", mock.Anything, mock.Anything)
}
