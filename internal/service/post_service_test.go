package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"socialwall/internal/messaging"
	"socialwall/internal/models"
)

func TestPostService_CreatePost(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		req      CreatePostRequest
		setup    func(users *MockUserRepository, posts *MockPostRepository, pub *MockPublisher)
		wantKind Kind
		wantMsg  string
	}{
		{
			name: "trims and stores the message",
			req:  CreatePostRequest{SenderID: alice, RecipientID: bob, Message: "  hello  "},
			setup: func(users *MockUserRepository, posts *MockPostRepository, pub *MockPublisher) {
				users.On("Exists", ctx, alice).Return(true, nil)
				users.On("Exists", ctx, bob).Return(true, nil)
				posts.On("Create", ctx, mock.MatchedBy(func(p *models.Post) bool {
					return p.Message == "hello" && p.SenderID == alice && p.RecipientID == bob
				})).Return(nil)
				pub.On("Publish", ctx, messaging.SubjectPostCreated, mock.Anything).Return(nil)
			},
			wantMsg: "hello",
		},
		{
			name: "self-post is allowed",
			req:  CreatePostRequest{SenderID: alice, RecipientID: alice, Message: "note to self"},
			setup: func(users *MockUserRepository, posts *MockPostRepository, pub *MockPublisher) {
				users.On("Exists", ctx, alice).Return(true, nil)
				posts.On("Create", ctx, mock.Anything).Return(nil)
				pub.On("Publish", ctx, messaging.SubjectPostCreated, mock.Anything).Return(errors.New("nats down"))
			},
			wantMsg: "note to self",
		},
		{
			name:     "blank message",
			req:      CreatePostRequest{SenderID: alice, RecipientID: bob, Message: "   "},
			setup:    func(*MockUserRepository, *MockPostRepository, *MockPublisher) {},
			wantKind: KindValidation,
		},
		{
			name:     "message too long",
			req:      CreatePostRequest{SenderID: alice, RecipientID: bob, Message: strings.Repeat("ä", 501)},
			setup:    func(*MockUserRepository, *MockPostRepository, *MockPublisher) {},
			wantKind: KindValidation,
		},
		{
			name: "unknown sender",
			req:  CreatePostRequest{SenderID: alice, RecipientID: bob, Message: "hi"},
			setup: func(users *MockUserRepository, posts *MockPostRepository, pub *MockPublisher) {
				users.On("Exists", ctx, alice).Return(false, nil)
			},
			wantKind: KindInvalidUser,
		},
		{
			name: "unknown recipient",
			req:  CreatePostRequest{SenderID: alice, RecipientID: bob, Message: "hi"},
			setup: func(users *MockUserRepository, posts *MockPostRepository, pub *MockPublisher) {
				users.On("Exists", ctx, alice).Return(true, nil)
				users.On("Exists", ctx, bob).Return(false, nil)
			},
			wantKind: KindInvalidRecipient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(MockUserRepository)
			posts := new(MockPostRepository)
			pub := new(MockPublisher)
			tt.setup(users, posts, pub)

			svc := NewPostService(users, posts, pub, 500, discardLogger)
			created, err := svc.CreatePost(ctx, tt.req)

			if tt.wantKind != "" {
				e, ok := AsError(err)
				require.True(t, ok)
				assert.Equal(t, tt.wantKind, e.Kind)
				posts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantMsg, created.Message)
			posts.AssertExpectations(t)
			pub.AssertExpectations(t)
		})
	}
}
