package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"socialwall/internal/messaging"
	"socialwall/internal/models"
	"socialwall/internal/repository"
)

type CreatePostRequest struct {
	SenderID    string
	RecipientID string
	Message     string
}

type PostService interface {
	CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error)
}

type postService struct {
	users            repository.UserDirectory
	postRepo         repository.PostRepository
	publisher        messaging.Publisher
	maxMessageLength int
	logger           *slog.Logger
}

func NewPostService(users repository.UserDirectory, postRepo repository.PostRepository, publisher messaging.Publisher, maxMessageLength int, logger *slog.Logger) PostService {
	return &postService{
		users:            users,
		postRepo:         postRepo,
		publisher:        publisher,
		maxMessageLength: maxMessageLength,
		logger:           logger,
	}
}

func validateMessage(message string, maxLength int) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", newError(KindValidation, "message must not be empty")
	}
	if maxLength > 0 && utf8.RuneCountInString(message) > maxLength {
		return "", newError(KindValidation, "message must be at most %d characters", maxLength)
	}
	return message, nil
}

func (p *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error) {
	message, err := validateMessage(req.Message, p.maxMessageLength)
	if err != nil {
		return nil, err
	}

	senderExists, err := p.users.Exists(ctx, req.SenderID)
	if err != nil {
		return nil, err
	}
	if !senderExists {
		return nil, invalidUser(req.SenderID)
	}

	recipientExists, err := p.users.Exists(ctx, req.RecipientID)
	if err != nil {
		return nil, err
	}
	if !recipientExists {
		return nil, newError(KindInvalidRecipient, "recipient with ID %s does not exist", req.RecipientID)
	}

	post := &models.Post{
		SenderID:    req.SenderID,
		RecipientID: req.RecipientID,
		Message:     message,
	}

	if err := p.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	publish(ctx, p.publisher, p.logger, messaging.SubjectPostCreated, post)

	return post, nil
}

// publish reports an event for a committed write. Failure is logged only.
func publish(ctx context.Context, publisher messaging.Publisher, logger *slog.Logger, subject string, payload any) {
	if err := publisher.Publish(ctx, subject, payload); err != nil {
		logger.Warn("failed to publish event", "subject", subject, "error", err)
	}
}
