package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"socialwall/internal/messaging"
	"socialwall/internal/models"
	"socialwall/internal/repository"
)

type SendDirectMessageRequest struct {
	SenderID    string
	RecipientID string
	Message     string
}

type DirectMessageService interface {
	Send(ctx context.Context, req SendDirectMessageRequest) (*models.DirectMessage, error)
	GetReceived(ctx context.Context, userID string) ([]models.DirectMessage, error)
	MarkAsRead(ctx context.Context, userID, messageID string) error
}

type directMessageService struct {
	users            repository.UserDirectory
	messageRepo      repository.DirectMessageRepository
	publisher        messaging.Publisher
	maxMessageLength int
	logger           *slog.Logger
}

func NewDirectMessageService(users repository.UserDirectory, messageRepo repository.DirectMessageRepository, publisher messaging.Publisher, maxMessageLength int, logger *slog.Logger) DirectMessageService {
	return &directMessageService{
		users:            users,
		messageRepo:      messageRepo,
		publisher:        publisher,
		maxMessageLength: maxMessageLength,
		logger:           logger,
	}
}

func (s *directMessageService) Send(ctx context.Context, req SendDirectMessageRequest) (*models.DirectMessage, error) {
	if req.SenderID == req.RecipientID {
		return nil, newError(KindValidation, "cannot send a direct message to yourself")
	}

	message, err := validateMessage(req.Message, s.maxMessageLength)
	if err != nil {
		return nil, err
	}

	exists, err := s.users.Exists(ctx, req.SenderID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, invalidUser(req.SenderID)
	}

	exists, err = s.users.Exists(ctx, req.RecipientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, newError(KindInvalidRecipient, "recipient with ID %s does not exist", req.RecipientID)
	}

	dm := &models.DirectMessage{
		SenderID:    req.SenderID,
		RecipientID: req.RecipientID,
		Message:     message,
	}

	if err := s.messageRepo.Create(ctx, dm); err != nil {
		return nil, fmt.Errorf("failed to send direct message: %w", err)
	}

	publish(ctx, s.publisher, s.logger, messaging.SubjectDirectMessageSent, dm)

	return dm, nil
}

func (s *directMessageService) GetReceived(ctx context.Context, userID string) ([]models.DirectMessage, error) {
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, invalidUser(userID)
	}

	return s.messageRepo.GetByRecipientID(ctx, userID)
}

// MarkAsRead only lets the recipient mark a message; anyone else sees it as missing.
func (s *directMessageService) MarkAsRead(ctx context.Context, userID, messageID string) error {
	message, err := s.messageRepo.GetByID(ctx, messageID)
	if errors.Is(err, repository.ErrNotFound) {
		return newError(KindMessageNotFound, "message %s not found", messageID)
	}
	if err != nil {
		return err
	}

	if message.RecipientID != userID {
		return newError(KindMessageNotFound, "message %s not found", messageID)
	}

	if message.IsRead {
		return nil
	}

	if err := s.messageRepo.MarkAsRead(ctx, messageID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return newError(KindMessageNotFound, "message %s not found", messageID)
		}
		return err
	}

	return nil
}
