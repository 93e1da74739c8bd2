package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"socialwall/internal/models"
)

type DirectMessageRepositoryImpl struct {
	db *sqlx.DB
}

func NewDirectMessageRepository(db *sqlx.DB) *DirectMessageRepositoryImpl {
	return &DirectMessageRepositoryImpl{db: db}
}

const directMessageColumns = `message_id, sender_id, recipient_id, message, created_at, is_read`

func (r *DirectMessageRepositoryImpl) UserExists(ctx context.Context, userID string) (bool, error) {
	return userExists(ctx, r.db, userID)
}

func (r *DirectMessageRepositoryImpl) Create(ctx context.Context, message *models.DirectMessage) error {
	query := `
		INSERT INTO direct_messages (message_id, sender_id, recipient_id, message, created_at, is_read)
		VALUES (:message_id, :sender_id, :recipient_id, :message, :created_at, :is_read)
	`

	if message.MessageID == "" {
		message.MessageID = uuid.New().String()
	}
	message.CreatedAt = time.Now().UTC()
	message.IsRead = false

	if _, err := r.db.NamedExecContext(ctx, query, message); err != nil {
		return fmt.Errorf("failed to create direct message: %w", err)
	}

	return nil
}

func (r *DirectMessageRepositoryImpl) GetByID(ctx context.Context, messageID string) (*models.DirectMessage, error) {
	if _, err := uuid.Parse(messageID); err != nil {
		return nil, fmt.Errorf("direct message %s: %w", messageID, ErrNotFound)
	}

	var message models.DirectMessage
	err := r.db.GetContext(ctx, &message,
		`SELECT `+directMessageColumns+` FROM direct_messages WHERE message_id = $1`, messageID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("direct message %s: %w", messageID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get direct message: %w", err)
	}

	return &message, nil
}

func (r *DirectMessageRepositoryImpl) GetByRecipientID(ctx context.Context, recipientID string) ([]models.DirectMessage, error) {
	query := `
		SELECT ` + directMessageColumns + ` FROM direct_messages
		WHERE recipient_id = $1
		ORDER BY created_at DESC, message_id DESC
	`

	messages := []models.DirectMessage{}
	if err := r.db.SelectContext(ctx, &messages, query, recipientID); err != nil {
		return nil, fmt.Errorf("failed to get received messages: %w", err)
	}

	return messages, nil
}

func (r *DirectMessageRepositoryImpl) MarkAsRead(ctx context.Context, messageID string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE direct_messages SET is_read = TRUE WHERE message_id = $1`, messageID)
	if err != nil {
		return fmt.Errorf("failed to mark message as read: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("direct message %s: %w", messageID, ErrNotFound)
	}

	return nil
}
