package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"socialwall/internal/models"
)

var (
	// ErrNotFound is returned when a single-row lookup matches nothing.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert violates a unique constraint.
	ErrDuplicate = errors.New("record already exists")
)

const uniqueViolation = "23505"

// UserDirectory answers whether a user id refers to a registered user.
type UserDirectory interface {
	Exists(ctx context.Context, userID string) (bool, error)
}

type UserRepository interface {
	UserDirectory
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	SearchUsers(ctx context.Context, term string) ([]models.User, error)
	VerifyPassword(ctx context.Context, username, password string) (*models.User, error)
	UpdateAvatar(ctx context.Context, userID, avatarURL string) error
	UpdateRefreshToken(ctx context.Context, userID, refreshToken string, expiryTime time.Time) error
	GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error)
}

type FollowRepository interface {
	UserExists(ctx context.Context, userID string) (bool, error)
	Create(ctx context.Context, follow *models.Follow) error
	Delete(ctx context.Context, followerID, followingID string) (bool, error)
	Exists(ctx context.Context, followerID, followingID string) (bool, error)
	// ListFollowed returns the ids userID follows, in no particular order.
	ListFollowed(ctx context.Context, userID string) ([]string, error)
	GetFollowing(ctx context.Context, userID string) ([]models.Follow, error)
	GetFollowers(ctx context.Context, userID string) ([]models.Follow, error)
}

type PostRepository interface {
	UserExists(ctx context.Context, userID string) (bool, error)
	Create(ctx context.Context, post *models.Post) error
	FetchByAuthors(ctx context.Context, authorIDs []string) ([]models.Post, error)
	FetchByTarget(ctx context.Context, userID string) ([]models.Post, error)
	FetchConversation(ctx context.Context, userID1, userID2 string) ([]models.Post, error)
}

type DirectMessageRepository interface {
	UserExists(ctx context.Context, userID string) (bool, error)
	Create(ctx context.Context, message *models.DirectMessage) error
	GetByID(ctx context.Context, messageID string) (*models.DirectMessage, error)
	GetByRecipientID(ctx context.Context, recipientID string) ([]models.DirectMessage, error)
	MarkAsRead(ctx context.Context, messageID string) error
}

type StatsRepository interface {
	Counts(ctx context.Context) (*models.Stats, error)
}

type Repository struct {
	User          UserRepository
	Follow        FollowRepository
	Post          PostRepository
	DirectMessage DirectMessageRepository
	Stats         StatsRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:          NewUserRepository(db),
		Follow:        NewFollowRepository(db),
		Post:          NewPostRepository(db),
		DirectMessage: NewDirectMessageRepository(db),
		Stats:         NewStatsRepository(db),
	}
}

// userExists is shared by every store that validates user references.
// Ids that are not UUIDs cannot exist, so they are rejected without a query.
func userExists(ctx context.Context, db sqlx.QueryerContext, userID string) (bool, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return false, nil
	}

	var exists bool
	err := sqlx.GetContext(ctx, db, &exists, `SELECT EXISTS(SELECT 1 FROM users WHERE user_id = $1)`, userID)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}

	return exists, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
