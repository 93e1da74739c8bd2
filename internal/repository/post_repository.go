package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"socialwall/internal/models"
)

type PostRepositoryImpl struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{db: db}
}

const postColumns = `post_id, sender_id, recipient_id, message, created_at`

func (r *PostRepositoryImpl) UserExists(ctx context.Context, userID string) (bool, error) {
	return userExists(ctx, r.db, userID)
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts (post_id, sender_id, recipient_id, message, created_at)
		VALUES (:post_id, :sender_id, :recipient_id, :message, :created_at)
	`

	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}
	post.CreatedAt = time.Now().UTC()

	if _, err := r.db.NamedExecContext(ctx, query, post); err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

// FetchByAuthors returns every post sent by one of authorIDs.
// An empty set never reaches the database.
func (r *PostRepositoryImpl) FetchByAuthors(ctx context.Context, authorIDs []string) ([]models.Post, error) {
	posts := []models.Post{}
	if len(authorIDs) == 0 {
		return posts, nil
	}

	query := `
		SELECT ` + postColumns + ` FROM posts
		WHERE sender_id = ANY($1)
		ORDER BY created_at DESC, post_id DESC
	`

	if err := r.db.SelectContext(ctx, &posts, query, pq.Array(authorIDs)); err != nil {
		return nil, fmt.Errorf("failed to fetch posts by authors: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) FetchByTarget(ctx context.Context, userID string) ([]models.Post, error) {
	query := `
		SELECT ` + postColumns + ` FROM posts
		WHERE recipient_id = $1
		ORDER BY created_at DESC, post_id DESC
	`

	posts := []models.Post{}
	if err := r.db.SelectContext(ctx, &posts, query, userID); err != nil {
		return nil, fmt.Errorf("failed to fetch posts for %s: %w", userID, err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) FetchConversation(ctx context.Context, userID1, userID2 string) ([]models.Post, error) {
	query := `
		SELECT ` + postColumns + ` FROM posts
		WHERE (sender_id = $1 AND recipient_id = $2)
		   OR (sender_id = $2 AND recipient_id = $1)
		ORDER BY created_at ASC, post_id ASC
	`

	posts := []models.Post{}
	if err := r.db.SelectContext(ctx, &posts, query, userID1, userID2); err != nil {
		return nil, fmt.Errorf("failed to fetch conversation: %w", err)
	}

	return posts, nil
}
