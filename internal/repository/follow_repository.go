package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"socialwall/internal/models"
)

type FollowRepositoryImpl struct {
	db *sqlx.DB
}

func NewFollowRepository(db *sqlx.DB) *FollowRepositoryImpl {
	return &FollowRepositoryImpl{db: db}
}

func (r *FollowRepositoryImpl) UserExists(ctx context.Context, userID string) (bool, error) {
	return userExists(ctx, r.db, userID)
}

// Create inserts the edge. A second edge for the same pair yields ErrDuplicate.
func (r *FollowRepositoryImpl) Create(ctx context.Context, follow *models.Follow) error {
	query := `
		INSERT INTO follows (follow_id, follower_id, following_id, created_at)
		VALUES (:follow_id, :follower_id, :following_id, :created_at)
	`

	if follow.FollowID == "" {
		follow.FollowID = uuid.New().String()
	}
	if follow.CreatedAt.IsZero() {
		follow.CreatedAt = time.Now().UTC()
	}

	if _, err := r.db.NamedExecContext(ctx, query, follow); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("follow %s -> %s: %w", follow.FollowerID, follow.FollowingID, ErrDuplicate)
		}
		return fmt.Errorf("failed to create follow: %w", err)
	}

	return nil
}

// Delete removes the edge and reports whether one existed.
func (r *FollowRepositoryImpl) Delete(ctx context.Context, followerID, followingID string) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM follows WHERE follower_id = $1 AND following_id = $2`, followerID, followingID)
	if err != nil {
		return false, fmt.Errorf("failed to delete follow: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check deleted rows: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *FollowRepositoryImpl) Exists(ctx context.Context, followerID, followingID string) (bool, error) {
	var exists bool

	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM follows WHERE follower_id = $1 AND following_id = $2)`, followerID, followingID)
	if err != nil {
		return false, fmt.Errorf("failed to check follow: %w", err)
	}

	return exists, nil
}

func (r *FollowRepositoryImpl) ListFollowed(ctx context.Context, userID string) ([]string, error) {
	ids := []string{}

	err := r.db.SelectContext(ctx, &ids, `SELECT following_id FROM follows WHERE follower_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list followed users: %w", err)
	}

	return ids, nil
}

func (r *FollowRepositoryImpl) GetFollowing(ctx context.Context, userID string) ([]models.Follow, error) {
	return r.selectEdges(ctx, `
		SELECT follow_id, follower_id, following_id, created_at FROM follows
		WHERE follower_id = $1
		ORDER BY created_at DESC
	`, userID)
}

func (r *FollowRepositoryImpl) GetFollowers(ctx context.Context, userID string) ([]models.Follow, error) {
	return r.selectEdges(ctx, `
		SELECT follow_id, follower_id, following_id, created_at FROM follows
		WHERE following_id = $1
		ORDER BY created_at DESC
	`, userID)
}

func (r *FollowRepositoryImpl) selectEdges(ctx context.Context, query, userID string) ([]models.Follow, error) {
	follows := []models.Follow{}

	if err := r.db.SelectContext(ctx, &follows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list follows: %w", err)
	}

	return follows, nil
}
