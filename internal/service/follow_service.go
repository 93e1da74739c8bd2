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

type FollowService interface {
	Follow(ctx context.Context, followerID, followingID string) (*models.Follow, error)
	Unfollow(ctx context.Context, followerID, followingID string) error
	GetFollowers(ctx context.Context, userID string) ([]models.Follow, error)
	GetFollowing(ctx context.Context, userID string) ([]models.Follow, error)
}

type followService struct {
	users        repository.UserDirectory
	followRepo   repository.FollowRepository
	publisher    messaging.Publisher
	rejectMutual bool
	logger       *slog.Logger
}

func NewFollowService(users repository.UserDirectory, followRepo repository.FollowRepository, publisher messaging.Publisher, rejectMutual bool, logger *slog.Logger) FollowService {
	return &followService{
		users:        users,
		followRepo:   followRepo,
		publisher:    publisher,
		rejectMutual: rejectMutual,
		logger:       logger,
	}
}

func (s *followService) requireUser(ctx context.Context, userID string) error {
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return invalidUser(userID)
	}
	return nil
}

func (s *followService) Follow(ctx context.Context, followerID, followingID string) (*models.Follow, error) {
	if followerID == followingID {
		return nil, newError(KindValidation, "users cannot follow themselves")
	}
	if err := s.requireUser(ctx, followerID); err != nil {
		return nil, err
	}
	if err := s.requireUser(ctx, followingID); err != nil {
		return nil, err
	}

	already, err := s.followRepo.Exists(ctx, followerID, followingID)
	if err != nil {
		return nil, err
	}
	if already {
		return nil, newError(KindAlreadyFollowing, "user %s already follows %s", followerID, followingID)
	}

	if s.rejectMutual {
		reverse, err := s.followRepo.Exists(ctx, followingID, followerID)
		if err != nil {
			return nil, err
		}
		if reverse {
			return nil, newError(KindMutualFollow, "user %s already follows %s", followingID, followerID)
		}
	}

	follow := &models.Follow{FollowerID: followerID, FollowingID: followingID}
	if err := s.followRepo.Create(ctx, follow); err != nil {
		// a concurrent request may have inserted the same edge
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, newError(KindAlreadyFollowing, "user %s already follows %s", followerID, followingID)
		}
		return nil, fmt.Errorf("failed to create follow: %w", err)
	}

	s.logger.Info("follow created", "follower", followerID, "following", followingID)
	publish(ctx, s.publisher, s.logger, messaging.SubjectFollowCreated, follow)

	return follow, nil
}

func (s *followService) Unfollow(ctx context.Context, followerID, followingID string) error {
	deleted, err := s.followRepo.Delete(ctx, followerID, followingID)
	if err != nil {
		return fmt.Errorf("failed to delete follow: %w", err)
	}
	if !deleted {
		return newError(KindNotFollowing, "user %s does not follow %s", followerID, followingID)
	}

	s.logger.Info("follow deleted", "follower", followerID, "following", followingID)
	publish(ctx, s.publisher, s.logger, messaging.SubjectFollowDeleted, models.Follow{FollowerID: followerID, FollowingID: followingID})

	return nil
}

func (s *followService) GetFollowers(ctx context.Context, userID string) ([]models.Follow, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.followRepo.GetFollowers(ctx, userID)
}

func (s *followService) GetFollowing(ctx context.Context, userID string) ([]models.Follow, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.followRepo.GetFollowing(ctx, userID)
}
