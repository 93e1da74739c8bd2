package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"socialwall/internal/models"
	"socialwall/internal/repository"
	"socialwall/internal/storage"
)

type UserService interface {
	GetUser(ctx context.Context, userID string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Search(ctx context.Context, term string) ([]models.User, error)
	UploadAvatar(ctx context.Context, userID, fileName string, file io.Reader, size int64) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
	storage  storage.Storage
	logger   *slog.Logger
}

func NewUserService(userRepo repository.UserRepository, storage storage.Storage, logger *slog.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		storage:  storage,
		logger:   logger,
	}
}

func userNotFound(err error, what string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return newError(KindUserNotFound, "user %s not found", what)
	}
	return err
}

func (s *userService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, userNotFound(err, userID)
	}
	return user, nil
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, userNotFound(err, username)
	}
	return user, nil
}

func (s *userService) Search(ctx context.Context, term string) ([]models.User, error) {
	return s.userRepo.SearchUsers(ctx, strings.TrimSpace(term))
}

// UploadAvatar stores the image and points the user at it. The object is
// removed again if the user row cannot be updated.
func (s *userService) UploadAvatar(ctx context.Context, userID, fileName string, file io.Reader, size int64) (*models.User, error) {
	objectName, url, err := s.storage.UploadAvatar(ctx, userID, fileName, file, size)
	if err != nil {
		return nil, fmt.Errorf("failed to upload avatar: %w", err)
	}

	if err := s.userRepo.UpdateAvatar(ctx, userID, url); err != nil {
		if delErr := s.storage.DeleteObject(ctx, objectName); delErr != nil {
			s.logger.Warn("failed to remove orphaned avatar", "object", objectName, "error", delErr)
		}
		return nil, userNotFound(err, userID)
	}

	return s.GetUser(ctx, userID)
}
