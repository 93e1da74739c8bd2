package service

import (
	"log/slog"

	"socialwall/internal/config"
	"socialwall/internal/messaging"
	"socialwall/internal/repository"
	"socialwall/internal/storage"
)

type Service struct {
	User          UserService
	Auth          AuthService
	Follow        FollowService
	Post          PostService
	Feed          FeedService
	DirectMessage DirectMessageService
	Stats         StatsService
}

// NewService wires every service to the user repository as the single
// authority on whether a user exists.
func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage, publisher messaging.Publisher, logger *slog.Logger) *Service {
	return &Service{
		User:          NewUserService(rep.User, storage, logger),
		Auth:          NewAuthService(rep.User, cfg, logger),
		Follow:        NewFollowService(rep.User, rep.Follow, publisher, cfg.RejectMutualFollow, logger),
		Post:          NewPostService(rep.User, rep.Post, publisher, cfg.MaxMessageLength, logger),
		Feed:          NewFeedService(rep.User, rep.Follow, rep.Post, logger),
		DirectMessage: NewDirectMessageService(rep.User, rep.DirectMessage, publisher, cfg.MaxMessageLength, logger),
		Stats:         NewStatsService(rep.Stats),
	}
}
