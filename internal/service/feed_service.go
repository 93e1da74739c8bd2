package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"socialwall/internal/models"
	"socialwall/internal/repository"
)

// FeedService builds the read-only post feeds.
//
// The wall is every post authored by an account the viewer follows, whatever
// its recipient. The timeline is every post addressed to one user, whatever
// the follow graph says. The conversation is the posts exchanged between two
// users in reading order.
type FeedService interface {
	GetWall(ctx context.Context, viewerID string) ([]models.PostView, error)
	GetTimeline(ctx context.Context, userID string) ([]models.PostView, error)
	GetConversation(ctx context.Context, userID1, userID2 string) ([]models.PostView, error)
}

// FollowGraph is the part of the follow store the wall reads.
type FollowGraph interface {
	ListFollowed(ctx context.Context, userID string) ([]string, error)
}

// PostSource is the part of the post store the feeds read.
type PostSource interface {
	FetchByAuthors(ctx context.Context, authorIDs []string) ([]models.Post, error)
	FetchByTarget(ctx context.Context, userID string) ([]models.Post, error)
	FetchConversation(ctx context.Context, userID1, userID2 string) ([]models.Post, error)
}

type feedService struct {
	users   repository.UserDirectory
	follows FollowGraph
	posts   PostSource
	logger  *slog.Logger
}

func NewFeedService(users repository.UserDirectory, follows FollowGraph, posts PostSource, logger *slog.Logger) FeedService {
	return &feedService{
		users:   users,
		follows: follows,
		posts:   posts,
		logger:  logger,
	}
}

func (s *feedService) requireUser(ctx context.Context, userID string) error {
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return invalidUser(userID)
	}
	return nil
}

func (s *feedService) GetWall(ctx context.Context, viewerID string) ([]models.PostView, error) {
	if err := s.requireUser(ctx, viewerID); err != nil {
		return nil, err
	}

	followed, err := s.follows.ListFollowed(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve follow set of %s: %w", viewerID, err)
	}

	if len(followed) == 0 {
		return []models.PostView{}, nil
	}

	posts, err := s.posts.FetchByAuthors(ctx, followed)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch wall posts of %s: %w", viewerID, err)
	}

	sortNewestFirst(posts)

	s.logger.Debug("wall built", "viewer", viewerID, "followed", len(followed), "posts", len(posts))
	return project(posts), nil
}

func (s *feedService) GetTimeline(ctx context.Context, userID string) ([]models.PostView, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	posts, err := s.posts.FetchByTarget(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch timeline of %s: %w", userID, err)
	}

	sortNewestFirst(posts)

	return project(posts), nil
}

func (s *feedService) GetConversation(ctx context.Context, userID1, userID2 string) ([]models.PostView, error) {
	if userID1 == userID2 {
		return nil, newError(KindInvalidUser, "a conversation needs two different users")
	}
	if err := s.requireUser(ctx, userID1); err != nil {
		return nil, err
	}
	if err := s.requireUser(ctx, userID2); err != nil {
		return nil, err
	}

	posts, err := s.posts.FetchConversation(ctx, userID1, userID2)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch conversation %s/%s: %w", userID1, userID2, err)
	}

	sortOldestFirst(posts)

	return project(posts), nil
}

// sortNewestFirst orders by creation time descending; equal timestamps fall
// back to post id descending so repeated reads agree.
func sortNewestFirst(posts []models.Post) {
	slices.SortStableFunc(posts, func(a, b models.Post) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(b.PostID, a.PostID)
	})
}

func sortOldestFirst(posts []models.Post) {
	slices.SortStableFunc(posts, func(a, b models.Post) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.PostID, b.PostID)
	})
}

func project(posts []models.Post) []models.PostView {
	views := make([]models.PostView, 0, len(posts))
	for _, p := range posts {
		views = append(views, models.NewPostView(p))
	}
	return views
}
