package test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"socialwall/internal/models"
	"socialwall/internal/repository"
	"socialwall/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) result(args mock.Arguments) (*service.AuthResult, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AuthResult), args.Error(1)
}

func (m *MockAuthService) Register(ctx context.Context, req repository.CreateUserRequest) (*service.AuthResult, error) {
	return m.result(m.Called(ctx, req))
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*service.AuthResult, error) {
	return m.result(m.Called(ctx, username, password))
}

func (m *MockAuthService) RefreshTokens(ctx context.Context, refreshToken string) (*service.AuthResult, error) {
	return m.result(m.Called(ctx, refreshToken))
}

func (m *MockAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) user(args mock.Arguments) (*models.User, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	return m.user(m.Called(ctx, userID))
}

func (m *MockUserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return m.user(m.Called(ctx, username))
}

func (m *MockUserService) Search(ctx context.Context, term string) ([]models.User, error) {
	args := m.Called(ctx, term)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserService) UploadAvatar(ctx context.Context, userID, fileName string, file io.Reader, size int64) (*models.User, error) {
	return m.user(m.Called(ctx, userID, fileName, size))
}

type MockFollowService struct {
	mock.Mock
}

func (m *MockFollowService) Follow(ctx context.Context, followerID, followingID string) (*models.Follow, error) {
	args := m.Called(ctx, followerID, followingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Follow), args.Error(1)
}

func (m *MockFollowService) Unfollow(ctx context.Context, followerID, followingID string) error {
	return m.Called(ctx, followerID, followingID).Error(0)
}

func (m *MockFollowService) GetFollowers(ctx context.Context, userID string) ([]models.Follow, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Follow), args.Error(1)
}

func (m *MockFollowService) GetFollowing(ctx context.Context, userID string) ([]models.Follow, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Follow), args.Error(1)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) CreatePost(ctx context.Context, req service.CreatePostRequest) (*models.Post, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

type MockFeedService struct {
	mock.Mock
}

func (m *MockFeedService) views(args mock.Arguments) ([]models.PostView, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PostView), args.Error(1)
}

func (m *MockFeedService) GetWall(ctx context.Context, viewerID string) ([]models.PostView, error) {
	return m.views(m.Called(ctx, viewerID))
}

func (m *MockFeedService) GetTimeline(ctx context.Context, userID string) ([]models.PostView, error) {
	return m.views(m.Called(ctx, userID))
}

func (m *MockFeedService) GetConversation(ctx context.Context, userID1, userID2 string) ([]models.PostView, error) {
	return m.views(m.Called(ctx, userID1, userID2))
}

type MockDirectMessageService struct {
	mock.Mock
}

func (m *MockDirectMessageService) Send(ctx context.Context, req service.SendDirectMessageRequest) (*models.DirectMessage, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DirectMessage), args.Error(1)
}

func (m *MockDirectMessageService) GetReceived(ctx context.Context, userID string) ([]models.DirectMessage, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.DirectMessage), args.Error(1)
}

func (m *MockDirectMessageService) MarkAsRead(ctx context.Context, userID, messageID string) error {
	return m.Called(ctx, userID, messageID).Error(0)
}

type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) GetStats(ctx context.Context) (*models.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Stats), args.Error(1)
}
