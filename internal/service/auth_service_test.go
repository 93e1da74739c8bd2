package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"socialwall/internal/config"
	"socialwall/internal/models"
	"socialwall/internal/repository"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecretKey:         "test-secret",
		JWTIssuer:            "socialwall",
		AccessTokenDuration:  time.Hour,
		RefreshTokenDuration: 24 * time.Hour,
	}
}

func notFound(what string) error {
	return fmt.Errorf("%s: %w", what, repository.ErrNotFound)
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	req := repository.CreateUserRequest{Username: "alice", Email: "Alice@Example.com", Password: "Secret123"}

	t.Run("creates the user and issues tokens", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("GetUserByUsername", ctx, "alice").Return(nil, notFound("alice"))
		users.On("GetUserByEmail", ctx, "Alice@Example.com").Return(nil, notFound("email"))
		users.On("CreateUser", ctx, mock.AnythingOfType("*models.User"), "Secret123").
			Run(func(args mock.Arguments) {
				args.Get(1).(*models.User).UserID = alice
			}).Return(nil)

		svc := NewAuthService(users, testAuthConfig(), discardLogger)
		result, err := svc.Register(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, alice, result.User.UserID)
		assert.NotEmpty(t, result.AccessToken)
		assert.NotEmpty(t, result.RefreshToken)

		claims, err := svc.ValidateToken(result.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, alice, claims.UserID)
		assert.Equal(t, "alice", claims.Username)
	})

	t.Run("username taken", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("GetUserByUsername", ctx, "alice").Return(&models.User{UserID: alice}, nil)

		_, err := NewAuthService(users, testAuthConfig(), discardLogger).Register(ctx, req)

		assert.Equal(t, KindUserAlreadyExists, kindOf(t, err))
	})

	t.Run("email taken in another case", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("GetUserByUsername", ctx, "alice").Return(nil, notFound("alice"))
		users.On("GetUserByEmail", ctx, "Alice@Example.com").Return(&models.User{Email: "alice@example.com"}, nil)

		_, err := NewAuthService(users, testAuthConfig(), discardLogger).Register(ctx, req)

		assert.Equal(t, KindUserAlreadyExists, kindOf(t, err))
		users.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials rotate the refresh token", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("VerifyPassword", ctx, "alice", "Secret123").Return(&models.User{UserID: alice, Username: "alice"}, nil)
		users.On("UpdateRefreshToken", ctx, alice, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil)

		result, err := NewAuthService(users, testAuthConfig(), discardLogger).Login(ctx, "alice", "Secret123")

		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
		users.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("VerifyPassword", ctx, "alice", "nope").Return(nil, notFound("password"))

		_, err := NewAuthService(users, testAuthConfig(), discardLogger).Login(ctx, "alice", "nope")

		assert.Equal(t, KindInvalidCredentials, kindOf(t, err))
	})
}

func TestAuthService_RefreshTokens(t *testing.T) {
	ctx := context.Background()
	users := new(MockUserRepository)
	users.On("GetUserByRefreshToken", ctx, "stale").Return(nil, notFound("token"))

	_, err := NewAuthService(users, testAuthConfig(), discardLogger).RefreshTokens(ctx, "stale")

	assert.Equal(t, KindUnauthorized, kindOf(t, err))
}

func TestAuthService_ValidateToken(t *testing.T) {
	cfg := testAuthConfig()
	svc := NewAuthService(new(MockUserRepository), cfg, discardLogger)

	sign := func(claims Claims, method jwt.SigningMethod, key any) string {
		token, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return token
	}

	valid := Claims{
		UserID: alice,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.JWTIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	expired := valid
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	wrongIssuer := valid
	wrongIssuer.Issuer = "someone-else"

	tests := []struct {
		name  string
		token string
		ok    bool
	}{
		{"valid", sign(valid, jwt.SigningMethodHS256, []byte("test-secret")), true},
		{"wrong key", sign(valid, jwt.SigningMethodHS256, []byte("other")), false},
		{"expired", sign(expired, jwt.SigningMethodHS256, []byte("test-secret")), false},
		{"wrong issuer", sign(wrongIssuer, jwt.SigningMethodHS256, []byte("test-secret")), false},
		{"garbage", "not-a-token", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token)
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, alice, claims.UserID)
				return
			}
			assert.Equal(t, KindUnauthorized, kindOf(t, err))
		})
	}
}
