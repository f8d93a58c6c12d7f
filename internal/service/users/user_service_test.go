package users

import (
	"context"
	"testing"
	"time"

	"github.com/avdku/airport-service/internal/auth"
	"github.com/avdku/airport-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockTokenRepository struct {
	mock.Mock
}

func (m *MockTokenRepository) StoreRefresh(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiresAt)
	return args.Error(0)
}

func (m *MockTokenRepository) ValidateRefresh(ctx context.Context, tokenHash string) (int64, error) {
	args := m.Called(ctx, tokenHash)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTokenRepository) Revoke(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)
	return args.Error(0)
}

func (m *MockTokenRepository) DeleteExpired(ctx context.Context, deadline time.Time) (int64, error) {
	args := m.Called(ctx, deadline)
	return args.Get(0).(int64), args.Error(1)
}

func newTestUserService() (*UserService, *MockUserRepository, *MockTokenRepository) {
	users := &MockUserRepository{}
	tokens := &MockTokenRepository{}
	service := NewUserService(users, tokens, "test-secret", 30*time.Minute, 14*24*time.Hour, 4)
	return service, users, tokens
}

func TestUserService_Register_Success(t *testing.T) {
	service, users, _ := newTestUserService()
	ctx := context.Background()

	users.On("Create", ctx, mock.AnythingOfType("*domain.User")).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.User).ID = 3
	}).Return(nil).Once()

	user, err := service.Register(ctx, RegisterInput{Email: "new@example.com", Password: "password123"})

	assert.NoError(t, err)
	assert.Equal(t, int64(3), user.ID)
	assert.Equal(t, "new@example.com", user.Email)
	assert.True(t, auth.VerifyPassword(user.PasswordHash, "password123"))
	users.AssertExpectations(t)
}

func TestUserService_Register_ValidationErrors(t *testing.T) {
	service, _, _ := newTestUserService()
	ctx := context.Background()

	testCases := []struct {
		name        string
		input       RegisterInput
		expectedErr string
	}{
		{
			name:        "Missing at sign",
			input:       RegisterInput{Email: "not-an-email", Password: "password123"},
			expectedErr: "enter a valid email address",
		},
		{
			name:        "Short password",
			input:       RegisterInput{Email: "new@example.com", Password: "short"},
			expectedErr: "password must be at least 8 characters",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			user, err := service.Register(ctx, tc.input)
			assert.Nil(t, user)
			assert.True(t, domain.IsValidation(err))
			assert.Contains(t, err.Error(), tc.expectedErr)
		})
	}
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	service, users, _ := newTestUserService()
	ctx := context.Background()

	hash, err := auth.HashPassword("correct-password", 4)
	assert.NoError(t, err)

	users.On("GetByEmail", ctx, "user@example.com").Return(&domain.User{ID: 1, Email: "user@example.com", PasswordHash: hash}, nil).Once()

	pair, err := service.Login(ctx, LoginInput{Email: "user@example.com", Password: "wrong"})

	assert.Nil(t, pair)
	assert.True(t, domain.IsValidation(err))
	assert.Contains(t, err.Error(), "unable to log in with provided credentials")
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	service, users, _ := newTestUserService()
	ctx := context.Background()

	users.On("GetByEmail", ctx, "ghost@example.com").Return(nil, domain.ErrNotFound).Once()

	pair, err := service.Login(ctx, LoginInput{Email: "ghost@example.com", Password: "whatever1"})

	assert.Nil(t, pair)
	assert.True(t, domain.IsValidation(err))
	assert.Contains(t, err.Error(), "unable to log in with provided credentials")
}

func TestUserService_Login_IssuesPair(t *testing.T) {
	service, users, tokens := newTestUserService()
	ctx := context.Background()

	hash, err := auth.HashPassword("correct-password", 4)
	assert.NoError(t, err)

	users.On("GetByEmail", ctx, "user@example.com").Return(&domain.User{ID: 1, Email: "user@example.com", PasswordHash: hash}, nil).Once()
	tokens.On("StoreRefresh", ctx, int64(1), mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil).Once()

	pair, err := service.Login(ctx, LoginInput{Email: "user@example.com", Password: "correct-password"})

	assert.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	claims, err := auth.ParseAccessToken("test-secret", pair.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	tokens.AssertExpectations(t)
}

func TestUserService_Refresh_UnknownToken(t *testing.T) {
	service, _, tokens := newTestUserService()
	ctx := context.Background()

	tokens.On("ValidateRefresh", ctx, auth.HashRefreshRaw("bogus")).Return(int64(0), domain.ErrNotFound).Once()

	pair, err := service.Refresh(ctx, "bogus")

	assert.Nil(t, pair)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestUserService_Refresh_RotatesToken(t *testing.T) {
	service, users, tokens := newTestUserService()
	ctx := context.Background()

	oldHash := auth.HashRefreshRaw("old-token")
	tokens.On("ValidateRefresh", ctx, oldHash).Return(int64(1), nil).Once()
	users.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1, Email: "user@example.com"}, nil).Once()
	tokens.On("Revoke", ctx, oldHash).Return(nil).Once()
	tokens.On("StoreRefresh", ctx, int64(1), mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil).Once()

	pair, err := service.Refresh(ctx, "old-token")

	assert.NoError(t, err)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, "old-token", pair.RefreshToken)
	tokens.AssertExpectations(t)
}

func TestUserService_CleanupExpiredTokens(t *testing.T) {
	service, _, tokens := newTestUserService()
	ctx := context.Background()

	tokens.On("DeleteExpired", ctx, mock.AnythingOfType("time.Time")).Return(int64(5), nil).Once()

	removed, err := service.CleanupExpiredTokens(ctx)

	assert.NoError(t, err)
	assert.Equal(t, int64(5), removed)
}
