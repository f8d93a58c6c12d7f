package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/avdku/airport-service/internal/auth"
	"github.com/avdku/airport-service/internal/domain"
	"github.com/avdku/airport-service/internal/repository"
)

type UserUseCase interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, input LoginInput) (*TokenPair, error)
	// Refresh rotates the refresh token and issues a fresh pair.
	Refresh(ctx context.Context, refreshRaw string) (*TokenPair, error)
	Me(ctx context.Context, principal domain.Principal) (*domain.User, error)
	// CleanupExpiredTokens drops expired refresh tokens; run by the worker.
	CleanupExpiredTokens(ctx context.Context) (int64, error)
}

type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenPair struct {
	AccessToken      string    `json:"access_token"`
	AccessExpiresAt  time.Time `json:"access_expires_at"`
	RefreshToken     string    `json:"refresh_token"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
}

type UserService struct {
	users      repository.UserRepository
	tokens     repository.TokenRepository
	secret     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	bcryptCost int
}

func NewUserService(
	users repository.UserRepository,
	tokens repository.TokenRepository,
	secret string,
	accessTTL, refreshTTL time.Duration,
	bcryptCost int,
) *UserService {
	return &UserService{
		users:      users,
		tokens:     tokens,
		secret:     secret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		bcryptCost: bcryptCost,
	}
}

func (s *UserService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if !strings.Contains(input.Email, "@") {
		return nil, domain.NewValidationError("email", "enter a valid email address")
	}
	if len(input.Password) < 8 {
		return nil, domain.NewValidationError("password", "password must be at least 8 characters")
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	user := &domain.User{Email: input.Email, PasswordHash: hash}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Login(ctx context.Context, input LoginInput) (*TokenPair, error) {
	user, err := s.users.GetByEmail(ctx, input.Email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NewValidationError("email", "unable to log in with provided credentials")
	}
	if err != nil {
		return nil, err
	}
	if !auth.VerifyPassword(user.PasswordHash, input.Password) {
		return nil, domain.NewValidationError("email", "unable to log in with provided credentials")
	}
	return s.issuePair(ctx, user)
}

func (s *UserService) Refresh(ctx context.Context, refreshRaw string) (*TokenPair, error) {
	hash := auth.HashRefreshRaw(refreshRaw)
	userID, err := s.tokens.ValidateRefresh(ctx, hash)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, auth.ErrInvalidToken
	}
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Rotation: a refresh token is single-use.
	if err := s.tokens.Revoke(ctx, hash); err != nil {
		return nil, err
	}
	return s.issuePair(ctx, user)
}

func (s *UserService) Me(ctx context.Context, principal domain.Principal) (*domain.User, error) {
	return s.users.GetByID(ctx, principal.UserID)
}

func (s *UserService) CleanupExpiredTokens(ctx context.Context) (int64, error) {
	return s.tokens.DeleteExpired(ctx, time.Now())
}

func (s *UserService) issuePair(ctx context.Context, user *domain.User) (*TokenPair, error) {
	access, err := auth.NewAccessToken(s.secret, auth.Claims{
		UserID:  user.ID,
		Email:   user.Email,
		IsStaff: user.IsStaff,
	}, s.accessTTL)
	if err != nil {
		return nil, err
	}

	refresh, err := auth.NewRefreshToken(s.refreshTTL)
	if err != nil {
		return nil, err
	}
	if err := s.tokens.StoreRefresh(ctx, user.ID, auth.HashRefreshRaw(refresh.Raw), refresh.Exp); err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:      access.Token,
		AccessExpiresAt:  access.Exp,
		RefreshToken:     refresh.Raw,
		RefreshExpiresAt: refresh.Exp,
	}, nil
}

var _ UserUseCase = (*UserService)(nil)
