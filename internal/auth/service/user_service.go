package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pablozoani/gl-exercise/internal/auth/domain"
	"github.com/pablozoani/gl-exercise/internal/auth/dto"
	autherror "github.com/pablozoani/gl-exercise/internal/errors"
)

// UserService orchestrates sign-up and login. Duplicate-email detection is
// left to the storage layer's unique constraint so concurrent sign-ups with
// the same email cannot both succeed.
type UserService struct {
	repo             domain.UserRepository
	tokenService     TokenGenerator
	loginUpdateDelay time.Duration
}

func NewUserService(repo domain.UserRepository, tokenService TokenGenerator, loginUpdateDelay time.Duration) *UserService {
	return &UserService{
		repo:             repo,
		tokenService:     tokenService,
		loginUpdateDelay: loginUpdateDelay,
	}
}

// SignUp hashes the password, persists the user with its phones in a single
// write, and issues a token for the stored record. No token is issued when
// the write fails.
func (s *UserService) SignUp(ctx context.Context, input dto.SignUpRequest) (*dto.SignUpResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        input.Email,
		PasswordHash: string(hashed),
		Name:         input.Username,
		CreatedAt:    now,
		LastLogin:    now,
		IsActive:     true,
	}

	for _, p := range input.Phones {
		user.Phones = append(user.Phones, domain.Phone{
			ID:          uuid.NewString(),
			UserID:      user.ID,
			Number:      *p.Number,
			CityCode:    *p.CityCode,
			CountryCode: *p.CountryCode,
		})
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokenService.Issue(user)
	if err != nil {
		return nil, err
	}

	slog.Info("signed up user", "user_id", user.ID, "email", user.Email)

	return &dto.SignUpResponse{
		ID:        user.ID,
		Created:   dto.FormatTimestamp(user.CreatedAt),
		LastLogin: dto.FormatTimestamp(user.LastLogin),
		Token:     token,
		IsActive:  user.IsActive,
	}, nil
}

// Login re-authenticates the already-verified subject email: it loads the
// user with phones, issues a fresh token, and advances last-login. A missing
// user means the token references a since-deleted account.
func (s *UserService) Login(ctx context.Context, email string) (*dto.LoginResponse, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: %s", autherror.ErrUserNotFound, email)
	}

	token, err := s.tokenService.Issue(user)
	if err != nil {
		return nil, err
	}

	if s.loginUpdateDelay > 0 {
		select {
		case <-time.After(s.loginUpdateDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	now := time.Now()
	if err := s.repo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, err
	}
	user.LastLogin = now

	phones := make([]dto.PhoneOutput, 0, len(user.Phones))
	for _, p := range user.Phones {
		phones = append(phones, dto.PhoneOutput{
			Number:      p.Number,
			CityCode:    p.CityCode,
			CountryCode: p.CountryCode,
		})
	}

	slog.Info("logged in user", "user_id", user.ID, "email", user.Email)

	return &dto.LoginResponse{
		ID:        user.ID,
		Created:   dto.FormatTimestamp(user.CreatedAt),
		LastLogin: dto.FormatTimestamp(user.LastLogin),
		Token:     token,
		IsActive:  user.IsActive,
		Name:      user.Name,
		Email:     user.Email,
		Password:  "",
		Phones:    phones,
	}, nil
}
