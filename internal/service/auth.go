package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"scoutquest/internal/model"
	"scoutquest/internal/repository"
	"scoutquest/pkg/auth"
	"scoutquest/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService struct {
	repo     UserRepository
	sessions SessionManager
	now      func() time.Time
}

func NewAuthService(repo UserRepository, sessions SessionManager) *AuthService {
	return &AuthService{
		repo:     repo,
		sessions: sessions,
		now:      time.Now,
	}
}

// SignUp registers a login with a fresh scout profile and signs it in.
func (s *AuthService) SignUp(ctx context.Context, in SignUpInput) (*auth.Session, string, error) {
	in.Email = normalizeEmail(in.Email)
	in.Name = strings.TrimSpace(in.Name)
	if err := validateInput(in); err != nil {
		return nil, "", err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, "", err
	}

	now := s.now().UTC()
	user := &model.User{
		ID:           uuid.New(),
		Email:        in.Email,
		PasswordHash: hash,
		CreatedAt:    now,
	}
	scout := &model.Scout{
		ID:        uuid.New(),
		UserID:    user.ID,
		Name:      in.Name,
		CreatedAt: now,
	}

	if err = s.repo.CreateUserWithScout(ctx, user, scout); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	logger.Logger().Info("Scout signed up",
		zap.String("scout_id", scout.ID.String()),
		zap.String("email", user.Email))

	return s.open(ctx, user, scout)
}

func (s *AuthService) SignIn(ctx context.Context, in SignInInput) (*auth.Session, string, error) {
	in.Email = normalizeEmail(in.Email)
	if err := validateInput(in); err != nil {
		return nil, "", err
	}

	user, err := s.repo.GetUserByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to get user by email: %w", err)
	}

	if err = auth.CheckPassword(user.PasswordHash, in.Password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	scout, err := s.repo.GetScoutByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrScoutNotFound
		}
		return nil, "", fmt.Errorf("failed to get scout by user ID: %w", err)
	}

	return s.open(ctx, user, scout)
}

func (s *AuthService) SignOut(ctx context.Context, session *auth.Session) error {
	if session == nil {
		return nil
	}
	if err := s.sessions.Close(ctx, session.ID); err != nil {
		return fmt.Errorf("failed to close session: %w", err)
	}
	return nil
}

func (s *AuthService) open(ctx context.Context, user *model.User, scout *model.Scout) (*auth.Session, string, error) {
	session := &auth.Session{
		UserID:  user.ID,
		ScoutID: scout.ID,
		Email:   user.Email,
		Name:    scout.Name,
		IsAdmin: scout.IsAdmin,
	}

	token, err := s.sessions.Open(ctx, session)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open session: %w", err)
	}

	return session, token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
