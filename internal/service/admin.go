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

type AdminService struct {
	repo AdminRepository
	now  func() time.Time
}

func NewAdminService(repo AdminRepository) *AdminService {
	return &AdminService{
		repo: repo,
		now:  time.Now,
	}
}

func (s *AdminService) ListScouts(ctx context.Context) ([]*model.Scout, error) {
	scouts, err := s.repo.ListScouts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list scouts: %w", err)
	}
	return scouts, nil
}

func (s *AdminService) CreateScout(ctx context.Context, in CreateScoutInput) (*model.Scout, error) {
	in.Email = normalizeEmail(in.Email)
	in.Name = strings.TrimSpace(in.Name)
	if err := validateInput(in); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
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
		Points:    in.Points,
		IsAdmin:   in.IsAdmin,
		CreatedAt: now,
	}

	if err = s.repo.CreateUserWithScout(ctx, user, scout); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create scout: %w", err)
	}

	logger.Logger().Info("Scout created by admin", zap.String("scout_id", scout.ID.String()))
	return scout, nil
}

func (s *AdminService) UpdateScout(ctx context.Context, scoutID uuid.UUID, in UpdateScoutInput) (*model.Scout, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateInput(in); err != nil {
		return nil, err
	}

	scout, err := s.repo.GetScoutByID(ctx, scoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrScoutNotFound
		}
		return nil, fmt.Errorf("failed to get scout by ID: %w", err)
	}

	scout.Name = in.Name
	scout.Points = in.Points
	scout.IsAdmin = in.IsAdmin

	if err = s.repo.UpdateScout(ctx, scout); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrScoutNotFound
		}
		return nil, fmt.Errorf("failed to update scout: %w", err)
	}

	return scout, nil
}

func (s *AdminService) DeleteScout(ctx context.Context, scoutID uuid.UUID) error {
	if err := s.repo.DeleteScout(ctx, scoutID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrScoutNotFound
		}
		return fmt.Errorf("failed to delete scout: %w", err)
	}

	logger.Logger().Info("Scout deleted", zap.String("scout_id", scoutID.String()))
	return nil
}

func (s *AdminService) ListAchievements(ctx context.Context) ([]*model.Achievement, error) {
	achievements, err := s.repo.ListAchievements(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list achievements: %w", err)
	}
	return achievements, nil
}

func (s *AdminService) CreateAchievement(ctx context.Context, in AchievementInput) (*model.Achievement, error) {
	achievement, err := buildAchievement(in)
	if err != nil {
		return nil, err
	}
	achievement.ID = uuid.New()
	achievement.CreatedAt = s.now().UTC()

	if err = s.repo.CreateAchievement(ctx, achievement); err != nil {
		return nil, fmt.Errorf("failed to create achievement: %w", err)
	}

	return achievement, nil
}

func (s *AdminService) UpdateAchievement(ctx context.Context, achievementID uuid.UUID, in AchievementInput) (*model.Achievement, error) {
	achievement, err := buildAchievement(in)
	if err != nil {
		return nil, err
	}
	achievement.ID = achievementID

	if err = s.repo.UpdateAchievement(ctx, achievement); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAchievementNotFound
		}
		return nil, fmt.Errorf("failed to update achievement: %w", err)
	}

	return achievement, nil
}

func (s *AdminService) DeleteAchievement(ctx context.Context, achievementID uuid.UUID) error {
	if err := s.repo.DeleteAchievement(ctx, achievementID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAchievementNotFound
		}
		return fmt.Errorf("failed to delete achievement: %w", err)
	}
	return nil
}

func buildAchievement(in AchievementInput) (*model.Achievement, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	in.Level = strings.ToLower(strings.TrimSpace(in.Level))

	requirements := make([]string, 0, len(in.Requirements))
	for _, r := range in.Requirements {
		if r = strings.TrimSpace(r); r != "" {
			requirements = append(requirements, r)
		}
	}
	in.Requirements = requirements

	if err := validateInput(in); err != nil {
		return nil, err
	}

	return &model.Achievement{
		Name:         in.Name,
		Description:  strings.TrimSpace(in.Description),
		Points:       in.Points,
		CategoryID:   in.Category,
		Level:        model.AchievementLevel(in.Level),
		Requirements: in.Requirements,
		BadgeImage:   in.BadgeImage,
	}, nil
}
