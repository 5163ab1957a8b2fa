package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"scoutquest/internal/events"
	"scoutquest/internal/model"
	"scoutquest/internal/progression"
	"scoutquest/internal/repository"
	"scoutquest/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AchievementService struct {
	repo      AchievementRepository
	publisher events.Publisher
	now       func() time.Time
}

func NewAchievementService(repo AchievementRepository, publisher events.Publisher) *AchievementService {
	return &AchievementService{
		repo:      repo,
		publisher: publisher,
		now:       time.Now,
	}
}

// Board partitions the catalog by the scout's applications and narrows every
// partition with the filter.
func (s *AchievementService) Board(ctx context.Context, scoutID uuid.UUID, filter progression.Filter) (*progression.Board, error) {
	catalog, err := s.repo.ListAchievements(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list achievements: %w", err)
	}

	applications, err := s.repo.ListScoutApplications(ctx, scoutID)
	if err != nil {
		return nil, fmt.Errorf("failed to list scout applications: %w", err)
	}

	board := progression.Partition(derefAchievements(catalog), applications).Filter(filter)
	return &board, nil
}

func (s *AchievementService) Apply(ctx context.Context, scoutID, achievementID uuid.UUID) (*model.ScoutAchievement, error) {
	achievement, err := s.repo.GetAchievement(ctx, achievementID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAchievementNotFound
		}
		return nil, fmt.Errorf("failed to get achievement: %w", err)
	}

	applications, err := s.repo.ListScoutApplications(ctx, scoutID)
	if err != nil {
		return nil, fmt.Errorf("failed to list scout applications: %w", err)
	}
	for _, app := range applications {
		if app.AchievementID == achievementID {
			return nil, ErrAlreadyApplied
		}
	}

	app := &model.ScoutAchievement{
		ID:            uuid.New(),
		ScoutID:       scoutID,
		AchievementID: achievementID,
		Status:        model.StatusPending,
		AppliedAt:     s.now().UTC(),
	}

	if err = s.repo.CreateApplication(ctx, app); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, ErrAlreadyApplied
		}
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	logger.Logger().Info("Application submitted",
		zap.String("application_id", app.ID.String()),
		zap.String("scout_id", scoutID.String()),
		zap.String("achievement", achievement.Name))

	publish(ctx, s.publisher, events.Event{
		Type:    events.ApplicationSubmitted,
		ScoutID: scoutID,
		At:      app.AppliedAt,
		Payload: map[string]any{
			"application_id":   app.ID.String(),
			"achievement_id":   achievement.ID.String(),
			"achievement_name": achievement.Name,
			"points":           achievement.Points,
		},
	})

	return app, nil
}

func publish(ctx context.Context, p events.Publisher, event events.Event) {
	if p != nil {
		p.Publish(ctx, event)
	}
}
