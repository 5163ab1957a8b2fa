package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"scoutquest/internal/events"
	"scoutquest/internal/model"
	"scoutquest/internal/repository"
	"scoutquest/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService struct {
	repo      ReviewRepository
	publisher events.Publisher
	now       func() time.Time
}

func NewReviewService(repo ReviewRepository, publisher events.Publisher) *ReviewService {
	return &ReviewService{
		repo:      repo,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *ReviewService) ListPending(ctx context.Context) ([]*model.PendingApplication, error) {
	apps, err := s.repo.ListPendingApplications(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending applications: %w", err)
	}
	return apps, nil
}

// Approve credits the achievement's points to the scout. Status and points
// change in one transaction.
func (s *ReviewService) Approve(ctx context.Context, applicationID, reviewerID uuid.UUID) (*model.ReviewOutcome, error) {
	outcome, err := s.repo.ApproveApplication(ctx, applicationID, reviewerID, s.now().UTC())
	if err != nil {
		return nil, reviewError(err)
	}

	logger.Logger().Info("Application approved",
		zap.String("application_id", applicationID.String()),
		zap.String("scout_id", outcome.Application.ScoutID.String()),
		zap.Int("points_awarded", outcome.PointsAwarded),
		zap.Int("scout_points", outcome.ScoutPoints))

	s.notify(ctx, events.ApplicationApproved, outcome)
	return outcome, nil
}

func (s *ReviewService) Reject(ctx context.Context, applicationID, reviewerID uuid.UUID) (*model.ReviewOutcome, error) {
	outcome, err := s.repo.RejectApplication(ctx, applicationID, reviewerID)
	if err != nil {
		return nil, reviewError(err)
	}

	logger.Logger().Info("Application rejected",
		zap.String("application_id", applicationID.String()),
		zap.String("scout_id", outcome.Application.ScoutID.String()))

	s.notify(ctx, events.ApplicationRejected, outcome)
	return outcome, nil
}

func (s *ReviewService) notify(ctx context.Context, eventType string, outcome *model.ReviewOutcome) {
	payload := map[string]any{
		"application_id": outcome.Application.ID.String(),
		"achievement_id": outcome.Application.AchievementID.String(),
		"status":         string(outcome.Application.Status),
	}
	if eventType == events.ApplicationApproved {
		payload["points_awarded"] = outcome.PointsAwarded
		payload["scout_points"] = outcome.ScoutPoints
	}

	publish(ctx, s.publisher, events.Event{
		Type:    eventType,
		ScoutID: outcome.Application.ScoutID,
		At:      s.now().UTC(),
		Payload: payload,
	})
}

func reviewError(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return ErrApplicationNotFound
	case errors.Is(err, repository.ErrNotPending):
		return ErrApplicationNotPending
	}
	return fmt.Errorf("failed to review application: %w", err)
}
