package service

import (
	"context"
	"testing"
	"time"

	"scoutquest/internal/events"
	"scoutquest/internal/model"
	"scoutquest/internal/repository"
	"scoutquest/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
}

func TestReviewService_Approve(t *testing.T) {
	applicationID := uuid.New()
	reviewerID := uuid.New()
	scoutID := uuid.New()
	approvedAt := fixedClock()

	tests := []struct {
		name          string
		mockSetup     func(repo *mocks.MockRepository)
		expectedError error
		expectedTypes []string
		check         func(*testing.T, *model.ReviewOutcome)
	}{
		{
			name: "Pending application is approved and points credited",
			mockSetup: func(repo *mocks.MockRepository) {
				repo.On("ApproveApplication", mock.Anything, applicationID, reviewerID, approvedAt).
					Return(&model.ReviewOutcome{
						Application: model.ScoutAchievement{
							ID:         applicationID,
							ScoutID:    scoutID,
							Status:     model.StatusApproved,
							ApprovedAt: &approvedAt,
							ReviewedBy: &reviewerID,
						},
						PointsAwarded: 25,
						ScoutPoints:   125,
					}, nil)
			},
			expectedTypes: []string{events.ApplicationApproved},
			check: func(t *testing.T, outcome *model.ReviewOutcome) {
				assert.Equal(t, model.StatusApproved, outcome.Application.Status)
				require.NotNil(t, outcome.Application.ApprovedAt)
				assert.Equal(t, approvedAt, *outcome.Application.ApprovedAt)
				assert.Equal(t, 25, outcome.PointsAwarded)
				assert.Equal(t, 125, outcome.ScoutPoints)
			},
		},
		{
			name: "Unknown application",
			mockSetup: func(repo *mocks.MockRepository) {
				repo.On("ApproveApplication", mock.Anything, applicationID, reviewerID, approvedAt).
					Return(nil, repository.ErrNotFound)
			},
			expectedError: ErrApplicationNotFound,
		},
		{
			name: "Already reviewed application",
			mockSetup: func(repo *mocks.MockRepository) {
				repo.On("ApproveApplication", mock.Anything, applicationID, reviewerID, approvedAt).
					Return(nil, repository.ErrNotPending)
			},
			expectedError: ErrApplicationNotPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mocks.MockRepository{}
			publisher := &mocks.RecordingPublisher{}
			tt.mockSetup(repo)

			svc := NewReviewService(repo, publisher)
			svc.now = fixedClock

			outcome, err := svc.Approve(context.Background(), applicationID, reviewerID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, outcome)
				assert.Empty(t, publisher.Events)
			} else {
				require.NoError(t, err)
				tt.check(t, outcome)
				assert.Equal(t, tt.expectedTypes, publisher.Types())
				assert.Equal(t, scoutID, publisher.Events[0].ScoutID)
				assert.Equal(t, 25, publisher.Events[0].Payload["points_awarded"])
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestReviewService_Reject(t *testing.T) {
	applicationID := uuid.New()
	reviewerID := uuid.New()
	scoutID := uuid.New()

	t.Run("Pending application is rejected without points", func(t *testing.T) {
		repo := &mocks.MockRepository{}
		publisher := &mocks.RecordingPublisher{}
		repo.On("RejectApplication", mock.Anything, applicationID, reviewerID).
			Return(&model.ReviewOutcome{
				Application: model.ScoutAchievement{
					ID:      applicationID,
					ScoutID: scoutID,
					Status:  model.StatusRejected,
				},
			}, nil)

		svc := NewReviewService(repo, publisher)
		outcome, err := svc.Reject(context.Background(), applicationID, reviewerID)

		require.NoError(t, err)
		assert.Equal(t, model.StatusRejected, outcome.Application.Status)
		assert.Nil(t, outcome.Application.ApprovedAt)
		assert.Zero(t, outcome.PointsAwarded)
		assert.Equal(t, []string{events.ApplicationRejected}, publisher.Types())
		assert.NotContains(t, publisher.Events[0].Payload, "points_awarded")
		repo.AssertExpectations(t)
	})

	t.Run("Already reviewed application", func(t *testing.T) {
		repo := &mocks.MockRepository{}
		repo.On("RejectApplication", mock.Anything, applicationID, reviewerID).
			Return(nil, repository.ErrNotPending)

		svc := NewReviewService(repo, nil)
		_, err := svc.Reject(context.Background(), applicationID, reviewerID)

		assert.ErrorIs(t, err, ErrApplicationNotPending)
	})
}

func TestReviewService_ListPending(t *testing.T) {
	repo := &mocks.MockRepository{}
	pending := []*model.PendingApplication{
		{ScoutName: "Alex", AchievementName: "Fire Building", AchievementPoints: 25},
	}
	repo.On("ListPendingApplications", mock.Anything).Return(pending, nil)

	svc := NewReviewService(repo, nil)
	got, err := svc.ListPending(context.Background())

	require.NoError(t, err)
	assert.Equal(t, pending, got)
}
