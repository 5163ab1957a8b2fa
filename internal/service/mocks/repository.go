package mocks

import (
	"context"
	"time"

	"scoutquest/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockRepository satisfies every repository interface the services depend on.
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateUserWithScout(ctx context.Context, user *model.User, scout *model.Scout) error {
	args := m.Called(ctx, user, scout)
	return args.Error(0)
}

func (m *MockRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockRepository) GetScoutByUserID(ctx context.Context, userID uuid.UUID) (*model.Scout, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Scout), args.Error(1)
}

func (m *MockRepository) GetScoutByID(ctx context.Context, scoutID uuid.UUID) (*model.Scout, error) {
	args := m.Called(ctx, scoutID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Scout), args.Error(1)
}

func (m *MockRepository) GetTopScouts(ctx context.Context, limit int) ([]*model.Scout, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Scout), args.Error(1)
}

func (m *MockRepository) ListScouts(ctx context.Context) ([]*model.Scout, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Scout), args.Error(1)
}

func (m *MockRepository) UpdateScout(ctx context.Context, scout *model.Scout) error {
	args := m.Called(ctx, scout)
	return args.Error(0)
}

func (m *MockRepository) DeleteScout(ctx context.Context, scoutID uuid.UUID) error {
	args := m.Called(ctx, scoutID)
	return args.Error(0)
}

func (m *MockRepository) ListAchievements(ctx context.Context) ([]*model.Achievement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Achievement), args.Error(1)
}

func (m *MockRepository) GetAchievement(ctx context.Context, achievementID uuid.UUID) (*model.Achievement, error) {
	args := m.Called(ctx, achievementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Achievement), args.Error(1)
}

func (m *MockRepository) CreateAchievement(ctx context.Context, achievement *model.Achievement) error {
	args := m.Called(ctx, achievement)
	return args.Error(0)
}

func (m *MockRepository) UpdateAchievement(ctx context.Context, achievement *model.Achievement) error {
	args := m.Called(ctx, achievement)
	return args.Error(0)
}

func (m *MockRepository) DeleteAchievement(ctx context.Context, achievementID uuid.UUID) error {
	args := m.Called(ctx, achievementID)
	return args.Error(0)
}

func (m *MockRepository) ListScoutApplications(ctx context.Context, scoutID uuid.UUID) ([]model.ScoutAchievement, error) {
	args := m.Called(ctx, scoutID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ScoutAchievement), args.Error(1)
}

func (m *MockRepository) CreateApplication(ctx context.Context, app *model.ScoutAchievement) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockRepository) ListPendingApplications(ctx context.Context) ([]*model.PendingApplication, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.PendingApplication), args.Error(1)
}

func (m *MockRepository) ApproveApplication(ctx context.Context, applicationID, reviewerID uuid.UUID, at time.Time) (*model.ReviewOutcome, error) {
	args := m.Called(ctx, applicationID, reviewerID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ReviewOutcome), args.Error(1)
}

func (m *MockRepository) RejectApplication(ctx context.Context, applicationID, reviewerID uuid.UUID) (*model.ReviewOutcome, error) {
	args := m.Called(ctx, applicationID, reviewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ReviewOutcome), args.Error(1)
}

func (m *MockRepository) ListRanks(ctx context.Context) ([]model.Rank, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Rank), args.Error(1)
}

func (m *MockRepository) ListRewards(ctx context.Context) ([]model.Reward, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Reward), args.Error(1)
}
