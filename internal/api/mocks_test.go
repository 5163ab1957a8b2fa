package api

import (
	"context"

	"scoutquest/internal/model"
	"scoutquest/internal/progression"
	"scoutquest/internal/service"
	"scoutquest/pkg/auth"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) SignUp(ctx context.Context, in service.SignUpInput) (*auth.Session, string, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*auth.Session), args.String(1), args.Error(2)
}

func (m *mockAuthService) SignIn(ctx context.Context, in service.SignInInput) (*auth.Session, string, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*auth.Session), args.String(1), args.Error(2)
}

func (m *mockAuthService) SignOut(ctx context.Context, session *auth.Session) error {
	return m.Called(ctx, session).Error(0)
}

type mockAchievementService struct {
	mock.Mock
}

func (m *mockAchievementService) Board(ctx context.Context, scoutID uuid.UUID, filter progression.Filter) (*progression.Board, error) {
	args := m.Called(ctx, scoutID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*progression.Board), args.Error(1)
}

func (m *mockAchievementService) Apply(ctx context.Context, scoutID, achievementID uuid.UUID) (*model.ScoutAchievement, error) {
	args := m.Called(ctx, scoutID, achievementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ScoutAchievement), args.Error(1)
}

type mockReviewService struct {
	mock.Mock
}

func (m *mockReviewService) ListPending(ctx context.Context) ([]*model.PendingApplication, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.PendingApplication), args.Error(1)
}

func (m *mockReviewService) Approve(ctx context.Context, applicationID, reviewerID uuid.UUID) (*model.ReviewOutcome, error) {
	args := m.Called(ctx, applicationID, reviewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ReviewOutcome), args.Error(1)
}

func (m *mockReviewService) Reject(ctx context.Context, applicationID, reviewerID uuid.UUID) (*model.ReviewOutcome, error) {
	args := m.Called(ctx, applicationID, reviewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ReviewOutcome), args.Error(1)
}

type mockAdminService struct {
	mock.Mock
}

func (m *mockAdminService) ListScouts(ctx context.Context) ([]*model.Scout, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Scout), args.Error(1)
}

func (m *mockAdminService) CreateScout(ctx context.Context, in service.CreateScoutInput) (*model.Scout, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Scout), args.Error(1)
}

func (m *mockAdminService) UpdateScout(ctx context.Context, scoutID uuid.UUID, in service.UpdateScoutInput) (*model.Scout, error) {
	args := m.Called(ctx, scoutID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Scout), args.Error(1)
}

func (m *mockAdminService) DeleteScout(ctx context.Context, scoutID uuid.UUID) error {
	return m.Called(ctx, scoutID).Error(0)
}

func (m *mockAdminService) ListAchievements(ctx context.Context) ([]*model.Achievement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Achievement), args.Error(1)
}

func (m *mockAdminService) CreateAchievement(ctx context.Context, in service.AchievementInput) (*model.Achievement, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Achievement), args.Error(1)
}

func (m *mockAdminService) UpdateAchievement(ctx context.Context, achievementID uuid.UUID, in service.AchievementInput) (*model.Achievement, error) {
	args := m.Called(ctx, achievementID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Achievement), args.Error(1)
}

func (m *mockAdminService) DeleteAchievement(ctx context.Context, achievementID uuid.UUID) error {
	return m.Called(ctx, achievementID).Error(0)
}
