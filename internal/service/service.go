package service

import (
	"context"
	"errors"
	"time"

	"scoutquest/internal/model"
	"scoutquest/internal/progression"
	"scoutquest/pkg/auth"

	"github.com/google/uuid"
)

var (
	ErrScoutNotFound         = errors.New("scout not found")
	ErrAchievementNotFound   = errors.New("achievement not found")
	ErrApplicationNotFound   = errors.New("application not found")
	ErrApplicationNotPending = errors.New("application has already been reviewed")
	ErrAlreadyApplied        = errors.New("achievement already applied for")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrEmailTaken            = errors.New("email is already registered")
)

type Service struct {
	*AuthService
	*ScoutService
	*AchievementService
	*ReviewService
	*AdminService
}

type AuthServiceI interface {
	SignUp(ctx context.Context, in SignUpInput) (*auth.Session, string, error)
	SignIn(ctx context.Context, in SignInInput) (*auth.Session, string, error)
	SignOut(ctx context.Context, session *auth.Session) error
}

type ScoutServiceI interface {
	GetScout(ctx context.Context, scoutID uuid.UUID) (*model.Scout, error)
	Profile(ctx context.Context, scoutID uuid.UUID) (*ScoutProfile, error)
	ScoutRewards(ctx context.Context, scoutID uuid.UUID) ([]progression.RewardStatus, error)
	CategoryCompletion(ctx context.Context, scoutID uuid.UUID) ([]progression.CategoryProgress, error)
	Leaderboard(ctx context.Context) ([]*LeaderboardEntry, error)
	Ranks() []model.Rank
	Rewards() []model.Reward
	Categories() []model.AchievementCategory
}

type AchievementServiceI interface {
	Board(ctx context.Context, scoutID uuid.UUID, filter progression.Filter) (*progression.Board, error)
	Apply(ctx context.Context, scoutID, achievementID uuid.UUID) (*model.ScoutAchievement, error)
}

type ReviewServiceI interface {
	ListPending(ctx context.Context) ([]*model.PendingApplication, error)
	Approve(ctx context.Context, applicationID, reviewerID uuid.UUID) (*model.ReviewOutcome, error)
	Reject(ctx context.Context, applicationID, reviewerID uuid.UUID) (*model.ReviewOutcome, error)
}

type AdminServiceI interface {
	ListScouts(ctx context.Context) ([]*model.Scout, error)
	CreateScout(ctx context.Context, in CreateScoutInput) (*model.Scout, error)
	UpdateScout(ctx context.Context, scoutID uuid.UUID, in UpdateScoutInput) (*model.Scout, error)
	DeleteScout(ctx context.Context, scoutID uuid.UUID) error

	ListAchievements(ctx context.Context) ([]*model.Achievement, error)
	CreateAchievement(ctx context.Context, in AchievementInput) (*model.Achievement, error)
	UpdateAchievement(ctx context.Context, achievementID uuid.UUID, in AchievementInput) (*model.Achievement, error)
	DeleteAchievement(ctx context.Context, achievementID uuid.UUID) error
}

type UserRepository interface {
	CreateUserWithScout(ctx context.Context, user *model.User, scout *model.Scout) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetScoutByUserID(ctx context.Context, userID uuid.UUID) (*model.Scout, error)
}

type ScoutRepository interface {
	GetScoutByID(ctx context.Context, scoutID uuid.UUID) (*model.Scout, error)
	GetTopScouts(ctx context.Context, limit int) ([]*model.Scout, error)
	ListAchievements(ctx context.Context) ([]*model.Achievement, error)
	ListScoutApplications(ctx context.Context, scoutID uuid.UUID) ([]model.ScoutAchievement, error)
}

type AchievementRepository interface {
	ListAchievements(ctx context.Context) ([]*model.Achievement, error)
	GetAchievement(ctx context.Context, achievementID uuid.UUID) (*model.Achievement, error)
	ListScoutApplications(ctx context.Context, scoutID uuid.UUID) ([]model.ScoutAchievement, error)
	CreateApplication(ctx context.Context, app *model.ScoutAchievement) error
}

type ReviewRepository interface {
	ListPendingApplications(ctx context.Context) ([]*model.PendingApplication, error)
	ApproveApplication(ctx context.Context, applicationID, reviewerID uuid.UUID, at time.Time) (*model.ReviewOutcome, error)
	RejectApplication(ctx context.Context, applicationID, reviewerID uuid.UUID) (*model.ReviewOutcome, error)
}

type AdminRepository interface {
	CreateUserWithScout(ctx context.Context, user *model.User, scout *model.Scout) error
	GetScoutByID(ctx context.Context, scoutID uuid.UUID) (*model.Scout, error)
	ListScouts(ctx context.Context) ([]*model.Scout, error)
	UpdateScout(ctx context.Context, scout *model.Scout) error
	DeleteScout(ctx context.Context, scoutID uuid.UUID) error

	ListAchievements(ctx context.Context) ([]*model.Achievement, error)
	CreateAchievement(ctx context.Context, achievement *model.Achievement) error
	UpdateAchievement(ctx context.Context, achievement *model.Achievement) error
	DeleteAchievement(ctx context.Context, achievementID uuid.UUID) error
}

type ReferenceRepository interface {
	ListRanks(ctx context.Context) ([]model.Rank, error)
	ListRewards(ctx context.Context) ([]model.Reward, error)
}

type SessionManager interface {
	Open(ctx context.Context, session *auth.Session) (string, error)
	Close(ctx context.Context, sessionID string) error
}

func NewService(
	authService *AuthService,
	scoutService *ScoutService,
	achievementService *AchievementService,
	reviewService *ReviewService,
	adminService *AdminService,
) *Service {
	return &Service{
		AuthService:        authService,
		ScoutService:       scoutService,
		AchievementService: achievementService,
		ReviewService:      reviewService,
		AdminService:       adminService,
	}
}
