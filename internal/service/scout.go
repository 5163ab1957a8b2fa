package service

import (
	"context"
	"errors"
	"fmt"

	"scoutquest/internal/model"
	"scoutquest/internal/progression"
	"scoutquest/internal/repository"
	"scoutquest/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const LeaderboardSize = 100

// Progression is the rank ladder, reward track and category list the
// service evaluates scouts against.
type Progression struct {
	Ladder     *progression.Ladder
	Rewards    *progression.RewardTrack
	Categories []model.AchievementCategory
}

func DefaultProgression() *Progression {
	ladder, _ := progression.NewLadder(progression.DefaultRanks)
	return &Progression{
		Ladder:     ladder,
		Rewards:    progression.NewRewardTrack(progression.DefaultRewards),
		Categories: progression.Categories,
	}
}

// LoadProgression reads ranks and rewards from storage. Bundled defaults
// replace any list that is empty or cannot be read.
func LoadProgression(ctx context.Context, repo ReferenceRepository) *Progression {
	log := logger.Logger()
	p := DefaultProgression()

	ranks, err := repo.ListRanks(ctx)
	switch {
	case err != nil:
		log.Warn("Failed to load ranks, using defaults", zap.Error(err))
	case len(ranks) > 0:
		if ladder, err := progression.NewLadder(ranks); err == nil {
			p.Ladder = ladder
		}
	}

	rewards, err := repo.ListRewards(ctx)
	switch {
	case err != nil:
		log.Warn("Failed to load rewards, using defaults", zap.Error(err))
	case len(rewards) > 0:
		p.Rewards = progression.NewRewardTrack(rewards)
	}

	return p
}

type ScoutProfile struct {
	Scout           *model.Scout
	Rank            progression.RankStatus
	NextReward      *model.Reward
	RewardProgress  int
	UnlockedRewards int
	TotalRewards    int
}

type LeaderboardEntry struct {
	Position int
	ScoutID  uuid.UUID
	Name     string
	Points   int
	Rank     model.Rank
}

type ScoutService struct {
	repo        ScoutRepository
	progression *Progression
}

func NewScoutService(repo ScoutRepository, p *Progression) *ScoutService {
	if p == nil {
		p = DefaultProgression()
	}
	return &ScoutService{
		repo:        repo,
		progression: p,
	}
}

func (s *ScoutService) GetScout(ctx context.Context, scoutID uuid.UUID) (*model.Scout, error) {
	scout, err := s.repo.GetScoutByID(ctx, scoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrScoutNotFound
		}
		return nil, fmt.Errorf("failed to get scout by ID: %w", err)
	}
	return scout, nil
}

func (s *ScoutService) Profile(ctx context.Context, scoutID uuid.UUID) (*ScoutProfile, error) {
	scout, err := s.GetScout(ctx, scoutID)
	if err != nil {
		return nil, err
	}

	rewards := s.progression.Rewards
	profile := &ScoutProfile{
		Scout:           scout,
		Rank:            s.progression.Ladder.Status(scout.Points),
		RewardProgress:  100,
		UnlockedRewards: rewards.UnlockedCount(scout.Points),
		TotalRewards:    len(rewards.Rewards()),
	}

	if next, ok := rewards.NextReward(scout.Points); ok {
		profile.NextReward = &next
		profile.RewardProgress = rewards.Progress(scout.Points, next)
	}

	return profile, nil
}

func (s *ScoutService) ScoutRewards(ctx context.Context, scoutID uuid.UUID) ([]progression.RewardStatus, error) {
	scout, err := s.GetScout(ctx, scoutID)
	if err != nil {
		return nil, err
	}
	return s.progression.Rewards.WithUnlocked(scout.Points), nil
}

func (s *ScoutService) CategoryCompletion(ctx context.Context, scoutID uuid.UUID) ([]progression.CategoryProgress, error) {
	catalog, err := s.repo.ListAchievements(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list achievements: %w", err)
	}

	applications, err := s.repo.ListScoutApplications(ctx, scoutID)
	if err != nil {
		return nil, fmt.Errorf("failed to list scout applications: %w", err)
	}

	all := derefAchievements(catalog)
	board := progression.Partition(all, applications)

	return progression.CategoryCompletion(s.progression.Categories, all, board.Completed), nil
}

func (s *ScoutService) Leaderboard(ctx context.Context) ([]*LeaderboardEntry, error) {
	scouts, err := s.repo.GetTopScouts(ctx, LeaderboardSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get top scouts: %w", err)
	}

	entries := make([]*LeaderboardEntry, len(scouts))
	for i, scout := range scouts {
		entries[i] = &LeaderboardEntry{
			Position: i + 1,
			ScoutID:  scout.ID,
			Name:     scout.Name,
			Points:   scout.Points,
			Rank:     s.progression.Ladder.CurrentRank(scout.Points),
		}
	}
	return entries, nil
}

func (s *ScoutService) Ranks() []model.Rank {
	return s.progression.Ladder.Ranks()
}

func (s *ScoutService) Rewards() []model.Reward {
	return s.progression.Rewards.Rewards()
}

func (s *ScoutService) Categories() []model.AchievementCategory {
	return s.progression.Categories
}

func derefAchievements(list []*model.Achievement) []model.Achievement {
	out := make([]model.Achievement, 0, len(list))
	for _, a := range list {
		if a != nil {
			out = append(out, *a)
		}
	}
	return out
}
