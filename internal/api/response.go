package api

import (
	"time"

	"scoutquest/internal/model"
	"scoutquest/internal/progression"
	"scoutquest/internal/service"

	"github.com/google/uuid"
)

type RankResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	MinPoints   int    `json:"min_points"`
	Image       string `json:"image,omitempty"`
	Description string `json:"description"`
}

type RewardResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	PointsRequired int    `json:"points_required"`
	Image          string `json:"image,omitempty"`
}

type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

type AchievementResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Points       int       `json:"points"`
	Category     string    `json:"category"`
	Level        string    `json:"level"`
	Requirements []string  `json:"requirements"`
	BadgeImage   string    `json:"badge_image,omitempty"`
}

type ScoutResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Points    int       `json:"points"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

type ApplicationResponse struct {
	ID            uuid.UUID  `json:"id"`
	ScoutID       uuid.UUID  `json:"scout_id"`
	AchievementID uuid.UUID  `json:"achievement_id"`
	Status        string     `json:"status"`
	AppliedAt     time.Time  `json:"applied_at"`
	ApprovedAt    *time.Time `json:"approved_at,omitempty"`
	ReviewedBy    *uuid.UUID `json:"reviewed_by,omitempty"`
}

func toRankResponse(r model.Rank) RankResponse {
	return RankResponse{
		ID:          r.ID,
		Name:        r.Name,
		Color:       r.Color,
		MinPoints:   r.MinPoints,
		Image:       r.Image,
		Description: r.Description,
	}
}

func toRewardResponse(r model.Reward) RewardResponse {
	return RewardResponse{
		ID:             r.ID,
		Name:           r.Name,
		Description:    r.Description,
		PointsRequired: r.PointsRequired,
		Image:          r.Image,
	}
}

func toCategoryResponse(c model.AchievementCategory) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Color:       c.Color,
	}
}

func toAchievementResponse(a model.Achievement) AchievementResponse {
	requirements := a.Requirements
	if requirements == nil {
		requirements = []string{}
	}
	return AchievementResponse{
		ID:           a.ID,
		Name:         a.Name,
		Description:  a.Description,
		Points:       a.Points,
		Category:     a.CategoryID,
		Level:        string(a.Level),
		Requirements: requirements,
		BadgeImage:   a.BadgeImage,
	}
}

func toAchievementList(list []model.Achievement) []AchievementResponse {
	out := make([]AchievementResponse, len(list))
	for i, a := range list {
		out[i] = toAchievementResponse(a)
	}
	return out
}

func toScoutResponse(s *model.Scout) ScoutResponse {
	return ScoutResponse{
		ID:        s.ID,
		Name:      s.Name,
		Points:    s.Points,
		IsAdmin:   s.IsAdmin,
		CreatedAt: s.CreatedAt,
	}
}

func toApplicationResponse(a model.ScoutAchievement) ApplicationResponse {
	return ApplicationResponse{
		ID:            a.ID,
		ScoutID:       a.ScoutID,
		AchievementID: a.AchievementID,
		Status:        string(a.Status),
		AppliedAt:     a.AppliedAt,
		ApprovedAt:    a.ApprovedAt,
		ReviewedBy:    a.ReviewedBy,
	}
}

type RankStatusResponse struct {
	Current      RankResponse  `json:"current"`
	Next         *RankResponse `json:"next"`
	Progress     int           `json:"progress"`
	PointsToNext int           `json:"points_to_next"`
}

func toRankStatusResponse(s progression.RankStatus) RankStatusResponse {
	out := RankStatusResponse{
		Current:      toRankResponse(s.Current),
		Progress:     s.Progress,
		PointsToNext: s.PointsToNext,
	}
	if s.Next != nil {
		next := toRankResponse(*s.Next)
		out.Next = &next
	}
	return out
}

type ProfileResponse struct {
	Scout           ScoutResponse      `json:"scout"`
	Rank            RankStatusResponse `json:"rank"`
	NextReward      *RewardResponse    `json:"next_reward"`
	RewardProgress  int                `json:"reward_progress"`
	UnlockedRewards int                `json:"unlocked_rewards"`
	TotalRewards    int                `json:"total_rewards"`
}

func toProfileResponse(p *service.ScoutProfile) ProfileResponse {
	out := ProfileResponse{
		Scout:           toScoutResponse(p.Scout),
		Rank:            toRankStatusResponse(p.Rank),
		RewardProgress:  p.RewardProgress,
		UnlockedRewards: p.UnlockedRewards,
		TotalRewards:    p.TotalRewards,
	}
	if p.NextReward != nil {
		next := toRewardResponse(*p.NextReward)
		out.NextReward = &next
	}
	return out
}
