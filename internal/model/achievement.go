package model

import (
	"time"

	"github.com/google/uuid"
)

type AchievementLevel string

const (
	LevelBeginner     AchievementLevel = "beginner"
	LevelIntermediate AchievementLevel = "intermediate"
	LevelAdvanced     AchievementLevel = "advanced"
)

func (l AchievementLevel) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

type Achievement struct {
	ID           uuid.UUID
	Name         string
	Description  string
	Points       int
	CategoryID   string
	Level        AchievementLevel
	Requirements []string
	BadgeImage   string
	CreatedAt    time.Time
}
