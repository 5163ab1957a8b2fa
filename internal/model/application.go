package model

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusApproved ApplicationStatus = "approved"
	StatusRejected ApplicationStatus = "rejected"
)

// ScoutAchievement is a scout's application to be credited for an achievement.
type ScoutAchievement struct {
	ID            uuid.UUID
	ScoutID       uuid.UUID
	AchievementID uuid.UUID
	Status        ApplicationStatus
	AppliedAt     time.Time
	ApprovedAt    *time.Time
	ReviewedBy    *uuid.UUID
}

// PendingApplication is an application joined with the data a reviewer needs.
type PendingApplication struct {
	ScoutAchievement
	ScoutName         string
	AchievementName   string
	AchievementPoints int
	CategoryID        string
}

// ReviewOutcome reports a finished review and its effect on the scout's total.
type ReviewOutcome struct {
	Application   ScoutAchievement
	PointsAwarded int
	ScoutPoints   int
}
