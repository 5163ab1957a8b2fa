package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

type Scout struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Points    int
	IsAdmin   bool
	CreatedAt time.Time
}
