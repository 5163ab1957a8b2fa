package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"scoutquest/internal/model"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Achievement struct {
	ID           uuid.UUID      `db:"id"`
	Name         string         `db:"name"`
	Description  string         `db:"description"`
	Points       int            `db:"points"`
	Category     string         `db:"category"`
	Level        string         `db:"level"`
	Requirements pq.StringArray `db:"requirements"`
	BadgeImage   string         `db:"badge_image"`
	CreatedAt    time.Time      `db:"created_at"`
}

func (a Achievement) toModel() *model.Achievement {
	requirements := make([]string, len(a.Requirements))
	copy(requirements, a.Requirements)

	return &model.Achievement{
		ID:           a.ID,
		Name:         a.Name,
		Description:  a.Description,
		Points:       a.Points,
		CategoryID:   a.Category,
		Level:        model.AchievementLevel(a.Level),
		Requirements: requirements,
		BadgeImage:   a.BadgeImage,
		CreatedAt:    a.CreatedAt,
	}
}

var achievementColumns = []string{
	"id", "name", "description", "points", "category", "level", "requirements", "badge_image", "created_at",
}

func achievementValues(a *model.Achievement) map[string]interface{} {
	return map[string]interface{}{
		"name":         a.Name,
		"description":  a.Description,
		"points":       a.Points,
		"category":     a.CategoryID,
		"level":        string(a.Level),
		"requirements": pq.StringArray(a.Requirements),
		"badge_image":  a.BadgeImage,
	}
}

func (r *Repository) ListAchievements(ctx context.Context) ([]*model.Achievement, error) {
	query, args, err := squirrel.
		Select(achievementColumns...).
		From("achievements").
		OrderBy("category", "name").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var rows []Achievement
	if err = r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list achievements: %w", err)
	}

	achievements := make([]*model.Achievement, len(rows))
	for i, a := range rows {
		achievements[i] = a.toModel()
	}

	return achievements, nil
}

func (r *Repository) GetAchievement(ctx context.Context, achievementID uuid.UUID) (*model.Achievement, error) {
	query, args, err := squirrel.
		Select(achievementColumns...).
		From("achievements").
		Where(squirrel.Eq{"id": achievementID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var row Achievement
	err = r.db.GetContext(ctx, &row, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return row.toModel(), nil
}

func (r *Repository) CreateAchievement(ctx context.Context, achievement *model.Achievement) error {
	values := achievementValues(achievement)
	values["id"] = achievement.ID
	values["created_at"] = achievement.CreatedAt

	query, args, err := squirrel.
		Insert("achievements").
		SetMap(values).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build achievement insert query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert achievement: %w", err)
	}

	return nil
}

func (r *Repository) UpdateAchievement(ctx context.Context, achievement *model.Achievement) error {
	query, args, err := squirrel.
		Update("achievements").
		SetMap(achievementValues(achievement)).
		Where(squirrel.Eq{"id": achievement.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update achievement: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteAchievement(ctx context.Context, achievementID uuid.UUID) error {
	query, args, err := squirrel.
		Delete("achievements").
		Where(squirrel.Eq{"id": achievementID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete achievement: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
