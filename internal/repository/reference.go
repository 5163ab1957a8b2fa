package repository

import (
	"context"
	"fmt"

	"scoutquest/internal/model"

	"github.com/Masterminds/squirrel"
)

type rank struct {
	ID          int    `db:"id"`
	Name        string `db:"name"`
	Color       string `db:"color"`
	MinPoints   int    `db:"min_points"`
	Image       string `db:"image"`
	Description string `db:"description"`
}

type reward struct {
	ID             string `db:"id"`
	Name           string `db:"name"`
	Description    string `db:"description"`
	PointsRequired int    `db:"points_required"`
	Image          string `db:"image"`
}

func (r *Repository) ListRanks(ctx context.Context) ([]model.Rank, error) {
	query, args, err := squirrel.
		Select("id", "name", "color", "min_points", "image", "description").
		From("ranks").
		OrderBy("min_points").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var rows []rank
	if err = r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list ranks: %w", err)
	}

	ranks := make([]model.Rank, len(rows))
	for i, row := range rows {
		ranks[i] = model.Rank{
			ID:          row.ID,
			Name:        row.Name,
			Color:       row.Color,
			MinPoints:   row.MinPoints,
			Image:       row.Image,
			Description: row.Description,
		}
	}

	return ranks, nil
}

func (r *Repository) ListRewards(ctx context.Context) ([]model.Reward, error) {
	query, args, err := squirrel.
		Select("id", "name", "description", "points_required", "image").
		From("rewards").
		OrderBy("points_required").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var rows []reward
	if err = r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list rewards: %w", err)
	}

	rewards := make([]model.Reward, len(rows))
	for i, row := range rows {
		rewards[i] = model.Reward{
			ID:             row.ID,
			Name:           row.Name,
			Description:    row.Description,
			PointsRequired: row.PointsRequired,
			Image:          row.Image,
		}
	}

	return rewards, nil
}
