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
	"github.com/jmoiron/sqlx"
)

type ScoutAchievement struct {
	ID            uuid.UUID  `db:"id"`
	ScoutID       uuid.UUID  `db:"scout_id"`
	AchievementID uuid.UUID  `db:"achievement_id"`
	Status        string     `db:"status"`
	ApprovedAt    *time.Time `db:"approved_at"`
	ReviewedBy    *uuid.UUID `db:"reviewed_by"`
	CreatedAt     time.Time  `db:"created_at"`
}

func (a ScoutAchievement) toModel() model.ScoutAchievement {
	return model.ScoutAchievement{
		ID:            a.ID,
		ScoutID:       a.ScoutID,
		AchievementID: a.AchievementID,
		Status:        model.ApplicationStatus(a.Status),
		AppliedAt:     a.CreatedAt,
		ApprovedAt:    a.ApprovedAt,
		ReviewedBy:    a.ReviewedBy,
	}
}

type pendingApplication struct {
	ScoutAchievement
	ScoutName         string `db:"scout_name"`
	AchievementName   string `db:"achievement_name"`
	AchievementPoints int    `db:"achievement_points"`
	Category          string `db:"category"`
}

type lockedApplication struct {
	ScoutAchievement
	Points int `db:"points"`
}

var applicationColumns = []string{
	"sa.id", "sa.scout_id", "sa.achievement_id", "sa.status", "sa.approved_at", "sa.reviewed_by", "sa.created_at",
}

func (r *Repository) CreateApplication(ctx context.Context, app *model.ScoutAchievement) error {
	query, args, err := squirrel.
		Insert("scout_achievements").
		SetMap(map[string]interface{}{
			"id":             app.ID,
			"scout_id":       app.ScoutID,
			"achievement_id": app.AchievementID,
			"status":         string(app.Status),
			"created_at":     app.AppliedAt,
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build application insert query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to insert application: %w", err)
	}

	return nil
}

func (r *Repository) ListScoutApplications(ctx context.Context, scoutID uuid.UUID) ([]model.ScoutAchievement, error) {
	query, args, err := squirrel.
		Select(applicationColumns...).
		From("scout_achievements sa").
		Where(squirrel.Eq{"sa.scout_id": scoutID}).
		OrderBy("sa.created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var rows []ScoutAchievement
	if err = r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list scout applications: %w", err)
	}

	apps := make([]model.ScoutAchievement, len(rows))
	for i, row := range rows {
		apps[i] = row.toModel()
	}

	return apps, nil
}

func (r *Repository) ListPendingApplications(ctx context.Context) ([]*model.PendingApplication, error) {
	columns := append([]string{}, applicationColumns...)
	columns = append(columns,
		"s.name AS scout_name",
		"a.name AS achievement_name",
		"a.points AS achievement_points",
		"a.category",
	)

	query, args, err := squirrel.
		Select(columns...).
		From("scout_achievements sa").
		Join("scouts s ON s.id = sa.scout_id").
		Join("achievements a ON a.id = sa.achievement_id").
		Where(squirrel.Eq{"sa.status": string(model.StatusPending)}).
		OrderBy("sa.created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var rows []pendingApplication
	if err = r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list pending applications: %w", err)
	}

	pending := make([]*model.PendingApplication, len(rows))
	for i, row := range rows {
		pending[i] = &model.PendingApplication{
			ScoutAchievement:  row.ScoutAchievement.toModel(),
			ScoutName:         row.ScoutName,
			AchievementName:   row.AchievementName,
			AchievementPoints: row.AchievementPoints,
			CategoryID:        row.Category,
		}
	}

	return pending, nil
}

// lockPending loads the application row with FOR UPDATE so concurrent reviews
// of the same record serialize on it.
func (r *Repository) lockPending(ctx context.Context, tx *sqlx.Tx, applicationID uuid.UUID) (*lockedApplication, error) {
	columns := append([]string{}, applicationColumns...)
	columns = append(columns, "a.points")

	query, args, err := squirrel.
		Select(columns...).
		From("scout_achievements sa").
		Join("achievements a ON a.id = sa.achievement_id").
		Where(squirrel.Eq{"sa.id": applicationID}).
		Suffix("FOR UPDATE OF sa").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var app lockedApplication
	err = tx.GetContext(ctx, &app, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock application: %w", err)
	}

	if app.Status != string(model.StatusPending) {
		return nil, ErrNotPending
	}

	return &app, nil
}

func (r *Repository) setReviewStatus(ctx context.Context, tx *sqlx.Tx, applicationID, reviewerID uuid.UUID, values map[string]interface{}) error {
	values["reviewed_by"] = reviewerID

	query, args, err := squirrel.
		Update("scout_achievements").
		SetMap(values).
		Where(squirrel.Eq{"id": applicationID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, query, args...)
	return err
}

// ApproveApplication marks a pending application approved and credits the
// achievement's points through increment_points in the same transaction.
func (r *Repository) ApproveApplication(ctx context.Context, applicationID, reviewerID uuid.UUID, at time.Time) (*model.ReviewOutcome, error) {
	var outcome model.ReviewOutcome

	err := r.Transaction(ctx, func(tx *sqlx.Tx) error {
		app, err := r.lockPending(ctx, tx, applicationID)
		if err != nil {
			return err
		}

		err = r.setReviewStatus(ctx, tx, applicationID, reviewerID, map[string]interface{}{
			"status":      string(model.StatusApproved),
			"approved_at": at,
		})
		if err != nil {
			return fmt.Errorf("failed to approve application: %w", err)
		}

		incQuery, incArgs, err := squirrel.
			Select().
			Column(squirrel.Expr("increment_points(?, ?)", app.ScoutID, app.Points)).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}

		var total int
		if err = tx.GetContext(ctx, &total, incQuery, incArgs...); err != nil {
			return fmt.Errorf("failed to increment scout points: %w", err)
		}

		approvedAt := at
		reviewer := reviewerID
		outcome.Application = app.ScoutAchievement.toModel()
		outcome.Application.Status = model.StatusApproved
		outcome.Application.ApprovedAt = &approvedAt
		outcome.Application.ReviewedBy = &reviewer
		outcome.PointsAwarded = app.Points
		outcome.ScoutPoints = total

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &outcome, nil
}

func (r *Repository) RejectApplication(ctx context.Context, applicationID, reviewerID uuid.UUID) (*model.ReviewOutcome, error) {
	var outcome model.ReviewOutcome

	err := r.Transaction(ctx, func(tx *sqlx.Tx) error {
		app, err := r.lockPending(ctx, tx, applicationID)
		if err != nil {
			return err
		}

		err = r.setReviewStatus(ctx, tx, applicationID, reviewerID, map[string]interface{}{
			"status": string(model.StatusRejected),
		})
		if err != nil {
			return fmt.Errorf("failed to reject application: %w", err)
		}

		reviewer := reviewerID
		outcome.Application = app.ScoutAchievement.toModel()
		outcome.Application.Status = model.StatusRejected
		outcome.Application.ReviewedBy = &reviewer

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &outcome, nil
}
