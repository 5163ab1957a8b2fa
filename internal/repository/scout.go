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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
)

const uniqueViolation = "23505"

type User struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type Scout struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Name      string    `db:"name"`
	RankID    *int      `db:"rank_id"`
	Points    int       `db:"points"`
	IsAdmin   bool      `db:"is_admin"`
	CreatedAt time.Time `db:"created_at"`
}

func (s Scout) toModel() *model.Scout {
	return &model.Scout{
		ID:        s.ID,
		UserID:    s.UserID,
		Name:      s.Name,
		Points:    s.Points,
		IsAdmin:   s.IsAdmin,
		CreatedAt: s.CreatedAt,
	}
}

var scoutColumns = []string{"id", "user_id", "name", "rank_id", "points", "is_admin", "created_at"}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// rankFor resolves the rank row for a point total inside the statement that
// writes it, so rank_id never drifts from points.
func rankFor(points int) squirrel.Sqlizer {
	return squirrel.Expr("(SELECT id FROM ranks WHERE min_points <= ? ORDER BY min_points DESC LIMIT 1)", points)
}

// CreateUserWithScout registers the login and its scout profile together.
func (r *Repository) CreateUserWithScout(ctx context.Context, user *model.User, scout *model.Scout) error {
	return r.Transaction(ctx, func(tx *sqlx.Tx) error {
		userQuery, userArgs, err := squirrel.
			Insert("users").
			SetMap(map[string]interface{}{
				"id":            user.ID,
				"email":         user.Email,
				"password_hash": user.PasswordHash,
				"created_at":    user.CreatedAt,
			}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build user insert query: %w", err)
		}

		if _, err = tx.ExecContext(ctx, userQuery, userArgs...); err != nil {
			if isUniqueViolation(err) {
				return ErrAlreadyExists
			}
			return fmt.Errorf("failed to insert user: %w", err)
		}

		scoutQuery, scoutArgs, err := squirrel.
			Insert("scouts").
			SetMap(map[string]interface{}{
				"id":         scout.ID,
				"user_id":    user.ID,
				"name":       scout.Name,
				"rank_id":    rankFor(scout.Points),
				"points":     scout.Points,
				"is_admin":   scout.IsAdmin,
				"created_at": scout.CreatedAt,
			}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build scout insert query: %w", err)
		}

		if _, err = tx.ExecContext(ctx, scoutQuery, scoutArgs...); err != nil {
			return fmt.Errorf("failed to insert scout: %w", err)
		}

		return nil
	})
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	query, args, err := squirrel.
		Select("id", "email", "password_hash", "created_at").
		From("users").
		Where(squirrel.Eq{"email": email}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var user User
	err = r.db.GetContext(ctx, &user, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &model.User{
		ID:           user.ID,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
	}, nil
}

func (r *Repository) getScout(ctx context.Context, where squirrel.Sqlizer) (*model.Scout, error) {
	query, args, err := squirrel.
		Select(scoutColumns...).
		From("scouts").
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var scout Scout
	err = r.db.GetContext(ctx, &scout, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return scout.toModel(), nil
}

func (r *Repository) GetScoutByID(ctx context.Context, scoutID uuid.UUID) (*model.Scout, error) {
	return r.getScout(ctx, squirrel.Eq{"id": scoutID})
}

func (r *Repository) GetScoutByUserID(ctx context.Context, userID uuid.UUID) (*model.Scout, error) {
	return r.getScout(ctx, squirrel.Eq{"user_id": userID})
}

func (r *Repository) listScouts(ctx context.Context, builder squirrel.SelectBuilder) ([]*model.Scout, error) {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var rows []Scout
	if err = r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list scouts: %w", err)
	}

	scouts := make([]*model.Scout, len(rows))
	for i, s := range rows {
		scouts[i] = s.toModel()
	}

	return scouts, nil
}

func (r *Repository) ListScouts(ctx context.Context) ([]*model.Scout, error) {
	return r.listScouts(ctx, squirrel.
		Select(scoutColumns...).
		From("scouts").
		OrderBy("name"))
}

func (r *Repository) GetTopScouts(ctx context.Context, limit int) ([]*model.Scout, error) {
	return r.listScouts(ctx, squirrel.
		Select(scoutColumns...).
		From("scouts").
		OrderBy("points DESC", "name").
		Limit(uint64(limit)))
}

func (r *Repository) UpdateScout(ctx context.Context, scout *model.Scout) error {
	query, args, err := squirrel.
		Update("scouts").
		SetMap(map[string]interface{}{
			"name":     scout.Name,
			"points":   scout.Points,
			"rank_id":  rankFor(scout.Points),
			"is_admin": scout.IsAdmin,
		}).
		Where(squirrel.Eq{"id": scout.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update scout: %w", err)
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

// DeleteScout removes the scout's login; the profile and its applications go
// with it through ON DELETE CASCADE.
func (r *Repository) DeleteScout(ctx context.Context, scoutID uuid.UUID) error {
	query, args, err := squirrel.
		Delete("users").
		Where(squirrel.Expr("id = (SELECT user_id FROM scouts WHERE id = ?)", scoutID)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete scout: %w", err)
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
