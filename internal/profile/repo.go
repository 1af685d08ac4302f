package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/fitcoach/fitcoach/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrProfileNotFound = errors.New("profile not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context, userID int) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	var p Profile
	err = r.db.QueryRow(
		ctx,
		`SELECT id, user_id, gender, age, height_cm, weight_kg, activity_level, goal_type, training_days
			FROM fitness_profile WHERE user_id = $1;`,
		userID,
	).Scan(
		&p.ID, &p.UserID, &p.Gender, &p.Age, &p.HeightCm,
		&p.WeightKg, &p.ActivityLevel, &p.GoalType, &p.TrainingDays,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	return &p, nil
}

// Upsert inserts the profile for its user, or overwrites the existing one
func (r *Repo) Upsert(ctx context.Context, p Profile) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", p.UserID))

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO fitness_profile
				(user_id, gender, age, height_cm, weight_kg, activity_level, goal_type, training_days)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (user_id) DO UPDATE SET
				gender = EXCLUDED.gender,
				age = EXCLUDED.age,
				height_cm = EXCLUDED.height_cm,
				weight_kg = EXCLUDED.weight_kg,
				activity_level = EXCLUDED.activity_level,
				goal_type = EXCLUDED.goal_type,
				training_days = EXCLUDED.training_days
			RETURNING id;`,
		p.UserID, p.Gender, p.Age, p.HeightCm, p.WeightKg, p.ActivityLevel, p.GoalType, p.TrainingDays,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	if err := rows.Scan(&p.ID); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	return &p, nil
}
