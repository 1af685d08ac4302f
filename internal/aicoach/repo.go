package aicoach

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/fitcoach/fitcoach/internal/telemetry/tracing"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Add(ctx context.Context, feedback Feedback) (_ Feedback, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "aicoachRepo.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`INSERT INTO ai_feedback
			(user_id, date_from, date_to, feedback_type, input_summary, result_text, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id`,
		feedback.UserID, feedback.DateFrom, feedback.DateTo,
		feedback.FeedbackType, feedback.InputSummary, feedback.ResultText,
		feedback.CreatedAt,
	)
	if err != nil {
		return Feedback{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		return Feedback{}, errors.New("unexpected error, failed to insert ai feedback")
	}

	if err := rows.Scan(&feedback.ID); err != nil {
		return Feedback{}, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("feedback.id", feedback.ID))

	return feedback, nil
}

// ListLatest returns the user's most recent feedbacks, newest first.
func (r *Repo) ListLatest(ctx context.Context, userID, limit int) (_ []Feedback, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "aicoachRepo.listLatest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, date_from, date_to, feedback_type, input_summary, result_text, created_at
			FROM ai_feedback
			WHERE user_id = $1
			ORDER BY created_at DESC
			LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	feedbacks := make([]Feedback, 0)
	for rows.Next() {
		var f Feedback
		if err := rows.Scan(
			&f.ID, &f.UserID, &f.DateFrom, &f.DateTo,
			&f.FeedbackType, &f.InputSummary, &f.ResultText, &f.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		feedbacks = append(feedbacks, f)
	}

	return feedbacks, rows.Err()
}
