package nutrition

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/fitcoach/fitcoach/internal/stats"
	"github.com/fitcoach/fitcoach/internal/telemetry/tracing"
)

var ErrEntryNotFound = errors.New("meal entry not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Add(ctx context.Context, entry MealEntry) (_ MealEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "nutritionRepo.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`INSERT INTO meal_entry (user_id, date, name, calories, protein, carbs, fat, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id`,
		entry.UserID, entry.Date, entry.Name,
		entry.Calories, entry.Protein, entry.Carbs, entry.Fat,
		entry.CreatedAt,
	)
	if err != nil {
		return MealEntry{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		return MealEntry{}, errors.New("unexpected error, failed to insert meal entry")
	}

	if err := rows.Scan(&entry.ID); err != nil {
		return MealEntry{}, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("entry.id", entry.ID))

	return entry, nil
}

// List returns the user's entries ordered by date, oldest first. Either
// bound can be nil to leave that side of the range open.
func (r *Repo) List(ctx context.Context, userID int, from, to *time.Time) (_ []MealEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "nutritionRepo.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	query := `SELECT id, user_id, date, name, calories, protein, carbs, fat, created_at
		FROM meal_entry WHERE user_id = $1`
	args := []interface{}{userID}
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	query += " ORDER BY date ASC, id ASC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]MealEntry, 0)
	for rows.Next() {
		var entry MealEntry
		if err := rows.Scan(
			&entry.ID, &entry.UserID, &entry.Date, &entry.Name,
			&entry.Calories, &entry.Protein, &entry.Carbs, &entry.Fat,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		entries = append(entries, entry)
	}

	span.SetAttributes(attribute.Int("entries.count", len(entries)))

	return entries, rows.Err()
}

func (r *Repo) Delete(ctx context.Context, userID, entryID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "nutritionRepo.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx,
		`DELETE FROM meal_entry WHERE id = $1 AND user_id = $2`,
		entryID, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// NutritionRows feeds the stats aggregation with per-entry macro rows.
func (r *Repo) NutritionRows(ctx context.Context, userID int, rng stats.Range) (_ []stats.NutritionRow, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "nutritionRepo.nutritionRows")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`SELECT date, calories, protein, carbs, fat
			FROM meal_entry
			WHERE user_id = $1 AND date >= $2 AND date <= $3`,
		userID, rng.Start, rng.End,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	statsRows := make([]stats.NutritionRow, 0)
	for rows.Next() {
		var row stats.NutritionRow
		if err := rows.Scan(&row.Date, &row.Calories, &row.Protein, &row.Carbs, &row.Fat); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		statsRows = append(statsRows, row)
	}

	return statsRows, rows.Err()
}
