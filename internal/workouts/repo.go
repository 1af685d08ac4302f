package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/fitcoach/fitcoach/internal/stats"
	"github.com/fitcoach/fitcoach/internal/telemetry/tracing"
	"github.com/fitcoach/fitcoach/pkg"
)

var (
	ErrTemplateNotFound        = errors.New("workout template not found")
	ErrTemplateHasLogs         = errors.New("workout template has logs")
	ErrLogNotFound             = errors.New("workout log not found")
	ErrInvalidExerciseTemplate = errors.New("invalid exercise template reference")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// ListTemplates returns the user's templates, newest first, each with its
// exercises ordered by position.
func (r *Repo) ListTemplates(ctx context.Context, userID int) (_ []WorkoutTemplate, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutsRepo.listTemplates")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, name, created_at
			FROM workout_template
			WHERE user_id = $1
			ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templates := make([]WorkoutTemplate, 0)
	templateIDs := make([]int, 0)
	for rows.Next() {
		var t WorkoutTemplate
		if err := rows.Scan(&t.ID, &t.UserID, &t.Name, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		t.Exercises = make([]WorkoutExerciseTemplate, 0)
		templates = append(templates, t)
		templateIDs = append(templateIDs, t.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(templates) == 0 {
		return templates, nil
	}

	exercises, err := r.exercisesForTemplates(ctx, templateIDs)
	if err != nil {
		return nil, err
	}
	for i := range templates {
		if ex, ok := exercises[templates[i].ID]; ok {
			templates[i].Exercises = ex
		}
	}

	span.SetAttributes(attribute.Int("templates.count", len(templates)))

	return templates, nil
}

func (r *Repo) exercisesForTemplates(ctx context.Context, templateIDs []int) (map[int][]WorkoutExerciseTemplate, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, workout_template_id, name, muscle_group, sets, reps, rir, order_index
			FROM workout_exercise_template
			WHERE workout_template_id = ANY($1)
			ORDER BY order_index ASC`,
		templateIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises := make(map[int][]WorkoutExerciseTemplate)
	for rows.Next() {
		var e WorkoutExerciseTemplate
		if err := rows.Scan(
			&e.ID, &e.WorkoutTemplateID, &e.Name, &e.MuscleGroup,
			&e.Sets, &e.Reps, &e.Rir, &e.OrderIndex,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		exercises[e.WorkoutTemplateID] = append(exercises[e.WorkoutTemplateID], e)
	}

	return exercises, rows.Err()
}

func (r *Repo) AddTemplate(ctx context.Context, userID int, name string, exercises []ExerciseInput, createdAt time.Time) (_ WorkoutTemplate, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutsRepo.addTemplate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return WorkoutTemplate{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	template := WorkoutTemplate{
		UserID:    userID,
		Name:      name,
		CreatedAt: createdAt,
		Exercises: make([]WorkoutExerciseTemplate, 0, len(exercises)),
	}
	if err = tx.QueryRow(ctx,
		`INSERT INTO workout_template (user_id, name, created_at)
			VALUES ($1, $2, $3)
			RETURNING id`,
		userID, name, createdAt,
	).Scan(&template.ID); err != nil {
		return WorkoutTemplate{}, err
	}

	for orderIndex, input := range exercises {
		exercise := WorkoutExerciseTemplate{
			WorkoutTemplateID: template.ID,
			Name:              input.Name,
			MuscleGroup:       input.MuscleGroup,
			Sets:              input.Sets,
			Reps:              input.Reps,
			Rir:               input.Rir,
			OrderIndex:        orderIndex,
		}
		if err = tx.QueryRow(ctx,
			`INSERT INTO workout_exercise_template
				(workout_template_id, name, muscle_group, sets, reps, rir, order_index)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
				RETURNING id`,
			template.ID, exercise.Name, exercise.MuscleGroup,
			exercise.Sets, exercise.Reps, exercise.Rir, exercise.OrderIndex,
		).Scan(&exercise.ID); err != nil {
			return WorkoutTemplate{}, err
		}
		template.Exercises = append(template.Exercises, exercise)
	}

	if err = tx.Commit(ctx); err != nil {
		return WorkoutTemplate{}, fmt.Errorf("commit tx: %w", err)
	}

	span.SetAttributes(attribute.Int("template.id", template.ID))

	return template, nil
}

// DeleteTemplate removes a template and its exercises. Templates that are
// referenced by workout logs are refused.
func (r *Repo) DeleteTemplate(ctx context.Context, userID, templateID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutsRepo.deleteTemplate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var exists bool
	if err = r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM workout_template WHERE id = $1 AND user_id = $2)`,
		templateID, userID,
	).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrTemplateNotFound
	}

	var logsCount int
	if err = r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM workout_log WHERE user_id = $1 AND workout_template_id = $2`,
		userID, templateID,
	).Scan(&logsCount); err != nil {
		return err
	}
	if logsCount > 0 {
		return ErrTemplateHasLogs
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if _, err = tx.Exec(ctx,
		`DELETE FROM workout_exercise_template WHERE workout_template_id = $1`,
		templateID,
	); err != nil {
		return err
	}
	if _, err = tx.Exec(ctx,
		`DELETE FROM workout_template WHERE id = $1`,
		templateID,
	); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// ListLogs returns the user's logs, newest first. Either range bound can be
// nil to leave that side open.
func (r *Repo) ListLogs(ctx context.Context, userID int, from, to *time.Time) (_ []WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutsRepo.listLogs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	query := `SELECT wl.id, wl.user_id, wl.date, wl.workout_template_id, wl.notes, wl.created_at, wt.name
		FROM workout_log wl
		LEFT JOIN workout_template wt ON wt.id = wl.workout_template_id
		WHERE wl.user_id = $1`
	args := []interface{}{userID}
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" AND wl.date >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(" AND wl.date <= $%d", len(args))
	}
	query += " ORDER BY wl.date DESC, wl.id DESC"

	logs, err := r.queryLogs(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("logs.count", len(logs)))

	return logs, nil
}

func (r *Repo) GetLog(ctx context.Context, userID, logID int) (_ WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutsRepo.getLog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	logs, err := r.queryLogs(ctx,
		`SELECT wl.id, wl.user_id, wl.date, wl.workout_template_id, wl.notes, wl.created_at, wt.name
			FROM workout_log wl
			LEFT JOIN workout_template wt ON wt.id = wl.workout_template_id
			WHERE wl.user_id = $1 AND wl.id = $2`,
		userID, logID,
	)
	if err != nil {
		return WorkoutLog{}, err
	}
	if len(logs) == 0 {
		return WorkoutLog{}, ErrLogNotFound
	}
	return logs[0], nil
}

func (r *Repo) queryLogs(ctx context.Context, query string, args ...interface{}) ([]WorkoutLog, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]WorkoutLog, 0)
	logIDs := make([]int, 0)
	for rows.Next() {
		var l WorkoutLog
		var templateName *string
		if err := rows.Scan(
			&l.ID, &l.UserID, &l.Date, &l.WorkoutTemplateID,
			&l.Notes, &l.CreatedAt, &templateName,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		if l.WorkoutTemplateID != nil && templateName != nil {
			l.WorkoutTemplate = &TemplateRef{ID: *l.WorkoutTemplateID, Name: *templateName}
		}
		l.Sets = make([]WorkoutSet, 0)
		logs = append(logs, l)
		logIDs = append(logIDs, l.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(logs) == 0 {
		return logs, nil
	}

	sets, err := r.setsForLogs(ctx, logIDs)
	if err != nil {
		return nil, err
	}
	for i := range logs {
		if logSets, ok := sets[logs[i].ID]; ok {
			logs[i].Sets = logSets
		}
	}

	return logs, nil
}

func (r *Repo) setsForLogs(ctx context.Context, logIDs []int) (map[int][]WorkoutSet, error) {
	rows, err := r.db.Query(ctx,
		`SELECT ws.id, ws.workout_log_id, ws.exercise_template_id, ws.set_index,
				ws.weight_kg, ws.reps, ws.rir,
				wet.id, wet.workout_template_id, wet.name, wet.muscle_group,
				wet.sets, wet.reps, wet.rir, wet.order_index
			FROM workout_set ws
			JOIN workout_exercise_template wet ON wet.id = ws.exercise_template_id
			WHERE ws.workout_log_id = ANY($1)
			ORDER BY ws.set_index ASC, ws.id ASC`,
		logIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sets := make(map[int][]WorkoutSet)
	for rows.Next() {
		var s WorkoutSet
		if err := rows.Scan(
			&s.ID, &s.WorkoutLogID, &s.ExerciseTemplateID, &s.SetIndex,
			&s.WeightKg, &s.Reps, &s.Rir,
			&s.ExerciseTemplate.ID, &s.ExerciseTemplate.WorkoutTemplateID,
			&s.ExerciseTemplate.Name, &s.ExerciseTemplate.MuscleGroup,
			&s.ExerciseTemplate.Sets, &s.ExerciseTemplate.Reps,
			&s.ExerciseTemplate.Rir, &s.ExerciseTemplate.OrderIndex,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		sets[s.WorkoutLogID] = append(sets[s.WorkoutLogID], s)
	}

	return sets, rows.Err()
}

type AddLogParams struct {
	UserID     int
	Date       time.Time
	TemplateID *int
	Notes      *string
	Sets       []SetInput
	CreatedAt  time.Time
}

func (r *Repo) AddLog(ctx context.Context, params AddLogParams) (_ WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutsRepo.addLog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return WorkoutLog{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	var logID int
	if err = tx.QueryRow(ctx,
		`INSERT INTO workout_log (user_id, date, workout_template_id, notes, created_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
		params.UserID, params.Date, params.TemplateID, params.Notes, params.CreatedAt,
	).Scan(&logID); err != nil {
		return WorkoutLog{}, err
	}

	for _, set := range params.Sets {
		if _, err = tx.Exec(ctx,
			`INSERT INTO workout_set (workout_log_id, exercise_template_id, set_index, weight_kg, reps, rir)
				VALUES ($1, $2, $3, $4, $5, $6)`,
			logID, set.ExerciseTemplateID, set.SetIndex, set.WeightKg, set.Reps, set.Rir,
		); err != nil {
			if pkg.IsForeignKeyViolationError(err) {
				err = ErrInvalidExerciseTemplate
			}
			return WorkoutLog{}, err
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return WorkoutLog{}, fmt.Errorf("commit tx: %w", err)
	}

	span.SetAttributes(attribute.Int("log.id", logID))

	return r.GetLog(ctx, params.UserID, logID)
}

func (r *Repo) DeleteLog(ctx context.Context, userID, logID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutsRepo.deleteLog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var exists bool
	if err = r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM workout_log WHERE id = $1 AND user_id = $2)`,
		logID, userID,
	).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrLogNotFound
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `DELETE FROM workout_set WHERE workout_log_id = $1`, logID); err != nil {
		return err
	}
	if _, err = tx.Exec(ctx, `DELETE FROM workout_log WHERE id = $1`, logID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// WorkoutRows feeds the stats aggregation with one row per session, each
// carrying the muscle group of every logged set.
func (r *Repo) WorkoutRows(ctx context.Context, userID int, rng stats.Range) (_ []stats.WorkoutRow, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutsRepo.workoutRows")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`SELECT wl.id, wl.date, ws.id, wet.muscle_group
			FROM workout_log wl
			LEFT JOIN workout_set ws ON ws.workout_log_id = wl.id
			LEFT JOIN workout_exercise_template wet ON wet.id = ws.exercise_template_id
			WHERE wl.user_id = $1 AND wl.date >= $2 AND wl.date <= $3
			ORDER BY wl.id`,
		userID, rng.Start, rng.End,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byLog := make(map[int]*stats.WorkoutRow)
	order := make([]int, 0)
	for rows.Next() {
		var logID int
		var date time.Time
		var setID *int
		var muscleGroup *string
		if err := rows.Scan(&logID, &date, &setID, &muscleGroup); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		row, ok := byLog[logID]
		if !ok {
			row = &stats.WorkoutRow{Date: date}
			byLog[logID] = row
			order = append(order, logID)
		}
		// a log without sets joins to a nil set row and contributes no groups
		if setID != nil {
			var group string
			if muscleGroup != nil {
				group = *muscleGroup
			}
			row.SetMuscleGroups = append(row.SetMuscleGroups, group)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	statsRows := make([]stats.WorkoutRow, 0, len(order))
	for _, logID := range order {
		statsRows = append(statsRows, *byLog[logID])
	}
	return statsRows, nil
}
