package workouts

import (
	"context"
	"errors"

	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrWorkoutNotFound = errors.New("workout not found")

// Repo stores workouts. Every statement carries the user_id predicate, so rows
// of other users look exactly like missing ones.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

const selectColumns = `id, workout_type, duration, calories, to_char(workout_date, 'YYYY-MM-DD'), notes, created_at`

func scanWorkout(row pgx.Row) (Workout, error) {
	var w Workout
	err := row.Scan(&w.ID, &w.WorkoutType, &w.Duration, &w.Calories, &w.WorkoutDate, &w.Notes, &w.CreatedAt)
	return w, err
}

func (r *Repo) Add(ctx context.Context, userID int, workout NewWorkout) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var id int
	err = r.db.QueryRow(ctx, `
		INSERT INTO workout (user_id, workout_type, duration, calories, workout_date, notes)
		VALUES ($1, $2, $3, $4, $5::date, $6)
		RETURNING id`,
		userID, workout.WorkoutType, workout.Duration, workout.Calories, workout.WorkoutDate, workout.Notes,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	span.SetAttributes(attribute.Int("workout.id", id))
	return id, nil
}

func (r *Repo) List(ctx context.Context, userID int) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT `+selectColumns+`
		FROM workout
		WHERE user_id = $1
		ORDER BY workout_date DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workouts := []Workout{}
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("workouts.count", len(workouts)))
	return workouts, nil
}

func (r *Repo) Get(ctx context.Context, userID, id int) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	w, err := scanWorkout(r.db.QueryRow(ctx, `
		SELECT `+selectColumns+`
		FROM workout
		WHERE id = $1 AND user_id = $2`,
		id, userID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return &w, nil
}

func (r *Repo) Update(ctx context.Context, userID, id int, update Update) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.update")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	tag, err := r.db.Exec(ctx, `
		UPDATE workout SET
			workout_type = COALESCE($3, workout_type),
			duration = COALESCE($4, duration),
			calories = COALESCE($5, calories),
			workout_date = COALESCE($6::date, workout_date),
			notes = COALESCE($7, notes)
		WHERE id = $1 AND user_id = $2`,
		id, userID, update.WorkoutType, update.Duration, update.Calories, update.WorkoutDate, update.Notes,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	tag, err := r.db.Exec(ctx, `DELETE FROM workout WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}
