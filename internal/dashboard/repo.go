package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fittrack/internal/goals"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repo runs the read-only aggregate queries behind the dashboard, each scoped to one user.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) CountWorkouts(ctx context.Context, userID int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dashboard.countworkouts")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var count int
	err = r.db.QueryRow(ctx, `SELECT COUNT(*) FROM workout WHERE user_id = $1`, userID).Scan(&count)
	return count, err
}

func (r *Repo) SumCalories(ctx context.Context, userID int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dashboard.sumcalories")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var sum int
	err = r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(calories), 0)::bigint
		FROM workout
		WHERE user_id = $1`,
		userID,
	).Scan(&sum)
	return sum, err
}

// WeeklyTotals returns only the weeks of the window that have workouts, ascending.
func (r *Repo) WeeklyTotals(ctx context.Context, userID int, window Window) (_ []WeekTotals, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dashboard.weeklytotals")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT
			to_char(date_trunc('week', workout_date), 'YYYY-MM-DD') AS week_start,
			COUNT(*),
			COALESCE(SUM(calories), 0)::bigint
		FROM workout
		WHERE user_id = $1
			AND workout_date >= $2::date
			AND workout_date < $3::date
		GROUP BY week_start
		ORDER BY week_start ASC`,
		userID, window.Start, window.End,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var weeks []WeekTotals
	for rows.Next() {
		var wt WeekTotals
		if err := rows.Scan(&wt.WeekStart, &wt.Workouts, &wt.Calories); err != nil {
			return nil, err
		}
		weeks = append(weeks, wt)
	}
	return weeks, rows.Err()
}

// WeekdayCounts returns workout counts in the window indexed Monday=0 ... Sunday=6.
func (r *Repo) WeekdayCounts(ctx context.Context, userID int, window Window) (_ [7]int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dashboard.weekdaycounts")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var counts [7]int
	rows, err := r.db.Query(ctx, `
		SELECT EXTRACT(ISODOW FROM workout_date)::int AS dow, COUNT(*)
		FROM workout
		WHERE user_id = $1
			AND workout_date >= $2::date
			AND workout_date < $3::date
		GROUP BY dow`,
		userID, window.Start, window.End,
	)
	if err != nil {
		return counts, err
	}
	defer rows.Close()

	for rows.Next() {
		var isoDow, count int
		if err := rows.Scan(&isoDow, &count); err != nil {
			return counts, err
		}
		if isoDow < 1 || isoDow > 7 {
			return counts, fmt.Errorf("unexpected iso weekday: %d", isoDow)
		}
		counts[isoDow-1] = count
	}
	return counts, rows.Err()
}

func (r *Repo) GoalStatusCounts(ctx context.Context, userID int) (_ map[goals.Status]int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dashboard.goalstatuscounts")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT status, COUNT(*)
		FROM goal
		WHERE user_id = $1
		GROUP BY status`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[goals.Status]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[goals.Status(status)] = count
	}
	return counts, rows.Err()
}

func (r *Repo) UserSummary(ctx context.Context, userID int) (_ UserSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dashboard.usersummary")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var u UserSummary
	err = r.db.QueryRow(ctx, `
		SELECT COALESCE(first_name, ''), username
		FROM users
		WHERE id = $1`,
		userID,
	).Scan(&u.FirstName, &u.Username)
	if errors.Is(err, pgx.ErrNoRows) {
		return UserSummary{}, nil
	}
	return u, err
}

func (r *Repo) ActiveGoals(ctx context.Context, userID int) (_ []ActiveGoal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dashboard.activegoals")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT id, description, to_char(target_date, 'YYYY-MM-DD'), status
		FROM goal
		WHERE user_id = $1 AND status = $2
		ORDER BY target_date ASC, id ASC`,
		userID, string(goals.StatusActive),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var active []ActiveGoal
	for rows.Next() {
		var g ActiveGoal
		var status string
		if err := rows.Scan(&g.ID, &g.Description, &g.TargetDate, &status); err != nil {
			return nil, err
		}
		g.Status = goals.Status(status)
		active = append(active, g)
	}
	return active, rows.Err()
}
