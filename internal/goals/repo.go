package goals

import (
	"context"
	"errors"

	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrGoalNotFound = errors.New("goal not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

const selectColumns = `id, description, to_char(target_date, 'YYYY-MM-DD'), status, created_at`

func scanGoal(row pgx.Row) (Goal, error) {
	var g Goal
	err := row.Scan(&g.ID, &g.Description, &g.TargetDate, &g.Status, &g.CreatedAt)
	return g, err
}

func (r *Repo) Add(ctx context.Context, userID int, goal NewGoal) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.add")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if goal.Status == "" {
		goal.Status = StatusActive
	}

	var id int
	err = r.db.QueryRow(ctx, `
		INSERT INTO goal (user_id, description, target_date, status)
		VALUES ($1, $2, $3::date, $4)
		RETURNING id`,
		userID, goal.Description, goal.TargetDate, string(goal.Status),
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	span.SetAttributes(attribute.Int("goal.id", id))
	return id, nil
}

func (r *Repo) List(ctx context.Context, userID int) (_ []Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT `+selectColumns+`
		FROM goal
		WHERE user_id = $1
		ORDER BY target_date ASC, id ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	goals := []Goal{}
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *Repo) Get(ctx context.Context, userID, id int) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	g, err := scanGoal(r.db.QueryRow(ctx, `
		SELECT `+selectColumns+`
		FROM goal
		WHERE id = $1 AND user_id = $2`,
		id, userID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}
	return &g, nil
}

func (r *Repo) Update(ctx context.Context, userID, id int, update Update) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.update")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var status *string
	if update.Status != nil {
		s := string(*update.Status)
		status = &s
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE goal SET
			description = COALESCE($3, description),
			target_date = COALESCE($4::date, target_date),
			status = COALESCE($5, status)
		WHERE id = $1 AND user_id = $2`,
		id, userID, update.Description, update.TargetDate, status,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrGoalNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	tag, err := r.db.Exec(ctx, `DELETE FROM goal WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrGoalNotFound
	}
	return nil
}
