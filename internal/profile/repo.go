package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fittrack/internal/telemetry/tracing"

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
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	p := &Profile{}
	err = r.db.QueryRow(ctx, `
		SELECT
			u.first_name, u.last_name, u.username, u.email, u.phone,
			COALESCE(p.age, u.age),
			COALESCE(p.gender, u.gender),
			p.height_cm::float8, p.weight_kg::float8
		FROM users u
		LEFT JOIN user_profile p ON p.user_id = u.id
		WHERE u.id = $1`,
		userID,
	).Scan(
		&p.FirstName, &p.LastName, &p.Username, &p.Email, &p.Phone,
		&p.Age, &p.Gender, &p.Height, &p.Weight,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return p, nil
}

// Update writes the new password and identity fields to the user row, then upserts the
// profile row. Fields left nil keep their stored values. All of it runs in one transaction.
func (r *Repo) Update(ctx context.Context, userID int, update Update) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.update")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.Bool("password.changed", update.PasswordHash != nil),
	)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("rollback: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	// also proves the user still exists before the profile row references it
	tag, err := tx.Exec(ctx, `
		UPDATE users SET
			password = COALESCE($2, password),
			first_name = COALESCE($3, first_name),
			last_name = COALESCE($4, last_name),
			phone = COALESCE($5, phone)
		WHERE id = $1`,
		userID, update.PasswordHash, update.FirstName, update.LastName, update.Phone,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO user_profile (user_id, height_cm, weight_kg, age, gender, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			height_cm = COALESCE(EXCLUDED.height_cm, user_profile.height_cm),
			weight_kg = COALESCE(EXCLUDED.weight_kg, user_profile.weight_kg),
			age = COALESCE(EXCLUDED.age, user_profile.age),
			gender = COALESCE(EXCLUDED.gender, user_profile.gender),
			updated_at = NOW()`,
		userID, update.Height, update.Weight, update.Age, update.Gender,
	)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}

	return nil
}
