package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("email or username already registered")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Create inserts the user and, when body metrics are given, seeds the profile row in the same transaction.
func (r *Repo) Create(ctx context.Context, user NewUser) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.create")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
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

	var id int
	err = tx.QueryRow(ctx, `
		INSERT INTO users (email, username, password, first_name, last_name, phone, age, gender)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		user.Email, user.Username, user.PasswordHash,
		user.FirstName, user.LastName, user.Phone, user.Age, user.Gender,
	).Scan(&id)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return 0, ErrUserExists
		}
		return 0, err
	}

	if user.HeightCm != nil || user.WeightKg != nil {
		_, err = tx.Exec(ctx, `
			INSERT INTO user_profile (user_id, height_cm, weight_kg, age, gender)
			VALUES ($1, $2, $3, $4, $5)`,
			id, user.HeightCm, user.WeightKg, user.Age, user.Gender,
		)
		if err != nil {
			return 0, fmt.Errorf("seed profile: %w", err)
		}
	}

	span.SetAttributes(attribute.Int("user.id", id))
	return id, nil
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getbyemail")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	u := &User{}
	err = r.db.QueryRow(ctx, `
		SELECT id, email, username, password, first_name, last_name, phone, age, gender, created_at
		FROM users
		WHERE email = $1`,
		email,
	).Scan(
		&u.ID, &u.Email, &u.Username, &u.PasswordHash,
		&u.FirstName, &u.LastName, &u.Phone, &u.Age, &u.Gender, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *Repo) UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.updatepassword")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var id int
	err = r.db.QueryRow(ctx, `
		UPDATE users SET password = $1
		WHERE email = $2
		RETURNING id`,
		passwordHash, email,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}
	return id, nil
}
