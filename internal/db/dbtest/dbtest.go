// Package dbtest sets up a migrated postgres pool for repo tests run with the
// integration_test build tag.
package dbtest

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/2beens/fittrack/internal/db"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func Params() db.NewDBPoolParams {
	return db.NewDBPoolParams{
		DBHost:     envOr("POSTGRES_HOST", "localhost"),
		DBPort:     envOr("POSTGRES_PORT", "5432"),
		DBUser:     envOr("POSTGRES_USER", "postgres"),
		DBPassword: os.Getenv("POSTGRES_PASSWORD"),
		DBName:     envOr("POSTGRES_DB", "fittrack_test"),
		SSLMode:    "disable",
	}
}

// Pool returns a pool to a freshly migrated and truncated database.
func Pool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	params := Params()
	t.Logf("using postgres host: %s:%s", params.DBHost, params.DBPort)
	require.NoError(t, db.RunMigrations(params))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := db.NewDBPool(ctx, params)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `TRUNCATE user_activity, goal, workout, user_profile, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	return pool
}

// CreateUser inserts a bare user row and returns its id.
func CreateUser(t *testing.T, pool *pgxpool.Pool, username string) int {
	t.Helper()
	var id int
	err := pool.QueryRow(context.Background(), `
		INSERT INTO users (email, username, password, first_name)
		VALUES ($1, $2, 'x', $3) RETURNING id`,
		username+"@example.com", username, "First "+username,
	).Scan(&id)
	require.NoError(t, err)
	return id
}
