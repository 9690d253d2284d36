package activity

import (
	"context"
	"errors"

	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, entry Entry) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activity.add")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.Int("user.id", entry.UserID),
		attribute.String("activity.type", string(entry.Type)),
	)

	if entry.UserID <= 0 || entry.Type == "" {
		return errors.New("activity user id or type empty")
	}

	var fingerprint, tokenType *string
	var tokenExpiry any
	if entry.Token != nil {
		fingerprint = &entry.Token.Fingerprint
		tokenType = &entry.Token.Type
		tokenExpiry = entry.Token.ExpiresAt
	}
	var ip *string
	if entry.IPAddress != "" {
		ip = &entry.IPAddress
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO user_activity (
			user_id, activity_type, activity_description,
			token_fingerprint, token_type, token_expiry,
			ip_address, activity_timestamp
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		entry.UserID, string(entry.Type), entry.Description,
		fingerprint, tokenType, tokenExpiry,
		ip, entry.Timestamp,
	)
	return err
}
