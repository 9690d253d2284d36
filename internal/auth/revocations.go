package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
)

const revokedKeyPrefix = "revoked-token:"

var ErrTokenIDMissing = errors.New("token id missing")

// RevocationStore keeps the ids of logged out tokens in redis until they would
// have expired anyway.
type RevocationStore struct {
	redisClient *redis.Client
	now         func() time.Time
}

func NewRevocationStore(redisClient *redis.Client) *RevocationStore {
	return &RevocationStore{
		redisClient: redisClient,
		now:         time.Now,
	}
}

func (s *RevocationStore) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.auth.revoke")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if tokenID == "" {
		return ErrTokenIDMissing
	}

	ttl := expiresAt.Sub(s.now())
	if ttl <= 0 {
		// already expired, verification rejects it on its own
		return nil
	}

	if err := s.redisClient.Set(ctx, revokedKeyPrefix+tokenID, expiresAt.Unix(), ttl.Round(time.Second)+time.Second).Err(); err != nil {
		return fmt.Errorf("set revoked token: %w", err)
	}
	return nil
}

func (s *RevocationStore) IsRevoked(ctx context.Context, tokenID string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.auth.isrevoked")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if tokenID == "" {
		return false, ErrTokenIDMissing
	}

	count, err := s.redisClient.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("check revoked token: %w", err)
	}
	return count > 0, nil
}
