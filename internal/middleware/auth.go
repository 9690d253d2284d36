package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=middleware_test

type tokenVerifier interface {
	Verify(token string) (auth.Identity, error)
}

type revocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type AuthMiddlewareHandler struct {
	tokens       tokenVerifier
	revocations  revocationChecker
	allowedPaths map[string]bool
}

// NewAuthMiddlewareHandler creates the bearer token check. revocations may be nil,
// then logged out tokens stay valid until they expire.
func NewAuthMiddlewareHandler(tokens tokenVerifier, revocations revocationChecker) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		tokens:      tokens,
		revocations: revocations,
		allowedPaths: map[string]bool{
			// misc handler:
			"/":        true,
			"/version": true,
			"/quotes":  true,

			// credentials:
			"/auth/register": true,
			"/auth/login":    true,
			"/forgot/reset":  true,
		},
	}
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PUT, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.allowedPaths[r.URL.Path] {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			token, err := auth.BearerToken(r.Header.Get("Authorization"))
			if err != nil {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				pkg.WriteJSONMessage(w, http.StatusUnauthorized, "No token provided")
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			identity, err := h.tokens.Verify(token)
			if err != nil {
				msg := "Invalid token"
				if errors.Is(err, auth.ErrExpiredToken) {
					msg = "Token expired"
				}
				log.Tracef("[invalid token] [auth middleware] unauthorized => %s: %s", r.URL.Path, err)
				pkg.WriteJSONMessage(w, http.StatusUnauthorized, msg)
				span.SetStatus(codes.Error, "invalid-token")
				return
			}

			if h.revocations != nil {
				revoked, err := h.revocations.IsRevoked(ctx, identity.TokenID)
				switch {
				case err != nil:
					// fail open, the token signature and expiry were already checked
					log.Warnf("[auth middleware] check token revocation: %s", err)
				case revoked:
					log.Tracef("[revoked token] [auth middleware] unauthorized => %s", r.URL.Path)
					pkg.WriteJSONMessage(w, http.StatusUnauthorized, "Token revoked")
					span.SetStatus(codes.Error, "revoked-token")
					return
				}
			}

			span.SetAttributes(attribute.Int("user.id", identity.UserID))
			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(ctx, identity)))
		})
	}
}
