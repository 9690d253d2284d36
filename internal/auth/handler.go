package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/fittrack/internal/activity"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=auth_test

type service interface {
	Register(ctx context.Context, req RegisterRequest, meta RequestMeta) (int, error)
	Login(ctx context.Context, req LoginRequest, meta RequestMeta) (*LoginResponse, error)
	ResetPassword(ctx context.Context, req ResetPasswordRequest, meta RequestMeta) error
	Logout(ctx context.Context, identity Identity, meta RequestMeta) error
}

type Handler struct {
	service service
}

func NewHandler(service service) *Handler {
	return &Handler{
		service: service,
	}
}

// SetupRoutes registers the public credential routes. limiter guards login and
// password reset against brute forcing.
func (h *Handler) SetupRoutes(mainRouter *mux.Router, limiter mux.MiddlewareFunc) {
	if limiter == nil {
		limiter = func(next http.Handler) http.Handler { return next }
	}

	mainRouter.HandleFunc("/auth/register", h.HandleRegister).Methods("POST", "OPTIONS").Name("register")
	mainRouter.Handle("/auth/login", limiter(http.HandlerFunc(h.HandleLogin))).Methods("POST", "OPTIONS").Name("login")
	mainRouter.Handle("/forgot/reset", limiter(http.HandlerFunc(h.HandleResetPassword))).Methods("POST", "OPTIONS").Name("reset-password")
	mainRouter.HandleFunc("/auth/logout", h.HandleLogout).Methods("POST", "OPTIONS").Name("logout")
}

func requestMeta(r *http.Request) RequestMeta {
	ip, err := pkg.ReadUserIP(r)
	if err != nil {
		log.Tracef("read user ip: %s", err)
	}
	return RequestMeta{IPAddress: ip}
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.register")
	defer span.End()

	var req RegisterRequest
	if err := pkg.DecodeJSONBody(w, r, &req); err != nil {
		log.Tracef("register, decode body: %s", err)
		pkg.WriteJSONMessage(w, http.StatusBadRequest, ErrMissingRegisterFields.Message)
		return
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		pkg.WriteJSONMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	userID, err := h.service.Register(ctx, req, requestMeta(r))
	if err != nil {
		if errors.Is(err, ErrUserExists) {
			pkg.WriteJSONMessage(w, http.StatusConflict, "Email or username already registered")
			return
		}
		log.Errorf("register user: %s", err)
		pkg.WriteJSONMessage(w, http.StatusInternalServerError, "Server error during registration")
		return
	}

	log.Debugf("new user registered: %d", userID)
	pkg.WriteJSON(w, http.StatusCreated, RegisterResponse{
		Message: "User registered successfully",
		UserID:  userID,
	})
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.login")
	defer span.End()

	var req LoginRequest
	if err := pkg.DecodeJSONBody(w, r, &req); err != nil {
		log.Tracef("login, decode body: %s", err)
		pkg.WriteJSONMessage(w, http.StatusBadRequest, ErrMissingLoginFields.Message)
		return
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		pkg.WriteJSONMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.service.Login(ctx, req, requestMeta(r))
	if err != nil {
		if errors.Is(err, ErrWrongCredentials) {
			pkg.WriteJSONMessage(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		log.Errorf("login: %s", err)
		pkg.WriteJSONMessage(w, http.StatusInternalServerError, "Server error during login")
		return
	}

	pkg.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.resetpassword")
	defer span.End()

	var req ResetPasswordRequest
	if err := pkg.DecodeJSONBody(w, r, &req); err != nil {
		pkg.WriteJSONMessage(w, http.StatusBadRequest, ErrMissingResetFields.Message)
		return
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		pkg.WriteJSONMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.ResetPassword(ctx, req, requestMeta(r)); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			pkg.WriteJSONMessage(w, http.StatusNotFound, "User not found.")
			return
		}
		log.Errorf("reset password: %s", err)
		pkg.WriteJSONMessage(w, http.StatusInternalServerError, "Server error. Please try again later.")
		return
	}

	pkg.WriteJSONMessage(w, http.StatusOK, "Password updated successfully.")
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.logout")
	defer span.End()

	identity, ok := IdentityFromContext(ctx)
	if !ok {
		pkg.WriteJSONMessage(w, http.StatusUnauthorized, "No token provided")
		return
	}

	meta := requestMeta(r)
	if token, err := BearerToken(r.Header.Get("Authorization")); err == nil {
		meta.TokenFingerprint = activity.Fingerprint(token)
	}

	if err := h.service.Logout(ctx, identity, meta); err != nil {
		log.Errorf("logout user %d: %s", identity.UserID, err)
		pkg.WriteJSONMessage(w, http.StatusInternalServerError, "Server error during logout")
		return
	}

	pkg.WriteJSONMessage(w, http.StatusOK, "Logged out successfully")
}
