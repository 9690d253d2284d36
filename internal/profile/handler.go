package profile

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/fittrack/internal/activity"
	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=profile_test

type profileRepo interface {
	Get(ctx context.Context, userID int) (*Profile, error)
	Update(ctx context.Context, userID int, update Update) error
}

type activityRecorder interface {
	Record(ctx context.Context, entry activity.Entry)
}

type Handler struct {
	repo     profileRepo
	activity activityRecorder
}

func NewHandler(repo profileRepo, activityRecorder activityRecorder) *Handler {
	return &Handler{
		repo:     repo,
		activity: activityRecorder,
	}
}

func (h *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/profile", h.HandleGet).Methods("GET", "OPTIONS").Name("get-profile")
	mainRouter.HandleFunc("/profile/me", h.HandleGet).Methods("GET", "OPTIONS").Name("get-profile-me")
	mainRouter.HandleFunc("/profile", h.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-profile")
	mainRouter.HandleFunc("/profile/update", h.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-profile-legacy")
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.get")
	defer span.End()

	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		pkg.WriteJSONMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	p, err := h.repo.Get(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			pkg.WriteJSONMessage(w, http.StatusNotFound, "Profile not found")
			return
		}
		log.Errorf("get profile for user %d: %s", identity.UserID, err)
		pkg.WriteJSONMessage(w, http.StatusInternalServerError, "Error retrieving profile")
		return
	}

	pkg.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.update")
	defer span.End()

	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		pkg.WriteJSONMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req UpdateRequest
	if err := pkg.DecodeJSONBody(w, r, &req); err != nil {
		log.Tracef("update profile, decode body: %s", err)
		pkg.WriteJSONMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		pkg.WriteJSONMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	update := req.ToUpdate()
	if req.Password != nil {
		hash, err := pkg.HashPassword(*req.Password)
		if err != nil {
			log.Errorf("hash password for user %d: %s", identity.UserID, err)
			pkg.WriteJSONMessage(w, http.StatusInternalServerError, "Error updating profile")
			return
		}
		update.PasswordHash = &hash
	}

	if err := h.repo.Update(ctx, identity.UserID, update); err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			pkg.WriteJSONMessage(w, http.StatusNotFound, "Profile not found")
			return
		}
		log.Errorf("update profile for user %d: %s", identity.UserID, err)
		pkg.WriteJSONMessage(w, http.StatusInternalServerError, "Error updating profile")
		return
	}

	description := "Profile updated"
	if update.PasswordHash != nil {
		description = "Profile updated, password changed"
	}
	ip, _ := pkg.ReadUserIP(r)
	h.activity.Record(ctx, activity.Entry{
		UserID:      identity.UserID,
		Type:        activity.TypeProfileUpdated,
		Description: description,
		IPAddress:   ip,
	})

	pkg.WriteJSONMessage(w, http.StatusOK, "Profile updated successfully")
}
