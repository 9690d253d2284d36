package goals

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/2beens/fittrack/internal/activity"
	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=goals_test

type goalsRepo interface {
	Add(ctx context.Context, userID int, goal NewGoal) (int, error)
	List(ctx context.Context, userID int) ([]Goal, error)
	Get(ctx context.Context, userID, id int) (*Goal, error)
	Update(ctx context.Context, userID, id int, update Update) error
	Delete(ctx context.Context, userID, id int) error
}

type activityRecorder interface {
	Record(ctx context.Context, entry activity.Entry)
}

type Handler struct {
	repo     goalsRepo
	activity activityRecorder
	metrics  *metrics.Manager
}

func NewHandler(
	repo goalsRepo,
	activityRecorder activityRecorder,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		repo:     repo,
		activity: activityRecorder,
		metrics:  metricsManager,
	}
}

func (h *Handler) SetupRoutes(mainRouter *mux.Router) {
	goalsRouter := mainRouter.PathPrefix("/goals").Subrouter()
	goalsRouter.HandleFunc("/add", h.HandleAdd).Methods("POST", "OPTIONS").Name("add-goal")
	goalsRouter.HandleFunc("", h.HandleList).Methods("GET", "OPTIONS").Name("list-goals")
	goalsRouter.HandleFunc("/{id}", h.HandleGet).Methods("GET", "OPTIONS").Name("get-goal")
	goalsRouter.HandleFunc("/{id}", h.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-goal")
	goalsRouter.HandleFunc("/{id}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-goal")
}

func (h *Handler) record(ctx context.Context, r *http.Request, userID int, activityType activity.Type, description string) {
	ip, _ := pkg.ReadUserIP(r)
	h.activity.Record(ctx, activity.Entry{
		UserID:      userID,
		Type:        activityType,
		Description: description,
		IPAddress:   ip,
	})
}

// requestTarget resolves the caller and, for /goals/{id} routes, the goal id.
// It writes the error response itself and reports false when the request cannot proceed.
func requestTarget(w http.ResponseWriter, r *http.Request, withID bool) (auth.Identity, int, bool) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		pkg.WriteJSONMessage(w, http.StatusUnauthorized, "Unauthorized")
		return auth.Identity{}, 0, false
	}
	if !withID {
		return identity, 0, true
	}
	id, err := pkg.PathID(r, "id")
	if err != nil {
		pkg.WriteJSONMessage(w, http.StatusBadRequest, "Invalid goal id")
		return auth.Identity{}, 0, false
	}
	return identity, id, true
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.add")
	defer span.End()

	identity, _, ok := requestTarget(w, r, false)
	if !ok {
		return
	}

	var req AddRequest
	if err := pkg.DecodeJSONBody(w, r, &req); err != nil {
		log.Tracef("add goal, decode body: %s", err)
		pkg.WriteJSONMessage(w, http.StatusBadRequest, ErrMissingAddFields.Message)
		return
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		pkg.WriteJSONMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.repo.Add(ctx, identity.UserID, req.ToNewGoal())
	if err != nil {
		log.Errorf("add goal for user %d: %s", identity.UserID, err)
		pkg.WriteJSONMessage(w, http.StatusInternalServerError, "Error adding goal")
		return
	}

	h.metrics.CounterGoalsAdded.Inc()
	h.record(ctx, r, identity.UserID, activity.TypeGoalAdded, fmt.Sprintf("Goal: %s", req.Description))

	log.Debugf("goal %d added for user %d", id, identity.UserID)
	pkg.WriteJSONMessage(w, http.StatusCreated, "Goal added successfully")
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.list")
	defer span.End()

	identity, _, ok := requestTarget(w, r, false)
	if !ok {
		return
	}

	goals, err := h.repo.List(ctx, identity.UserID)
	if err != nil {
		log.Errorf("list goals for user %d: %s", identity.UserID, err)
		pkg.WriteJSONMessage(w, http.StatusInternalServerError, "Error fetching goals")
		return
	}
	if goals == nil {
		goals = []Goal{}
	}

	pkg.WriteJSON(w, http.StatusOK, goals)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.get")
	defer span.End()

	identity, id, ok := requestTarget(w, r, true)
	if !ok {
		return
	}

	goal, err := h.repo.Get(ctx, identity.UserID, id)
	if err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			pkg.WriteJSONMessage(w, http.StatusNotFound, "Goal not found")
			return
		}
		log.Errorf("get goal %d for user %d: %s", id, identity.UserID, err)
		pkg.WriteJSONMessage(w, http.StatusInternalServerError, "Error fetching goal")
		return
	}

	pkg.WriteJSON(w, http.StatusOK, goal)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.update")
	defer span.End()

	identity, id, ok := requestTarget(w, r, true)
	if !ok {
		return
	}

	var req UpdateRequest
	if err := pkg.DecodeJSONBody(w, r, &req); err != nil {
		log.Tracef("update goal, decode body: %s", err)
		pkg.WriteJSONMessage(w, http.StatusBadRequest, ErrMissingUpdateFields.Message)
		return
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		pkg.WriteJSONMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.repo.Update(ctx, identity.UserID, id, req.ToUpdate()); err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			pkg.WriteJSONMessage(w, http.StatusNotFound, "Goal not found or unauthorized")
			return
		}
		log.Errorf("update goal %d for user %d: %s", id, identity.UserID, err)
		pkg.WriteJSONMessage(w, http.StatusInternalServerError, "Error updating goal")
		return
	}

	h.record(ctx, r, identity.UserID, activity.TypeGoalUpdated, fmt.Sprintf("Goal ID %d updated", id))
	pkg.WriteJSONMessage(w, http.StatusOK, "Goal updated successfully")
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.delete")
	defer span.End()

	identity, id, ok := requestTarget(w, r, true)
	if !ok {
		return
	}

	if err := h.repo.Delete(ctx, identity.UserID, id); err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			pkg.WriteJSONMessage(w, http.StatusNotFound, "Goal not found or unauthorized")
			return
		}
		log.Errorf("delete goal %d for user %d: %s", id, identity.UserID, err)
		pkg.WriteJSONMessage(w, http.StatusInternalServerError, "Error deleting goal")
		return
	}

	h.record(ctx, r, identity.UserID, activity.TypeGoalDeleted, fmt.Sprintf("Goal ID %d deleted", id))
	pkg.WriteJSONMessage(w, http.StatusOK, "Goal deleted successfully")
}
