package workouts

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	Add(ctx context.Context, userID int, workout NewWorkout) (int, error)
	List(ctx context.Context, userID int) ([]Workout, error)
	Get(ctx context.Context, userID, id int) (*Workout, error)
	Update(ctx context.Context, userID, id int, update Update) error
	Delete(ctx context.Context, userID, id int) error
}

type activityRecorder interface {
	Record(ctx context.Context, entry activity.Entry)
}

type Handler struct {
	repo     workoutsRepo
	activity activityRecorder
	metrics  *metrics.Manager
}

func NewHandler(
	repo workoutsRepo,
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
	workoutsRouter := mainRouter.PathPrefix("/workouts").Subrouter()
	workoutsRouter.HandleFunc("/add", h.HandleAdd).Methods("POST", "OPTIONS").Name("add-workout")
	workoutsRouter.HandleFunc("", h.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	workoutsRouter.HandleFunc("/{id}", h.HandleGet).Methods("GET", "OPTIONS").Name("get-workout")
	workoutsRouter.HandleFunc("/{id}", h.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-workout")
	workoutsRouter.HandleFunc("/{id}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout")
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

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.add")
	defer span.End()

	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		pkg.WriteJSONMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req AddRequest
	if err := pkg.DecodeJSONBody(w, r, &req); err != nil {
		log.Tracef("add workout, decode body: %s", err)
		pkg.WriteJSONMessage(w, http.StatusBadRequest, ErrMissingFields.Message)
		return
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		pkg.WriteJSONMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.repo.Add(ctx, identity.UserID, req.ToNewWorkout())
	if err != nil {
		log.Errorf("add workout for user %d: %s", identity.UserID, err)
		pkg.WriteJSONMessage(w, http.StatusInternalServerError, "Error while adding workout")
		return
	}

	h.metrics.CounterWorkoutsAdded.Inc()
	h.record(ctx, r, identity.UserID, activity.TypeWorkoutAdded, fmt.Sprintf("%s workout logged", req.WorkoutType))

	log.Debugf("workout %d added for user %d", id, identity.UserID)
	pkg.WriteJSONMessage(w, http.StatusCreated, "Workout added successfully")
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		pkg.WriteJSONMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	workouts, err := h.repo.List(ctx, identity.UserID)
	if err != nil {
		log.Errorf("list workouts for user %d: %s", identity.UserID, err)
		pkg.WriteJSONMessage(w, http.StatusInternalServerError, "Error retrieving workouts")
		return
	}
	if workouts == nil {
		workouts = []Workout{}
	}

	pkg.WriteJSON(w, http.StatusOK, workouts)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		pkg.WriteJSONMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := pkg.PathID(r, "id")
	if err != nil {
		pkg.WriteJSONMessage(w, http.StatusBadRequest, "Invalid workout id")
		return
	}

	workout, err := h.repo.Get(ctx, identity.UserID, id)
	if err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			pkg.WriteJSONMessage(w, http.StatusNotFound, "Workout not found")
			return
		}
		log.Errorf("get workout %d for user %d: %s", id, identity.UserID, err)
		pkg.WriteJSONMessage(w, http.StatusInternalServerError, "Error retrieving workout")
		return
	}

	pkg.WriteJSON(w, http.StatusOK, workout)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.update")
	defer span.End()

	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		pkg.WriteJSONMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := pkg.PathID(r, "id")
	if err != nil {
		pkg.WriteJSONMessage(w, http.StatusBadRequest, "Invalid workout id")
		return
	}

	var req UpdateRequest
	if err := pkg.DecodeJSONBody(w, r, &req); err != nil {
		log.Tracef("update workout, decode body: %s", err)
		pkg.WriteJSONMessage(w, http.StatusBadRequest, ErrNoFields.Message)
		return
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		pkg.WriteJSONMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.repo.Update(ctx, identity.UserID, id, req.ToUpdate()); err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			pkg.WriteJSONMessage(w, http.StatusNotFound, "Workout not found or unauthorized")
			return
		}
		log.Errorf("update workout %d for user %d: %s", id, identity.UserID, err)
		pkg.WriteJSONMessage(w, http.StatusInternalServerError, "Error updating workout")
		return
	}

	h.record(ctx, r, identity.UserID, activity.TypeWorkoutUpdated, fmt.Sprintf("Workout ID %d updated", id))
	pkg.WriteJSONMessage(w, http.StatusOK, "Workout updated successfully")
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		pkg.WriteJSONMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := pkg.PathID(r, "id")
	if err != nil {
		pkg.WriteJSONMessage(w, http.StatusBadRequest, "Invalid workout id")
		return
	}

	if err := h.repo.Delete(ctx, identity.UserID, id); err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			pkg.WriteJSONMessage(w, http.StatusNotFound, "Workout not found or unauthorized")
			return
		}
		log.Errorf("delete workout %d for user %d: %s", id, identity.UserID, err)
		pkg.WriteJSONMessage(w, http.StatusInternalServerError, "Error deleting workout")
		return
	}

	h.record(ctx, r, identity.UserID, activity.TypeWorkoutDeleted, fmt.Sprintf("Workout ID %d deleted", id))
	pkg.WriteJSONMessage(w, http.StatusOK, "Workout deleted successfully")
}
