package dashboard

import (
	"context"
	"net/http"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=dashboard_test

type dashboardBuilder interface {
	Dashboard(ctx context.Context, userID int) (*Response, error)
}

type Handler struct {
	service dashboardBuilder
}

func NewHandler(service dashboardBuilder) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/dashboard", h.HandleDashboard).Methods("GET", "OPTIONS").Name("dashboard")
}

func (h *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard")
	defer span.End()

	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		pkg.WriteJSONMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	resp, err := h.service.Dashboard(ctx, identity.UserID)
	if err != nil {
		log.Errorf("dashboard for user %d: %s", identity.UserID, err)
		pkg.WriteJSON(w, http.StatusInternalServerError, ErrorResponse{
			Success: false,
			Message: "Error fetching dashboard data",
		})
		return
	}

	pkg.WriteJSON(w, http.StatusOK, resp)
}
