package misc

import (
	"context"
	"net/http"

	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type quoteSource interface {
	Advice(ctx context.Context) (string, error)
}

type QuoteResponse struct {
	Quote string `json:"quote"`
}

type Handler struct {
	quotes      quoteSource
	versionInfo string
	metrics     *metrics.Manager
}

func NewHandler(
	quotes quoteSource,
	versionInfo string,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		quotes:      quotes,
		versionInfo: versionInfo,
		metrics:     metricsManager,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "POST", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")
	mainRouter.HandleFunc("/quotes", handler.handleGetQuote).Methods("GET", "OPTIONS").Name("quotes")
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "Basic checks done, app is running")
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}

// handleGetQuote always answers 200; upstream failures fall back to a fixed quote.
func (handler *Handler) handleGetQuote(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.quote")
	defer span.End()

	quote, err := handler.quotes.Advice(ctx)
	if err != nil {
		log.Warnf("fetch quote, using fallback: %s", err)
		handler.metrics.CounterQuoteFallbacks.Inc()
		quote = FallbackQuote
	}
	span.SetAttributes(attribute.Bool("quote.fallback", err != nil))

	pkg.WriteJSON(w, http.StatusOK, QuoteResponse{Quote: quote})
}
