package misc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	DefaultQuotesURL = "https://api.adviceslip.com/advice"
	FallbackQuote    = "Stay motivated!"
)

var ErrNoAdvice = errors.New("quote response without advice")

type adviceSlipResponse struct {
	Slip struct {
		ID     int    `json:"id"`
		Advice string `json:"advice"`
	} `json:"slip"`
}

// QuoteClient fetches a single piece of advice from the adviceslip API.
// No retries and no caching; every call is bounded by the client timeout.
type QuoteClient struct {
	httpClient *http.Client
	url        string
}

func NewQuoteClient(url string, timeout time.Duration) *QuoteClient {
	if url == "" {
		url = DefaultQuotesURL
	}
	return &QuoteClient{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport.(*http.Transport).Clone()),
		},
		url: url,
	}
}

func (c *QuoteClient) Advice(ctx context.Context) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "quotes.advice")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("get advice: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("get advice: unexpected status %d", resp.StatusCode)
	}

	var slip adviceSlipResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&slip); err != nil {
		return "", fmt.Errorf("decode advice: %w", err)
	}

	advice := strings.TrimSpace(slip.Slip.Advice)
	if advice == "" {
		return "", ErrNoAdvice
	}
	return advice, nil
}

func (c *QuoteClient) Close() {
	c.httpClient.CloseIdleConnections()
}
