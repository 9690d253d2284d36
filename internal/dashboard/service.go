package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/goals"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=dashboard_test

type aggregatesStore interface {
	CountWorkouts(ctx context.Context, userID int) (int, error)
	SumCalories(ctx context.Context, userID int) (int, error)
	WeeklyTotals(ctx context.Context, userID int, window Window) ([]WeekTotals, error)
	WeekdayCounts(ctx context.Context, userID int, window Window) ([7]int, error)
	GoalStatusCounts(ctx context.Context, userID int) (map[goals.Status]int, error)
	UserSummary(ctx context.Context, userID int) (UserSummary, error)
	ActiveGoals(ctx context.Context, userID int) ([]ActiveGoal, error)
}

type Service struct {
	store   aggregatesStore
	metrics *metrics.Manager
	now     func() time.Time
}

// NewService creates the dashboard service. now is the clock the trailing window is
// computed from; nil means time.Now.
func NewService(store aggregatesStore, metricsManager *metrics.Manager, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		store:   store,
		metrics: metricsManager,
		now:     now,
	}
}

// Dashboard runs all aggregates concurrently. The first failing one cancels the
// others and fails the whole dashboard; partial results are never returned.
func (s *Service) Dashboard(ctx context.Context, userID int) (_ *Response, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.dashboard.build")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("user.id", userID))

	defer func(begin time.Time) {
		s.metrics.HistogramDashboardLatency.Observe(time.Since(begin).Seconds())
	}(time.Now())

	window := TrailingWindow(s.now(), TrailingWeeks)

	var (
		totalWorkouts int
		totalCalories int
		weekly        []WeekTotals
		weekdays      [7]int
		statusCounts  map[goals.Status]int
		user          UserSummary
		activeGoals   []ActiveGoal
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		totalWorkouts, err = s.store.CountWorkouts(gCtx, userID)
		return wrap("count workouts", err)
	})
	g.Go(func() (err error) {
		totalCalories, err = s.store.SumCalories(gCtx, userID)
		return wrap("sum calories", err)
	})
	g.Go(func() (err error) {
		weekly, err = s.store.WeeklyTotals(gCtx, userID, window)
		return wrap("weekly totals", err)
	})
	g.Go(func() (err error) {
		weekdays, err = s.store.WeekdayCounts(gCtx, userID, window)
		return wrap("weekday counts", err)
	})
	g.Go(func() (err error) {
		statusCounts, err = s.store.GoalStatusCounts(gCtx, userID)
		return wrap("goal status counts", err)
	})
	g.Go(func() (err error) {
		user, err = s.store.UserSummary(gCtx, userID)
		return wrap("user summary", err)
	})
	g.Go(func() (err error) {
		activeGoals, err = s.store.ActiveGoals(gCtx, userID)
		return wrap("active goals", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	weeks := denseWeeks(window, weekly)
	completion := goalCompletionFrom(statusCounts)
	if activeGoals == nil {
		activeGoals = []ActiveGoal{}
	}

	return &Response{
		Success:          true,
		User:             user,
		TotalWorkouts:    totalWorkouts,
		TotalCalories:    totalCalories,
		ActiveGoals:      completion.InProgress,
		WeeklyProgress:   weeks,
		Progress:         progressFrom(weeks),
		WorkoutFrequency: weekdays,
		GoalCompletion:   completion,
		Goals:            activeGoals,
	}, nil
}

func wrap(aggregate string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", aggregate, err)
}
