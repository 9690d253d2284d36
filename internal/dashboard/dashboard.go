package dashboard

import "github.com/2beens/fittrack/internal/goals"

type UserSummary struct {
	FirstName string `json:"firstName"`
	Username  string `json:"username"`
}

type WeekTotals struct {
	WeekStart string `json:"weekStart"`
	Workouts  int    `json:"workouts"`
	Calories  int    `json:"calories"`
}

// Progress is the weekly calories series in the shape the charts consume.
type Progress struct {
	Days     []string `json:"days"`
	Calories []int    `json:"calories"`
}

type GoalCompletion struct {
	Completed  int `json:"completed"`
	InProgress int `json:"inProgress"`
	NotStarted int `json:"notStarted"`
}

type ActiveGoal struct {
	ID          int          `json:"id"`
	Description string       `json:"description"`
	TargetDate  string       `json:"target_date"`
	Status      goals.Status `json:"status"`
}

type Response struct {
	Success          bool           `json:"success"`
	User             UserSummary    `json:"user"`
	TotalWorkouts    int            `json:"totalWorkouts"`
	TotalCalories    int            `json:"totalCalories"`
	ActiveGoals      int            `json:"activeGoals"`
	WeeklyProgress   []WeekTotals   `json:"weeklyProgress"`
	Progress         Progress       `json:"progress"`
	WorkoutFrequency [7]int         `json:"workoutFrequency"`
	GoalCompletion   GoalCompletion `json:"goalCompletion"`
	Goals            []ActiveGoal   `json:"goals"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// goalCompletionFrom buckets per-status goal counts.
func goalCompletionFrom(statusCounts map[goals.Status]int) GoalCompletion {
	return GoalCompletion{
		Completed:  statusCounts[goals.StatusCompleted],
		InProgress: statusCounts[goals.StatusActive],
		NotStarted: statusCounts[goals.StatusUpcoming],
	}
}
