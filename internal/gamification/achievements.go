package gamification

// Metric identifies the monotonic counter an achievement threshold is
// checked against.
type Metric string

const (
	MetricStreak       Metric = "streak"
	MetricTransactions Metric = "transactions"
	MetricKarma        Metric = "karma"
	MetricCategories   Metric = "categories"
	MetricGoals        Metric = "goals"
)

// Achievement is one unlockable badge. Unlocking awards Points karma once,
// the first time the metric crosses Threshold.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Points      int64  `json:"points"`
	Metric      Metric `json:"metric"`
	Threshold   int64  `json:"threshold"`
}

// DefaultAchievements returns the built-in achievement table.
func DefaultAchievements() []Achievement {
	return []Achievement{
		{"first_transaction", "First Step", "Added your first transaction", 50, MetricTransactions, 1},
		{"streak_5", "Consistent Tracker", "Maintained a 5-day tracking streak", 100, MetricStreak, 5},
		{"streak_10", "Dedicated Tracker", "Maintained a 10-day tracking streak", 200, MetricStreak, 10},
		{"streak_30", "Habit Master", "Maintained a 30-day tracking streak", 500, MetricStreak, 30},
		{"category_master", "Category Master", "Logged transactions in 5 different categories", 100, MetricCategories, 5},
		{"goal_achiever", "Goal Achiever", "Completed your first savings goal", 300, MetricGoals, 1},
		{"hundred_transactions", "Century Club", "Recorded 100 transactions", 250, MetricTransactions, 100},
		{"karma_1000", "Karma Collector", "Earned 1000 lifetime karma", 150, MetricKarma, 1000},
	}
}
