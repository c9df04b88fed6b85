package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Finla"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	Store struct {
		// Backend selects the persistence adapter: "file" or "postgres".
		Backend string `envconfig:"STORE_BACKEND" default:"file"`
		DataDir string `envconfig:"DATA_DIR" default:"./data"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"finla"`
	}

	Ledger struct {
		// LowBalancePaise is the advisory threshold used when an account
		// does not carry its own minimum balance.
		LowBalancePaise int64 `envconfig:"LOW_BALANCE_PAISE" default:"50000"`
	}

	Gamification Gamification
}

// Gamification holds the tunable weights and thresholds of the engine.
// The numbers are a product decision, so they live here rather than in
// the engine's arithmetic.
type Gamification struct {
	InitialFreezeTokens int `envconfig:"FREEZE_TOKENS" default:"3"`

	Karma KarmaWeights

	// LevelThresholds are cumulative karma floors for levels 1..n. Past
	// the last threshold each LevelStep karma adds a level up to MaxLevel.
	LevelThresholds []int64 `envconfig:"LEVEL_THRESHOLDS" default:"0,100,300,600,1000,1500"`
	LevelStep       int64   `envconfig:"LEVEL_STEP" default:"500"`
	MaxLevel        int     `envconfig:"MAX_LEVEL" default:"20"`

	// StreakBonusFrom is the streak length from which a qualifying day
	// also earns the streak bonus.
	StreakBonusFrom int `envconfig:"STREAK_BONUS_FROM" default:"5"`
}

// KarmaWeights is the karma award table. Every award path is bounded by
// MaxEventKarma so the weights cannot inflate karma without limit.
type KarmaWeights struct {
	TransactionLogged int64 `envconfig:"KARMA_TRANSACTION_LOGGED" default:"5"`
	MindfulSpending   int64 `envconfig:"KARMA_MINDFUL_SPENDING" default:"8"`
	CategoryDiversity int64 `envconfig:"KARMA_CATEGORY_DIVERSITY" default:"12"`
	StreakBonus       int64 `envconfig:"KARMA_STREAK_BONUS" default:"20"`

	// MindfulLimitPaise is the absolute amount at or under which a spend
	// counts as mindful.
	MindfulLimitPaise int64 `envconfig:"KARMA_MINDFUL_LIMIT_PAISE" default:"10000"`

	MaxEventKarma int64 `envconfig:"KARMA_MAX_PER_EVENT" default:"100"`
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
