package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	HTTP      HTTPConfig      `mapstructure:"http"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Engine    EngineConfig    `mapstructure:"engine"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
}

type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

type DatabaseConfig struct {
	// Driver is "postgres" or "sqlite".
	Driver   string         `mapstructure:"driver"`
	Postgres PostgresConfig `mapstructure:"postgres"`
	// SQLitePath is used when Driver is "sqlite". ":memory:" is accepted.
	SQLitePath string `mapstructure:"sqlite_path"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Database string `mapstructure:"database"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	SSLMode  string `mapstructure:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

// EngineConfig holds the distribution and admission policy knobs.
// Rates are basis points so config files never carry floats for money.
type EngineConfig struct {
	RoyaltyRateBps  int64 `mapstructure:"royalty_rate_bps"`
	PlatformRateBps int64 `mapstructure:"platform_rate_bps"`

	// MinStakeBps is the minimum single-purchase floor as a share of total
	// supply. 0 disables the floor.
	MinStakeBps int64 `mapstructure:"min_stake_bps"`

	// Reserve funding-ratio tier breakpoints. A ratio strictly below the
	// breakpoint selects the tier; at or above the last breakpoint the
	// reserve is considered fully funded.
	CriticalBelow float64 `mapstructure:"critical_below"`
	LowBelow      float64 `mapstructure:"low_below"`
	BuildingBelow float64 `mapstructure:"building_below"`

	// Investor share of after-fee revenue per tier, basis points.
	CriticalInvestorBps    int64 `mapstructure:"critical_investor_bps"`
	LowInvestorBps         int64 `mapstructure:"low_investor_bps"`
	BuildingInvestorBps    int64 `mapstructure:"building_investor_bps"`
	FullReserveInvestorBps int64 `mapstructure:"full_reserve_investor_bps"`
}

type SchedulerConfig struct {
	Enabled         bool `mapstructure:"enabled"`
	IntervalSeconds int  `mapstructure:"interval_seconds"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}
