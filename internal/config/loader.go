package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads config.yaml (plus config.<env>.yaml overrides) and environment
// variables into a Config. Every key can be overridden via env, e.g.
// DATABASE_POSTGRES_HOST or ENGINE_ROYALTY_RATE_BPS.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	applyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}
	v.SetConfigName("config." + env)
	_ = v.MergeInConfig()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "franchize")
	v.SetDefault("app.environment", "development")

	v.SetDefault("http.addr", ":8080")

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.postgres.host", "localhost")
	v.SetDefault("database.postgres.port", 5432)
	v.SetDefault("database.postgres.database", "franchize")
	v.SetDefault("database.postgres.user", "franchize")
	v.SetDefault("database.postgres.sslmode", "disable")
	v.SetDefault("database.sqlite_path", "franchize.db")

	v.SetDefault("engine.royalty_rate_bps", 500)
	v.SetDefault("engine.platform_rate_bps", 200)
	v.SetDefault("engine.min_stake_bps", 500)
	v.SetDefault("engine.critical_below", 0.25)
	v.SetDefault("engine.low_below", 0.50)
	v.SetDefault("engine.building_below", 0.75)
	v.SetDefault("engine.critical_investor_bps", 2500)
	v.SetDefault("engine.low_investor_bps", 5000)
	v.SetDefault("engine.building_investor_bps", 7500)
	v.SetDefault("engine.full_reserve_investor_bps", 10000)

	v.SetDefault("scheduler.enabled", true)
	v.SetDefault("scheduler.interval_seconds", 300)

	v.SetDefault("logging.level", "info")
}

func validate(cfg *Config) error {
	switch cfg.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
	if cfg.Engine.RoyaltyRateBps < 0 || cfg.Engine.PlatformRateBps < 0 {
		return fmt.Errorf("fee rates must not be negative")
	}
	if cfg.Engine.RoyaltyRateBps+cfg.Engine.PlatformRateBps >= 10000 {
		return fmt.Errorf("royalty and platform fees must leave revenue to distribute")
	}
	if !(cfg.Engine.CriticalBelow < cfg.Engine.LowBelow && cfg.Engine.LowBelow < cfg.Engine.BuildingBelow) {
		return fmt.Errorf("tier breakpoints must be strictly increasing")
	}
	return nil
}
