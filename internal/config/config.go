package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	ierr "github.com/gymflow/gymflow/internal/errors"
)

type Configuration struct {
	Deployment DeploymentConfig `mapstructure:"deployment"`
	Server     ServerConfig     `mapstructure:"server"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Billing    BillingConfig    `mapstructure:"billing"`
	Seed       SeedConfig       `mapstructure:"seed"`
}

type DeploymentConfig struct {
	Mode string `mapstructure:"mode"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type AuthConfig struct {
	Secret                 string `mapstructure:"secret"`
	TokenExpiryHours       int    `mapstructure:"token_expiry_hours"`
	PortalTokenExpiryHours int    `mapstructure:"portal_token_expiry_hours"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

type BillingConfig struct {
	// CronSchedule drives the automated billing cycle; standard cron
	// expression evaluated in server local time.
	CronSchedule string `mapstructure:"cron_schedule"`
	// RunOnStartup triggers one cycle when the server boots so seeded data
	// is reconciled before the first request.
	RunOnStartup bool `mapstructure:"run_on_startup"`
}

type SeedConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// NewConfig loads configuration from config.yaml (optional), .env
// (optional) and environment variables prefixed with GYMFLOW_.
func NewConfig() (*Configuration, error) {
	// Missing .env is fine; env vars may come from the environment itself.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("GYMFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, ierr.WithError(err).
				WithHint("Failed to read config file").
				Mark(ierr.ErrSystem)
		}
	}

	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to unmarshal configuration").
			Mark(ierr.ErrSystem)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("deployment.mode", "development")
	v.SetDefault("server.address", ":8080")
	v.SetDefault("auth.secret", "gymflow-dev-secret")
	v.SetDefault("auth.token_expiry_hours", 24)
	v.SetDefault("auth.portal_token_expiry_hours", 2)
	v.SetDefault("logging.level", "info")
	v.SetDefault("billing.cron_schedule", "0 6 * * *")
	v.SetDefault("billing.run_on_startup", true)
	v.SetDefault("seed.enabled", true)
}

func (c *Configuration) Validate() error {
	if c.Server.Address == "" {
		return ierr.NewError("server address is required").
			Mark(ierr.ErrValidation)
	}
	if c.Auth.Secret == "" {
		return ierr.NewError("auth secret is required").
			Mark(ierr.ErrValidation)
	}
	if c.Auth.TokenExpiryHours <= 0 || c.Auth.PortalTokenExpiryHours <= 0 {
		return ierr.NewError("token expiry must be positive").
			Mark(ierr.ErrValidation)
	}
	if c.Billing.CronSchedule == "" {
		return ierr.NewError("billing cron schedule is required").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// GetDefaultConfig returns an in-code configuration used by tests and by
// the logger before the real configuration is loaded.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: "development"},
		Server:     ServerConfig{Address: ":8080"},
		Auth: AuthConfig{
			Secret:                 "gymflow-test-secret",
			TokenExpiryHours:       24,
			PortalTokenExpiryHours: 2,
		},
		Logging: LoggingConfig{Level: "debug"},
		Billing: BillingConfig{
			CronSchedule: "0 6 * * *",
			RunOnStartup: false,
		},
		Seed: SeedConfig{Enabled: false},
	}
}
