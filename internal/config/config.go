package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/rosterkit/roster/internal/clock"
	"github.com/rosterkit/roster/internal/types"
	"github.com/rosterkit/roster/internal/validator"
)

type Configuration struct {
	Deployment DeploymentConfig `validate:"required"`
	Logging    LoggingConfig    `validate:"required"`
	Roster     RosterConfig     `validate:"required"`
}

type DeploymentConfig struct {
	Mode types.RunMode `validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required"`
}

// RosterConfig drives the demo query: which network has to be present, the
// age threshold, and an optional fixed reference date for reproducible runs.
type RosterConfig struct {
	// ReferenceDate is an optional YYYY-MM-DD date used as "now" for age
	// computation. Empty means the system clock.
	ReferenceDate string `mapstructure:"reference_date"`
	MinAgeOver    int    `mapstructure:"min_age_over"`
	Network       string `mapstructure:"network" validate:"required"`
	Output        string `mapstructure:"output" validate:"required,oneof=comma json lines"`
}

func NewConfig() (*Configuration, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("ROSTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	setDefaults(v)

	// Read config file if exists
	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	} else {
		fmt.Printf("Using config file: %s\n", v.ConfigFileUsed())
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("deployment.mode", string(types.ModeDemo))
	v.SetDefault("logging.level", string(types.LogLevelInfo))
	v.SetDefault("roster.min_age_over", 35)
	v.SetDefault("roster.network", "twitter")
	v.SetDefault("roster.output", "comma")
}

func (c Configuration) Validate() error {
	if err := validator.GetValidator().Struct(c); err != nil {
		return err
	}
	if _, err := c.Roster.Clock(); err != nil {
		return err
	}
	return nil
}

// Clock returns the time source the demo query should run against: a fixed
// clock when a reference date is configured, the system clock otherwise.
func (rc RosterConfig) Clock() (clock.Clock, error) {
	if rc.ReferenceDate == "" {
		return clock.System(), nil
	}
	t, err := time.Parse(time.DateOnly, rc.ReferenceDate)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid roster reference date %q", rc.ReferenceDate)
	}
	return clock.Fixed(t), nil
}

// GetDefaultConfig returns a default configuration for local development
// and tests.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Logging:    LoggingConfig{Level: types.LogLevelDebug},
		Roster: RosterConfig{
			MinAgeOver: 35,
			Network:    "twitter",
			Output:     "comma",
		},
	}
}
