package main

import (
	"time"

	"github.com/prismview/prism/internal/model"
)

const (
	defaultBaseURL      = "http://localhost:9428"
	defaultQueryTimeout = 30 * time.Second
	defaultAPIHost      = "127.0.0.1"
	defaultAPIPort      = 3000
	defaultRefresh      = model.DefaultDashboardRefresh
	defaultLimit        = model.DefaultQueryLimit
)

// appConfig is internal runtime configuration.
// It is package-private to keep defaults and shape local to the CLI entrypoint.
type appConfig struct {
	BaseURL           string        `mapstructure:"base-url"`
	Query             string        `mapstructure:"query"`
	Limit             int           `mapstructure:"limit"`
	RefreshInterval   time.Duration `mapstructure:"refresh-interval"`
	QueryTimeout      time.Duration `mapstructure:"query-timeout"`
	WarningThreshold  float64       `mapstructure:"warning-threshold"`
	CriticalThreshold float64       `mapstructure:"critical-threshold"`
	APIEnabled        bool          `mapstructure:"api-enabled"`
	APIAddr           string        `mapstructure:"api-addr"`
	APIPort           int           `mapstructure:"api-port"`
	LogLevel          string        `mapstructure:"log-level"`
	LogFile           string        `mapstructure:"log-file"`
	Headless          bool          `mapstructure:"headless"`
	ConfigPath        string        `mapstructure:"-"` // not from config file
}

func (c appConfig) thresholds() model.DriftThresholds {
	return model.DriftThresholds{
		Warning:  c.WarningThreshold,
		Critical: c.CriticalThreshold,
	}
}
