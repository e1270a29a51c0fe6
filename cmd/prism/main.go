package main

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/prismview/prism/internal/httpserver"
	"github.com/prismview/prism/internal/logger"
	"github.com/prismview/prism/internal/logstore"
	"github.com/prismview/prism/internal/model"
	"github.com/prismview/prism/internal/tui"
)

// Build variables - set by ldflags during build.
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	var configPath string
	var baseURL string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/prism/config.yml)")
	flag.StringVar(&baseURL, "url", "", "override log store base URL")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("Prism - Log Dashboard\n")
		fmt.Printf("  Version: %s\n", version)
		fmt.Printf("  Commit:  %s\n", commit)
		fmt.Printf("  Built:   %s\n", buildTime)
		return
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(configPath string) (appConfig, error) {
	var cfg appConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("PRISM")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("base-url", defaultBaseURL)
	v.SetDefault("query", "")
	v.SetDefault("limit", defaultLimit)
	v.SetDefault("refresh-interval", defaultRefresh)
	v.SetDefault("query-timeout", defaultQueryTimeout)
	v.SetDefault("warning-threshold", model.DefaultWarningThreshold)
	v.SetDefault("critical-threshold", model.DefaultCriticalThreshold)
	v.SetDefault("api-enabled", false)
	v.SetDefault("api-addr", defaultAPIHost)
	v.SetDefault("api-port", defaultAPIPort)
	v.SetDefault("log-level", "info")
	v.SetDefault("log-file", "")
	v.SetDefault("headless", false)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "prism", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	cfg.ConfigPath = v.ConfigFileUsed()

	if cfg.BaseURL == "" {
		return cfg, errors.New("base-url must not be empty")
	}
	if cfg.APIPort <= 0 || cfg.APIPort > 65535 {
		return cfg, fmt.Errorf("invalid api-port: %d", cfg.APIPort)
	}
	if cfg.Limit <= 0 {
		return cfg, fmt.Errorf("invalid limit: %d", cfg.Limit)
	}
	return cfg, nil
}

func run(cfg appConfig) error {
	log, err := logger.New(logger.Config{
		Level:   cfg.LogLevel,
		File:    cfg.LogFile,
		Console: cfg.Headless,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	store, err := logstore.New(logstore.Config{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.QueryTimeout,
		Logger:  log,
	})
	if err != nil {
		return fmt.Errorf("init log store client: %w", err)
	}

	var api *httpserver.Server
	if cfg.APIEnabled {
		addr := net.JoinHostPort(cfg.APIAddr, strconv.Itoa(cfg.APIPort))
		api = httpserver.NewServer(addr, store, cfg.thresholds(), log)
		if err := api.Start(); err != nil {
			return fmt.Errorf("start api server: %w", err)
		}
		defer api.Stop()
	}

	if cfg.Headless {
		if api == nil {
			return errors.New("headless mode requires api-enabled")
		}
		log.Info("running headless", zap.String("version", version))
		return waitForSignal()
	}

	dashboard := tui.NewDashboardModel(tui.Options{
		Store:           store,
		Query:           cfg.Query,
		Limit:           cfg.Limit,
		RefreshInterval: cfg.RefreshInterval,
		Thresholds:      cfg.thresholds(),
		Logger:          log,
	})

	p := tea.NewProgram(dashboard, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return errors.New("dashboard requires a real terminal; use -headless with the API instead")
		}
		return fmt.Errorf("error running dashboard: %w", err)
	}
	return nil
}

func waitForSignal() error {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	<-ch
	return nil
}
