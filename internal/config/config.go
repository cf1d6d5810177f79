package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xxxsen/common/logger"
)

type Config struct {
	Port                  int                `json:"port"`
	JWTSecret             string             `json:"jwt_secret"`
	HandoffTTLMinutes     int                `json:"handoff_ttl_minutes"`
	RedirectDelayMS       int                `json:"redirect_delay_ms"`
	ResendCooldownSeconds int                `json:"resend_cooldown_seconds"`
	ResendRateLimitMS     int                `json:"resend_rate_limit_ms"`
	CleanupSpec           string             `json:"cleanup_spec"`
	CORSAllowlist         []string           `json:"cors_allowlist"`
	LogConfig             logger.LogConfig   `json:"log_config"`
	Backend               BackendConfig      `json:"backend"`
	SessionStore          SessionStoreConfig `json:"session_store"`
	Routes                RoutesConfig       `json:"routes"`
}

type BackendConfig struct {
	BaseURL        string `json:"base_url"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

type SessionStoreConfig struct {
	Type     string         `json:"type"`
	Database DatabaseConfig `json:"database"`
}

type DatabaseConfig struct {
	DSN      string `json:"dsn"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	DBName   string `json:"db_name"`
	SSLMode  string `json:"ssl_mode"`
}

// RoutesConfig is the client-side route table the views navigate within.
type RoutesConfig struct {
	Home      string `json:"home"`
	Dashboard string `json:"dashboard"`
	Signup    string `json:"signup"`
	Download  string `json:"download"`
}

// Properties is the runtime configuration slice exposed to the browser.
type Properties struct {
	Routes                RoutesConfig `json:"routes"`
	RedirectDelayMS       int          `json:"redirect_delay_ms"`
	ResendCooldownSeconds int          `json:"resend_cooldown_seconds"`
}

func (c *Config) Properties() Properties {
	return Properties{
		Routes:                c.Routes,
		RedirectDelayMS:       c.RedirectDelayMS,
		ResendCooldownSeconds: c.ResendCooldownSeconds,
	}
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Port == 0 {
		return nil, fmt.Errorf("port is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt_secret is required")
	}
	if cfg.Backend.BaseURL == "" {
		return nil, fmt.Errorf("backend.base_url is required")
	}
	if cfg.Backend.TimeoutSeconds == 0 {
		cfg.Backend.TimeoutSeconds = 10
	}
	if cfg.HandoffTTLMinutes == 0 {
		cfg.HandoffTTLMinutes = 15
	}
	if cfg.RedirectDelayMS == 0 {
		cfg.RedirectDelayMS = 2000
	}
	if cfg.ResendCooldownSeconds == 0 {
		cfg.ResendCooldownSeconds = 60
	}
	if cfg.ResendRateLimitMS == 0 {
		cfg.ResendRateLimitMS = 1000
	}
	if cfg.CleanupSpec == "" {
		cfg.CleanupSpec = "*/10 * * * *"
	}
	if cfg.LogConfig.Level == "" {
		cfg.LogConfig.Level = "info"
	}
	if cfg.Routes.Home == "" {
		cfg.Routes.Home = "/"
	}
	if cfg.Routes.Dashboard == "" {
		cfg.Routes.Dashboard = "/dashboard"
	}
	if cfg.Routes.Signup == "" {
		cfg.Routes.Signup = "/register"
	}
	if cfg.Routes.Download == "" {
		cfg.Routes.Download = "/download"
	}
	switch cfg.SessionStore.Type {
	case "":
		cfg.SessionStore.Type = "memory"
	case "memory":
	case "postgres":
		db := cfg.SessionStore.Database
		if db.DSN == "" && (db.Host == "" || db.DBName == "" || db.User == "") {
			return nil, fmt.Errorf("session_store.database dsn or host/user/db_name are required for postgres store")
		}
	default:
		return nil, fmt.Errorf("session_store.type must be memory or postgres")
	}
	return &cfg, nil
}
