package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration loaded from files and environment variables.
type Config struct {
	AppName  string `mapstructure:"app_name"`
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`

	WMSBaseURL          string        `mapstructure:"wms_base_url"`
	WMSUsername         string        `mapstructure:"wms_username"`
	WMSPassword         string        `mapstructure:"wms_password"`
	WMSAuthScheme       string        `mapstructure:"wms_auth_scheme"`
	WMSTimeoutSeconds   int64         `mapstructure:"wms_timeout_seconds"`
	WMSTimeout          time.Duration `mapstructure:"-"`
	PollIntervalSeconds int64         `mapstructure:"poll_interval"`
	PollInterval        time.Duration `mapstructure:"-"`

	PublishersFile string `mapstructure:"publishers_file"`

	StorageType            string        `mapstructure:"storage_type"`
	BBoltPath              string        `mapstructure:"bbolt_path"`
	StorageTTLSeconds      int64         `mapstructure:"storage_ttl_seconds"`
	StorageCleanupSeconds  int64         `mapstructure:"storage_cleanup_interval_seconds"`
	StorageTTL             time.Duration `mapstructure:"-"`
	StorageCleanupInterval time.Duration `mapstructure:"-"`
}

// Load reads configuration from environment variables and config files.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("app_name", "wms-bridge")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("wms_base_url", "")
	v.SetDefault("wms_username", "")
	v.SetDefault("wms_password", "")
	v.SetDefault("wms_auth_scheme", "ntlm")
	v.SetDefault("wms_timeout_seconds", 30)
	v.SetDefault("poll_interval", 300) // seconds
	v.SetDefault("publishers_file", "./configs/publishers.yaml")
	v.SetDefault("storage_type", "bbolt")
	v.SetDefault("bbolt_path", "./data/companies.db")
	v.SetDefault("storage_ttl_seconds", int64((30*24*time.Hour)/time.Second))
	v.SetDefault("storage_cleanup_interval_seconds", int64((12*time.Hour)/time.Second))

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if strings.TrimSpace(cfg.WMSBaseURL) == "" {
		return nil, fmt.Errorf("wms_base_url is required")
	}
	if _, err := url.Parse(cfg.WMSBaseURL); err != nil {
		return nil, fmt.Errorf("invalid wms_base_url: %w", err)
	}
	if strings.TrimSpace(cfg.WMSUsername) == "" {
		return nil, fmt.Errorf("wms_username is required")
	}
	if strings.TrimSpace(cfg.WMSPassword) == "" {
		return nil, fmt.Errorf("wms_password is required")
	}

	if cfg.WMSTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid wms_timeout_seconds (must be positive seconds)")
	}
	cfg.WMSTimeout = time.Duration(cfg.WMSTimeoutSeconds) * time.Second

	if cfg.PollIntervalSeconds <= 0 {
		return nil, fmt.Errorf("invalid poll_interval (must be positive seconds)")
	}
	cfg.PollInterval = time.Duration(cfg.PollIntervalSeconds) * time.Second

	if cfg.StorageTTLSeconds <= 0 {
		return nil, fmt.Errorf("invalid storage_ttl_seconds (must be positive seconds)")
	}
	if cfg.StorageCleanupSeconds <= 0 {
		return nil, fmt.Errorf("invalid storage_cleanup_interval_seconds (must be positive seconds)")
	}
	cfg.StorageTTL = time.Duration(cfg.StorageTTLSeconds) * time.Second
	cfg.StorageCleanupInterval = time.Duration(cfg.StorageCleanupSeconds) * time.Second

	return &cfg, nil
}
