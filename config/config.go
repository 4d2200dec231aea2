package config

import (
	"fmt"
	"os"

	"github.com/AnTengye/contractstudio/compose"
	"github.com/AnTengye/contractstudio/model"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig          `yaml:"server"`
	Archive   ArchiveConfig         `yaml:"archive"`
	Auth      AuthConfig            `yaml:"auth"`
	Log       LogConfig             `yaml:"log"`
	Store     StoreConfig           `yaml:"store"`
	RateLimit RateLimitConfig       `yaml:"rate_limit"`
	Company   model.CompanyIdentity `yaml:"company"`
	Defaults  DefaultsConfig        `yaml:"defaults"`
	Users     []User                `yaml:"users"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

// ArchiveConfig points at the MinIO bucket that keeps rendered contracts.
// Archiving is disabled when Endpoint is empty.
type ArchiveConfig struct {
	Endpoint   string `yaml:"endpoint"`
	AccessKey  string `yaml:"access_key"`
	SecretKey  string `yaml:"secret_key"`
	Bucket     string `yaml:"bucket"`
	UseSSL     bool   `yaml:"use_ssl"`
	Region     string `yaml:"region"`
	ExpireDays int    `yaml:"expire_days"`
}

// Enabled reports whether an archive endpoint is configured.
func (a ArchiveConfig) Enabled() bool {
	return a.Endpoint != ""
}

type AuthConfig struct {
	JWTSecret        string `yaml:"jwt_secret"`
	TokenExpireHours int    `yaml:"token_expire_hours"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// StoreConfig bounds the in-memory stores. Zero means unlimited.
type StoreConfig struct {
	MaxPresets   int `yaml:"max_presets"`
	MaxDocuments int `yaml:"max_documents"`
}

type RateLimitConfig struct {
	Requests      int `yaml:"requests"`
	WindowSeconds int `yaml:"window_seconds"`
}

// DefaultsConfig overrides the fallbacks used when a contract form leaves a
// field empty.
type DefaultsConfig struct {
	Placeholder          string  `yaml:"placeholder"`
	DepositPercent       float64 `yaml:"deposit_percent"`
	OtherPaymentFallback string  `yaml:"other_payment_fallback"`
	NotImplementedNotice string  `yaml:"not_implemented_notice"`
}

type User struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Tenant   string `yaml:"tenant"`
}

var GlobalConfig *Config

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.setDefaults()

	GlobalConfig = &cfg
	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Archive.ExpireDays == 0 {
		c.Archive.ExpireDays = 7
	}
	if c.Archive.Bucket == "" {
		c.Archive.Bucket = "contracts"
	}
	if c.Auth.TokenExpireHours == 0 {
		c.Auth.TokenExpireHours = 24
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Store.MaxPresets == 0 {
		c.Store.MaxPresets = 200
	}
	if c.Store.MaxDocuments == 0 {
		c.Store.MaxDocuments = 100
	}
	if c.RateLimit.Requests == 0 {
		c.RateLimit.Requests = 100
	}
	if c.RateLimit.WindowSeconds == 0 {
		c.RateLimit.WindowSeconds = 60
	}
	if c.Defaults.DepositPercent == 0 {
		c.Defaults.DepositPercent = 50
	}
}

// FindUser finds a user by username
func (c *Config) FindUser(username string) *User {
	for i := range c.Users {
		if c.Users[i].Username == username {
			return &c.Users[i]
		}
	}
	return nil
}

// ComposeSettings maps the defaults section onto the composer settings.
// Empty values keep the composer's own defaults.
func (c *Config) ComposeSettings() compose.Settings {
	return compose.Settings{
		Placeholder:          c.Defaults.Placeholder,
		DepositPercent:       c.Defaults.DepositPercent,
		OtherPaymentFallback: c.Defaults.OtherPaymentFallback,
		NotImplementedNotice: c.Defaults.NotImplementedNotice,
	}
}
