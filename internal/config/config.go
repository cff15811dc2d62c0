package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envPrefix scopes environment overrides, e.g. DASHBOARD_CRM_TIMEOUT=12s.
const envPrefix = "DASHBOARD"

// Config is the resolved application configuration.
type Config struct {
	Port  string
	AppID string // key of the credentials document

	DB    DBConfig
	Store StoreConfig
	CRM   CRMConfig
	Voice VoiceConfig
	Sync  SyncConfig
	Stats StatsConfig
	Logs  LogsConfig
	Log   LogConfig
}

type DBConfig struct {
	Path string
}

// StoreConfig selects the credentials document backend.
type StoreConfig struct {
	Driver    string // sqlite | badger
	BadgerDir string
}

type CRMConfig struct {
	BaseURL    string
	APIVersion string
	Timeout    time.Duration
	MaxResults int
}

type VoiceConfig struct {
	BaseURL string
	Timeout time.Duration
}

type SyncConfig struct {
	SetupPortal bool          // answer needsSetup instead of a demo snapshot when unconfigured
	Interval    time.Duration // background sync period; 0 disables
}

// StatsConfig holds the two headline metrics that are not derived from CRM data.
type StatsConfig struct {
	WinRate   float64
	AIActions int
}

type LogsConfig struct {
	Capacity int
}

type LogConfig struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
}

// Bootstrap holds credentials supplied through the environment for first-run seeding.
type Bootstrap struct {
	CrmAccessToken string
	CrmLocationID  string
	VoiceAPIKey    string
	VoiceAgentID   string
}

const (
	StoreSQLite = "sqlite"
	StoreBadger = "badger"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "3000")
	v.SetDefault("app.id", "default")
	v.SetDefault("db.path", "app.db")
	v.SetDefault("store.driver", StoreSQLite)
	v.SetDefault("store.badger_dir", "data/settings")
	v.SetDefault("crm.base_url", "https://services.leadconnectorhq.com")
	v.SetDefault("crm.api_version", "2021-07-28")
	v.SetDefault("crm.timeout", 10*time.Second)
	v.SetDefault("crm.max_results", 10)
	v.SetDefault("voice.base_url", "https://api.elevenlabs.io")
	v.SetDefault("voice.timeout", 10*time.Second)
	v.SetDefault("sync.setup_portal", false)
	v.SetDefault("sync.interval", time.Duration(0))
	v.SetDefault("stats.win_rate", 72.0)
	v.SetDefault("stats.ai_actions", 150)
	v.SetDefault("logs.capacity", 30)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
}

// Load reads an optional .env file, then configs/config.yml (if present), then
// DASHBOARD_* environment overrides. A missing config file is not an error.
func Load(paths ...string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigName("config")
	v.SetConfigType("yml")
	if len(paths) == 0 {
		paths = []string{"configs"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:  v.GetString("port"),
		AppID: strings.TrimSpace(v.GetString("app.id")),
		DB:    DBConfig{Path: v.GetString("db.path")},
		Store: StoreConfig{
			Driver:    strings.ToLower(strings.TrimSpace(v.GetString("store.driver"))),
			BadgerDir: v.GetString("store.badger_dir"),
		},
		CRM: CRMConfig{
			BaseURL:    strings.TrimRight(v.GetString("crm.base_url"), "/"),
			APIVersion: v.GetString("crm.api_version"),
			Timeout:    v.GetDuration("crm.timeout"),
			MaxResults: v.GetInt("crm.max_results"),
		},
		Voice: VoiceConfig{
			BaseURL: strings.TrimRight(v.GetString("voice.base_url"), "/"),
			Timeout: v.GetDuration("voice.timeout"),
		},
		Sync: SyncConfig{
			SetupPortal: v.GetBool("sync.setup_portal"),
			Interval:    v.GetDuration("sync.interval"),
		},
		Stats: StatsConfig{
			WinRate:   v.GetFloat64("stats.win_rate"),
			AIActions: v.GetInt("stats.ai_actions"),
		},
		Logs: LogsConfig{Capacity: v.GetInt("logs.capacity")},
		Log: LogConfig{
			Level:      v.GetString("log.level"),
			File:       v.GetString("log.file"),
			MaxSizeMB:  v.GetInt("log.max_size_mb"),
			MaxBackups: v.GetInt("log.max_backups"),
		},
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.AppID == "" {
		return errors.New("app.id must not be empty")
	}
	switch c.Store.Driver {
	case StoreSQLite, StoreBadger:
	default:
		return fmt.Errorf("unknown store.driver %q: want %q or %q", c.Store.Driver, StoreSQLite, StoreBadger)
	}
	if c.CRM.Timeout <= 0 {
		return fmt.Errorf("crm.timeout must be positive, got %s", c.CRM.Timeout)
	}
	if c.CRM.MaxResults <= 0 {
		return fmt.Errorf("crm.max_results must be positive, got %d", c.CRM.MaxResults)
	}
	if c.Sync.Interval < 0 {
		return fmt.Errorf("sync.interval must not be negative, got %s", c.Sync.Interval)
	}
	return nil
}

// BootstrapFromEnv returns the seed credentials named by the integration's
// conventional environment variables.
func BootstrapFromEnv() Bootstrap {
	return Bootstrap{
		CrmAccessToken: os.Getenv("GHL_ACCESS_TOKEN"),
		CrmLocationID:  os.Getenv("GHL_LOCATION_ID"),
		VoiceAPIKey:    os.Getenv("ELEVENLABS_API_KEY"),
		VoiceAgentID:   os.Getenv("ELEVENLABS_AGENT_ID"),
	}
}

// Empty reports whether no seed value was supplied.
func (b Bootstrap) Empty() bool {
	return b == Bootstrap{}
}
