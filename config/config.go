package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// TokenEnv is the environment variable holding the Memos access token.
const TokenEnv = "MEMOS_TOKEN"

// Config holds all importer configuration.
type Config struct {
	Logger LoggerConfig
	Memos  MemosConfig
	Import ImportConfig
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type MemosConfig struct {
	URL               string
	AccessToken       string
	Timeout           time.Duration
	RequestsPerSecond float64 // 0 disables pacing
}

type ImportConfig struct {
	Folder    string
	AssumeYes bool
	DryRun    bool
}

// LoadOptions carries the command line inputs that take precedence over
// the config file and environment.
type LoadOptions struct {
	ConfigFile string // Explicit config file; empty searches the default paths
	EnvFile    string // dotenv file loaded before reading the environment
	MemosURL   string
	Folder     string
	AssumeYes  bool
	DryRun     bool
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., $HOME/.config/keep-import
func Load(opt LoadOptions) (*Config, error) {
	if opt.EnvFile != "" {
		// Missing .env is fine; already-set variables win.
		_ = godotenv.Load(opt.EnvFile)
	}

	v := viper.New()
	if opt.ConfigFile != "" {
		v.SetConfigFile(opt.ConfigFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/keep-import")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if err := v.BindEnv("memos.access_token", TokenEnv); err != nil {
		return nil, fmt.Errorf("error binding %s: %w", TokenEnv, err)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	cfg.Memos.URL = v.GetString("memos.url")
	cfg.Memos.AccessToken = v.GetString("memos.access_token")
	cfg.Memos.Timeout = v.GetDuration("memos.timeout")
	cfg.Memos.RequestsPerSecond = v.GetFloat64("memos.requests_per_second")

	cfg.Import.Folder = v.GetString("import.folder")
	cfg.Import.AssumeYes = v.GetBool("import.assume_yes")
	cfg.Import.DryRun = v.GetBool("import.dry_run")

	// Command line
	if opt.MemosURL != "" {
		cfg.Memos.URL = opt.MemosURL
	}
	if opt.Folder != "" {
		cfg.Import.Folder = opt.Folder
	}
	cfg.Import.AssumeYes = cfg.Import.AssumeYes || opt.AssumeYes
	cfg.Import.DryRun = cfg.Import.DryRun || opt.DryRun

	cfg.Memos.URL = strings.TrimRight(strings.TrimSpace(cfg.Memos.URL), "/")

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("memos.timeout", "30s")
	v.SetDefault("memos.requests_per_second", 0)
	v.SetDefault("import.assume_yes", false)
	v.SetDefault("import.dry_run", false)
}
