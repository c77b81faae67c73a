package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Sheets SheetsConfig `yaml:"sheets" mapstructure:"sheets"`
	Report ReportConfig `yaml:"report" mapstructure:"report"`
	Store  StoreConfig  `yaml:"store" mapstructure:"store"`
	Cache  CacheConfig  `yaml:"cache" mapstructure:"cache"`
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// SheetsConfig points at the three worksheets the reports are built
// from. The spreadsheet must be link-shared for the CSV export to work.
type SheetsConfig struct {
	SpreadsheetID string `yaml:"spreadsheet_id" mapstructure:"spreadsheet_id"`
	SalesGID      string `yaml:"sales_gid" mapstructure:"sales_gid"`
	RosterGID     string `yaml:"roster_gid" mapstructure:"roster_gid"`
	DprGID        string `yaml:"dpr_gid" mapstructure:"dpr_gid"`
	TimeoutSecs   int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	MaxRetries    int    `yaml:"max_retries" mapstructure:"max_retries"`
}

// ReportConfig configures report computation. Timezone decides which
// calendar day "today" is when resolving preset ranges; the agency runs
// on Manila time.
type ReportConfig struct {
	Timezone          string  `yaml:"timezone" mapstructure:"timezone"`
	MdrtTargetPremium float64 `yaml:"mdrt_target_premium" mapstructure:"mdrt_target_premium"`
}

// StoreConfig configures the database backend.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
}

// CacheConfig configures sheet-grid caching.
type CacheConfig struct {
	TTLSecs int  `yaml:"ttl_secs" mapstructure:"ttl_secs"`
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Port           int      `yaml:"port" mapstructure:"port"`
	AllowedOrigins []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("SUPERNOVA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("sheets.timeout_secs", 30)
	v.SetDefault("sheets.max_retries", 3)
	v.SetDefault("report.timezone", "Asia/Manila")
	v.SetDefault("report.mdrt_target_premium", 0)
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.database_url", "bigboard.db")
	v.SetDefault("cache.ttl_secs", 300)
	v.SetDefault("cache.enabled", true)
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
