package config

import (
	"path/filepath"

	"github.com/spf13/viper"
)

type (
	Config struct {
		Data
		Audit
		Schedule
	}

	Data struct {
		Dir    string // Directory holding books.json and quotes.json
		RawDir string // Directory scanned for raw export files
	}
	Audit struct {
		Dir string // Directory for per-run ingest reports; empty disables them
	}
	Schedule struct {
		Ingest string // Cron format: "0 * * * *" = hourly
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("data_dir", DefaultDataDir)
	v.SetDefault("raw_dir", "")
	v.SetDefault("audit_dir", "")
	v.SetDefault("ingest_schedule", "0 * * * *") // Hourly at :00

	cfg := &Config{
		Data: Data{
			Dir:    v.GetString("DATA_DIR"),
			RawDir: v.GetString("RAW_DIR"),
		},
		Audit: Audit{
			Dir: v.GetString("AUDIT_DIR"),
		},
		Schedule: Schedule{
			Ingest: v.GetString("INGEST_SCHEDULE"),
		},
	}
	if cfg.Data.RawDir == "" {
		cfg.Data.RawDir = filepath.Join(cfg.Data.Dir, "raw")
	}
	return cfg
}
