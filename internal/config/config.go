// Package config resolves fitlog settings: built-in defaults, then an
// optional YAML file, then FITLOG_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/fitlog/internal/domain"
	"github.com/alexanderramin/fitlog/internal/stats"
	"gopkg.in/yaml.v3"
)

// Config holds all user-tunable settings.
type Config struct {
	DBPath      string               `yaml:"db_path"`
	DefaultSort domain.SortCriterion `yaml:"default_sort"`
	ChartDays   int                  `yaml:"chart_days"`
	// TimeZone is an IANA name; empty or "Local" means the machine's zone.
	TimeZone    string `yaml:"time_zone"`
	LogUseCases bool   `yaml:"log_use_cases"`
	// ExtraTypes are offered by the add form after the built-in workout types.
	ExtraTypes []string `yaml:"extra_types"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		DBPath:      filepath.Join(fitlogHome(), "fitlog.db"),
		DefaultSort: domain.SortDateDescending,
		ChartDays:   stats.DefaultChartDays,
	}
}

// DefaultPath is where Load looks for the YAML file unless FITLOG_CONFIG is set.
func DefaultPath() string {
	return filepath.Join(fitlogHome(), "config.yaml")
}

func fitlogHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".fitlog")
}

// Load resolves the full configuration. A missing file is not an error.
func Load() (Config, error) {
	path := os.Getenv("FITLOG_CONFIG")
	if path == "" {
		path = DefaultPath()
	}
	cfg, err := LoadFile(path)
	if err != nil {
		return Config{}, err
	}
	ApplyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile reads the YAML file at path over DefaultConfig. Keys absent from
// the file keep their defaults.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if c, err := domain.ParseSortCriterion(string(cfg.DefaultSort)); err == nil {
		cfg.DefaultSort = c
	}
	return cfg, nil
}

// ApplyEnv overrides cfg from FITLOG_* variables. Values that do not parse
// are ignored.
func ApplyEnv(cfg *Config) {
	if v := os.Getenv("FITLOG_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("FITLOG_SORT"); v != "" {
		if c, err := domain.ParseSortCriterion(v); err == nil {
			cfg.DefaultSort = c
		}
	}
	if v := os.Getenv("FITLOG_CHART_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ChartDays = n
		}
	}
	if v := os.Getenv("FITLOG_TZ"); v != "" {
		if _, err := loadLocation(v); err == nil {
			cfg.TimeZone = v
		}
	}
	if v := os.Getenv("FITLOG_LOG_USECASES"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogUseCases = b
		}
	}
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if strings.TrimSpace(c.DBPath) == "" {
		return errors.New("config: db_path must not be empty")
	}
	if _, err := domain.ParseSortCriterion(string(c.DefaultSort)); err != nil {
		return fmt.Errorf("config: default_sort: %w", err)
	}
	if c.ChartDays <= 0 {
		return fmt.Errorf("config: chart_days must be positive, got %d", c.ChartDays)
	}
	if _, err := loadLocation(c.TimeZone); err != nil {
		return fmt.Errorf("config: time_zone: %w", err)
	}
	return nil
}

// Location returns the zone days are bucketed in.
func (c Config) Location() *time.Location {
	loc, err := loadLocation(c.TimeZone)
	if err != nil {
		return time.Local
	}
	return loc
}

// WorkoutTypes lists the built-in types followed by ExtraTypes, without duplicates.
func (c Config) WorkoutTypes() []string {
	seen := make(map[string]bool, len(domain.WorkoutTypes)+len(c.ExtraTypes))
	var out []string
	for _, t := range append(append([]string{}, domain.WorkoutTypes...), c.ExtraTypes...) {
		t = strings.TrimSpace(t)
		key := strings.ToLower(t)
		if t == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, t)
	}
	return out
}

func loadLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}
