package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/showcase/internal/carousel"
	"github.com/llehouerou/showcase/internal/viewport"
)

const appName = "showcase"

// Database drivers.
const (
	DriverSQLite    = "sqlite"
	DriverFirestore = "firestore"
)

type Config struct {
	Icons    string         `koanf:"icons"` // "nerd", "unicode" or "none" (default)
	Database DatabaseConfig `koanf:"database"`
	Server   ServerConfig   `koanf:"server"`
	Carousel CarouselConfig `koanf:"carousel"`
	Log      LogConfig      `koanf:"log"`
}

// DatabaseConfig selects and locates the content store.
type DatabaseConfig struct {
	Driver           string `koanf:"driver"`            // "sqlite" (default) or "firestore"
	Path             string `koanf:"path"`              // sqlite file; empty means XDG data dir
	ProjectID        string `koanf:"project_id"`        // firestore project
	CollectionPrefix string `koanf:"collection_prefix"` // firestore collection prefix
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Addr                 string `koanf:"addr"`                  // default ":8080"
	AdminToken           string `koanf:"admin_token"`           // bearer token for /api/admin
	AllowUnauthenticated bool   `koanf:"allow_unauthenticated"` // open admin routes when no token is set
	ShutdownTimeoutSec   int    `koanf:"shutdown_timeout_sec"`  // graceful shutdown (default: 10)
}

// CarouselConfig holds carousel timing and preview geometry.
type CarouselConfig struct {
	AutoAdvanceMS      int     `koanf:"auto_advance_ms"`       // default 5000
	ResumeDelayMS      int     `koanf:"resume_delay_ms"`       // default 3000
	SwipeThresholdPX   int     `koanf:"swipe_threshold_px"`    // default 50
	BreakpointPX       int     `koanf:"breakpoint_px"`         // default 768
	CellWidthPX        int     `koanf:"cell_width_px"`         // terminal column width in px (default: 8)
	MarqueeVelocity    float64 `koanf:"marquee_velocity"`      // px per frame (default: 0.5)
	FrameIntervalMS    int     `koanf:"frame_interval_ms"`     // default 16
	MarqueeItemWidthPX int     `koanf:"marquee_item_width_px"` // default 160
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `koanf:"level"` // "debug", "info", "warn", "error" (default: "info")
	File  string `koanf:"file"`  // log file; empty means stderr
}

// Load reads the config files. When explicit is set only that file is read
// and it must exist; otherwise the user and working-directory files are
// merged (last wins) and both are optional.
func Load(explicit string) (*Config, error) {
	k := koanf.New(".")

	if explicit != "" {
		path := expandPath(explicit)
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, err
		}
	} else {
		for _, path := range getConfigPaths() {
			if _, err := os.Stat(path); err == nil {
				if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
					return nil, err
				}
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Expand ~ in paths
	cfg.Database.Path = expandPath(cfg.Database.Path)
	cfg.Log.File = expandPath(cfg.Log.File)

	cfg.Database.Driver = strings.ToLower(strings.TrimSpace(cfg.Database.Driver))
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Icons = strings.ToLower(strings.TrimSpace(cfg.Icons))

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/showcase/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// HasAdminToken returns true if the admin API is guarded by a token.
func (c *Config) HasAdminToken() bool {
	return c.Server.AdminToken != ""
}

// GetDatabaseConfig returns the database configuration with defaults applied.
func (c *Config) GetDatabaseConfig() (DatabaseConfig, error) {
	cfg := c.Database
	switch cfg.Driver {
	case "":
		cfg.Driver = DriverSQLite
	case DriverSQLite:
	case DriverFirestore:
		if cfg.ProjectID == "" {
			return cfg, fmt.Errorf("database: driver %q requires project_id", cfg.Driver)
		}
	default:
		return cfg, fmt.Errorf("database: unknown driver %q", cfg.Driver)
	}
	return cfg, nil
}

// GetServerConfig returns the server configuration with defaults applied.
func (c *Config) GetServerConfig() ServerConfig {
	cfg := c.Server
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.ShutdownTimeoutSec <= 0 {
		cfg.ShutdownTimeoutSec = 10
	}
	return cfg
}

// ShutdownTimeout returns the graceful shutdown budget.
func (s ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(s.ShutdownTimeoutSec) * time.Second
}

// GetCarouselConfig returns the carousel configuration with defaults applied.
func (c *Config) GetCarouselConfig() CarouselConfig {
	cfg := c.Carousel

	// Apply defaults
	if cfg.AutoAdvanceMS <= 0 {
		cfg.AutoAdvanceMS = int(carousel.DefaultAutoAdvanceInterval / time.Millisecond)
	}
	if cfg.ResumeDelayMS <= 0 {
		cfg.ResumeDelayMS = int(carousel.DefaultResumeDelay / time.Millisecond)
	}
	if cfg.SwipeThresholdPX <= 0 {
		cfg.SwipeThresholdPX = carousel.DefaultSwipeThreshold
	}
	if cfg.BreakpointPX <= 0 {
		cfg.BreakpointPX = viewport.DefaultBreakpoint
	}
	if cfg.CellWidthPX <= 0 || cfg.CellWidthPX > 64 {
		cfg.CellWidthPX = 8
	}
	if cfg.MarqueeVelocity <= 0 {
		cfg.MarqueeVelocity = carousel.DefaultMarqueeVelocity
	}
	if cfg.FrameIntervalMS <= 0 {
		cfg.FrameIntervalMS = int(carousel.DefaultFrameInterval / time.Millisecond)
	}
	if cfg.MarqueeItemWidthPX <= 0 {
		cfg.MarqueeItemWidthPX = carousel.DefaultItemWidth
	}

	return cfg
}

// Engine returns the timing part of a carousel config.
func (c CarouselConfig) Engine() carousel.Config {
	return carousel.Config{
		AutoAdvanceInterval: time.Duration(c.AutoAdvanceMS) * time.Millisecond,
		ResumeDelay:         time.Duration(c.ResumeDelayMS) * time.Millisecond,
		SwipeThreshold:      c.SwipeThresholdPX,
	}
}

// Marquee returns the marquee config without an item count.
func (c CarouselConfig) Marquee() carousel.MarqueeConfig {
	return carousel.MarqueeConfig{
		ItemWidth:     float64(c.MarqueeItemWidthPX),
		Velocity:      c.MarqueeVelocity,
		FrameInterval: time.Duration(c.FrameIntervalMS) * time.Millisecond,
	}
}
