package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"ShapeBoard/internal/shape"
	"ShapeBoard/internal/state"
)

// DefaultAPIPort is used by headless mode when no port is configured.
const DefaultAPIPort = "8888"

// Config is read from SHAPEBOARD_* environment variables.
type Config struct {
	Width        int
	Height       int
	APIPort      string
	Headless     bool
	Debug        bool
	Shape        string
	StrokeWidth  float64
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Load reads the configuration, falling back to defaults for anything unset
// or unparsable.
func Load() *Config {
	cfg := &Config{
		Width:        getEnvAsInt("SHAPEBOARD_WIDTH", 1800),
		Height:       getEnvAsInt("SHAPEBOARD_HEIGHT", 900),
		APIPort:      getEnv("SHAPEBOARD_API_PORT", ""),
		Headless:     getEnvAsBool("SHAPEBOARD_HEADLESS", false),
		Debug:        getEnvAsBool("SHAPEBOARD_DEBUG", false),
		Shape:        getEnv("SHAPEBOARD_SHAPE", shape.KindCircle.String()),
		StrokeWidth:  getEnvAsFloat("SHAPEBOARD_STROKE_WIDTH", 4.0),
		ReadTimeout:  time.Duration(getEnvAsInt("SHAPEBOARD_READ_TIMEOUT", 10)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("SHAPEBOARD_WRITE_TIMEOUT", 10)) * time.Second,
	}
	if cfg.Headless && cfg.APIPort == "" {
		cfg.APIPort = DefaultAPIPort
	}
	return cfg
}

// APIEnabled reports whether the HTTP control surface should start.
func (c *Config) APIEnabled() bool {
	return c.APIPort != ""
}

// ToolConfig is the initial drawing configuration of a new session.
func (c *Config) ToolConfig() state.ToolConfig {
	tc := state.DefaultToolConfig()
	if kind, err := shape.ParseKind(c.Shape); err == nil {
		tc.Kind = kind
	} else {
		log.Printf("[CONFIG] %v, using %s", err, tc.Kind)
	}
	if c.StrokeWidth > 0 {
		tc.StrokeWidth = c.StrokeWidth
	}
	return tc
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsFloat(key string, defaultVal float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultVal
}
