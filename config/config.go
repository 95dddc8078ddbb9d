package config

import (
	"cmp"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds runtime configuration. Zero values are never left in place:
// Load fills every field with its default first.
type Config struct {
	Port               string        // PORT (default 8080)
	LogLevel           string        // LOG_LEVEL (default info)
	Env                string        // ENV, "production" switches to JSON logs
	ResolverTimeout    time.Duration // RESOLVER_TIMEOUT per HEAD request (default 5s)
	TrimTimeout        time.Duration // TRIM_TIMEOUT per parameter check (default 30s)
	DomainTimeout      time.Duration // DOMAIN_TIMEOUT when /url/domain resolves (default 1s)
	UserAgent          string        // USER_AGENT, random browser UA when empty
	MaxRestarts        int           // MAX_RESTARTS on embedded URLs (default 5)
	StripKnownTracking bool          // STRIP_KNOWN_TRACKING drops listed tracking params without probing
}

// Default returns the configuration used when no variables are set.
func Default() Config {
	return Config{
		Port:            "8080",
		LogLevel:        "info",
		ResolverTimeout: 5 * time.Second,
		TrimTimeout:     30 * time.Second,
		DomainTimeout:   1 * time.Second,
		MaxRestarts:     5,
	}
}

// Load reads a local .env file when present, then the environment. Values in
// the environment win over .env entries.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("could not read .env file, using system environment")
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables only.
func FromEnv() (Config, error) {
	def := Default()
	cfg := Config{
		Port:      cmp.Or(strings.TrimSpace(os.Getenv("PORT")), def.Port),
		LogLevel:  cmp.Or(strings.TrimSpace(os.Getenv("LOG_LEVEL")), def.LogLevel),
		Env:       strings.TrimSpace(os.Getenv("ENV")),
		UserAgent: strings.TrimSpace(os.Getenv("USER_AGENT")),
	}

	var err error
	if cfg.ResolverTimeout, err = durationEnv("RESOLVER_TIMEOUT", def.ResolverTimeout); err != nil {
		return Config{}, err
	}
	if cfg.TrimTimeout, err = durationEnv("TRIM_TIMEOUT", def.TrimTimeout); err != nil {
		return Config{}, err
	}
	if cfg.DomainTimeout, err = durationEnv("DOMAIN_TIMEOUT", def.DomainTimeout); err != nil {
		return Config{}, err
	}
	if cfg.MaxRestarts, err = intEnv("MAX_RESTARTS", def.MaxRestarts); err != nil {
		return Config{}, err
	}
	if cfg.StripKnownTracking, err = boolEnv("STRIP_KNOWN_TRACKING", def.StripKnownTracking); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Addr is the listen address for Port.
func (c Config) Addr() string {
	if strings.Contains(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

// durationEnv accepts Go durations ("750ms") or plain seconds ("2", "0.5").
func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	if d, err := time.ParseDuration(v); err == nil {
		return checkPositive(key, d)
	}
	secs, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q", key, v)
	}
	return checkPositive(key, time.Duration(secs*float64(time.Second)))
}

func checkPositive(key string, d time.Duration) (time.Duration, error) {
	if d <= 0 {
		return 0, fmt.Errorf("%s: duration must be positive, got %s", key, d)
	}
	return d, nil
}

func intEnv(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s: invalid non-negative integer %q", key, v)
	}
	return n, nil
}

func boolEnv(key string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: invalid boolean %q: %w", key, v, err)
	}
	return b, nil
}
