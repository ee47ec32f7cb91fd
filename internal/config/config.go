package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/TierPlan_Go/internal/compensation"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string

	// PlanRatesFile optionally points at a TOML file overriding the plan parameters
	PlanRatesFile string

	RequalificationPollInterval time.Duration
	VisibilityGate              bool
	ProjectionCacheSize         int
	ProjectionCacheTTL          time.Duration

	RateLimitRPS   float64
	RateLimitBurst int
	TrustedProxies []string

	WorkerCount     int
	WorkerQueueSize int
	ShutdownTimeout time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:                    getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:                   getEnv(EnvLogFormat, DefaultLogFormat),
		Environment:                 getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:                 getEnv(EnvServiceName, DefaultServiceName),
		Version:                     getEnv(EnvVersion, DefaultVersion),
		PlanRatesFile:               getEnv(EnvPlanRatesFile, ""),
		RequalificationPollInterval: getEnvAsDuration(EnvRequalificationPollInterval, DefaultRequalificationPollInterval),
		VisibilityGate:              getEnvAsBool(EnvVisibilityGate, DefaultVisibilityGate),
		ProjectionCacheSize:         getEnvAsInt(EnvProjectionCacheSize, DefaultProjectionCacheSize),
		ProjectionCacheTTL:          getEnvAsDuration(EnvProjectionCacheTTL, DefaultProjectionCacheTTL),
		RateLimitRPS:                getEnvAsFloat(EnvRateLimitRPS, DefaultRateLimitRPS),
		RateLimitBurst:              getEnvAsInt(EnvRateLimitBurst, DefaultRateLimitBurst),
		TrustedProxies:              getEnvAsList(EnvTrustedProxies),
		WorkerCount:                 getEnvAsInt(EnvWorkerCount, DefaultWorkerCount),
		WorkerQueueSize:             getEnvAsInt(EnvWorkerQueueSize, DefaultWorkerQueueSize),
		ShutdownTimeout:             getEnvAsDuration(EnvShutdownTimeout, DefaultShutdownTimeout),
	}

	port, err := strconv.Atoi(getEnv(EnvPort, strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidPort, err)
	}
	if port < MinPort || port > MaxPort {
		return nil, fmt.Errorf(ErrMsgPortOutOfRange, MinPort, MaxPort, port)
	}
	cfg.Port = port

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{EnvRequalificationPollInterval, c.RequalificationPollInterval.Seconds()},
		{EnvProjectionCacheSize, float64(c.ProjectionCacheSize)},
		{EnvProjectionCacheTTL, c.ProjectionCacheTTL.Seconds()},
		{EnvRateLimitRPS, c.RateLimitRPS},
		{EnvRateLimitBurst, float64(c.RateLimitBurst)},
		{EnvWorkerCount, float64(c.WorkerCount)},
		{EnvWorkerQueueSize, float64(c.WorkerQueueSize)},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf(ErrMsgNonPositiveSetting, p.name, p.value)
		}
	}
	return nil
}

// PlanConfig returns the plan parameters: the defaults, overlaid with
// PlanRatesFile when one is configured.
func (c *Config) PlanConfig() (compensation.Config, error) {
	if c.PlanRatesFile == "" {
		return compensation.DefaultConfig(), nil
	}
	cfg, err := compensation.LoadConfigFile(c.PlanRatesFile)
	if err != nil {
		return compensation.Config{}, fmt.Errorf(ErrMsgLoadRatesFailed, err)
	}
	return cfg, nil
}

// IsProduction reports whether the service runs in the production environment
func (c *Config) IsProduction() bool {
	return c.Environment == "prod" || c.Environment == "production"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsList splits a comma separated variable, dropping blanks
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
