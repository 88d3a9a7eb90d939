// internal/common/config/loader.go
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultTimeoutMs = 10000

var defaultAddresses = map[string]string{
	WeatherProviderService: ":8001",
	JokeProviderService:    ":8002",
	WeatherRelayService:    ":8003",
	JokeRelayService:       ":8004",
}

// Load reads configs/config.yaml, merges config.<APP_ENVIRONMENT>.yaml on top
// and applies environment overrides.
func Load() (*Config, error) {
	loadEnvFile()

	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../../configs")
	v.AddConfigPath(".")

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	v.SetConfigName(fmt.Sprintf("config.%s", env))
	_ = v.MergeInConfig() // optional

	return finish(v)
}

// LoadFromFile loads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile()

	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return finish(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	registerDefaults(v)
	return v
}

func finish(v *viper.Viper) (*Config, error) {
	expandEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// Find project root by looking for go.mod
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// registerDefaults makes every scalar key known to viper so AutomaticEnv
// overrides reach Unmarshal.
func registerDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "agent-relay")
	v.SetDefault("app.version", "dev")
	v.SetDefault("app.environment", "development")

	for name, addr := range defaultAddresses {
		v.SetDefault("services."+name+".enabled", true)
		v.SetDefault("services."+name+".address", addr)
		v.SetDefault("services."+name+".timeout", defaultTimeoutMs)
	}

	v.SetDefault("endpoints.weather_provider_url", "http://localhost:8001")
	v.SetDefault("endpoints.joke_provider_url", "http://localhost:8002")
	v.SetDefault("endpoints.weather_relay_url", "http://localhost:8003")
	v.SetDefault("endpoints.joke_relay_url", "http://localhost:8004")

	v.SetDefault("dispatcher.timeout", defaultTimeoutMs)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.address", ":8080")
}

func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		strVal, ok := v.Get(key).(string)
		if !ok {
			continue
		}
		if strings.Contains(strVal, "${") || (strings.HasPrefix(strVal, "$") && len(strVal) > 1) {
			expanded := os.ExpandEnv(strVal)
			if expanded != strVal && expanded != "" {
				v.Set(key, expanded)
			}
		}
	}
}

// applyDefaults covers zero values viper defaults cannot reach, such as
// services declared in YAML without every field.
func applyDefaults(cfg *Config) {
	if cfg.Services == nil {
		cfg.Services = map[string]ServiceConfig{}
	}
	for name, svc := range cfg.Services {
		if svc.Address == "" {
			svc.Address = defaultAddresses[name]
		}
		if svc.Timeout == 0 {
			svc.Timeout = defaultTimeoutMs
		}
		cfg.Services[name] = svc
	}

	if cfg.Dispatcher.Timeout == 0 {
		cfg.Dispatcher.Timeout = defaultTimeoutMs
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
}

func validateConfig(cfg *Config) error {
	endpoints := map[string]string{
		"endpoints.weather_provider_url": cfg.Endpoints.WeatherProviderURL,
		"endpoints.joke_provider_url":    cfg.Endpoints.JokeProviderURL,
		"endpoints.weather_relay_url":    cfg.Endpoints.WeatherRelayURL,
		"endpoints.joke_relay_url":       cfg.Endpoints.JokeRelayURL,
	}
	for key, raw := range endpoints {
		if raw == "" {
			return fmt.Errorf("%s is required", key)
		}
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s must be an absolute URL, got %q", key, raw)
		}
	}

	for name, svc := range cfg.Services {
		if svc.Enabled && svc.Address == "" {
			return fmt.Errorf("services.%s.address is required", name)
		}
		if svc.Timeout < 0 {
			return fmt.Errorf("services.%s.timeout must not be negative", name)
		}
	}

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", cfg.Logging.Level)
	}

	if cfg.Metrics.Enabled && cfg.Metrics.Address == "" {
		return fmt.Errorf("metrics.address is required when metrics are enabled")
	}

	return nil
}

// GetServiceConfig retrieves service-specific configuration with fallback to defaults.
func GetServiceConfig(cfg *Config, name string) ServiceConfig {
	if svc, exists := cfg.Services[name]; exists {
		return svc
	}
	return ServiceConfig{
		Enabled: true,
		Address: defaultAddresses[name],
		Timeout: defaultTimeoutMs,
	}
}

// IsServiceEnabled checks if a specific service is enabled.
func IsServiceEnabled(cfg *Config, name string) bool {
	if svc, exists := cfg.Services[name]; exists {
		return svc.Enabled
	}
	return true
}
