// Package config loads service settings from defaults, an optional YAML
// file and the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/newsverify/api-backend/internal/validators"
)

const (
	configPathEnv = "NEWSVERIFY_CONFIG"

	portEnv              = "PORT"
	ginModeEnv           = "GIN_MODE"
	logLevelEnv          = "LOG_LEVEL"
	backendEnv           = "CLASSIFIER_BACKEND"
	seedEnv              = "CLASSIFIER_SEED"
	timeoutEnv           = "CLASSIFIER_TIMEOUT"
	inferenceURLEnv      = "INFERENCE_URL"
	inferenceAPIKeyEnv   = "INFERENCE_API_KEY"
	geminiAPIKeyEnv      = "GEMINI_API_KEY"
	geminiModelEnv       = "GEMINI_MODEL"
	redisAddrEnv         = "REDIS_ADDR"
	cacheTTLEnv          = "CACHE_TTL"
	corsAllowedOriginEnv = "CORS_ALLOWED_ORIGINS"
)

// Backend names accepted by classifier.backend.
const (
	BackendStub   = "stub"
	BackendRemote = "remote"
	BackendGemini = "gemini"
)

// Config holds every setting of the service.
type Config struct {
	Service    ServiceConfig    `yaml:"service"`
	Server     ServerConfig     `yaml:"server"`
	Log        LogConfig        `yaml:"log"`
	Classifier ClassifierConfig `yaml:"classifier"`
	Inference  InferenceConfig  `yaml:"inference"`
	Gemini     GeminiConfig     `yaml:"gemini"`
	Cache      CacheConfig      `yaml:"cache"`
	CORS       CORSConfig       `yaml:"cors"`
}

// ServiceConfig is reported by the health endpoint.
type ServiceConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Port            string        `yaml:"port"`
	GinMode         string        `yaml:"ginMode"`
	ReadTimeout     time.Duration `yaml:"readTimeout"`
	WriteTimeout    time.Duration `yaml:"writeTimeout"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
	MaxBodyBytes    int64         `yaml:"maxBodyBytes"`
}

// LogConfig sets the slog level.
type LogConfig struct {
	Level string `yaml:"level"`
}

// ClassifierConfig selects the prediction backend.
type ClassifierConfig struct {
	Backend       string        `yaml:"backend"`
	Seed          int64         `yaml:"seed"`
	Timeout       time.Duration `yaml:"timeout"`
	ProbeTimeout  time.Duration `yaml:"probeTimeout"`
	MaxTextLength int           `yaml:"maxTextLength"`
	// MonitorInterval is the period of the background readiness probe.
	MonitorInterval time.Duration `yaml:"monitorInterval"`
}

// InferenceConfig points to a remote model server.
type InferenceConfig struct {
	URL    string `yaml:"url"`
	APIKey string `yaml:"apiKey"`
}

// GeminiConfig defines how to contact the Google Generative AI API.
type GeminiConfig struct {
	APIKey string `yaml:"apiKey"`
	Model  string `yaml:"model"`
}

// CacheConfig enables the Redis prediction cache when RedisAddr is set.
type CacheConfig struct {
	RedisAddr     string        `yaml:"redisAddr"`
	RedisPassword string        `yaml:"redisPassword"`
	RedisDB       int           `yaml:"redisDb"`
	TTL           time.Duration `yaml:"ttl"`
}

// Enabled reports whether a Redis address is configured.
func (c CacheConfig) Enabled() bool {
	return strings.TrimSpace(c.RedisAddr) != ""
}

// CORSConfig lists allowed origins. Empty or "*" allows all.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

// Load reads .env (if present), the YAML file named by NEWSVERIFY_CONFIG
// (if set) and then applies environment overrides. Unreadable optional
// sources are logged and skipped; malformed overrides are errors.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("config: cannot load .env", "error", err)
	}

	cfg := Default()

	if path := os.Getenv(configPathEnv); path != "" {
		fileCfg, err := readFile(path)
		if err != nil {
			return Config{}, err
		}
		cfg = merge(cfg, fileCfg)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns settings for local development with the stub backend.
func Default() Config {
	return Config{
		Service: ServiceConfig{Name: "newsverify-api", Version: "1.0.0"},
		Server: ServerConfig{
			Port:            "8080",
			GinMode:         "release",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxBodyBytes:    1 << 20,
		},
		Log: LogConfig{Level: "info"},
		Classifier: ClassifierConfig{
			Backend:         BackendStub,
			Seed:            42,
			Timeout:         10 * time.Second,
			ProbeTimeout:    3 * time.Second,
			MaxTextLength:   50000,
			MonitorInterval: 30 * time.Second,
		},
		Gemini: GeminiConfig{Model: "gemini-1.5-flash"},
		Cache:  CacheConfig{TTL: 24 * time.Hour},
	}
}

// Validate checks settings that would otherwise fail at first request.
func (c Config) Validate() error {
	var errs []error

	switch c.Classifier.Backend {
	case BackendStub:
	case BackendRemote:
		if strings.TrimSpace(c.Inference.URL) == "" {
			errs = append(errs, validators.NewValidationError("inference.url", "required for the remote backend"))
		}
	case BackendGemini:
		if strings.TrimSpace(c.Gemini.APIKey) == "" {
			errs = append(errs, validators.NewValidationError("gemini.apiKey", "required for the gemini backend"))
		}
	default:
		errs = append(errs, validators.NewValidationError("classifier.backend",
			fmt.Sprintf("unknown backend %q (expected: stub, remote, gemini)", c.Classifier.Backend)))
	}

	if c.Classifier.Timeout <= 0 {
		errs = append(errs, validators.NewValidationError("classifier.timeout", "must be positive"))
	}
	if c.Classifier.ProbeTimeout <= 0 {
		errs = append(errs, validators.NewValidationError("classifier.probeTimeout", "must be positive"))
	}
	if c.Classifier.MonitorInterval <= 0 {
		errs = append(errs, validators.NewValidationError("classifier.monitorInterval", "must be positive"))
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, validators.NewValidationError("server.shutdownTimeout", "must be positive"))
	}
	if c.Cache.Enabled() && c.Cache.TTL < 0 {
		errs = append(errs, validators.NewValidationError("cache.ttl", "must not be negative"))
	}
	if err := validators.ValidateServiceVersion(c.Service.Version, "service.version"); err != nil {
		errs = append(errs, err)
	}
	if strings.TrimSpace(c.Server.Port) == "" {
		errs = append(errs, validators.NewValidationError("server.port", "required"))
	}

	return errors.Join(errs...)
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return ":" + c.Server.Port
}

func readFile(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	var fileCfg Config
	if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return fileCfg, nil
}

func (c *Config) applyEnvOverrides() error {
	setString(&c.Server.Port, portEnv)
	setString(&c.Server.GinMode, ginModeEnv)
	setString(&c.Log.Level, logLevelEnv)
	setString(&c.Classifier.Backend, backendEnv)
	setString(&c.Inference.URL, inferenceURLEnv)
	setString(&c.Inference.APIKey, inferenceAPIKeyEnv)
	setString(&c.Gemini.APIKey, geminiAPIKeyEnv)
	setString(&c.Gemini.Model, geminiModelEnv)
	setString(&c.Cache.RedisAddr, redisAddrEnv)

	if v := os.Getenv(seedEnv); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: %s: %w", seedEnv, err)
		}
		c.Classifier.Seed = seed
	}
	if err := setDuration(&c.Classifier.Timeout, timeoutEnv); err != nil {
		return err
	}
	if err := setDuration(&c.Cache.TTL, cacheTTLEnv); err != nil {
		return err
	}

	if v := os.Getenv(corsAllowedOriginEnv); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.CORS.AllowedOrigins = origins
	}
	c.Classifier.Backend = strings.ToLower(strings.TrimSpace(c.Classifier.Backend))
	return nil
}

func setString(dst *string, env string) {
	if v := os.Getenv(env); v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, env string) error {
	v := os.Getenv(env)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("config: %s: %w", env, err)
	}
	*dst = d
	return nil
}

func merge(base, override Config) Config {
	mergeString(&base.Service.Name, override.Service.Name)
	mergeString(&base.Service.Version, override.Service.Version)

	mergeString(&base.Server.Port, override.Server.Port)
	mergeString(&base.Server.GinMode, override.Server.GinMode)
	mergeDuration(&base.Server.ReadTimeout, override.Server.ReadTimeout)
	mergeDuration(&base.Server.WriteTimeout, override.Server.WriteTimeout)
	mergeDuration(&base.Server.ShutdownTimeout, override.Server.ShutdownTimeout)
	if override.Server.MaxBodyBytes > 0 {
		base.Server.MaxBodyBytes = override.Server.MaxBodyBytes
	}

	mergeString(&base.Log.Level, override.Log.Level)

	mergeString(&base.Classifier.Backend, override.Classifier.Backend)
	if override.Classifier.Seed != 0 {
		base.Classifier.Seed = override.Classifier.Seed
	}
	mergeDuration(&base.Classifier.Timeout, override.Classifier.Timeout)
	mergeDuration(&base.Classifier.ProbeTimeout, override.Classifier.ProbeTimeout)
	mergeDuration(&base.Classifier.MonitorInterval, override.Classifier.MonitorInterval)
	if override.Classifier.MaxTextLength != 0 {
		base.Classifier.MaxTextLength = override.Classifier.MaxTextLength
	}

	mergeString(&base.Inference.URL, override.Inference.URL)
	mergeString(&base.Inference.APIKey, override.Inference.APIKey)
	mergeString(&base.Gemini.APIKey, override.Gemini.APIKey)
	mergeString(&base.Gemini.Model, override.Gemini.Model)

	mergeString(&base.Cache.RedisAddr, override.Cache.RedisAddr)
	mergeString(&base.Cache.RedisPassword, override.Cache.RedisPassword)
	if override.Cache.RedisDB != 0 {
		base.Cache.RedisDB = override.Cache.RedisDB
	}
	mergeDuration(&base.Cache.TTL, override.Cache.TTL)

	if len(override.CORS.AllowedOrigins) > 0 {
		base.CORS.AllowedOrigins = override.CORS.AllowedOrigins
	}
	return base
}

func mergeString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func mergeDuration(dst *time.Duration, v time.Duration) {
	if v != 0 {
		*dst = v
	}
}
