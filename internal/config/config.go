package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Engine   EngineConfig
	Sampling SamplingConfig
	Raster   RasterConfig
	Limits   LimitsConfig
	CORS     CORSConfig
	Archive  ArchiveConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// Addr returns the host:port listen address.
func (s *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// EngineConfig holds inference engine settings.
type EngineConfig struct {
	Provider       string `mapstructure:"provider"`
	Endpoint       string `mapstructure:"endpoint"`
	APIKey         string `mapstructure:"api_key"`
	Model          string `mapstructure:"model"`
	TimeoutSecs    int    `mapstructure:"timeout_secs"`
	MaxConcurrency int    `mapstructure:"max_concurrency"`
}

// SamplingConfig holds the base sampling parameter values.
type SamplingConfig struct {
	Temperature float64 `mapstructure:"temperature"`
	TopP        float64 `mapstructure:"top_p"`
	MaxTokens   int     `mapstructure:"max_tokens"`
}

// RasterConfig holds page rasterization settings.
type RasterConfig struct {
	DPI       int `mapstructure:"dpi"`
	MaxWidth  int `mapstructure:"max_width"`
	MaxHeight int `mapstructure:"max_height"`
}

// LimitsConfig holds upload limits.
type LimitsConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// MaxFileSizeBytes returns the upload size cap in bytes.
func (l *LimitsConfig) MaxFileSizeBytes() int64 {
	return l.MaxFileSizeMB * 1024 * 1024
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ArchiveConfig holds optional result archive settings.
type ArchiveConfig struct {
	Provider string   `mapstructure:"provider"`
	Prefix   string   `mapstructure:"prefix"`
	S3       S3Config `mapstructure:"s3"`
}

// S3Config holds AWS S3 settings for the archive sink.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// Load reads configuration from environment variables with the DOCREAD_
// prefix. A handful of unprefixed variables (HOST, PORT, LOG_LEVEL,
// MODEL_PATH, MAX_CONCURRENCY) are honored as fallbacks so existing
// deployments keep working.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DOCREAD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "600s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Engine defaults
	v.SetDefault("engine.provider", "vllm")
	v.SetDefault("engine.endpoint", "http://127.0.0.1:8501/infer")
	v.SetDefault("engine.api_key", "")
	v.SetDefault("engine.model", "deepseek-ai/DeepSeek-OCR")
	v.SetDefault("engine.timeout_secs", 300)
	v.SetDefault("engine.max_concurrency", 50)

	// Sampling defaults (base configuration, fixed at startup)
	v.SetDefault("sampling.temperature", 0.1)
	v.SetDefault("sampling.top_p", 0.95)
	v.SetDefault("sampling.max_tokens", 1500)

	// Raster defaults
	v.SetDefault("raster.dpi", 144)
	v.SetDefault("raster.max_width", 2048)
	v.SetDefault("raster.max_height", 2048)

	// Limits defaults
	v.SetDefault("limits.max_file_size_mb", 50)

	// CORS defaults (open, same as the reference deployment)
	v.SetDefault("cors.allowed_origins", "*")

	// Archive defaults
	v.SetDefault("archive.provider", "noop")
	v.SetDefault("archive.prefix", "ocr-results")
	v.SetDefault("archive.s3.region", "us-east-1")
	v.SetDefault("archive.s3.bucket", "docread-results")
	v.SetDefault("archive.s3.endpoint", "")
	v.SetDefault("archive.s3.access_key", "")
	v.SetDefault("archive.s3.secret_key", "")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.host":             "DOCREAD_SERVER_HOST",
		"server.port":             "DOCREAD_SERVER_PORT",
		"server.read_timeout":     "DOCREAD_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "DOCREAD_SERVER_WRITE_TIMEOUT",
		"server.environment":      "DOCREAD_SERVER_ENVIRONMENT",
		"log.level":               "DOCREAD_LOG_LEVEL",
		"log.format":              "DOCREAD_LOG_FORMAT",
		"engine.provider":         "DOCREAD_ENGINE_PROVIDER",
		"engine.endpoint":         "DOCREAD_ENGINE_ENDPOINT",
		"engine.api_key":          "DOCREAD_ENGINE_API_KEY",
		"engine.model":            "DOCREAD_ENGINE_MODEL",
		"engine.timeout_secs":     "DOCREAD_ENGINE_TIMEOUT_SECS",
		"engine.max_concurrency":  "DOCREAD_ENGINE_MAX_CONCURRENCY",
		"sampling.temperature":    "DOCREAD_SAMPLING_TEMPERATURE",
		"sampling.top_p":          "DOCREAD_SAMPLING_TOP_P",
		"sampling.max_tokens":     "DOCREAD_SAMPLING_MAX_TOKENS",
		"raster.dpi":              "DOCREAD_RASTER_DPI",
		"raster.max_width":        "DOCREAD_RASTER_MAX_WIDTH",
		"raster.max_height":       "DOCREAD_RASTER_MAX_HEIGHT",
		"limits.max_file_size_mb": "DOCREAD_LIMITS_MAX_FILE_SIZE_MB",
		"cors.allowed_origins":    "DOCREAD_CORS_ALLOWED_ORIGINS",
		"archive.provider":        "DOCREAD_ARCHIVE_PROVIDER",
		"archive.prefix":          "DOCREAD_ARCHIVE_PREFIX",
		"archive.s3.region":       "DOCREAD_ARCHIVE_S3_REGION",
		"archive.s3.bucket":       "DOCREAD_ARCHIVE_S3_BUCKET",
		"archive.s3.endpoint":     "DOCREAD_ARCHIVE_S3_ENDPOINT",
		"archive.s3.access_key":   "DOCREAD_ARCHIVE_S3_ACCESS_KEY",
		"archive.s3.secret_key":   "DOCREAD_ARCHIVE_S3_SECRET_KEY",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Legacy unprefixed variables win over defaults but not over the
	// prefixed form. PORT also covers Railway/Heroku/Render deployments.
	host := v.GetString("server.host")
	if h := legacyEnv("HOST", "DOCREAD_SERVER_HOST"); h != "" {
		host = h
	}
	port := v.GetInt("server.port")
	if p := legacyEnv("PORT", "DOCREAD_SERVER_PORT"); p != "" {
		if n, err := strconv.Atoi(p); err == nil {
			port = n
		}
	}
	logLevel := v.GetString("log.level")
	if l := legacyEnv("LOG_LEVEL", "DOCREAD_LOG_LEVEL"); l != "" {
		logLevel = strings.ToLower(l)
	}
	model := v.GetString("engine.model")
	if m := legacyEnv("MODEL_PATH", "DOCREAD_ENGINE_MODEL"); m != "" {
		model = m
	}
	maxConcurrency := v.GetInt("engine.max_concurrency")
	if mc := legacyEnv("MAX_CONCURRENCY", "DOCREAD_ENGINE_MAX_CONCURRENCY"); mc != "" {
		if n, err := strconv.Atoi(mc); err == nil {
			maxConcurrency = n
		}
	}

	cfg.Server = ServerConfig{
		Host:         host,
		Port:         port,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  logLevel,
		Format: v.GetString("log.format"),
	}
	cfg.Engine = EngineConfig{
		Provider:       v.GetString("engine.provider"),
		Endpoint:       v.GetString("engine.endpoint"),
		APIKey:         v.GetString("engine.api_key"),
		Model:          model,
		TimeoutSecs:    v.GetInt("engine.timeout_secs"),
		MaxConcurrency: maxConcurrency,
	}
	cfg.Sampling = SamplingConfig{
		Temperature: v.GetFloat64("sampling.temperature"),
		TopP:        v.GetFloat64("sampling.top_p"),
		MaxTokens:   v.GetInt("sampling.max_tokens"),
	}
	cfg.Raster = RasterConfig{
		DPI:       v.GetInt("raster.dpi"),
		MaxWidth:  v.GetInt("raster.max_width"),
		MaxHeight: v.GetInt("raster.max_height"),
	}
	cfg.Limits = LimitsConfig{
		MaxFileSizeMB: v.GetInt64("limits.max_file_size_mb"),
	}

	// Parse CORS allowed origins from a comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.Archive = ArchiveConfig{
		Provider: v.GetString("archive.provider"),
		Prefix:   v.GetString("archive.prefix"),
		S3: S3Config{
			Region:    v.GetString("archive.s3.region"),
			Bucket:    v.GetString("archive.s3.bucket"),
			Endpoint:  v.GetString("archive.s3.endpoint"),
			AccessKey: v.GetString("archive.s3.access_key"),
			SecretKey: v.GetString("archive.s3.secret_key"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// legacyEnv returns the unprefixed variable's value unless the prefixed
// form is explicitly set.
func legacyEnv(legacy, prefixed string) string {
	if os.Getenv(prefixed) != "" {
		return ""
	}
	return os.Getenv(legacy)
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in (0, 65535]: %d", c.Server.Port)
	}
	if c.Engine.MaxConcurrency <= 0 {
		return fmt.Errorf("engine.max_concurrency must be positive: %d", c.Engine.MaxConcurrency)
	}
	switch c.Engine.Provider {
	case "vllm", "openai":
	default:
		return fmt.Errorf("unknown engine provider: %s", c.Engine.Provider)
	}
	if c.Raster.DPI <= 0 {
		return fmt.Errorf("raster.dpi must be positive: %d", c.Raster.DPI)
	}
	if c.Limits.MaxFileSizeMB <= 0 {
		return fmt.Errorf("limits.max_file_size_mb must be positive: %d", c.Limits.MaxFileSizeMB)
	}
	switch c.Archive.Provider {
	case "noop", "s3":
	default:
		return fmt.Errorf("unknown archive provider: %s", c.Archive.Provider)
	}
	return nil
}
