package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	Storage    StorageConfig    `yaml:"storage"`
	Extraction ExtractionConfig `yaml:"extraction"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"30s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"90s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`

	// TrustProxyHeaders takes the client address from X-Forwarded-For.
	TrustProxyHeaders bool `yaml:"trust_proxy_headers" env:"SERVER_TRUST_PROXY_HEADERS" env-default:"false"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// StorageConfig holds attachment storage settings.
type StorageConfig struct {
	ResumeDir           string        `yaml:"resume_dir"             env:"STORAGE_RESUME_DIR"             env-default:"uploads/resumes"`
	CoverLetterDir      string        `yaml:"cover_letter_dir"       env:"STORAGE_COVER_LETTER_DIR"       env-default:"uploads/cover_letters"`
	MaxUploadBytes      int64         `yaml:"max_upload_bytes"       env:"STORAGE_MAX_UPLOAD_BYTES"       env-default:"10485760"`
	DeleteFilesOnRemove bool          `yaml:"delete_files_on_remove" env:"STORAGE_DELETE_FILES_ON_REMOVE" env-default:"true"`
	OrphanRetention     time.Duration `yaml:"orphan_retention"       env:"STORAGE_ORPHAN_RETENTION"       env-default:"24h"`
}

// ExtractionConfig holds job posting extraction settings. The API key itself
// is not process configuration: it is read from the settings table under
// CredentialKey on every call.
type ExtractionConfig struct {
	CredentialKey string        `yaml:"credential_key" env:"EXTRACTION_CREDENTIAL_KEY" env-default:"anthropic_api_key"`
	Model         string        `yaml:"model"          env:"EXTRACTION_MODEL"          env-default:"claude-sonnet-4-5"`
	BaseURL       string        `yaml:"base_url"       env:"EXTRACTION_BASE_URL"`
	MaxTokens     int64         `yaml:"max_tokens"     env:"EXTRACTION_MAX_TOKENS"     env-default:"1024"`
	MaxRetries    int           `yaml:"max_retries"    env:"EXTRACTION_MAX_RETRIES"    env-default:"1"`
	Timeout       time.Duration `yaml:"timeout"        env:"EXTRACTION_TIMEOUT"        env-default:"45s"`
	FetchTimeout  time.Duration `yaml:"fetch_timeout"  env:"EXTRACTION_FETCH_TIMEOUT"  env-default:"15s"`
	MaxPageBytes  int64         `yaml:"max_page_bytes" env:"EXTRACTION_MAX_PAGE_BYTES" env-default:"2097152"`
	MaxTextChars  int           `yaml:"max_text_chars" env:"EXTRACTION_MAX_TEXT_CHARS" env-default:"20000"`
	UserAgent     string        `yaml:"user_agent"     env:"EXTRACTION_USER_AGENT"     env-default:"Mozilla/5.0 (compatible; jobtracker/1.0)"`

	// RateLimitPerMinute caps parse-url calls per client IP. Zero disables it.
	RateLimitPerMinute int `yaml:"rate_limit_per_minute" env:"EXTRACTION_RATE_LIMIT_PER_MINUTE" env-default:"10"`

	// AllowPrivateHosts lets parse-url fetch pages on loopback, private and
	// link-local addresses. Off in production.
	AllowPrivateHosts bool `yaml:"allow_private_hosts" env:"EXTRACTION_ALLOW_PRIVATE_HOSTS" env-default:"false"`
}

// Origins returns the configured CORS origins, trimmed.
func (c CORSConfig) Origins() []string {
	parts := strings.Split(c.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
