package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Auth      AuthConfig      `yaml:"auth"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Email     EmailConfig     `yaml:"email"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Correlation-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
// When File is set, records are also written to a size-rotated file.
type LogConfig struct {
	Level      string `yaml:"level"        env:"LOG_LEVEL"        env-default:"info"`
	Format     string `yaml:"format"       env:"LOG_FORMAT"       env-default:"json"`
	File       string `yaml:"file"         env:"LOG_FILE"`
	MaxSizeMB  int    `yaml:"max_size_mb"  env:"LOG_MAX_SIZE_MB"  env-default:"20"`
	MaxBackups int    `yaml:"max_backups"  env:"LOG_MAX_BACKUPS"  env-default:"14"`
	MaxAgeDays int    `yaml:"max_age_days" env:"LOG_MAX_AGE_DAYS" env-default:"14"`
	Compress   bool   `yaml:"compress"     env:"LOG_COMPRESS"     env-default:"true"`
}

// RateLimitConfig limits anonymous intake requests per client.
type RateLimitConfig struct {
	IntakePerMinute int           `yaml:"intake_per_minute" env:"RATE_LIMIT_INTAKE_PER_MINUTE" env-default:"10"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"  env:"RATE_LIMIT_CLEANUP_INTERVAL"  env-default:"5m"`
	// TrustForwardedFor keys clients on X-Forwarded-For. Enable only behind
	// a proxy that sets the header itself.
	TrustForwardedFor bool `yaml:"trust_forwarded_for" env:"RATE_LIMIT_TRUST_FORWARDED_FOR" env-default:"false"`
}

// AuthConfig points at the external session service.
type AuthConfig struct {
	ServiceURL string        `yaml:"service_url" env:"AUTH_SERVICE_URL" env-default:"http://localhost:4000"`
	Timeout    time.Duration `yaml:"timeout"     env:"AUTH_TIMEOUT"     env-default:"3s"`
}

// KafkaConfig holds broker, producer and consumer settings.
type KafkaConfig struct {
	Enabled                bool          `yaml:"enabled"                   env:"KAFKA_ENABLED"                   env-default:"false"`
	BrokersRaw             string        `yaml:"brokers"                   env:"KAFKA_BROKERS"                   env-default:"localhost:9092"`
	ClientID               string        `yaml:"client_id"                 env:"KAFKA_CLIENT_ID"                 env-default:"complaints-backend"`
	DialTimeout            time.Duration `yaml:"dial_timeout"              env:"KAFKA_DIAL_TIMEOUT"              env-default:"10s"`
	WriteTimeout           time.Duration `yaml:"write_timeout"             env:"KAFKA_WRITE_TIMEOUT"             env-default:"30s"`
	BatchTimeout           time.Duration `yaml:"batch_timeout"             env:"KAFKA_BATCH_TIMEOUT"             env-default:"10ms"`
	MaxAttempts            int           `yaml:"max_attempts"              env:"KAFKA_MAX_ATTEMPTS"              env-default:"5"`
	RequiredAcks           int           `yaml:"required_acks"             env:"KAFKA_REQUIRED_ACKS"             env-default:"-1"`
	Compression            string        `yaml:"compression"               env:"KAFKA_COMPRESSION"               env-default:"gzip"`
	AllowAutoTopicCreation bool          `yaml:"allow_auto_topic_creation" env:"KAFKA_ALLOW_AUTO_TOPIC_CREATION" env-default:"true"`
	TopicStatusEvents      string        `yaml:"topic_status_events"       env:"KAFKA_TOPIC_STATUS_EVENTS"       env-default:"complaint-status-events"`
	TopicEmails            string        `yaml:"topic_email_notifications" env:"KAFKA_TOPIC_EMAIL_NOTIFICATIONS" env-default:"email-notifications"`
	ConsumerGroupID        string        `yaml:"consumer_group_id"         env:"KAFKA_CONSUMER_GROUP_ID"         env-default:"complaint-history"`
	ConsumerRetryBackoff   time.Duration `yaml:"consumer_retry_backoff"    env:"KAFKA_CONSUMER_RETRY_BACKOFF"    env-default:"2s"`

	// Brokers is parsed from BrokersRaw during validation.
	Brokers []string `yaml:"-" env:"-"`
}

// EmailConfig holds the distribution lists for complaint notifications.
type EmailConfig struct {
	RecipientsRaw     string `yaml:"recipients"          env:"EMAIL_RECIPIENTS"`
	CCRecipientsRaw   string `yaml:"cc_recipients"       env:"EMAIL_CC_RECIPIENTS"`
	Source            string `yaml:"source"              env:"EMAIL_SOURCE"              env-default:"complaints-service"`
	UnknownEntityName string `yaml:"unknown_entity_name" env:"EMAIL_UNKNOWN_ENTITY_NAME" env-default:"Unknown entity"`

	// Recipients is parsed from RecipientsRaw during validation.
	Recipients []string `yaml:"-" env:"-"`
	// CCRecipients is parsed from CCRecipientsRaw during validation.
	CCRecipients []string `yaml:"-" env:"-"`
}
