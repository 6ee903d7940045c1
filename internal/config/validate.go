package config

import (
	"fmt"
	"net/url"
	"strings"
)

var compressionCodecs = map[string]bool{
	"none": true, "gzip": true, "snappy": true, "lz4": true, "zstd": true,
}

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required")
	}

	if c.RateLimit.IntakePerMinute <= 0 {
		return fmt.Errorf("rate_limit.intake_per_minute must be > 0 (got %d)", c.RateLimit.IntakePerMinute)
	}

	if err := c.Auth.validate(); err != nil {
		return fmt.Errorf("auth: %w", err)
	}

	if err := c.Kafka.validate(); err != nil {
		return fmt.Errorf("kafka: %w", err)
	}

	if err := c.Email.validate(); err != nil {
		return fmt.Errorf("email: %w", err)
	}

	return nil
}

func (a *AuthConfig) validate() error {
	u, err := url.Parse(a.ServiceURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("service_url must be an absolute URL (got %q)", a.ServiceURL)
	}
	if a.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", a.Timeout)
	}
	return nil
}

func (k *KafkaConfig) validate() error {
	k.Brokers = ParseList(k.BrokersRaw)
	k.Compression = strings.ToLower(strings.TrimSpace(k.Compression))

	if !k.Enabled {
		return nil
	}
	if len(k.Brokers) == 0 {
		return fmt.Errorf("brokers must not be empty when kafka is enabled")
	}
	if !compressionCodecs[k.Compression] {
		return fmt.Errorf("compression must be one of none, gzip, snappy, lz4, zstd (got %q)", k.Compression)
	}
	switch k.RequiredAcks {
	case -1, 0, 1:
	default:
		return fmt.Errorf("required_acks must be -1, 0 or 1 (got %d)", k.RequiredAcks)
	}
	if k.TopicStatusEvents == "" || k.TopicEmails == "" {
		return fmt.Errorf("topic names must not be empty")
	}
	return nil
}

func (e *EmailConfig) validate() error {
	e.Recipients = ParseList(e.RecipientsRaw)
	e.CCRecipients = ParseList(e.CCRecipientsRaw)

	for _, addr := range append(append([]string{}, e.Recipients...), e.CCRecipients...) {
		if !strings.Contains(addr, "@") {
			return fmt.Errorf("invalid email address %q", addr)
		}
	}
	return nil
}

// ParseList splits a comma-separated string, trims every item and drops
// empty ones. An empty string returns a nil slice.
func ParseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		items = append(items, p)
	}

	return items
}
