package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	// Bookings
	BookingTimeZone string        // IANA zone the call slots are quoted in (default America/New_York)
	OperatorEmail   string        // inbox that receives new-booking notifications
	CronSecret      string        // shared secret for the reminder trigger endpoint (empty = open)
	ReminderPeriod  time.Duration // internal reminder sweep interval (0 = external trigger only)
	TopicsFile      string        // optional override for the lead-magnet topic catalog

	// Redis (empty RedisAddr = in-memory store, local dev only)
	RedisAddr           string
	RedisUser           string
	RedisPassword       string
	RedisDB             int
	RedisDT             time.Duration // dial timeout
	RedisRT             time.Duration // read timeout
	RedisWT             time.Duration // write timeout
	RedisMaxWait        time.Duration // max wait between retries
	RedisPingTimeout    time.Duration // timeout for each ping attempt
	RedisPoolSize       int
	RedisConnectTimeout time.Duration // total time to retry connecting
	RedisRetryInterval  time.Duration // initial wait between retries (grows exponentially)
	RedisWarnThreshold  int           // warn after this many attempts

	// SMTP (empty SMTPHost = logging sender, local dev only)
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string // display From, ex: "RevShare" <bookings@revshare.example>

	// Anthropic (empty key = enrichment disabled)
	AnthropicAPIKey  string
	AnthropicModel   string
	AnthropicTimeout time.Duration

	// Rate limiting on public POST endpoints
	RateLimitBurst  int
	RateLimitPerMin int
	TrustProxy      bool
}

func Load() *Config {
	// Local development convenience; absence is not an error.
	_ = godotenv.Load()

	cfg := &Config{
		// Server settings
		ListenPort:      getenv("REVSHARE_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("REVSHARE_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("REVSHARE_LOG_LEVEL", "info"),
		PrettyLog: mustBool("REVSHARE_PRETTY_LOG", false),

		// Bookings
		BookingTimeZone: getenv("REVSHARE_BOOKING_TZ", "America/New_York"),
		OperatorEmail:   getenv("REVSHARE_OPERATOR_EMAIL", ""),
		CronSecret:      getenv("REVSHARE_CRON_SECRET", ""),
		ReminderPeriod:  mustDuration("REVSHARE_REMINDER_PERIOD", 0),
		TopicsFile:      getenv("REVSHARE_TOPICS_FILE", ""),

		// Redis settings
		RedisAddr:           getenv("REVSHARE_REDIS_ADDR", ""),
		RedisUser:           getenv("REVSHARE_REDIS_USERNAME", "default"),
		RedisPassword:       getenv("REVSHARE_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("REVSHARE_REDIS_DB", 0),
		RedisDT:             mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:             mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:             mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:        mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:       getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:  getenvInt("REDIS_WARN_THRESHOLD", 3),

		// SMTP settings
		SMTPHost:     getenv("REVSHARE_SMTP_HOST", ""),
		SMTPPort:     getenvInt("REVSHARE_SMTP_PORT", 587),
		SMTPUsername: getenv("REVSHARE_SMTP_USERNAME", ""),
		SMTPPassword: getenv("REVSHARE_SMTP_PASSWORD", ""),
		SMTPFrom:     getenv("REVSHARE_SMTP_FROM", ""),

		// Anthropic settings
		AnthropicAPIKey:  getenv("REVSHARE_ANTHROPIC_API_KEY", ""),
		AnthropicModel:   getenv("REVSHARE_ANTHROPIC_MODEL", "claude-sonnet-4-20250514"),
		AnthropicTimeout: mustDuration("REVSHARE_ANTHROPIC_TIMEOUT", 60*time.Second),

		// Rate limiting
		RateLimitBurst:  getenvInt("REVSHARE_RATE_LIMIT_BURST", 5),
		RateLimitPerMin: getenvInt("REVSHARE_RATE_LIMIT_PER_MIN", 10),
		TrustProxy:      mustBool("REVSHARE_TRUST_PROXY", true),
	}

	if cfg.SMTPHost != "" && cfg.SMTPFrom == "" {
		panic("❌ FATAL: REVSHARE_SMTP_FROM is required when REVSHARE_SMTP_HOST is set")
	}
	if cfg.SMTPHost != "" && cfg.OperatorEmail == "" {
		panic("❌ FATAL: REVSHARE_OPERATOR_EMAIL is required when REVSHARE_SMTP_HOST is set")
	}
	if _, err := time.LoadLocation(cfg.BookingTimeZone); err != nil {
		panic(fmt.Sprintf("❌ FATAL: Invalid REVSHARE_BOOKING_TZ %q: %v", cfg.BookingTimeZone, err))
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		for _, secret := range []*string{
			&cfgCopy.RedisPassword, &cfgCopy.SMTPPassword,
			&cfgCopy.AnthropicAPIKey, &cfgCopy.CronSecret,
		} {
			if *secret != "" {
				*secret = "***REDACTED***"
			}
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// Location resolves the configured booking timezone. Load already validated
// it, so failure here means the tz database changed underneath us.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.BookingTimeZone)
	if err != nil {
		panic(fmt.Sprintf("❌ FATAL: Invalid REVSHARE_BOOKING_TZ %q: %v", c.BookingTimeZone, err))
	}
	return loc
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
