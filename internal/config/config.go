package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// DevSecret is the signing secret used when JWT_SECRET is not set.
// Fine for local development, never for a deployed instance.
const DevSecret = "dev-secret-change-me"

type Config struct {
	MongoURI     string        `env:"MONGODB_URI" env-default:"mongodb://localhost:27017/"`
	DatabaseName string        `env:"DATABASE_NAME" env-default:"student_feedback_db"`
	JWTSecret    string        `env:"JWT_SECRET" env-default:""`
	TokenTTL     time.Duration `env:"TOKEN_TTL" env-default:"24h"`
	// ConnectTimeout bounds the startup MongoDB probe; it is the only
	// timeout in the system.
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT" env-default:"5s"`
	Port           string        `env:"PORT" env-default:"5000"`
	Debug          bool          `env:"DEBUG" env-default:"false"`

	// Resend email notifications for new feedback. Empty api key means
	// notifications are logged instead of sent.
	ResendAPIKey string `env:"RESEND_API_KEY" env-default:""`
	FromEmail    string `env:"FROM_EMAIL" env-default:""`
	NotifyEmail  string `env:"NOTIFY_EMAIL" env-default:""`
}

// New loads configuration from the environment, reading .env first when
// present (ignored in production where env vars are set directly).
func New() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read config error: %w", err)
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = DevSecret
	}

	return cfg, nil
}

// UsingDevSecret reports whether the insecure development fallback secret
// is in effect, so startup can warn about it.
func (c Config) UsingDevSecret() bool {
	return c.JWTSecret == DevSecret
}
