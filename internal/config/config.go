package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration required by the voice webhook process.
// All values must come from env (or env-file loaded by the process runner).
// No business logic should depend on raw environment variables.
type Config struct {
	App     AppConfig
	OpenAI  OpenAIConfig
	Contact ContactConfig
	Gather  GatherConfig
	DB      DBConfig
	Redis   RedisConfig
	Ops     OpsConfig
}

type AppConfig struct {
	Env  string
	Port int
}

// OpenAIConfig configures the answer/greeting backend. An empty APIKey is
// allowed: the service then runs entirely on the keyword fallback.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// ContactConfig is the human-contact metadata spoken in fallback messages and
// exposed by the diagnostics endpoint.
type ContactConfig struct {
	Company  string
	Email    string
	Phone    string
	Location string
}

// GatherConfig controls the input-gathering instruction in every rendered
// call-control document.
type GatherConfig struct {
	InputModes     string
	TimeoutSeconds int
	SpeechTimeout  string
	ActionPath     string
	DirectPath     string
	Voice          string
	Language       string
}

// DBConfig is the optional postgres knowledge store. When Host is empty the
// in-memory seed corpus is used instead.
type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// RedisConfig is the optional turn-journal store. When Host is empty the
// journal stays in process memory.
type RedisConfig struct {
	Host string
	Port int
}

type OpsConfig struct {
	JWTSecret   string
	JWTIssuer   string
	JWTAudience string
	TokenTTL    time.Duration
}

func Load() (Config, error) {
	c := Config{}
	var parseErrs []error

	c.App.Env = strings.TrimSpace(os.Getenv("APP_ENV"))
	{
		n, err := mustInt("APP_PORT")
		n, parseErrs = appendParseErr(parseErrs, n, err)
		c.App.Port = n
	}

	c.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	c.OpenAI.Model = strings.TrimSpace(os.Getenv("OPENAI_MODEL"))
	c.OpenAI.Timeout = optionalDuration("ANSWER_TIMEOUT")

	c.Contact.Company = strings.TrimSpace(os.Getenv("COMPANY_NAME"))
	c.Contact.Email = strings.TrimSpace(os.Getenv("CONTACT_EMAIL"))
	c.Contact.Phone = strings.TrimSpace(os.Getenv("CONTACT_PHONE"))
	c.Contact.Location = strings.TrimSpace(os.Getenv("CONTACT_LOCATION"))

	c.Gather.InputModes = strings.TrimSpace(os.Getenv("GATHER_INPUT"))
	c.Gather.TimeoutSeconds = optionalInt("GATHER_TIMEOUT_SECONDS")
	c.Gather.SpeechTimeout = strings.TrimSpace(os.Getenv("GATHER_SPEECH_TIMEOUT"))
	c.Gather.ActionPath = strings.TrimSpace(os.Getenv("GATHER_ACTION_PATH"))
	c.Gather.DirectPath = strings.TrimSpace(os.Getenv("GATHER_DIRECT_PATH"))
	c.Gather.Voice = strings.TrimSpace(os.Getenv("GATHER_VOICE"))
	c.Gather.Language = strings.TrimSpace(os.Getenv("GATHER_LANGUAGE"))

	c.DB.Host = strings.TrimSpace(os.Getenv("DB_HOST"))
	c.DB.Port = optionalInt("DB_PORT")
	c.DB.User = strings.TrimSpace(os.Getenv("DB_USER"))
	c.DB.Password = os.Getenv("DB_PASSWORD")
	c.DB.Name = strings.TrimSpace(os.Getenv("DB_NAME"))
	c.DB.SSLMode = strings.TrimSpace(os.Getenv("DB_SSLMODE"))

	c.Redis.Host = strings.TrimSpace(os.Getenv("REDIS_HOST"))
	c.Redis.Port = optionalInt("REDIS_PORT")

	c.Ops.JWTSecret = os.Getenv("OPS_JWT_SECRET")
	c.Ops.JWTIssuer = strings.TrimSpace(os.Getenv("OPS_JWT_ISSUER"))
	c.Ops.JWTAudience = strings.TrimSpace(os.Getenv("OPS_JWT_AUDIENCE"))
	c.Ops.TokenTTL = optionalDuration("OPS_TOKEN_TTL")

	if err := joinErrors(parseErrs); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	c.applyDefaults()
	return c, nil
}

func (c *Config) Validate() error {
	var errs []error

	if c.App.Env == "" {
		errs = append(errs, errors.New("APP_ENV is required"))
	} else if !isValidEnv(c.App.Env) {
		errs = append(errs, fmt.Errorf("APP_ENV must be one of local, dev, staging, production, got %q", c.App.Env))
	}
	if c.App.Port <= 0 || c.App.Port > 65535 {
		errs = append(errs, fmt.Errorf("APP_PORT must be a valid port, got %d", c.App.Port))
	}

	// Postgres is optional, but a partially configured group is a mistake.
	if c.DB.Host != "" {
		if c.DB.Port <= 0 || c.DB.Port > 65535 {
			errs = append(errs, fmt.Errorf("DB_PORT must be a valid port, got %d", c.DB.Port))
		}
		if c.DB.User == "" {
			errs = append(errs, errors.New("DB_USER is required when DB_HOST is set"))
		}
		if c.DB.Name == "" {
			errs = append(errs, errors.New("DB_NAME is required when DB_HOST is set"))
		}
		if c.DB.SSLMode == "" {
			if c.IsProduction() {
				errs = append(errs, errors.New("DB_SSLMODE is required in production"))
			} else {
				c.DB.SSLMode = "disable"
			}
		}
		if c.DB.SSLMode != "" && !isValidSSLMode(c.DB.SSLMode) {
			errs = append(errs, fmt.Errorf("DB_SSLMODE must be one of disable, require, verify-ca, verify-full, got %q", c.DB.SSLMode))
		}
	}

	if c.Redis.Host != "" && (c.Redis.Port <= 0 || c.Redis.Port > 65535) {
		errs = append(errs, fmt.Errorf("REDIS_PORT must be a valid port, got %d", c.Redis.Port))
	}

	if c.IsProduction() {
		if c.Ops.JWTSecret == "" {
			errs = append(errs, errors.New("OPS_JWT_SECRET is required in production"))
		}
		if c.OpenAI.APIKey == "" {
			// Fallback-only operation is a deliberate choice, never an accident.
			if strings.TrimSpace(os.Getenv("ALLOW_FALLBACK_ONLY")) != "true" {
				errs = append(errs, errors.New("OPENAI_API_KEY is required in production (or set ALLOW_FALLBACK_ONLY=true)"))
			}
		}
	}

	if c.Gather.TimeoutSeconds < 0 {
		errs = append(errs, fmt.Errorf("GATHER_TIMEOUT_SECONDS must not be negative, got %d", c.Gather.TimeoutSeconds))
	}

	return joinErrors(errs)
}

func (c *Config) applyDefaults() {
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "gpt-3.5-turbo"
	}
	if c.OpenAI.Timeout <= 0 {
		c.OpenAI.Timeout = 10 * time.Second
	}

	if c.Contact.Company == "" {
		c.Contact.Company = "NextCore AI"
	}
	if c.Contact.Email == "" {
		c.Contact.Email = "nextcoreai.in@gmail.com"
	}
	if c.Contact.Phone == "" {
		c.Contact.Phone = "+91 6202579799"
	}
	if c.Contact.Location == "" {
		c.Contact.Location = "Bangalore, India"
	}

	if c.Gather.InputModes == "" {
		c.Gather.InputModes = "speech dtmf"
	}
	if c.Gather.TimeoutSeconds == 0 {
		c.Gather.TimeoutSeconds = 15
	}
	if c.Gather.SpeechTimeout == "" {
		c.Gather.SpeechTimeout = "auto"
	}
	if c.Gather.ActionPath == "" {
		c.Gather.ActionPath = "/webhooks/exotel/voice"
	}
	if c.Gather.DirectPath == "" {
		c.Gather.DirectPath = "/direct-voice"
	}
	if c.Gather.Voice == "" {
		c.Gather.Voice = "woman"
	}

	if c.Ops.TokenTTL <= 0 {
		c.Ops.TokenTTL = 12 * time.Hour
	}
}

func (c Config) IsProduction() bool {
	return c.App.Env == "production"
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.App.Port)
}

// HasPostgres reports whether the knowledge store should use postgres.
func (c Config) HasPostgres() bool { return c.DB.Host != "" }

// HasRedis reports whether the turn journal should use redis.
func (c Config) HasRedis() bool { return c.Redis.Host != "" }

func (c Config) PostgresDSN() string {
	// Avoid logging this string; it contains secrets.
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DB.Host,
		c.DB.Port,
		c.DB.User,
		c.DB.Password,
		c.DB.Name,
		c.DB.SSLMode,
	)
}

func (c Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

func mustInt(key string) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, v)
	}
	return n, nil
}

func optionalInt(key string) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

func optionalDuration(key string) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0
	}
	return d
}

func appendParseErr(errs []error, n int, err error) (int, []error) {
	if err != nil {
		errs = append(errs, err)
	}
	return n, errs
}

func isValidEnv(v string) bool {
	switch v {
	case "local", "dev", "staging", "production":
		return true
	default:
		return false
	}
}

func isValidSSLMode(v string) bool {
	switch v {
	case "disable", "require", "verify-ca", "verify-full":
		return true
	default:
		return false
	}
}

func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}
	var b strings.Builder
	b.WriteString("config errors:\n")
	for _, e := range errs {
		b.WriteString("- ")
		b.WriteString(e.Error())
		b.WriteString("\n")
	}
	return errors.New(strings.TrimSpace(b.String()))
}
