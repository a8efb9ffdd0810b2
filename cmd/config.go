package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"fooddelivery/internal/jobs"
	"fooddelivery/internal/pkg/errs"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret string

	// KafkaBrokers may be empty; order events are then not published.
	KafkaBrokers []string
	KafkaTopic   string

	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	ReviewStatsTTL time.Duration

	ProgressSchedule string
	ProgressDelay    time.Duration
}

// LoadConfig reads the environment, loading .env first when it exists. Variables already
// set in the environment take precedence over .env.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	redisDB, err := intEnv("REDIS_DB", 0)
	if err != nil {
		return Config{}, err
	}
	statsTTL, err := durationEnv("REVIEW_STATS_TTL", 10*time.Minute)
	if err != nil {
		return Config{}, err
	}
	progressDelay, err := durationEnv("ORDER_PROGRESS_DELAY", jobs.DefaultProgressDelay)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Env:      stringEnv("ENV", "production"),
		HTTPPort: stringEnv("HTTP_PORT", "8080"),

		DBHost:     stringEnv("DB_HOST", "localhost"),
		DBPort:     stringEnv("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSslMode:  stringEnv("DB_SSLMODE", "disable"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		KafkaBrokers: listEnv("KAFKA_BROKERS"),
		KafkaTopic:   stringEnv("KAFKA_ORDER_STATUS_TOPIC", "order.status_changed"),

		RedisAddr:      stringEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        redisDB,
		ReviewStatsTTL: statsTTL,

		ProgressSchedule: stringEnv("ORDER_PROGRESS_SCHEDULE", jobs.DefaultProgressSchedule),
		ProgressDelay:    progressDelay,
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.DBUser == "":
		return errs.NewValueIsRequiredError("DB_USER")
	case c.DBName == "":
		return errs.NewValueIsRequiredError("DB_NAME")
	case c.JWTSecret == "":
		return errs.NewValueIsRequiredError("JWT_SECRET")
	}
	return nil
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func stringEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

// listEnv splits a comma separated variable, dropping empty entries.
func listEnv(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func intEnv(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(key, err)
	}
	return v, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(key, err)
	}
	return v, nil
}
