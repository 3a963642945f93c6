package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	HTTPPort string
	LogLevel string

	OperatorWorkers int
	UnitTimeout     time.Duration

	AuthJWTSecret string
	AuthIssuer    string
	AuthAudience  string

	RedisAddress  string
	RedisPassword string
	RedisChannel  string

	KafkaBrokers []string
	KafkaTopic   string
}

// PostgresURL is the connection string for the configured database.
func (c *Config) PostgresURL() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}

func ProcessEnvironmentVariables() (*Config, error) {
	// A missing .env is normal outside local development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("godotenv.Load: %w", err)
	}

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
		HTTPPort:         "9446",
		LogLevel:         "info",
		OperatorWorkers:  4,
		UnitTimeout:      10 * time.Second,
		RedisChannel:     "ledger:invalidations",
		KafkaTopic:       "ledger.invalidations",
	}

	setString(&env.PostgresAddress, "POSTGRES_ADDRESS")
	setString(&env.PostgresPort, "POSTGRES_PORT")
	setString(&env.PostgresDB, "POSTGRES_DB")
	setString(&env.PostgresUsername, "POSTGRES_USERNAME")
	setString(&env.PostgresPassword, "POSTGRES_PASSWORD")
	setString(&env.HTTPPort, "HTTP_PORT")
	setString(&env.LogLevel, "LOG_LEVEL")
	setString(&env.AuthJWTSecret, "AUTH_JWT_SECRET")
	setString(&env.AuthIssuer, "AUTH_ISSUER")
	setString(&env.AuthAudience, "AUTH_AUDIENCE")
	setString(&env.RedisAddress, "REDIS_ADDRESS")
	setString(&env.RedisPassword, "REDIS_PASSWORD")
	setString(&env.RedisChannel, "REDIS_CHANNEL")
	setString(&env.KafkaTopic, "KAFKA_TOPIC")

	if v := os.Getenv("OPERATOR_WORKERS"); len(v) != 0 {
		workers, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("OPERATOR_WORKERS: %w", err)
		}
		env.OperatorWorkers = workers
	}

	if v := os.Getenv("UNIT_TIMEOUT"); len(v) != 0 {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("UNIT_TIMEOUT: %w", err)
		}
		env.UnitTimeout = timeout
	}

	if v := os.Getenv("KAFKA_BROKERS"); len(v) != 0 {
		for _, broker := range strings.Split(v, ",") {
			if broker = strings.TrimSpace(broker); broker != "" {
				env.KafkaBrokers = append(env.KafkaBrokers, broker)
			}
		}
	}

	return &env, nil
}

func setString(target *string, key string) {
	if v := os.Getenv(key); len(v) != 0 {
		*target = v
	}
}
