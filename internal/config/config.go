package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port               string
	LogLevel           logrus.Level
	OperatorWorkers    int
	OperatorQueueSize  int
	CORSAllowedOrigins []string
}

// ProcessEnvironmentVariables loads an optional .env file and overlays the
// environment on the defaults.
func ProcessEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	env := Config{
		Port:               "9446",
		LogLevel:           logrus.InfoLevel,
		OperatorWorkers:    1,
		OperatorQueueSize:  1000,
		CORSAllowedOrigins: []string{"*"},
	}

	envPort := os.Getenv("PORT")
	envLogLevel := os.Getenv("LOG_LEVEL")
	envOperatorWorkers := os.Getenv("OPERATOR_WORKERS")
	envOperatorQueueSize := os.Getenv("OPERATOR_QUEUE_SIZE")
	envCORSAllowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")

	if len(envPort) != 0 {
		env.Port = envPort
	}

	if len(envLogLevel) != 0 {
		level, err := logrus.ParseLevel(envLogLevel)
		if err != nil {
			return nil, fmt.Errorf("LOG_LEVEL: %w", err)
		}
		env.LogLevel = level
	}

	if len(envOperatorWorkers) != 0 {
		workers, err := parsePositiveInt(envOperatorWorkers)
		if err != nil {
			return nil, fmt.Errorf("OPERATOR_WORKERS: %w", err)
		}
		env.OperatorWorkers = workers
	}

	if len(envOperatorQueueSize) != 0 {
		size, err := parsePositiveInt(envOperatorQueueSize)
		if err != nil {
			return nil, fmt.Errorf("OPERATOR_QUEUE_SIZE: %w", err)
		}
		env.OperatorQueueSize = size
	}

	if len(envCORSAllowedOrigins) != 0 {
		var origins []string
		for _, origin := range strings.Split(envCORSAllowedOrigins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
		if len(origins) > 0 {
			env.CORSAllowedOrigins = origins
		}
	}

	return &env, nil
}

func parsePositiveInt(raw string) (int, error) {
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if value < 1 {
		return 0, fmt.Errorf("must be at least 1, got %d", value)
	}
	return value, nil
}
