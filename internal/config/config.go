// Package config loads service configuration from an optional YAML file with
// environment variable overrides. Environment always wins over the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config carries all settings of the catalog service.
type Config struct {
	ServiceName string `env:"SERVICE_NAME" yaml:"serviceName"`
	LogLevel    string `env:"LOG_LEVEL" yaml:"logLevel"`

	HTTPAddr            string        `env:"HTTP_ADDR" yaml:"httpAddr"`
	HTTPShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" yaml:"httpShutdownTimeout"`

	PostgresURL string `env:"POSTGRES_URL" yaml:"postgresUrl"`
	BooksTable  string `env:"BOOKS_TABLE" yaml:"booksTable"`

	RabbitMQURL  string `env:"RABBITMQ_URL" yaml:"rabbitmqUrl"`
	ExchangeName string `env:"EXCHANGE_NAME" yaml:"exchangeName"`
	QueueName    string `env:"QUEUE_NAME" yaml:"queueName"`

	SlackToken     string `env:"SLACK_BOT_TOKEN" yaml:"slackToken"`
	SlackChannelID string `env:"SLACK_CHANNEL_ID" yaml:"slackChannelId"`
}

func defaults() Config {
	return Config{
		ServiceName:         "book-catalog",
		LogLevel:            "info",
		HTTPAddr:            ":8080",
		HTTPShutdownTimeout: 10 * time.Second,
		BooksTable:          "books",
		ExchangeName:        "book-catalog.events",
		QueueName:           "book-catalog.notifications",
	}
}

// Load reads the YAML file at path (skipped when path is empty or the file
// does not exist) and then applies environment variable overrides.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// optional file, fall through to env
		case err != nil:
			return Config{}, fmt.Errorf("reading config file: %w", err)
		default:
			if err = yaml.Unmarshal(raw, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing config file: %w", err)
			}
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.PostgresURL == "" {
		return errors.New("config: postgres url must be set")
	}

	if c.RabbitMQURL == "" {
		return errors.New("config: rabbitmq url must be set")
	}

	if c.SlackToken != "" && c.SlackChannelID == "" {
		return errors.New("config: slack channel id must be set when a slack token is given")
	}

	return nil
}

// SlackEnabled reports whether the notifier should be started.
func (c Config) SlackEnabled() bool {
	return c.SlackToken != ""
}
