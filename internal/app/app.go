// Package app wires the catalog service together: Postgres repository,
// RabbitMQ publisher and consumer, Slack notifier, and the HTTP API.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"

	"github.com/openshelf/book-catalog-go/internal/config"
	"github.com/openshelf/book-catalog-go/internal/features/command/addbook"
	"github.com/openshelf/book-catalog-go/internal/features/command/borrowbook"
	"github.com/openshelf/book-catalog-go/internal/features/command/removebook"
	"github.com/openshelf/book-catalog-go/internal/features/command/returnbook"
	"github.com/openshelf/book-catalog-go/internal/features/command/updatebook"
	"github.com/openshelf/book-catalog-go/internal/features/query/getbook"
	"github.com/openshelf/book-catalog-go/internal/httpapi"
	"github.com/openshelf/book-catalog-go/internal/postgres"
	"github.com/openshelf/book-catalog-go/internal/rabbitmq"
	"github.com/openshelf/book-catalog-go/internal/slacknotifier"
	"github.com/openshelf/book-catalog-go/pkg/logattr"
)

// App owns the lifecycle of all service components.
type App struct {
	cfg        config.Config
	logHandler slog.Handler
	logger     *slog.Logger

	pgxPool    *pgxpool.Pool
	publisher  *rabbitmq.Publisher
	consumer   *rabbitmq.Consumer
	httpServer *http.Server
}

// NewApp creates an App from the given configuration.
func NewApp(cfg config.Config, opts ...Option) (*App, error) {
	app := &App{cfg: cfg}

	if err := setDefaultOpts(app); err != nil {
		return nil, fmt.Errorf("failed setting default options: %w", err)
	}

	for _, opt := range opts {
		opt(app)
	}

	return app, nil
}

// Run starts all components. It returns once everything is up; the caller
// waits for ctx and then calls Stop.
func (app *App) Run(ctx context.Context) error {
	app.logger = slog.
		New(app.logHandler).
		With(logattr.ServiceName(app.cfg.ServiceName))

	app.logger.Info("book-catalog started")

	pool, err := pgxpool.New(ctx, app.cfg.PostgresURL)
	if err != nil {
		return fmt.Errorf("connecting to postgres: %w", err)
	}
	app.pgxPool = pool

	repository, err := postgres.NewBookRepositoryFromPGXPool(
		pool,
		postgres.WithTableName(app.cfg.BooksTable),
		postgres.WithLogger(app.logger.With(logattr.Component("postgres.BookRepository"))),
	)
	if err != nil {
		return fmt.Errorf("creating book repository: %w", err)
	}

	publisher, err := rabbitmq.NewPublisher(
		app.cfg.RabbitMQURL,
		rabbitmq.WithExchangeName(app.cfg.ExchangeName),
		rabbitmq.WithPublisherLogger(app.logger.With(logattr.Component("rabbitmq.Publisher"))),
	)
	if err != nil {
		return fmt.Errorf("creating event publisher: %w", err)
	}
	app.publisher = publisher

	if app.cfg.SlackEnabled() {
		if err = app.startNotifier(ctx); err != nil {
			return err
		}
	}

	app.startHTTPServer(repository, publisher)

	return nil
}

// Stop shuts the components down in reverse start order.
func (app *App) Stop(ctx context.Context) {
	if app.httpServer != nil {
		if err := app.httpServer.Shutdown(ctx); err != nil {
			app.logger.Error("error stopping http server", logattr.Error(err.Error()))
		}
	}

	if app.consumer != nil {
		if err := app.consumer.Close(); err != nil {
			app.logger.Error("error stopping event consumer", logattr.Error(err.Error()))
		}
	}

	if app.publisher != nil {
		if err := app.publisher.Close(); err != nil {
			app.logger.Error("error stopping event publisher", logattr.Error(err.Error()))
		}
	}

	if app.pgxPool != nil {
		app.pgxPool.Close()
	}

	app.logger.Info("book-catalog stopped")
}

func (app *App) startNotifier(ctx context.Context) error {
	notifier := slacknotifier.New(
		slack.New(app.cfg.SlackToken),
		app.cfg.SlackChannelID,
		app.logger.With(logattr.Component("slacknotifier.Notifier")),
	)

	consumer, err := rabbitmq.NewConsumer(
		app.cfg.RabbitMQURL,
		app.cfg.QueueName,
		notifier,
		rabbitmq.WithConsumerExchangeName(app.cfg.ExchangeName),
		rabbitmq.WithConsumerLogger(app.logger.With(logattr.Component("rabbitmq.Consumer"))),
	)
	if err != nil {
		return fmt.Errorf("creating event consumer: %w", err)
	}
	app.consumer = consumer

	if err = consumer.Start(ctx); err != nil {
		return fmt.Errorf("starting event consumer: %w", err)
	}

	return nil
}

func (app *App) startHTTPServer(repository postgres.BookRepository, publisher *rabbitmq.Publisher) {
	handlerLogger := app.logger.With(logattr.Component("features.CommandHandler"))

	api := httpapi.NewAPI(
		addbook.NewCommandHandler(repository, publisher, addbook.WithLogger(handlerLogger)),
		updatebook.NewCommandHandler(repository, publisher, updatebook.WithLogger(handlerLogger)),
		removebook.NewCommandHandler(repository, publisher, removebook.WithLogger(handlerLogger)),
		borrowbook.NewCommandHandler(repository, publisher, borrowbook.WithLogger(handlerLogger)),
		returnbook.NewCommandHandler(repository, publisher, returnbook.WithLogger(handlerLogger)),
		getbook.NewQueryHandler(repository),
		httpapi.WithLogger(app.logger.With(logattr.Component("httpapi.API"))),
	)

	app.httpServer = &http.Server{
		Addr:    app.cfg.HTTPAddr,
		Handler: api.Handler(),
	}

	go func() {
		defer app.logger.Info("http server stopped")
		if err := app.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.logger.Error("http server error", logattr.Error(err.Error()))
		}
	}()

	app.logger.Info("http server started")
}

func setDefaultOpts(app *App) error {
	zapLogger, err := newZapLogger(app.cfg.LogLevel)
	if err != nil {
		return err
	}
	app.logHandler = zapslog.NewHandler(zapLogger.Core())

	return nil
}

func newZapLogger(level string) (*zap.Logger, error) {
	zapLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		zapLevel = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)
	zapConfig := zap.Config{
		Level:             zap.NewAtomicLevelAt(zapLevel),
		Development:       false,
		DisableStacktrace: true,
		Sampling: &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		},
		Encoding:         "json",
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return zapConfig.Build()
}
