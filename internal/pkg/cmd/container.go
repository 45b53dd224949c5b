package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	commonhttp "github.com/klwxsrx/store-dashboard/internal/pkg/http"
	"github.com/klwxsrx/store-dashboard/pkg/cmd"
	"github.com/klwxsrx/store-dashboard/pkg/env"
	"github.com/klwxsrx/store-dashboard/pkg/http"
	"github.com/klwxsrx/store-dashboard/pkg/lazy"
	"github.com/klwxsrx/store-dashboard/pkg/log"
	"github.com/klwxsrx/store-dashboard/pkg/metric"
	"github.com/klwxsrx/store-dashboard/pkg/observability"
	pkgredis "github.com/klwxsrx/store-dashboard/pkg/redis"
	"github.com/klwxsrx/store-dashboard/pkg/sql"
	pkgtime "github.com/klwxsrx/store-dashboard/pkg/time"
)

type InfrastructureContainer struct {
	HTTPServer        lazy.Loader[http.Server]
	HTTPClientFactory lazy.Loader[HTTPClientFactory]
	DBMigrations      lazy.Loader[SQLMigrations]
	DB                lazy.Loader[sql.Database]
	Redis             lazy.Loader[redis.UniversalClient]
	Clock             lazy.Loader[pkgtime.Clock]
	Observer          lazy.Loader[observability.Observer]
	Metrics           lazy.Loader[metric.Metrics]
	Logger            lazy.Loader[log.Logger]
}

func NewInfrastructureContainer(ctx context.Context) *InfrastructureContainer {
	metrics := metricsProvider()
	logger := loggerProvider()
	observer := observerProvider(logger)

	db := sqlDatabaseProvider(ctx, logger)

	return &InfrastructureContainer{
		HTTPServer:        httpServerProvider(observer, metrics, logger),
		HTTPClientFactory: httpClientFactoryProvider(observer, metrics, logger),
		DBMigrations:      sqlMigrationsProvider(ctx, db, logger),
		DB:                db,
		Redis:             redisProvider(ctx),
		Clock:             clockProvider(),
		Observer:          observer,
		Metrics:           metrics,
		Logger:            logger,
	}
}

// Close must be deferred directly by main, it reports a panic of the caller before releasing resources.
func (i *InfrastructureContainer) Close(ctx context.Context) {
	if cmd.ReportPanic(ctx, i.Logger.MustLoad(), recover()) {
		defer os.Exit(1)
	}

	i.Redis.IfLoaded(func(client redis.UniversalClient) {
		if err := client.Close(); err != nil {
			i.Logger.MustLoad().WithError(err).Error(ctx, "failed to close redis client")
		}
	})
	i.DB.IfLoaded(func(db sql.Database) { db.Close(ctx) })
}

func metricsProvider() lazy.Loader[metric.Metrics] {
	return lazy.New(func() (metric.Metrics, error) {
		return metric.NewMetricsStub(), nil
	})
}

func loggerProvider() lazy.Loader[log.Logger] {
	return lazy.New(func() (log.Logger, error) {
		logLevel, err := env.ParseDefault[string]("LOG_LEVEL", "info")
		if err != nil {
			return nil, err
		}

		return log.New(log.ParseLevel(logLevel)), nil
	})
}

func observerProvider(
	logger lazy.Loader[log.Logger],
) lazy.Loader[observability.Observer] {
	return lazy.New(func() (observability.Observer, error) {
		return observability.New(
			observability.WithFieldsLogging(logger.MustLoad(), observability.LogFieldRequestID),
		), nil
	})
}

func clockProvider() lazy.Loader[pkgtime.Clock] {
	return lazy.New(func() (pkgtime.Clock, error) {
		return pkgtime.NewAdjustableClock(), nil
	})
}

func sqlDatabaseProvider(
	ctx context.Context,
	logger lazy.Loader[log.Logger],
) lazy.Loader[sql.Database] {
	return lazy.New(func() (sql.Database, error) {
		sqlConfig := sql.Config{
			DSN: sql.DSN{
				User:     env.Must(env.Parse[string]("SQL_USER")),
				Password: env.Must(env.Parse[string]("SQL_PASSWORD")),
				Address:  env.Must(env.Parse[string]("SQL_ADDRESS")),
				Database: env.Must(env.Parse[string]("SQL_DATABASE")),
			},
			MaxOpenConnections: env.Must(env.ParseDefault[int]("SQL_MAX_OPEN_CONNECTIONS", 0)),
			MaxIdleConnections: env.Must(env.ParseDefault[int]("SQL_MAX_IDLE_CONNECTIONS", 0)),
		}
		sqlConnTimeout := env.Must(env.ParseOptional[time.Duration]("SQL_CONNECTION_TIMEOUT"))
		if sqlConnTimeout != nil {
			sqlConfig.ConnectionTimeout = *sqlConnTimeout
		}

		db, err := sql.NewDatabase(ctx, sqlConfig, logger.MustLoad())
		if err != nil {
			panic(fmt.Errorf("open sql connection: %w", err))
		}

		return db, nil
	})
}

func sqlMigrationsProvider(
	ctx context.Context,
	db lazy.Loader[sql.Database],
	logger lazy.Loader[log.Logger],
) lazy.Loader[SQLMigrations] {
	return lazy.New(func() (SQLMigrations, error) {
		return NewSQLMigrations(ctx, db.MustLoad(), logger.MustLoad()), nil
	})
}

func redisProvider(ctx context.Context) lazy.Loader[redis.UniversalClient] {
	return lazy.New(func() (redis.UniversalClient, error) {
		config := pkgredis.Config{
			Address:  env.Must(env.Parse[string]("REDIS_ADDRESS")),
			Password: env.Must(env.ParseDefault[string]("REDIS_PASSWORD", "")),
			DB:       env.Must(env.ParseDefault[int]("REDIS_DB", 0)),
		}
		connTimeout := env.Must(env.ParseOptional[time.Duration]("REDIS_CONNECTION_TIMEOUT"))
		if connTimeout != nil {
			config.ConnectionTimeout = *connTimeout
		}

		client, err := pkgredis.NewClient(ctx, config)
		if err != nil {
			panic(fmt.Errorf("open redis connection: %w", err))
		}

		return client, nil
	})
}

func httpServerProvider(
	observer lazy.Loader[observability.Observer],
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[http.Server] {
	return lazy.New(func() (http.Server, error) {
		address, err := env.ParseDefault[string]("HTTP_ADDRESS", http.DefaultServerAddress)
		if err != nil {
			return nil, err
		}

		return http.NewServer(
			address,
			http.WithHealthCheck(nil),
			http.WithCORSHandler(),
			http.WithObservability(
				observer.MustLoad(),
				http.NewHTTPHeaderRequestIDExtractor(commonhttp.RequestIDHeader),
				http.NewRandomUUIDRequestIDExtractor(),
			),
			http.WithMetrics(metrics.MustLoad()),
			http.WithLogging(logger.MustLoad(), log.LevelInfo, log.LevelError),
		), nil
	})
}

func httpClientFactoryProvider(
	observer lazy.Loader[observability.Observer],
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[HTTPClientFactory] {
	return lazy.New(func() (HTTPClientFactory, error) {
		return NewHTTPClientFactory(
			http.WithRequestObservability(observer.MustLoad(), commonhttp.RequestIDHeader),
			http.WithRequestMetrics(metrics.MustLoad()),
			http.WithRequestLogging(logger.MustLoad(), log.LevelInfo, log.LevelWarn),
		), nil
	})
}
