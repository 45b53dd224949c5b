package sql

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"sync"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/cenkalti/backoff/v4"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver

	"github.com/klwxsrx/store-dashboard/pkg/log"
)

const defaultConnectionTimeout = 20 * time.Second

type (
	Config struct {
		DSN                DSN
		MaxOpenConnections int
		MaxIdleConnections int
		ConnectionTimeout  time.Duration
	}

	DSN struct {
		User     string
		Password string
		Address  string
		Database string
	}
)

func (d DSN) String() string {
	u := url.URL{
		Scheme:   "postgresql",
		User:     url.UserPassword(d.User, d.Password),
		Host:     d.Address,
		Path:     d.Database,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

type (
	Client interface {
		ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
		GetContext(ctx context.Context, dest any, query string, args ...any) error
		SelectContext(ctx context.Context, dest any, query string, args ...any) error
	}

	ClientTx interface {
		Client
		Commit() error
		Rollback() error
	}

	TxClient interface {
		Client
		Begin(ctx context.Context) (ClientTx, error)
	}

	// Database routes queries to the transaction or the connection bound to the context, if any.
	Database interface {
		TxClient
		WithinSingleConnection(ctx context.Context) (context.Context, context.CancelFunc, error)
		Close(ctx context.Context)
	}
)

type database struct {
	db     *sqlx.DB
	logger log.Logger
}

func NewDatabase(ctx context.Context, config Config, logger log.Logger) (Database, error) {
	if config.ConnectionTimeout <= 0 {
		config.ConnectionTimeout = defaultConnectionTimeout
	}

	db, err := openConnection(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("open sql connection: %w", err)
	}

	enablePostgreSQLSquirrelPlaceholderFormat()
	return &database{
		db:     db,
		logger: logger,
	}, nil
}

func (d *database) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return d.client(ctx).ExecContext(ctx, query, args...)
}

func (d *database) GetContext(ctx context.Context, dest any, query string, args ...any) error {
	return d.client(ctx).GetContext(ctx, dest, query, args...)
}

func (d *database) SelectContext(ctx context.Context, dest any, query string, args ...any) error {
	return d.client(ctx).SelectContext(ctx, dest, query, args...)
}

func (d *database) Begin(ctx context.Context) (ClientTx, error) {
	var tx *sqlx.Tx
	var err error
	if conn, ok := ctx.Value(dbConnectionContextKey).(*sqlx.Conn); ok {
		tx, err = conn.BeginTxx(ctx, nil)
	} else {
		tx, err = d.db.BeginTxx(ctx, nil)
	}
	if err != nil {
		return nil, err
	}

	return tx, nil
}

func (d *database) WithinSingleConnection(ctx context.Context) (context.Context, context.CancelFunc, error) {
	if _, ok := ctx.Value(dbConnectionContextKey).(*sqlx.Conn); ok {
		return ctx, func() {}, nil
	}

	conn, err := d.db.Connx(ctx)
	if err != nil {
		return nil, nil, err
	}

	return context.WithValue(ctx, dbConnectionContextKey, conn), func() {
		if err := conn.Close(); err != nil {
			d.logger.WithError(err).Error(ctx, "failed to release sql connection")
		}
	}, nil
}

func (d *database) Close(ctx context.Context) {
	err := d.db.Close()
	if err != nil {
		d.logger.WithError(err).Error(ctx, "failed to close sql database")
	}
}

func (d *database) client(ctx context.Context) Client {
	if tx, ok := ctx.Value(dbTransactionContextKey).(txData); ok {
		return tx.ClientTx
	}
	if conn, ok := ctx.Value(dbConnectionContextKey).(*sqlx.Conn); ok {
		return conn
	}

	return d.db
}

func openConnection(ctx context.Context, config Config) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", config.DSN.String())
	if err != nil {
		return nil, err
	}

	if config.MaxOpenConnections > 0 {
		db.SetMaxOpenConns(config.MaxOpenConnections)
	}
	if config.MaxIdleConnections > 0 {
		db.SetMaxIdleConns(config.MaxIdleConnections)
	}

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = time.Second
	eb.RandomizationFactor = 0
	eb.Multiplier = 2
	eb.MaxInterval = config.ConnectionTimeout / 4
	eb.MaxElapsedTime = config.ConnectionTimeout

	err = backoff.Retry(func() error {
		return db.PingContext(ctx)
	}, backoff.WithContext(eb, ctx))
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

var squirrelPlaceholderOnceDoer = &sync.Once{}

func enablePostgreSQLSquirrelPlaceholderFormat() {
	squirrelPlaceholderOnceDoer.Do(func() {
		sq.StatementBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	})
}
