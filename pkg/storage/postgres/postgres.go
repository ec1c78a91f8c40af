package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"careerguide/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

// Options defines the configuration parameters for PostgreSQL database connection.
type Options struct {
	// Username is the PostgreSQL user to connect as
	Username string
	// Password is the password for the specified user
	Password string
	// Host is the PostgreSQL server hostname or IP address
	Host string
	// SslMode specifies the SSL mode for the connection (e.g., "disable", "require")
	SslMode string
	// Port is the PostgreSQL server port number
	Port int
	// Database is the name of the database to connect to
	Database string
	// ConnMaxLifetime is the maximum amount of time a connection may be reused
	ConnMaxLifetime time.Duration
	// ConnMaxIdleTime is the maximum amount of time a connection may be idle
	ConnMaxIdleTime time.Duration
	// MaxOpenConnections is the maximum number of open connections to the database
	MaxOpenConnections int
	// MaxIdleConnections is the maximum number of connections in the idle connection pool
	MaxIdleConnections int
}

// DB defines the subset of database/sql methods used by this package. Both
// *sql.DB and *sql.Tx satisfy this interface, allowing the same code paths to be
// used within and outside transactions.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Builder abstracts the minimal subset of goqu methods used by this package to
// construct queries. Both a goqu database handle and a transaction handle
// implement this interface.
type Builder interface {
	From(table ...interface{}) *goqu.SelectDataset
	Insert(table interface{}) *goqu.InsertDataset
	Update(table interface{}) *goqu.UpdateDataset
	Delete(table interface{}) *goqu.DeleteDataset
}

// PgSQL implements storage.Storage for PostgreSQL using database/sql and goqu.
type PgSQL struct {
	// DB is either the pooled *sql.DB or, inside a transaction, a *sql.Tx.
	DB DB
	// Builder is the goqu handle bound to DB.
	Builder Builder
	// Pool backs DB. It is nil on transactional copies.
	Pool *pgxpool.Pool
}

var _ storage.Storage = (*PgSQL)(nil)

// ConnString renders the options as a libpq keyword/value connection string.
func (o Options) ConnString() string {
	kv := [][2]string{
		{"host", o.Host},
		{"port", strconv.Itoa(o.Port)},
		{"user", o.Username},
		{"password", o.Password},
		{"dbname", o.Database},
		{"sslmode", o.SslMode},
	}

	parts := make([]string, 0, len(kv))
	for _, p := range kv {
		if p[1] == "" {
			continue
		}
		v := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(p[1])
		parts = append(parts, p[0]+"='"+v+"'")
	}

	return strings.Join(parts, " ")
}

// New creates a PostgreSQL storage backed by a pgx pool. The pool is wrapped
// in a *sql.DB for goqu, goose and the River database/sql driver. The server
// is pinged before New returns.
func New(ctx context.Context, options Options) (*PgSQL, error) {
	cfg, err := pgxpool.ParseConfig(options.ConnString())
	if err != nil {
		return nil, fmt.Errorf("could not parse pgxpool config: %w", err)
	}
	if options.MaxOpenConnections > 0 {
		cfg.MaxConns = int32(options.MaxOpenConnections) //nolint: gosec
	}
	if options.MaxIdleConnections > 0 {
		cfg.MinConns = int32(min(options.MaxIdleConnections, int(cfg.MaxConns))) //nolint: gosec
	}
	if options.ConnMaxLifetime > 0 {
		cfg.MaxConnLifetime = options.ConnMaxLifetime
	}
	if options.ConnMaxIdleTime > 0 {
		cfg.MaxConnIdleTime = options.ConnMaxIdleTime
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()

		return nil, fmt.Errorf("could not reach postgres at %s:%d: %w", options.Host, options.Port, err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	return &PgSQL{
		DB:      sqlDB,
		Builder: goqu.Dialect("postgres").DB(sqlDB),
		Pool:    pool,
	}, nil
}

// Close releases the *sql.DB wrapper and the pool. It is a no-op on
// transactional copies.
func (p *PgSQL) Close() error {
	var err error
	if db, ok := p.DB.(*sql.DB); ok {
		err = db.Close()
	}
	if p.Pool != nil {
		p.Pool.Close()
	}

	return err //nolint: wrapcheck
}

func (p *PgSQL) tx() (*sql.Tx, bool) {
	tx, ok := p.DB.(*sql.Tx)

	return tx, ok
}

// Commit commits the current transaction, or returns storage.ErrNotInTx.
func (p *PgSQL) Commit() error {
	tx, ok := p.tx()
	if !ok {
		return storage.ErrNotInTx
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}

	return nil
}

// Rollback aborts the current transaction, or returns storage.ErrNotInTx.
func (p *PgSQL) Rollback() error {
	tx, ok := p.tx()
	if !ok {
		return storage.ErrNotInTx
	}

	if err := tx.Rollback(); err != nil {
		return fmt.Errorf("could not rollback tx: %w", err)
	}

	return nil
}

// Begin starts a transaction and returns a PgSQL bound to it. Nested
// transactions are not supported and return storage.ErrAlreadyInTx.
func (p *PgSQL) Begin(ctx context.Context) (storage.TxStorage, error) {
	db, ok := p.DB.(*sql.DB)
	if !ok {
		return nil, storage.ErrAlreadyInTx
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin tx: %w", err)
	}

	return &PgSQL{
		DB:      tx,
		Builder: goqu.NewTx("postgres", tx),
	}, nil
}

// WithTx runs cb in a transaction that is committed when cb returns nil and
// rolled back when it fails or panics. Called on a transactional PgSQL, cb
// joins the surrounding transaction.
func (p *PgSQL) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	if _, ok := p.tx(); ok {
		return cb(p)
	}

	tx, err := p.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()

			panic(r)
		}
	}()

	if err := cb(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, rbErr)
		}

		return err
	}

	return tx.Commit()
}

// asConflict maps unique violations to storage.ErrConflict.
func asConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return fmt.Errorf("%w: %s", storage.ErrConflict, pgErr.ConstraintName)
	}

	return err
}
