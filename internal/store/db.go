package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"modernc.org/sqlite"

	"github.com/cesargomez89/fyyur/internal/domain"
)

// Supported DB_DRIVER values. They double as database/sql driver names.
const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "pgx"
)

func init() {
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
	// SQLite's LOWER only folds ASCII letters.
	sqlite.MustRegisterDeterministicScalarFunction("fold", 1, fold)
}

func fold(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case nil:
		return nil, nil
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return v, nil
	}
}

type DB struct {
	*sqlx.DB
	driver string
	// reader serves View on SQLite. Its transactions begin deferred so
	// they do not take the write lock.
	reader *sqlx.DB

	mu       sync.RWMutex
	onCommit []func(context.Context)
}

// SQLiteDSN builds a modernc DSN. Pragmas are part of the DSN so every
// pooled connection gets them, foreign_keys in particular.
func SQLiteDSN(path string) string {
	return "file:" + path +
		"?_pragma=foreign_keys(1)" +
		"&_pragma=busy_timeout(30000)" +
		"&_pragma=journal_mode(WAL)" +
		"&_txlock=immediate" +
		"&_time_format=sqlite"
}

// sqliteReadDSN switches a SQLite DSN to deferred transactions.
func sqliteReadDSN(dsn string) string {
	if strings.Contains(dsn, "_txlock=") {
		for _, mode := range []string{"immediate", "exclusive"} {
			dsn = strings.Replace(dsn, "_txlock="+mode, "_txlock=deferred", 1)
		}
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_txlock=deferred"
	}
	return dsn + "?_txlock=deferred"
}

// MySQLDSN normalises a go-sql-driver DSN so DATETIME columns scan into
// time.Time as UTC. Other parameters are kept.
func MySQLDSN(dsn string) (string, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("invalid mysql dsn: %w", err)
	}
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	return cfg.FormatDSN(), nil
}

// Open connects to driver and pings it. The schema is not applied; call
// Migrate for that.
func Open(ctx context.Context, driverName, dsn string) (*DB, error) {
	switch driverName {
	case DriverSQLite, DriverPostgres:
	case DriverMySQL:
		var err error
		if dsn, err = MySQLDSN(dsn); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported driver %q", driverName)
	}

	db, err := connect(ctx, driverName, dsn)
	if err != nil {
		return nil, err
	}
	out := &DB{DB: db, driver: driverName}
	if driverName == DriverSQLite {
		if out.reader, err = connect(ctx, driverName, sqliteReadDSN(dsn)); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	return out, nil
}

func connect(ctx context.Context, driverName, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}
	return db, nil
}

// NewSQLiteDB opens the SQLite file at path and applies the schema.
func NewSQLiteDB(path string) (*DB, error) {
	ctx := context.Background()
	db, err := Open(ctx, DriverSQLite, SQLiteDSN(path))
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Close closes the reader pool, if any, and then the writer pool.
func (db *DB) Close() error {
	var rerr error
	if db.reader != nil {
		rerr = db.reader.Close()
	}
	return errors.Join(rerr, db.DB.Close())
}

// Migrate applies the schema for the connected driver. It is idempotent.
func (db *DB) Migrate(ctx context.Context) error {
	stmts, err := schemaFor(db.driver)
	if err != nil {
		return err
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

// OnCommit registers fn to run after every committed write transaction.
func (db *DB) OnCommit(fn func(context.Context)) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.onCommit = append(db.onCommit, fn)
}

// RunInTx runs fn in a write transaction. The transaction commits when fn
// returns nil and rolls back otherwise, including on panic.
func (db *DB) RunInTx(ctx context.Context, fn func(tx *Tx) error) error {
	if err := db.runTx(ctx, db.DB, nil, fn); err != nil {
		return err
	}

	db.mu.RLock()
	hooks := append([]func(context.Context){}, db.onCommit...)
	db.mu.RUnlock()
	for _, h := range hooks {
		h(ctx)
	}
	return nil
}

// View runs fn in a read-only transaction so multi-statement reads see
// one snapshot.
func (db *DB) View(ctx context.Context, fn func(tx *Tx) error) error {
	if db.reader != nil {
		// A deferred SQLite transaction reads from one WAL snapshot.
		return db.runTx(ctx, db.reader, nil, fn)
	}
	opts := &sql.TxOptions{ReadOnly: true, Isolation: sql.LevelRepeatableRead}
	return db.runTx(ctx, db.DB, opts, fn)
}

func (db *DB) runTx(ctx context.Context, pool *sqlx.DB, opts *sql.TxOptions, fn func(tx *Tx) error) (err error) {
	sqlTx, err := pool.BeginTxx(ctx, opts)
	if err != nil {
		return persistence("begin transaction", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = sqlTx.Rollback()
			panic(p)
		}
	}()

	if err := fn(&Tx{tx: sqlTx, driver: db.driver}); err != nil {
		_ = sqlTx.Rollback()
		return err
	}
	if err := sqlTx.Commit(); err != nil {
		return persistence("commit transaction", err)
	}
	return nil
}

// Tx is the handle every entity operation takes.
type Tx struct {
	tx     *sqlx.Tx
	driver string
}

// lowerName is the expression search compares against a lowercased
// pattern.
func (t *Tx) lowerName() string {
	if t.driver == DriverSQLite {
		return "fold(name)"
	}
	return "LOWER(name)"
}

func (t *Tx) get(ctx context.Context, dest any, query string, args ...any) error {
	return t.tx.GetContext(ctx, dest, t.tx.Rebind(query), args...)
}

func (t *Tx) sel(ctx context.Context, dest any, query string, args ...any) error {
	return t.tx.SelectContext(ctx, dest, t.tx.Rebind(query), args...)
}

func (t *Tx) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return t.tx.ExecContext(ctx, t.tx.Rebind(query), args...)
}

// insert runs an INSERT and returns the generated id.
func (t *Tx) insert(ctx context.Context, query string, args ...any) (int64, error) {
	if t.driver == DriverPostgres {
		var id int64
		err := t.tx.QueryRowxContext(ctx, t.tx.Rebind(query+" RETURNING id"), args...).Scan(&id)
		return id, err
	}
	res, err := t.exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// exists reports whether table has a row with id.
func (t *Tx) exists(ctx context.Context, table string, id int64) (bool, error) {
	var one int
	err := t.get(ctx, &one, "SELECT 1 FROM "+table+" WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// mustExist returns NotFoundError when entity id is absent.
func (t *Tx) mustExist(ctx context.Context, entity, table string, id int64) error {
	ok, err := t.exists(ctx, table, id)
	if err != nil {
		return persistence("lookup "+entity, err)
	}
	if !ok {
		return domain.NotFound(entity, id)
	}
	return nil
}

func persistence(op string, err error) error {
	return &domain.PersistenceError{Op: op, Err: err}
}

// classify maps sql.ErrNoRows to NotFoundError and everything else to
// PersistenceError.
func classify(op, entity string, id int64, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFound(entity, id)
	}
	return persistence(op, err)
}
