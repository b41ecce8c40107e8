package db

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Supported database/sql driver names.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

func init() {
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

// Options selects the database backend.
type Options struct {
	Driver string // sqlite or pgx
	Path   string // SQLite file path
	URL    string // PostgreSQL connection string
}

// Open creates and returns a database connection. SQLite databases run in
// WAL mode with foreign keys enabled and are created under Path, defaulting
// to "./data/proforma.db".
func Open(opts Options) (*sqlx.DB, error) {
	var dsn string
	switch opts.Driver {
	case "", DriverSQLite:
		opts.Driver = DriverSQLite
		if opts.Path == "" {
			opts.Path = "./data/proforma.db"
		}
		// Ensure the directory exists
		dir := filepath.Dir(opts.Path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
		dsn = opts.Path + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)"
	case DriverPostgres:
		if opts.URL == "" {
			return nil, fmt.Errorf("opening database: DATABASE_URL is required for driver %s", opts.Driver)
		}
		dsn = opts.URL
	default:
		return nil, fmt.Errorf("opening database: unsupported driver %q", opts.Driver)
	}

	db, err := sqlx.Open(opts.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Verify connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	slog.Info("database connected", "driver", opts.Driver, "path", opts.Path)
	return db, nil
}
