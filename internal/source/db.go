package source

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"exportador/internal"
	"exportador/internal/config"
)

// QueryDataset runs the configured SQL against the configured database and
// returns the result with column names trimmed and uppercased, the shape the
// pipeline expects.
func QueryDataset(ctx context.Context, cfg config.Config) (*internal.Dataset, error) {
	driver, dsn, err := DSN(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	return QuerySQL(ctx, db, cfg.QuerySQL)
}

// DSN maps the configuration to a database/sql driver name and data source
// string. Postgres goes through the pgx stdlib adapter, sqlite through the
// modernc driver.
func DSN(cfg config.Config) (driver, dsn string, err error) {
	switch strings.ToLower(strings.TrimSpace(cfg.DBDriver)) {
	case "postgres", "postgresql", "pgx":
		u := url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(cfg.DBUser, cfg.DBPassword),
			Host:   fmt.Sprintf("%s:%d", cfg.DBHost, cfg.DBPort),
			Path:   "/" + cfg.DBName,
		}
		return "pgx", u.String(), nil
	case "sqlite", "sqlite3":
		return "sqlite", cfg.DBPath, nil
	default:
		return "", "", fmt.Errorf("unsupported db driver: %s", cfg.DBDriver)
	}
}

// QuerySQL executes query and materializes every row, keeping driver-native
// scalar types so the value normalizer can collapse them later.
func QuerySQL(ctx context.Context, db *sql.DB, query string) (*internal.Dataset, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("execute query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	columns := make([]string, len(cols))
	for i, name := range cols {
		columns[i] = strings.ToUpper(strings.TrimSpace(name))
	}

	ds := &internal.Dataset{Columns: columns}
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make(internal.Row, len(columns))
		for i, col := range columns {
			row[col] = values[i]
		}
		ds.Rows = append(ds.Rows, row)
	}
	return ds, rows.Err()
}
