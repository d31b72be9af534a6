package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/sijms/go-ora/v2" // Oracle driver
)

// NewSQLXOracleDB opens and pings an Oracle connection for the quiz store.
func NewSQLXOracleDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("oracle", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Oracle database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping Oracle database: %w", err)
	}

	return db, nil
}
