package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// MemoryDSN selects an in-memory SQLite database instead of PostgreSQL.
const MemoryDSN = "memory"

// Open returns a database handle and the matching RepositoryManager for dsn.
// Migrations are left to the caller.
func Open(ctx context.Context, dsn string) (*sql.DB, RepositoryManager, error) {
	if dsn == MemoryDSN {
		db, err := sqlOpen(SQLiteDriverName, ":memory:")
		if err != nil {
			return nil, nil, fmt.Errorf("db open: %w", err)
		}
		// every new connection would get its own empty database
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
		db.SetConnMaxIdleTime(0)
		return db, NewSQLiteRepositoryManager(), nil
	}

	db, err := OpenDB(ctx, dsn)
	if err != nil {
		return nil, nil, err
	}
	return db, NewPostgresRepositoryManager(), nil
}
