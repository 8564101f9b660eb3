package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nkartsev/artvault/internal/client/migrations"
	"github.com/nkartsev/artvault/internal/client/repositories/settings"
	"github.com/pressly/goose/v3"
)

// Repositories bundles the local-store repositories the app needs.
type Repositories struct {
	Settings settings.Repository
	DB       *sql.DB
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the client-local sqlite database at dsn, applies
// migrations, and returns the repositories over it.
func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repositories{
		Settings: settings.NewSQLiteRepository(db),
		DB:       db,
	}, nil
}
