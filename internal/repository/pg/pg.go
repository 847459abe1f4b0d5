package pg

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
)

const (
	migrationsTable = "schema_migrations"
	schemaName      = "public"
	migrationsPath  = "./migrations"

	maxAttempts = 3
)

// задержки между повторами при retriable ошибках postgres, после последней попытки не ждем
var retryDelays = []time.Duration{1 * time.Second, 3 * time.Second}

type Repository struct {
	db         *sql.DB
	classifier *PostgresErrorClassifier
	lg         *zap.SugaredLogger
}

func New(ctx context.Context, databaseURI string, lg *zap.SugaredLogger) (*Repository, error) {
	pool, err := pgxpool.New(ctx, databaseURI)
	if err != nil {
		return nil, err
	}

	db := stdlib.OpenDBFromPool(pool)

	if err := migrateUp(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Repository{
		db:         db,
		classifier: NewPostgresErrorClassifier(),
		lg:         lg,
	}, nil
}

func migrateUp(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{
		MigrationsTable: migrationsTable,
		SchemaName:      schemaName,
	})
	if err != nil {
		return err
	}

	absPath, err := filepath.Abs(migrationsPath)
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+absPath, "postgres", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}

// executeWithRetryConnection повторяет fn, пока ошибка классифицируется как retriable
func (s *Repository) executeWithRetryConnection(ctx context.Context, fn func(db *sql.DB) error) error {
	var err error

	for attempt := 0; attempt < maxAttempts; attempt++ {
		err = fn(s.db)
		if err == nil || s.classifier.Classify(err) != Retriable {
			return err
		}

		if s.lg != nil {
			s.lg.Warnf("retriable postgres error, attempt %d: %v", attempt+1, err)
		}

		if attempt == maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryDelays[attempt]):
		}
	}

	return err
}

func (s *Repository) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Repository) Shutdown() error {
	return s.db.Close()
}
