package migrate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"spendbook/db"
)

// Runner applies the schema migrations compiled into the binary.
type Runner struct {
	pool *pgxpool.Pool
	dsn  string
	log  *slog.Logger
}

// New prepares a Runner over the embedded migration set. The goose base
// FS and dialect are process-wide, so construction configures them once.
func New(pool *pgxpool.Pool, dsn string, log *slog.Logger) (Runner, error) {
	if pool == nil {
		return Runner{}, errors.New("nil pool provided")
	}
	if dsn == "" {
		return Runner{}, errors.New("empty database dsn")
	}
	if log == nil {
		log = slog.Default()
	}
	migrations, err := fs.Sub(db.MigrationsFS, "migrations")
	if err != nil {
		return Runner{}, fmt.Errorf("mount embedded migrations: %w", err)
	}
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return Runner{}, fmt.Errorf("set goose dialect: %w", err)
	}
	return Runner{pool: pool, dsn: dsn, log: log}, nil
}

// Up brings the schema to the newest version.
func (r Runner) Up(ctx context.Context) error {
	return r.withConn(func(conn *sql.DB) error {
		runCtx, cancel := context.WithTimeout(ctx, time.Minute)
		defer cancel()
		r.log.Info("migrating schema up")
		if err := goose.UpContext(runCtx, conn, "."); err != nil {
			return fmt.Errorf("migrate up: %w", err)
		}
		r.log.Info("schema up to date")
		return nil
	})
}

// Status prints which migrations have been applied.
func (r Runner) Status(ctx context.Context) error {
	return r.withConn(func(conn *sql.DB) error {
		if err := goose.StatusContext(ctx, conn, "."); err != nil {
			return fmt.Errorf("migration status: %w", err)
		}
		return nil
	})
}

// Down reverts the newest migration, or everything above targetVersion
// when targetVersion is positive.
func (r Runner) Down(ctx context.Context, targetVersion int64) error {
	return r.withConn(func(conn *sql.DB) error {
		runCtx, cancel := context.WithTimeout(ctx, time.Minute)
		defer cancel()
		if targetVersion > 0 {
			r.log.Info("reverting schema", "target", targetVersion)
			if err := goose.DownToContext(runCtx, conn, ".", targetVersion); err != nil {
				return fmt.Errorf("migrate down to %d: %w", targetVersion, err)
			}
			return nil
		}
		r.log.Info("reverting newest migration")
		if err := goose.DownContext(runCtx, conn, "."); err != nil {
			return fmt.Errorf("migrate down: %w", err)
		}
		return nil
	})
}

// Ping verifies the pool can reach the database.
func (r Runner) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

// Close releases the pool.
func (r Runner) Close() {
	r.pool.Close()
}

// goose drives database/sql rather than native pgx, so every command
// opens a short-lived stdlib connection alongside the pool.
func (r Runner) withConn(fn func(*sql.DB) error) error {
	conn, err := sql.Open("pgx", r.dsn)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer conn.Close()

	if err := conn.Ping(); err != nil {
		return fmt.Errorf("ping migration connection: %w", err)
	}
	return fn(conn)
}
