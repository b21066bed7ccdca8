// Copyright (c) 2026 RaynerdTech. All rights reserved.
// Author: RaynerdTech

// Package migration applies the SQL schema under data/migrations before the
// server accepts traffic.
package migration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunUp applies all pending UP migrations.
//
// A dirty schema version stops startup; it needs an operator to force the
// version after repairing the failed step.
//
// # Parameters
//   - dsn: A libpq-compatible DSN or postgres:// URL.
//   - migrationsPath: Filesystem path to the migrations directory.
//   - logger: Structured logger for migration events.
func RunUp(dsn string, migrationsPath string, logger *slog.Logger) error {
	migrator, err := migrate.New(sourceURL(migrationsPath), databaseURL(dsn))
	if err != nil {
		return fmt.Errorf("migration: failed to initialize: %w", err)
	}
	defer func() {
		sourceErr, dbErr := migrator.Close()
		if closeErr := errors.Join(sourceErr, dbErr); closeErr != nil {
			logger.Warn("migration_close_failed", slog.Any("error", closeErr))
		}
	}()

	migrator.Log = &migrateLogger{
		logger:  logger,
		verbose: logger.Enabled(context.Background(), slog.LevelDebug),
	}

	from, err := version(migrator)
	if err != nil {
		return err
	}

	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration: up failed: %w", err)
	}

	to, err := version(migrator)
	if err != nil {
		return err
	}

	logger.Info("schema_migrated",
		slog.Uint64("from_version", uint64(from)),
		slog.Uint64("to_version", uint64(to)),
		slog.Bool("changed", from != to),
	)

	return nil
}

// version reads the applied schema version; an empty schema is version 0.
func version(migrator *migrate.Migrate) (uint, error) {
	current, dirty, err := migrator.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		return 0, nil
	case err != nil:
		return 0, fmt.Errorf("migration: failed to read version: %w", err)
	case dirty:
		return current, fmt.Errorf("migration: schema is dirty at version %d", current)
	}
	return current, nil
}

// sourceURL points the file source at migrationsPath.
func sourceURL(migrationsPath string) string {
	return "file://" + filepath.ToSlash(migrationsPath)
}

// databaseURL rewrites postgres schemes to the pgx5 scheme the migrate
// driver registers.
func databaseURL(dsn string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if rest, found := strings.CutPrefix(dsn, prefix); found {
			return "pgx5://" + rest
		}
	}
	return dsn
}

// migrateLogger bridges migrate.Logger to slog at debug level.
type migrateLogger struct {
	logger  *slog.Logger
	verbose bool
}

func (l *migrateLogger) Printf(format string, args ...any) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *migrateLogger) Verbose() bool {
	return l.verbose
}
