package sql

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/klwxsrx/store-dashboard/pkg/log"
	"github.com/klwxsrx/store-dashboard/pkg/persistence"
)

const (
	migrationLock  = "perform_migration_lock"
	querySeparator = ";\n"

	migrationTableDDL = `
		CREATE TABLE IF NOT EXISTS migration (
			id text PRIMARY KEY
		)
	`
)

type Migrator interface {
	Execute(ctx context.Context) error
}

type migrator struct {
	db         Database
	tx         persistence.Transaction
	migrations fs.ReadDirFS
	logger     log.Logger
}

// NewMigrator applies every file of migrations not yet recorded in the migration table,
// in lexical order of file names.
func NewMigrator(db Database, migrations fs.ReadDirFS, logger log.Logger) Migrator {
	return &migrator{
		db:         db,
		tx:         NewTransaction(db, "migration", nil),
		migrations: migrations,
		logger:     logger,
	}
}

func (m *migrator) Execute(ctx context.Context) (err error) {
	ctx, release, err := withSessionLevelLock(ctx, migrationLock, m.db)
	if err != nil {
		return fmt.Errorf("get migration lock: %w", err)
	}
	defer func() {
		releaseErr := release()
		if releaseErr != nil && err == nil {
			err = releaseErr
		}
	}()

	_, err = m.db.ExecContext(ctx, migrationTableDDL)
	if err != nil {
		return fmt.Errorf("create migration table: %w", err)
	}

	return m.performFileMigrations(ctx)
}

func (m *migrator) performFileMigrations(ctx context.Context) error {
	migrationIDs, err := m.getFileNames()
	if err != nil {
		return fmt.Errorf("get migration file names: %w", err)
	}
	if len(migrationIDs) == 0 {
		return nil
	}

	performedMigrationIDs, err := m.getPerformedMigrationIDs(ctx)
	if err != nil {
		return fmt.Errorf("get performed migrations: %w", err)
	}

	for _, migrationID := range migrationIDs {
		if _, ok := performedMigrationIDs[migrationID]; ok {
			continue
		}

		content, err := fs.ReadFile(m.migrations, migrationID)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", migrationID, err)
		}

		err = m.tx.Execute(ctx, func(ctx context.Context) error {
			return m.performMigration(ctx, migrationID, string(content))
		})
		if err != nil {
			return fmt.Errorf("migration %s: %w", migrationID, err)
		}

		m.logger.WithField("migrationID", migrationID).Info(ctx, "migration executed successfully")
	}

	return nil
}

func (m *migrator) getFileNames() ([]string, error) {
	entries, err := m.migrations.ReadDir(".")
	if err != nil {
		return nil, err
	}

	result := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		result = append(result, entry.Name())
	}

	sort.Strings(result)
	return result, nil
}

func (m *migrator) getPerformedMigrationIDs(ctx context.Context) (map[string]struct{}, error) {
	var ids []string
	err := m.db.SelectContext(ctx, &ids, `SELECT id FROM migration`)
	if err != nil {
		return nil, err
	}

	result := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		result[id] = struct{}{}
	}
	return result, nil
}

func (m *migrator) performMigration(ctx context.Context, migrationID, migrationSQL string) error {
	queries := splitToQueries(migrationSQL)
	if len(queries) == 0 {
		return errors.New("empty migration")
	}

	_, err := m.db.ExecContext(ctx, `INSERT INTO migration VALUES ($1)`, migrationID)
	if err != nil {
		return fmt.Errorf("create migration record: %w", err)
	}

	for _, query := range queries {
		_, err = m.db.ExecContext(ctx, query)
		if err != nil {
			return err
		}
	}

	return nil
}

func splitToQueries(sql string) []string {
	parts := strings.Split(sql, querySeparator)
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		result = append(result, part)
	}

	return result
}
