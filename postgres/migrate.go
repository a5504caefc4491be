package postgres

import (
	"fmt"
	"time"

	"github.com/xy-planning-network/enumfield/logger"
	"gorm.io/gorm"
)

const migrationsTable = "migrations"

// Migration is used to hold the database key and function for creating the migration.
type Migration struct {
	Executor func(*gorm.DB) error
	Key      string
}

func (m Migration) execute(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := m.Executor(tx); err != nil {
			return err
		}

		// There was no error, so create a record for the migration
		return tx.Exec(
			`INSERT INTO migrations (key, ran_at) VALUES (?, ?)`,
			m.Key,
			time.Now().Unix(),
		).Error
	})
}

// MigrateUp runs every migration whose key is not yet recorded in the migrations table, in order.
// Each migration runs in its own transaction along with recording its key.
//
// A nil l defaults to logger.New.
func MigrateUp(db *gorm.DB, schema string, migrations []Migration, l logger.Logger) error {
	if l == nil {
		l = logger.New()
	}

	if err := db.Exec(fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", schema)).Error; err != nil {
		return fmt.Errorf("creating %s schema: %w", schema, err)
	}

	err := db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			id SERIAL PRIMARY KEY,
			ran_at bigint,
			key text,
			CONSTRAINT migrations_key UNIQUE (key)
		)
	`).Error
	if err != nil {
		return fmt.Errorf("creating migrations table: %w", err)
	}

	toRun, err := determineMigrationsToRun(db, migrations)
	if err != nil {
		return err
	}

	for _, m := range toRun {
		if err := m.execute(db); err != nil {
			l.Error("migration failed", &logger.LogContext{Data: map[string]any{"key": m.Key}, Error: err})
			return fmt.Errorf("migration %q: %w", m.Key, err)
		}

		l.Info("ran migration", &logger.LogContext{Data: map[string]any{"key": m.Key}})
	}

	return nil
}

func determineMigrationsToRun(db *gorm.DB, allMigrations []Migration) ([]Migration, error) {
	var ranKeys []string
	if err := db.Raw("SELECT key FROM migrations;").Scan(&ranKeys).Error; err != nil {
		return nil, fmt.Errorf("fetching ran migrations: %w", err)
	}

	ran := make(map[string]bool, len(ranKeys))
	for _, key := range ranKeys {
		ran[key] = true
	}

	// Compare ran migration keys to all migration keys to determine which need to run
	var migrationsToRun []Migration
	for _, m := range allMigrations {
		if !ran[m.Key] {
			migrationsToRun = append(migrationsToRun, m)
		}
	}

	return migrationsToRun, nil
}
