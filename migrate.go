package main

import (
	"errors"
	"fmt"
	"log"
	"roster/internal/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func runMigrations(conf *config.Config, direction string) error {
	migrator, err := migrate.New("file://"+conf.MigrationsDir, "sqlite3://"+conf.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("unable to create migrator: %w", err)
	}
	defer migrator.Close()

	switch direction {
	case "up":
		err = migrator.Up()
	case "down":
		err = migrator.Down()
	default:
		return fmt.Errorf("unknown migration direction %q", direction)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		log.Printf("info: no migration to apply")
		return nil
	}
	if err != nil {
		return err
	}

	version, dirty, err := migrator.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		log.Printf("info: all migrations reverted")
	case err != nil:
		return err
	default:
		log.Printf("info: database at version %d (dirty: %t)", version, dirty)
	}

	return nil
}
