package main

import (
	"context"
	"log"
	"roster/internal/back"
	"roster/internal/config"
)

func loadFixtures(ctx context.Context, conf *config.Config) error {
	store, err := back.OpenSQLStore("sqlite3", conf.DatabaseDSN)
	if err != nil {
		return err
	}
	defer closeLogged("database", store)

	if err := back.New(store).LoadFixtures(ctx); err != nil {
		return err
	}

	log.Printf("info: fixtures loaded into %s", conf.DatabaseDSN)

	return nil
}
