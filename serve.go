package main

import (
	"log"
	"os"
	"os/signal"
	"roster/internal/back"
	"roster/internal/config"
	"roster/internal/web"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
)

func serve(conf *config.Config) error {
	if conf.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              conf.SentryDSN,
			Environment:      conf.Environment,
			Release:          "roster@" + Version,
			AttachStacktrace: true,
		}); err != nil {
			return err
		}
		defer sentry.Flush(2 * time.Second)
		log.Print("info: reporting errors to Sentry")
	}

	store, err := back.OpenSQLStore("sqlite3", conf.DatabaseDSN)
	if err != nil {
		return err
	}
	defer closeLogged("database", store)

	server := web.NewServer(back.New(store), web.Options{
		Addr:      conf.HTTPAddr,
		RateLimit: conf.RateLimit,
		RateBurst: conf.RateBurst,
	})

	done := make(chan struct{})
	signaled := make(chan os.Signal, 1)
	signal.Notify(signaled, syscall.SIGINT, syscall.SIGTERM)

	served := make(chan error, 1)
	go func() {
		served <- server.Serve(done)
	}()

	select {
	case sig := <-signaled:
		log.Printf("info: received signal %d", sig)
		close(done)
		err = <-served
	case err = <-served:
	}

	if err != nil {
		return err
	}

	log.Print("info: shutdown complete")

	return nil
}
