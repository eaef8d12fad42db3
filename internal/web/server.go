package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"roster/internal/back"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

func (s *Server) setupRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/rest/players", func(r chi.Router) {
		r.Use(s.rateLimit)
		r.Use(instrument)

		r.Get("/", s.getPlayers)
		r.Post("/", s.createPlayer)
		r.Get("/count", s.countPlayers)
		r.Get("/{id}", s.getPlayer)
		r.Post("/{id}", s.updatePlayer)
		r.Delete("/{id}", s.deletePlayer)
	})

	return r
}

type Server struct {
	http    *http.Server
	back    *back.Back
	limiter *rate.Limiter
}

// Options configure the HTTP side of a Server.
type Options struct {
	Addr string

	// RateLimit and RateBurst configure the token bucket shared by all
	// clients of the REST API.
	RateLimit float64
	RateBurst int
}

func NewServer(back *back.Back, opts Options) *Server {
	s := &Server{
		back:    back,
		limiter: rate.NewLimiter(rate.Limit(opts.RateLimit), opts.RateBurst),
	}

	s.http = &http.Server{
		Addr:         opts.Addr,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  10 * time.Second,
		Handler:      s.setupRouter(),
	}

	return s
}

// Handler returns the root handler of the server.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Serve blocks until done is closed or the server fails to listen.
func (s *Server) Serve(done <-chan struct{}) error {
	log.Printf("info: starting HTTP server on %s", s.http.Addr)

	crashed := make(chan error, 1)
	go func() {
		err := s.http.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			log.Println("info: HTTP server closed")
			return
		}

		crashed <- err
	}()

	select {
	case err := <-crashed:
		return fmt.Errorf("webserver crashed: %w", err)
	case <-done:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.http.Shutdown(ctx); err != nil {
		log.Printf("warning: unable to gracefully close webserver: %s", err)
		return s.http.Close()
	}

	return nil
}

func (s *Server) response(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")

	response, err := json.Marshal(data)
	if err != nil {
		log.Printf("error: unable to marshal response: %s", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(code)

	if _, err := w.Write(response); err != nil {
		log.Printf("error: unable to send response: %s", err)
	}
}
