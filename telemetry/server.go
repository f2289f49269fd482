package telemetry

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

// Config configures the telemetry server.
type Config struct {
	Addr           string
	RequestsPerSec float64
	Burst          int
	AllowedOrigins []string
	FeedBuffer     int
}

// limit rejects requests beyond the token bucket with 429.
func limit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Retry-After", "1")
				http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// NewRouter wires /healthz, /metrics and the /events feed.
func NewRouter(cfg Config, feed *Feed) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		MaxAge:         300,
	}))
	r.Use(limit(rate.NewLimiter(rate.Limit(cfg.RequestsPerSec), cfg.Burst)))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Handle("/events", feed)

	return r
}

// originChecker allows any origin the CORS list allows.
func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, a := range allowed {
			if a == "*" || a == origin {
				return true
			}
		}
		return false
	}
}

// Server is a running telemetry endpoint.
type Server struct {
	Feed   *Feed
	http   *http.Server
	cancel context.CancelFunc
}

// current is the server started by Start, used by the package-level Publish.
var current *Server

// Start serves telemetry on cfg.Addr in the background.
func Start(cfg Config) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	feed := NewFeed(cfg.FeedBuffer, originChecker(cfg.AllowedOrigins))
	go feed.Run(ctx)

	s := &Server{
		Feed:   feed,
		cancel: cancel,
		http: &http.Server{
			Addr:              cfg.Addr,
			Handler:           NewRouter(cfg, feed),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}

	go func() {
		log.Printf("Telemetry listening on %s", cfg.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Warning: telemetry server stopped: %v", err)
		}
	}()

	current = s
	return s
}

// Publish sends an event to the feed of the running server, if any.
func Publish(eventType string, data interface{}) {
	current.Publish(eventType, data)
}

// Publish sends an event to feed clients. It is safe on a nil server.
func (s *Server) Publish(eventType string, data interface{}) {
	if s == nil {
		return
	}
	s.Feed.Publish(eventType, data)
}

// Shutdown stops the HTTP server and the feed.
func (s *Server) Shutdown(ctx context.Context) error {
	if s == nil {
		return nil
	}
	s.cancel()
	return s.http.Shutdown(ctx)
}
