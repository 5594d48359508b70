package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/arindamsaha1507/vyakarana/internal/api"
	"github.com/arindamsaha1507/vyakarana/internal/checksum"
	"github.com/arindamsaha1507/vyakarana/internal/corpus"
	"github.com/arindamsaha1507/vyakarana/internal/index"
	"github.com/arindamsaha1507/vyakarana/internal/sse"
	"github.com/arindamsaha1507/vyakarana/internal/sutraservice"
)

// Run starts the application with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Initialize structured JSON logger.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("corpus_path", cfg.Corpus.Path),
		slog.String("sqlite_path", cfg.SQLite.Path),
		slog.String("log_level", cfg.App.LogLevel.String()))

	// Load the corpus. A missing or structurally broken file is fatal.
	raw, err := os.ReadFile(cfg.Corpus.Path)
	if err != nil {
		return fmt.Errorf("read corpus: %w", err)
	}
	coll, err := corpus.Decode(raw)
	if err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}
	logger.Info("Corpus loaded",
		slog.String("name", coll.Name),
		slog.Int("sutras", coll.Len()))

	// Initialize SQLite index and bring it up to date.
	db, err := index.Open(cfg.SQLite.Path)
	if err != nil {
		return fmt.Errorf("init index: %w", err)
	}
	defer db.Close()

	if err := index.Sync(db, coll, checksum.Sum(raw), logger); err != nil {
		return fmt.Errorf("sync index: %w", err)
	}

	// SSE broker.
	broker := sse.NewBroker(2 * time.Second)
	defer broker.Close()

	// Build service and router.
	svc := sutraservice.New(coll, db)
	apiRouter := api.NewRouter(svc, cfg.Auth.AuthEnabled(), cfg.Auth.Token, broker)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Health check endpoints (unauthenticated).
	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Mount API routes under /api.
	r.Mount("/api", apiRouter)

	httpServer := &http.Server{
		Addr:    cfg.App.HTTP.Address(),
		Handler: r,
	}

	logger.Info("Server starting...", slog.String("http_address", cfg.App.HTTP.Address()))

	g, gCtx := errgroup.WithContext(ctx)

	// Watch the corpus file and hot-reload on change.
	if cfg.Corpus.Watch {
		g.Go(func() error {
			return corpus.Watch(gCtx, cfg.Corpus.Path, logger, func(data []byte) {
				fresh, decodeErr := corpus.Decode(data)
				if decodeErr != nil {
					logger.Error("reload: corpus rejected", slog.String("error", decodeErr.Error()))
					return
				}
				svc.Replace(fresh)
				if syncErr := index.Sync(db, fresh, checksum.Sum(data), logger); syncErr != nil {
					logger.Error("reload: index sync failed", slog.String("error", syncErr.Error()))
				}
				broker.PublishCorpusReloaded(fresh.Name, fresh.Len())
				logger.Info("reload: corpus replaced",
					slog.String("name", fresh.Name),
					slog.Int("sutras", fresh.Len()))
			})
		})
	}

	// Start HTTP server.
	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}
