// Command server exposes the hero-sentence engine as a JSON REST API.
//
// Endpoints:
//
//	POST /api/hero     body: build request (see heroRequest)
//	GET  /api/forms?verb=<verb>
//	GET  /api/units[?group=<id>]
//	GET  /api/unit?id=<id>
//	GET  /api/groups
//	GET  /api/search?q=<text>[&pack=<name>]
//	GET  /api/export
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/thaytai/grammar"
	"github.com/thaytai/grammar/internal/logging"
)

func newHandler(cfg Config, content *grammar.Content) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/hero", handleHero(content))
	mux.HandleFunc("/api/forms", handleForms())
	mux.HandleFunc("/api/units", handleUnits(content))
	mux.HandleFunc("/api/unit", handleUnit(content))
	mux.HandleFunc("/api/groups", handleGroups(content))
	mux.HandleFunc("/api/search", handleSearch(content))
	mux.HandleFunc("/api/export", handleExport(content))

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
	})
	return requestLogger(c.Handler(mux))
}

// serve runs srv until ctx is cancelled, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, cfg Config) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	dataDir := flag.String("data", "", "path to content pack directory (overrides config)")
	addr := flag.String("addr", "", "listen address (overrides config)")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if err := logging.Setup(cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "log level: %v\n", err)
		os.Exit(1)
	}

	log.Info().Str("dir", cfg.DataDir).Msg("loading content")
	content, report, err := grammar.Load(cfg.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load content")
	}
	for _, e := range report.Errors {
		log.Warn().Str("error", e).Msg("pack skipped")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      newHandler(cfg, content),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if err := serve(ctx, srv, cfg); err != nil {
		log.Fatal().Err(err).Send()
	}
}
