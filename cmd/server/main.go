package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "gomoku/internal/api/http"
	"gomoku/internal/api/ws"
	"gomoku/internal/config"
	"gomoku/internal/logging"
	"gomoku/internal/room"
	"gomoku/internal/store"

	"github.com/gin-contrib/pprof"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := config.Load()
	logger := logging.Setup(cfg.LogLevel, cfg.LogPretty)

	mem := store.NewMemoryStore()
	rm := room.NewManager(mem, cfg.Engine, nil)
	hub := ws.NewHub(rm)
	rm.SetHub(hub)

	router := httpapi.NewRouter(rm, hub)
	if cfg.Pprof {
		pprof.Register(router)
	}

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	g, ctx := errgroup.WithContext(sigCtx)
	g.Go(func() error {
		logger.Info().
			Str("addr", cfg.HTTPAddr).
			Int("boardSize", cfg.Engine.BoardSize).
			Int("depth", cfg.Engine.SearchDepth).
			Int("radius", cfg.Engine.CandidateRadius).
			Msg("listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warn().Err(err).Msg("graceful shutdown failed")
			return server.Close()
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}
