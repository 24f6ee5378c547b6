package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/pi2026/clubsite/backend/internal/config"
	"github.com/pi2026/clubsite/backend/internal/handler"
	askHandler "github.com/pi2026/clubsite/backend/internal/handler/ask"
	authHandler "github.com/pi2026/clubsite/backend/internal/handler/auth"
	memberHandler "github.com/pi2026/clubsite/backend/internal/handler/member"
	memberModel "github.com/pi2026/clubsite/backend/internal/model/member"
	"github.com/pi2026/clubsite/backend/internal/service/ai"
	"github.com/pi2026/clubsite/backend/internal/service/history"
	"github.com/pi2026/clubsite/backend/internal/service/ratelimit"
	"github.com/pi2026/clubsite/backend/internal/service/session"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Core stores, all in-memory and process-scoped.
	sessions := session.NewService()
	limiter := ratelimit.NewLimiter(ratelimit.DefaultLimit, ratelimit.DefaultWindow)
	historyStore := history.NewStore()
	members := memberModel.NewFileStore(cfg.Members.Path)

	gateway := ai.NewService(cfg.Provider)
	if cfg.Provider.Enabled() {
		log.Println("model provider configured, chat proxy enabled")
	} else {
		log.Println("模型服务未配置，/api/ask 将返回 ask_failed")
	}

	router := handler.NewRouter(handler.Deps{
		Auth:     authHandler.New(sessions, cfg.Auth),
		Members:  memberHandler.New(members),
		Ask:      askHandler.New(gateway, limiter, historyStore),
		Sessions: sessions,
	})

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("club site backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
