package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Reddyn-Wallace/insulhub-ui/internal/config"
	"github.com/Reddyn-Wallace/insulhub-ui/internal/graphql"
	"github.com/Reddyn-Wallace/insulhub-ui/internal/server"
	"github.com/Reddyn-Wallace/insulhub-ui/internal/store"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	st, err := store.Open(cfg.StoreDSN)
	if err != nil {
		log.Fatalf("open local store: %v", err)
	}
	api := graphql.New(cfg.APIBaseURL)

	log.Printf("Starting server env=%s port=%s api=%s", cfg.Env, cfg.Port, cfg.APIBaseURL)
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: server.New(cfg, api, st)}

	go func() {
		log.Printf("Server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
