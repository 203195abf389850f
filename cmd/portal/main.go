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

	"mssd-portal/internal/config"
	"mssd-portal/internal/notify"
	"mssd-portal/internal/server"
	"mssd-portal/internal/sheets"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	store, err := sheets.New(cfg.GoogleServiceAccountJSON, cfg.SpreadsheetID)
	if err != nil {
		log.Fatalf("sheets: %v", err)
	}

	notifier, err := notify.New(cfg)
	if err != nil {
		log.Fatalf("notify: %v", err)
	}

	httpSrv := server.New(cfg, store, notifier)

	go func() {
		log.Printf("HTTP listening on %s", cfg.HTTPAddr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = httpSrv.Shutdown(ctx)

	log.Println("bye")
}
