package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"comment-service/config"
	"comment-service/fetcher"
	"comment-service/handler"
	"comment-service/metrics"
	"comment-service/router"
	"comment-service/service"
	"comment-service/store"
	"comment-service/worker"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	metrics.Init(cfg.ServiceName, version, cfg.Environment)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sessions, err := store.New(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to open session store:", err)
	}

	client, err := fetcher.NewAPIClient(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to create YouTube client:", err)
	}
	commentFetcher := fetcher.NewFetcher(client)
	svc := service.NewCommentService(commentFetcher, sessions)

	r := router.Setup(handler.NewCommentHandler(svc, commentFetcher), cfg.ServiceName)

	// The NATS worker is optional
	var commentWorker *worker.Worker
	if cfg.NATSUrl != "" {
		commentWorker, err = worker.NewWorker(cfg, svc)
		if err != nil {
			log.Fatal("Failed to create worker:", err)
		}
		if err := commentWorker.Start(ctx); err != nil {
			log.Fatal("Failed to start worker:", err)
		}
	}

	// Setup HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Start server in background
	go func() {
		log.Printf("Comment service starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server:", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down comment service...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if commentWorker != nil {
		commentWorker.Stop()
	}

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if err := sessions.Close(shutdownCtx); err != nil {
		log.Printf("Failed to close session store: %v", err)
	}

	log.Println("Comment service stopped")
}
