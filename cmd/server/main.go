package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"
	"transport-optimizer/internal/adapters/optimizer"
	"transport-optimizer/internal/api"
	"transport-optimizer/internal/api/handlers"
	"transport-optimizer/internal/config"
	"transport-optimizer/internal/ports"
	"transport-optimizer/internal/services"
)

// main is the application composition root.
// It wires the optimization client, the optional response cache and the
// session behind the HTTP facade.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := optimizer.NewHTTPOptimizer(cfg.OptimizerURL, cfg.OptimizerTimeout)
	if err != nil {
		log.Fatal(err)
	}

	var opt ports.Optimizer = client
	checks := map[string]handlers.Check{}

	rc, err := openResultCache(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	if rc != nil {
		defer rc.Close()
		cached, err := optimizer.NewCachedOptimizer(client, rc.cache)
		if err != nil {
			log.Fatal(err)
		}
		opt = cached
		checks["cache"] = rc.ping
		log.Printf("result cache enabled backend=%s ttl=%s", rc.backend, cfg.CacheTTL)
	}

	session := services.NewSession(opt)
	router := api.NewRouter(session, api.Options{
		MaxUploadBytes: cfg.MaxUploadBytes,
		SubmitRate:     cfg.SubmitRate,
		SubmitBurst:    cfg.SubmitBurst,
		RejectWhenBusy: cfg.SubmitRejectWhenBusy,
		Checks:         checks,
	})

	// Write timeout covers a full optimization round-trip plus the response.
	log.Printf("Server listening addr=:%s optimizer=%s", cfg.Port, cfg.OptimizerURL)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      cfg.OptimizerTimeout + 30*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
	log.Println("Server stopped")
}
