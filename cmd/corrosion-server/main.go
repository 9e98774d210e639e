// Command corrosion-server loads the material/electrochemical catalogs
// and serves the tool surface over HTTP, with graceful shutdown on
// SIGINT/SIGTERM.
package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"corrosion-engine/internal/catalog"
	"corrosion-engine/internal/config"
	"corrosion-engine/internal/transport"
)

var wg sync.WaitGroup

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	cat, err := catalog.Load(cfg.DataDir)
	if err != nil {
		log.Fatalf("catalog load failed: %v", err)
	}
	log.Printf("loaded catalogs from %s", cfg.DataDir)

	env := &transport.Env{Catalog: cat}
	router := transport.NewRouter(env)

	limiter := transport.NewIPRateLimiter(cfg.RateLimit, cfg.RateLimitBurst)
	rateLimited := limiter.LimitMiddleware(router)
	handler := transport.CORS(rateLimited)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Printf("listening on %s", cfg.ListenAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutdown signal received, draining in-flight requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("error during shutdown: %v", err)
	}
	wg.Wait()
	log.Println("server stopped")
}
