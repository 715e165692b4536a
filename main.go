package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nilenavigator/catalog"
	"nilenavigator/config"
	"nilenavigator/marketplace"
	"nilenavigator/middleware"
	"nilenavigator/ratelim"
	"nilenavigator/routes"
	"nilenavigator/store"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

func setupRouter(deps routes.Deps) *httprouter.Router {
	router := httprouter.New()
	routes.RoutesWrapper(router, deps)
	return router
}

func main() {
	cfg := config.Load()

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.SentryDSN, Environment: cfg.Environment}); err != nil {
			log.Printf("sentry init failed: %v", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	kv, err := store.Open(ctx, cfg.Store)
	cancel()
	if err != nil {
		log.Fatalf("opening %s store: %v", cfg.Store.Backend, err)
	}

	cat := catalog.Default()
	shop := marketplace.Default()
	log.Printf("Loaded %d attractions and %d marketplace products", cat.Len(), len(shop.Products()))

	router := setupRouter(routes.Deps{
		Catalog:      cat,
		Shop:         shop,
		Store:        kv,
		RateLimiter:  ratelim.NewRateLimiter(cfg.GuideRPS, cfg.GuideBurst),
		ShareBaseURL: cfg.ShareBaseURL,
		PingMessage:  cfg.PingMessage,
	})

	// CORS -> security headers -> logging -> router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Session-ID"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
	}).Handler(router)

	var handler http.Handler = middleware.Logging(middleware.SecurityHeaders(corsHandler))
	if cfg.SentryDSN != "" {
		handler = sentryhttp.New(sentryhttp.Options{Repanic: false}).Handle(handler)
	}

	server := &http.Server{
		Addr:              cfg.Port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	server.RegisterOnShutdown(func() {
		log.Println("Closing store...")
		if err := kv.Close(); err != nil {
			log.Printf("closing store: %v", err)
		}
	})

	go func() {
		log.Printf("Server listening on %s (store: %s)", cfg.Port, cfg.Store.Backend)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutdown signal received; shutting down gracefully...")
	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
		return
	}

	log.Println("Server stopped cleanly")
}
