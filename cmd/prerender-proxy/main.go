package main

import (
	"context"
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AhmedAbdoRH/perfume-ambassador-backend/internal/config"
	"github.com/AhmedAbdoRH/perfume-ambassador-backend/internal/middleware"
	"github.com/AhmedAbdoRH/perfume-ambassador-backend/internal/prerender"
)

func main() {
	logger := log.New(os.Stdout, "[prerender-proxy] ", log.LstdFlags|log.Lshortfile)

	cfg, err := config.LoadProxy()
	if err != nil {
		logger.Fatalf("config: %v", err)
	}

	origin, err := url.Parse(cfg.OriginURL)
	if err != nil {
		logger.Fatalf("parse ORIGIN_URL: %v", err)
	}

	// Non-crawler traffic passes straight through to the origin
	passthrough := httputil.NewSingleHostReverseProxy(origin)
	passthrough.ErrorLog = logger

	proxy := &prerender.Proxy{
		ServiceURL: cfg.ServiceURL,
		Token:      cfg.Token,
		Next:       passthrough,
		Client:     prerender.DefaultClient(),
		Logger:     logger,
	}

	handler := middleware.CorrelationID(middleware.Recover(logger)(proxy))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.Printf("prerender-proxy listening on :%s (origin %s)", cfg.Port, origin.Host)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logger.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
