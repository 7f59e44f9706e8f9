package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AhmedAbdoRH/perfume-ambassador-backend/internal/cart"
	"github.com/AhmedAbdoRH/perfume-ambassador-backend/internal/catalog"
	"github.com/AhmedAbdoRH/perfume-ambassador-backend/internal/chat"
	"github.com/AhmedAbdoRH/perfume-ambassador-backend/internal/config"
	"github.com/AhmedAbdoRH/perfume-ambassador-backend/internal/db"
	"github.com/AhmedAbdoRH/perfume-ambassador-backend/internal/events"
	"github.com/AhmedAbdoRH/perfume-ambassador-backend/internal/httpapi"
	"github.com/AhmedAbdoRH/perfume-ambassador-backend/internal/order"
)

func main() {
	cfg := config.Load()

	logger := log.New(os.Stdout, "[storefront] ", log.LstdFlags|log.Lshortfile)

	if err := db.RunMigrations(cfg.DatabaseDSN, logger); err != nil {
		logger.Fatalf("migrations: %v", err)
	}

	// DB: pgx pool for the catalog read path, database/sql for orders
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := db.NewPool(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Fatalf("open pgx pool: %v", err)
	}
	defer pool.Close()

	database := db.MustOpen(cfg.DatabaseDSN)
	defer database.Close()

	catalogRepo := catalog.NewPostgresRepository(pool)
	orderRepo := order.NewRepository(database)

	// RabbitMQ is optional; without it orders are still accepted
	var publisher httpapi.OrderEventsPublisher
	if cfg.RabbitURL != "" {
		rabbitConn := events.MustDialRabbit(cfg.RabbitURL)
		defer rabbitConn.Close()

		pub, err := events.NewPublisher(rabbitConn)
		if err != nil {
			logger.Fatalf("create publisher: %v", err)
		}
		defer pub.Close()
		publisher = pub
	} else {
		logger.Println("RABBITMQ_URL not set, order events disabled")
	}

	sessions := cart.NewManager(cfg.ShippingFee, cfg.AutoHideAfter, cfg.SessionTTL)
	go sessions.Run(ctx, 10*time.Minute)

	completer := chat.NewClient(chat.Config{
		APIKey:  cfg.GroqAPIKey,
		BaseURL: cfg.GroqBaseURL,
		Model:   cfg.GroqModel,
	})

	mux := httpapi.NewRouter(httpapi.Deps{
		Logger:    logger,
		Sessions:  sessions,
		Catalog:   catalogRepo,
		Orders:    orderRepo,
		Publisher: publisher,
		Completer: completer,
		Defaults: catalog.Settings{
			WhatsAppNumber: cfg.WhatsAppNumber,
			CurrencySuffix: cfg.CurrencySuffix,
			ShippingFee:    cfg.ShippingFee,
		},
		CORSAllowOrigins: cfg.CORSAllowOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.Printf("storefront listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logger.Println("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
	cancel()
}
