package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/tm-acme-shop/acme-shop-pos-service/internal/clients"
	"github.com/tm-acme-shop/acme-shop-pos-service/internal/config"
	"github.com/tm-acme-shop/acme-shop-pos-service/internal/events"
	"github.com/tm-acme-shop/acme-shop-pos-service/internal/handlers"
	"github.com/tm-acme-shop/acme-shop-pos-service/internal/repository"
	"github.com/tm-acme-shop/acme-shop-pos-service/internal/server"
	"github.com/tm-acme-shop/acme-shop-pos-service/internal/service"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(log.InfoLevel)

	cfg := config.Load()
	logger := log.WithField("service", "pos-service")

	logger.WithField("port", cfg.Server.Port).Info("Starting pos-service")

	cartRepo := repository.NewRedisCartRepository(cfg.Redis)

	catalogClient := clients.NewCatalogClient(cfg.Square)
	ordersClient := clients.NewOrdersClient(cfg.Square)

	var publisher events.CheckoutEventPublisher
	if cfg.Features.EnableCheckoutEvents {
		kafkaPublisher := events.NewKafkaPublisher(cfg.Kafka)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	} else {
		publisher = events.NewMockEventPublisher()
	}

	cartService := service.NewCartService(cartRepo, publisher, cfg)
	checkoutService := service.NewCheckoutService(cartService, ordersClient, publisher, cfg)

	h := handlers.NewHandlers(cartService, checkoutService, catalogClient, cartRepo, cfg)

	srv := server.New(h, cfg)

	go func() {
		logger.WithFields(log.Fields{
			"port":                   cfg.Server.Port,
			"enable_checkout_events": cfg.Features.EnableCheckoutEvents,
		}).Info("Server starting")
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.WithField("error", err.Error()).Fatal("Server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.WithField("error", err.Error()).Error("Server forced to shutdown")
	}

	logger.Info("Server exited")
}
