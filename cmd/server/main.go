package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/soundline/storefront/internal/cart"
	"github.com/soundline/storefront/internal/config"
	"github.com/soundline/storefront/internal/db"
	"github.com/soundline/storefront/internal/events"
	"github.com/soundline/storefront/internal/httpserver"
	"github.com/soundline/storefront/internal/logging"
	loggingmw "github.com/soundline/storefront/internal/middleware/logging"
	"github.com/soundline/storefront/internal/repo"
	"github.com/soundline/storefront/internal/search"
	"github.com/soundline/storefront/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	config.MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)

	ctx := context.Background()
	database, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database init error: %v", err)
	}

	if cfg.SeedCatalog {
		if err := db.Seed(database); err != nil {
			log.Fatalf("catalog seed error: %v", err)
		}
	}

	producer := events.NewProducer(cfg.KafkaBrokers)

	index, err := search.NewIndex(cfg)
	if err != nil {
		log.Fatalf("search init error: %v", err)
	}

	var cartStore cart.Store
	if cfg.RedisURL != "" {
		rs, err := cart.NewRedisStore(cfg.RedisURL)
		if err != nil {
			log.Fatalf("cart store init error: %v", err)
		}
		cartStore = rs
	}

	repository := repo.New(database)

	deps := &httpserver.Deps{
		AuthHandler: &httpserver.AuthHTTP{
			Svc:       &service.AuthService{Repo: repository, Producer: producer},
			JWTSecret: cfg.JWTSecret,
		},
		CatalogHandler: &httpserver.CatalogHTTP{
			Svc: &service.CatalogService{Repo: repository, Producer: producer, Index: index},
		},
		OrderHandler: &httpserver.OrderHTTP{
			Svc: &service.OrderService{Repo: repository, Producer: producer, StrictItems: cfg.StrictOrderItems},
		},
		ReviewHandler: &httpserver.ReviewHTTP{
			Svc: &service.ReviewService{Repo: repository, Producer: producer},
		},
		CartHandler:   &httpserver.CartHTTP{Store: cartStore},
		SearchHandler: &httpserver.SearchHTTP{Index: index},
		JWTSecret:     cfg.JWTSecret,
	}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), loggingmw.RequestLogger(logger))

	httpserver.Register(e, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()
	logger.Info("server started", "port", cfg.ServerPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := database.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	if err := producer.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	logger.Info("shutdown complete")
}
