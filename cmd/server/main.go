package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"bistro_boss/internal/cache"
	"bistro_boss/internal/config"
	"bistro_boss/internal/handler"
	"bistro_boss/internal/payment"
	"bistro_boss/internal/repository"
	"bistro_boss/internal/repository/memory"
	"bistro_boss/internal/repository/mongostore"
	"bistro_boss/internal/service"
	"bistro_boss/internal/utils"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("server")

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := config.SetupLogging(cfg.LogLevel); err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Store ---
	store, closeStore, err := openStore(ctx, cfg.DB)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.DB.Driver, err)
	}
	defer closeStore()

	// --- Menu cache ---
	rdb, err := config.ConnectRedis(ctx, cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	if rdb != nil {
		defer rdb.Close()
		store.Menu = cache.NewMenuCache(store.Menu, rdb, cfg.Redis.MenuTTL)
	}

	// --- Payment processor ---
	var gateway payment.Gateway
	if cfg.Payment.SecretKey != "" {
		gateway = payment.NewStripeGateway(cfg.Payment.SecretKey, cfg.Payment.Currency)
	} else {
		log.Warning("STRIPE_SECRET_KEY not set, payment intents are disabled")
		gateway = payment.DisabledGateway{}
	}

	// --- Services ---
	jwtUtil := utils.NewJWTUtil(cfg.Auth.Secret, cfg.Auth.Expiration)
	svcs := handler.Services{
		Auth:     service.NewAuthService(store.Users, jwtUtil, cfg.Auth.RequirePassword),
		Users:    service.NewUserService(store.Users),
		Menu:     service.NewMenuService(store.Menu, store.Reviews),
		Cart:     service.NewCartService(store.Carts),
		Payments: service.NewPaymentService(gateway, store.Payments),
		Stats:    service.NewStatsService(store),
	}

	router := handler.NewRouter(svcs, jwtUtil, store.Users, store.Pinger)

	// --- Start Server ---
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %s", err)
		}
	}()

	// --- Graceful Shutdown ---
	<-ctx.Done()
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	log.Info("Server exiting")
}

// openStore connects the configured backend and returns its repositories with a close func
func openStore(ctx context.Context, cfg config.DBConfig) (*repository.Store, func(), error) {
	switch cfg.Driver {
	case config.DriverMongo:
		client, err := config.ConnectMongo(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Errorf("mongo disconnect: %v", err)
			}
		}
		return mongostore.NewStore(client.Database(cfg.Name)), closeFn, nil

	case config.DriverMemory:
		log.Warning("Using in-memory store, data is lost on restart")
		return memory.NewStore().Repositories(), func() {}, nil

	default:
		pool, err := config.ConnectDB(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		if err := config.AutoMigrate(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return repository.NewPostgresStore(pool), pool.Close, nil
	}
}
