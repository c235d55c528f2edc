package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	api "shop-backend/cmd/api"
	authdomain "shop-backend/internal/auth/domain"
	authRepo "shop-backend/internal/auth/repository"
	"shop-backend/internal/auth/security"
	authUsecase "shop-backend/internal/auth/usecase"
	productdomain "shop-backend/internal/product/domain"
	productRepo "shop-backend/internal/product/repository"
	productUsecase "shop-backend/internal/product/usecase"
	"shop-backend/pkg/config"
	"shop-backend/pkg/database"
	"shop-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

// stores holds the repositories for the configured driver and how to release them
type stores struct {
	users    authRepo.UserRepository
	products productRepo.ProductRepository
	close    func(context.Context) error
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	if err != nil {
		return err
	}
	slog.SetDefault(log)
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize store (dependency injection)
	st, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := st.close(closeCtx); err != nil {
			log.Error("closing store", "error", err)
		}
	}()
	log.Info("store ready", "driver", cfg.StoreDriver)

	// Initialize use cases
	authUc := authUsecase.NewAuthUsecase(st.users, security.NewTokenIssuer([]byte(cfg.JWTSecret)), log)
	productUc := productUsecase.NewProductUsecase(st.products, log)

	handler := api.NewHandler(authUc, productUc, cfg, log)
	return handler.Start(ctx, cfg.Addr())
}

func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	switch cfg.StoreDriver {
	case config.DriverMongo:
		conn, err := database.NewMongoConnection(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := authRepo.EnsureMongoUserIndexes(ctx, conn.DB); err != nil {
			_ = conn.Close(ctx)
			return nil, err
		}
		if err := productRepo.EnsureMongoProductIndexes(ctx, conn.DB); err != nil {
			_ = conn.Close(ctx)
			return nil, err
		}
		return &stores{
			users:    authRepo.NewMongoUserRepository(conn.DB),
			products: productRepo.NewMongoProductRepository(conn.DB),
			close:    conn.Close,
		}, nil

	case config.DriverPostgres:
		db, err := database.NewPostgresConnection(cfg)
		if err != nil {
			return nil, err
		}
		// Auto-migrate database schemas
		if err := db.AutoMigrate(&authdomain.User{}, &productdomain.Product{}); err != nil {
			_ = database.ClosePostgres(db)
			return nil, fmt.Errorf("migrating database: %w", err)
		}
		return &stores{
			users:    authRepo.NewGormUserRepository(db),
			products: productRepo.NewGormProductRepository(db),
			close:    func(context.Context) error { return database.ClosePostgres(db) },
		}, nil

	case config.DriverMemory:
		return &stores{
			users:    authRepo.NewMemoryUserRepository(),
			products: productRepo.NewMemoryProductRepository(),
			close:    func(context.Context) error { return nil },
		}, nil
	}

	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
