package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	authUsecase "shop-backend/internal/auth/usecase"
	productUsecase "shop-backend/internal/product/usecase"
	"shop-backend/pkg/config"

	"github.com/fatih/color"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase    authUsecase.AuthUsecase
	productUsecase productUsecase.ProductUsecase
	config         *config.Config
	log            *slog.Logger
}

func NewHandler(authUc authUsecase.AuthUsecase, productUc productUsecase.ProductUsecase, cfg *config.Config, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{
		authUsecase:    authUc,
		productUsecase: productUc,
		config:         cfg,
		log:            log,
	}
}

// Router builds the gin engine with middleware and every route
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		RequestID(),
		RequestLogger(h.log),
		CORS(h.config.CORSAllowedOrigins),
		SecurityHeaders(),
	)

	SetupRoutes(r, h.authUsecase, h.productUsecase)
	return r
}

// Start listens on addr and serves until ctx is cancelled
func (h *Handler) Start(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}

	color.New(color.FgCyan, color.Underline, color.Bold).
		Printf("Server running on port %s\n", h.config.Port)

	return h.Serve(ctx, ln)
}

// Serve handles requests on ln. When ctx is done the server stops accepting
// connections and waits up to the configured shutdown timeout for in-flight
// requests.
func (h *Handler) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           h.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	h.log.Info("shutting down server", "timeout", h.config.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), h.config.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	return nil
}
