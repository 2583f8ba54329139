package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/collecto-app/collecto-backend/internal/adapter/postgres"
	categoryrepo "github.com/collecto-app/collecto-backend/internal/adapter/postgres/category"
	followrepo "github.com/collecto-app/collecto-backend/internal/adapter/postgres/follow"
	itemrepo "github.com/collecto-app/collecto-backend/internal/adapter/postgres/item"
	tokenrepo "github.com/collecto-app/collecto-backend/internal/adapter/postgres/token"
	userrepo "github.com/collecto-app/collecto-backend/internal/adapter/postgres/user"
	jwtauth "github.com/collecto-app/collecto-backend/internal/auth"
	"github.com/collecto-app/collecto-backend/internal/config"
	authsvc "github.com/collecto-app/collecto-backend/internal/service/auth"
	"github.com/collecto-app/collecto-backend/internal/service/catalog"
	"github.com/collecto-app/collecto-backend/internal/service/explore"
	"github.com/collecto-app/collecto-backend/internal/service/export"
	"github.com/collecto-app/collecto-backend/internal/service/follow"
	"github.com/collecto-app/collecto-backend/internal/service/item"
	usersvc "github.com/collecto-app/collecto-backend/internal/service/user"
	"github.com/collecto-app/collecto-backend/internal/transport/middleware"
	"github.com/collecto-app/collecto-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, services, and the HTTP transport, then
// serves until the context is cancelled and shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	users := userrepo.New(pool)
	categories := categoryrepo.New(pool)
	items := itemrepo.New(pool)
	follows := followrepo.New(pool)
	tokens := tokenrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	jwtManager := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, tokens, txManager, jwtManager, cfg.Auth)
	catalogService := catalog.NewService(logger, categories, txManager, cfg.Catalog)
	itemService := item.NewService(logger, items, categories, txManager, cfg.Catalog)
	followService := follow.NewService(logger, follows, users)
	exploreService := explore.NewService(logger, follows, categories, items)
	userService := usersvc.NewService(logger, users)
	exportService := export.NewService(logger, categories, items, export.NewPDFRenderer())

	mux := rest.NewRouter(rest.Handlers{
		Auth:     rest.NewAuthHandler(authService, logger),
		User:     rest.NewUserHandler(userService, logger),
		Category: rest.NewCategoryHandler(catalogService, logger),
		Item:     rest.NewItemHandler(itemService, logger),
		Follow:   rest.NewFollowHandler(followService, logger),
		Explore:  rest.NewExploreHandler(exploreService, logger),
		Export:   rest.NewExportHandler(exportService, logger),
		Health:   rest.NewHealthHandler(pool, BuildVersion()),
	})

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.CORS(cfg.CORS),
		middleware.Auth(authService),
		middleware.Logger(logger),
		rateLimiter.Limit(300),
	)(mux)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
