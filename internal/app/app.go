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

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/editorial-backend/internal/adapter/mail"
	"github.com/heartmarshall/editorial-backend/internal/adapter/postgres"
	catalogrepo "github.com/heartmarshall/editorial-backend/internal/adapter/postgres/catalog"
	"github.com/heartmarshall/editorial-backend/internal/adapter/postgres/emaillog"
	"github.com/heartmarshall/editorial-backend/internal/adapter/postgres/role"
	"github.com/heartmarshall/editorial-backend/internal/adapter/postgres/sportevent"
	topicrepo "github.com/heartmarshall/editorial-backend/internal/adapter/postgres/topic"
	userrepo "github.com/heartmarshall/editorial-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/editorial-backend/internal/adapter/xlsx"
	"github.com/heartmarshall/editorial-backend/internal/auth"
	"github.com/heartmarshall/editorial-backend/internal/config"
	authsvc "github.com/heartmarshall/editorial-backend/internal/service/auth"
	"github.com/heartmarshall/editorial-backend/internal/service/bootstrap"
	"github.com/heartmarshall/editorial-backend/internal/service/catalog"
	"github.com/heartmarshall/editorial-backend/internal/service/digest"
	"github.com/heartmarshall/editorial-backend/internal/service/sports"
	"github.com/heartmarshall/editorial-backend/internal/service/topic"
	"github.com/heartmarshall/editorial-backend/internal/service/user"
	"github.com/heartmarshall/editorial-backend/internal/transport/dataloader"
	"github.com/heartmarshall/editorial-backend/internal/transport/middleware"
	"github.com/heartmarshall/editorial-backend/internal/transport/rest"
)

const rateLimiterCleanup = 5 * time.Minute

// Run is the application entry point. It loads configuration, connects to
// the database, applies migrations, seeds reference data and serves HTTP
// until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		buildAttrs(),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("smtp_enabled", cfg.SMTP.Enabled()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	handler, stop, err := Wire(ctx, pool, cfg, logger)
	if err != nil {
		return err
	}
	defer stop()

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
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// Wire builds the services over pool, seeds reference data and returns the
// HTTP handler. stop releases background resources held by the handler.
func Wire(ctx context.Context, pool *pgxpool.Pool, cfg *config.Config, logger *slog.Logger) (http.Handler, func(), error) {
	d := newDeps(pool, cfg, logger)

	if err := d.bootstrap.Run(ctx); err != nil {
		return nil, nil, fmt.Errorf("bootstrap: %w", err)
	}

	limiter := middleware.NewRateLimiter(rateLimiterCleanup, logger)
	return d.router(cfg, logger, limiter), limiter.Stop, nil
}

// deps holds the wired services and the repositories the transport layer
// reads directly.
type deps struct {
	pool      *pgxpool.Pool
	users     *userrepo.Repo
	mail      *mail.Sender
	auth      *authsvc.Service
	user      *user.Service
	catalog   *catalog.Service
	sports    *sports.Service
	topic     *topic.Service
	digest    *digest.Service
	bootstrap *bootstrap.Service
}

func newDeps(pool *pgxpool.Pool, cfg *config.Config, logger *slog.Logger) *deps {
	tx := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	roles := role.New(pool)
	domainCategories := catalogrepo.NewCategoryRepo(pool)
	domains := catalogrepo.NewDomainRepo(pool)
	events := sportevent.New(pool)
	topicCategories := topicrepo.NewCategoryRepo(pool)
	autos := topicrepo.NewAutoRepo(pool)
	daily := topicrepo.NewDailyRepo(pool)
	logs := emaillog.New(pool)

	hasher := auth.NewPasswordHasher(0)
	jwt := auth.NewJWTManager(cfg.Auth.SecretKey, cfg.Auth.Issuer, cfg.Auth.AccessTokenTTL())
	sender := mail.NewSender(cfg.SMTP, logger)

	return &deps{
		pool:      pool,
		users:     users,
		mail:      sender,
		auth:      authsvc.NewService(logger, users, hasher, jwt),
		user:      user.NewService(logger, users, roles, hasher, tx),
		catalog:   catalog.NewService(logger, domainCategories, domains, xlsx.NewWriter(), tx),
		sports:    sports.NewService(logger, events, tx, cfg.Sports.APIKey),
		topic:     topic.NewService(logger, topicCategories, autos, daily, tx),
		digest:    digest.NewService(logger, daily, logs, sender, tx, cfg.SMTP, cfg.Digest),
		bootstrap: bootstrap.NewService(logger, roles, topicCategories, autos, tx),
	}
}

func (d *deps) router(cfg *config.Config, logger *slog.Logger, limiter *middleware.RateLimiter) http.Handler {
	return rest.NewRouter(rest.Handlers{
		Auth:    rest.NewAuthHandler(d.auth, logger),
		Users:   rest.NewUserHandler(d.user, logger),
		Domains: rest.NewDomainHandler(d.catalog, logger),
		Sports:  rest.NewSportsHandler(d.sports, logger),
		Topics:  rest.NewTopicHandler(d.topic, logger),
		Digest:  rest.NewDigestHandler(d.digest, logger),
		Health:  rest.NewHealthHandler(d.pool, d.mail, BuildVersion()),
	}, rest.RouterOptions{
		Global: []middleware.Middleware{
			middleware.RequestID(),
			middleware.Logger(logger),
			middleware.Recovery(logger),
			middleware.CORS(cfg.CORS),
		},
		API: []middleware.Middleware{
			middleware.Auth(d.auth, logger),
			dataloader.Middleware(&dataloader.Repos{User: d.users}),
		},
		Login: []middleware.Middleware{
			limiter.Limit(cfg.Server.LoginRatePerMin),
		},
	})
}
