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

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/batch-dashboard/internal/adapter/memory"
	"github.com/heartmarshall/batch-dashboard/internal/adapter/postgres"
	"github.com/heartmarshall/batch-dashboard/internal/adapter/postgres/batchrun"
	"github.com/heartmarshall/batch-dashboard/internal/adapter/postgres/batchsettings"
	"github.com/heartmarshall/batch-dashboard/internal/adapter/postgres/user"
	"github.com/heartmarshall/batch-dashboard/internal/adapter/queue"
	"github.com/heartmarshall/batch-dashboard/internal/auth"
	"github.com/heartmarshall/batch-dashboard/internal/config"
	"github.com/heartmarshall/batch-dashboard/internal/domain"
	authsvc "github.com/heartmarshall/batch-dashboard/internal/service/auth"
	batchsvc "github.com/heartmarshall/batch-dashboard/internal/service/batch"
	"github.com/heartmarshall/batch-dashboard/internal/transport/middleware"
	"github.com/heartmarshall/batch-dashboard/internal/transport/rest"
)

type userStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type settingsStore interface {
	GetSettings(ctx context.Context, userID uuid.UUID) (*domain.StoredBatchSettings, error)
	UpsertSettings(ctx context.Context, userID uuid.UUID, s domain.BatchSettings) (*domain.StoredBatchSettings, error)
}

type runStore interface {
	GetActive(ctx context.Context, userID uuid.UUID) (*domain.BatchRun, error)
	Create(ctx context.Context, run *domain.BatchRun) (*domain.BatchRun, error)
	Finish(ctx context.Context, taskID uuid.UUID, status domain.RunStatus, at time.Time) (*domain.BatchRun, error)
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type pinger interface {
	Ping(ctx context.Context) error
}

type dispatcher interface {
	Dispatch(ctx context.Context, cmd domain.BatchCommand) error
}

// storage is the persistence backend selected by DatabaseConfig.Driver.
type storage struct {
	users    userStore
	settings settingsStore
	runs     runStore
	tx       txRunner
	db       pinger
	close    func()
}

// server is the fully wired API.
type server struct {
	handler http.Handler
	closers []func()
}

func (s *server) close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

// Run is the application entry point. It loads configuration, wires storage,
// the job dispatcher, services and handlers, and serves HTTP until ctx is
// cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("database_driver", cfg.Database.Driver),
		slog.Bool("queue_enabled", cfg.Queue.Enabled()),
	)

	srv, err := newServer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer srv.close()

	return serve(ctx, cfg.Server, srv.handler, logger)
}

func newServer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*server, error) {
	srv := &server{}

	store, err := openStorage(ctx, cfg.Database, logger)
	if err != nil {
		return nil, err
	}
	srv.closers = append(srv.closers, store.close)

	deps := []rest.Dependency{{Name: "storage", Pinger: store.db}}

	var disp dispatcher
	if cfg.Queue.Enabled() {
		pub, err := queue.NewPublisher(cfg.Queue.URL, cfg.Queue.QueueName, logger)
		if err != nil {
			srv.close()
			return nil, fmt.Errorf("app: %w", err)
		}
		srv.closers = append(srv.closers, func() {
			if err := pub.Close(); err != nil {
				logger.Warn("close queue publisher", slog.String("error", err.Error()))
			}
		})
		disp = pub
		deps = append(deps, rest.Dependency{Name: "queue", Pinger: pub})
	} else {
		disp = queue.NewLogDispatcher(logger)
	}

	jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, store.users, jwtMgr, cfg.Auth)
	if err := authService.EnsureDemoUsers(ctx, cfg.Auth.DemoAccounts()); err != nil {
		srv.close()
		return nil, fmt.Errorf("app: seed demo users: %w", err)
	}

	batchService := batchsvc.NewService(logger, store.settings, store.runs, store.tx, disp, cfg.Batch, cfg.Calendar)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	srv.closers = append(srv.closers, limiter.Stop)

	srv.handler = rest.NewRouter(rest.RouterDeps{
		Logger:         logger,
		Auth:           rest.NewAuthHandler(authService, logger),
		Batch:          rest.NewBatchHandler(batchService, logger),
		Health:         rest.NewHealthHandler(BuildVersion(), deps...),
		TokenValidator: authService,
		CORS:           cfg.CORS,
		LoginLimiter:   limiter,
		LoginPerMinute: cfg.RateLimit.LoginPerMinute,
	})

	return srv, nil
}

func openStorage(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*storage, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("app: %w", err)
		}
		if cfg.AutoMigrate {
			if err := postgres.Migrate(ctx, pool, logger); err != nil {
				pool.Close()
				return nil, fmt.Errorf("app: migrate: %w", err)
			}
		}
		return &storage{
			users:    user.New(pool),
			settings: batchsettings.New(pool),
			runs:     batchrun.New(pool),
			tx:       postgres.NewTxManager(pool),
			db:       pool,
			close:    pool.Close,
		}, nil
	default:
		store := memory.NewStore()
		return &storage{
			users:    store.Users,
			settings: store.Settings,
			runs:     store.Runs,
			tx:       store,
			db:       store,
			close:    func() {},
		}, nil
	}
}

// serve runs the HTTP server until ctx is done, then shuts it down within
// the configured timeout.
func serve(ctx context.Context, cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) error {
	httpSrv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", httpSrv.Addr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("app: listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("app: shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
