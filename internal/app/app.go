package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/binharademo/trelloclone/internal/adapter/postgres"
	boardrepo "github.com/binharademo/trelloclone/internal/adapter/postgres/board"
	cardrepo "github.com/binharademo/trelloclone/internal/adapter/postgres/card"
	historyrepo "github.com/binharademo/trelloclone/internal/adapter/postgres/history"
	listrepo "github.com/binharademo/trelloclone/internal/adapter/postgres/list"
	userrepo "github.com/binharademo/trelloclone/internal/adapter/postgres/user"
	"github.com/binharademo/trelloclone/internal/adapter/pubsub"
	"github.com/binharademo/trelloclone/internal/auth"
	"github.com/binharademo/trelloclone/internal/config"
	"github.com/binharademo/trelloclone/internal/realtime"
	authsvc "github.com/binharademo/trelloclone/internal/service/auth"
	"github.com/binharademo/trelloclone/internal/service/board"
	"github.com/binharademo/trelloclone/internal/service/lifecycle"
	"github.com/binharademo/trelloclone/internal/transport/dataloader"
	"github.com/binharademo/trelloclone/internal/transport/middleware"
	"github.com/binharademo/trelloclone/internal/transport/rest"
	"github.com/binharademo/trelloclone/internal/transport/ws"
)

// Run is the server entry point. It loads configuration, connects the
// database (and Redis when enabled), wires services and transports, and
// serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("redis_relay", cfg.Redis.Enabled),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if err := postgres.RegisterPoolMetrics(reg, pool); err != nil {
		return err
	}

	s := newServer(cfg, logger, pool, reg)
	defer s.limiter.Stop()

	g, gctx := errgroup.WithContext(ctx)

	if cfg.Redis.Enabled {
		rdb, err := pubsub.NewClient(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer rdb.Close()

		relay := pubsub.NewRelay(logger, rdb, cfg.Redis.Channel)
		s.bus.SetRelay(relay)
		s.health.WithComponent("redis", redisPinger{rdb: rdb})

		g.Go(func() error {
			return relay.Run(gctx, s.bus)
		})
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      s.handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		err := srv.Shutdown(shutdownCtx)
		s.ws.Shutdown()
		s.bus.Wait()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}

// server is the wired HTTP surface and the long-lived parts behind it.
type server struct {
	handler http.Handler
	bus     *realtime.Bus
	ws      *ws.Handler
	health  *rest.HealthHandler
	limiter *middleware.RateLimiter
}

// newServer builds repositories, services and transports on pool. Metrics
// are registered on reg and served from it.
func newServer(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, reg *prometheus.Registry) *server {
	bus := realtime.NewBus(logger, realtime.NewMetrics(reg), realtime.Config{
		BufferSize:     cfg.Realtime.SendBuffer,
		ForwardTimeout: cfg.Realtime.ForwardTimeout,
	})

	// Repositories
	users := userrepo.New(pool)
	boards := boardrepo.New(pool)
	lists := listrepo.New(pool)
	cards := cardrepo.New(pool)
	history := historyrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	// Services
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, users, jwtManager, cfg.Auth)
	boardService := board.NewService(logger, boards, lists, cards, txm)
	cardService := lifecycle.NewService(logger, cards, lists, history, txm, bus)

	s := &server{
		bus:     bus,
		ws:      ws.NewHandler(logger, bus, cfg.Realtime, cfg.CORS.AllowedOrigins),
		health:  rest.NewHealthHandler(pool, BuildVersion()),
		limiter: middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval),
	}

	s.handler = rest.NewRouter(rest.RouterDeps{
		Logger:      logger,
		Tokens:      authService,
		Auth:        rest.NewAuthHandler(authService, logger),
		Boards:      rest.NewBoardHandler(boardService, logger),
		Cards:       rest.NewCardHandler(cardService, logger),
		Health:      s.health,
		ClientLog:   rest.NewClientLogHandler(logger),
		Loaders:     &dataloader.Repos{User: users},
		RateLimiter: s.limiter,
		RateLimit:   cfg.RateLimit,
		CORS:        cfg.CORS,
		Metrics:     promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
		WebSocket:   s.ws,
	})
	return s
}

type redisPinger struct {
	rdb *redis.Client
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.rdb.Ping(ctx).Err()
}
