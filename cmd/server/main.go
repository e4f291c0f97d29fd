package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	natsclient "github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"

	"github.com/0xsj/overwatch-pkg/log"

	azkarhttp "github.com/azkarapp/azkar-backend/internal/adapter/inbound/http"
	natsadapter "github.com/azkarapp/azkar-backend/internal/adapter/outbound/nats"
	"github.com/azkarapp/azkar-backend/internal/adapter/outbound/postgres"
	rediscache "github.com/azkarapp/azkar-backend/internal/adapter/outbound/redis"
	"github.com/azkarapp/azkar-backend/internal/app/command"
	"github.com/azkarapp/azkar-backend/internal/app/query"
	"github.com/azkarapp/azkar-backend/internal/app/service"
	"github.com/azkarapp/azkar-backend/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	logger := log.NewPretty(log.DefaultConfig())

	logger.Info("starting azkar backend",
		log.String("address", cfg.Server.Address()),
	)

	// Connect to PostgreSQL
	pool, err := connectPostgres(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer pool.Close()

	// Connect to Redis
	redisClient, err := connectRedis(ctx, cfg.Redis, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer redisClient.Close()

	// Connect to NATS
	natsConn, err := connectNATS(cfg.NATS, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to nats: %w", err)
	}
	defer natsConn.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepository(pool)
	groupRepo := postgres.NewGroupRepository(pool)
	challengeRepo := postgres.NewChallengeRepository(pool)

	// Initialize cache
	userCache := rediscache.NewUserCache(redisClient, cfg.Redis.UserCacheTTL)

	// Initialize event publisher
	eventPublisher := natsadapter.NewEventPublisher(natsConn, cfg.NATS.SubjectPrefix)

	// Initialize services
	tokenService, err := service.NewTokenService(service.TokenConfig{
		Issuer:              cfg.Token.Issuer,
		Audience:            cfg.Token.Audience,
		AccessTokenDuration: cfg.Token.AccessTokenDuration,
		SigningKey:          []byte(cfg.Token.SigningKey),
	})
	if err != nil {
		return fmt.Errorf("failed to create token service: %w", err)
	}

	facebookService := service.NewFacebookService(service.FacebookConfig{
		GraphURL: cfg.Facebook.GraphURL,
		Timeout:  cfg.Facebook.Timeout,
	})

	// Initialize command handlers
	loginWithFacebookHandler := command.NewLoginWithFacebookHandler(
		userRepo,
		userCache,
		facebookService,
		tokenService,
		eventPublisher,
	)
	connectFacebookHandler := command.NewConnectFacebookHandler(
		userRepo,
		userCache,
		facebookService,
		tokenService,
		eventPublisher,
	)
	createGroupHandler := command.NewCreateGroupHandler(
		groupRepo,
		eventPublisher,
	)
	createPersonalChallengeHandler := command.NewCreatePersonalChallengeHandler(
		challengeRepo,
		eventPublisher,
	)

	// Initialize query handlers
	getUserHandler := query.NewGetUserHandler(userRepo, userCache)
	getUserByUsernameHandler := query.NewGetUserByUsernameHandler(userRepo)
	getUserByFacebookIDHandler := query.NewGetUserByFacebookIDHandler(userRepo, userCache)
	listPersonalChallengesHandler := query.NewListPersonalChallengesHandler(challengeRepo)

	// Initialize HTTP handler
	handler := azkarhttp.NewHandler(azkarhttp.HandlerConfig{
		LoginWithFacebookHandler:       loginWithFacebookHandler,
		ConnectFacebookHandler:         connectFacebookHandler,
		CreateGroupHandler:             createGroupHandler,
		CreatePersonalChallengeHandler: createPersonalChallengeHandler,
		GetUserHandler:                 getUserHandler,
		GetUserByUsernameHandler:       getUserByUsernameHandler,
		GetUserByFacebookIDHandler:     getUserByFacebookIDHandler,
		ListPersonalChallengesHandler:  listPersonalChallengesHandler,
	})

	// Initialize HTTP server
	serverCfg := azkarhttp.ServerConfig{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	server, err := azkarhttp.NewServer(serverCfg, handler, tokenService, logger)
	if err != nil {
		return fmt.Errorf("failed to create http server: %w", err)
	}

	// Handle graceful shutdown
	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Run()
	}()

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("azkar backend started", log.String("address", server.Address()))

	select {
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	case sig := <-sigChan:
		logger.Info("received shutdown signal", log.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()

		if err := server.Stop(shutdownCtx); err != nil {
			return fmt.Errorf("failed to stop server: %w", err)
		}

		logger.Info("azkar backend stopped gracefully")
		return nil
	}
}

func connectPostgres(ctx context.Context, cfg config.DatabaseConfig, logger log.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	poolCfg.MaxConns = int32(cfg.MaxConns)
	poolCfg.MinConns = int32(cfg.MinConns)
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime
	poolCfg.HealthCheckPeriod = cfg.HealthCheckPeriod

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("connected to postgres",
		log.String("host", cfg.Host),
		log.String("database", cfg.Database),
	)

	return pool, nil
}

func connectRedis(ctx context.Context, cfg config.RedisConfig, logger log.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Address(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	logger.Info("connected to redis",
		log.String("address", cfg.Address()),
	)

	return client, nil
}

func connectNATS(cfg config.NATSConfig, logger log.Logger) (*natsclient.Conn, error) {
	opts := []natsclient.Option{
		natsclient.MaxReconnects(cfg.MaxReconnects),
		natsclient.ReconnectWait(cfg.ReconnectWait),
		natsclient.DisconnectErrHandler(func(nc *natsclient.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", log.String("error", err.Error()))
			}
		}),
		natsclient.ReconnectHandler(func(nc *natsclient.Conn) {
			logger.Info("nats reconnected", log.String("url", nc.ConnectedUrl()))
		}),
	}

	conn, err := natsclient.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	logger.Info("connected to nats",
		log.String("url", conn.ConnectedUrl()),
	)

	return conn, nil
}
