package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazepath/cache"
	"github.com/katalvlaran/mazepath/server"
)

func (a *app) newServeCmd() *cobra.Command {
	var addr, redisAddr string
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solvers over HTTP",
		Long: `Serve the solvers over HTTP.

Results are cached in Redis when MAZEPATH_REDIS_ADDR (or --redis-addr) is
set, otherwise in process memory.

Examples:
  mazepath serve
  mazepath serve --addr 127.0.0.1:9000 --redis-addr localhost:6379`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.HTTPAddr = addr
			}
			if cmd.Flags().Changed("redis-addr") {
				a.cfg.RedisAddr = redisAddr
			}
			return a.runServe(cmd.Context())
		},
	}
	serveCmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from MAZEPATH_HTTP_ADDR)")
	serveCmd.Flags().StringVar(&redisAddr, "redis-addr", "", "Redis address for the result cache")

	return serveCmd
}

func (a *app) runServe(parent context.Context) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	srv := server.New(server.Config{
		Addr:     a.cfg.HTTPAddr,
		GinMode:  a.cfg.GinMode,
		Store:    store,
		MaxSteps: a.cfg.MaxSteps,
		Timeout:  a.cfg.Timeout,
		Logger:   a.log,
	})

	return srv.Run(ctx)
}

// openStore picks Redis when an address is configured, memory otherwise.
func (a *app) openStore(ctx context.Context) (cache.Store, func(), error) {
	if a.cfg.RedisAddr == "" {
		a.log.Info("using in-memory cache", slog.Duration("ttl", a.cfg.CacheTTL))
		ms := cache.NewMemoryStore(a.cfg.CacheTTL)
		if a.cfg.CacheTTL <= 0 {
			return ms, func() {}, nil
		}

		janitorCtx, stop := context.WithCancel(ctx)
		done := make(chan struct{})
		go func() {
			defer close(done)
			ms.RunJanitor(janitorCtx, a.cfg.CacheTTL)
		}()
		return ms, func() { stop(); <-done }, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.RedisAddr,
		Password: a.cfg.RedisPassword,
		DB:       a.cfg.RedisDB,
	})
	rs := cache.NewRedisStore(client, a.cfg.CacheTTL)
	if err := rs.Ping(ctx); err != nil {
		_ = rs.Close()
		return nil, nil, err
	}
	a.log.Info("connected to redis", slog.String("addr", a.cfg.RedisAddr), slog.Duration("ttl", a.cfg.CacheTTL))

	return rs, func() { _ = rs.Close() }, nil
}
