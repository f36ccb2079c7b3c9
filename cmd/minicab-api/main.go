// README: Entry point; loads config, wires services, starts HTTP server and the ops hub.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"minicab/internal/config"
	httptransport "minicab/internal/http"
	"minicab/internal/infra"
	"minicab/internal/logger"
	"minicab/internal/modules/driver"
	"minicab/internal/modules/matching"
	"minicab/internal/modules/rides"
	"minicab/internal/ws"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zlog, err := logger.New()
	if err != nil {
		log.Fatal(err)
	}
	defer zlog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DBDSN)
	if err != nil {
		zlog.Fatal("postgres init failed", zap.Error(err))
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.RedisAddr)
	defer redisClient.Close()

	rideStore := rides.NewStore(dbPool)
	if err := rideStore.EnsureSchema(ctx); err != nil {
		zlog.Fatal("ride schema init failed", zap.Error(err))
	}
	rideSvc := rides.NewService(rideStore, zlog)

	hub := ws.NewHub(zlog)
	go hub.Run(ctx)

	registry := driver.NewRegistry()
	driverSvc := driver.NewService(registry, driver.NewStore(redisClient), hub, zlog)
	if cfg.SeedFleet {
		driverSvc.Seed(ctx)
		zlog.Info("sample fleet seeded", zap.Int("drivers", registry.Len()))
	}

	engine := matching.NewEngine(registry, cfg.MatchRadiusKm)

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Drivers: driverSvc,
		Match:   engine,
		Rides:   rideSvc,
		Hub:     hub,
		Log:     zlog,
	})

	server := &http.Server{Addr: cfg.HTTPAddr, Handler: handler.Routes()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			zlog.Warn("server shutdown", zap.Error(err))
		}
	}()

	zlog.Info("listening", zap.String("addr", cfg.HTTPAddr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zlog.Fatal("server failed", zap.Error(err))
	}
}
