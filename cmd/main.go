package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"foodexpress/api"
	"foodexpress/config"
	"foodexpress/pkg/clock"
	"foodexpress/pkg/logger"
	"foodexpress/pkg/notify"
	"foodexpress/pkg/routing"
	"foodexpress/service"
	"foodexpress/storage/postgres"
	"foodexpress/storage/redisdb"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.ServiceName, cfg.LoggerLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	pgStore, err := postgres.New(ctx, cfg, log)
	if err != nil {
		log.Error("Failed to connect to postgres", logger.Error(err))
		os.Exit(1)
	}
	defer pgStore.Close()

	idem := redisdb.New(cfg)
	defer idem.Close()

	route := routing.NewClient(cfg.GoogleMapsAPIKey, cfg.RestaurantAddress, log)

	notifier, err := notify.NewTelegram(cfg.TelegramBotToken, cfg.AdminChatID, log)
	if err != nil {
		log.Warning("Telegram notifier disabled", logger.Error(err))
		notifier = notify.NewNoop()
	}

	clk := clock.NewSystem()
	svc := service.New(cfg, pgStore, route, idem, notifier, clk, log)
	sweeper := service.NewDeliverySweeper(pgStore, notifier, clk, cfg.SweepInterval, log)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.AppPort),
		Handler: api.NewRouter(svc, pgStore.Auth(), log),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("HTTP server listening", logger.Int("port", cfg.AppPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		log.Info("delivery sweeper started", logger.Duration("interval", cfg.SweepInterval))
		if err := sweeper.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("service exited with error", logger.Error(err))
		os.Exit(1)
	}
	log.Info("shut down cleanly")
}
