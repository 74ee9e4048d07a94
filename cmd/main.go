package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/samandr77/microservices/checkout/internal/api"
	"github.com/samandr77/microservices/checkout/internal/clients/dashboard"
	"github.com/samandr77/microservices/checkout/internal/clients/paymentpage"
	"github.com/samandr77/microservices/checkout/internal/entity"
	"github.com/samandr77/microservices/checkout/internal/repository"
	"github.com/samandr77/microservices/checkout/internal/service"
	"github.com/samandr77/microservices/checkout/pkg/broker"
	"github.com/samandr77/microservices/checkout/pkg/config"
	"github.com/samandr77/microservices/checkout/pkg/job"
	"github.com/samandr77/microservices/checkout/pkg/logger"
	"github.com/samandr77/microservices/checkout/pkg/postgres"
)

const (
	ReadTimeout  = 3 * time.Second
	WriteTimeout = 15 * time.Second

	buildDownloadsInterval = 5 * time.Second
	purgeDownloadsInterval = time.Hour
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l, err := logger.New(cfg.Logger.Level, cfg.Logger.Format)
	panicOnErr("create logger", err)

	err = postgres.UpMigrations(cfg.Postgres.DSN)
	panicOnErr("up migrations", err)

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	repo := repository.New(pool)

	producer := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.StatusTopic)
	defer producer.Close()

	paymentPage := paymentpage.NewClient(cfg.PaymentPage)
	dashboardAPI := dashboard.NewClient(cfg.Dashboard)

	checkout := service.NewCheckout(paymentPage, service.CheckoutConfig{
		Fees: entity.FeeSchedule{
			ProcessingFee: cfg.Checkout.ProcessingFee,
			SystemFee:     cfg.Checkout.SystemFee,
		},
		PayableThreshold: cfg.Checkout.PayableThreshold,
		FallbackCard: entity.ProviderCodes{
			MethodCode:   cfg.Checkout.FallbackCardMethod,
			ProviderCode: cfg.Checkout.FallbackCardProv,
		},
		PublicURL: cfg.PaymentPage.PublicURL,
	})

	poller := service.NewStatusPoller(paymentPage, producer, service.PollerConfig{
		Interval:     cfg.Poller.Interval,
		CycleTimeout: cfg.Poller.CycleTimeout,
	})

	dashboardService := service.NewDashboard(dashboardAPI, repo, cfg.Postgres.DownloadRetention)

	jobs := job.NewService().
		RegisterJob("build downloads", buildDownloadsInterval, dashboardService.BuildDownloads).
		RegisterJob("purge old downloads", purgeDownloadsInterval, dashboardService.PurgeDownloads).
		Start(ctx)
	defer jobs.Stop()

	handler := api.NewHandler(checkout, poller, dashboardService)
	mw := api.NewMiddleware(cfg.Checkout.PaymentRateLimit, cfg.Checkout.PaymentRateBurst)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	// Open status streams end when their request contexts are cancelled.
	server.RegisterOnShutdown(cancel)

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "service started", "port", cfg.HTTP.Port)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), WriteTimeout)
		defer shutdownCancel()

		err := server.Shutdown(shutdownCtx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}
	}()

	wg.Wait()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
