package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/retail-tracker/internal/alerts"
	"github.com/rogerio-castellano/retail-tracker/internal/archive"
	"github.com/rogerio-castellano/retail-tracker/internal/cache"
	"github.com/rogerio-castellano/retail-tracker/internal/config"
	"github.com/rogerio-castellano/retail-tracker/internal/db"
	"github.com/rogerio-castellano/retail-tracker/internal/http/handlers"
	mw "github.com/rogerio-castellano/retail-tracker/internal/http/middleware"
	rl "github.com/rogerio-castellano/retail-tracker/internal/http/rate_limiter"
	"github.com/rogerio-castellano/retail-tracker/internal/http/router"
	"github.com/rogerio-castellano/retail-tracker/internal/ledger"
	"github.com/rogerio-castellano/retail-tracker/internal/logger"
	"github.com/rogerio-castellano/retail-tracker/internal/repo"
	"github.com/rogerio-castellano/retail-tracker/internal/scheduler"
)

// @title Retail Tracker API
// @version 1.0
// @description REST API for recording stock, sales and expenses and reading business reports.
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(os.Getenv("RETAIL_CONFIG"))
	if err != nil {
		panic(err)
	}
	log := logger.Must(logger.New(cfg.Log.Level))
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loc := cfg.Location()
	opts := []ledger.Option{
		ledger.WithLogger(log),
		ledger.WithClock(func() time.Time { return time.Now().In(loc) }),
	}

	if cfg.Redis.Addr != "" {
		rdb, err := cache.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal("could not connect to redis", zap.Error(err))
		}
		defer rdb.Close()
		opts = append(opts, ledger.WithCache(cache.NewRedisReportCache(rdb, cfg.Redis.ReportTTL)))
		log.Info("report cache backed by redis", zap.String("addr", cfg.Redis.Addr))
	} else {
		opts = append(opts, ledger.WithCache(cache.NewMemoryReportCache(cfg.Redis.ReportTTL)))
	}

	var engine *ledger.Engine
	if cfg.Database.URL != "" {
		database, err := db.Connect(ctx, cfg.Database.URL)
		if err != nil {
			log.Fatal("could not connect to database", zap.Error(err))
		}
		defer database.Close()

		if err := db.EnsureSchema(ctx, database); err != nil {
			log.Fatal("could not create schema", zap.Error(err))
		}

		timeout := cfg.Database.QueryTimeout
		engine = ledger.NewEngine(ledger.Repositories{
			Inventory: repo.NewPostgresInventoryRepository(database, timeout),
			Sales:     repo.NewPostgresSalesRepository(database, timeout),
			Expenses:  repo.NewPostgresExpenseRepository(database, timeout),
			Metrics:   repo.NewPostgresMetricsRepository(database, timeout),
		}, opts...)
		log.Info("using postgres store")
	} else {
		engine, _ = ledger.NewMemoryEngine(opts...)
		log.Warn("DATABASE_URL not set, using in-memory store")
	}

	handlers.SetEngine(engine)
	handlers.SetLogger(log)
	handlers.SetCurrency(cfg.Reporting.Currency)
	mw.SetLogger(log)

	var notifier *alerts.Notifier
	if cfg.Alerts.To != "" {
		notifier = alerts.NewNotifier(engine, alerts.NewSMTPMailer(cfg.Alerts), cfg.Reporting.Currency, log)
	}

	var archiver archive.Store
	if cfg.Archive.MongoURI != "" {
		store, err := archive.NewMongoStore(ctx, cfg.Archive.MongoURI, cfg.Archive.MongoDB)
		if err != nil {
			log.Fatal("could not connect to mongodb", zap.Error(err))
		}
		defer func() { _ = store.Close(context.Background()) }()
		archiver = store
	}

	sched := scheduler.New(engine, notifier, archiver, loc, logger.Named(log, "scheduler"))
	if err := sched.Start(cfg.Alerts.Cron, cfg.Archive.Cron); err != nil {
		log.Fatal("could not start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	limiter := rl.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	go limiter.StartVisitorCleanupLoop(ctx)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router.NewRouter(limiter),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server running", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
