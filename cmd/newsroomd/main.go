package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"newsroom/internal/config"
	"newsroom/internal/ingest"
	"newsroom/internal/publisher"
	"newsroom/internal/rotation"
	"newsroom/internal/scheduler"
	"newsroom/internal/server"
	"newsroom/internal/source/newsapi"
	"newsroom/internal/source/rss"
	"newsroom/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	var pub ingest.Publisher
	if cfg.RabbitMQ.URL != "" {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		pub = rabbitMQ
	} else {
		logger.Info("rabbitmq disabled, article events will not be published")
	}

	articleStore := postgres.NewArticleStore(db)
	periodStore := postgres.NewPeriodStore(db)
	txManager := postgres.NewTransactionManager(db)

	var sources, highPriority []ingest.Source
	for _, feed := range rss.ActiveSources() {
		src := rss.New(feed, rss.Config{Timeout: cfg.Ingest.FeedTimeout}, logger)
		sources = append(sources, src)
		if feed.Priority == rss.PriorityHigh {
			highPriority = append(highPriority, src)
		}
	}

	var search ingest.Source
	if cfg.NewsAPI.APIKey != "" {
		search = newsapi.New(newsapi.Config{
			BaseURL:    cfg.NewsAPI.BaseURL,
			APIKey:     cfg.NewsAPI.APIKey,
			MaxQueries: cfg.NewsAPI.MaxQueries,
			PageSize:   cfg.NewsAPI.PageSize,
			QueryDelay: cfg.NewsAPI.QueryDelay,
			Timeout:    cfg.NewsAPI.Timeout,
		}, logger)
	}

	pipeline := ingest.NewPipeline(sources, highPriority, search, cfg.Ingest.MinRelevance, logger)
	ingestService := ingest.NewService(pipeline, articleStore, pub, logger)

	rotationService, err := rotation.NewService(periodStore, articleStore, txManager, logger)
	if err != nil {
		logger.Error("failed to create rotation service", "error", err)
		os.Exit(1)
	}

	sched := scheduler.New(
		ingestService,
		rotationService,
		cfg.Ingest.Interval,
		cfg.Rotation.CheckInterval,
		logger,
	)

	srv := server.New(ingestService, rotationService, periodStore, articleStore, server.Config{
		Addr:        cfg.Server.Addr,
		CronSecret:  cfg.Server.CronSecret,
		Environment: cfg.Server.Environment,
	}, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	go func() {
		if err := sched.Start(ctx); err != nil && err != context.Canceled {
			logger.Error("scheduler error", "error", err)
		}
	}()

	logger.Info("starting newsroom service",
		"rss_sources", len(sources),
		"newsapi", search != nil,
		"ingest_interval", cfg.Ingest.Interval,
		"rotate_check_interval", cfg.Rotation.CheckInterval,
	)

	if err := srv.Start(ctx); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
