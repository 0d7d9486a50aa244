package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/CourageAllien/revshare/internal/booking"
	"github.com/CourageAllien/revshare/internal/config"
	"github.com/CourageAllien/revshare/internal/contentgen"
	"github.com/CourageAllien/revshare/internal/httpserver"
	"github.com/CourageAllien/revshare/internal/httpserver/deps"
	"github.com/CourageAllien/revshare/internal/leadmagnet"
	"github.com/CourageAllien/revshare/internal/logger"
	"github.com/CourageAllien/revshare/internal/mailer"
	"github.com/CourageAllien/revshare/internal/redis"
	"github.com/CourageAllien/revshare/internal/scheduler"
	"github.com/CourageAllien/revshare/internal/store"
	"github.com/CourageAllien/revshare/internal/store/memory"
	redisstore "github.com/CourageAllien/revshare/internal/store/redis"
	"github.com/CourageAllien/revshare/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	runner      *scheduler.Runner
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Booking persistence: Redis in production, in-memory when no address
	// is configured (local dev, bookings vanish on restart).
	var bookings store.Bookings
	var redisClient *goredis.Client
	if cfg.RedisAddr != "" {
		loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
		client, err := redis.New(redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			RedisDB:        cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, loggerClient)
		if err != nil {
			loggerClient.Errorf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		loggerClient.Info("Redis initialized successfully")
		redisClient = client
		bookings = redisstore.NewStore(client, loggerClient)
	} else {
		loggerClient.Warn("no Redis address configured, using in-memory booking store")
		bookings = memory.NewStore()
	}

	sender := mailer.NewSender(mailer.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	}, loggerClient)

	generator := contentgen.NewClient(contentgen.Options{
		APIKey:  cfg.AnthropicAPIKey,
		Model:   cfg.AnthropicModel,
		Timeout: cfg.AnthropicTimeout,
	})
	if !generator.Enabled() {
		loggerClient.Warn("no Anthropic API key configured, content generation disabled")
	}

	topics, err := leadmagnet.LoadTopics(cfg.TopicsFile)
	if err != nil {
		loggerClient.Errorf("Failed to load lead magnet topics: %v", err)
		os.Exit(1)
	}

	bookingService := booking.NewService(bookings, generator, sender,
		loggerClient, cfg.OperatorEmail, cfg.Location())
	reminders := scheduler.NewReminders(bookings, sender, generator, loggerClient)
	runner := scheduler.NewRunner(reminders, loggerClient, cfg.ReminderPeriod)
	leadMagnetService := leadmagnet.NewService(topics, generator, sender, loggerClient)

	d := deps.Deps{
		Logger:          loggerClient,
		StartTime:       time.Now(),
		Version:         version.Version,
		Commit:          version.Commit,
		BuildDate:       version.BuildDate,
		GoVersion:       version.GoVersion,
		TimeNow:         time.Now,
		Store:           bookings,
		Bookings:        bookingService,
		Reminders:       reminders,
		LeadMagnet:      leadMagnetService,
		CronSecret:      cfg.CronSecret,
		TrustProxy:      cfg.TrustProxy,
		RateLimitBurst:  cfg.RateLimitBurst,
		RateLimitPerMin: cfg.RateLimitPerMin,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		runner:      runner,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting RevShare v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("RevShare %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.runner.Start(ctx); err != nil {
		return fmt.Errorf("failed to start reminder runner: %w", err)
	}
	if a.cfg.ReminderPeriod > 0 {
		a.logger.Info("reminder runner started",
			logger.Duration("interval", a.cfg.ReminderPeriod))
	}

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	a.runner.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ RevShare stopped cleanly")
	return nil
}
