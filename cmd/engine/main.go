package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	sentry "github.com/getsentry/sentry-go"
	"github.com/go-chi/chi"
	"github.com/golang-migrate/migrate/v4"
	migratep "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jessevdk/go-flags"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/brettericmartin/tee-club-engine/internal/consumer/engagement"
	"github.com/brettericmartin/tee-club-engine/internal/health"
	"github.com/brettericmartin/tee-club-engine/internal/metrics"
	mm "github.com/brettericmartin/tee-club-engine/internal/middleware"
	"github.com/brettericmartin/tee-club-engine/internal/middleware/memory"
	"github.com/brettericmartin/tee-club-engine/internal/middleware/rediscache"
	"github.com/brettericmartin/tee-club-engine/internal/primary"
	"github.com/brettericmartin/tee-club-engine/internal/reconciler"
	"github.com/brettericmartin/tee-club-engine/internal/scorer"
	"github.com/brettericmartin/tee-club-engine/internal/sentrylog"
	"github.com/brettericmartin/tee-club-engine/internal/server"
	"github.com/brettericmartin/tee-club-engine/internal/storage/postgres"
)

// nolint:lll,gochecknoglobals
var opts = struct {
	Host           string        `long:"http.host" env:"HTTP_HOST" default:"0.0.0.0" description:"IP to listen on"`
	Port           int           `long:"http.port" env:"HTTP_PORT" default:"8080" description:"port to listen on"`
	RequestTimeout time.Duration `long:"http.request_timeout" env:"HTTP_REQUEST_TIMEOUT" default:"45s" description:"request processing timeout"`

	Postgres                   string `long:"postgres" env:"POSTGRES" default:"host=localhost port=5432 user=postgres password=root sslmode=disable" description:"postgres dsn"`
	PostgresMaxOpenConnections int    `long:"postgres.max_open_connections" env:"POSTGRES_MAX_OPEN_CONNECTIONS" default:"0" description:"postgres maximal open connections count, 0 means unlimited"`
	PostgresMaxIdleConnections int    `long:"postgres.max_idle_connections" env:"POSTGRES_MAX_IDLE_CONNECTIONS" default:"5" description:"postgres maximal idle connections count"`
	PostgresMigrations         string `long:"postgres.migrations" env:"POSTGRES_MIGRATIONS" default:"scripts/migrations/postgres" description:"postgres migrations directory"`

	Redis string `long:"redis" env:"REDIS" description:"redis address for the shared rank cache, in-process cache is used when empty"`

	ConsumerPollInterval time.Duration `long:"consumer.poll_interval" env:"CONSUMER_POLL_INTERVAL" default:"500ms" description:"interval between event log polls"`
	ConsumerBatchSize    int           `long:"consumer.batch_size" env:"CONSUMER_BATCH_SIZE" default:"100" description:"maximal count of events processed per poll"`

	ScoreSweepInterval     time.Duration `long:"sweep.score_interval" env:"SWEEP_SCORE_INTERVAL" default:"5m" description:"interval between hot score sweeps"`
	ReconcileSweepInterval time.Duration `long:"sweep.reconcile_interval" env:"SWEEP_RECONCILE_INTERVAL" default:"10m" description:"interval between counter reconciliation sweeps"`
	PrimarySweepInterval   time.Duration `long:"sweep.primary_interval" env:"SWEEP_PRIMARY_INTERVAL" default:"15m" description:"interval between primary designation sweeps"`
	SweepWorkers           int           `long:"sweep.workers" env:"SWEEP_WORKERS" default:"4" description:"count of parallel workers per sweep"`

	CacheTTL time.Duration `long:"cache.ttl" env:"CACHE_TTL" default:"10s" description:"ttl of cached rank responses"`

	LogLevel  string `long:"log.level" env:"LOG_LEVEL" default:"info" description:"Log level" choice:"debug" choice:"info" choice:"warning" choice:"error"`
	SentryDSN string `long:"sentry.dsn" env:"SENTRY_DSN" description:"sentry dsn"`
}{}

var errTerminated = errors.New("terminated")

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "Tee Club Engine"
	parser.LongDescription = "Tee Club Engine"

	_, err := parser.Parse()

	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	lvl, _ := logrus.ParseLevel(opts.LogLevel) // err will always be nil
	logrus.SetLevel(lvl)

	logrus.Info("service started")
	logrus.Infof("%+v", opts)

	if opts.SentryDSN != "" {
		hook, err := sentrylog.NewHook(sentry.ClientOptions{
			Dsn:              opts.SentryDSN,
			AttachStacktrace: true,
			Release:          health.GetVersion(),
			ServerName:       "engine",
		}, logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel)

		if err != nil {
			logrus.WithError(err).Fatal("failed to init sentry")
		}

		logrus.AddHook(hook)
	} else {
		logrus.Info("empty sentry dsn")
		logrus.Warn("skip sentry initialization")
	}

	db := mustGetDB()

	s := postgres.New(db)
	c := engagement.New(s, opts.ConsumerPollInterval, opts.ConsumerBatchSize)

	metrics.MustRegister(prometheus.DefaultRegisterer)

	r := chi.NewMux()
	server.SetupRouter(s, r, opts.RequestTimeout, getCache(), opts.CacheTTL)
	r.Get("/health", health.Handler(
		5*time.Second,
		health.SubjectPinger("postgres", db.PingContext),
		c, // consumer gets the offset from db
	))
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	srv := http.Server{
		Addr:    fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Handler: r,
	}

	ctx, cancel := context.WithCancel(context.Background())

	rec := reconciler.New(s, reconciler.Config{
		SweepInterval: opts.ReconcileSweepInterval,
		Workers:       opts.SweepWorkers,
	})
	sc := scorer.New(s, scorer.Config{
		SweepInterval: opts.ScoreSweepInterval,
		Workers:       opts.SweepWorkers,
	})
	enf := primary.New(s, primary.Config{
		SweepInterval: opts.PrimarySweepInterval,
	})
	gr, _ := errgroup.WithContext(ctx)
	gr.Go(func() error {
		return c.Run(ctx)
	})
	gr.Go(func() error {
		return rec.Run(ctx)
	})
	gr.Go(func() error {
		return sc.Run(ctx)
	})
	gr.Go(func() error {
		return enf.Run(ctx)
	})
	gr.Go(srv.ListenAndServe)
	gr.Go(func() error {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

		select {
		case <-ctx.Done():
		case s := <-sigs:
			logrus.Infof("terminating by %s signal", s)
		}

		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Error("failed to shutdown server gracefully")
		}

		return errTerminated
	})

	logrus.Info("engine started")

	if err := gr.Wait(); err != nil && !errors.Is(err, errTerminated) && !errors.Is(err, http.ErrServerClosed) {
		logrus.WithError(err).Fatal("engine unexpectedly closed")
	}
}

func mustGetDB() *sql.DB {
	db, err := sql.Open("postgres", opts.Postgres)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create postgres connection")
	}
	db.SetMaxOpenConns(opts.PostgresMaxOpenConnections)
	db.SetMaxIdleConns(opts.PostgresMaxIdleConnections)

	if err := db.PingContext(context.Background()); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	driver, err := migratep.WithInstance(db, &migratep.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("failed to create database migrate driver")
	}

	migrator, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", opts.PostgresMigrations), "postgres", driver)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}

	switch v, d, err := migrator.Version(); err {
	case nil:
		logrus.Infof("database version %d with dirty state %t", v, d)
	case migrate.ErrNilVersion:
		logrus.Info("database version: nil")
	default:
		logrus.WithError(err).Fatal("failed to get version")
	}

	switch err := migrator.Up(); err {
	case nil:
		logrus.Info("database was migrated")
	case migrate.ErrNoChange:
		logrus.Info("database is up-to-date")
	default:
		logrus.WithError(err).Fatal("failed to migrate db")
	}

	return db
}

func getCache() mm.Storage {
	if opts.Redis == "" {
		return memory.NewStorage()
	}

	client := redis.NewClient(&redis.Options{Addr: opts.Redis})
	if err := client.Ping(context.Background()).Err(); err != nil {
		logrus.WithError(err).Fatal("failed to ping redis")
	}

	return rediscache.NewStorage(client)
}
