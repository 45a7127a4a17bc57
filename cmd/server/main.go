package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Skotchmaster/demo_api/internal/config"
	"github.com/Skotchmaster/demo_api/internal/db"
	"github.com/Skotchmaster/demo_api/internal/httpserver"
	"github.com/Skotchmaster/demo_api/internal/logging"
	"github.com/Skotchmaster/demo_api/internal/models"
	"github.com/Skotchmaster/demo_api/internal/mykafka"
	"github.com/Skotchmaster/demo_api/internal/repo"
	"github.com/Skotchmaster/demo_api/internal/service"
)

type stores struct {
	users    repo.Store[models.User]
	products repo.Store[models.Product]
	close    func() error
}

func openStores(ctx context.Context, cfg *config.Config, startedAt time.Time) (*stores, error) {
	if cfg.StoreDriver != config.StoreSQLite {
		return &stores{
			users:    repo.NewMemoryStore(repo.SeedUsers()...),
			products: repo.NewMemoryStore(repo.SeedProducts(startedAt)...),
			close:    func() error { return nil },
		}, nil
	}

	gdb, err := db.Open(ctx, cfg.SQLiteDSN)
	if err != nil {
		return nil, err
	}
	users, err := repo.NewGormStore(ctx, gdb, repo.SeedUsers()...)
	if err != nil {
		_ = db.Close(gdb)
		return nil, err
	}
	products, err := repo.NewGormStore(ctx, gdb, repo.SeedProducts(startedAt)...)
	if err != nil {
		_ = db.Close(gdb)
		return nil, err
	}
	return &stores{
		users:    users,
		products: products,
		close:    func() error { return db.Close(gdb) },
	}, nil
}

func newPublisher(cfg *config.Config, logger *slog.Logger) mykafka.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		return mykafka.Nop{}
	}
	prod, err := mykafka.NewProducer(cfg.KafkaBrokers)
	if err != nil {
		logger.Warn("kafka disabled", "error", err)
		return mykafka.Nop{}
	}
	logger.Info("kafka producer ready", "brokers", cfg.KafkaBrokers)
	return prod
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.LogLevel, cfg.Env).With("service", "demo_api")
	slog.SetDefault(logger)

	startedAt := time.Now().UTC()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	st, err := openStores(ctx, cfg, startedAt)
	cancel()
	if err != nil {
		log.Fatalf("store open: %v", err)
	}

	prod := newPublisher(cfg, logger)

	e := httpserver.New(logger, !cfg.IsProduction())
	httpserver.Register(e, &httpserver.Deps{
		UserHandler:    &httpserver.UserHTTP{Svc: service.NewUserService(st.users), Producer: prod},
		ProductHandler: &httpserver.ProductHTTP{Svc: service.NewProductService(st.products), Producer: prod},
		MetaHandler:    &httpserver.MetaHTTP{Env: cfg.Env},
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server started",
			"addr", srv.Addr,
			"environment", cfg.Env,
			"store", cfg.StoreDriver,
			"health", "http://localhost"+srv.Addr+"/health",
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}
	if err := prod.Close(); err != nil {
		logger.Error("kafka close error", "error", err)
	}
	if err := st.close(); err != nil {
		logger.Error("store close error", "error", err)
	}

	logger.Info("shutdown complete")
}
