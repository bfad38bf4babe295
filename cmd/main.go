package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"todo_backend/internal/config"
	"todo_backend/internal/handlers"
	"todo_backend/internal/logger"
	"todo_backend/internal/repository"
	"todo_backend/internal/repository/db"
	"todo_backend/internal/server"
	"todo_backend/internal/service"
)

const mongoDisconnectTimeout = 10 * time.Second

// @title                       Todo API
// @version                     1.0
// @description                 Todo CRUD backend with email/password JWT authentication.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	// load configs/config.yml + TODO_* env
	cfg, err := config.Load("configs")
	if err != nil {
		logger.Get(logger.InfoLevel, logger.FormatConsole).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.Get(cfg.Log.Level, cfg.Log.Format)

	// open store
	repos, closeStore, err := openStore(cfg.DB, log)
	if err != nil {
		log.Fatalw("failed to init store", "driver", cfg.DB.Driver, "err", err)
	}
	defer closeStore()

	// wire dependencies
	services := service.NewService(repos, service.Options{
		SigningKey:        cfg.Auth.SigningKey,
		TokenTTL:          cfg.Auth.TokenTTL,
		ActivityRetention: cfg.Activity.Retention,
	}, log)
	apiHandler := handlers.NewHandler(services, log, cfg.CORS.AllowedOrigins...)

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// activity retention loop
	go services.Sweeper.Run(ctx, cfg.Activity.SweepInterval)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, cfg, apiHandler, log)

	// graceful shutdown
	waitForShutdown(cancel, srv, cfg.Server.ShutdownTimeout, log)
}

// openStore builds the repositories for the configured driver and returns a
// close func for the underlying connection.
func openStore(cfg config.DBConfig, log *logger.Logger) (*repository.Repository, func(), error) {
	switch cfg.Driver {
	case config.DriverMongo:
		client, mdb, err := db.InitMongo(context.Background(), cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, nil, err
		}
		log.Infow("store_opened", "driver", cfg.Driver, "database", cfg.MongoDatabase)
		return repository.NewMongoRepository(mdb), func() {
			ctx, cancel := context.WithTimeout(context.Background(), mongoDisconnectTimeout)
			defer cancel()
			if err := client.Disconnect(ctx); err != nil {
				log.Errorw("failed to disconnect mongo", "err", err)
			}
		}, nil
	default:
		sqlDB, err := db.InitDB(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		log.Infow("store_opened", "driver", cfg.Driver, "path", cfg.Path)
		return repository.NewRepository(sqlDB), func() {
			if err := sqlDB.Close(); err != nil {
				log.Errorw("failed to close sqlite", "err", err)
			}
		}, nil
	}
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, cfg *config.Config, handler *handlers.Handler, log *logger.Logger) {
	opts := server.Options{
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}
	go func() {
		log.Infow("http_server_starting", "port", cfg.Port)
		if err := srv.Run(cfg.Port, handler.InitRoutes(), opts); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, timeout time.Duration, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), timeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
