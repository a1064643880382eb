package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/geeklink/ranking-service/cfg"
	"github.com/geeklink/ranking-service/internal/model"
	"github.com/geeklink/ranking-service/internal/ranking"
	"github.com/geeklink/ranking-service/internal/web"
	"github.com/geeklink/ranking-service/pkg/db"
	"github.com/geeklink/ranking-service/pkg/log"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

// run owns every resource so the deferred Close calls fire on failure
// paths too; main only maps the result to an exit code.
func run() error {
	ctx := context.Background()
	logger, _ := log.NewCslLogger()

	loader, _ := cfg.NewViperLoader()
	config, err := loader.Load()
	if err != nil {
		logger.Error(ctx, "Failed to load configuration: %v", err)
		return err
	}

	mysql, _ := db.NewMysql(config)
	defer mysql.Close()

	if err := ranking.MigrateTables(mysql); err != nil {
		logger.Error(ctx, "Failed to migrate ranking tables: %v", err)
		return err
	}

	driver, notifier, err := buildDriver(logger, config, mysql)
	if err != nil {
		logger.Error(ctx, "Failed to build ranking driver: %v", err)
		return err
	}
	defer notifier.Close()

	handler, _ := web.NewHandler(logger, driver)
	server, err := web.NewServer(config, logger, handler)
	if err != nil {
		logger.Error(ctx, "Failed to build HTTP server: %v", err)
		return err
	}

	runCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.ListenAndServe()
	}()

	logger.Info(ctx, "Starting %s %s", config.App.Name, config.App.Version)

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(ctx, "HTTP server failed: %v", err)
			return err
		}
	case <-runCtx.Done():
		logger.Info(ctx, "Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error(ctx, "HTTP shutdown failed: %v", err)
		}
	}
	return nil
}

func buildDriver(logger log.Logger, config *cfg.Config, mysql *db.Mysql) (*ranking.Driver, *ranking.Notifier, error) {
	writer, err := ranking.NewMysqlWriter(logger, config, mysql)
	if err != nil {
		return nil, nil, err
	}
	guard := ranking.NewGuard()
	notifier := ranking.NewNotifier(config, logger)

	updaters := make([]ranking.Updater, 0, len(ranking.Sources()))
	for _, source := range ranking.Sources() {
		updater, err := ranking.FactoryUpdater(source, logger, config, mysql, writer, guard, notifier)
		if err != nil {
			return nil, nil, err
		}
		updaters = append(updaters, updater)
	}

	userMd, err := model.NewUser(config, logger, mysql)
	if err != nil {
		return nil, nil, err
	}

	driver, err := ranking.NewDriver(logger, updaters, userMd)
	if err != nil {
		return nil, nil, err
	}
	return driver, notifier, nil
}
