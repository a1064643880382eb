package main

import (
	"context"
	"fmt"
	"os"

	"github.com/geeklink/ranking-service/cfg"
	"github.com/geeklink/ranking-service/internal/model"
	"github.com/geeklink/ranking-service/internal/ranking"
	"github.com/geeklink/ranking-service/pkg/db"
	"github.com/geeklink/ranking-service/pkg/log"
)

// One-shot refresh for cron or manual runs: `run all` updates the weekly
// and monthly rankings, `run daily` the daily ones plus the online reset.
func main() {
	mode := "all"
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}
	if err := run(mode); err != nil {
		os.Exit(1)
	}
}

// run owns every resource so the deferred Close calls fire on failure
// paths too; main only maps the result to an exit code.
func run(mode string) error {
	ctx := context.Background()
	logger, _ := log.NewCslLogger()

	if mode != "all" && mode != "daily" {
		logger.Error(ctx, "Unknown mode %q, want all or daily", mode)
		return fmt.Errorf("unknown mode %q", mode)
	}

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

	writer, _ := ranking.NewMysqlWriter(logger, config, mysql)
	guard := ranking.NewGuard()
	notifier := ranking.NewNotifier(config, logger)
	defer notifier.Close()

	updaters := make([]ranking.Updater, 0, len(ranking.Sources()))
	for _, source := range ranking.Sources() {
		updater, err := ranking.FactoryUpdater(source, logger, config, mysql, writer, guard, notifier)
		if err != nil {
			logger.Error(ctx, "Failed to build %s updater: %v", source, err)
			return err
		}
		updaters = append(updaters, updater)
	}

	userMd, _ := model.NewUser(config, logger, mysql)
	driver, _ := ranking.NewDriver(logger, updaters, userMd)

	logger.Info(ctx, "Starting %s ranking refresh", mode)

	switch mode {
	case "all":
		err = driver.UpdateAll(ctx)
	case "daily":
		err = driver.UpdateDaily(ctx)
	}

	if err != nil {
		logger.Error(ctx, "Failed!")
		return err
	}
	logger.Info(ctx, "Successfully!")
	return nil
}
