package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/mbaumgart/recap/internal/cli"
	"github.com/mbaumgart/recap/internal/config"
	"github.com/mbaumgart/recap/internal/db"
	"github.com/mbaumgart/recap/internal/repository"
	"github.com/mbaumgart/recap/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// RECAP_DB overrides the configured path, mainly for scripted use.
	dbPath := os.Getenv("RECAP_DB")
	if dbPath == "" {
		dbPath = cfg.DBPath
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	summaryRepo := repository.NewSQLiteSummaryRepo(database)
	eventRepo := repository.NewSQLiteAuxEventRepo(database)
	placeRepo := repository.NewSQLitePlaceRepo(database)
	archiveRepo := repository.NewSQLiteArchiveRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if os.Getenv("RECAP_VERBOSE") != "" {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	engine := cfg.Engine()
	placeCache := service.NewPlaceCache(placeRepo)
	daySvc := service.NewDayService(summaryRepo, eventRepo, archiveRepo, placeCache, engine, observer)

	app := &cli.App{
		Days:     daySvc,
		Insights: service.NewInsightService(daySvc, archiveRepo, cfg.BaselineDays(), engine, observer),
		Places:   service.NewPlaceService(placeRepo, placeCache, uow, observer),
		Ingest:   service.NewIngestService(summaryRepo, eventRepo, placeRepo, placeCache),
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
