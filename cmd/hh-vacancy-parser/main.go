package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/DmitryGritzuk/hh-vacancy-parser/internal/collector"
	"github.com/DmitryGritzuk/hh-vacancy-parser/internal/config"
	"github.com/DmitryGritzuk/hh-vacancy-parser/internal/domain"
	"github.com/DmitryGritzuk/hh-vacancy-parser/internal/enrich"
	"github.com/DmitryGritzuk/hh-vacancy-parser/internal/export"
	"github.com/DmitryGritzuk/hh-vacancy-parser/pkg/hh"
	"github.com/DmitryGritzuk/hh-vacancy-parser/pkg/logging"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(2)
	}

	logger := logging.New(cfg.LogLevel).With("run_id", uuid.NewString())
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("run failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *logging.Logger) error {
	client := hh.NewClient(hh.Config{
		BaseURL:   cfg.HH.BaseURL,
		UserAgent: cfg.HH.UserAgent,
	})

	coll, err := collector.New(client, logger)
	if err != nil {
		return err
	}

	collectedAt := time.Now()

	logger.Info("collecting vacancies",
		"text", cfg.Text,
		"area", cfg.Area,
		"pages", cfg.Pages,
		"per_page", cfg.PerPage,
	)

	items, err := coll.Collect(ctx, collector.Query{
		Text:    cfg.Text,
		Area:    cfg.Area,
		Pages:   cfg.Pages,
		PerPage: cfg.PerPage,
		Delay:   cfg.Delay,
	})
	if err != nil {
		return err
	}

	records := make([]domain.Record, 0, len(items))
	for _, v := range items {
		records = append(records, domain.Record{Vacancy: v})
	}

	if cfg.Details && len(items) > 0 {
		enricher, err := enrich.New(client, logger)
		if err != nil {
			return err
		}
		logger.Info("fetching details", "items", len(items))
		records = enricher.Enrich(ctx, items, cfg.Delay)
	}

	outPath := cfg.OutputPath(time.Now())
	meta := export.Meta{
		QueryText:   cfg.Text,
		AreaID:      cfg.Area,
		CollectedAt: collectedAt,
	}
	if err := export.WriteCSV(outPath, records, cfg.Details, meta); err != nil {
		return err
	}

	fmt.Printf("OK: %s\n", outPath)
	fmt.Printf("Vacancies: %d\n", len(records))
	if cfg.Details {
		fmt.Println("Details: enabled (extra requests per vacancy)")
	}
	if cfg.Area != "" {
		fmt.Printf("Area: %s\n", cfg.Area)
	}

	return nil
}
