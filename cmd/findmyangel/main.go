// Copyright 2026 Mike Arbuzov
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	findmyangel "github.com/mike-arbuzov/findmyangel-backend"
	"github.com/mike-arbuzov/findmyangel-backend/ai"
	"github.com/mike-arbuzov/findmyangel-backend/core"
	"github.com/mike-arbuzov/findmyangel-backend/ingestion"
	"github.com/mike-arbuzov/findmyangel-backend/reindex"
	"github.com/mike-arbuzov/findmyangel-backend/search"
	"github.com/mike-arbuzov/findmyangel-backend/server"
)

func main() {
	app := &cli.App{
		Name:  "findmyangel",
		Usage: "Contextual search engine for business angel profiles",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Serve the search API over HTTP",
				Action: serveCommand,
				Flags: append(databaseFlags(),
					&cli.StringFlag{
						Name:  "addr",
						Usage: "HTTP listen address",
						Value: server.DefaultAddr,
					},
				),
			},
			{
				Name:      "load",
				Usage:     "Bulk-load profiles from a JSON file",
				Action:    loadCommand,
				ArgsUsage: "<profiles.json>",
				Flags: append(databaseFlags(),
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of profiles to embed in each batch",
						Value: 64,
					},
				),
			},
			{
				Name:      "search",
				Usage:     "Run a single search from the command line",
				Action:    searchCommand,
				ArgsUsage: "<query>",
				Flags: append(databaseFlags(),
					&cli.IntFlag{
						Name:    "max-results",
						Aliases: []string{"n"},
						Usage:   "Maximum number of results",
						Value:   10,
					},
					&cli.BoolFlag{
						Name:  "investors-only",
						Usage: "Only return profiles marked as investors",
					},
					&cli.StringFlag{
						Name:  "investment-role",
						Usage: "Filter by investment role (substring match)",
					},
					&cli.StringFlag{
						Name:  "location",
						Usage: "Filter by location (substring match)",
					},
					&cli.StringFlag{
						Name:  "sectors",
						Usage: "Comma-separated sectors of interest",
					},
					&cli.StringFlag{
						Name:  "investment-stage",
						Usage: "Comma-separated investment stages",
					},
				),
			},
			{
				Name:   "reindex",
				Usage:  "Re-embed all stored profiles and rebuild the vector index",
				Action: reindexCommand,
				Flags: append(databaseFlags(),
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of profiles to process in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N profiles",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed operations",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func databaseFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "db",
			Aliases:  []string{"d"},
			Usage:    "Path to BadgerDB database directory",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "embedding-host",
			Usage: "Embedding service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "text-embedding-3-small",
		},
		&cli.StringFlag{
			Name:    "api-token",
			Usage:   "Embedding service API token",
			EnvVars: []string{"OPENAI_API_KEY"},
		},
		&cli.IntFlag{
			Name:  "cache-size",
			Usage: "Number of embeddings to keep in the in-process cache",
			Value: 4096,
		},
	}
}

func openDatabase(c *cli.Context) (*findmyangel.Database, error) {
	opts := []ai.ConfigOption{
		ai.WithHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithCacheSize(c.Int("cache-size")),
	}
	if token := c.String("api-token"); token != "" {
		opts = append(opts, ai.WithAPIToken(token))
	}
	aiConfig := ai.NewConfig(opts...)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	db, err := findmyangel.NewDatabase(c.String("db"), findmyangel.WithAIConfig(aiConfig))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func serveCommand(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := db.LoadIndex(ctx); err != nil {
		return fmt.Errorf("failed to load vector index: %w", err)
	}

	srv, err := db.NewServer(server.WithAddr(c.String("addr")))
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Run(ctx)
}

func loadCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one argument: path to profiles JSON file")
	}
	path := c.Args().First()

	records, err := ingestion.LoadProfilesJSON(path)
	if err != nil {
		return fmt.Errorf("failed to load profiles: %w", err)
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	pipeline, err := db.NewIngestionPipeline(ingestion.WithBatchSize(c.Int("batch-size")))
	if err != nil {
		return fmt.Errorf("failed to create ingestion pipeline: %w", err)
	}
	defer pipeline.Release()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	if err := pipeline.BulkLoad(ctx, records); err != nil {
		return fmt.Errorf("bulk load failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Loaded %d profiles in %v\n", len(records), time.Since(start).Round(time.Millisecond))
	return nil
}

func searchCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one argument: the search query")
	}
	query := c.Args().First()

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := db.LoadIndex(ctx); err != nil {
		return fmt.Errorf("failed to load vector index: %w", err)
	}

	searcher, err := db.NewSearcher()
	if err != nil {
		return fmt.Errorf("failed to create searcher: %w", err)
	}

	filters := &core.Filters{
		InvestmentRole:    c.String("investment-role"),
		Location:          c.String("location"),
		SectorsOfInterest: splitCSV(c.String("sectors")),
		InvestmentStage:   splitCSV(c.String("investment-stage")),
	}
	if c.Bool("investors-only") {
		investor := true
		filters.IsInvestor = &investor
	}

	resp, err := searcher.Search(ctx, search.Request{
		Query:      query,
		MaxResults: c.Int("max-results"),
		Filters:    filters,
	})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Found %d matching profiles (showing %d)\n", resp.TotalFound, len(resp.Results))
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	for _, result := range resp.Results {
		fmt.Printf("%3d  %s\n", result.Score, result.Record.LinkedInURL)
		if err := enc.Encode(map[string]any{
			"name":       result.Record.Name,
			"headline":   result.Record.Headline,
			"location":   result.Record.Location,
			"similarity": result.Similarity,
		}); err != nil {
			return err
		}
	}
	return nil
}

func reindexCommand(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	config := &reindex.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}
	if config.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if config.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if config.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(os.Stderr, "Database: %s\n", c.String("db"))
	fmt.Fprintf(os.Stderr, "Embedding host: %s\n", c.String("embedding-host"))
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n", c.String("embedding-model"))
	fmt.Fprintln(os.Stderr)

	reindexer := db.NewReindexer(config, os.Stderr)
	if err := reindexer.Run(ctx); err != nil {
		return fmt.Errorf("reindexing failed: %w", err)
	}

	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
