package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/arindamsaha1507/vyakarana/internal"
	"github.com/arindamsaha1507/vyakarana/internal/checksum"
	"github.com/arindamsaha1507/vyakarana/internal/corpus"
	"github.com/arindamsaha1507/vyakarana/internal/index"
	"github.com/arindamsaha1507/vyakarana/internal/mcpserver"
	"github.com/arindamsaha1507/vyakarana/internal/sutraservice"
	pkgconfig "github.com/arindamsaha1507/vyakarana/pkg/config"
)

func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.Load(cmd.String("config"), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := internal.Run(ctx, internal.WithConfig(cfg)); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}
	return nil
}

// runMCP loads the corpus and serves the MCP tools over stdio. Logs go
// to stderr so stdout stays clean for the protocol.
func runMCP(_ context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	raw, err := os.ReadFile(cfg.Corpus.Path)
	if err != nil {
		return fmt.Errorf("read corpus: %w", err)
	}
	coll, err := corpus.Decode(raw)
	if err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}

	db, err := index.Open(cfg.SQLite.Path)
	if err != nil {
		return fmt.Errorf("init index: %w", err)
	}
	defer db.Close()

	if err := index.Sync(db, coll, checksum.Sum(raw), logger); err != nil {
		return fmt.Errorf("sync index: %w", err)
	}

	svc := sutraservice.New(coll, db)
	return mcpserver.New(svc).ServeStdio()
}

func main() {
	configFlag := &cli.StringFlag{
		Name:        "config",
		Aliases:     []string{"c"},
		Usage:       "Path to config file",
		DefaultText: "config/config.yaml",
		Value:       "config/config.yaml",
		Sources:     cli.EnvVars("APP_CONFIG_FILE"),
	}

	cmd := &cli.Command{
		Name:  "vyakarana",
		Usage: "Ashtadhyayi sutra corpus server with carryover decoding, full-text search, and an HTTP API",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Load the corpus and serve the HTTP API",
				Action: runServe,
				Flags:  []cli.Flag{configFlag},
			},
			{
				Name:   "mcp",
				Usage:  "Serve corpus query tools over the Model Context Protocol (stdio)",
				Action: runMCP,
				Flags:  []cli.Flag{configFlag},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
