package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kosolapovrs/deal_importer/internal/app"
	"github.com/kosolapovrs/deal_importer/internal/config"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd() *cli.Command {
	return &cli.Command{
		Name:    "deal_importer",
		Usage:   "Storage file import pipeline service",
		Version: version,
		Flags:   flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
			if !ok {
				return errors.New("failed to get logger from context")
			}

			cfg := config.Load(cmd)

			return app.New(log, cfg).Run(ctx)
		},
	}
}

func flags() []cli.Flag {
	var config string

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateConfig,
			Usage:       "Load configuration from `FILE`",
			Destination: &config,
		},
		&cli.StringSliceFlag{
			Name:    "providers",
			Usage:   "Set enabled storage providers",
			Value:   []string{"onedrive", "gdrive"},
			Sources: cli.NewValueSourceChain(yaml.YAML("app.providers", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.IntFlag{
			Name:    "regen-buffer",
			Usage:   "Set regen worker queue size",
			Value:   100,
			Sources: cli.NewValueSourceChain(yaml.YAML("app.regen_buffer", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.IntFlag{
			Name:    "regen-retries",
			Usage:   "Set regen attempt count before a job is dropped",
			Value:   3,
			Sources: cli.NewValueSourceChain(yaml.YAML("app.regen_retries", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "regen-retry-delay",
			Usage:   "Set delay between regen attempts",
			Value:   5 * time.Second,
			Sources: cli.NewValueSourceChain(yaml.YAML("app.regen_retry_delay", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:     "analyzer-base-url",
			Usage:    "Set OpenAI-compatible analyzer endpoint",
			Sources:  cli.NewValueSourceChain(yaml.YAML("analyzer.base_url", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:    "analyzer-api-key",
			Usage:   "Set analyzer API key",
			Value:   "none",
			Sources: cli.NewValueSourceChain(yaml.YAML("analyzer.api_key", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:     "analyzer-model",
			Usage:    "Set analyzer model name",
			Sources:  cli.NewValueSourceChain(yaml.YAML("analyzer.model", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.IntFlag{
			Name:    "analyzer-max-chars",
			Usage:   "Set maximum characters sent to the analyzer",
			Value:   60_000,
			Sources: cli.NewValueSourceChain(yaml.YAML("analyzer.max_chars", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:     "crm-base-url",
			Usage:    "Set CRM core service base URL",
			Sources:  cli.NewValueSourceChain(yaml.YAML("crm.base_url", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "gateway-base-url",
			Usage:    "Set storage gateway base URL",
			Sources:  cli.NewValueSourceChain(yaml.YAML("gateway.base_url", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-host",
			Usage:    "Set PostgreSQL host",
			Value:    "localhost",
			Sources:  cli.NewValueSourceChain(yaml.YAML("postgresql.host", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-port",
			Usage:    "Set PostgreSQL port",
			Value:    "5432",
			Sources:  cli.NewValueSourceChain(yaml.YAML("postgresql.port", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-username",
			Usage:    "Set PostgreSQL username",
			Sources:  cli.NewValueSourceChain(yaml.YAML("postgresql.username", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-password",
			Usage:    "Set PostgreSQL password",
			Sources:  cli.NewValueSourceChain(yaml.YAML("postgresql.password", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-dbname",
			Usage:    "Set PostgreSQL database name",
			Value:    "deal_importer",
			Sources:  cli.NewValueSourceChain(yaml.YAML("postgresql.dbname", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.IntFlag{
			Name:    "pg-max-conns",
			Usage:   "Set PostgreSQL pool size",
			Value:   10,
			Sources: cli.NewValueSourceChain(yaml.YAML("postgresql.max_conns", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "http-host",
			Usage:   "Set HTTP server host",
			Value:   "localhost",
			Sources: cli.NewValueSourceChain(yaml.YAML("http.host", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "http-port",
			Usage:   "Set HTTP server port",
			Value:   "8080",
			Sources: cli.NewValueSourceChain(yaml.YAML("http.port", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "http-idle-timeout",
			Usage:   "Set HTTP server idle timeout",
			Value:   1 * time.Minute,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.idle_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "http-read-timeout",
			Usage:   "Set HTTP server read timeout",
			Value:   15 * time.Second,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.read_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "http-write-timeout",
			Usage:   "Set HTTP server write timeout",
			Value:   15 * time.Second,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.write_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
	}
}

func validateConfig(config string) error {
	info, err := os.Stat(config)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", config)
		}
		return fmt.Errorf("failed to stat %q: %w", config, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", config)
	}

	ext := filepath.Ext(info.Name())
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", config)
	}

	return nil
}
