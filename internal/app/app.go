package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/kosolapovrs/deal_importer/internal/analyzer"
	"github.com/kosolapovrs/deal_importer/internal/config"
	v1 "github.com/kosolapovrs/deal_importer/internal/controller/http/v1"
	"github.com/kosolapovrs/deal_importer/internal/crm"
	"github.com/kosolapovrs/deal_importer/internal/extract"
	"github.com/kosolapovrs/deal_importer/internal/importer"
	"github.com/kosolapovrs/deal_importer/internal/infrastructure/report_generator"
	"github.com/kosolapovrs/deal_importer/internal/provider"
	"github.com/kosolapovrs/deal_importer/internal/repository/postgresql"
	"golang.org/x/sync/errgroup"
)

const outboundTimeout = 60 * time.Second

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

func (a *App) Run(ctx context.Context) error {
	a.log.InfoContext(ctx, "starting app",
		slog.Any("providers", a.cfg.App.Providers),
		slog.String("gateway", a.cfg.Gateway.BaseURL),
		slog.String("crm", a.cfg.CRM.BaseURL),
	)

	a.log.InfoContext(ctx, "establishing postgresql connection",
		slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
		slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
		slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
	)

	pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}
	defer pool.Close()

	importsRepository := postgresql.NewImportsRepository(pool)

	textAnalyzer, err := analyzer.NewOpenAI(a.log, a.cfg.Analyzer)
	if err != nil {
		return fmt.Errorf("failed to create analyzer: %w", err)
	}

	httpClient := &http.Client{Timeout: outboundTimeout}
	crmClient := crm.NewClient(a.log, httpClient, a.cfg.CRM.BaseURL)

	extractor := extract.New(a.log)
	providers := provider.NewRegistry()
	for _, providerID := range a.cfg.App.Providers {
		providers.Register(providerID, provider.NewGateway(
			a.log,
			httpClient,
			a.cfg.Gateway.BaseURL,
			providerID,
			extractor,
		))
	}

	regenWorker := importer.NewRegenWorker(
		a.log,
		crmClient,
		a.cfg.App.RegenBuffer,
		a.cfg.App.RegenRetries,
		a.cfg.App.RegenRetryDelay,
	)

	orchestrator := importer.NewOrchestrator(
		a.log,
		providers,
		importsRepository,
		importsRepository,
		textAnalyzer,
		crmClient,
		regenWorker,
	)

	server := v1.NewServer(a.cfg.HTTP, orchestrator, importsRepository, report_generator.New())

	return a.start(ctx, server, regenWorker)
}

func (a *App) start(ctx context.Context, server *v1.Server, regenWorker *importer.RegenWorker) error {
	erg, ctx := errgroup.WithContext(ctx)

	erg.Go(func() error {
		a.log.InfoContext(ctx, "regen worker started")
		return regenWorker.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server",
			slog.String("addr", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port)),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	a.log.InfoContext(ctx, "all components started")

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "app stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "app stopped gracefully")

	return nil
}
