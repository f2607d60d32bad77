package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/adyen/storefront-e2e/internal/artifacts"
	"github.com/adyen/storefront-e2e/internal/browser"
	internalcli "github.com/adyen/storefront-e2e/internal/cli"
	"github.com/adyen/storefront-e2e/internal/config"
	"github.com/adyen/storefront-e2e/internal/database"
	"github.com/adyen/storefront-e2e/internal/repository"
	"github.com/adyen/storefront-e2e/internal/runner"
	"github.com/adyen/storefront-e2e/internal/services"
	"github.com/adyen/storefront-e2e/internal/storefront"
)

var version = "0.1.0"

var (
	green  = color.New(color.FgGreen, color.Bold)
	yellow = color.New(color.FgYellow, color.Bold)
	red    = color.New(color.FgRed, color.Bold)
)

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

// logger returns the logger built in the app's Before hook.
func logger(c *cli.Context) *zap.Logger {
	if log, ok := c.App.Metadata["logger"].(*zap.Logger); ok {
		return log
	}
	return zap.NewNop()
}

// CheckCommand returns the check command
func CheckCommand() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Verify the storefront under test answers before running scenarios",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "strict", Usage: "fail when the storefront is unreachable"},
		},
		Action: func(c *cli.Context) error {
			cfg := config.Load()
			title, err := browser.CheckSite(cfg.BaseURL, logger(c))
			if err != nil {
				if c.Bool("strict") {
					return cli.Exit(fmt.Sprintf("storefront unreachable: %v", err), 1)
				}
				yellow.Printf("⚠ %s is not reachable, scenarios may fail: %v\n", cfg.BaseURL, err)
				return nil
			}
			green.Printf("✓ %s is up (%s)\n", cfg.BaseURL, title)
			return nil
		},
	}
}

// RunCommand returns the run command
func RunCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Run the scenario suite with retries and print a summary",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "upload", Usage: "upload failure artifacts even when ARTIFACTS_S3_ENABLED is unset"},
		},
		Action: func(c *cli.Context) error {
			log := logger(c)
			cfg, err := config.LoadRunner()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			r := runner.New(cfg, runner.GoTool{Stderr: os.Stderr}, log)
			names, err := r.List(ctx)
			if err != nil {
				return err
			}

			progress := runner.NewProgress(os.Stdout, len(names))
			r.OnEvent = progress.Observe
			summary, err := r.Run(ctx, len(names))
			progress.Finish()
			if err != nil {
				return err
			}
			runner.PrintSummary(os.Stdout, summary)

			if err := uploadArtifacts(ctx, cfg, c.Bool("upload"), log); err != nil {
				red.Printf("artifact upload failed: %v\n", err)
			}

			if !summary.OK() {
				return cli.Exit("", 1)
			}
			return nil
		},
	}
}

func uploadArtifacts(ctx context.Context, runCfg config.RunnerConfig, force bool, log *zap.Logger) error {
	storeCfg, err := config.LoadArtifactStorage()
	if err != nil {
		return err
	}
	if !storeCfg.Enabled && !force {
		return nil
	}

	uploader, err := artifacts.NewUploader(storeCfg, log)
	if err != nil {
		return err
	}
	if err := uploader.EnsureBucket(ctx); err != nil {
		return err
	}
	prefix := artifacts.RunPrefix(time.Now())
	uris, err := uploader.UploadDir(ctx, runCfg.ArtifactsDir, prefix)
	if err != nil {
		return err
	}
	green.Printf("Uploaded %d artifact(s) to s3://%s/%s\n", len(uris), storeCfg.Bucket, prefix)
	return nil
}

// StubCommand returns the stub command
func StubCommand() *cli.Command {
	return &cli.Command{
		Name:  "stub",
		Usage: "Serve the local stub storefront",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "postgres", Usage: "persist customers in Postgres (POSTGRES_* variables)"},
			&cli.StringFlag{Name: "port", Usage: "listen port, overrides STUB_PORT"},
		},
		Action: func(c *cli.Context) error {
			log := logger(c)

			serverConfig := config.LoadServerConfig(os.Getenv)
			if port := c.String("port"); port != "" {
				serverConfig.Port = port
			}
			runCfg, err := config.LoadRunner()
			if err != nil {
				return err
			}

			var customers services.CustomerRepository
			if c.Bool("postgres") {
				pgConfig, err := config.LoadPostgresConfig(os.Getenv)
				if err != nil {
					return fmt.Errorf("missing required Postgres configuration: %w", err)
				}
				db, err := database.Connect(c.Context, pgConfig)
				if err != nil {
					return fmt.Errorf("failed to connect to database: %w", err)
				}
				defer db.Close()
				log.Info("connected to database", zap.String("host", pgConfig.Host))

				if err := database.RunMigrations(c.Context, db); err != nil {
					return fmt.Errorf("failed to run database migrations: %w", err)
				}
				customers = repository.NewPostgresCustomerRepository(db)
			}

			handler, err := storefront.NewHandler(storefront.Options{
				Customers:      customers,
				PriceSliderMax: runCfg.PriceSliderMax,
				Logger:         log,
			})
			if err != nil {
				return err
			}

			green.Printf("Stub storefront on http://localhost:%s\n", serverConfig.Port)
			return internalcli.RunServe(internalcli.ServerDependencies{
				ServerConfig: serverConfig,
				Handler:      handler,
				Logger:       log,
			})
		},
	}
}

func main() {
	app := &cli.App{
		Name:    "storefront-e2e",
		Usage:   "Browser scenarios for the nopCommerce demo storefront",
		Version: version,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Usage: "debug logging"},
			&cli.StringSliceFlag{Name: "env-file", Usage: "env files to load", Value: cli.NewStringSlice(".env")},
		},
		Before: func(c *cli.Context) error {
			if err := config.LoadDotEnv(c.StringSlice("env-file")...); err != nil {
				return err
			}
			log, err := newLogger(c.Bool("verbose"))
			if err != nil {
				return fmt.Errorf("creating logger: %w", err)
			}
			c.App.Metadata = map[string]any{"logger": log}
			return nil
		},
		After: func(c *cli.Context) error {
			logger(c).Sync()
			return nil
		},
		Commands: []*cli.Command{
			CheckCommand(),
			RunCommand(),
			StubCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		red.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
