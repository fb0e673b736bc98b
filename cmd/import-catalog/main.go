// One-shot import of a Zuora billing catalog into the target environment.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"zuora-catalog-importer/internal/adapters/stigg"
	"zuora-catalog-importer/internal/adapters/zuora"
	"zuora-catalog-importer/internal/app/usecases"
	"zuora-catalog-importer/internal/config"
	infragraphql "zuora-catalog-importer/internal/infra/graphql"
	"zuora-catalog-importer/internal/logging"
)

func main() {
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "import-catalog",
		Usage: "Import billing products, plans, add-ons and prices from Zuora",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "environment-id",
				Usage:   "Target environment id",
				EnvVars: []string{"ENVIRONMENT_ID"},
			},
			&cli.StringFlag{
				Name:    "product-ids",
				Usage:   "Comma separated Zuora product ids or names",
				EnvVars: []string{"ZUORA_PRODUCT_IDS"},
			},
			&cli.StringFlag{
				Name:    "base-url",
				Value:   config.DefaultBaseURL,
				Usage:   "Catalog API GraphQL endpoint",
				EnvVars: []string{"BASE_URL"},
			},
			&cli.StringFlag{
				Name:    "api-key",
				Usage:   "Catalog API key",
				EnvVars: []string{"X_API_KEY"},
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Value:   30 * time.Second,
				Usage:   "HTTP timeout per request",
				EnvVars: []string{"HTTP_TIMEOUT"},
			},
			&cli.BoolFlag{
				Name:    "dry-run",
				Usage:   "Log intended mutations without issuing them",
				EnvVars: []string{"DRY_RUN"},
			},
			&cli.BoolFlag{
				Name:    "publish",
				Usage:   "Publish packages after import",
				EnvVars: []string{"PUBLISH"},
			},
			&cli.BoolFlag{
				Name:    "update",
				Usage:   "Update existing entities whose fields drifted",
				EnvVars: []string{"UPDATE"},
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg := config.Config{
		API: config.APIConfig{
			BaseURL: c.String("base-url"),
			APIKey:  c.String("api-key"),
			Timeout: c.Duration("timeout"),
		},
		Import: config.ImportConfig{
			EnvironmentID: c.String("environment-id"),
			ProductIDs:    config.SplitProductIDs(c.String("product-ids")),
			DryRun:        c.Bool("dry-run"),
			Publish:       c.Bool("publish"),
			Update:        c.Bool("update"),
		},
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.NewConsoleLogger()
	gql := infragraphql.NewClient(cfg.API, nil)
	sourceClient := zuora.NewClient(gql, logger)
	targetClient := stigg.NewClient(gql, cfg.Import.EnvironmentID, logger)

	importer := usecases.NewCatalogImport(
		cfg.Import,
		sourceClient,
		targetClient,
		targetClient,
		targetClient,
		targetClient,
		logger,
	)
	return importer.Run(c.Context)
}
