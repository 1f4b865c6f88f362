package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"sitebridge/internal/app"
	"sitebridge/internal/config"
	"sitebridge/internal/directus"
	"sitebridge/internal/logger"
	"sitebridge/internal/service"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("sitectl")
	cfg, err := config.GetCLIConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	provider := directus.NewProvider(cfg, log)
	services := service.NewServices(provider, log)
	application := app.NewApp(provider, services, os.Stdout, log)

	ctx := context.Background()
	runErr := application.Run(ctx, flag.Args())

	if err = provider.Close(ctx); err != nil {
		log.Warn().Err(err).Msg("error closing backend session")
	}

	if runErr != nil {
		log.Fatal().Err(runErr).Msg("sitectl run error")
	}
}

// printBuildInfo writes the ldflags-injected build identifiers to stderr,
// keeping stdout free for command output.
func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Fprintf(os.Stderr, "Build version: %s\n", buildVersion)
	fmt.Fprintf(os.Stderr, "Build date: %s\n", buildDate)
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", buildCommit)
}
