package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/aulrahman/storyshare/internal/adapter"
	"github.com/aulrahman/storyshare/internal/client"
	"github.com/aulrahman/storyshare/internal/config"
	"github.com/aulrahman/storyshare/internal/connectivity"
	"github.com/aulrahman/storyshare/internal/logger"
	"github.com/aulrahman/storyshare/internal/service"
	"github.com/aulrahman/storyshare/internal/store"
	"github.com/aulrahman/storyshare/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("storyshare-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storyAPI, err := adapter.NewHTTPStoryAPI(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create story api adapter")
	}

	localStore, err := store.New(cfg.Storage.DBPath, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local store")
	}
	defer func() {
		if closeErr := localStore.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("close local store")
		}
	}()

	// Assume offline until the first probe says otherwise.
	monitor := connectivity.NewSwitch(false)

	services := service.NewServices(localStore, storyAPI, monitor, log)
	probe := workers.NewProbeJob(cfg.Adapter.BaseURL, monitor, log)
	reconcile := workers.NewReconcileJob(services.Stories, monitor, log)

	app := client.NewApp(services, probe, reconcile, log)
	if err = app.Run(context.Background(), flag.Args()); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

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
