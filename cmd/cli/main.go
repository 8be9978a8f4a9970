package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hisao5232/my-price-tracker/internal/buildinfo"
	"github.com/hisao5232/my-price-tracker/internal/client/cli"
	"github.com/hisao5232/my-price-tracker/internal/client/config"
	"github.com/hisao5232/my-price-tracker/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
