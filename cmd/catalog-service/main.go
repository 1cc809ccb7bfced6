package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/openshelf/book-catalog-go/internal/app"
	"github.com/openshelf/book-catalog-go/internal/config"
)

func main() {
	configPath := flag.String("config", "", "path to an optional YAML config file")
	flag.Parse()

	ctx, ctxCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer ctxCancel()

	cfg, err := config.Load(*configPath)
	if err != nil {
		os.Stderr.WriteString("loading config failed: " + err.Error() + "\n")
		os.Exit(1)
	}

	catalogApp, err := app.NewApp(cfg)
	if err != nil {
		os.Stderr.WriteString("creating app failed: " + err.Error() + "\n")
		os.Exit(1)
	}

	if err = catalogApp.Run(ctx); err != nil {
		os.Stderr.WriteString("starting app failed: " + err.Error() + "\n")
		os.Exit(1)
	}

	<-ctx.Done()

	shutdownCtx, shutdownCtxCancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer shutdownCtxCancel()

	catalogApp.Stop(shutdownCtx)
}
