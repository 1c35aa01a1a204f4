package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/3lvia/problemdetails/config"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, err := NewWidgetService(ctx, cfg)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create widget service", "error", err)
		panic(err)
	}

	if err := svc.Run(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to run widget service", "error", err)
	}

	if err := svc.Stop(context.Background()); err != nil {
		slog.ErrorContext(ctx, "failed to stop widget service", "error", err)
		panic(err)
	}
}
