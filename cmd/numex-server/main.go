// cmd/numex-server/main.go
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"numex/internal/server"
)

func main() {
	addr := flag.String("addr", defaultAddr(), "listen address")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.New(logger).Run(ctx, *addr); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func defaultAddr() string {
	if v := os.Getenv("NUMEX_ADDR"); v != "" {
		return v
	}
	return ":8080"
}
