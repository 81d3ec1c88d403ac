// Mobileserve serves the current directory to phones and other devices on
// the local network.
//
// Usage:
//
//	PORT=3000 mobileserve
//
// Files are read from the working directory. Paths that do not exist are
// answered with index.html so client-side routes of a single-page
// application keep working. PORT defaults to 8080.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/f4ah6o/mobileserve/internal/banner"
	"github.com/f4ah6o/mobileserve/internal/config"
	"github.com/f4ah6o/mobileserve/internal/logging"
	"github.com/f4ah6o/mobileserve/internal/mimetype"
	"github.com/f4ah6o/mobileserve/internal/netinfo"
	"github.com/f4ah6o/mobileserve/internal/server"
)

func main() {
	logger, err := logging.New(zapcore.InfoLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, os.Getenv, logger); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}

// run starts the server and blocks until ctx is cancelled.
func run(ctx context.Context, stdout io.Writer, getenv func(string) string, logger *zap.Logger) error {
	cfg, err := config.Load(getenv)
	if err != nil {
		return err
	}

	types, err := mimetype.Default()
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.Addr(), err)
	}

	// PORT=0 binds an ephemeral port; report the one actually chosen.
	info := banner.Info{LANAddress: netinfo.LocalIPv4()}
	if addr, ok := ln.Addr().(*net.TCPAddr); ok {
		info.Port = addr.Port
	}
	banner.Print(stdout, info)

	handler := server.NewHandler(cfg, types, logger)
	if err := server.Serve(ctx, ln, handler, logger); err != nil {
		return err
	}

	banner.PrintStopped(stdout)
	return nil
}
