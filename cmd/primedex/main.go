package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"primedex/internal/config"
	"primedex/internal/core/auth"
	"primedex/internal/logging"
	"primedex/internal/services"
)

func main() {
	// 0. Parse Command Line Flags
	genHash := flag.Bool("gen-admin-hash", false, "Hash an admin password for config and exit")
	flag.Parse()

	if *genHash {
		if err := printAdminHash(flag.Arg(0)); err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		return
	}

	// 1. Load Configuration
	cfg := config.LoadConfig()

	if err := logging.Initialize(cfg.Logging); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.Shutdown()

	slog.Info("Starting primedex")

	// 2. Initialize Service Manager
	mgr := services.NewManager(cfg, slog.Default())

	initCtx, initCancel := context.WithTimeout(context.Background(), cfg.Index.FetchTimeout+10*time.Second)
	defer initCancel()

	if err := mgr.Init(initCtx); err != nil {
		slog.Error("Failed to initialize services", "error", err)
		os.Exit(1)
	}

	// 3. Start Services
	runCtx, runCancel := context.WithCancel(context.Background())
	defer runCancel()

	errChan := make(chan error, 1)
	go func() {
		errChan <- mgr.Start(runCtx)
	}()

	// 4. Wait for Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("Shutting down", "signal", sig.String())
	case err := <-errChan:
		if err != nil {
			slog.Error("Server failed", "error", err)
		}
	}

	runCancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	mgr.Shutdown(shutdownCtx)

	slog.Info("Stopped")
}

// printAdminHash emits a bcrypt hash suitable for
// auth.admin_password_hash in config.yml.
func printAdminHash(password string) error {
	if password == "" {
		return fmt.Errorf("usage: primedex -gen-admin-hash <password>")
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	fmt.Println(hash)
	return nil
}
