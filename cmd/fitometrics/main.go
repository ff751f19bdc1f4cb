package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/agrovision/fitometrics/internal/analysis"
	"github.com/agrovision/fitometrics/internal/config"
	"github.com/agrovision/fitometrics/internal/server"
	"github.com/agrovision/fitometrics/internal/storage"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("fitometrics %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("fitometrics - leaf disease quantification API")
			fmt.Println()
			fmt.Println("Usage: fitometrics [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  FITOMETRICS_CONFIG=path      YAML config file")
			fmt.Println("  FITOMETRICS_ADDR=:8000       HTTP listen address")
			fmt.Println("  FITOMETRICS_UPLOAD_DIR=dir   Upload directory")
			fmt.Println("  FITOMETRICS_MAX_DIM=500      Resize bound in pixels")
			return
		}
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.Load(os.Getenv("FITOMETRICS_CONFIG"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	analyzerCfg := analysis.DefaultConfig()
	analyzerCfg.MaxDim = cfg.MaxImageDim

	srv := server.New(
		analysis.New(analyzerCfg),
		storage.NewUploadStore(cfg.UploadDir),
	)

	httpServer := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: srv.Handler(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("fitometrics v%s listening on %s (built %s, commit %s)",
			Version, cfg.ListenAddr, BuildTime, GitCommit)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
