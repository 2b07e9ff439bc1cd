package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/ironsheep/miniphoto/internal/config"
	"github.com/ironsheep/miniphoto/internal/editor"
	"github.com/ironsheep/miniphoto/internal/server"
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
			fmt.Printf("miniphoto %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("miniphoto - headless image editor driven over JSON-RPC")
			fmt.Println()
			fmt.Println("Usage: miniphoto [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Configuration:")
			fmt.Printf("  ~/%s                  stroke_color, stroke_width, font_size, jpeg_quality, viewport\n", config.FileName)
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  MINIPHOTO_LOG_LEVEL=debug     Enable debug logging")
			fmt.Printf("  %s=WxH         Initial viewport size\n", config.EnvViewport)
			fmt.Printf("  %s=1-100   JPEG save quality\n", config.EnvJPEGQuality)
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg := config.Load()

	if os.Getenv("MINIPHOTO_LOG_LEVEL") == "debug" {
		editor.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		log.Printf("MiniPhoto v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("Viewport %dx%d, stroke width %.1f, font size %.1f, jpeg quality %d",
			cfg.Viewport.X, cfg.Viewport.Y, cfg.StrokeWidth, cfg.FontSize, cfg.JPEGQuality)
	}

	srv := server.New(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
