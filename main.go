package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	headless := flag.Bool("headless", false, "Run the browser without a visible window")
	debug := flag.Bool("debug", false, "Enable detailed debug logging")
	keepOpen := flag.Bool("keep-open", false, "Keep the browser open after the run completes")
	maxAttempts := flag.Int("max-attempts", 0, "Override the per-order submission attempt budget")
	flag.Parse()

	config, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *headless {
		config.Headless = true
	}
	if *debug {
		config.DebugMode = true
	}
	if *keepOpen {
		config.KeepBrowserOpen = true
	}
	if *maxAttempts > 0 {
		config.MaxAttempts = *maxAttempts
	}

	level := slog.LevelInfo
	if config.DebugMode {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	fmt.Println("╔═══════════════════════════════════════════════════════════╗")
	fmt.Println("║           RobotSpareBin Order Assistant                  ║")
	fmt.Println("╚═══════════════════════════════════════════════════════════╝")
	fmt.Println()
	fmt.Printf("Order page: %s\n", config.OrderURL)
	fmt.Printf("Orders CSV: %s\n", config.OrdersCSVURL)
	fmt.Printf("Output dir: %s\n", config.OutputDir)

	if config.DebugMode {
		fmt.Println("🔍 DEBUG MODE - Detailed logging enabled")
	}
	fmt.Println()

	if err := CleanOutputDirs(config); err != nil {
		log.Fatalf("Failed to clean output directories: %v", err)
	}

	downloadTimeout := time.Duration(config.DownloadTimeoutSeconds) * time.Second
	if err := DownloadFile(config.OrdersCSVURL, config.OrdersCSVPath(), downloadTimeout); err != nil {
		log.Fatalf("Failed to download orders CSV: %v", err)
	}

	orders, err := ReadOrders(config.OrdersCSVPath())
	if err != nil {
		log.Fatalf("Failed to read orders: %v", err)
	}
	slog.Info("orders loaded", "count", len(orders), "path", config.OrdersCSVPath())

	automation := NewAutomation(config)
	defer automation.Close()

	if err := automation.SetupBrowser(); err != nil {
		log.Fatalf("Failed to setup browser: %v", err)
	}

	if err := automation.OpenOrderPage(); err != nil {
		log.Fatalf("Failed to open order page: %v", err)
	}

	if err := ProcessOrders(automation.Page(), orders, config); err != nil {
		log.Fatalf("Order processing failed: %v", err)
	}

	if err := BuildArchive(config); err != nil {
		log.Fatalf("Failed to archive run artifacts: %v", err)
	}

	fmt.Println()
	fmt.Printf("✓ Processed %d orders successfully!\n", len(orders))
	fmt.Println()

	if config.KeepBrowserOpen {
		fmt.Println("Keeping browser open for 30 seconds...")
		time.Sleep(30 * time.Second)
	}
}
