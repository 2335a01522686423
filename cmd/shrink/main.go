package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"binshrink/internal/batch"
	"binshrink/internal/config"
	"binshrink/internal/imageio"
	"binshrink/internal/shrink"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	inputDir := flag.String("input", "", "Directory of binary images to shrink")
	outputDir := flag.String("output", "", "Output directory (default: <input>/shrunk)")
	format := flag.String("format", "", "Output format: webp or png (default: webp)")
	threshold := flag.Int("threshold", 0, "Luminance threshold 1-255 (default: 128)")
	invert := flag.Bool("invert", false, "Treat light pixels as foreground")
	scale := flag.Int("scale", 0, "Enlarge output by this integer factor (default: 1)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	testN := flag.Int("test", 0, "Process only the first N images")
	verbose := flag.Bool("v", false, "Log every shrink pass to stderr")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		InputDir:  *inputDir,
		OutputDir: *outputDir,
		Format:    *format,
		Threshold: *threshold,
		Invert:    *invert,
		Scale:     *scale,
		Workers:   *workers,
	})

	if cfg.InputDir == "" {
		fmt.Fprintln(os.Stderr, "Error: no input directory. Use -input flag or config.json.")
		os.Exit(1)
	}
	if _, err := imageio.Ext(cfg.Format); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *verbose {
		shrink.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	files, err := imageio.Scan(cfg.InputDir, cfg.OutputDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error scanning input: %v\n", err)
		os.Exit(1)
	}

	// Limit for testing
	if *testN > 0 && *testN < len(files) {
		files = files[:*testN]
	}

	if len(files) == 0 {
		fmt.Println("No images to shrink.")
		os.Exit(0)
	}

	runID := batch.NewRunID()

	fmt.Printf("Binary shrink → %s (run %s)\n", cfg.Format, runID)
	fmt.Printf("Images: %d, Workers: %d, Threshold: %d, Invert: %v\n",
		len(files), cfg.Workers, cfg.Threshold, cfg.Invert)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	// Run batch
	batchCfg := batch.Config{
		InputDir:  cfg.InputDir,
		OutputDir: cfg.OutputDir,
		Format:    cfg.Format,
		Threshold: uint8(cfg.Threshold),
		Invert:    cfg.Invert,
		Scale:     cfg.Scale,
		Workers:   cfg.Workers,
		Progress:  2 * time.Second,
	}
	if *verbose {
		batchCfg.Logger = shrink.Logger()
	}

	results := batch.Run(batchCfg, files)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	before, after := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
			before += r.Before
			after += r.After
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Shrunk: %d/%d (%d → %d foreground pixels)\n", success, len(files), before, after)

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %s\n", e.Name, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if err := batch.WriteManifest(manifestPath, runID, batchCfg, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
