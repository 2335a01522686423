package batch

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"binshrink/internal/imageio"
	"binshrink/internal/shrink"
)

// Config holds all shared settings for a batch run.
type Config struct {
	InputDir  string
	OutputDir string
	Format    string
	Threshold uint8
	Invert    bool
	Scale     int
	Workers   int
	Progress  time.Duration // progress line interval, 0 disables
	Logger    *slog.Logger  // nil logs nothing
}

// Result holds the outcome of processing one image.
type Result struct {
	Name       string `json:"name"`
	Input      string `json:"input"`
	Output     string `json:"output,omitempty"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Before     int    `json:"before"`
	After      int    `json:"after"`
	Iterations int    `json:"iterations"`
	Success    bool   `json:"success"`
	Error      string `json:"error,omitempty"`
}

// Run shrinks every file using a worker pool. Results keep the order of files.
func Run(cfg Config, files []string) []Result {
	total := len(files)
	results := make([]Result, total)
	var processed atomic.Int64

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	logger := cfg.Logger
	if logger == nil {
		logger = shrink.Logger()
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	if cfg.Progress > 0 {
		go func() {
			ticker := time.NewTicker(cfg.Progress)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						elapsed := time.Since(start).Seconds()
						rate := float64(p) / elapsed
						fmt.Printf("  [%d/%d] %.1f images/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	// Worker pool
	fileChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range fileChan {
				results[idx] = processFile(cfg, files[idx])
				if !results[idx].Success {
					logger.Warn("shrink failed", "file", files[idx], "error", results[idx].Error)
				}
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range files {
		fileChan <- i
	}
	close(fileChan)

	wg.Wait()
	close(done)

	return results
}

// OutputPath mirrors input's position under InputDir into OutputDir with
// the format's extension.
func OutputPath(cfg Config, input string) (string, error) {
	ext, err := imageio.Ext(cfg.Format)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(cfg.InputDir, input)
	if err != nil || strings.HasPrefix(rel, "..") {
		rel = filepath.Base(input)
	}
	rel = strings.TrimSuffix(rel, filepath.Ext(rel)) + ext
	return filepath.Join(cfg.OutputDir, rel), nil
}

func processFile(cfg Config, input string) Result {
	res := Result{
		Name:  strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)),
		Input: input,
	}

	outPath, err := OutputPath(cfg, input)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	img, err := imageio.Load(input)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	grid := imageio.Binarize(img, cfg.Threshold, cfg.Invert)
	res.Width, res.Height = grid.Cols, grid.Rows

	shrunk, st := shrink.ShrinkStats(grid)
	res.Before, res.After, res.Iterations = st.Before, st.After, st.Iterations

	if err := imageio.Save(outPath, imageio.Render(shrunk, cfg.Scale, cfg.Invert)); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Output = outPath
	res.Success = true
	return res
}
