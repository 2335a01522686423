package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
)

// ErrFormat is returned for output formats other than webp and png.
var ErrFormat = errors.New("imageio: unsupported output format")

// Ext returns the file extension for an output format name.
func Ext(format string) (string, error) {
	switch strings.ToLower(format) {
	case "webp":
		return ".webp", nil
	case "png":
		return ".png", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrFormat, format)
	}
}

// Save encodes img to path, choosing the encoder from the extension.
// WebP output is lossless. Parent directories are created as needed.
func Save(path string, img image.Image) (err error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".webp" && ext != ".png" {
		return fmt.Errorf("%w: %s", ErrFormat, path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("imageio: mkdir for %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("imageio: close %s: %w", path, cerr)
		}
	}()

	switch ext {
	case ".webp":
		if err := nativewebp.Encode(f, img, nil); err != nil {
			return fmt.Errorf("imageio: webp encode %s: %w", path, err)
		}
	case ".png":
		if err := png.Encode(f, img); err != nil {
			return fmt.Errorf("imageio: png encode %s: %w", path, err)
		}
	}
	return nil
}
