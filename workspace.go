package main

import (
	"fmt"
	"os"
)

// CleanOutputDirs removes the screenshot and receipt directories from a
// previous run. Artifact names are keyed only by order number, so a rerun
// must start from empty directories. Absent directories are a no-op.
func CleanOutputDirs(cfg *Config) error {
	for _, dir := range []string{cfg.ScreenshotsDir(), cfg.ReceiptsDir()} {
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("failed to clean %s: %w", dir, err)
		}
	}
	return nil
}
