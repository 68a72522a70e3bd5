package main

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// BuildArchive zips the receipts and screenshots of a completed run into a
// single file next to them. The archive uses paths relative to the output
// root, e.g. receipts/receipt_1.pdf.
func BuildArchive(cfg *Config) error {
	out, err := os.Create(cfg.ArchivePath())
	if err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}
	defer out.Close()

	w := zip.NewWriter(out)

	for _, dir := range []string{cfg.ReceiptsDir(), cfg.ScreenshotsDir()} {
		if err := addDirToArchive(w, cfg.OutputDir, dir); err != nil {
			w.Close()
			return err
		}
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize archive: %w", err)
	}
	return nil
}

func addDirToArchive(w *zip.Writer, root, dir string) error {
	// A run with no orders never creates the artifact dirs; the archive is
	// still written, just empty.
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil
	}

	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		entry, err := w.Create(filepath.ToSlash(rel))
		if err != nil {
			return fmt.Errorf("failed to add %s to archive: %w", rel, err)
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		_, err = io.Copy(entry, f)
		return err
	})
}
