package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config == nil {
		t.Fatal("DefaultConfig returned nil")
	}

	if config.OrderURL != "https://robotsparebinindustries.com/#/robot-order" {
		t.Errorf("Unexpected OrderURL: %s", config.OrderURL)
	}

	if config.OrdersCSVURL != "https://robotsparebinindustries.com/orders.csv" {
		t.Errorf("Unexpected OrdersCSVURL: %s", config.OrdersCSVURL)
	}

	if config.OutputDir != "output" {
		t.Errorf("Expected OutputDir to be 'output', got '%s'", config.OutputDir)
	}

	if config.MaxAttempts != 3 {
		t.Errorf("Expected MaxAttempts to be 3, got %d", config.MaxAttempts)
	}

	if config.SettleDelayMs != 1000 {
		t.Errorf("Expected SettleDelayMs to be 1000, got %d", config.SettleDelayMs)
	}

	if config.SelectorTimeoutMs != 10000 {
		t.Errorf("Expected SelectorTimeoutMs to be 10000, got %d", config.SelectorTimeoutMs)
	}

	if config.Headless != false {
		t.Error("Expected Headless to be false")
	}

	// Check selectors are set
	if config.Selectors.HeadSelect == "" {
		t.Error("Expected HeadSelect selector to be set")
	}
	if config.Selectors.ErrorAlert == "" {
		t.Error("Expected ErrorAlert selector to be set")
	}
	if config.Selectors.PreviewImage == "" {
		t.Error("Expected PreviewImage selector to be set")
	}
}

func TestConfigPaths(t *testing.T) {
	config := DefaultConfig()
	config.OutputDir = "out"

	if got := config.OrdersCSVPath(); got != filepath.Join("out", "data", "orders.csv") {
		t.Errorf("Unexpected OrdersCSVPath: %s", got)
	}

	if got := config.ScreenshotPath("42"); got != filepath.Join("out", "screenshots", "robot_42.png") {
		t.Errorf("Unexpected ScreenshotPath: %s", got)
	}

	if got := config.ReceiptsDir(); got != filepath.Join("out", "receipts") {
		t.Errorf("Unexpected ReceiptsDir: %s", got)
	}

	if got := config.ArchivePath(); got != filepath.Join("out", "robot_orders.zip") {
		t.Errorf("Unexpected ArchivePath: %s", got)
	}
}

func TestConfigSaveAndLoad(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test-config.yaml")

	config := DefaultConfig()
	config.OrderURL = "https://example.com/#/robot-order"
	config.MaxAttempts = 5
	config.Headless = true

	if err := config.Save(configPath); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("Config file was not created")
	}

	loadedConfig, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if loadedConfig.OrderURL != config.OrderURL {
		t.Errorf("Expected OrderURL to be '%s', got '%s'", config.OrderURL, loadedConfig.OrderURL)
	}

	if loadedConfig.MaxAttempts != config.MaxAttempts {
		t.Errorf("Expected MaxAttempts to be %d, got %d", config.MaxAttempts, loadedConfig.MaxAttempts)
	}

	if loadedConfig.Headless != config.Headless {
		t.Errorf("Expected Headless to be %v, got %v", config.Headless, loadedConfig.Headless)
	}
}

func TestLoadConfigClampsMaxAttempts(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("max_attempts: 0\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if config.MaxAttempts != 1 {
		t.Errorf("Expected MaxAttempts to be clamped to 1, got %d", config.MaxAttempts)
	}
}

func TestLoadConfigCreatesDefaultIfMissing(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "new-config.yaml")

	config, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if config == nil {
		t.Fatal("LoadConfig returned nil")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("Config file was not created automatically")
	}

	if config.MaxAttempts != 3 {
		t.Errorf("Expected default MaxAttempts to be 3, got %d", config.MaxAttempts)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "invalid-config.yaml")

	invalidYAML := "invalid: yaml: content: [unclosed"
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("Failed to write invalid YAML: %v", err)
	}

	_, err := LoadConfig(configPath)
	if err == nil {
		t.Error("Expected error when loading invalid YAML, got nil")
	}
}
