package main

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	OrderURL     string `yaml:"order_url"`
	OrdersCSVURL string `yaml:"orders_csv_url"`

	OutputDir string `yaml:"output_dir"`

	BrowserProfilePath string `yaml:"browser_profile_path"`

	MaxAttempts       int `yaml:"max_attempts"`
	SettleDelayMs     int `yaml:"settle_delay_ms"`
	SelectorTimeoutMs int `yaml:"selector_timeout_ms"`
	SlowMotionMs      int `yaml:"slow_motion_ms"`

	DownloadTimeoutSeconds int `yaml:"download_timeout_seconds"`

	Headless        bool `yaml:"headless"`
	KeepBrowserOpen bool `yaml:"keep_browser_open"`
	DebugMode       bool `yaml:"debug_mode"`

	Selectors SelectorConfig `yaml:"selectors"`
}

type SelectorConfig struct {
	// Intro modal and the post-receipt reset button are matched by their
	// visible text, everything else by CSS.
	IntroOKText      string `yaml:"intro_ok_text"`
	OrderAnotherText string `yaml:"order_another_text"`

	HeadSelect   string `yaml:"head_select"`
	BodyRadio    string `yaml:"body_radio"` // value substituted via %s
	LegsInput    string `yaml:"legs_input"`
	AddressInput string `yaml:"address_input"`
	OrderButton  string `yaml:"order_button"`
	ErrorAlert   string `yaml:"error_alert"`

	PreviewImage     string `yaml:"preview_image"`
	OrderIDBadge     string `yaml:"order_id_badge"`
	OrderTimestamp   string `yaml:"order_timestamp"`
	PartsContainer   string `yaml:"parts_container"`
	ReceiptAddress   string `yaml:"receipt_address"`
	ReceiptContainer string `yaml:"receipt_container"`
}

func DefaultConfig() *Config {
	return &Config{
		OrderURL:     "https://robotsparebinindustries.com/#/robot-order",
		OrdersCSVURL: "https://robotsparebinindustries.com/orders.csv",

		OutputDir: "output",

		BrowserProfilePath: "",

		MaxAttempts:       3,
		SettleDelayMs:     1000,
		SelectorTimeoutMs: 10000,
		SlowMotionMs:      100,

		DownloadTimeoutSeconds: 30,

		Headless:        false,
		KeepBrowserOpen: false,
		DebugMode:       false,

		Selectors: SelectorConfig{
			IntroOKText:      `^OK$`,
			OrderAnotherText: `ORDER ANOTHER ROBOT`,

			HeadSelect:   "#head",
			BodyRadio:    `input[name='body'][value='%s']`,
			LegsInput:    `input[placeholder='Enter the part number for the legs']`,
			AddressInput: "#address",
			OrderButton:  "#order",
			ErrorAlert:   `div[class='alert alert-danger'][role='alert']`,

			PreviewImage:     "#robot-preview-image",
			OrderIDBadge:     `#receipt p[class='badge badge-success']`,
			OrderTimestamp:   "#receipt div:nth-child(2)",
			PartsContainer:   "#parts",
			ReceiptAddress:   "#receipt p:nth-child(4)",
			ReceiptContainer: "#receipt",
		},
	}
}

func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := config.Save(path); err != nil {
			return nil, err
		}
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	// Every submission costs at least one real attempt.
	if config.MaxAttempts < 1 {
		config.MaxAttempts = 1
	}

	if config.BrowserProfilePath != "" {
		if err := os.MkdirAll(config.BrowserProfilePath, 0755); err != nil {
			return nil, err
		}
	}

	return config, nil
}

func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func (c *Config) DataDir() string {
	return filepath.Join(c.OutputDir, "data")
}

func (c *Config) ScreenshotsDir() string {
	return filepath.Join(c.OutputDir, "screenshots")
}

func (c *Config) ReceiptsDir() string {
	return filepath.Join(c.OutputDir, "receipts")
}

func (c *Config) OrdersCSVPath() string {
	return filepath.Join(c.DataDir(), "orders.csv")
}

func (c *Config) ScreenshotPath(orderNumber string) string {
	return filepath.Join(c.ScreenshotsDir(), "robot_"+orderNumber+".png")
}

func (c *Config) ArchivePath() string {
	return filepath.Join(c.OutputDir, "robot_orders.zip")
}
