package main

import (
	"log/slog"
	"time"
)

// ProcessOrders runs each order through submit, screenshot, receipt and
// reset, strictly in file order. The first unretried failure aborts the run;
// no receipt is produced for the failing order and later rows are not
// attempted.
func ProcessOrders(page OrderPage, orders []Order, cfg *Config) error {
	settle := time.Duration(cfg.SettleDelayMs) * time.Millisecond

	for _, order := range orders {
		slog.Info("processing order", "order", order.OrderNumber)

		if err := SubmitOrder(page, order, cfg.MaxAttempts, settle); err != nil {
			return err
		}

		screenshotPath := cfg.ScreenshotPath(order.OrderNumber)
		if err := page.CapturePreview(screenshotPath); err != nil {
			return err
		}
		slog.Info("robot screenshot saved", "path", screenshotPath)

		fields, err := page.ReceiptFields()
		if err != nil {
			return err
		}

		pdfPath, err := WriteReceiptPDF(cfg.ReceiptsDir(), fields, screenshotPath)
		if err != nil {
			return err
		}
		slog.Info("receipt saved", "path", pdfPath)

		if err := page.OrderAnother(); err != nil {
			return err
		}
	}

	return nil
}
