package main

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// ReceiptFields holds the receipt region extracted from the page after a
// successful submission. PartsHTML is inner markup, not plain text.
type ReceiptFields struct {
	OrderID   string
	Timestamp string
	PartsHTML string
	Address   string
}

// Receipt layout, in points on an A4 page.
const (
	receiptLeftMargin  = 50.0
	receiptTopMargin   = 50.0
	receiptLineHeight  = 18.0
	receiptTextFloor   = 100.0 // no text below this distance from the bottom
	receiptImageFloor  = 50.0
	receiptImagePad    = 20.0
	receiptWrapWidth   = 100

	receiptMaxImgWidth  = 0.8 // fraction of page width
	receiptMaxImgHeight = 0.4 // fraction of page height
)

const thankYouText = "Thank you for your order! We will ship your robot to you as soon as " +
	"our warehouse robots gather the parts you ordered! You will receive your robot in no time!"

// The parts container markup is wrapped in div elements; only those are
// stripped. Other tags pass through untouched, which downstream consumers
// depend on.
var divTagPattern = regexp.MustCompile(`</?div[^>]*>`)

// CleanPartsHTML strips div open/close tags from the parts markup and trims
// surrounding whitespace.
func CleanPartsHTML(markup string) string {
	return strings.TrimSpace(divTagPattern.ReplaceAllString(markup, ""))
}

// wrapText greedily wraps s on word boundaries so no line exceeds width
// characters. Words longer than width get a line of their own.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) <= width {
			current += " " + word
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	return append(lines, current)
}

// fitScale returns the uniform scale that fits an imgW x imgH image inside
// maxW x maxH without upscaling.
func fitScale(imgW, imgH, maxW, maxH float64) float64 {
	return math.Min(math.Min(maxW/imgW, maxH/imgH), 1.0)
}

func imageSize(path string) (float64, float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to open screenshot %s: %w", path, err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to decode screenshot %s: %w", path, err)
	}
	return float64(cfg.Width), float64(cfg.Height), nil
}

// WriteReceiptPDF renders a single-page A4 receipt into dir, named by the
// order id, combining the extracted text fields with the robot screenshot.
// Text that would pass below the floor is dropped, not overflowed to a new
// page. Returns the path of the written file.
func WriteReceiptPDF(dir string, fields *ReceiptFields, screenshotPath string) (string, error) {
	imgW, imgH, err := imageSize(screenshotPath)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create receipts directory: %w", err)
	}
	pdfPath := filepath.Join(dir, "receipt_"+fields.OrderID+".pdf")

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.AddPage()
	pageW, pageH := pdf.GetPageSize()

	// y is the text baseline, measured from the top of the page.
	y := receiptTopMargin

	pdf.SetTextColor(255, 0, 0)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Text(receiptLeftMargin, y, "Receipt")
	y += receiptLineHeight

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(receiptLeftMargin, y, fields.Timestamp)
	y += receiptLineHeight

	pdf.Text(receiptLeftMargin, y, fields.OrderID)
	y += receiptLineHeight

	pdf.Text(receiptLeftMargin, y, fields.Address+CleanPartsHTML(fields.PartsHTML))
	y += receiptLineHeight

	for _, line := range wrapText(thankYouText, receiptWrapWidth) {
		if y > pageH-receiptTextFloor {
			break
		}
		pdf.Text(receiptLeftMargin, y, line)
		y += receiptLineHeight
	}

	scale := fitScale(imgW, imgH, pageW*receiptMaxImgWidth, pageH*receiptMaxImgHeight)
	imgW *= scale
	imgH *= scale

	// Image bottom edge, measured from the page bottom, clamped to the
	// floor. May overlap trailing text if the text block ran long.
	imgBottom := (pageH - y) - imgH - receiptImagePad
	if imgBottom < receiptImageFloor {
		imgBottom = receiptImageFloor
	}
	imgX := (pageW - imgW) / 2

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.ImageOptions(screenshotPath, imgX, pageH-imgBottom-imgH, imgW, imgH, false, opts, 0, "")

	if err := pdf.OutputFileAndClose(pdfPath); err != nil {
		return "", fmt.Errorf("failed to write receipt %s: %w", pdfPath, err)
	}

	return pdfPath, nil
}
