package main

// OrderPage is the browser capability surface the ordering pipeline drives.
// The production implementation wraps a rod page; tests substitute a fake.
type OrderPage interface {
	// DismissIntro waits for the intro modal and clicks its confirmation
	// button.
	DismissIntro() error

	// FillForm populates the head, body, legs and address controls from the
	// order.
	FillForm(order Order) error

	// Submit clicks the order button.
	Submit() error

	// AlertVisible reports whether the submission error banner is currently
	// visible. It does not wait for the banner to appear.
	AlertVisible() (bool, error)

	// Reload reloads the page and waits for it to finish loading.
	Reload() error

	// CapturePreview screenshots the robot preview element to path, creating
	// the parent directory if missing.
	CapturePreview(path string) error

	// ReceiptFields extracts the receipt region of the page after a
	// successful submission.
	ReceiptFields() (*ReceiptFields, error)

	// OrderAnother clicks the reset control, returning the page to a fresh
	// order form.
	OrderAnother() error
}
