package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
)

type Automation struct {
	config   *Config
	browser  *rod.Browser
	page     *rod.Page
	launcher *launcher.Launcher
	stopChan chan bool
}

func NewAutomation(config *Config) *Automation {
	return &Automation{
		config:   config,
		stopChan: make(chan bool, 1),
	}
}

func (a *Automation) Close() {
	select {
	case a.stopChan <- true:
	default:
	}

	if a.page != nil {
		a.page.Close()
	}

	if a.browser != nil {
		a.browser.Close()
	}

	if a.launcher != nil {
		a.launcher.Cleanup()
	}
}

func (a *Automation) isBrowserAlive() bool {
	if a.browser == nil {
		return false
	}

	_, err := a.browser.Version()
	if err != nil {
		a.debugLog("Browser version check failed: %v", err)
		return false
	}

	if a.page != nil {
		_, err := a.page.Info()
		if err != nil {
			a.debugLog("Page info check failed: %v", err)
			return false
		}
	}

	return true
}

func (a *Automation) checkBrowserOrExit() {
	if !a.isBrowserAlive() {
		fmt.Println("Browser was closed. Shutting down.")
		os.Exit(0)
	}
}

func (a *Automation) watchBrowser() {
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-a.stopChan:
			return
		case <-ticker.C:
			a.checkBrowserOrExit()
		}
	}
}

func (a *Automation) debugLog(format string, args ...interface{}) {
	if a.config.DebugMode {
		fmt.Printf("[DEBUG] "+format+"\n", args...)
	}
}

func (a *Automation) selectorTimeout() time.Duration {
	return time.Duration(a.config.SelectorTimeoutMs) * time.Millisecond
}

func (a *Automation) SetupBrowser() error {
	// Disable leakless mode on Windows to prevent deadlock
	// See: https://github.com/go-rod/rod/issues/853
	useLeakless := runtime.GOOS != "windows"

	// Prefer system Chrome to avoid a Chromium download
	chromePath, chromeExists := launcher.LookPath()

	a.launcher = launcher.New().
		Leakless(useLeakless).
		Headless(a.config.Headless)

	if a.config.BrowserProfilePath != "" {
		a.launcher = a.launcher.UserDataDir(a.config.BrowserProfilePath)
		a.debugLog("Browser profile path: %s", a.config.BrowserProfilePath)
	}

	if chromeExists {
		a.launcher = a.launcher.Bin(chromePath)
		a.debugLog("Using system Chrome at %s", chromePath)
	}

	url, err := a.launcher.Launch()
	if err != nil {
		return fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(url)
	if a.config.SlowMotionMs > 0 {
		browser = browser.SlowMotion(time.Duration(a.config.SlowMotionMs) * time.Millisecond)
	}
	a.browser = browser.MustConnect()

	go a.watchBrowser()
	a.debugLog("Browser watcher started")

	return nil
}

// OpenOrderPage navigates to the robot order page and waits for it to load.
func (a *Automation) OpenOrderPage() error {
	var err error
	a.page, err = stealth.Page(a.browser)
	if err != nil {
		return fmt.Errorf("failed to create page: %w", err)
	}

	if err := a.page.Navigate(a.config.OrderURL); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", a.config.OrderURL, err)
	}

	if err := a.page.WaitLoad(); err != nil {
		return fmt.Errorf("order page failed to load: %w", err)
	}

	return nil
}

// Page returns the OrderPage backed by the live browser tab.
func (a *Automation) Page() OrderPage {
	return &rodOrderPage{automation: a}
}

// rodOrderPage drives the single reused browser tab through the order form.
type rodOrderPage struct {
	automation *Automation
}

func (p *rodOrderPage) cfg() *Config { return p.automation.config }

// waitFor waits for sel to appear within the configured ceiling. A missing
// element is a fatal, unretried failure.
func (p *rodOrderPage) waitFor(sel string) (*rod.Element, error) {
	el, err := p.automation.page.Timeout(p.automation.selectorTimeout()).Element(sel)
	if err != nil {
		return nil, fmt.Errorf("timed out waiting for %q: %w", sel, err)
	}
	return el.CancelTimeout(), nil
}

// waitForText waits for an element of sel whose text matches the pattern.
func (p *rodOrderPage) waitForText(sel, pattern string) (*rod.Element, error) {
	el, err := p.automation.page.Timeout(p.automation.selectorTimeout()).ElementR(sel, pattern)
	if err != nil {
		return nil, fmt.Errorf("timed out waiting for %q matching %q: %w", sel, pattern, err)
	}
	return el.CancelTimeout(), nil
}

func (p *rodOrderPage) click(el *rod.Element) error {
	return el.Click(proto.InputMouseButtonLeft, 1)
}

func (p *rodOrderPage) fill(el *rod.Element, value string) error {
	if err := el.SelectAllText(); err != nil {
		return err
	}
	return el.Input(value)
}

func (p *rodOrderPage) DismissIntro() error {
	el, err := p.waitForText("button", p.cfg().Selectors.IntroOKText)
	if err != nil {
		return err
	}
	return p.click(el)
}

func (p *rodOrderPage) FillForm(order Order) error {
	head, err := p.waitFor(p.cfg().Selectors.HeadSelect)
	if err != nil {
		return err
	}
	headOption := fmt.Sprintf("[value=%q]", order.Head)
	if err := head.Select([]string{headOption}, true, rod.SelectorTypeCSSSector); err != nil {
		return fmt.Errorf("failed to select head %q: %w", order.Head, err)
	}

	body, err := p.waitFor(fmt.Sprintf(p.cfg().Selectors.BodyRadio, order.Body))
	if err != nil {
		return err
	}
	if err := p.click(body); err != nil {
		return fmt.Errorf("failed to check body %q: %w", order.Body, err)
	}

	legs, err := p.waitFor(p.cfg().Selectors.LegsInput)
	if err != nil {
		return err
	}
	if err := p.fill(legs, order.Legs); err != nil {
		return fmt.Errorf("failed to fill legs: %w", err)
	}

	address, err := p.waitFor(p.cfg().Selectors.AddressInput)
	if err != nil {
		return err
	}
	if err := p.fill(address, order.Address); err != nil {
		return fmt.Errorf("failed to fill address: %w", err)
	}

	return nil
}

func (p *rodOrderPage) Submit() error {
	button, err := p.waitFor(p.cfg().Selectors.OrderButton)
	if err != nil {
		return err
	}
	return p.click(button)
}

func (p *rodOrderPage) AlertVisible() (bool, error) {
	els, err := p.automation.page.Elements(p.cfg().Selectors.ErrorAlert)
	if err != nil {
		return false, fmt.Errorf("failed to query error alert: %w", err)
	}
	if els.Empty() {
		return false, nil
	}
	return els.First().Visible()
}

func (p *rodOrderPage) Reload() error {
	if err := p.automation.page.Reload(); err != nil {
		return fmt.Errorf("failed to reload order page: %w", err)
	}
	return p.automation.page.WaitLoad()
}

func (p *rodOrderPage) CapturePreview(path string) error {
	el, err := p.waitFor(p.cfg().Selectors.PreviewImage)
	if err != nil {
		return err
	}

	data, err := el.Screenshot(proto.PageCaptureScreenshotFormatPng, 0)
	if err != nil {
		return fmt.Errorf("failed to screenshot robot preview: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create screenshots directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write screenshot %s: %w", path, err)
	}

	return nil
}

func (p *rodOrderPage) ReceiptFields() (*ReceiptFields, error) {
	if _, err := p.waitFor(p.cfg().Selectors.ReceiptContainer); err != nil {
		return nil, err
	}

	badge, err := p.waitFor(p.cfg().Selectors.OrderIDBadge)
	if err != nil {
		return nil, err
	}
	orderID, err := badge.Text()
	if err != nil {
		return nil, fmt.Errorf("failed to read order id: %w", err)
	}

	tsEl, err := p.waitFor(p.cfg().Selectors.OrderTimestamp)
	if err != nil {
		return nil, err
	}
	timestamp, err := tsEl.Text()
	if err != nil {
		return nil, fmt.Errorf("failed to read order timestamp: %w", err)
	}

	parts, err := p.waitFor(p.cfg().Selectors.PartsContainer)
	if err != nil {
		return nil, err
	}
	partsHTML, err := parts.Eval(`() => this.innerHTML`)
	if err != nil {
		return nil, fmt.Errorf("failed to read parts markup: %w", err)
	}

	addrEl, err := p.waitFor(p.cfg().Selectors.ReceiptAddress)
	if err != nil {
		return nil, err
	}
	address, err := addrEl.Text()
	if err != nil {
		return nil, fmt.Errorf("failed to read shipping address: %w", err)
	}

	return &ReceiptFields{
		OrderID:   orderID,
		Timestamp: timestamp,
		PartsHTML: partsHTML.Value.Str(),
		Address:   address,
	}, nil
}

func (p *rodOrderPage) OrderAnother() error {
	el, err := p.waitForText("button", p.cfg().Selectors.OrderAnotherText)
	if err != nil {
		return err
	}
	return p.click(el)
}
