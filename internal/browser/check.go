package browser

import (
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"
)

// SiteCheckTimeout bounds the availability check navigation.
const SiteCheckTimeout = 30 * time.Second

// CheckSite launches a headless chromium, opens baseURL and waits for the
// DOM to load. It returns the page title.
func CheckSite(baseURL string, log *zap.Logger) (string, error) {
	if log == nil {
		log = zap.NewNop()
	}
	launcher, err := Launch(Options{Browser: "chromium", Headless: true, BaseURL: baseURL}, log)
	if err != nil {
		return "", err
	}
	defer launcher.Close()

	session, err := launcher.NewSession("site-check")
	if err != nil {
		return "", err
	}
	defer session.Close(false)

	start := time.Now()
	resp, err := session.Page.Goto(baseURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(float64(SiteCheckTimeout.Milliseconds())),
	})
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", baseURL, err)
	}
	if resp != nil && resp.Status() >= 400 {
		return "", fmt.Errorf("opening %s: status %d", baseURL, resp.Status())
	}

	title, err := session.Page.Title()
	if err != nil {
		return "", fmt.Errorf("reading title: %w", err)
	}
	log.Info("site reachable",
		zap.String("url", baseURL),
		zap.String("title", title),
		zap.Duration("took", time.Since(start)))
	return title, nil
}
