// Package browser owns the playwright driver and browser for a test process
// and hands out one isolated context per scenario.
package browser

import (
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"
)

// Options configures the launched browser and the contexts created from it.
type Options struct {
	// Browser is chromium, firefox or webkit.
	Browser  string
	Headless bool
	BaseURL  string
	// ActionTimeout applies to every action and navigation in a context.
	ActionTimeout time.Duration
	ArtifactsDir  string
	RecordVideo   bool
	Trace         bool
}

// Launcher holds the playwright driver and one running browser.
type Launcher struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	opts    Options
	log     *zap.Logger
}

// LaunchArgs returns the browser command line flags for the headless mode.
func LaunchArgs(headless bool) []string {
	if headless {
		return []string{"--no-sandbox", "--disable-dev-shm-usage"}
	}
	return []string{"--start-maximized"}
}

// Launch starts the playwright driver and the configured browser.
func Launch(opts Options, log *zap.Logger) (*Launcher, error) {
	if log == nil {
		log = zap.NewNop()
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("starting playwright: %w", err)
	}

	var browserType playwright.BrowserType
	switch opts.Browser {
	case "", "chromium":
		browserType = pw.Chromium
	case "firefox":
		browserType = pw.Firefox
	case "webkit":
		browserType = pw.WebKit
	default:
		pw.Stop()
		return nil, fmt.Errorf("unknown browser %q", opts.Browser)
	}

	launchOpts := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
	}
	// Only chromium understands the chromium switches.
	if opts.Browser == "" || opts.Browser == "chromium" {
		launchOpts.Args = LaunchArgs(opts.Headless)
	}

	browser, err := browserType.Launch(launchOpts)
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("launching %s: %w", opts.Browser, err)
	}

	log.Info("browser launched",
		zap.String("browser", browserType.Name()),
		zap.Bool("headless", opts.Headless),
		zap.String("base_url", opts.BaseURL))

	return &Launcher{pw: pw, browser: browser, opts: opts, log: log}, nil
}

// Close shuts down the browser and the driver.
func (l *Launcher) Close() error {
	if l.browser != nil {
		if err := l.browser.Close(); err != nil {
			l.log.Warn("closing browser", zap.Error(err))
		}
	}
	if l.pw != nil {
		return l.pw.Stop()
	}
	return nil
}

func (l *Launcher) contextOptions(videoDir string) playwright.BrowserNewContextOptions {
	opts := playwright.BrowserNewContextOptions{}
	if l.opts.BaseURL != "" {
		opts.BaseURL = playwright.String(l.opts.BaseURL)
	}
	if l.opts.Headless {
		opts.Viewport = &playwright.Size{Width: 1920, Height: 1080}
		opts.DeviceScaleFactor = playwright.Float(1)
	} else {
		opts.NoViewport = playwright.Bool(true)
	}
	if videoDir != "" {
		opts.RecordVideo = &playwright.RecordVideo{Dir: videoDir}
	}
	return opts
}
