package browser

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"
)

// Session is one isolated browser context with a single page, owned by one
// scenario.
type Session struct {
	Context playwright.BrowserContext
	Page    playwright.Page

	name    string
	dir     string
	tracing bool
	video   bool
	log     *zap.Logger
}

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// ArtifactName turns a test name into something usable as a file or
// directory name.
func ArtifactName(testName string) string {
	name := unsafeName.ReplaceAllString(testName, "-")
	return strings.Trim(name, "-")
}

// NewSession opens a fresh context and page. Video and tracing follow the
// launcher options; they are kept only if the session is closed as failed.
func (l *Launcher) NewSession(testName string) (*Session, error) {
	s := &Session{
		name:    ArtifactName(testName),
		tracing: l.opts.Trace,
		video:   l.opts.RecordVideo && l.opts.ArtifactsDir != "",
		log:     l.log.With(zap.String("test", testName)),
	}
	if l.opts.ArtifactsDir != "" {
		s.dir = filepath.Join(l.opts.ArtifactsDir, s.name)
	}

	videoDir := ""
	if s.video {
		videoDir = filepath.Join(s.dir, "video")
	}

	ctx, err := l.browser.NewContext(l.contextOptions(videoDir))
	if err != nil {
		return nil, fmt.Errorf("creating browser context: %w", err)
	}
	if l.opts.ActionTimeout > 0 {
		ms := float64(l.opts.ActionTimeout.Milliseconds())
		ctx.SetDefaultTimeout(ms)
		ctx.SetDefaultNavigationTimeout(ms)
	}

	if s.tracing {
		if err := ctx.Tracing().Start(playwright.TracingStartOptions{
			Name:        playwright.String(s.name),
			Screenshots: playwright.Bool(true),
			Snapshots:   playwright.Bool(true),
		}); err != nil {
			s.log.Warn("trace not started", zap.Error(err))
			s.tracing = false
		}
	}

	page, err := ctx.NewPage()
	if err != nil {
		ctx.Close()
		return nil, fmt.Errorf("opening page: %w", err)
	}

	s.Context = ctx
	s.Page = page
	return s, nil
}

// Dir is the directory failure artifacts for this session are written to.
// It is empty when artifacts are disabled.
func (s *Session) Dir() string {
	return s.dir
}

// Close tears the session down. When failed is true a full-page screenshot,
// the trace and the video are kept under Dir; otherwise they are discarded.
func (s *Session) Close(failed bool) error {
	var errs []error

	if failed && s.dir != "" {
		if err := os.MkdirAll(s.dir, 0o755); err != nil {
			errs = append(errs, fmt.Errorf("creating artifact dir: %w", err))
		} else if _, err := s.Page.Screenshot(playwright.PageScreenshotOptions{
			Path:     playwright.String(filepath.Join(s.dir, fmt.Sprintf("failure-%d.png", time.Now().UnixMilli()))),
			FullPage: playwright.Bool(true),
		}); err != nil {
			errs = append(errs, fmt.Errorf("failure screenshot: %w", err))
		}
	}

	if s.tracing {
		var err error
		if failed && s.dir != "" {
			err = s.Context.Tracing().Stop(filepath.Join(s.dir, "trace.zip"))
		} else {
			err = s.Context.Tracing().Stop()
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("stopping trace: %w", err))
		}
	}

	video := s.Page.Video()

	if err := s.Context.Close(); err != nil {
		errs = append(errs, fmt.Errorf("closing context: %w", err))
	}

	// The video file is only complete once the context is closed.
	if s.video && video != nil && !failed {
		if err := video.Delete(); err != nil {
			errs = append(errs, fmt.Errorf("discarding video: %w", err))
		}
	}

	if failed && s.dir != "" {
		s.log.Info("kept failure artifacts", zap.String("dir", s.dir))
	}
	return errors.Join(errs...)
}
