// Package fixtures builds the per-scenario object graph: an isolated browser
// session, the page objects bound to it and, on demand, a freshly registered
// customer.
package fixtures

import (
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/adyen/storefront-e2e/internal/browser"
	"github.com/adyen/storefront-e2e/internal/config"
	"github.com/adyen/storefront-e2e/internal/pages"
	"github.com/adyen/storefront-e2e/internal/testdata"
)

// Suite is shared by every scenario in a test process. Create it once in
// TestMain and Close it after m.Run.
type Suite struct {
	Config config.RuntimeConfig
	Runner config.RunnerConfig
	Logger *zap.Logger

	launcher *browser.Launcher
	pacer    *browser.Pacer
}

// NewSuite reads the environment (and .env when present) once, then starts
// the browser.
func NewSuite(log *zap.Logger) (*Suite, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}
	runner, err := config.LoadRunner()
	if err != nil {
		return nil, err
	}
	cfg := config.Load()

	launcher, err := browser.Launch(browser.Options{
		Browser:       runner.Browser,
		Headless:      cfg.Browser.Headless,
		BaseURL:       cfg.BaseURL,
		ActionTimeout: cfg.Browser.ActionTimeout(),
		ArtifactsDir:  runner.ArtifactsDir,
		RecordVideo:   runner.RecordVideo,
		Trace:         runner.TraceEnabled(),
	}, log)
	if err != nil {
		return nil, fmt.Errorf("starting browser: %w", err)
	}

	return &Suite{
		Config:   cfg,
		Runner:   runner,
		Logger:   log,
		launcher: launcher,
		pacer:    browser.NewPacer(runner.NavigationRate),
	}, nil
}

// Close stops the browser and the playwright driver.
func (s *Suite) Close() error {
	return s.launcher.Close()
}

// Dependencies returns what page objects are built from, logging to log.
func (s *Suite) Dependencies(log *zap.Logger) pages.Dependencies {
	return pages.Dependencies{
		Config:         s.Config,
		Logger:         log,
		Pacer:          s.pacer,
		ScreenshotDir:  filepath.Join(s.Runner.ArtifactsDir, "screenshots"),
		PriceSliderMax: s.Runner.PriceSliderMax,
	}
}

// Fixtures is the object graph of one scenario.
type Fixtures struct {
	Config       config.RuntimeConfig
	Session      *browser.Session
	Dependencies pages.Dependencies

	Home           *pages.HomePage
	Login          *pages.LoginPage
	Register       *pages.RegisterPage
	ForgotPassword *pages.ForgotPasswordPage
	Search         *pages.SearchPage
	Product        *pages.ProductPage

	t          testing.TB
	once       sync.Once
	registered testdata.UserData
}

// New opens an isolated session for t and builds its page objects. The
// session is closed when t finishes, keeping failure artifacts if t failed.
func (s *Suite) New(t testing.TB) *Fixtures {
	t.Helper()

	session, err := s.launcher.NewSession(t.Name())
	if err != nil {
		t.Fatalf("opening browser session: %v", err)
	}
	t.Cleanup(func() {
		if err := session.Close(t.Failed()); err != nil {
			s.Logger.Warn("closing browser session", zap.String("test", t.Name()), zap.Error(err))
		}
	})

	return Build(t, s.Config, session, s.Dependencies(zaptest.NewLogger(t)))
}

// Build wires page objects for session. It is split from Suite.New so a
// session opened elsewhere can be reused.
func Build(t testing.TB, cfg config.RuntimeConfig, session *browser.Session, deps pages.Dependencies) *Fixtures {
	page := session.Page
	return &Fixtures{
		Config:         cfg,
		Session:        session,
		Dependencies:   deps,
		Home:           pages.NewHomePage(page, deps),
		Login:          pages.NewLoginPage(page, deps),
		Register:       pages.NewRegisterPage(page, deps),
		ForgotPassword: pages.NewForgotPasswordPage(page, deps),
		Search:         pages.NewSearchPage(page, deps),
		Product:        pages.NewProductPage(page, deps),
		t:              t,
	}
}

// RegisteredUser registers a newly generated customer through the UI the
// first time it is called and returns it on every call. If registration
// does not reach the result page the test is stopped.
func (f *Fixtures) RegisteredUser() testdata.UserData {
	f.t.Helper()
	f.once.Do(func() {
		user := testdata.GenerateRandomUser()
		if err := registerUser(f.Register, user); err != nil {
			f.t.Fatalf("failed to register user: %s: %v", user.Email, err)
		}
		if f.Register.RegistrationOutcome() == pages.RegistrationFailed {
			f.t.Fatalf("failed to register user: %s", user.Email)
		}
		f.registered = user
	})
	return f.registered
}

func registerUser(p *pages.RegisterPage, user testdata.UserData) error {
	if err := p.Goto(); err != nil {
		return err
	}
	return p.RegisterUser(testdata.ToRegistrationData(user))
}
