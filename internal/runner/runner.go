// Package runner executes the scenario package with `go test -json`,
// re-runs failing scenarios and summarises the outcome.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/adyen/storefront-e2e/internal/config"
)

// ResultsFile receives the raw test2json stream of every attempt.
const ResultsFile = "results.jsonl"

// Executor runs the go tool with args and extra environment, writing its
// standard output to stdout.
type Executor interface {
	Run(ctx context.Context, args []string, env []string, stdout io.Writer) error
}

// GoTool runs the go binary found on PATH.
type GoTool struct {
	Dir    string
	Stderr io.Writer
}

func (g GoTool) Run(ctx context.Context, args []string, env []string, stdout io.Writer) error {
	cmd := exec.CommandContext(ctx, "go", args...)
	cmd.Dir = g.Dir
	cmd.Env = append(os.Environ(), env...)
	cmd.Stdout = stdout
	cmd.Stderr = g.Stderr
	return cmd.Run()
}

// Outcome is the last known state of one scenario.
type Outcome struct {
	Name     string
	Action   string
	Attempts int
	Elapsed  time.Duration
}

// Passed reports whether the scenario passed, possibly after retries.
func (o Outcome) Passed() bool { return o.Action == ActionPass }

// Flaky reports whether the scenario passed only on a retry.
func (o Outcome) Flaky() bool { return o.Passed() && o.Attempts > 1 }

// Summary is the result of a whole run.
type Summary struct {
	Outcomes []Outcome
	Attempts int
	Duration time.Duration
}

func (s Summary) count(match func(Outcome) bool) int {
	n := 0
	for _, o := range s.Outcomes {
		if match(o) {
			n++
		}
	}
	return n
}

func (s Summary) Passed() int { return s.count(Outcome.Passed) }
func (s Summary) Flaky() int  { return s.count(Outcome.Flaky) }

func (s Summary) Skipped() int {
	return s.count(func(o Outcome) bool { return o.Action == ActionSkip })
}

// Failed lists scenarios that never passed, in run order.
func (s Summary) Failed() []string {
	var names []string
	for _, o := range s.Outcomes {
		if o.Action == ActionFail {
			names = append(names, o.Name)
		}
	}
	return names
}

// OK reports whether every scenario passed or was skipped.
func (s Summary) OK() bool { return len(s.Failed()) == 0 }

// Runner drives attempts of the scenario package.
type Runner struct {
	cfg  config.RunnerConfig
	exec Executor
	log  *zap.Logger

	// OnEvent, when set, sees every decoded event of every attempt.
	OnEvent func(attempt int, ev Event)
}

func New(cfg config.RunnerConfig, exec Executor, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{cfg: cfg, exec: exec, log: log}
}

// List returns the scenario names in the configured package.
func (r *Runner) List(ctx context.Context) ([]string, error) {
	var out bytes.Buffer
	args := []string{"test", "-list", ".", "-tags", r.cfg.Tags, r.cfg.Package}
	if err := r.exec.Run(ctx, args, nil, &out); err != nil {
		return nil, fmt.Errorf("listing scenarios: %w", err)
	}
	return ParseTestList(&out)
}

// Args builds the go test arguments for one attempt. names restricts the
// run to those top-level tests; nil runs everything.
func (r *Runner) Args(names []string, total int) []string {
	args := []string{
		"test", "-json", "-count=1",
		"-tags", r.cfg.Tags,
		"-parallel", strconv.Itoa(r.cfg.Workers()),
		"-timeout", Timeout(r.cfg.TestTimeout, total).String(),
	}
	if len(names) > 0 {
		args = append(args, "-run", RunPattern(names))
	}
	return append(args, r.cfg.Package)
}

// UnknownTotal is the scenario count budgeted for when the package could
// not be listed.
const UnknownTotal = 25

// Timeout is the whole-process budget for total tests of perTest each.
func Timeout(perTest time.Duration, total int) time.Duration {
	if total <= 0 {
		total = UnknownTotal
	}
	return perTest * time.Duration(total)
}

// RunPattern matches exactly the given top-level test names.
func RunPattern(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = regexp.QuoteMeta(n)
	}
	return "^(" + strings.Join(quoted, "|") + ")$"
}

// Run executes the package once, then re-runs failing scenarios up to the
// configured retry count. The returned error is set only when an attempt
// produced no test results at all, which usually means a build failure.
func (r *Runner) Run(ctx context.Context, total int) (Summary, error) {
	start := time.Now()

	if err := resetDir(r.cfg.ArtifactsDir); err != nil {
		return Summary{}, err
	}
	results, err := os.Create(filepath.Join(r.cfg.ArtifactsDir, ResultsFile))
	if err != nil {
		return Summary{}, fmt.Errorf("creating results file: %w", err)
	}
	defer results.Close()

	outcomes := map[string]*Outcome{}
	var order []string
	var pending []string

	attempts := 0
	for attempt := 0; attempt <= r.cfg.Retries(); attempt++ {
		if attempt > 0 {
			if len(pending) == 0 {
				break
			}
			r.log.Warn("retrying failed scenarios", zap.Int("attempt", attempt), zap.Strings("tests", pending))
		}
		attempts++

		count := total
		if attempt > 0 {
			count = len(pending)
		}

		seen := 0
		runErr := r.attempt(ctx, attempt, pending, count, results, func(ev Event) {
			if !ev.IsTopLevel() || !ev.IsFinal() {
				return
			}
			seen++
			o, ok := outcomes[ev.Test]
			if !ok {
				o = &Outcome{Name: ev.Test}
				outcomes[ev.Test] = o
				order = append(order, ev.Test)
			}
			o.Action = ev.Action
			o.Attempts = attempt + 1
			o.Elapsed = time.Duration(ev.Elapsed * float64(time.Second))
		})
		if ctx.Err() != nil {
			return r.summary(outcomes, order, attempts, start), ctx.Err()
		}
		if seen == 0 && runErr != nil {
			return r.summary(outcomes, order, attempts, start), fmt.Errorf("attempt %d produced no results: %w", attempt, runErr)
		}

		pending = pending[:0]
		for _, name := range order {
			if outcomes[name].Action == ActionFail {
				pending = append(pending, name)
			}
		}
	}

	return r.summary(outcomes, order, attempts, start), nil
}

// resetDir empties dir so artifacts of earlier runs are never reported
// again, then recreates it.
func resetDir(dir string) error {
	switch clean := filepath.Clean(dir); {
	case dir == "", clean == ".", clean == string(filepath.Separator):
		return fmt.Errorf("refusing to clear artifacts dir %q", dir)
	}
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("clearing artifacts dir: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating artifacts dir: %w", err)
	}
	return nil
}

func (r *Runner) attempt(ctx context.Context, attempt int, names []string, count int, sink io.Writer, fn func(Event)) error {
	pr, pw := io.Pipe()
	env := []string{fmt.Sprintf("E2E_ATTEMPT=%d", attempt)}

	done := make(chan error, 1)
	go func() {
		err := r.exec.Run(ctx, r.Args(slices.Clone(names), count), env, pw)
		pw.CloseWithError(err)
		done <- err
	}()

	readErr := ReadEvents(pr, sink, func(ev Event) {
		if r.OnEvent != nil {
			r.OnEvent(attempt, ev)
		}
		fn(ev)
	})
	pr.Close()
	runErr := <-done

	var exitErr *exec.ExitError
	if runErr != nil && !errors.As(runErr, &exitErr) {
		r.log.Warn("go test did not run cleanly", zap.Int("attempt", attempt), zap.Error(runErr))
	}
	if readErr != nil && !errors.Is(readErr, runErr) {
		r.log.Warn("reading test events", zap.Error(readErr))
	}
	return runErr
}

func (r *Runner) summary(outcomes map[string]*Outcome, order []string, attempts int, start time.Time) Summary {
	s := Summary{Attempts: attempts, Duration: time.Since(start)}
	for _, name := range order {
		s.Outcomes = append(s.Outcomes, *outcomes[name])
	}
	return s
}
