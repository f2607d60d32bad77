package runner

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

var (
	green  = color.New(color.FgGreen, color.Bold)
	red    = color.New(color.FgRed, color.Bold)
	yellow = color.New(color.FgYellow, color.Bold)
	bold   = color.New(color.Bold)
	dim    = color.New(color.Faint)
)

// Progress renders a bar that advances as top-level scenarios finish. With
// an unknown total it falls back to a spinner.
type Progress struct {
	bar *progressbar.ProgressBar
}

func NewProgress(w io.Writer, total int) *Progress {
	size := int64(total)
	if total <= 0 {
		size = -1
	}
	return &Progress{bar: progressbar.NewOptions64(size,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("   Running scenarios..."),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)}
}

// Observe is a Runner.OnEvent hook.
func (p *Progress) Observe(attempt int, ev Event) {
	if !ev.IsTopLevel() || !ev.IsFinal() {
		return
	}
	if attempt > 0 {
		p.bar.Describe(fmt.Sprintf("   Retry %d...", attempt))
		return
	}
	p.bar.Add(1)
}

func (p *Progress) Finish() {
	p.bar.Finish()
}

// PrintSummary writes a coloured per-scenario report followed by totals.
func PrintSummary(w io.Writer, s Summary) {
	fmt.Fprintln(w)
	bold.Fprintln(w, "Scenario results")
	for _, o := range s.Outcomes {
		switch {
		case o.Flaky():
			yellow.Fprintf(w, "   ~ %s", o.Name)
			dim.Fprintf(w, " (passed on attempt %d)\n", o.Attempts)
		case o.Passed():
			green.Fprintf(w, "   ✓ %s", o.Name)
			dim.Fprintf(w, " (%s)\n", o.Elapsed.Round(100*time.Millisecond))
		case o.Action == ActionSkip:
			dim.Fprintf(w, "   - %s (skipped)\n", o.Name)
		default:
			red.Fprintf(w, "   ✗ %s\n", o.Name)
		}
	}

	fmt.Fprintln(w)
	status := green
	if !s.OK() {
		status = red
	}
	status.Fprintf(w, "%d passed, %d failed, %d skipped", s.Passed(), len(s.Failed()), s.Skipped())
	fmt.Fprintf(w, " in %d attempt(s), %s\n", s.Attempts, s.Duration.Round(100*time.Millisecond))
	if n := s.Flaky(); n > 0 {
		yellow.Fprintf(w, "%d flaky\n", n)
	}
}
