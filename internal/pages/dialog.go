package pages

import (
	"errors"
	"time"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"
)

// ErrNoDialog is returned by ExpectDialog when the action did not open a
// dialog in time.
var ErrNoDialog = errors.New("no dialog appeared")

// DefaultDialogWait bounds how long ExpectDialog waits after the action.
const DefaultDialogWait = 5 * time.Second

// DialogResult is what the page showed in the dialog.
type DialogResult struct {
	Type    string
	Message string
}

// ExpectDialog installs a dialog handler for the duration of action only.
// The first dialog is accepted or dismissed and reported; the handler is
// removed before ExpectDialog returns, so nothing leaks into later steps.
func (b *BasePage) ExpectDialog(accept bool, action func() error) (DialogResult, error) {
	return b.ExpectDialogWithin(accept, DefaultDialogWait, action)
}

// ExpectDialogWithin is ExpectDialog with an explicit wait.
func (b *BasePage) ExpectDialogWithin(accept bool, wait time.Duration, action func() error) (DialogResult, error) {
	seen := make(chan DialogResult, 1)
	handler := func(d playwright.Dialog) {
		res := DialogResult{Type: d.Type(), Message: d.Message()}
		var err error
		if accept {
			err = d.Accept()
		} else {
			err = d.Dismiss()
		}
		if err != nil {
			b.log.Warn("handling dialog", zap.String("message", res.Message), zap.Error(err))
		}
		select {
		case seen <- res:
		default:
		}
	}

	b.page.OnDialog(handler)
	defer b.page.RemoveListener("dialog", handler)

	if err := action(); err != nil {
		return DialogResult{}, err
	}

	// The dialog may already have been handled while the action ran.
	select {
	case res := <-seen:
		return res, nil
	case <-time.After(wait):
		return DialogResult{}, ErrNoDialog
	}
}
