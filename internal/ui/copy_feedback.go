package ui

import (
	"errors"
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// Clipboard abstracts the system clipboard so feedback can be tested and so
// platforms without clipboard access surface the failure label instead of
// silently dropping the copy.
type Clipboard interface {
	SetContent(content string) error
}

// NewFyneClipboard wraps the toolkit clipboard in the Clipboard interface.
func NewFyneClipboard(clipboard fyne.Clipboard) Clipboard {
	return fyneClipboard{clipboard: clipboard}
}

type fyneClipboard struct {
	clipboard fyne.Clipboard
}

func (f fyneClipboard) SetContent(content string) error {
	if f.clipboard == nil {
		return errors.New("clipboard unavailable")
	}
	f.clipboard.SetContent(content)
	return nil
}

// CopyFeedback copies text to the system clipboard and flashes transient
// feedback on the triggering button. Each button has at most one pending
// restore timer: a re-trigger cancels and replaces the pending restore. The
// original label is recorded once, on the first flash, and kept until the
// final restore applies, so a restore racing a re-trigger can never capture
// a transient label as the original.
type CopyFeedback struct {
	clipboard Clipboard

	mu        sync.Mutex
	pending   map[*widget.Button]*time.Timer
	originals map[*widget.Button]string

	// runOnMain routes the deferred label restore onto the UI thread.
	// Replaced in tests with a direct call.
	runOnMain func(func())
}

// NewCopyFeedback creates the widget over the given clipboard.
func NewCopyFeedback(clipboard Clipboard) *CopyFeedback {
	return &CopyFeedback{
		clipboard: clipboard,
		pending:   make(map[*widget.Button]*time.Timer),
		originals: make(map[*widget.Button]string),
		runOnMain: fyne.Do,
	}
}

// Copy writes text to the clipboard and flashes the outcome on the button.
// A nil button or empty text is a no-op.
func (cf *CopyFeedback) Copy(btn *widget.Button, text string, delay time.Duration) {
	if btn == nil || text == "" {
		return
	}

	if err := cf.clipboard.SetContent(text); err != nil {
		log.Printf("Clipboard copy failed: %v", err)
		cf.flash(btn, LabelCopyFailed, delay)
		return
	}

	cf.flash(btn, LabelCopied, delay)
}

// flash swaps the button label and schedules the restore. Runs on the UI
// thread (tap handlers), so reading btn.Text here is safe.
func (cf *CopyFeedback) flash(btn *widget.Button, label string, delay time.Duration) {
	cf.mu.Lock()
	if timer, exists := cf.pending[btn]; exists {
		timer.Stop()
	}
	if _, recorded := cf.originals[btn]; !recorded {
		cf.originals[btn] = btn.Text
	}
	cf.pending[btn] = time.AfterFunc(delay, func() {
		cf.restore(btn)
	})
	cf.mu.Unlock()

	btn.SetText(label)
}

// restore runs when the timer fires. The original-label record is only
// dropped on the UI thread, after checking no re-trigger slipped in between
// the timer firing and the restore applying.
func (cf *CopyFeedback) restore(btn *widget.Button) {
	cf.mu.Lock()
	delete(cf.pending, btn)
	original, recorded := cf.originals[btn]
	cf.mu.Unlock()

	if !recorded {
		return
	}

	cf.runOnMain(func() {
		cf.mu.Lock()
		if _, retriggered := cf.pending[btn]; retriggered {
			cf.mu.Unlock()
			return
		}
		delete(cf.originals, btn)
		cf.mu.Unlock()

		btn.SetText(original)
	})
}
