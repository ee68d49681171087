// Package sampler implements the background clipboard poller. It is the sole
// writer to the history store: each accepted change is appended, bounded, and
// persisted synchronously before the next poll proceeds.
package sampler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ElijahMwambazi/clipb/internal/clipboard"
	"github.com/ElijahMwambazi/clipb/internal/history"
)

// Sampler polls the clipboard at a fixed cadence and commits distinct,
// non-blank text snapshots to history. Not safe for concurrent use; exactly
// one goroutine runs the loop.
type Sampler struct {
	clip     clipboard.Clipboard
	store    *history.Store
	interval time.Duration
	notify   func(string)

	// lastText is the last text this sampler itself recorded. Deduplication
	// is an exact string comparison against in-process memory, never
	// re-derived from history.
	lastText string
}

// New creates a Sampler. notify, if non-nil, receives human-readable
// diagnostics (clipboard read failures, persistence failures) for display in
// the interactive session; both are also logged.
func New(clip clipboard.Clipboard, store *history.Store, interval time.Duration, notify func(string)) *Sampler {
	return &Sampler{
		clip:     clip,
		store:    store,
		interval: interval,
		notify:   notify,
	}
}

// Run polls until ctx is cancelled, sampling once immediately and then once
// per interval. All failures are non-fatal: the loop degrades to logging and
// keeps polling. Returns ctx.Err() on cancellation.
func (s *Sampler) Run(ctx context.Context) error {
	t := time.NewTicker(s.interval)
	defer t.Stop()

	for {
		s.Poll()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
}

// Poll performs one sampling iteration: read the clipboard, filter blank
// content, deduplicate, and commit a new snapshot.
func (s *Sampler) Poll() {
	text, err := s.clip.ReadText()
	if err != nil {
		slog.Warn("clipboard read failed", "err", err)
		s.report(fmt.Sprintf("clipboard read failed: %v", err))
		return
	}

	// Some clipboard backends report transient empty or newline-only
	// states; those never become history entries.
	if isBlank(text) {
		return
	}

	if text == s.lastText {
		return
	}

	s.lastText = text
	entry := history.Entry{
		Timestamp: time.Now().Format(history.TimestampFormat),
		Content:   text,
	}

	if err := s.store.Append(entry); err != nil {
		// The in-memory append stands; capture continues against a stale
		// file rather than halting.
		slog.Error("history persist failed", "err", err)
		s.report(fmt.Sprintf("history not saved: %v", err))
	}
}

func (s *Sampler) report(msg string) {
	if s.notify != nil {
		s.notify(msg)
	}
}

// isBlank reports whether text consists entirely of line-break characters.
// The empty string is blank.
func isBlank(text string) bool {
	for _, r := range text {
		if r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
