package editor

import (
	"testing"
	"time"

	"github.com/Paintersrp/notiz/internal/storage"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestSession() (*Session, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)}
	s := NewSession(Config{Now: clock.Now})
	return s, clock
}

func note(filename, content string) storage.Note {
	return storage.Note{Filename: filename, Content: content}
}

func TestSettleWindowSuppressesEffects(t *testing.T) {
	s, clock := newTestSession()

	s.Open(note("a.md", "# A"))
	if !s.Settling() {
		t.Fatalf("expected settle window right after open")
	}

	// Widget normalization during mount must not count as an edit.
	propagate, gen := s.SetBuffer("# A normalized")
	if propagate || gen != 0 {
		t.Fatalf("expected suppressed effects while settling, got propagate=%v gen=%d", propagate, gen)
	}

	clock.Advance(DefaultSettleDelay)
	if s.Settling() {
		t.Fatalf("expected settle window over after the delay")
	}

	propagate, gen = s.SetBuffer("# A edited")
	if !propagate || gen == 0 {
		t.Fatalf("expected effects after settling, got propagate=%v gen=%d", propagate, gen)
	}
}

func TestReopeningSameNoteKeepsSettleDeadline(t *testing.T) {
	s, clock := newTestSession()

	s.Open(note("a.md", "# A"))
	clock.Advance(DefaultSettleDelay - time.Millisecond)

	// A refreshed snapshot of the already-open note must not restart the
	// window.
	s.Open(note("a.md", "# A reloaded"))
	clock.Advance(time.Millisecond)

	if s.Settling() {
		t.Fatalf("expected original settle deadline to stand")
	}

	// A different note does restart it.
	s.Open(note("b.md", "# B"))
	if !s.Settling() {
		t.Fatalf("expected new settle window for a different note")
	}
}

func TestInsignificantChangeHasNoEffects(t *testing.T) {
	s, clock := newTestSession()

	s.Open(note("a.md", "# A\nbody"))
	clock.Advance(DefaultSettleDelay)

	propagate, gen := s.SetBuffer("# A\nbody\n\n")
	if propagate {
		t.Fatalf("whitespace-only difference must not propagate")
	}
	if _, ok := s.Flush(gen); ok {
		t.Fatalf("whitespace-only difference must not reach disk")
	}
}

func TestFlushIgnoresSupersededTimers(t *testing.T) {
	s, clock := newTestSession()

	s.Open(note("a.md", "# A"))
	clock.Advance(DefaultSettleDelay)

	_, stale := s.SetBuffer("# A first")
	_, current := s.SetBuffer("# A second")

	if _, ok := s.Flush(stale); ok {
		t.Fatalf("expected superseded timer to be ignored")
	}

	n, ok := s.Flush(current)
	if !ok {
		t.Fatalf("expected current timer to flush")
	}
	if n.Content != "# A second" {
		t.Fatalf("expected latest buffer at fire time, got %q", n.Content)
	}
}

func TestFlushWritesOncePerChange(t *testing.T) {
	s, clock := newTestSession()

	s.Open(note("a.md", "# A"))
	clock.Advance(DefaultSettleDelay)

	_, gen := s.SetBuffer("# A edited")
	if _, ok := s.Flush(gen); !ok {
		t.Fatalf("expected first flush to persist")
	}

	// Same content again: significant against nothing, no second write.
	_, gen = s.SetBuffer("# A edited")
	if _, ok := s.Flush(gen); ok {
		t.Fatalf("expected no write without a new significant change")
	}
}

func TestCloseCancelsPendingSave(t *testing.T) {
	s, clock := newTestSession()

	s.Open(note("a.md", "# A"))
	clock.Advance(DefaultSettleDelay)

	_, gen := s.SetBuffer("# A edited")
	s.Close()

	if _, ok := s.Flush(gen); ok {
		t.Fatalf("expected pending save dropped on close")
	}
	if s.NoteID() != "" {
		t.Fatalf("expected no open note after close")
	}
}

func TestSplitAndJoinContent(t *testing.T) {
	t.Parallel()

	title, body := SplitContent("# Hello\nWorld\nmore")
	if title != "Hello" || body != "World\nmore" {
		t.Fatalf("unexpected split: %q / %q", title, body)
	}

	title, body = SplitContent("no heading")
	if title != "no heading" || body != "" {
		t.Fatalf("unexpected split without newline: %q / %q", title, body)
	}

	if got := JoinContent("Hello", "World"); got != "# Hello\nWorld" {
		t.Fatalf("unexpected join: %q", got)
	}
}

func TestSignificant(t *testing.T) {
	t.Parallel()

	if Significant("  # A\n", "# A") {
		t.Fatalf("trim-equal content must not be significant")
	}
	if !Significant("# A", "# B") {
		t.Fatalf("differing content must be significant")
	}
}
