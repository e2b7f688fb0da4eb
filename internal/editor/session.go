// Package editor implements the per-open-note synchronization session: it
// reconciles the live edit buffer against the repository's snapshot and
// decides when a buffer change becomes an optimistic cache update and when
// it becomes a disk write.
package editor

import (
	"strings"
	"time"

	"github.com/Paintersrp/notiz/internal/storage"
)

const (
	// DefaultSettleDelay is how long local-change effects stay suppressed
	// after a different note is opened. Editing widgets normalize content on
	// mount, and that normalization must not look like a user edit.
	DefaultSettleDelay = 1500 * time.Millisecond

	// DefaultSaveDelay is the trailing-edge debounce before a buffer change
	// reaches disk.
	DefaultSaveDelay = 1000 * time.Millisecond
)

// Config tunes a Session. Zero values fall back to the defaults above and to
// time.Now.
type Config struct {
	SettleDelay time.Duration
	SaveDelay   time.Duration
	Now         func() time.Time
}

func (c Config) withDefaults() Config {
	if c.SettleDelay == 0 {
		c.SettleDelay = DefaultSettleDelay
	}
	if c.SaveDelay == 0 {
		c.SaveDelay = DefaultSaveDelay
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return c
}

// Session is the state machine for the one note currently open in the
// editor. It is driven from a single event loop: Open on selection changes,
// SetBuffer on keystrokes, Flush when a previously scheduled save timer
// fires. Pending timers are modelled as generation numbers rather than
// goroutines; a timer callback carries the generation it was scheduled with
// and Flush ignores it when a newer change superseded it.
type Session struct {
	cfg Config

	note   storage.Note // identity and snapshot of the open note
	buffer string       // live editor content
	synced string       // content as last written to (or read from) disk

	settleUntil time.Time
	gen         int
}

func NewSession(cfg Config) *Session {
	return &Session{cfg: cfg.withDefaults()}
}

// Open points the session at a note. Opening a note with a different
// identity resets every buffer, cancels any pending save and starts the
// settle window; re-opening the same identity only refreshes the external
// snapshot so the settle window keeps its original deadline.
func (s *Session) Open(n storage.Note) {
	if s.note.ID() == n.ID() && s.note.Filename != "" {
		s.note = n
		return
	}

	s.note = n
	s.buffer = n.Content
	s.synced = n.Content
	s.settleUntil = s.cfg.Now().Add(s.cfg.SettleDelay)
	s.gen++
}

// Close detaches the session from its note and cancels any pending save.
func (s *Session) Close() {
	s.note = storage.Note{}
	s.buffer = ""
	s.synced = ""
	s.gen++
}

// NoteID returns the identity of the open note, "" when none is open.
func (s *Session) NoteID() string {
	if s.note.Filename == "" {
		return ""
	}
	return s.note.ID()
}

// Buffer returns the live editor content.
func (s *Session) Buffer() string {
	return s.buffer
}

// Settling reports whether local-change effects are currently suppressed.
func (s *Session) Settling() bool {
	return s.cfg.Now().Before(s.settleUntil)
}

// SetBuffer records a changed editor buffer. The returned propagate flag is
// true when the change is significant against the note snapshot and should
// be pushed into the repository cache without a timestamp bump. The returned
// generation, when non-zero, is a save timer the caller must schedule for
// the configured save delay and hand back to Flush; zero means no timer is
// wanted. During the settle window the buffer is recorded but neither effect
// fires.
func (s *Session) SetBuffer(content string) (propagate bool, gen int) {
	s.buffer = content

	if s.note.Filename == "" || s.Settling() {
		return false, 0
	}

	if Significant(content, s.note.Content) {
		s.note.Content = content
		propagate = true
	}

	s.gen++
	return propagate, s.gen
}

// Flush handles a fired save timer. It writes nothing itself; when the timer
// is still current and the buffer differs significantly from the last
// disk-synced content, it marks the buffer as synced and returns the note to
// persist, carrying the buffer content at fire time rather than the content
// at schedule time.
func (s *Session) Flush(gen int) (storage.Note, bool) {
	if gen != s.gen || s.note.Filename == "" {
		return storage.Note{}, false
	}
	if !Significant(s.buffer, s.synced) {
		return storage.Note{}, false
	}

	s.synced = s.buffer
	n := s.note
	n.Content = s.buffer
	return n, true
}

// Significant reports whether two content strings differ beyond leading and
// trailing whitespace. Normalization-only differences from the editing
// widget must not count as edits.
func Significant(a, b string) bool {
	return strings.TrimSpace(a) != strings.TrimSpace(b)
}
