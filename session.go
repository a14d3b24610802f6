package strlit

import (
	"errors"
	"fmt"
	"sync"

	log "github.com/inconshreveable/log15"
)

// ErrNoTarget reports that nothing editable was found at the caret or
// selection.
var ErrNoTarget = errors.New("strlit.NoTargetFound")

// Entry records one active round trip: which scratch copy maps back to
// which range of which source buffer. The range must still be meaningful at
// write-back time; concurrent edits to the source buffer are not detected.
type Entry struct {
	CopyID   string
	BufferID string
	Range    Range
}

// Registry maps scratch-copy ids to their round-trip entries. It is an
// ephemeral in-memory table; entries never survive the process.
type Registry struct {
	mu      sync.Mutex
	entries map[string]Entry
}

func NewRegistry() *Registry {
	return &Registry{entries: map[string]Entry{}}
}

// Register inserts or overwrites the entry for copyID. Overwrite is allowed:
// re-running the command produces a fresh copy id, so collisions are the
// caller re-registering deliberately.
func (r *Registry) Register(copyID, bufferID string, rng Range) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[copyID] = Entry{CopyID: copyID, BufferID: bufferID, Range: rng}
}

// Lookup returns the entry for copyID if one is registered.
func (r *Registry) Lookup(copyID string) (Entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[copyID]
	return e, ok
}

// Complete removes the entry for copyID and reports whether one was
// present. Completing an absent id is a no-op.
func (r *Registry) Complete(copyID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.entries[copyID]
	delete(r.entries, copyID)
	return ok
}

// CompleteAll drains the registry and returns the removed entries.
func (r *Registry) CompleteAll() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	drained := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		drained = append(drained, e)
	}
	r.entries = map[string]Entry{}
	return drained
}

// Len returns the number of active round trips.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// BufferAccess is the read/replace surface the host editor provides.
// Replace applies as a single atomic edit visible to subsequent reads.
type BufferAccess interface {
	Line(bufferID string, row int) (string, error)
	Selection(bufferID string) (*Selection, error)
	Caret(bufferID string) (Pos, error)
	Replace(bufferID string, rng Range, text string) error
}

// ScratchStore stages editable copies outside the source buffer. Delete
// tolerates an already-deleted handle.
type ScratchStore interface {
	Create(text string) (string, error)
	Delete(handle string) error
}

// Notifier is the host's fire-and-forget user feedback channel.
type Notifier interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

// Session drives the round trip: locate, extract, stage, write back. One
// Session per running host instance; the host serializes events per copy id,
// distinct ids may interleave freely.
type Session struct {
	buffers BufferAccess
	scratch ScratchStore
	notify  Notifier
	reg     *Registry
	log     log.Logger
}

type Option func(*Session)

// WithLogger replaces the session logger.
func WithLogger(l log.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithRegistry shares an externally owned registry, e.g. one inspected by
// host shutdown hooks.
func WithRegistry(r *Registry) Option {
	return func(s *Session) { s.reg = r }
}

func NewSession(buffers BufferAccess, scratch ScratchStore, notify Notifier, opts ...Option) *Session {
	s := &Session{
		buffers: buffers,
		scratch: scratch,
		notify:  notify,
		reg:     NewRegistry(),
		log:     log.New("module", "strlit"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Registry exposes the session's round-trip table.
func (s *Session) Registry() *Registry { return s.reg }

// Open locates the string literal at the buffer's current selection or
// caret, stages its unescaped form as a scratch copy, and registers the
// round trip. It returns the scratch handle. A locate miss returns
// ErrNoTarget; a scratch create failure aborts with no entry registered.
func (s *Session) Open(bufferID string) (string, error) {
	caret, err := s.buffers.Caret(bufferID)
	if err != nil {
		return "", fmt.Errorf("read caret of %s: %w", bufferID, err)
	}
	sel, err := s.buffers.Selection(bufferID)
	if err != nil {
		return "", fmt.Errorf("read selection of %s: %w", bufferID, err)
	}
	line, err := s.buffers.Line(bufferID, caret.Row)
	if err != nil {
		return "", fmt.Errorf("read line %d of %s: %w", caret.Row, bufferID, err)
	}

	target, ok := Locate(line, sel, caret)
	if !ok {
		s.notify.Error("no JSON string found at the cursor")
		return "", ErrNoTarget
	}

	var opts []EditableOption
	if sel == nil || sel.Range.IsEmpty() {
		// Readability expansion applies to caret-located targets only.
		opts = append(opts, ExpandNewlines())
	}
	editable := ToEditable(target.Body, opts...)

	copyID, err := s.scratch.Create(editable)
	if err != nil {
		s.notify.Error("could not create the editable copy: " + err.Error())
		return "", fmt.Errorf("create scratch copy: %w", err)
	}

	s.reg.Register(copyID, bufferID, target.Range)
	s.log.Debug("round trip opened", "copy", copyID, "buffer", bufferID)
	return copyID, nil
}

// SaveBack re-escapes the edited text and splices it into the source range
// recorded for copyID. Unknown ids are ignored so hosts can forward every
// save event. A replace failure leaves the entry registered for retry; on
// success the entry is cleared and the scratch copy deleted best-effort.
func (s *Session) SaveBack(copyID, editedText string) error {
	entry, ok := s.reg.Lookup(copyID)
	if !ok {
		return nil
	}

	body, wasJSON := ToLiteral(editedText)
	if err := s.buffers.Replace(entry.BufferID, entry.Range, body); err != nil {
		s.notify.Error("could not write the edit back: " + err.Error())
		return fmt.Errorf("replace range in %s: %w", entry.BufferID, err)
	}
	if !wasJSON {
		s.notify.Warn("content is not valid JSON; wrote it back as an escaped string")
	}
	s.notify.Info("wrote the edit back to " + entry.BufferID)

	s.reg.Complete(copyID)
	s.deleteScratch(copyID)
	return nil
}

// Closed handles the editable copy being discarded without saving. This is
// the cancellation path, not an error: the entry is completed and no write
// back happens.
func (s *Session) Closed(copyID string) {
	if s.reg.Complete(copyID) {
		s.deleteScratch(copyID)
	}
}

// Shutdown drains the registry and deletes every outstanding scratch copy so
// no artifacts leak past process exit. Deletion failures are logged, never
// escalated.
func (s *Session) Shutdown() {
	for _, e := range s.reg.CompleteAll() {
		s.deleteScratch(e.CopyID)
	}
}

func (s *Session) deleteScratch(copyID string) {
	if err := s.scratch.Delete(copyID); err != nil {
		s.log.Warn("scratch copy not deleted", "copy", copyID, "err", err)
	}
}
