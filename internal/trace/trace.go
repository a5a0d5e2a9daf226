// Package trace records and replays raw input as JSON lines.
//
// A trace starts with a header line carrying a session id, followed by one
// line per tick holding the events delivered in that tick:
//
//	{"type":"header","version":1,"session":"…","started_at":"…"}
//	{"type":"tick","seq":1,"events":[{"t":0.5,"device":"keyboard","kind":"key","key":"space","action":"press"}]}
//
// Tick boundaries are preserved because the remapper's frame data and
// motion deltas depend on them.
package trace

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/rebind/internal/input/raw"
)

// CurrentVersion is the trace format version written by Recorder.
const CurrentVersion = 1

var (
	// ErrNoHeader indicates the first line is not a trace header.
	ErrNoHeader = errors.New("trace header missing")
	// ErrVersion indicates a trace written by a newer format version.
	ErrVersion = errors.New("unsupported trace version")
	// ErrNoPayload indicates an event without a payload.
	ErrNoPayload = errors.New("event has no payload")
	// ErrClosed indicates the recorder was closed.
	ErrClosed = errors.New("recorder closed")
)

const (
	recordHeader = "header"
	recordTick   = "tick"
)

// maxLine bounds a single tick line.
const maxLine = 4 << 20

// Header describes a recording session.
type Header struct {
	Version   int
	Session   string
	StartedAt time.Time
	Source    string
}

// Tick is one batch of events passed to the remapper together.
type Tick struct {
	Seq    int
	Events []raw.Event
}

type record struct {
	Type      string      `json:"type"`
	Version   int         `json:"version,omitempty"`
	Session   string      `json:"session,omitempty"`
	StartedAt *time.Time  `json:"started_at,omitempty"`
	Source    string      `json:"source,omitempty"`
	Seq       int         `json:"seq,omitempty"`
	Events    []wireEvent `json:"events,omitempty"`
}

// Recorder writes ticks to a trace. It is safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	buf    *bufio.Writer
	enc    *json.Encoder
	closer io.Closer
	header Header
	seq    int
	closed bool
}

// NewRecorder starts a trace on w and writes its header. source is a free
// form description of where the input came from.
func NewRecorder(w io.Writer, source string) (*Recorder, error) {
	buf := bufio.NewWriter(w)
	r := &Recorder{
		buf: buf,
		enc: json.NewEncoder(buf),
		header: Header{
			Version:   CurrentVersion,
			Session:   uuid.NewString(),
			StartedAt: time.Now().UTC(),
			Source:    source,
		},
	}

	h := r.header
	if err := r.enc.Encode(record{
		Type:      recordHeader,
		Version:   h.Version,
		Session:   h.Session,
		StartedAt: &h.StartedAt,
		Source:    h.Source,
	}); err != nil {
		return nil, fmt.Errorf("write trace header: %w", err)
	}
	return r, nil
}

// Create starts a trace in a new file at path.
func Create(path, source string) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create trace: %w", err)
	}
	r, err := NewRecorder(f, source)
	if err != nil {
		f.Close()
		return nil, err
	}
	r.closer = f
	return r, nil
}

// Header returns the session header.
func (r *Recorder) Header() Header {
	return r.header
}

// Record appends one tick. Empty ticks are not written.
func (r *Recorder) Record(events []raw.Event) error {
	if len(events) == 0 {
		return nil
	}

	wire := make([]wireEvent, len(events))
	for i, ev := range events {
		w, err := toWire(ev)
		if err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
		wire[i] = w
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}
	r.seq++
	if err := r.enc.Encode(record{Type: recordTick, Seq: r.seq, Events: wire}); err != nil {
		return fmt.Errorf("write tick %d: %w", r.seq, err)
	}
	return nil
}

// Ticks returns the number of ticks recorded so far.
func (r *Recorder) Ticks() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.seq
}

// Flush writes buffered ticks to the underlying writer.
func (r *Recorder) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buf.Flush()
}

// Close flushes the trace and closes the file opened by Create.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true

	err := r.buf.Flush()
	if r.closer != nil {
		if cerr := r.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Reader reads ticks from a trace.
type Reader struct {
	sc     *bufio.Scanner
	closer io.Closer
	header Header
	line   int
}

// NewReader reads the header from r.
func NewReader(r io.Reader) (*Reader, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	rd := &Reader{sc: sc}
	rec, err := rd.next()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, err
	}
	if rec.Type != recordHeader {
		return nil, ErrNoHeader
	}
	if rec.Version > CurrentVersion {
		return nil, fmt.Errorf("%w: %d (max %d)", ErrVersion, rec.Version, CurrentVersion)
	}

	rd.header = Header{Version: rec.Version, Session: rec.Session, Source: rec.Source}
	if rec.StartedAt != nil {
		rd.header.StartedAt = *rec.StartedAt
	}
	return rd, nil
}

// Open opens the trace file at path.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open trace: %w", err)
	}
	rd, err := NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	rd.closer = f
	return rd, nil
}

// Header returns the session header.
func (r *Reader) Header() Header {
	return r.header
}

// Next returns the next tick, or io.EOF after the last one.
func (r *Reader) Next() (Tick, error) {
	rec, err := r.next()
	if err != nil {
		return Tick{}, err
	}
	if rec.Type != recordTick {
		return Tick{}, fmt.Errorf("line %d: unexpected record type %q", r.line, rec.Type)
	}

	t := Tick{Seq: rec.Seq, Events: make([]raw.Event, len(rec.Events))}
	for i, w := range rec.Events {
		ev, err := fromWire(w)
		if err != nil {
			return Tick{}, fmt.Errorf("line %d event %d: %w", r.line, i, err)
		}
		t.Events[i] = ev
	}
	return t, nil
}

// All reads every remaining tick.
func (r *Reader) All() ([]Tick, error) {
	var ticks []Tick
	for {
		t, err := r.Next()
		if err == io.EOF {
			return ticks, nil
		}
		if err != nil {
			return ticks, err
		}
		ticks = append(ticks, t)
	}
}

// Close closes the file opened by Open.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// next decodes the next non-blank line.
func (r *Reader) next() (record, error) {
	for r.sc.Scan() {
		r.line++
		line := r.sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec record
		if err := json.Unmarshal(line, &rec); err != nil {
			return record{}, fmt.Errorf("line %d: %w", r.line, err)
		}
		return rec, nil
	}
	if err := r.sc.Err(); err != nil {
		return record{}, err
	}
	return record{}, io.EOF
}
