// Package input turns host key events into the set of currently held keys.
package input

import (
	"bufio"
	"io"
	"time"
)

// Key is a logical game key, independent of the physical key that produced it.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyFire
	KeyQuit
	KeyRestart
	keyCount
)

// KeySet reports which logical keys are currently held.
type KeySet interface {
	Held(k Key) bool
}

// Keys is a fixed set of held keys.
type Keys [keyCount]bool

// Held reports whether k is in the set. Unknown keys are never held.
func (ks Keys) Held(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	return ks[k]
}

// With returns a copy of the set with k held.
func (ks Keys) With(k Key) Keys {
	if k >= 0 && k < keyCount {
		ks[k] = true
	}
	return ks
}

// Tracker tracks the last time each key was pressed. A key is held while its
// last press is within the hold duration, which bridges the gap between a
// terminal's auto-repeated presses.
type Tracker struct {
	hold  time.Duration
	last  [keyCount]time.Time
	ended bool // Input source closed
}

// NewTracker creates a tracker that treats a key as held for hold after each press.
func NewTracker(hold time.Duration) *Tracker {
	return &Tracker{hold: hold}
}

// Press records a press of k at now.
func (t *Tracker) Press(k Key, now time.Time) {
	if k >= 0 && k < keyCount {
		t.last[k] = now
	}
}

// Release forgets k immediately, for hosts that do see key-ups.
func (t *Tracker) Release(k Key) {
	if k >= 0 && k < keyCount {
		t.last[k] = time.Time{}
	}
}

// Reset releases every key, e.g. when a new game starts so that the key that
// restarted it does not leak into the first frames.
func (t *Tracker) Reset() {
	t.last = [keyCount]time.Time{}
}

// Keys returns the keys held at now.
func (t *Tracker) Keys(now time.Time) Keys {
	var ks Keys
	for k, at := range t.last {
		ks[k] = !at.IsZero() && now.Sub(at) < t.hold
	}
	return ks
}

// Ended reports whether the input source behind the tracker has closed.
func (t *Tracker) Ended() bool {
	return t.ended
}

// Stream delivers input bytes via a channel.
type Stream struct {
	ch chan byte
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The channel is closed when r returns an error (including io.EOF).
func StartStream(r io.Reader) *Stream {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}

	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		defer close(s.ch)
		for {
			b, err := br.ReadByte()
			if err != nil {
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking) and
// records the keys they press in t.
func ReadInput(s *Stream, t *Tracker, now time.Time) {
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				t.ended = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	ParseBytes(buf, t, now)
}

// ParseBytes records the keys pressed by raw terminal input.
// Escape sequences are consumed whole; anything unrecognized is ignored.
func ParseBytes(buf []byte, t *Tracker, now time.Time) {
	for i := 0; i < len(buf); i++ {
		if buf[i] == '\x1b' {
			n, k, ok := parseEscape(buf[i:])
			if ok {
				t.Press(k, now)
			}
			i += n - 1
			continue
		}

		if k, ok := keyForByte(buf[i]); ok {
			t.Press(k, now)
		}
	}
}

// parseEscape reads the escape sequence at the start of data and returns how
// many bytes it spans. A truncated sequence consumes the rest of data.
func parseEscape(data []byte) (int, Key, bool) {
	if len(data) < 2 {
		return 1, 0, false
	}

	switch {
	case data[1] == '[':
		return parseCSI(data)
	case data[1] == 'O':
		return parseSS3(data)
	case data[1] >= 0x20 && data[1] < 0x7f:
		return 2, 0, false // Alt+key
	}
	return 1, 0, false
}

// parseCSI reads ESC [ <params> <final>. Modifier parameters are ignored, so
// Shift+Left and Ctrl+Left still move left.
func parseCSI(data []byte) (int, Key, bool) {
	for end := 2; end < len(data); end++ {
		b := data[end]
		switch {
		case b >= 0x40 && b <= 0x7e:
			k, ok := arrowKey(b)
			return end + 1, k, ok
		case b < 0x20 || b > 0x7e:
			return end, 0, false
		}
	}
	return len(data), 0, false
}

// parseSS3 reads ESC O <final>, sent for arrows in application cursor mode.
func parseSS3(data []byte) (int, Key, bool) {
	if len(data) < 3 {
		return len(data), 0, false
	}
	k, ok := arrowKey(data[2])
	return 3, k, ok
}

func arrowKey(final byte) (Key, bool) {
	switch final {
	case 'C':
		return KeyRight, true
	case 'D':
		return KeyLeft, true
	}
	return 0, false
}

func keyForByte(b byte) (Key, bool) {
	switch b {
	case 'a', 'A', 'h', 'H':
		return KeyLeft, true
	case 'd', 'D', 'l', 'L':
		return KeyRight, true
	case ' ':
		return KeyFire, true
	case 'q', 'Q', 0x03: // Ctrl+C arrives as a byte in raw mode
		return KeyQuit, true
	case '\n', '\r':
		return KeyRestart, true
	}
	return 0, false
}
