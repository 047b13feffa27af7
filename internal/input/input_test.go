package input

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestParseBytes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Key
	}{
		{"left arrow", "\x1b[D", KeyLeft},
		{"right arrow", "\x1b[C", KeyRight},
		{"shift left", "\x1b[1;2D", KeyLeft},
		{"ctrl left", "\x1b[1;5D", KeyLeft},
		{"ctrl right", "\x1b[1;5C", KeyRight},
		{"application left", "\x1bOD", KeyLeft},
		{"application right", "\x1bOC", KeyRight},
		{"a", "a", KeyLeft},
		{"l", "l", KeyRight},
		{"space", " ", KeyFire},
		{"quit", "q", KeyQuit},
		{"ctrl-c", "\x03", KeyQuit},
		{"enter", "\r", KeyRestart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker(100 * time.Millisecond)
			ParseBytes([]byte(tt.in), tr, t0)

			keys := tr.Keys(t0)
			for k := Key(0); k < keyCount; k++ {
				if keys.Held(k) != (k == tt.want) {
					t.Errorf("Key %d: expected held=%v, got %v", k, k == tt.want, keys.Held(k))
				}
			}
		})
	}
}

func TestParseBytesIgnoresUnknownInput(t *testing.T) {
	tr := NewTracker(100 * time.Millisecond)
	ParseBytes([]byte("zx\x1b[A\x1b[B9"), tr, t0)

	if keys := tr.Keys(t0); keys != (Keys{}) {
		t.Errorf("Expected no keys held, got %v", keys)
	}
}

func TestParseBytesSwallowsEscapeSequences(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"delete", "\x1b[3~"},
		{"shift up", "\x1b[1;2A"},
		{"application up", "\x1bOA"},
		{"alt d", "\x1bd"},
		{"lone escape", "\x1b"},
		{"truncated csi", "\x1b[1;2"},
		{"truncated ss3", "\x1bO"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker(100 * time.Millisecond)
			ParseBytes([]byte(tt.in), tr, t0)

			if keys := tr.Keys(t0); keys != (Keys{}) {
				t.Errorf("Expected no keys held for %q, got %v", tt.in, keys)
			}
		})
	}
}

func TestParseBytesResumesAfterSequence(t *testing.T) {
	tr := NewTracker(100 * time.Millisecond)
	ParseBytes([]byte("\x1b[1;5D \x1bOCq"), tr, t0)

	want := Keys{}.With(KeyLeft).With(KeyFire).With(KeyRight).With(KeyQuit)
	if keys := tr.Keys(t0); keys != want {
		t.Errorf("Expected %v, got %v", want, keys)
	}
}

func TestTrackerHoldExpires(t *testing.T) {
	tr := NewTracker(100 * time.Millisecond)
	tr.Press(KeyFire, t0)

	if !tr.Keys(t0.Add(99 * time.Millisecond)).Held(KeyFire) {
		t.Error("Expected fire to be held within the hold duration")
	}
	if tr.Keys(t0.Add(100 * time.Millisecond)).Held(KeyFire) {
		t.Error("Expected fire to be released after the hold duration")
	}

	tr.Press(KeyLeft, t0)
	tr.Release(KeyLeft)
	if tr.Keys(t0).Held(KeyLeft) {
		t.Error("Expected Release to drop the key immediately")
	}

	tr.Press(KeyRight, t0)
	tr.Reset()
	if tr.Keys(t0).Held(KeyRight) {
		t.Error("Expected Reset to drop every key")
	}
}

func TestKeysHeldOutOfRange(t *testing.T) {
	keys := Keys{}.With(KeyFire).With(Key(99))
	if !keys.Held(KeyFire) {
		t.Error("Expected fire to be held")
	}
	if keys.Held(Key(99)) || keys.Held(Key(-1)) {
		t.Error("Expected unknown keys to never be held")
	}
}

func TestStreamEndsOnEOF(t *testing.T) {
	s := StartStream(strings.NewReader(" "))
	tr := NewTracker(100 * time.Millisecond)

	deadline := time.Now().Add(time.Second)
	for !tr.Ended() && time.Now().Before(deadline) {
		ReadInput(s, tr, t0)
		time.Sleep(time.Millisecond)
	}

	if !tr.Ended() {
		t.Fatal("Expected tracker to observe the end of input")
	}
	if !tr.Keys(t0).Held(KeyFire) {
		t.Error("Expected the byte read before EOF to press fire")
	}
}

func TestFromTcell(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want Key
		ok   bool
	}{
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), KeyLeft, true},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), KeyRight, true},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), KeyFire, true},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), KeyQuit, true},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), KeyRestart, true},
		{tcell.NewEventKey(tcell.KeyRune, 'é', tcell.ModNone), 0, false},
		{tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), 0, false},
	}

	for _, tt := range tests {
		got, ok := FromTcell(tt.ev)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("FromTcell(%v) = %v, %v; want %v, %v", tt.ev.Name(), got, ok, tt.want, tt.ok)
		}
	}
}
