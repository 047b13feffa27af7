package input

import "github.com/gdamore/tcell/v2"

// FromTcell maps a tcell key event to a logical key.
func FromTcell(ev *tcell.EventKey) (Key, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return KeyLeft, true
	case tcell.KeyRight:
		return KeyRight, true
	case tcell.KeyEnter:
		return KeyRestart, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return KeyQuit, true
	case tcell.KeyRune:
		r := ev.Rune()
		if r > 0x7f {
			return 0, false
		}
		return keyForByte(byte(r))
	}
	return 0, false
}
