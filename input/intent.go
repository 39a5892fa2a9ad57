package input

import "github.com/gdamore/tcell/v2"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit  // q, Esc, Ctrl+C
	IntentPause // p

	// Ship control
	IntentBoostUp    // Up, w, k
	IntentBoostDown  // Down, s, j
	IntentBoostLeft  // Left, a, h
	IntentBoostRight // Right, d, l
	IntentFire       // Space, Enter
)

var intentNames = map[IntentType]string{
	IntentNone:       "none",
	IntentQuit:       "quit",
	IntentPause:      "pause",
	IntentBoostUp:    "boost_up",
	IntentBoostDown:  "boost_down",
	IntentBoostLeft:  "boost_left",
	IntentBoostRight: "boost_right",
	IntentFire:       "fire",
}

func (i IntentType) String() string {
	if name, ok := intentNames[i]; ok {
		return name
	}
	return "unknown"
}

var keyIntents = map[tcell.Key]IntentType{
	tcell.KeyEscape: IntentQuit,
	tcell.KeyCtrlC:  IntentQuit,
	tcell.KeyUp:     IntentBoostUp,
	tcell.KeyDown:   IntentBoostDown,
	tcell.KeyLeft:   IntentBoostLeft,
	tcell.KeyRight:  IntentBoostRight,
	tcell.KeyEnter:  IntentFire,
}

var runeIntents = map[rune]IntentType{
	'q': IntentQuit,
	'p': IntentPause,
	'w': IntentBoostUp,
	'k': IntentBoostUp,
	's': IntentBoostDown,
	'j': IntentBoostDown,
	'a': IntentBoostLeft,
	'h': IntentBoostLeft,
	'd': IntentBoostRight,
	'l': IntentBoostRight,
	' ': IntentFire,
}

// Translate maps a key event to an intent, IntentNone when unbound
func Translate(ev *tcell.EventKey) IntentType {
	if ev == nil {
		return IntentNone
	}
	return TranslateKey(ev.Key(), ev.Rune())
}

// TranslateKey maps a key and, for tcell.KeyRune, its character
func TranslateKey(key tcell.Key, ch rune) IntentType {
	if key == tcell.KeyRune {
		return runeIntents[ch]
	}
	return keyIntents[key]
}
