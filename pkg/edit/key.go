package edit

import (
	"fmt"
	"strings"
)

// Key represents a single keyboard input, typically assembled from an escape
// sequence.
type Key struct {
	Rune rune
	Mod  Mod
}

// K constructs a new Key.
func K(r rune, mods ...Mod) Key {
	var mod Mod
	for _, m := range mods {
		mod |= m
	}
	return Key{r, mod}
}

// Mod represents a modifier key.
type Mod byte

// Values for Mod.
const (
	Ctrl Mod = 1 << iota
	Alt
)

// Special negative runes to represent function keys, used in the Rune field
// of the Key struct.
const (
	Up rune = -iota - 1
	Down
	Right
	Left
	Home
	End
	Delete
)

// Special keys whose Rune is the byte sent by the terminal.
const (
	Enter     rune = '\n'
	Backspace rune = 0x7f
)

var functionKeyNames = map[rune]string{
	Up: "Up", Down: "Down", Right: "Right", Left: "Left",
	Home: "Home", End: "End", Delete: "Delete",
	Enter: "Enter", Backspace: "Backspace",
}

func (k Key) String() string {
	var b strings.Builder
	if k.Mod&Ctrl != 0 {
		b.WriteString("Ctrl-")
	}
	if k.Mod&Alt != 0 {
		b.WriteString("Alt-")
	}
	if name, ok := functionKeyNames[k.Rune]; ok {
		b.WriteString(name)
	} else if k.Rune >= 0 {
		b.WriteRune(k.Rune)
	} else {
		fmt.Fprintf(&b, "(bad function key %d)", k.Rune)
	}
	return b.String()
}
