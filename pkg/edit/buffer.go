package edit

import (
	"strings"
	"unicode/utf8"
)

// Buffer is the content of the line being edited.
type Buffer struct {
	// Content of the buffer.
	Content string
	// Position of the dot (more commonly known as the cursor), as a byte index
	// into Content.
	Dot int
}

// InsertAtDot inserts text at the dot and moves the dot after it.
func (b *Buffer) InsertAtDot(text string) {
	*b = Buffer{
		Content: b.Content[:b.Dot] + text + b.Content[b.Dot:],
		Dot:     b.Dot + len(text),
	}
}

// Backspace removes the rune before the dot.
func (b *Buffer) Backspace() {
	_, chop := utf8.DecodeLastRuneInString(b.Content[:b.Dot])
	*b = Buffer{
		Content: b.Content[:b.Dot-chop] + b.Content[b.Dot:],
		Dot:     b.Dot - chop,
	}
}

// DeleteRight removes the rune after the dot.
func (b *Buffer) DeleteRight() {
	_, chop := utf8.DecodeRuneInString(b.Content[b.Dot:])
	b.Content = b.Content[:b.Dot] + b.Content[b.Dot+chop:]
}

// MoveLeft moves the dot one rune to the left.
func (b *Buffer) MoveLeft() {
	_, w := utf8.DecodeLastRuneInString(b.Content[:b.Dot])
	b.Dot -= w
}

// MoveRight moves the dot one rune to the right.
func (b *Buffer) MoveRight() {
	_, w := utf8.DecodeRuneInString(b.Content[b.Dot:])
	b.Dot += w
}

// KillLeft removes everything before the dot.
func (b *Buffer) KillLeft() {
	*b = Buffer{Content: b.Content[b.Dot:]}
}

// KillRight removes everything after the dot.
func (b *Buffer) KillRight() {
	b.Content = b.Content[:b.Dot]
}

// KillWordLeft removes the word before the dot, along with any spaces between
// the word and the dot.
func (b *Buffer) KillWordLeft() {
	left := strings.TrimRight(b.Content[:b.Dot], " ")
	i := strings.LastIndex(left, " ") + 1
	*b = Buffer{
		Content: b.Content[:i] + b.Content[b.Dot:],
		Dot:     i,
	}
}
