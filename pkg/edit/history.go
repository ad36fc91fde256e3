package edit

// In-memory command history with a walking cursor. The cursor sits at
// len(cmds) when not walking.
type history struct {
	cmds  []string
	index int
	// Content of the line when the walk started, restored when walking past
	// the newest entry.
	pending string
}

func (h *history) add(cmd string) {
	if cmd != "" && (len(h.cmds) == 0 || h.cmds[len(h.cmds)-1] != cmd) {
		h.cmds = append(h.cmds, cmd)
	}
	h.index = len(h.cmds)
}

// Moves the cursor to the previous entry and returns it. It returns false if
// there are no older entries.
func (h *history) prev(current string) (string, bool) {
	if h.index == 0 {
		return "", false
	}
	if h.index == len(h.cmds) {
		h.pending = current
	}
	h.index--
	return h.cmds[h.index], true
}

// Moves the cursor to the next entry and returns it. It returns false if the
// cursor is not walking.
func (h *history) next() (string, bool) {
	if h.index >= len(h.cmds) {
		return "", false
	}
	h.index++
	if h.index == len(h.cmds) {
		return h.pending, true
	}
	return h.cmds[h.index], true
}
