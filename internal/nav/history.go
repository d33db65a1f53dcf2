// Package nav implements per-pane navigation history: an ordered sequence
// of visited paths plus a cursor for back/forward movement.
package nav

// History tracks visited paths. Construct via New.
type History struct {
	paths  []string
	cursor int // index of the current path, -1 when empty
}

// New returns an empty history.
func New() *History {
	return &History{cursor: -1}
}

// Push records a visit to path. Any forward entries beyond the cursor are
// truncated, and pushing the path already at the cursor is suppressed so
// that a refresh does not pollute the back stack.
func (h *History) Push(path string) {
	if h.cursor >= 0 && h.paths[h.cursor] == path {
		return
	}
	h.paths = append(h.paths[:h.cursor+1], path)
	h.cursor = len(h.paths) - 1
}

// Current returns the path at the cursor, or "" when the history is empty.
func (h *History) Current() string {
	if h.cursor < 0 {
		return ""
	}
	return h.paths[h.cursor]
}

// CanBack reports whether Back has somewhere to go.
func (h *History) CanBack() bool {
	return h.cursor > 0
}

// CanForward reports whether Forward has somewhere to go.
func (h *History) CanForward() bool {
	return h.cursor >= 0 && h.cursor < len(h.paths)-1
}

// Back moves the cursor one step back and returns the new current path.
// With nothing to go back to, it returns "" and false.
func (h *History) Back() (string, bool) {
	if !h.CanBack() {
		return "", false
	}
	h.cursor--
	return h.paths[h.cursor], true
}

// Forward moves the cursor one step forward and returns the new current
// path. With nothing ahead, it returns "" and false.
func (h *History) Forward() (string, bool) {
	if !h.CanForward() {
		return "", false
	}
	h.cursor++
	return h.paths[h.cursor], true
}

// Len returns the number of recorded paths.
func (h *History) Len() int {
	return len(h.paths)
}
