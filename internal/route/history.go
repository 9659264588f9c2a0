package route

// History tracks the current location. Replacing it never grows a back
// stack; there is only ever one entry.
type History struct {
	current      string
	replacements int
}

func NewHistory(initial string) *History {
	return &History{current: initial}
}

func (h *History) ReplaceLocation(path string) {
	h.current = path
	h.replacements++
}

func (h *History) Current() string {
	return h.current
}

// Replacements counts ReplaceLocation calls since creation.
func (h *History) Replacements() int {
	return h.replacements
}
