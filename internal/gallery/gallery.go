// Package gallery holds the index math for a project's screenshot lightbox.
package gallery

// Wrap maps i into [0, n). It returns 0 when n is 0.
func Wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// Pair returns the two screenshots shown side by side by the preview strip.
func Pair(i, n int) (first, second int) {
	first = Wrap(i, n)
	return first, Wrap(first+1, n)
}

// Lightbox tracks which screenshot is open.
type Lightbox struct {
	n     int
	index int
	open  bool
}

func New(n int) *Lightbox {
	if n < 0 {
		n = 0
	}
	return &Lightbox{n: n}
}

// Open shows screenshot i, clamped to the gallery. Empty galleries never open.
func (l *Lightbox) Open(i int) {
	if l.n == 0 {
		return
	}
	switch {
	case i < 0:
		i = 0
	case i >= l.n:
		i = l.n - 1
	}
	l.index = i
	l.open = true
}

func (l *Lightbox) Close() { l.open = false }

func (l *Lightbox) Next() {
	if l.open {
		l.index = Wrap(l.index+1, l.n)
	}
}

func (l *Lightbox) Prev() {
	if l.open {
		l.index = Wrap(l.index-1, l.n)
	}
}

func (l *Lightbox) Index() int   { return l.index }
func (l *Lightbox) IsOpen() bool { return l.open }
func (l *Lightbox) Len() int     { return l.n }

// Action is a lightbox command triggered from the keyboard.
type Action int

const (
	ActionNone Action = iota
	ActionClose
	ActionPrev
	ActionNext
)

// KeyAction maps a KeyboardEvent.key value to an Action.
func KeyAction(key string) Action {
	switch key {
	case "Escape":
		return ActionClose
	case "ArrowLeft":
		return ActionPrev
	case "ArrowRight":
		return ActionNext
	default:
		return ActionNone
	}
}

// Apply runs a on the lightbox.
func (l *Lightbox) Apply(a Action) {
	switch a {
	case ActionClose:
		l.Close()
	case ActionPrev:
		l.Prev()
	case ActionNext:
		l.Next()
	}
}
