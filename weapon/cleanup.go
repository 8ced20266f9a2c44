package weapon

// CleanupList is an ordered set of undo callbacks for one grab.
type CleanupList struct {
	fns []func()
}

func (l *CleanupList) Add(fn func()) {
	if fn == nil {
		return
	}
	l.fns = append(l.fns, fn)
}

// Drain runs every registered callback once, in registration order. The list
// is emptied before the first callback runs, so a nested Drain sees nothing
// and callbacks added during the drain wait for the next one.
func (l *CleanupList) Drain() {
	fns := l.fns
	l.fns = nil
	for _, fn := range fns {
		fn()
	}
}

// Clear drops callbacks without running them.
func (l *CleanupList) Clear() {
	l.fns = nil
}

func (l *CleanupList) Len() int {
	return len(l.fns)
}
