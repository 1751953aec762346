package event

// entry is one registered handler.
type entry[T any] struct {
	handler T
	enabled bool
}

// List is the registry for one handler category.
type List[T any] struct {
	category Category
	epoch    uint64

	// arena is append-only; Handle.index points here.
	arena []*entry[T]

	// live is the dispatch order. It is detached during a pass.
	live []*entry[T]
}

// NewList creates an empty list for a category.
func NewList[T any](c Category) *List[T] {
	return &List[T]{category: c}
}

// Category returns the list's category.
func (l *List[T]) Category() Category {
	return l.category
}

// Add registers a handler at the end of the dispatch order.
// The returned handle never becomes invalid until Clear.
func (l *List[T]) Add(handler T) Handle {
	e := &entry[T]{handler: handler, enabled: true}
	l.arena = append(l.arena, e)
	l.live = append(l.live, e)

	return Handle{
		category: l.category,
		index:    len(l.arena) - 1,
		epoch:    l.epoch,
		target:   l,
	}
}

// Toggle implements Toggler.
func (l *List[T]) Toggle(h Handle, enabled bool) bool {
	e := l.lookup(h)
	if e == nil {
		return false
	}
	e.enabled = enabled
	return true
}

// IsEnabled implements Toggler.
func (l *List[T]) IsEnabled(h Handle) bool {
	e := l.lookup(h)
	return e != nil && e.enabled
}

// Get returns the handler behind h.
func (l *List[T]) Get(h Handle) (T, bool) {
	e := l.lookup(h)
	if e == nil {
		var zero T
		return zero, false
	}
	return e.handler, true
}

func (l *List[T]) lookup(h Handle) *entry[T] {
	if h.category != l.category || h.epoch != l.epoch {
		return nil
	}
	if h.index < 0 || h.index >= len(l.arena) {
		return nil
	}
	return l.arena[h.index]
}

// Len returns the number of registered handlers, enabled or not.
func (l *List[T]) Len() int {
	return len(l.arena)
}

// Clear removes every handler and invalidates all outstanding handles.
func (l *List[T]) Clear() {
	l.arena = nil
	l.live = nil
	l.epoch++
}

// Detach takes ownership of the dispatch order, leaving an empty one in its
// place, and records which entries are enabled at this instant.
func (l *List[T]) Detach() Snapshot[T] {
	entries := l.live
	l.live = nil

	enabled := make([]bool, len(entries))
	for i, e := range entries {
		enabled[i] = e.enabled
	}

	return Snapshot[T]{
		entries: entries,
		enabled: enabled,
		epoch:   l.epoch,
	}
}

// Restore puts a detached snapshot back after any entries added since it
// was taken. A snapshot taken before Clear is discarded.
func (l *List[T]) Restore(s Snapshot[T]) {
	if s.epoch != l.epoch {
		return
	}
	if len(l.live) == 0 {
		l.live = s.entries
		return
	}
	l.live = append(l.live, s.entries...)
}

// Fire runs one dispatch pass, calling fn for each handler enabled when the
// pass starts. The dispatch order is restored even if fn panics.
// Returns the number of handlers called.
func (l *List[T]) Fire(fn func(T)) int {
	s := l.Detach()
	defer l.Restore(s)
	return s.Each(fn)
}

// Snapshot is a detached dispatch order.
type Snapshot[T any] struct {
	entries []*entry[T]
	enabled []bool
	epoch   uint64
}

// Len returns the number of entries in the snapshot, enabled or not.
func (s Snapshot[T]) Len() int {
	return len(s.entries)
}

// Each calls fn for every entry that was enabled when the snapshot was taken,
// in dispatch order. Returns the number of calls.
func (s Snapshot[T]) Each(fn func(T)) int {
	n := 0
	for i, e := range s.entries {
		if !s.enabled[i] {
			continue
		}
		fn(e.handler)
		n++
	}
	return n
}
