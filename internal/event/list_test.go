package event

import (
	"reflect"
	"testing"
)

// recorder collects handler invocations in order.
type recorder struct {
	calls []string
}

func (r *recorder) handler(name string) func() {
	return func() { r.calls = append(r.calls, name) }
}

func fire(l *List[func()]) int {
	return l.Fire(func(h func()) { h() })
}

func TestListFireOrder(t *testing.T) {
	l := NewList[func()](CategoryKey)
	rec := &recorder{}

	l.Add(rec.handler("a"))
	l.Add(rec.handler("b"))
	l.Add(rec.handler("c"))

	if n := fire(l); n != 3 {
		t.Errorf("Fire() = %d, want 3", n)
	}
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("calls = %v, want %v", rec.calls, want)
	}
}

func TestListDisableEnable(t *testing.T) {
	l := NewList[func()](CategoryKey)
	rec := &recorder{}

	l.Add(rec.handler("a"))
	hb := l.Add(rec.handler("b"))

	hb.Disable()
	if hb.Enabled() {
		t.Error("handle should report disabled")
	}
	fire(l)
	if !reflect.DeepEqual(rec.calls, []string{"a"}) {
		t.Errorf("calls = %v, want [a]", rec.calls)
	}

	hb.Enable()
	rec.calls = nil
	fire(l)
	if !reflect.DeepEqual(rec.calls, []string{"a", "b"}) {
		t.Errorf("calls = %v, want [a b]", rec.calls)
	}
	if l.Len() != 2 {
		t.Errorf("Len() = %d, want 2", l.Len())
	}
}

func TestListAddDuringPass(t *testing.T) {
	l := NewList[func()](CategoryKey)
	rec := &recorder{}

	added := false
	l.Add(func() {
		rec.calls = append(rec.calls, "outer")
		if !added {
			added = true
			l.Add(rec.handler("inner"))
		}
	})
	l.Add(rec.handler("tail"))

	fire(l)
	if !reflect.DeepEqual(rec.calls, []string{"outer", "tail"}) {
		t.Fatalf("first pass calls = %v, want [outer tail]", rec.calls)
	}

	// The handler added mid-pass runs in the next pass, ahead of the
	// restored entries.
	rec.calls = nil
	fire(l)
	want := []string{"inner", "outer", "tail"}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("second pass calls = %v, want %v", rec.calls, want)
	}
}

func TestListHandleStableAfterReorder(t *testing.T) {
	l := NewList[func()](CategoryKey)
	rec := &recorder{}

	var inner Handle
	ha := l.Add(func() {
		if !inner.Valid() {
			inner = l.Add(rec.handler("inner"))
		}
		rec.calls = append(rec.calls, "a")
	})
	hb := l.Add(rec.handler("b"))
	fire(l)

	if ha.Index() != 0 || hb.Index() != 1 || inner.Index() != 2 {
		t.Fatalf("indices = %d %d %d, want 0 1 2", ha.Index(), hb.Index(), inner.Index())
	}

	// Disabling by handle still hits the right entry after the dispatch
	// order changed.
	hb.Disable()
	rec.calls = nil
	fire(l)
	if !reflect.DeepEqual(rec.calls, []string{"inner", "a"}) {
		t.Errorf("calls = %v, want [inner a]", rec.calls)
	}
}

func TestListDisableDuringPass(t *testing.T) {
	l := NewList[func()](CategoryKey)
	rec := &recorder{}

	var hb Handle
	l.Add(func() {
		rec.calls = append(rec.calls, "a")
		hb.Disable()
	})
	hb = l.Add(rec.handler("b"))

	fire(l)
	if !reflect.DeepEqual(rec.calls, []string{"a", "b"}) {
		t.Errorf("in-progress pass calls = %v, want [a b]", rec.calls)
	}

	rec.calls = nil
	fire(l)
	if !reflect.DeepEqual(rec.calls, []string{"a"}) {
		t.Errorf("next pass calls = %v, want [a]", rec.calls)
	}
}

func TestListEnableDuringPass(t *testing.T) {
	l := NewList[func()](CategoryKey)
	rec := &recorder{}

	var hb Handle
	l.Add(func() {
		rec.calls = append(rec.calls, "a")
		hb.Enable()
	})
	hb = l.Add(rec.handler("b"))
	hb.Disable()

	fire(l)
	if !reflect.DeepEqual(rec.calls, []string{"a"}) {
		t.Errorf("in-progress pass calls = %v, want [a]", rec.calls)
	}

	rec.calls = nil
	fire(l)
	if !reflect.DeepEqual(rec.calls, []string{"a", "b"}) {
		t.Errorf("next pass calls = %v, want [a b]", rec.calls)
	}
}

func TestListNestedFireIsNoop(t *testing.T) {
	l := NewList[func()](CategoryKey)
	depth := 0
	calls := 0

	l.Add(func() {
		calls++
		depth++
		if depth > 5 {
			t.Fatal("nested fire recursed")
		}
		if n := fire(l); n != 0 {
			t.Errorf("nested Fire() = %d, want 0", n)
		}
		depth--
	})

	fire(l)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if n := fire(l); n != 1 {
		t.Errorf("Fire() after nested = %d, want 1", n)
	}
}

func TestListRestoreAfterPanic(t *testing.T) {
	l := NewList[func()](CategoryKey)
	l.Add(func() { panic("boom") })

	func() {
		defer func() { _ = recover() }()
		fire(l)
	}()

	calls := 0
	l.Fire(func(func()) { calls++ })
	if calls != 1 {
		t.Errorf("handler lost after panic: calls = %d, want 1", calls)
	}
}

func TestListClear(t *testing.T) {
	l := NewList[func()](CategoryKey)
	rec := &recorder{}

	old := l.Add(rec.handler("old"))
	l.Clear()
	if l.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", l.Len())
	}

	fresh := l.Add(rec.handler("fresh"))
	if old.Index() != fresh.Index() {
		t.Fatalf("expected index reuse after Clear, got %d and %d", old.Index(), fresh.Index())
	}
	if old.SetEnabled(false) {
		t.Error("stale handle should not toggle")
	}
	fire(l)
	if !reflect.DeepEqual(rec.calls, []string{"fresh"}) {
		t.Errorf("calls = %v, want [fresh]", rec.calls)
	}
}

func TestListClearDuringPass(t *testing.T) {
	l := NewList[func()](CategoryKey)
	rec := &recorder{}

	l.Add(func() {
		rec.calls = append(rec.calls, "a")
		l.Clear()
	})
	l.Add(rec.handler("b"))

	fire(l)
	rec.calls = nil
	fire(l)
	if len(rec.calls) != 0 {
		t.Errorf("cleared handlers resurrected: %v", rec.calls)
	}
}

func TestListGet(t *testing.T) {
	l := NewList[int](CategoryScroll)
	h := l.Add(42)

	if v, ok := l.Get(h); !ok || v != 42 {
		t.Errorf("Get() = (%d, %v), want (42, true)", v, ok)
	}

	other := NewList[int](CategoryKey)
	if _, ok := other.Get(h); ok {
		t.Error("Get() with foreign category should fail")
	}
}

func TestSnapshotLenCountsDisabled(t *testing.T) {
	l := NewList[func()](CategoryUTF8Key)
	h := l.Add(func() {})
	h.Disable()

	s := l.Detach()
	if s.Len() != 1 {
		t.Errorf("Snapshot.Len() = %d, want 1", s.Len())
	}
	if n := s.Each(func(f func()) { f() }); n != 0 {
		t.Errorf("Each() = %d, want 0", n)
	}
	l.Restore(s)
	if l.Len() != 1 {
		t.Errorf("Len() = %d, want 1", l.Len())
	}
}
