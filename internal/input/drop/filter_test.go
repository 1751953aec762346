package drop

import (
	"reflect"
	"testing"
)

func TestExtension(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"a.png", "png"},
		{"dir/a.tar.gz", "gz"},
		{"README", ""},
		{"a.", ""},
		{".bashrc", "bashrc"},
		{"dir.d/file", "d/file"},
		{"b.PNG", "PNG"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := Extension(tt.path); got != tt.want {
				t.Errorf("Extension(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestFilter_Match(t *testing.T) {
	f := NewFilter("png", "jpg")

	tests := []struct {
		path string
		want bool
	}{
		{"a.png", true},
		{"b.PNG", false},
		{"c.txt", false},
		{"d.jpg", true},
		{"noext", false},
	}

	for _, tt := range tests {
		if got := f.Match(tt.path); got != tt.want {
			t.Errorf("Match(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestFilter_EmptyMatchesAll(t *testing.T) {
	f := NewFilter()
	if !f.Empty() {
		t.Error("NewFilter() should be empty")
	}
	for _, p := range []string{"a.png", "noext", ""} {
		if !f.Match(p) {
			t.Errorf("empty filter rejected %q", p)
		}
	}
	if f.String() != "*" {
		t.Errorf("String() = %q, want *", f.String())
	}
}

func TestFilter_DoesNotAliasInput(t *testing.T) {
	exts := []string{"png"}
	f := NewFilter(exts...)
	exts[0] = "txt"
	if !f.Match("a.png") {
		t.Error("filter changed when caller slice was modified")
	}
}

func TestPerPath(t *testing.T) {
	var got []string
	h := PerPath(NewFilter("png", "jpg"), func(p string) {
		got = append(got, p)
	})

	h([]string{"a.png", "b.PNG", "c.txt", "d.jpg"})

	want := []string{"a.png", "d.jpg"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPerPath_NoFilter(t *testing.T) {
	var got []string
	h := PerPath(nil, func(p string) { got = append(got, p) })

	h([]string{"x", "y.z"})
	if len(got) != 2 {
		t.Errorf("got %v, want both paths", got)
	}
}

func TestBatch(t *testing.T) {
	var calls [][]string
	h := Batch(NewFilter("png", "jpg"), func(p []string) {
		calls = append(calls, p)
	})

	h([]string{"a.png", "b.PNG", "c.txt", "d.jpg"})
	h([]string{"e.txt"})

	if len(calls) != 2 {
		t.Fatalf("batch called %d times, want 2", len(calls))
	}
	if want := []string{"a.png", "d.jpg"}; !reflect.DeepEqual(calls[0], want) {
		t.Errorf("first batch = %v, want %v", calls[0], want)
	}
	if calls[1] == nil || len(calls[1]) != 0 {
		t.Errorf("second batch = %#v, want empty non-nil slice", calls[1])
	}
}
