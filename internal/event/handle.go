package event

import "fmt"

// Toggler enables and disables the entry a Handle refers to.
type Toggler interface {
	// Toggle sets the enabled flag of the entry behind h.
	// Returns false if h does not refer to a live entry.
	Toggle(h Handle, enabled bool) bool

	// IsEnabled reports whether the entry behind h is enabled.
	IsEnabled(h Handle) bool
}

// Handle is the token returned by registration. It is the only way to
// enable or disable a registered handler later. The zero Handle refers to
// nothing and its methods are no-ops.
type Handle struct {
	category Category
	index    int
	epoch    uint64
	target   Toggler
}

// Category returns the handler category.
func (h Handle) Category() Category {
	return h.category
}

// Index returns the stable position of the handler within its category.
func (h Handle) Index() int {
	return h.index
}

// Valid returns true if the handle was issued by a registry.
func (h Handle) Valid() bool {
	return h.target != nil
}

// Enable resumes delivery to the handler.
func (h Handle) Enable() {
	h.SetEnabled(true)
}

// Disable stops delivery to the handler without removing it.
func (h Handle) Disable() {
	h.SetEnabled(false)
}

// SetEnabled sets the handler's enabled flag.
// Returns false if the handle is stale or zero.
func (h Handle) SetEnabled(enabled bool) bool {
	if h.target == nil {
		return false
	}
	return h.target.Toggle(h, enabled)
}

// Enabled reports whether the handler currently receives events.
func (h Handle) Enabled() bool {
	if h.target == nil {
		return false
	}
	return h.target.IsEnabled(h)
}

// String returns a debug representation like "key#3".
func (h Handle) String() string {
	return fmt.Sprintf("%s#%d", h.category, h.index)
}
