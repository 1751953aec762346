package event

import "fmt"

// Category identifies a handler list.
type Category uint8

const (
	CategoryKey Category = iota
	CategoryUTF8Key
	CategoryMouseButton
	CategoryScroll
	CategoryCursorMovement
	CategoryCursorPosition
	CategoryWindowResize
	CategoryCursorHold
	CategoryPathDrop

	// NumCategories is the number of handler categories.
	NumCategories = int(CategoryPathDrop) + 1
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case CategoryKey:
		return "key"
	case CategoryUTF8Key:
		return "utf8-key"
	case CategoryMouseButton:
		return "mouse-button"
	case CategoryScroll:
		return "scroll"
	case CategoryCursorMovement:
		return "cursor-movement"
	case CategoryCursorPosition:
		return "cursor-position"
	case CategoryWindowResize:
		return "window-resize"
	case CategoryCursorHold:
		return "cursor-hold"
	case CategoryPathDrop:
		return "path-drop"
	default:
		return fmt.Sprintf("category(%d)", c)
	}
}

// Categories returns every category in declaration order.
func Categories() []Category {
	cats := make([]Category, NumCategories)
	for i := range cats {
		cats[i] = Category(i)
	}
	return cats
}
