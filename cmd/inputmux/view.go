package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// view draws a status line and the most recent event lines.
type view struct {
	screen tcell.Screen
	lines  []string
	max    int
	status string
	dirty  bool
}

func newView(screen tcell.Screen, limit int) *view {
	return &view{screen: screen, max: limit, dirty: true}
}

func (v *view) printf(format string, args ...any) {
	v.lines = append(v.lines, fmt.Sprintf(format, args...))
	if len(v.lines) > v.max {
		v.lines = v.lines[len(v.lines)-v.max:]
	}
	v.dirty = true
}

func (v *view) setStatus(format string, args ...any) {
	v.status = fmt.Sprintf(format, args...)
	v.dirty = true
}

func (v *view) draw() {
	if !v.dirty {
		return
	}
	v.dirty = false

	v.screen.Clear()
	_, height := v.screen.Size()

	header := tcell.StyleDefault.Reverse(true)
	v.text(0, v.status, header, true)

	rows := height - 1
	start := 0
	if len(v.lines) > rows {
		start = len(v.lines) - rows
	}
	for i, line := range v.lines[start:] {
		v.text(i+1, line, tcell.StyleDefault, false)
	}
	v.screen.Show()
}

func (v *view) text(row int, s string, style tcell.Style, fill bool) {
	width, _ := v.screen.Size()
	x := 0
	for _, r := range s {
		if x >= width {
			return
		}
		v.screen.SetContent(x, row, r, nil, style)
		x++
	}
	for ; fill && x < width; x++ {
		v.screen.SetContent(x, row, ' ', nil, style)
	}
}
