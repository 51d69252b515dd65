// Package cursor tracks which section of a page has focus and keeps it on
// screen. Sections have different heights, so the scroll offset is measured
// in lines rather than items.
package cursor

// Cursor manages the focused section and the line scroll offset of a page.
// Section heights and the viewport height are passed to methods rather than
// stored, since they change whenever the layout is re-rendered.
type Cursor struct {
	pos    int // Focused section (0-indexed)
	offset int // First visible line
	margin int // Lines to keep visible above/below the focused section
}

// New creates a Cursor with the given scroll margin in lines.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the focused section index.
func (c Cursor) Pos() int {
	return c.pos
}

// Offset returns the first visible line.
func (c Cursor) Offset() int {
	return c.offset
}

// Next focuses the following section, wrapping to the first.
func (c *Cursor) Next(count int) {
	if count == 0 {
		return
	}
	c.pos = (c.pos + 1) % count
}

// Prev focuses the preceding section, wrapping to the last.
func (c *Cursor) Prev(count int) {
	if count == 0 {
		return
	}
	c.pos = (c.pos - 1 + count) % count
}

// First focuses the first section and scrolls to the top.
func (c *Cursor) First() {
	c.pos = 0
	c.offset = 0
}

// Last focuses the last section.
func (c *Cursor) Last(count int) {
	if count == 0 {
		return
	}
	c.pos = count - 1
}

// Jump focuses section pos, clamped to [0, count).
func (c *Cursor) Jump(pos, count int) {
	if count == 0 {
		return
	}
	c.pos = clamp(pos, count-1)
}

// Follow adjusts the offset so the focused section is visible inside a
// viewport of height lines. A section taller than the viewport is shown from
// its first line.
func (c *Cursor) Follow(heights []int, height int) {
	if height <= 0 || len(heights) == 0 {
		return
	}
	c.ClampToBounds(len(heights))

	top := 0
	for _, h := range heights[:c.pos] {
		top += h
	}
	bottom := top + heights[c.pos]

	total := top
	for _, h := range heights[c.pos:] {
		total += h
	}

	if top-c.margin < c.offset {
		c.offset = max(top-c.margin, 0)
	}
	if bottom+c.margin > c.offset+height {
		c.offset = min(bottom+c.margin-height, top)
	}
	c.offset = clamp(c.offset, max(total-height, 0))
}

// ClampToBounds keeps the focus valid after the section count shrinks.
// Returns true if the cursor was adjusted.
func (c *Cursor) ClampToBounds(count int) bool {
	if count == 0 {
		changed := c.pos != 0 || c.offset != 0
		c.pos = 0
		c.offset = 0
		return changed
	}
	old := c.pos
	c.pos = clamp(c.pos, count-1)
	return c.pos != old
}

// VisibleLines returns the line range [start, end) to draw from a page of
// total lines.
func (c Cursor) VisibleLines(total, height int) (start, end int) {
	if total == 0 || height <= 0 {
		return 0, 0
	}
	start = min(c.offset, total)
	end = min(start+height, total)
	return start, end
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
