// Package cursor tracks a selection index over a list of rows and computes
// the slice of rows that fits on screen.
package cursor

type Cursor struct {
	Index int
	Len   int
}

func (c *Cursor) Up() {
	if c.Index > 0 {
		c.Index--
	}
}

func (c *Cursor) Down() {
	if c.Index < c.Len-1 {
		c.Index++
	}
}

// SetLen updates the row count and keeps Index in range.
func (c *Cursor) SetLen(n int) {
	c.Len = n
	if c.Index >= n {
		c.Index = n - 1
	}
	if c.Index < 0 {
		c.Index = 0
	}
}

func (c Cursor) Valid() bool {
	return c.Index >= 0 && c.Index < c.Len
}

// Window returns the [start, end) range of rows to draw so that Index stays
// visible within height rows. A non-positive height shows everything.
func (c Cursor) Window(height int) (int, int) {
	if height <= 0 || c.Len <= height {
		return 0, c.Len
	}
	start := c.Index - height/2
	if start < 0 {
		start = 0
	}
	if start+height > c.Len {
		start = c.Len - height
	}
	return start, start + height
}
