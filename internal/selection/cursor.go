package selection

import (
	"fmt"

	"lyrix/internal/domain"
)

// None is the index meaning "nothing highlighted"
const None = -1

// Cursor tracks the highlighted position in the current result list.
// Index is always within [-1, n-1].
type Cursor struct {
	index int
	n     int
}

// NewCursor creates a cursor over an empty result list
func NewCursor() *Cursor {
	return &Cursor{index: None}
}

// Reset points the cursor at a fresh result list of length n
func (c *Cursor) Reset(n int) {
	if n < 0 {
		panic(fmt.Sprintf("selection: negative result count %d", n))
	}
	c.n = n
	c.index = None
}

// Index returns the highlighted position, or None
func (c *Cursor) Index() int {
	return c.index
}

// Len returns the length of the result list the cursor walks
func (c *Cursor) Len() int {
	return c.n
}

// Next advances cyclically; from None it lands on the first result
func (c *Cursor) Next() {
	if c.n == 0 {
		return
	}
	c.index = (c.index + 1) % c.n
	c.check()
}

// Previous retreats cyclically; from None it lands on the last result
func (c *Cursor) Previous() {
	if c.n == 0 {
		return
	}
	if c.index == None {
		c.index = c.n - 1
	} else {
		c.index = (c.index - 1 + c.n) % c.n
	}
	c.check()
}

// Set highlights a position directly, as a pointer hover does
func (c *Cursor) Set(index int) {
	if index < 0 || index >= c.n {
		panic(fmt.Sprintf("selection: index %d out of range [0, %d)", index, c.n))
	}
	c.index = index
}

// Valid reports whether index addresses a result
func (c *Cursor) Valid(index int) bool {
	return index >= 0 && index < c.n
}

// Confirm resolves the highlighted result. ok is false when nothing is
// highlighted.
func (c *Cursor) Confirm(results []domain.CatalogEntry) (domain.CatalogEntry, bool) {
	if len(results) != c.n {
		panic(fmt.Sprintf("selection: cursor tracks %d results, got %d", c.n, len(results)))
	}
	if c.index == None {
		return domain.CatalogEntry{}, false
	}
	return results[c.index], true
}

func (c *Cursor) check() {
	if c.index < None || c.index >= c.n {
		panic(fmt.Sprintf("selection: index %d escaped [-1, %d)", c.index, c.n))
	}
}
