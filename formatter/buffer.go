package formatter

// growQuantum rounds every growth up so that messages of similar length
// share one allocation.
const growQuantum = 64

// Buffer is a growable byte buffer holding one record at a time. It is not
// safe for concurrent use; a goroutine owns it between Pool.Get and Pool.Put.
type Buffer struct {
	b []byte

	// template state, valid while owner is the formatter that wrote it
	owner    *Formatter
	tid      int
	classTag string
	hasClass bool

	grows int
}

// NewBuffer returns a buffer with size bytes already allocated.
func NewBuffer(size int) *Buffer {
	return &Buffer{b: make([]byte, size)}
}

// Len returns the number of usable bytes.
func (b *Buffer) Len() int {
	return len(b.b)
}

// Grows returns how many times the buffer has been reallocated.
func (b *Buffer) Grows() int {
	return b.grows
}

// Grow makes at least minSize bytes usable. Existing bytes are kept, so a
// template written before the growth stays valid. It reports whether a
// reallocation happened.
func (b *Buffer) Grow(minSize int) bool {
	if len(b.b) >= minSize {
		return false
	}
	n := (minSize + growQuantum - 1) &^ (growQuantum - 1)
	nb := make([]byte, n)
	copy(nb, b.b)
	b.b = nb
	b.grows++
	return true
}
