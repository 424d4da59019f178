package formatter

import "sync"

const (
	// defaultBufferSize covers the prefix, an 8 byte tag and a short message.
	defaultBufferSize = 256
	// maxPooledSize keeps one huge message from pinning memory forever.
	maxPooledSize = 64 * 1024
)

// Pool hands out Buffers. A buffer taken with Get belongs to the caller
// until it is returned with Put.
type Pool struct {
	pool sync.Pool
}

// NewPool creates an empty pool.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() interface{} {
				return NewBuffer(defaultBufferSize)
			},
		},
	}
}

// Get retrieves a Buffer from the pool.
func (p *Pool) Get() *Buffer {
	return p.pool.Get().(*Buffer)
}

// Put returns a Buffer to the pool.
func (p *Pool) Put(b *Buffer) {
	if b == nil || b.Len() > maxPooledSize {
		return
	}
	p.pool.Put(b)
}
