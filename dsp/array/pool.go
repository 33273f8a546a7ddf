package array

import "sync"

// Pool provides sync.Pool-based Array reuse to reduce GC pressure in
// real-time processing loops.
type Pool[T Element] struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool[T Element]() *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return New[T](0)
			},
		},
	}
}

// Get returns an empty Array with at least the requested capacity.
// Callers should return it via Put when done.
func (p *Pool[T]) Get(capacity int) *Array[T] {
	a := p.pool.Get().(*Array[T])
	a.Reset()
	a.Resize(capacity)
	return a
}

// Put returns a to the pool. The caller must not use a afterwards.
func (p *Pool[T]) Put(a *Array[T]) {
	if a == nil {
		return
	}
	p.pool.Put(a)
}
