package memory

import "sync"

// Pool is a reusable typed object pool backing the engine's order arena.
type Pool[T any] struct {
	pool *sync.Pool
}

// NewPool creates a pool with the given constructor.
func NewPool[T any](constructor func() *T) *Pool[T] {
	return &Pool[T]{
		pool: &sync.Pool{
			New: func() any { return constructor() },
		},
	}
}

// Get retrieves an object from the pool. The object may hold stale state;
// callers overwrite it fully.
func (p *Pool[T]) Get() *T {
	return p.pool.Get().(*T)
}

// Put returns an object to the pool.
func (p *Pool[T]) Put(obj *T) {
	p.pool.Put(obj)
}
