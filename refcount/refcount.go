package refcount

import (
	"go.uber.org/atomic"
)

// Block is the control block shared by every owner of a managed object.
// The counter starts at 1 for the implicit first owner, the release that
// brings it to 0 destroys the object.
type Block[T any] struct {
	count      atomic.Int64
	object     *T
	destructor func(object *T)
}

// NewBlock ...
func NewBlock[T any](object *T, destructor func(object *T)) *Block[T] {
	b := &Block[T]{
		object:     object,
		destructor: destructor,
	}
	b.count.Store(1)
	return b
}

// Object ...
func (b *Block[T]) Object() *T {
	return b.object
}

// UseCount returns a point-in-time owner count, only for diagnostics.
func (b *Block[T]) UseCount() int64 {
	return b.count.Load()
}

// AddRef registers one more owner. The caller must already own a reference.
func (b *Block[T]) AddRef() {
	newVal := b.count.Inc()
	if newVal <= 1 {
		panic("refcount: add reference on a released block")
	}
}

// Release drops one owner and reports whether it was the last one.
// Exactly one of any set of concurrent releases observes the terminal
// transition and runs the destructor.
func (b *Block[T]) Release() bool {
	newVal := b.count.Dec()
	if newVal > 0 {
		return false
	}
	if newVal < 0 {
		panic("refcount: block released too often")
	}

	object := b.object
	b.object = nil
	if b.destructor != nil {
		b.destructor(object)
	}
	b.destructor = nil
	return true
}
