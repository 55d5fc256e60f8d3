// Package sharedptr provides Pointer, a reference counted handle that lets
// several owners share one heap object and tears the object down exactly once,
// when the last owner lets go.
//
// A Pointer must be copied with Clone or Assign. A plain Go assignment moves the
// ownership: only one of the two values may be destroyed afterwards.
//
// Distinct Pointer values sharing the same object can be used from different
// goroutines concurrently. A single Pointer value must not be mutated
// concurrently without external synchronization.
package sharedptr

import (
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/QuangTung97/sharedptr/refcount"
)

// Pointer ...
type Pointer[T any] struct {
	block *refcount.Block[T]
}

// New makes the returned Pointer the sole owner of v. A nil v gives an empty
// Pointer. When the control block cannot be allocated, v is destroyed before
// the *AllocationError is returned.
func New[T any](v *T, options ...Option) (Pointer[T], error) {
	if v == nil {
		return Pointer[T]{}, nil
	}

	opts := computeOptions(options...)

	err := opts.allocator.allocate()
	if err != nil {
		opts.logger.Error("Fail to allocate control block", zap.Error(err))
		return Pointer[T]{}, multierr.Append(&AllocationError{Err: err}, destroyObject(v))
	}

	return Pointer[T]{
		block: refcount.NewBlock(v, newDestructor[T](opts)),
	}, nil
}

// Get returns the managed object without transferring ownership, nil if empty.
func (p *Pointer[T]) Get() *T {
	if p.block == nil {
		return nil
	}
	return p.block.Object()
}

// Value dereferences the managed object. Panics if p is empty.
func (p *Pointer[T]) Value() T {
	return *p.Get()
}

// Empty ...
func (p *Pointer[T]) Empty() bool {
	return p.block == nil
}

// UseCount returns the number of owners sharing the managed object, 0 if empty.
// The value may be stale as soon as it is returned.
func (p *Pointer[T]) UseCount() int {
	if p.block == nil {
		return 0
	}
	return int(p.block.UseCount())
}

// Clone returns a new owner of the same managed object.
func (p *Pointer[T]) Clone() Pointer[T] {
	if p.block == nil {
		return Pointer[T]{}
	}
	p.block.AddRef()
	return Pointer[T]{block: p.block}
}

// Swap exchanges the managed objects of p and other. Counters are untouched.
func (p *Pointer[T]) Swap(other *Pointer[T]) {
	p.block, other.block = other.block, p.block
}

// Assign makes p an owner of the object managed by other, releasing the
// object p was owning. Safe for self assignment and between co-owners.
func (p *Pointer[T]) Assign(other Pointer[T]) {
	tmp := other.Clone()
	p.Swap(&tmp)
	tmp.Destroy()
}

// Reset releases the managed object and leaves p empty.
func (p *Pointer[T]) Reset() {
	var tmp Pointer[T]
	p.Swap(&tmp)
	tmp.Destroy()
}

// ResetTo releases the managed object then makes p the sole owner of v.
// On error p is left empty and v has been destroyed.
func (p *Pointer[T]) ResetTo(v *T, options ...Option) error {
	p.Reset()

	tmp, err := New(v, options...)
	if err != nil {
		return err
	}
	p.Swap(&tmp)
	return nil
}

// Destroy releases the managed object, p becomes empty.
// Usually called with defer right after New or Clone.
func (p *Pointer[T]) Destroy() {
	b := p.block
	if b == nil {
		return
	}
	p.block = nil
	b.Release()
}
