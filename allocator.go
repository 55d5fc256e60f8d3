package sharedptr

import (
	"go.uber.org/atomic"
)

//go:generate moq -out allocator_mocks_test.go . blockAllocator

type blockAllocator interface {
	allocate() error
	free()
}

type heapAllocator struct {
	allocated atomic.Int64
	freed     atomic.Int64
}

var globalAllocator = &heapAllocator{}

var _ blockAllocator = globalAllocator

func (a *heapAllocator) allocate() error {
	a.allocated.Inc()
	return nil
}

func (a *heapAllocator) free() {
	a.freed.Inc()
}

func (a *heapAllocator) live() int64 {
	return a.allocated.Load() - a.freed.Load()
}

// LiveBlocks returns the number of control blocks currently alive.
// Point-in-time value, useful for leak assertions in tests.
func LiveBlocks() int64 {
	return globalAllocator.live()
}
