package sharedptr

import (
	"go.uber.org/zap"
)

type pointerOptions struct {
	logger    *zap.Logger
	allocator blockAllocator
}

// Option ...
type Option func(opts *pointerOptions)

func computeOptions(options ...Option) pointerOptions {
	result := pointerOptions{
		logger:    zap.NewNop(),
		allocator: globalAllocator,
	}
	for _, o := range options {
		o(&result)
	}
	return result
}

// WithLogger sets the logger used when the control block cannot be allocated
// and when the managed object is torn down.
func WithLogger(logger *zap.Logger) Option {
	return func(opts *pointerOptions) {
		opts.logger = logger
	}
}

func withAllocator(allocator blockAllocator) Option {
	return func(opts *pointerOptions) {
		opts.allocator = allocator
	}
}
