package sharedptr

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Destroyer is implemented by managed objects that must release resources
// when their last owner goes away.
type Destroyer interface {
	Destroy()
}

// destroyObject tears down a managed object that nobody owns anymore.
// Destroyer takes precedence over io.Closer.
func destroyObject(object interface{}) error {
	switch v := object.(type) {
	case Destroyer:
		v.Destroy()
		return nil
	case io.Closer:
		return v.Close()
	default:
		return nil
	}
}

func newDestructor[T any](opts pointerOptions) func(object *T) {
	return func(object *T) {
		defer opts.allocator.free()

		err := destroyObject(object)
		if err != nil {
			opts.logger.Warn("Error while closing managed object",
				zap.String("type", fmt.Sprintf("%T", object)), zap.Error(err))
			return
		}
		opts.logger.Debug("Managed object destroyed",
			zap.String("type", fmt.Sprintf("%T", object)))
	}
}
