//go:build tools
// +build tools

package sharedptr

import (
	_ "github.com/matryer/moq"
	_ "github.com/mgechev/revive"
)
