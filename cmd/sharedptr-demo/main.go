package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/QuangTung97/sharedptr"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	msg := "Hello, world!"
	p, err := sharedptr.New(&msg, sharedptr.WithLogger(logger))
	if err != nil {
		logger.Fatal("Fail to create shared pointer", zap.Error(err))
	}
	defer p.Destroy()

	fmt.Println(p.Value())
}
