// Command hybrid builds a hybrid image from two or three sources and writes
// every stage of the computation to disk.
//
//	hybrid file far.png near.png
//	hybrid text HI LO --ext png --out ./out
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
