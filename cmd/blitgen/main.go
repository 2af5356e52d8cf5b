// Command blitgen instantiates the BlitMask templates for each storage width.
//
// Usage:
//
//	blitgen generate --widths 8,16,32,64 --out ./pkg/flags
//	blitgen check --out ./pkg/flags
//	blitgen init
//	blitgen watch --templates ./templates --out ./pkg/flags
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd(newApp(os.Stdout, os.Stderr))
	err := cmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, errDrift) {
			fmt.Fprintln(os.Stderr, "blitgen:", err)
		}
		os.Exit(1)
	}
}
