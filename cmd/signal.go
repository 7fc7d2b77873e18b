package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// AppendSignalHandling cancels ctx on the first interrupt so the harness
// stops waiting, and exits on the second.
func AppendSignalHandling(ctx context.Context) context.Context {
	ctx, cancel := context.WithCancel(ctx)

	cancelChan := make(chan os.Signal, 100)

	signal.Notify(cancelChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-cancelChan
		cancel()
		<-cancelChan
		os.Exit(1)
	}()

	return ctx
}
