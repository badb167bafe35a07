package main

import (
	"io"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"
)

// closeTimeout bounds how long a signal waits for the input to close.
// Closing a blocking descriptor, such as a terminal, waits for the
// pending read to finish.
var closeTimeout = 100 * time.Millisecond

// raise delivers sig again once its default action is restored, and
// exits with the conventional status if delivery fails.
var raise = func(sig os.Signal) {
	if p, err := os.FindProcess(os.Getpid()); err == nil && p.Signal(sig) == nil {
		time.Sleep(closeTimeout)
	}
	os.Exit(exitStatus(sig))
}

// closeOnSignal closes c when one of the watched signals arrives, which
// makes a pending read on a pollable input fail. The signal is then
// restored to its default action and raised again, so the process ends
// even when the read cannot be interrupted. The returned function
// stops watching.
func closeOnSignal(c io.Closer, logger *zap.Logger) (stop func()) {
	sigch := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigch, watchedSignals...)
	go func() {
		var sig os.Signal
		select {
		case sig = <-sigch:
		case <-done:
			return
		}
		signal.Stop(sigch)
		signal.Reset(sig)
		logger.Debug("received signal, closing input", zap.Stringer("signal", sig))

		closed := make(chan struct{})
		go func() {
			if err := c.Close(); err != nil {
				logger.Warn("close input", zap.Error(err))
			}
			close(closed)
		}()
		select {
		case <-closed:
		case <-time.After(closeTimeout):
			logger.Debug("input still blocked", zap.Duration("waited", closeTimeout))
		}
		raise(sig)
	}()
	return func() {
		signal.Stop(sigch)
		close(done)
	}
}
