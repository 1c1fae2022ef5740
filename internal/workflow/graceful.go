package workflow

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/imtaco/showroom-live/internal/errors"
	"github.com/imtaco/showroom-live/internal/log"
)

const (
	ErrShutdownTimeout errors.Code = "shutdown timeout"
	ErrShutdownPanic   errors.Code = "shutdown panic"
)

type GracefulShutdownAction func(ctx context.Context)

// WaitGracefulShutdown blocks until ctx is done or SIGINT/SIGTERM arrives, then runs
// action with a context bounded by timeout.
func WaitGracefulShutdown(
	ctx context.Context,
	logger *log.Logger,
	action GracefulShutdownAction,
	timeout time.Duration,
) error {
	logger.Info("Graceful shutdown handler registered")

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(
		ctx,
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	<-ctx.Done()

	ctxClean, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic during graceful shutdown", log.Any("error", r))
				done <- errors.Newf(ErrShutdownPanic, "%v", r)
			}
		}()
		logger.Info("Starting graceful shutdown")
		action(ctxClean)
		done <- nil
	}()

	select {
	case <-ctxClean.Done():
		logger.Warn("Shutdown timeout exceeded, forcing exit", log.Duration("timeout", timeout))
		return errors.Newf(ErrShutdownTimeout, "cleanup exceeded %s", timeout)
	case err := <-done:
		if err == nil {
			logger.Info("Graceful shutdown completed")
		}
		return err
	}
}
