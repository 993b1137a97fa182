package http

import (
	"os"
	"os/signal"
	"syscall"
)

// GracefulShutdown. block until SIGINT/SIGTERM arrives or the server stops on its own.
// stopped delivers the server's exit error; a nil signal means the server stopped first.
func GracefulShutdown(stopped <-chan error) (os.Signal, error) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case sig := <-quit:
		return sig, nil
	case err := <-stopped:
		return nil, err
	}
}
