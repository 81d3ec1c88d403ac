package server

import (
	"context"
	"errors"
	"net"
	"net/http"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Serve handles HTTP requests on ln until ctx is cancelled, then closes the
// server and every open connection at once. In-flight requests are not
// drained and no timeouts are applied.
//
// Serve returns nil after a cancellation. It closes ln.
func Serve(ctx context.Context, ln net.Listener, handler http.Handler, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	// "OPTIONS *" goes to handler too, so it gets the CORS headers.
	srv := &http.Server{
		Handler:                      handler,
		ErrorLog:                     zap.NewStdLog(logger.Named("http")),
		DisableGeneralOptionsHandler: true,
	}

	done := make(chan error, 1)
	go func() {
		done <- srv.Serve(ln)
	}()

	select {
	case err := <-done:
		return serveError(err)
	case <-ctx.Done():
		closeErr := srv.Close()
		return multierr.Append(closeErr, serveError(<-done))
	}
}

func serveError(err error) error {
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
