package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/brunori/hallpass/internal/logutil"
)

// Serve runs handler on bind until ctx is cancelled, then drains open
// connections for up to a minute before returning.
func Serve(ctx context.Context, bind string, handler http.Handler) error {
	log := logutil.GetOrDefault(ctx).With().Str("server.addr", bind).Logger()
	server := http.Server{
		Handler:           handler,
		Addr:              bind,
		ReadTimeout:       time.Minute,
		WriteTimeout:      time.Minute,
		ReadHeaderTimeout: time.Minute,
		IdleTimeout:       time.Minute * 5,
		BaseContext: func(_ net.Listener) context.Context {
			return logutil.WithLogger(context.Background(), log)
		},
	}
	failed := make(chan error, 1)
	go func() {
		log.Info().Msg("Starting HTTP server")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			failed <- err
		}
		close(failed)
	}()
	select {
	case err := <-failed:
		return err
	case <-ctx.Done():
	}
	log.Info().Msg("Initiating shutdown process")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), time.Minute)
	defer cancelShutdown()
	err := server.Shutdown(shutdownCtx)
	log.Info().Msg("Shutdown completed")
	return err
}
