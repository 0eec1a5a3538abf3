package api

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
)

type Server struct {
	*http.Server
	shutdownTimeout time.Duration
	logger          zerolog.Logger
}

func NewServer(addr string, router http.Handler, shutdownTimeout time.Duration, logger zerolog.Logger) *Server {
	return &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
		shutdownTimeout: shutdownTimeout,
		logger:          logger,
	}
}

// StartWithGracefulShutdown blocks until the listener fails or the process
// receives SIGINT/SIGTERM.
func (s *Server) StartWithGracefulShutdown() error {
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	return s.run(shutdown)
}

func (s *Server) run(shutdown <-chan os.Signal) error {
	serverErrors := make(chan error, 1)

	go func() {
		serverErrors <- s.start()
	}()

	select {
	case err := <-serverErrors:
		return err

	case sig := <-shutdown:
		s.logger.Info().Str("signal", sig.String()).Msg("starting graceful shutdown")

		ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		if err := s.Shutdown(ctx); err != nil {
			s.logger.Error().Err(err).Msg("could not gracefully shutdown the server")

			if err := s.Close(); err != nil {
				s.logger.Error().Err(err).Msg("could not close server")
			}
		}
		s.logger.Info().Msg("server gracefully stopped")
		return nil
	}
}

func (s *Server) start() error {
	s.logger.Info().Str("addr", s.Addr).Msg("server listening")
	if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
