package appmode

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/UnendingLoop/MiniGrep/internal/presenter"
	"github.com/UnendingLoop/MiniGrep/internal/processor"
	"github.com/UnendingLoop/MiniGrep/internal/transport"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 5 * time.Second

// RunServer serves the search endpoint until ctx is done or the listener fails
func RunServer(ctx context.Context, ai *model.AppInit, log zerolog.Logger) error {
	// получить экземпляр сервера, HTTP-ответы всегда без escape-последовательностей
	srv := transport.NewServer(ai.Address, processor.New(presenter.Plain()), log)

	// запуск сервера
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("address", srv.Addr).Msg("server running")
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server stopped: %w", err)
		}
	}

	// Закрытие всех соединений сервера
	log.Info().Msg("server gracefully stopping...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server %q correctly: %w", ai.Address, err)
	}
	log.Info().Str("address", ai.Address).Msg("server is closed")

	return nil
}
