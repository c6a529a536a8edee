// Package appmode provides 2 methods to work in preliminarily defined mode 'cli' and 'server'
package appmode

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/UnendingLoop/MiniGrep/internal/presenter"
	"github.com/UnendingLoop/MiniGrep/internal/processor"
	"github.com/UnendingLoop/MiniGrep/internal/reader"
	"github.com/rs/zerolog"
)

// RunCLI searches the file from ai.SearchParam and writes matching lines to out.
// Read errors are returned before anything is written.
func RunCLI(ctx context.Context, out io.Writer, ai *model.AppInit, log zerolog.Logger) error {
	// прочитать весь файл целиком
	text, err := reader.ReadDocument(ai.SearchParam.Source)
	if err != nil {
		return err
	}
	log.Debug().Str("file", ai.SearchParam.Source).Int("bytes", len(text)).Msg("document loaded")

	proc := processor.New(presenter.ForMode(ai.Color, presenter.IsTerminal(out)))
	res, err := proc.ProcessInput(ctx, &model.SearchTask{
		TaskID: ai.SearchParam.Source,
		Param:  ai.SearchParam,
		Text:   text,
	})
	if err != nil {
		return fmt.Errorf("search interrupted: %w", err)
	}
	log.Debug().Int("matches", len(res.Matches)).Msg("search finished")

	// печатаем результат
	w := bufio.NewWriter(out)
	for _, line := range res.Output {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
