// Package processor runs one search task through the match engine and the presenter
package processor

import (
	"context"

	"github.com/UnendingLoop/MiniGrep/internal/matcher"
	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/UnendingLoop/MiniGrep/internal/presenter"
	"github.com/cespare/xxhash/v2"
)

type Processor struct {
	presenter presenter.Presenter
}

func New(p presenter.Presenter) Processor {
	return Processor{presenter: p}
}

func (p Processor) ProcessInput(ctx context.Context, task *model.SearchTask) (*model.SearchResult, error) {
	result := model.SearchResult{
		TaskID:  task.TaskID,
		Output:  []string{},
		Matches: []model.MatchRecord{},
	}

	query := matcher.NewQuery(task.Param.Pattern, task.Param.IgnoreCase)
	records := matcher.FindMatches(query, matcher.SplitLines(task.Text))

	// форматируем найденные строки, проверяя отмену между строками
	output := make([]string, 0, len(records))
	for _, rec := range records {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
			output = append(output, p.presenter.Format(rec, task.Param.LineNumber))
		}
	}

	result.Matches = records
	result.Output = output
	// считаем общий хеш
	result.HashSumm = Hasher(output)

	return &result, nil
}

// Hasher returns xxhash64 of lines, each followed by '\n'
func Hasher(lines []string) uint64 {
	hs := xxhash.New()
	for _, s := range lines {
		_, _ = hs.WriteString(s)
		_, _ = hs.WriteString("\n")
	}
	return hs.Sum64()
}
