package presenter_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/UnendingLoop/MiniGrep/internal/matcher"
	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/UnendingLoop/MiniGrep/internal/presenter"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	p := presenter.New(
		func(s string) string { return "<" + s + ">" },
		func(s string) string { return "[" + s + "]" },
	)

	cases := []struct {
		name       string
		rec        model.MatchRecord
		lineNumber bool
		want       string
	}{
		{
			name: "Positive - single span",
			rec:  model.MatchRecord{LineNumber: 2, Text: "safe, fast, productive.", Spans: []model.Span{{Start: 15, End: 19}}},
			want: "safe, fast, pro[duct]ive.",
		},
		{
			name:       "Positive - single span with line number",
			rec:        model.MatchRecord{LineNumber: 2, Text: "safe, fast, productive.", Spans: []model.Span{{Start: 15, End: 19}}},
			lineNumber: true,
			want:       "<2>: safe, fast, pro[duct]ive.",
		},
		{
			name: "Positive - original casing is highlighted",
			rec:  model.MatchRecord{LineNumber: 4, Text: "Trust me.", Spans: []model.Span{{Start: 1, End: 5}}},
			want: "T[rust] me.",
		},
		{
			name: "Positive - adjacent spans",
			rec:  model.MatchRecord{LineNumber: 1, Text: "aaaa", Spans: []model.Span{{Start: 0, End: 2}, {Start: 2, End: 4}}},
			want: "[aa][aa]",
		},
		{
			name:       "Positive - no spans",
			rec:        model.MatchRecord{LineNumber: 7, Text: "abc", Spans: []model.Span{}},
			lineNumber: true,
			want:       "<7>: abc",
		},
		{
			name:       "Positive - empty line",
			rec:        model.MatchRecord{LineNumber: 3, Text: ""},
			lineNumber: true,
			want:       "<3>: ",
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, p.Format(tt.rec, tt.lineNumber))
		})
	}
}

func TestFormatAll(t *testing.T) {
	records := matcher.Search("rUsT", "Rust:\nsafe, fast, productive.\nPick three.\nTrust me.", true)

	res := presenter.Plain().FormatAll(records, true)

	require.Equal(t, []string{"1: Rust:", "4: Trust me."}, res)
}

func TestForMode(t *testing.T) {
	rec := model.MatchRecord{LineNumber: 2, Text: "productive", Spans: []model.Span{{Start: 3, End: 7}}}

	cases := []struct {
		name string
		mode model.ColorMode
		tty  bool
		want string
	}{
		{
			name: "never - terminal output stays plain",
			mode: model.ColorNever,
			tty:  true,
			want: "2: productive",
		},
		{
			name: "auto - redirected output stays plain",
			mode: model.ColorAuto,
			tty:  false,
			want: "2: productive",
		},
		{
			name: "always - redirected output is highlighted",
			mode: model.ColorAlways,
			tty:  false,
			want: "\x1b[34m2\x1b[0m: pro\x1b[31mduct\x1b[0mive",
		},
		{
			name: "always - terminal output is highlighted",
			mode: model.ColorAlways,
			tty:  true,
			want: "\x1b[34m2\x1b[0m: pro\x1b[31mduct\x1b[0mive",
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			// TERM не должен влиять на вывод, который не идёт в терминал
			t.Setenv("TERM", "xterm-256color")

			res := presenter.ForMode(tt.mode, tt.tty).Format(rec, true)

			require.Equal(t, tt.want, res)
		})
	}
}

func TestIsTerminal(t *testing.T) {
	require.False(t, presenter.IsTerminal(&bytes.Buffer{}))

	f, err := os.CreateTemp(t.TempDir(), "minigrep_out_*.txt")
	require.NoError(t, err)
	defer f.Close()
	require.False(t, presenter.IsTerminal(f))
}
