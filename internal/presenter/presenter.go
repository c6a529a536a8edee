// Package presenter renders match records as output lines with line-number prefix and highlighted matches
package presenter

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/gookit/color"
	"github.com/mattn/go-isatty"
)

// Style wraps a piece of text into a visual emphasis
type Style func(s string) string

type Presenter struct {
	lineNumber Style
	match      Style
}

func New(lineNumber, match Style) Presenter {
	return Presenter{lineNumber: lineNumber, match: match}
}

// Terminal renders line numbers in blue and matches in red
func Terminal() Presenter {
	return New(render(color.FgBlue), render(color.FgRed))
}

// Plain renders records without any escape sequences
func Plain() Presenter {
	noop := func(s string) string { return s }
	return New(noop, noop)
}

// ForMode picks a presenter for the --color policy. tty tells whether the output is a terminal.
func ForMode(mode model.ColorMode, tty bool) Presenter {
	switch mode {
	case model.ColorNever:
		return Plain()
	case model.ColorAlways:
		return Terminal()
	default: // auto - подсветка только в терминал, с поддержкой цвета по мнению gookit/color
		if tty && color.SupportColor() {
			return Terminal()
		}
		return Plain()
	}
}

// IsTerminal reports whether w is a file attached to a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// render не зависит от глобальных настроек gookit/color
func render(c color.Color) Style {
	return func(s string) string {
		return color.StartSet + c.Code() + "m" + s + color.ResetSet
	}
}

// Format returns "<n>: <text>" or "<text>" with each span emphasized
func (p Presenter) Format(rec model.MatchRecord, showLineNumber bool) string {
	var b strings.Builder

	if showLineNumber {
		b.WriteString(p.lineNumber(strconv.Itoa(rec.LineNumber)))
		b.WriteString(": ")
	}

	// один проход: текст между совпадениями копируем как есть
	last := 0
	for _, sp := range rec.Spans {
		b.WriteString(rec.Text[last:sp.Start])
		b.WriteString(p.match(rec.Text[sp.Start:sp.End]))
		last = sp.End
	}
	b.WriteString(rec.Text[last:])

	return b.String()
}

// FormatAll formats records in order
func (p Presenter) FormatAll(records []model.MatchRecord, showLineNumber bool) []string {
	result := make([]string, 0, len(records))
	for _, rec := range records {
		result = append(result, p.Format(rec, showLineNumber))
	}
	return result
}
