// Package matcher finds non-overlapping occurrences of a plain-string pattern in document lines
package matcher

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/UnendingLoop/MiniGrep/internal/model"
)

// Query is a search pattern with its comparison policy. The comparison key is computed once.
type Query struct {
	pattern    string
	key        string
	ignoreCase bool
}

func NewQuery(pattern string, ignoreCase bool) Query {
	q := Query{pattern: pattern, key: pattern, ignoreCase: ignoreCase}
	if ignoreCase {
		q.key, _ = foldCase(pattern)
	}
	return q
}

func (q Query) Pattern() string  { return q.pattern }
func (q Query) IgnoreCase() bool { return q.ignoreCase }

// Document is the input text split into lines without terminators.
type Document struct {
	lines []string
}

// SplitLines splits text on '\n', dropping one trailing '\r' per line.
// A terminator at the very end does not produce an extra empty line.
func SplitLines(text string) Document {
	if text == "" {
		return Document{}
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	return Document{lines: lines}
}

func (d Document) Len() int { return len(d.lines) }

// Line returns line n, 1-based.
func (d Document) Line(n int) string { return d.lines[n-1] }

// FindMatches returns one record per line containing the query, in document order.
// An empty pattern matches every line with no spans.
func FindMatches(q Query, doc Document) []model.MatchRecord {
	result := []model.MatchRecord{}
	for i, line := range doc.lines {
		spans, ok := scanLine(q, line)
		if !ok {
			continue
		}
		result = append(result, model.MatchRecord{
			LineNumber: i + 1,
			Text:       line,
			Spans:      spans,
		})
	}
	return result
}

// Search is NewQuery + SplitLines + FindMatches.
func Search(pattern, text string, ignoreCase bool) []model.MatchRecord {
	return FindMatches(NewQuery(pattern, ignoreCase), SplitLines(text))
}

func scanLine(q Query, line string) ([]model.Span, bool) {
	if q.key == "" {
		return []model.Span{}, true
	}

	key := line
	var offsets []int // nil - смещения в ключе совпадают со смещениями в исходной строке
	if q.ignoreCase {
		key, offsets = foldCase(line)
	}

	var spans []model.Span
	// жадный проход слева направо: после совпадения продолжаем с его конца, а не со следующего байта
	for pos := 0; pos <= len(key)-len(q.key); {
		idx := strings.Index(key[pos:], q.key)
		if idx < 0 {
			break
		}
		start := pos + idx
		end := start + len(q.key)
		if offsets != nil {
			spans = append(spans, model.Span{Start: offsets[start], End: offsets[end]})
		} else {
			spans = append(spans, model.Span{Start: start, End: end})
		}
		pos = end
	}

	return spans, len(spans) > 0
}

// foldCase lowercases s rune by rune. When the folded text may differ in byte length
// it also returns a table mapping every folded byte offset (plus the end offset)
// to the offset of the originating rune in s.
func foldCase(s string) (string, []int) {
	if isASCII(s) {
		return strings.ToLower(s), nil
	}

	var b strings.Builder
	b.Grow(len(s))
	offsets := make([]int, 0, len(s)+1)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			// невалидный байт переносим как есть, без замены на U+FFFD
			b.WriteByte(s[i])
			offsets = append(offsets, i)
			i++
			continue
		}
		n, _ := b.WriteRune(unicode.ToLower(r))
		for j := 0; j < n; j++ {
			offsets = append(offsets, i)
		}
		i += size
	}
	offsets = append(offsets, len(s))

	return b.String(), offsets
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
