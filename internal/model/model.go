// Package model contains data structures for storing initially provided flags, search results and DTO
package model

type AppMode string

const (
	ModeCLI    = AppMode("cli")
	ModeServer = AppMode("server")
)

// ColorMode - политика подсветки вывода в терминале
type ColorMode string

const (
	ColorAuto   = ColorMode("auto")
	ColorAlways = ColorMode("always")
	ColorNever  = ColorMode("never")
)

type AppInit struct {
	Mode        AppMode
	Address     string
	Color       ColorMode
	SearchParam SearchParam
}

// SearchParam - хранит в себе все флаги и параметры одного поиска
type SearchParam struct {
	Pattern    string `json:"pattern"`               // строка для поиска, может быть пустой
	Source     string `json:"-"`                     // имя файла для чтения данных
	IgnoreCase bool   `json:"ignore_case,omitempty"` // i — игнорировать регистр
	LineNumber bool   `json:"line_number,omitempty"` // l — выводить номер строки перед каждой найденной строкой
}

// Span - полуоткрытый байтовый диапазон [Start, End) совпадения внутри исходной строки
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// MatchRecord - одна найденная строка документа
type MatchRecord struct {
	LineNumber int    `json:"line_number"`
	Text       string `json:"text"`
	Spans      []Span `json:"spans"`
}

type SearchTask struct {
	TaskID string      `json:"tid"`
	Param  SearchParam `json:"param"`
	Text   string      `json:"-"`
}

type SearchResult struct {
	TaskID   string        `json:"tid"`
	HashSumm uint64        `json:"hash"`
	Output   []string      `json:"output"`
	Matches  []MatchRecord `json:"matches"`
}

// SearchRequest - тело POST /search
type SearchRequest struct {
	Pattern    *string `json:"pattern" binding:"required"`
	Text       string  `json:"text"`
	IgnoreCase bool    `json:"ignore_case"`
	LineNumber bool    `json:"line_number"`
}
