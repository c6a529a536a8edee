// Package reader loads the whole input file into memory
package reader

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

// ErrInput marks any failure to obtain the document text
var ErrInput = errors.New("input error")

// ReadDocument returns the full content of fileName. Nothing is returned on partial reads.
func ReadDocument(fileName string) (string, error) {
	if fileName == "" {
		return "", fmt.Errorf("%w: empty file name", ErrInput)
	}

	// проверяем открывается ли файл
	info, err := os.Stat(fileName)
	if err != nil {
		return "", fmt.Errorf("%w: error opening file %q: %w", ErrInput, fileName, err)
	}
	// проверяем не папка ли это
	if info.IsDir() {
		return "", fmt.Errorf("%w: specified source filename %q is a directory", ErrInput, fileName)
	}

	raw, err := os.ReadFile(fileName)
	if err != nil {
		return "", fmt.Errorf("%w: couldn't read file %q: %w", ErrInput, fileName, err)
	}

	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w: file %q is not valid UTF-8 text", ErrInput, fileName)
	}

	return string(raw), nil
}
