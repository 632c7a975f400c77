// Package wordsource reads newline separated words for the tst command.
package wordsource

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/kumarlokesh/ternary-search-tree/internal/config"
)

// maxLineLength bounds a single input line
const maxLineLength = 1 << 20

// Read returns the non-blank lines of r with surrounding whitespace removed.
// Input in the Windows-1252 encoding is converted to UTF-8 first.
func Read(r io.Reader, encoding string) ([]string, error) {
	switch strings.ToLower(encoding) {
	case config.EncodingUTF8, "":
	case config.EncodingWindows1252:
		r = charmap.Windows1252.NewDecoder().Reader(r)
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnsupportedEncoding, encoding)
	}

	var words []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read words: %w", err)
	}
	return words, nil
}

// Open reads words from path, or from stdin when path is "-"
func Open(path, encoding string, stdin io.Reader) ([]string, error) {
	if path == "-" {
		return Read(stdin, encoding)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()

	return Read(f, encoding)
}
