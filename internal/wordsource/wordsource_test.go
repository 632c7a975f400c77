package wordsource

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kumarlokesh/ternary-search-tree/internal/config"
)

func TestRead(t *testing.T) {
	input := "apple\n  banana \n\n\t\ncherry\r\n"

	words, err := Read(strings.NewReader(input), config.EncodingUTF8)
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "banana", "cherry"}, words)
}

func TestRead_Empty(t *testing.T) {
	words, err := Read(strings.NewReader(""), "")
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestRead_Windows1252(t *testing.T) {
	// 0xe9 is é, 0x80 is the euro sign
	input := "caf\xe9\n\x80uro\n"

	words, err := Read(strings.NewReader(input), "Windows-1252")
	require.NoError(t, err)
	assert.Equal(t, []string{"café", "€uro"}, words)
}

func TestRead_UnsupportedEncoding(t *testing.T) {
	_, err := Read(strings.NewReader("x"), "utf-16")
	assert.ErrorIs(t, err, config.ErrUnsupportedEncoding)
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\n"), 0o644))

	words, err := Open(path, config.EncodingUTF8, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, words)

	words, err = Open("-", config.EncodingUTF8, strings.NewReader("three\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"three"}, words)

	_, err = Open(filepath.Join(t.TempDir(), "missing.txt"), config.EncodingUTF8, nil)
	assert.Error(t, err)
}
