// Package corpus loads ciphertext and reference text from files or streams.
package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrNoInput reports that no text source produced any content.
var ErrNoInput = errors.New("no input text provided")

// LoadFile reads a whole text file.
func LoadFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only corpus.
			_ = cerr
		}
	}()
	return readAll(file)
}

// Resolve returns text from the first configured source: inline text, then a
// file, then stdin when it is not a terminal.
func Resolve(text, path string, stdin io.Reader, stdinIsTerminal bool) (string, error) {
	if text != "" {
		return text, nil
	}
	if path != "" {
		content, err := LoadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read file %s: %w", path, err)
		}
		return content, nil
	}
	if stdin == nil || stdinIsTerminal {
		return "", ErrNoInput
	}
	content, err := readAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	if strings.TrimSpace(content) == "" {
		return "", ErrNoInput
	}
	return content, nil
}

func readAll(r io.Reader) (string, error) {
	var b strings.Builder
	reader := bufio.NewReader(r)
	if _, err := io.Copy(&b, reader); err != nil {
		return "", err
	}
	return b.String(), nil
}
