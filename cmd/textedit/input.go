package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/flopp/go-findfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"

	"github.com/gogpu/textedit/font"
)

// loadFont opens name as a file path, then as a system font name. An empty
// name selects the embedded Go Regular font.
func loadFont(name, backend string, atlas bool) (*font.Font, error) {
	opts := []font.Option{font.WithParser(backend)}
	if atlas {
		opts = append(opts, font.WithAtlas(font.DefaultAtlasConfig()))
	}
	if name == "" {
		return font.New(goregular.TTF, opts...)
	}
	if _, err := os.Stat(name); err == nil {
		return font.NewFromFile(name, opts...)
	}
	path, err := findfont.Find(name)
	if err != nil {
		return nil, fmt.Errorf("font %q: %w", name, err)
	}
	return font.NewFromFile(path, opts...)
}

// readFile reads a text file in the given encoding.
func readFile(path, encoding string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return decodeText(f, encoding)
}

// decodeText reads r and converts it from encoding to UTF-8. Encoding names
// follow the WHATWG labels ("latin1", "shift_jis", "utf-16le", ...).
func decodeText(r io.Reader, encoding string) (string, error) {
	switch strings.ToLower(encoding) {
	case "", "utf-8", "utf8":
	default:
		enc, err := htmlindex.Get(encoding)
		if err != nil {
			return "", fmt.Errorf("encoding %q: %w", encoding, err)
		}
		r = transform.NewReader(r, enc.NewDecoder())
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
