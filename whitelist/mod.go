// Package whitelist loads the raw items of a membership set from a file.
//
// Three file formats are supported, chosen by the extension of the path: a
// JSON array of strings, a YAML list of strings, and plain text with one
// entry per line where blank lines and lines starting with '#' are
// skipped.
package whitelist

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashgarden/merkle/tree"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v2"
)

// Loader provides the raw items of a membership set.
type Loader interface {
	// Load returns the ordered sequence of raw items.
	Load() ([][]byte, error)
}

// LoaderOption is the type of options to create a file loader.
type LoaderOption func(*fileLoader)

// WithDeduplication is an option to drop duplicated entries while keeping
// the first-seen order.
func WithDeduplication() LoaderOption {
	return func(l *fileLoader) {
		l.dedup = true
	}
}

// fileLoader reads the entries of a whitelist from a file.
//
// - implements whitelist.Loader
type fileLoader struct {
	path  string
	dedup bool

	readFn func(path string) ([]byte, error)
}

// NewFileLoader creates a new loader that is using the file given in
// parameter.
func NewFileLoader(path string, opts ...LoaderOption) Loader {
	loader := &fileLoader{
		path:   path,
		readFn: os.ReadFile,
	}

	for _, opt := range opts {
		opt(loader)
	}

	return loader
}

// Load implements whitelist.Loader. It returns the entries of the file as
// raw items, or an error when the file cannot be parsed or contains no
// entry.
func (l *fileLoader) Load() ([][]byte, error) {
	data, err := l.readFn(l.path)
	if err != nil {
		return nil, xerrors.Errorf("while reading file: %v", err)
	}

	var entries []string

	switch filepath.Ext(l.path) {
	case ".json":
		err = json.Unmarshal(data, &entries)
		if err != nil {
			return nil, xerrors.Errorf("while decoding json: %v", err)
		}
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &entries)
		if err != nil {
			return nil, xerrors.Errorf("while decoding yaml: %v", err)
		}
	default:
		entries, err = parseLines(data)
		if err != nil {
			return nil, xerrors.Errorf("while reading lines: %v", err)
		}
	}

	if l.dedup {
		entries = deduplicate(entries)
	}

	if len(entries) == 0 {
		return nil, xerrors.Errorf("file '%s' has no entry: %w",
			l.path, tree.ErrEmptyLeaves)
	}

	items := make([][]byte, len(entries))
	for i, entry := range entries {
		items[i] = []byte(entry)
	}

	return items, nil
}

func parseLines(data []byte) ([]string, error) {
	var entries []string

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entries = append(entries, line)
	}

	err := scanner.Err()
	if err != nil {
		return nil, xerrors.Errorf("scanner failed: %v", err)
	}

	return entries, nil
}

func deduplicate(entries []string) []string {
	seen := make(map[string]struct{})
	unique := make([]string, 0, len(entries))

	for _, entry := range entries {
		if _, found := seen[entry]; found {
			continue
		}

		seen[entry] = struct{}{}
		unique = append(unique, entry)
	}

	return unique
}
