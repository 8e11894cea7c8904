// Package bench measures transliteration tables against a plain-text corpus.
package bench

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
)

// Header contains metadata parsed from a corpus file header.
type Header struct {
	Source   string
	Title    string
	Language string
}

// ParseHeader extracts metadata from the leading "# Key: value" comments.
// Returns the header, remaining text after header, and any error.
func ParseHeader(text string) (Header, string, error) {
	var h Header
	scanner := bufio.NewScanner(strings.NewReader(text))
	var bodyStart int
	var lineEnd int
	inBody := false

	for scanner.Scan() {
		line := scanner.Text()
		lineEnd += len(line) + 1 // +1 for newline

		if !strings.HasPrefix(line, "#") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			bodyStart = lineEnd - len(line) - 1
			inBody = true
			break
		}

		line = strings.TrimPrefix(line, "# ")
		if value, ok := strings.CutPrefix(line, "Source:"); ok {
			h.Source = strings.TrimSpace(value)
		} else if value, ok := strings.CutPrefix(line, "Title:"); ok {
			h.Title = strings.TrimSpace(value)
		} else if value, ok := strings.CutPrefix(line, "Language:"); ok {
			h.Language = strings.TrimSpace(value)
		}
	}

	if err := scanner.Err(); err != nil {
		return Header{}, "", fmt.Errorf("scan header: %w", err)
	}

	if h.Source == "" {
		return Header{}, "", errors.New("missing Source in header")
	}

	if !inBody {
		return h, "", nil
	}
	return h, strings.TrimSpace(text[bodyStart:]), nil
}

// Line is one non-blank line of a document body with byte offsets.
type Line struct {
	Text  string
	Start int
	End   int
}

// ParseLines splits text into non-blank lines. Text is trimmed, offsets
// cover the untrimmed line.
func ParseLines(text string) []Line {
	var lines []Line
	start := 0
	for start <= len(text) {
		end := strings.IndexByte(text[start:], '\n')
		if end < 0 {
			end = len(text)
		} else {
			end += start
		}

		if trimmed := strings.TrimSpace(text[start:end]); trimmed != "" {
			lines = append(lines, Line{Text: trimmed, Start: start, End: end})
		}
		start = end + 1
	}
	return lines
}

// Document represents a loaded corpus file.
type Document struct {
	ID       string // filename without extension
	Source   string
	Title    string
	Language string
	RawText  string // body text
	Lines    []Line
}

// Texts returns the text of every line.
func (d *Document) Texts() []string {
	return lo.Map(d.Lines, func(l Line, _ int) string { return l.Text })
}

// LoadDocument loads and parses a corpus file.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	header, body, err := ParseHeader(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse header: %w", err)
	}

	base := filepath.Base(path)
	id := strings.TrimSuffix(base, filepath.Ext(base))

	return &Document{
		ID:       id,
		Source:   header.Source,
		Title:    header.Title,
		Language: header.Language,
		RawText:  body,
		Lines:    ParseLines(body),
	}, nil
}

// LoadCorpus loads all .txt files from a directory.
func LoadCorpus(dir string) ([]*Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var docs []*Document
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) != ".txt" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		doc, err := LoadDocument(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", entry.Name(), err)
		}
		docs = append(docs, doc)
	}

	return docs, nil
}
