//go:build ignore

// Convert raw Malayalam text (a Wikipedia plaintext dump, a scanned book)
// into the corpus format read by lipi-bench: a "# Key: value" header
// followed by one sentence per line.
//
// Usage: go run ./scripts/make-corpus.go -source URL -title TITLE IN OUT
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"regexp"
	"strings"
)

var (
	citationRe  = regexp.MustCompile(`\[(\d+|citation needed|അവലംബം ആവശ്യമാണ്)\]`)
	multiBlank  = regexp.MustCompile(`\n{3,}`)
	multiSpace  = regexp.MustCompile(`[ \t]{2,}`)
	sentenceEnd = regexp.MustCompile(`([.?!।])\s+`)
)

func main() {
	source := flag.String("source", "", "Source URL written to the header (required)")
	title := flag.String("title", "", "Title written to the header")
	language := flag.String("language", "ml", "Language tag written to the header")
	limit := flag.Int("limit", 50000, "Maximum body size in bytes, cut at a sentence end (0 for no limit)")
	flag.Parse()

	if *source == "" || flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Usage: go run ./scripts/make-corpus.go -source URL [-title T] IN OUT")
		flag.PrintDefaults()
		os.Exit(1)
	}

	in, out := flag.Arg(0), flag.Arg(1)
	if err := process(in, out, *source, *title, *language, *limit); err != nil {
		fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", in, err)
		os.Exit(1)
	}
	fmt.Printf("%s -> %s\n", in, out)
}

func process(inPath, outPath, source, title, language string, limit int) error {
	content, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	lines := splitSentences(cleanBody(string(content)))

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "# Source: %s\n", source)
	if title != "" {
		fmt.Fprintf(w, "# Title: %s\n", title)
	}
	fmt.Fprintf(w, "# Language: %s\n", language)
	fmt.Fprintf(w, "\n")

	written := 0
	for _, line := range lines {
		if limit > 0 && written+len(line) > limit {
			break
		}
		w.WriteString(line)
		w.WriteString("\n")
		written += len(line) + 1
	}

	return w.Flush()
}

func cleanBody(text string) string {
	// Normalize line endings
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	text = citationRe.ReplaceAllString(text, "")
	text = multiBlank.ReplaceAllString(text, "\n\n")

	// Join lines that are part of the same paragraph
	var result []string
	var paragraph strings.Builder
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			if paragraph.Len() > 0 {
				result = append(result, paragraph.String())
				paragraph.Reset()
			}
			continue
		}
		if paragraph.Len() > 0 {
			paragraph.WriteString(" ")
		}
		paragraph.WriteString(line)
	}
	if paragraph.Len() > 0 {
		result = append(result, paragraph.String())
	}

	return strings.Join(result, "\n")
}

func splitSentences(text string) []string {
	var sentences []string
	for _, paragraph := range strings.Split(text, "\n") {
		paragraph = sentenceEnd.ReplaceAllString(paragraph, "$1\n")
		for _, s := range strings.Split(paragraph, "\n") {
			s = strings.TrimSpace(multiSpace.ReplaceAllString(s, " "))
			if s != "" {
				sentences = append(sentences, s)
			}
		}
	}
	return sentences
}
