// Package textgz packs text into gzip-compressed, base64-encoded strings
// that survive transports limited to ASCII.
package textgz

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Encode gzips s and returns the compressed bytes in standard base64.
func Encode(s string) (string, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := io.WriteString(zw, s); err != nil {
		return "", fmt.Errorf("textgz: compressing: %w", err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("textgz: compressing: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// Decode reverses Encode.
func Decode(s string) (string, error) {
	zr, err := gzip.NewReader(base64.NewDecoder(base64.StdEncoding, strings.NewReader(s)))
	if err != nil {
		return "", fmt.Errorf("textgz: opening: %w", err)
	}
	defer func() { _ = zr.Close() }()

	var b strings.Builder
	if _, err := io.Copy(&b, zr); err != nil {
		return "", fmt.Errorf("textgz: decompressing: %w", err)
	}
	return b.String(), nil
}
