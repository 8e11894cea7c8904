package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// run executes the root command with args and stdin, returning stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTransliterateArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"default table", []string{"ക"}, "𑀓\n"},
		{"table flag before text", []string{"--table", "brahmi", "ക"}, "𑀓\n"},
		{"graphemes", []string{"--graphemes", "കി"}, "𑀓𑀺\n"},
		{"keelakam", []string{"--table", "keelakam", "കല"}, "പസ\n"},
		{"joined args", []string{"-t", "keelakam", "ക", "ല"}, "പ സ\n"},
		{"underscore name", []string{"-t", "moolabhadri_legacy", "ജ"}, "ഝ\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := run(t, "", tc.args...)
			if err != nil {
				t.Fatalf("run(%v) error = %v", tc.args, err)
			}
			if got != tc.want {
				t.Errorf("run(%v) = %q, want %q", tc.args, got, tc.want)
			}
		})
	}
}

func TestTransliterateStdin(t *testing.T) {
	got, err := run(t, "കല\n\nലക\n", "--table", "keelakam", "--workers", "2")
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if want := "പസ\n\nസപ\n"; got != want {
		t.Errorf("run() = %q, want %q", got, want)
	}
}

func TestUnknownTable(t *testing.T) {
	if _, err := run(t, "", "--table", "cyrillic", "x"); err == nil {
		t.Error("expected error for unknown table")
	}
}

func TestTablesCmd(t *testing.T) {
	got, err := run(t, "", "tables")
	if err != nil {
		t.Fatalf("tables error = %v", err)
	}
	for _, name := range []string{"brahmi", "keelakam", "moolabhadri", "moolabhadri-legacy", "navashashti"} {
		if !strings.Contains(got, name) {
			t.Errorf("tables output missing %q:\n%s", name, got)
		}
	}
}

func TestTokenizeCmd(t *testing.T) {
	got, err := run(t, "", "tokenize", "-t", "moolabhadri", "ക്ഷ")
	if err != nil {
		t.Fatalf("tokenize error = %v", err)
	}
	if !strings.Contains(got, "0-9") {
		t.Errorf("expected the conjunct as one 9-byte token:\n%s", got)
	}
	if !strings.Contains(got, "1 tokens, ") || !strings.Contains(got, "grapheme clusters") {
		t.Errorf("expected token and cluster counts:\n%s", got)
	}
}

func TestAuditCmd(t *testing.T) {
	got, err := run(t, "", "audit", "-t", "brahmi")
	if err != nil {
		t.Fatalf("audit error = %v", err)
	}
	if !strings.Contains(got, "3 of") {
		t.Errorf("expected three lossy brahmi entries:\n%s", got)
	}

	got, err = run(t, "", "audit", "-t", "keelakam")
	if err != nil {
		t.Fatalf("audit error = %v", err)
	}
	if !strings.Contains(got, "keelakam: 13 of 105 entries") {
		t.Errorf("expected 13 lossy keelakam entries:\n%s", got)
	}

	got, err = run(t, "", "audit", "--file", "../../testdata/tables/swap.yaml")
	if err != nil {
		t.Fatalf("audit error = %v", err)
	}
	if !strings.Contains(got, "swap: every entry round-trips") {
		t.Errorf("expected swap table to be involutive:\n%s", got)
	}
}

func TestExportCompileCmd(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "keelakam.yaml")
	binPath := filepath.Join(dir, "keelakam.lipi")

	if _, err := run(t, "", "export", "-t", "keelakam", yamlPath); err != nil {
		t.Fatalf("export error = %v", err)
	}
	if _, err := os.Stat(yamlPath); err != nil {
		t.Fatalf("export did not write %s: %v", yamlPath, err)
	}

	if _, err := run(t, "", "compile", yamlPath, binPath); err != nil {
		t.Fatalf("compile error = %v", err)
	}

	got, err := run(t, "", "--file", binPath, "കല")
	if err != nil {
		t.Fatalf("run with --file error = %v", err)
	}
	if got != "പസ\n" {
		t.Errorf("run with --file = %q, want %q", got, "പസ\n")
	}
}

func TestCodecCmds(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"base62", "encode", "61", "62"}, "Z\n10\n"},
		{[]string{"base62", "decode", "--", "-10"}, "-62\n"},
		{[]string{"base95", "decode", "36%N\u00a0 \""}, "4d616e0000\n"},
		{[]string{"reverse", "abc"}, "cba\n"},
		{[]string{"reverse", "--segments", "ab\u0301"}, "2: a | b\u0301\nb\u0301a\n"},
	}

	for _, tc := range tests {
		got, err := run(t, "", tc.args...)
		if err != nil {
			t.Errorf("run(%v) error = %v", tc.args, err)
			continue
		}
		if got != tc.want {
			t.Errorf("run(%v) = %q, want %q", tc.args, got, tc.want)
		}
	}
}

func TestGzipCmd(t *testing.T) {
	enc, err := run(t, "", "gz", "encode", "മലയാളം")
	if err != nil {
		t.Fatalf("gz encode error = %v", err)
	}
	got, err := run(t, "", "gz", "decode", strings.TrimSpace(enc))
	if err != nil {
		t.Fatalf("gz decode error = %v", err)
	}
	if got != "മലയാളം\n" {
		t.Errorf("gz round trip = %q", got)
	}
}

func TestIDCmd(t *testing.T) {
	got, err := run(t, "", "id", "-n", "3", "--steps", "2")
	if err != nil {
		t.Fatalf("id error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d ids, want 3", len(lines))
	}
	for _, id := range lines {
		if id == "" || len(id) > 16 {
			t.Errorf("unexpected id %q", id)
		}
	}
}
