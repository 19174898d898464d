package wordlist

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTempList(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Lines(t *testing.T) {
	path := writeTempList(t, []byte("apple\nbe\n\nhoney \n"))

	list, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{"apple", "be", "", "honey "}
	if len(list.Lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %q", len(list.Lines), len(want), list.Lines)
	}
	for i, w := range want {
		if list.Lines[i] != w {
			t.Errorf("line %d = %q, want %q", i, list.Lines[i], w)
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist in chain, got %v", err)
	}
}

func TestLoad_NotText(t *testing.T) {
	path := writeTempList(t, []byte{'o', 'k', '\n', 0xff, 0xfe, 0xfd})

	_, err := Load(path)
	if !errors.Is(err, ErrNotText) {
		t.Fatalf("expected ErrNotText, got %v", err)
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeTempList(t, nil)

	list, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(list.Lines) != 0 {
		t.Errorf("expected no lines, got %q", list.Lines)
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"honey ", "HONEY"},
		{"  apple\t", "APPLE"},
		{"grape", "GRAPE"},
		{"", ""},
		{"   ", ""},
		{"CO-OP", "CO-OP"},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, w := range []string{"HONEY", "A", "", "GRAPE"} {
		if got := Normalize(w); got != w {
			t.Errorf("Normalize(%q) = %q, want unchanged", w, got)
		}
	}
}
