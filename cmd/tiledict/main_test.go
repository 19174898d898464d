package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeFile writes content under dir and returns the full path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// exitCode extracts the exitErr code from an error, or -1.
func exitCode(err error) int {
	var ee *exitErr
	if errors.As(err, &ee) {
		return ee.code
	}
	return -1
}

// buildScenarioDir lays out a manifest and sources for a small build.
func buildScenarioDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "base.txt", "APPLE\nBE\n")
	writeFile(t, dir, "extra.txt", "apple\nbe\nhoney \nHI\ngrape\n")
	writeFile(t, dir, "sources.yaml", `
output: merged.txt
sources:
  - path: base.txt
    policy: all
  - path: extra.txt
    policy: strict
`)
	return dir
}

func TestRunBuild_Scenario(t *testing.T) {
	dir := buildScenarioDir(t)
	flags := buildFlags{
		manifestPath: filepath.Join(dir, "sources.yaml"),
		dir:          dir,
		format:       "text",
		reportOut:    filepath.Join(dir, "report.txt"),
		quiet:        true,
	}
	if err := runBuild(flags); err != nil {
		t.Fatalf("runBuild: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "merged.txt"))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if got, want := string(data), "APPLE\nBE\nGRAPE\nHONEY"; got != want {
		t.Errorf("dictionary content = %q, want %q", got, want)
	}

	report, err := os.ReadFile(flags.reportOut)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	if len(report) == 0 {
		t.Error("empty build report")
	}
}

func TestRunBuild_OutFlagOverridesManifest(t *testing.T) {
	dir := buildScenarioDir(t)
	out := filepath.Join(dir, "override.txt")
	flags := buildFlags{
		manifestPath: filepath.Join(dir, "sources.yaml"),
		dir:          dir,
		out:          out,
		format:       "json",
		reportOut:    filepath.Join(dir, "report.json"),
		quiet:        true,
	}
	if err := runBuild(flags); err != nil {
		t.Fatalf("runBuild: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("--out path not written: %v", err)
	}
}

func TestRunBuild_MissingSourceLeavesNoOutput(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.txt", "APPLE\n")
	writeFile(t, dir, "sources.yaml", `
output: merged.txt
sources:
  - path: base.txt
    policy: all
  - path: missing.txt
    policy: strict
`)
	flags := buildFlags{
		manifestPath: filepath.Join(dir, "sources.yaml"),
		dir:          dir,
		quiet:        true,
	}
	err := runBuild(flags)
	if err == nil {
		t.Fatal("expected error for missing source")
	}
	if code := exitCode(err); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "merged.txt")); !os.IsNotExist(statErr) {
		t.Error("output file was written despite a failed build")
	}
}

func TestRunBuild_BadManifest(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "sources.yaml", "sources:\n  - path: a.txt\n    policy: bogus\n")
	err := runBuild(buildFlags{manifestPath: path, dir: dir, quiet: true})
	if code := exitCode(err); code != 3 {
		t.Errorf("exit code = %d, want 3 (err: %v)", code, err)
	}
}

func TestRunCheck(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.txt", "APPLE\nBE\nGRAPE")
	if err := runCheck(good); err != nil {
		t.Errorf("runCheck(good): %v", err)
	}

	bad := writeFile(t, dir, "bad.txt", "GRAPE\nAPPLE")
	err := runCheck(bad)
	if code := exitCode(err); code != 2 {
		t.Errorf("exit code = %d, want 2 (err: %v)", code, err)
	}
}

func TestRunDiff(t *testing.T) {
	dir := t.TempDir()
	oldPath := writeFile(t, dir, "old.txt", "APPLE\nBE")
	newPath := writeFile(t, dir, "new.txt", "APPLE\nGRAPE")
	if err := runDiff(oldPath, newPath); err != nil {
		t.Errorf("runDiff: %v", err)
	}
	if err := runDiff(filepath.Join(dir, "nope.txt"), newPath); exitCode(err) != 1 {
		t.Errorf("expected exit code 1 for missing input, got %v", err)
	}
}

func TestRunSolve(t *testing.T) {
	dir := t.TempDir()
	dict := writeFile(t, dir, "dict.txt", "CAT\nCOW")

	if err := runSolve("catow", solveFlags{dictPath: dict}); err != nil {
		t.Errorf("runSolve(catow): %v", err)
	}

	err := runSolve("qqqqq", solveFlags{dictPath: dict})
	if code := exitCode(err); code != 2 {
		t.Errorf("unsolvable hand: exit code = %d, want 2 (err: %v)", code, err)
	}

	err = runSolve("a1", solveFlags{dictPath: dict})
	if code := exitCode(err); code != 3 {
		t.Errorf("invalid hand: exit code = %d, want 3 (err: %v)", code, err)
	}

	err = runSolve("cat", solveFlags{dictPath: filepath.Join(dir, "nope.txt")})
	if code := exitCode(err); code != 1 {
		t.Errorf("missing dictionary: exit code = %d, want 1 (err: %v)", code, err)
	}
}
