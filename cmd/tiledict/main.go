package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ewestra/tiledict/internal/board"
	"github.com/ewestra/tiledict/internal/dictionary"
	diffpkg "github.com/ewestra/tiledict/internal/diff"
	"github.com/ewestra/tiledict/internal/manifest"
	"github.com/ewestra/tiledict/internal/merge"
	"github.com/ewestra/tiledict/internal/render"
	"github.com/ewestra/tiledict/internal/solver"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

// exitErr carries a numeric exit code through the cobra error path.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

// codeError returns an exitErr for the given code.
func codeError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

// buildFlags holds the parsed flags for the build command.
type buildFlags struct {
	manifestPath string
	dir          string
	out          string
	format       string
	reportOut    string
	quiet        bool
	verbose      bool
}

// solveFlags holds the parsed flags for the solve command.
type solveFlags struct {
	dictPath string
	verbose  bool
}

func main() {
	root := &cobra.Command{
		Use:     "tiledict",
		Short:   "Build and query word-tile game dictionaries",
		Long:    "tiledict merges plain-text word lists into a sorted game dictionary,\nand can check, diff, and play against the result.",
		Version: version,
	}

	var bFlags buildFlags
	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Merge the word-list sources into a sorted dictionary file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(bFlags)
		},
	}
	bf := buildCmd.Flags()
	bf.StringVar(&bFlags.manifestPath, "manifest", "", "YAML source table (default: built-in table)")
	bf.StringVar(&bFlags.dir, "dir", ".", "Directory containing the source word lists")
	bf.StringVar(&bFlags.out, "out", "", "Output dictionary path (overrides the manifest)")
	bf.StringVar(&bFlags.format, "format", "text", "Build report format: text or json")
	bf.StringVar(&bFlags.reportOut, "report-out", "", "Write the build report to a file instead of stdout")
	bf.BoolVar(&bFlags.quiet, "quiet", false, "Suppress per-source progress lines")
	bf.BoolVar(&bFlags.verbose, "verbose", false, "Print processing steps to stderr")

	checkCmd := &cobra.Command{
		Use:   "check <dictionary-file>",
		Short: "Verify a dictionary file is sorted, unique, and A-Z only",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args[0])
		},
	}

	diffCmd := &cobra.Command{
		Use:   "diff <old> <new>",
		Short: "Show the words added and removed between two dictionaries",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(args[0], args[1])
		},
	}

	var sFlags solveFlags
	solveCmd := &cobra.Command{
		Use:   "solve <letters>",
		Short: "Arrange a hand of tiles into crossing dictionary words",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(args[0], sFlags)
		},
	}
	sf := solveCmd.Flags()
	sf.StringVar(&sFlags.dictPath, "dict", manifest.DefaultOutput, "Dictionary file to play against")
	sf.BoolVar(&sFlags.verbose, "verbose", false, "Print search statistics to stderr")

	root.AddCommand(buildCmd, checkCmd, diffCmd, solveCmd)

	if err := root.Execute(); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, "Error:", ee.msg)
			os.Exit(ee.code)
		}
		// cobra already printed the error
		os.Exit(1)
	}
}

func runBuild(flags buildFlags) error {
	// --- Step 1: Resolve the source table ---
	var m *manifest.Manifest
	if flags.manifestPath != "" {
		logVerbose(flags.verbose, "Loading manifest: %s", flags.manifestPath)
		loaded, err := manifest.Load(flags.manifestPath)
		if err != nil {
			return codeError(3, "%s", err)
		}
		m = loaded
	} else {
		m = manifest.Default()
	}
	m = m.Resolve(flags.dir)
	if flags.out != "" {
		m.Output = flags.out
	}

	// --- Step 2: Fold every source into the set ---
	reporter := merge.Reporter(nil)
	if !flags.quiet {
		reporter = func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}
	}
	result, err := merge.Run(m, reporter)
	if err != nil {
		return codeError(1, "%s", err)
	}

	// --- Step 3: Write the dictionary (only after every source succeeded) ---
	logVerbose(flags.verbose, "Writing %d words → %s", result.Total, m.Output)
	if err := dictionary.WriteFile(m.Output, result.Set); err != nil {
		return codeError(1, "%s", err)
	}

	// --- Step 4: Render the build report ---
	renderer, err := render.NewRenderer(flags.format)
	if err != nil {
		return codeError(3, "invalid format: %s", err)
	}
	outputBytes, err := renderer.Render(result)
	if err != nil {
		return codeError(3, "rendering report: %s", err)
	}

	if flags.reportOut != "" {
		if err := os.WriteFile(flags.reportOut, outputBytes, 0o644); err != nil {
			return codeError(3, "writing report file: %s", err)
		}
	} else {
		if _, err := os.Stdout.Write(outputBytes); err != nil {
			return codeError(3, "writing report: %s", err)
		}
	}
	return nil
}

func runCheck(path string) error {
	violation, err := dictionary.Check(path)
	if err != nil {
		return codeError(1, "%s", err)
	}
	if violation != nil {
		return codeError(2, "%s: %s", path, violation)
	}
	fmt.Printf("%s: ok\n", path)
	return nil
}

func runDiff(oldPath, newPath string) error {
	cmp, err := diffpkg.Compare(oldPath, newPath)
	if err != nil {
		return codeError(1, "%s", err)
	}
	fmt.Println(cmp.Summary())
	for _, w := range cmp.Added {
		fmt.Printf("+ %s\n", w)
	}
	for _, w := range cmp.Removed {
		fmt.Printf("- %s\n", w)
	}
	return nil
}

func runSolve(letters string, flags solveFlags) error {
	rack, err := board.ParseRack(letters)
	if err != nil {
		return codeError(3, "invalid hand: %s", err)
	}

	logVerbose(flags.verbose, "Loading dictionary: %s", flags.dictPath)
	set, err := dictionary.ReadFile(flags.dictPath)
	if err != nil {
		return codeError(1, "%s", err)
	}
	dict, err := solver.NewDictionary(set.Words())
	if err != nil {
		return codeError(1, "indexing dictionary: %s", err)
	}
	logVerbose(flags.verbose, "Indexed %d words, hand of %d tiles", dict.Len(), rack.Size())

	solution, ok := solver.Solve(dict, rack)
	if !ok {
		return codeError(2, "no arrangement uses every tile in %q", letters)
	}
	logVerbose(flags.verbose, "Checked %d placements", solution.Checked)
	fmt.Println(solution)
	return nil
}

// logVerbose writes a message to stderr when verbose mode is enabled.
func logVerbose(verbose bool, format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "INFO: "+format+"\n", args...)
	}
}
