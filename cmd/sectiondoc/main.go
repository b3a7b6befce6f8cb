// Command sectiondoc rewrites numpy/Google-style docstring sections into
// directive-based markup.
//
// It reads one docstring per input file (or stdin via "-"), rewrites every
// recognized section -- Parameters, Returns, Attributes, Notes, and so on
// -- and prints the result. With -w the input file is rewritten in place,
// with -d a diff is printed instead, and with -l only the names of files
// that would change are listed.
package main

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/sectiondoc/docstring"
	"go.jacobcolvin.com/sectiondoc/log"
	"go.jacobcolvin.com/sectiondoc/version"
)

func main() {
	docCfg := docstring.NewConfig()
	logCfg := log.NewConfig()

	var (
		writeMode bool
		diffMode  bool
		listMode  bool
	)

	rootCmd := &cobra.Command{
		Use:   "sectiondoc [flags] <file|directory> ...",
		Short: "Rewrite docstring sections into directive-based markup",
		Long: `sectiondoc rewrites structured docstring sections (Parameters, Returns,
Attributes, Notes, ...) into directive-based markup. Sections are matched by
their rST-style underlined headers; headers without a registered strategy
are rewritten as rubric directives.`,
		Version:       version.String(),
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			handler, err := logCfg.NewHandler(os.Stderr)
			if err != nil {
				return err
			}

			slog.SetDefault(slog.New(handler))

			registry, err := docCfg.NewRegistry()
			if err != nil {
				return err
			}

			return run(registry, args, writeMode, diffMode, listMode)
		},
	}

	docCfg.RegisterFlags(rootCmd.Flags())
	logCfg.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.Flags().BoolVarP(&writeMode, "write", "w", false,
		"write result back to the input file")
	rootCmd.Flags().BoolVarP(&diffMode, "diff", "d", false,
		"show changes without writing")
	rootCmd.Flags().BoolVarP(&listMode, "list", "l", false,
		"only list files that would change")

	if err := docCfg.RegisterCompletions(rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
	}

	if err := logCfg.RegisterCompletions(rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(registry docstring.Registry, args []string, writeMode, diffMode, listMode bool) error {
	transformer := docstring.NewTransformer(registry,
		docstring.WithLogger(slog.Default()))

	paths, err := collectPaths(args)
	if err != nil {
		return err
	}

	failed := false

	for _, path := range paths {
		err := processPath(transformer, path, writeMode, diffMode, listMode)
		if err != nil {
			slog.Error("transform failed", "path", path, "error", err)

			failed = true
		}
	}

	if failed {
		return fmt.Errorf("some inputs failed")
	}

	return nil
}

// collectPaths expands directory arguments into the text files they
// contain. "-" (stdin) passes through as-is.
func collectPaths(args []string) ([]string, error) {
	var paths []string

	for _, arg := range args {
		if arg == "-" {
			paths = append(paths, arg)

			continue
		}

		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			paths = append(paths, arg)

			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if !d.IsDir() && isDocFile(path) {
				paths = append(paths, path)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return paths, nil
}

func isDocFile(path string) bool {
	switch filepath.Ext(path) {
	case ".txt", ".rst", ".doc":
		return true
	}

	return false
}

func processPath(transformer *docstring.Transformer, path string, writeMode, diffMode, listMode bool) error {
	var (
		src []byte
		err error
	)

	if path == "-" {
		src, err = io.ReadAll(os.Stdin)
	} else {
		src, err = os.ReadFile(path)
	}

	if err != nil {
		return err
	}

	lines := strings.Split(string(src), "\n")

	out, err := transformer.Transform(lines)
	if err != nil {
		return err
	}

	result := strings.Join(out, "\n")
	changed := result != string(src)

	switch {
	case diffMode:
		if changed {
			fmt.Printf("--- %s\n+++ %s\n", path, path)
			writeDiff(os.Stdout, string(src), result)
		}

	case listMode:
		if changed {
			fmt.Println(path)
		}

	case writeMode && path != "-":
		if changed {
			return os.WriteFile(path, []byte(result), 0o644)
		}

	default:
		fmt.Print(result)
		if !strings.HasSuffix(result, "\n") {
			fmt.Println()
		}
	}

	return nil
}
