// Command septc compiles a September source file into a ".09" binary
// module: septc [-d] <source file> [<target file>].
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/krajzeg/september/internal/buildcache"
	"github.com/krajzeg/september/internal/compiler"
	"github.com/krajzeg/september/internal/constants"
	"github.com/krajzeg/september/internal/diagnostics"
	"github.com/krajzeg/september/internal/encoder"
	"github.com/krajzeg/september/internal/lexer"
	"github.com/krajzeg/september/internal/parser"
	"github.com/krajzeg/september/internal/pipeline"
	"github.com/krajzeg/september/internal/prettyprinter"
	"github.com/krajzeg/september/internal/utils"
)

// cacheFileName is the SQLite database septc keeps alongside its own
// working directory to skip recompiling unchanged source.
const cacheFileName = ".septc-cache.db"

func main() {
	args := os.Args[1:]

	debugDump := false
	if len(args) > 0 && args[0] == "-d" {
		debugDump = true
		args = args[1:]
	}

	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage:\n\tseptc [-d] <source file> [<target file>]")
		os.Exit(2)
	}

	inputPath := args[0]
	outputPath := utils.OutputPathFor(inputPath)
	if len(args) > 1 {
		outputPath = args[1]
	}

	source, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading source file: %s\n", err)
		os.Exit(2)
	}

	cache, cacheErr := buildcache.Open(cacheFileName)
	if cacheErr == nil {
		defer cache.Close()
	}

	sourceHash := buildcache.HashSource(string(source))
	if !debugDump && cache != nil {
		if entry, ok, err := cache.Lookup(sourceHash); err == nil && ok {
			if err := os.WriteFile(outputPath, entry.Module, 0644); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing module file: %s\n", err)
				os.Exit(1)
			}
			return
		}
	}

	ctx := pipeline.NewCompileContext(string(source), inputPath)
	pl := pipeline.New(
		&lexer.Processor{},
		&parser.Processor{},
		&constants.Processor{},
		&compiler.Processor{},
		&encoder.Processor{},
	)
	result := pl.Run(ctx)

	if result.Failed() {
		for _, e := range result.Errors {
			printError(e, string(source))
		}
		os.Exit(1)
	}

	var buildID string
	if cache != nil {
		id, err := cache.Store(sourceHash, result.Module)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not update build cache: %s\n", err)
		}
		buildID = id
	}

	if debugDump {
		dump := prettyprinter.Dump(result.Pool, result.Functions, len(result.Module), buildID)
		fmt.Print(dump)
	}

	if err := os.WriteFile(outputPath, result.Module, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing module file: %s\n", err)
		os.Exit(1)
	}
}

// printError reproduces original_source/py/sepcompiler.py's print_error:
// the message at line:column, the offending source line, and a caret
// under the exact column, colored when stderr is a real terminal.
func printError(e *diagnostics.Error, source string) {
	caret := "^"
	msg := e.Error()
	if isatty.IsTerminal(os.Stderr.Fd()) {
		caret = "\033[31m^\033[0m"
		msg = "\033[1m" + msg + "\033[0m"
	}

	fmt.Fprintln(os.Stderr, msg)

	if e.Loc.Line <= 0 {
		return
	}
	lines := strings.Split(source, "\n")
	if e.Loc.Line > len(lines) {
		return
	}
	offending := strings.ReplaceAll(lines[e.Loc.Line-1], "\t", " ")
	fmt.Fprintln(os.Stderr, offending)
	fmt.Fprintln(os.Stderr, strings.Repeat(" ", e.Loc.Column-1)+caret)
}
