package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/quadra-lang/quadra/internal/config"
	"github.com/quadra-lang/quadra/internal/lexer"
	"github.com/quadra-lang/quadra/internal/manifest"
	"github.com/quadra-lang/quadra/internal/parser"
	"github.com/quadra-lang/quadra/internal/pipeline"
	"github.com/quadra-lang/quadra/internal/prettyprinter"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: %s <command> <file.qd>

Commands:
  check    parse the file and report diagnostics
  ast      parse the file and print the AST as JSON
  tree     parse the file and print the AST as an indented tree
  tokens   print the token stream (debugging aid)
`, os.Args[0])
	os.Exit(2)
}

func main() {
	if len(os.Args) < 3 {
		usage()
	}
	command, path := os.Args[1], os.Args[2]

	if !isSourceFile(path) {
		fmt.Fprintf(os.Stderr, "%s: not a Quadra source file\n", path)
		os.Exit(1)
	}

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	// The manifest is optional for single-file checks; when present it names
	// the project in output.
	project := ""
	if manifestPath, err := manifest.Find(filepath.Dir(path)); err == nil && manifestPath != "" {
		if m, err := manifest.Load(manifestPath); err == nil {
			project = m.Name
		} else {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
	}

	ctx := pipeline.NewContext(path, string(source))

	switch command {
	case "tokens":
		ctx = (&lexer.LexerProcessor{}).Process(ctx)
		if reportErrors(ctx) {
			os.Exit(1)
		}
		for {
			tok, ok := ctx.TokenStream.Bump()
			if !ok {
				break
			}
			fmt.Println(tok)
		}

	case "check", "ast", "tree":
		p := pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{})
		ctx = p.Run(ctx)
		if reportErrors(ctx) {
			os.Exit(1)
		}

		switch command {
		case "check":
			what := path
			if project != "" {
				what = fmt.Sprintf("%s (%s)", path, project)
			}
			fmt.Printf("ok: %s, %d top-level items\n", what, len(ctx.Module.Roots))
		case "ast":
			out, err := json.MarshalIndent(ctx.Module, "", "  ")
			if err != nil {
				fmt.Fprintf(os.Stderr, "%v\n", err)
				os.Exit(1)
			}
			fmt.Println(string(out))
		case "tree":
			tp := prettyprinter.NewTreePrinter()
			tp.PrintModule(ctx.Module)
			fmt.Print(tp.String())
		}

	default:
		usage()
	}
}

func isSourceFile(path string) bool {
	for _, ext := range config.SourceFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// reportErrors prints every diagnostic to stderr, colorized when stderr is a
// terminal, and reports whether there were any.
func reportErrors(ctx *pipeline.Context) bool {
	if !ctx.Failed() {
		return false
	}
	colored := useColor()
	for _, err := range ctx.Errors {
		line := err.Error()
		if colored {
			line = "\x1b[31m" + line + "\x1b[0m"
		}
		fmt.Fprintln(os.Stderr, line)
	}
	return true
}

func useColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return false
	}
	return os.Getenv("TERM") != "dumb"
}
