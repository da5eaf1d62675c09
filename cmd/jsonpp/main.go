// Command jsonpp validates, reformats, and queries JSON documents.
//
// It parses its input with the typedjson tree parser (optionally accepting
// JSONC), applies an optional JMESPath expression, and re-serializes the
// result compact or pretty-printed.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/typedjson/typedjson/jsontree"
	"github.com/typedjson/typedjson/query"
)

// CLI defines the command-line interface.
var CLI struct {
	Input   string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Output  string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Compact bool   `help:"Emit compact output with no inserted whitespace." short:"c"`
	Indent  string `help:"Indent string for pretty-printed output." default:"  "`
	JSONC   bool   `help:"Accept JSON with comments and trailing commas."`
	Query   string `help:"JMESPath expression applied to the document before output." short:"q"`
	Version bool   `help:"Show version information." short:"v"`
}

const version = "0.1.0"

func main() {
	parser := kong.Must(&CLI,
		kong.Name("jsonpp"),
		kong.Description("Validate, reformat, and query JSON documents"),
		kong.UsageOnError(),
	)

	if _, err := parser.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("jsonpp version %s\n", version)
		return
	}

	in := io.Reader(os.Stdin)
	if CLI.Input != "" {
		f, err := os.Open(CLI.Input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "jsonpp: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	out := io.Writer(os.Stdout)
	if CLI.Output != "" {
		f, err := os.Create(CLI.Output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "jsonpp: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	opts := options{
		compact: CLI.Compact,
		indent:  CLI.Indent,
		jsonc:   CLI.JSONC,
		query:   CLI.Query,
	}
	if err := run(in, out, opts); err != nil {
		fmt.Fprintf(os.Stderr, "jsonpp: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	compact bool
	indent  string
	jsonc   bool
	query   string
}

func run(in io.Reader, out io.Writer, opts options) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var tree jsontree.Value
	if opts.jsonc {
		tree, err = jsontree.ParseJSONC(data)
	} else {
		tree, err = jsontree.Parse(data)
	}
	if err != nil {
		return err
	}

	if opts.query != "" {
		tree, err = query.Search(opts.query, tree)
		if err != nil {
			return err
		}
	}

	var rendered []byte
	if opts.compact {
		rendered = jsontree.Encode(tree)
	} else {
		rendered = jsontree.EncodeIndent(tree, "", opts.indent)
	}

	if _, err := out.Write(append(rendered, '\n')); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
