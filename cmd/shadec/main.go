// Command shadec is the shadec shader cross-compiler CLI.
//
// It reads a JSON-encoded shader AST, as produced by an external
// frontend, and writes the generated HLSL source.
//
// Usage:
//
//	shadec [options] <input.json>
//
// Examples:
//
//	shadec shader.json                  # Generate HLSL to stdout
//	shadec -o shader.hlsl shader.json   # Generate HLSL to file
//	shadec -entry vs_main shader.json   # Use a custom entry point name
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gogpu/shadec/ast"
	"github.com/gogpu/shadec/hlsl"
)

var (
	output  = flag.String("o", "", "output file (default: stdout)")
	entry   = flag.String("entry", "main", "entry point function name")
	version = flag.Bool("version", false, "print version")
)

const shadecVersion = "0.1.0-dev"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Printf("shadec version %s\n", shadecVersion)
		return
	}

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Error: no input file specified")
		usage()
		os.Exit(1)
	}

	inputPath := args[0]

	// Read input file
	data, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	// Decode the parser-produced AST
	program, err := ast.DecodeProgram(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding AST: %v\n", err)
		os.Exit(1)
	}

	// Generate HLSL
	opts := hlsl.DefaultOptions()
	opts.EntryPoint = *entry
	code, info, err := hlsl.Compile(program, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generation error: %v\n", err)
		os.Exit(1)
	}

	// Fallback diagnostics are warnings, not failures
	for _, d := range info.Diagnostics {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", d)
	}

	// Write output
	if *output != "" {
		err = os.WriteFile(*output, []byte(code), 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Successfully compiled %s to %s (%d bytes)\n", inputPath, *output, len(code))
	} else {
		_, err = os.Stdout.WriteString(code)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: shadec [options] <input.json>\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  shadec shader.json                Generate HLSL to stdout\n")
	fmt.Fprintf(os.Stderr, "  shadec -o shader.hlsl shader.json Generate HLSL to file\n")
	fmt.Fprintf(os.Stderr, "  shadec -entry vs_main shader.json Use a custom entry point\n")
}
