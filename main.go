package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"mtranspile/pkg/translator"
	"mtranspile/pkg/utils"
)

const (
	defaultInput = "input.m"
	outputPath   = "output.cpp"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("mtranspile: ")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [input.m]\n", os.Args[0])
		fmt.Fprintf(flag.CommandLine.Output(), "translates the input (default %s) into %s\n", defaultInput, outputPath)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	inPath := defaultInput
	if flag.NArg() == 1 {
		inPath = flag.Arg(0)
	}

	if err := run(inPath, outputPath); err != nil {
		var syntaxErr *translator.SyntaxError
		if errors.As(err, &syntaxErr) {
			fmt.Fprintln(os.Stderr, "syntax error:", syntaxErr)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// run translates inPath and writes outPath. Nothing is written unless the
// whole translation succeeds.
func run(inPath, outPath string) error {
	fullPath, _, err := utils.GetPathInfo(inPath)
	if err != nil {
		return err
	}
	src, err := utils.ReadSource(fullPath)
	if err != nil {
		return err
	}

	res, err := translator.Translate(src)
	if err != nil {
		var syntaxErr *translator.SyntaxError
		if errors.As(err, &syntaxErr) {
			logDiagnostics(inPath, syntaxErr.Diagnostics)
		}
		return err
	}
	logDiagnostics(inPath, res.Diagnostics)

	if err := utils.WriteFileAtomic(outPath, []byte(res.Output), 0o644); err != nil {
		return err
	}
	log.Printf("translated %s -> %s (%d lines, %d identifiers)", inPath, outPath, len(res.Body), res.Symbols.Len())
	return nil
}

func logDiagnostics(inPath string, diags []*translator.LexicalError) {
	for _, d := range diags {
		log.Printf("%s: %v (skipped)", inPath, d)
	}
}
