package main

import (
	"fmt"
	"os"

	"mtranspile/pkg/translator"
	"mtranspile/pkg/utils"
)

const testSource = `x = 10;
% count down
while x > 0
  disp(mod(x, 3));
  x = x - 1;
end
`

func main() {
	src := testSource
	if len(os.Args) > 1 {
		data, err := utils.ReadSource(os.Args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, "read error:", err)
			os.Exit(1)
		}
		src = data
	}

	fmt.Printf("Source:\n%s\n", src)

	// Lex
	tokens, diags := translator.Lex(src)
	fmt.Printf("Tokens (%d)\n", len(tokens))
	for _, tok := range tokens {
		fmt.Printf("  %s  [%s]\n", tok, tok.Type.Class())
	}
	fmt.Println()

	if len(diags) > 0 {
		fmt.Println("Lexical diagnostics")
		for _, d := range diags {
			fmt.Println(" ", d)
		}
		fmt.Println()
	}

	// Parse
	prog, err := translator.Parse(tokens, src)
	if err != nil {
		fmt.Fprintln(os.Stderr, "parse error:", err)
		os.Exit(1)
	}

	fmt.Println("AST")
	for _, s := range prog.Body {
		fmt.Println(" ", s)
	}
	fmt.Println()

	// code Generation
	syms := translator.NewSymbolTable()
	body, err := translator.Generate(prog, syms)
	if err != nil {
		fmt.Fprintln(os.Stderr, "codegen error:", err)
		os.Exit(1)
	}

	fmt.Println("Generated C++")
	fmt.Print(translator.Emit(body))
	fmt.Println()
	fmt.Print(syms)
}
