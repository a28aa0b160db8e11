// Package translator provides a lexer, parser and code generator that turn
// a small MATLAB-like imperative language into a C++ program.
//
// Pipeline: source → Lex → Parse → Generate → Emit → C++ text
package translator
