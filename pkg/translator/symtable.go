package translator

import (
	"fmt"
	"sort"
	"strings"
)

// Symbol is an identifier that has been declared in the output.
type Symbol struct {
	Name  string
	Line  int // source line of the declaring assignment
	Order int // 0-based declaration order
}

// SymbolTable is the set of identifiers already declared in the translation
// unit. There is a single global scope: names are added on first assignment
// and never removed, whichever branch the assignment sits in.
type SymbolTable struct {
	globals map[string]Symbol
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{globals: make(map[string]Symbol)}
}

// Declare records name as declared. If name is already present the existing
// symbol is returned with true.
func (s *SymbolTable) Declare(name string, line int) (Symbol, bool) {
	if sym, ok := s.globals[name]; ok {
		return sym, true
	}
	sym := Symbol{Name: name, Line: line, Order: len(s.globals)}
	s.globals[name] = sym
	return sym, false
}

// Lookup returns the symbol and whether it was found.
func (s *SymbolTable) Lookup(name string) (Symbol, bool) {
	sym, ok := s.globals[name]
	return sym, ok
}

// Len returns the number of declared identifiers.
func (s *SymbolTable) Len() int {
	return len(s.globals)
}

// Names returns the declared identifiers in declaration order.
func (s *SymbolTable) Names() []string {
	names := make([]string, 0, len(s.globals))
	for name := range s.globals {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return s.globals[names[i]].Order < s.globals[names[j]].Order
	})
	return names
}

// String returns a deterministically ordered dump of the table.
func (s *SymbolTable) String() string {
	var sb strings.Builder
	if len(s.globals) == 0 {
		sb.WriteString("Declared: (empty)\n")
		return sb.String()
	}
	sb.WriteString("Declared:\n")
	for _, name := range s.Names() {
		sym := s.globals[name]
		fmt.Fprintf(&sb, "  %-20s  line %d\n", name, sym.Line)
	}
	return sb.String()
}

func (s *SymbolTable) clone() *SymbolTable {
	c := NewSymbolTable()
	for name, sym := range s.globals {
		c.globals[name] = sym
	}
	return c
}
