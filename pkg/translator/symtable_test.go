package translator

import (
	"testing"
)

func TestSymbolTable(t *testing.T) {
	t.Run("DeclareOnce", func(t *testing.T) {
		s := NewSymbolTable()
		sym1, exists := s.Declare("x", 1)
		if exists {
			t.Error("x: first declaration reported as existing")
		}
		if sym1.Order != 0 || sym1.Line != 1 {
			t.Errorf("x: got order %d line %d, want 0 and 1", sym1.Order, sym1.Line)
		}

		// A later assignment keeps the original symbol.
		sym2, exists := s.Declare("x", 7)
		if !exists {
			t.Error("x: second declaration not reported as existing")
		}
		if sym2 != sym1 {
			t.Errorf("x: redeclaration changed the symbol: %+v -> %+v", sym1, sym2)
		}
		if s.Len() != 1 {
			t.Errorf("Len() = %d, want 1", s.Len())
		}
	})

	t.Run("Order", func(t *testing.T) {
		s := NewSymbolTable()
		for i, name := range []string{"zeta", "alpha", "mid"} {
			s.Declare(name, i+1)
		}
		names := s.Names()
		want := []string{"zeta", "alpha", "mid"}
		for i := range want {
			if names[i] != want[i] {
				t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
			}
		}
	})

	t.Run("Lookup", func(t *testing.T) {
		s := NewSymbolTable()
		s.Declare("a", 3)
		if sym, ok := s.Lookup("a"); !ok || sym.Line != 3 {
			t.Errorf("Lookup(a) = %+v, %v", sym, ok)
		}
		if _, ok := s.Lookup("b"); ok {
			t.Error("Lookup(b) found an undeclared name")
		}
	})

	t.Run("String", func(t *testing.T) {
		s := NewSymbolTable()
		if got := s.String(); got != "Declared: (empty)\n" {
			t.Errorf("empty String() = %q", got)
		}
		s.Declare("total", 2)
		s.Declare("n", 5)
		want := "Declared:\n" +
			"  total                 line 2\n" +
			"  n                     line 5\n"
		if got := s.String(); got != want {
			t.Errorf("String() =\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("CloneIsIndependent", func(t *testing.T) {
		s := NewSymbolTable()
		s.Declare("a", 1)
		c := s.clone()
		c.Declare("b", 2)
		if s.Len() != 1 {
			t.Errorf("original grew to %d entries", s.Len())
		}
		if c.Len() != 2 {
			t.Errorf("clone has %d entries, want 2", c.Len())
		}
	})
}
