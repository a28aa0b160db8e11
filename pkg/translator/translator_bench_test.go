package translator

import "testing"

// simpleSource is a minimal program used for benchmarking the fast path.
const simpleSource = `
x = 3;
y = x * 2 + 1;
disp(y);
`

// complexSource exercises nested loops, branches, builtins and comments.
const complexSource = `
% collatz and friends
n = 27;
steps = 0;
while n > 1
  if mod(n, 2) == 0
    n = n / 2;
  else
    n = 3 * n + 1;
  end
  steps = steps + 1;
end
disp(steps);

total = 0;
for i = 1:100
  for j = 100:-1:i
    if mod(i * j, 7) == 0
      total = total + mod(i + j, 13);
    end
  end
end
disp(total);

k = 10;
while k >= 0
  disp(-k);
  k = k - 2;
  if k < 3
    break;
  end
end
disp("done");
`

// --- Lex benchmarks ---

func BenchmarkLex_Simple(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, diags := Lex(simpleSource)
		if len(diags) != 0 {
			b.Fatal(diags[0])
		}
	}
}

func BenchmarkLex_Complex(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, diags := Lex(complexSource)
		if len(diags) != 0 {
			b.Fatal(diags[0])
		}
	}
}

// --- Parse benchmarks ---
// Tokens are pre-computed outside the timed region.

func BenchmarkParse_Complex(b *testing.B) {
	tokens, _ := Lex(complexSource)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := Parse(tokens, complexSource)
		if err != nil {
			b.Fatal(err)
		}
	}
}

// --- Generate benchmarks ---

func BenchmarkGenerate_Complex(b *testing.B) {
	tokens, _ := Lex(complexSource)
	prog, err := Parse(tokens, complexSource)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := Generate(prog, NewSymbolTable())
		if err != nil {
			b.Fatal(err)
		}
	}
}

// --- Full pipeline benchmarks (Lex + Parse + Generate + Emit) ---

func BenchmarkTranslate_Simple(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Translate(simpleSource); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTranslate_Complex(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Translate(complexSource); err != nil {
			b.Fatal(err)
		}
	}
}
