package targets

import (
	"testing"

	"github.com/1cbyc/rust-compiler/internal/ast"
	"github.com/1cbyc/rust-compiler/internal/diagnostics"
	"github.com/1cbyc/rust-compiler/internal/parser"
)

// FuzzParser checks the parse-tree well-formedness property: for
// any input text, parsing terminates and every returned
// statement is non-nil with a span whose start does not lie after
// its end.
func FuzzParser(f *testing.F) {
	seeds := []string{
		"let x = 1 + 2 * 3;",
		"fn add(a: i32, b: i32) -> i32 { return a + b; }",
		"let x = ; let y = 42;",
		"struct Point { x: i32, y: i32 };",
		"enum Option { Some(i32), None };",
		"impl Point { fn origin() -> i32 { return 0; } }",
		"fn main() { for i in 0..10 { print(i); } }",
		"{{{{{",
		"fn fn fn",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		sink := diagnostics.NewSink(50)
		p := parser.New(input, "fuzz.rs", sink)
		prog := p.ParseProgram()

		for _, stmt := range prog.Statements {
			if stmt == nil {
				t.Fatalf("parser produced a nil statement for input %q", input)
			}
			assertWellFormed(t, stmt)
		}
	})
}

func assertWellFormed(t *testing.T, n ast.Node) {
	t.Helper()
	if n.Span().Start.Offset > n.Span().End.Offset {
		t.Fatalf("node span is inverted: %+v", n.Span())
	}
}
