package stdlib

import "strings"

// Macro is a single textual substitution rule: the first occurrence of
// Pattern in the input is replaced with Replacement.
type Macro struct {
	Name        string
	Pattern     string
	Replacement string
}

// MacroExpander runs an unhygienic, single-pre-pass textual
// substitution over source text before it reaches the lexer:
// expansion scans left-to-right and replaces the first
// occurrence per macro per pass, not hygienic, a single
// pre-pass").
type MacroExpander struct {
	macros []*Macro
}

// NewMacroExpander builds an expander seeded with the two convenience
// macros `original_source/src/stdlib.c` predefines (recovered feature
// 6): `DEBUG_PRINT!`, rewritten to `println`, and `ASSERT_EQ!`,
// rewritten to `assert`; the argument list that follows is left as
// written.
func NewMacroExpander() *MacroExpander {
	return &MacroExpander{
		macros: []*Macro{
			{Name: "DEBUG_PRINT", Pattern: "DEBUG_PRINT!", Replacement: "println"},
			{Name: "ASSERT_EQ", Pattern: "ASSERT_EQ!", Replacement: "assert"},
		},
	}
}

// Register adds a macro to the expansion set, in definition order.
func (m *MacroExpander) Register(macro *Macro) {
	m.macros = append(m.macros, macro)
}

// Expand runs one left-to-right pass over src, replacing the first
// occurrence of each registered macro's pattern in registration order.
// A macro whose pattern doesn't occur is a no-op for that pass.
func (m *MacroExpander) Expand(src string) string {
	result := src
	for _, macro := range m.macros {
		if idx := strings.Index(result, macro.Pattern); idx >= 0 {
			result = result[:idx] + macro.Replacement + result[idx+len(macro.Pattern):]
		}
	}
	return result
}
