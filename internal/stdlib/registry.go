// Package stdlib implements the fully-qualified-name signature registry
// and the textual macro pre-pass
package stdlib

import "github.com/1cbyc/rust-compiler/internal/typesystem"

// Function is one registry entry: a fully-qualified name mapped to its
// parameter types, return type, and the symbol a downstream code
// generator would link against.
type Function struct {
	Name       string
	Params     []typesystem.Type
	Return     typesystem.Type
	NativeName string
}

// Registry is a read-mostly, process-wide table of stdlib function
// signatures, keyed by fully-qualified name. Once built it is never
// mutated by a compilation.
type Registry struct {
	functions map[string]*Function
}

// NewRegistry builds a Registry seeded with the required minimum
// signature set plus a few additional entries (`format`, `assert`,
// `Vec::with_capacity`) recovered from the reference stdlib.
func NewRegistry(universe *typesystem.Universe) *Registry {
	r := &Registry{functions: make(map[string]*Function)}

	str := typesystem.Ref{Inner: typesystem.Str{}}
	unit := universe.UnitT
	usize := universe.USize
	vecT := typesystem.Generic{Name: "Vec", Args: []typesystem.Type{typesystem.Unknown{}}}
	vecRefMut := typesystem.Ref{Inner: vecT, Mutable: true}
	vecRef := typesystem.Ref{Inner: vecT}
	optionT := typesystem.Generic{Name: "Option", Args: []typesystem.Type{typesystem.Unknown{}}}
	resultT := typesystem.Generic{Name: "Result", Args: []typesystem.Type{typesystem.Unknown{}, typesystem.Unknown{}}}

	r.register("print", []typesystem.Type{str}, unit, "stdlib_print")
	r.register("println", []typesystem.Type{str}, unit, "stdlib_println")
	r.register("len", []typesystem.Type{str}, usize, "stdlib_string_len")
	r.register("concat", []typesystem.Type{str, str}, typesystem.String{}, "stdlib_string_concat")
	r.register("Vec::new", nil, vecT, "stdlib_vec_new")
	r.register("push", []typesystem.Type{vecRefMut, typesystem.Unknown{}}, unit, "stdlib_vec_push")
	r.register("get", []typesystem.Type{vecRef, usize}, optionT, "stdlib_vec_get")
	r.register("Result::Ok", []typesystem.Type{typesystem.Unknown{}}, resultT, "stdlib_result_ok")
	r.register("Result::Err", []typesystem.Type{typesystem.Unknown{}}, resultT, "stdlib_result_err")

	r.register("format", []typesystem.Type{str}, typesystem.String{}, "stdlib_format")
	r.register("assert", []typesystem.Type{universe.BoolT}, unit, "stdlib_assert")
	r.register("Vec::with_capacity", []typesystem.Type{usize}, vecT, "stdlib_vec_with_capacity")

	return r
}

func (r *Registry) register(name string, params []typesystem.Type, ret typesystem.Type, native string) {
	r.functions[name] = &Function{Name: name, Params: params, Return: ret, NativeName: native}
}

// Lookup returns the registered signature for a fully-qualified name,
// or false if none is registered.
func (r *Registry) Lookup(name string) (*Function, bool) {
	f, ok := r.functions[name]
	return f, ok
}

// Names returns every registered function name, for diagnostics and
// tests; order is unspecified.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.functions))
	for name := range r.functions {
		names = append(names, name)
	}
	return names
}
