package stdlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1cbyc/rust-compiler/internal/typesystem"
)

func TestRegistryContainsMandatedMinimum(t *testing.T) {
	r := NewRegistry(typesystem.Init())
	for _, name := range []string{
		"print", "println", "len", "concat",
		"Vec::new", "push", "get",
		"Result::Ok", "Result::Err",
	} {
		_, ok := r.Lookup(name)
		assert.True(t, ok, "missing mandated stdlib entry %q", name)
	}
}

func TestRegistryContainsRecoveredAdditions(t *testing.T) {
	r := NewRegistry(typesystem.Init())
	for _, name := range []string{"format", "assert", "Vec::with_capacity"} {
		_, ok := r.Lookup(name)
		assert.True(t, ok, "missing recovered stdlib entry %q", name)
	}
}

func TestRegistryLenSignature(t *testing.T) {
	universe := typesystem.Init()
	r := NewRegistry(universe)
	f, ok := r.Lookup("len")
	require.True(t, ok)
	require.Len(t, f.Params, 1)
	assert.True(t, f.Return.Equals(universe.USize))
}

func TestRegistryUnknownNameNotFound(t *testing.T) {
	r := NewRegistry(typesystem.Init())
	_, ok := r.Lookup("not_a_real_function")
	assert.False(t, ok)
}
