package symbols

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1cbyc/rust-compiler/internal/typesystem"
)

func TestInsertAndLookup(t *testing.T) {
	tbl := NewTable()
	tbl.OpenScope()

	ok := tbl.Insert(&Symbol{Kind: Variable, Name: "x", Type: typesystem.Int{Width: 32}})
	require.True(t, ok)

	sym, found := tbl.Lookup("x")
	require.True(t, found)
	assert.Equal(t, "x", sym.Name)
}

func TestRedefinitionInSameScopeFails(t *testing.T) {
	tbl := NewTable()
	tbl.OpenScope()
	require.True(t, tbl.Insert(&Symbol{Kind: Variable, Name: "x"}))
	assert.False(t, tbl.Insert(&Symbol{Kind: Variable, Name: "x"}))
}

func TestShadowingAcrossScopesSucceeds(t *testing.T) {
	tbl := NewTable()
	tbl.OpenScope()
	require.True(t, tbl.Insert(&Symbol{Kind: Variable, Name: "x", Type: typesystem.Int{Width: 32}}))

	tbl.OpenScope()
	assert.True(t, tbl.IsShadowing("x"))
	assert.True(t, tbl.Insert(&Symbol{Kind: Variable, Name: "x", Type: typesystem.Bool{}}))

	sym, _ := tbl.Lookup("x")
	assert.Equal(t, typesystem.Bool{}, sym.Type)
	tbl.CloseScope()

	sym, _ = tbl.Lookup("x")
	assert.Equal(t, typesystem.Int{Width: 32}, sym.Type)
}

func TestLookupSearchesOutward(t *testing.T) {
	tbl := NewTable()
	tbl.OpenScope()
	tbl.Insert(&Symbol{Kind: Function, Name: "outer"})
	tbl.OpenScope()
	tbl.Insert(&Symbol{Kind: Variable, Name: "inner"})

	_, found := tbl.Lookup("outer")
	assert.True(t, found)
	_, found = tbl.Lookup("nonexistent")
	assert.False(t, found)
}

func TestLookupNeverFabricatesASymbol(t *testing.T) {
	tbl := NewTable()
	sym, found := tbl.Lookup("nothing")
	assert.False(t, found)
	assert.Nil(t, sym)
}

func TestScopeDisciplineRoundTrips(t *testing.T) {
	tbl := NewTable()
	before := tbl.Snapshot()

	tbl.OpenScope()
	tbl.Insert(&Symbol{Kind: Variable, Name: "a"})
	tbl.OpenScope()
	tbl.Insert(&Symbol{Kind: Variable, Name: "b"})
	tbl.CloseScope()
	tbl.CloseScope()

	assert.True(t, tbl.Equal(before))
}

func TestLookupLocalDoesNotSeeParentScope(t *testing.T) {
	tbl := NewTable()
	tbl.OpenScope()
	tbl.Insert(&Symbol{Kind: Variable, Name: "x"})
	tbl.OpenScope()

	_, foundLocal := tbl.LookupLocal("x")
	assert.False(t, foundLocal)
	_, foundOuter := tbl.Lookup("x")
	assert.True(t, foundOuter)
}
