// Package typesystem implements the nominal/structural type universe:
// concrete tagged types (no polymorphism, no
// unification) with structural equality for most kinds and nominal
// equality for named structs/enums.
package typesystem

import (
	"fmt"
	"strings"
)

// Type is the common interface every type kind satisfies.
type Type interface {
	String() string
	// Size is the type's size in bytes, or 0 if unsized.
	Size() int
	IsSized() bool
	// Equals compares this type against another using the kind-
	// appropriate equality rule (nominal for Struct/Enum, structural
	// otherwise).
	Equals(other Type) bool
	Clone() Type
}

// Unit is the zero-information type, the result of statements with
// no value.
type Unit struct{}

func (Unit) String() string      { return "()" }
func (Unit) Size() int           { return 0 }
func (Unit) IsSized() bool       { return true }
func (Unit) Clone() Type         { return Unit{} }
func (u Unit) Equals(o Type) bool { _, ok := o.(Unit); return ok }

// Bool is the boolean type.
type Bool struct{}

func (Bool) String() string       { return "bool" }
func (Bool) Size() int            { return 1 }
func (Bool) IsSized() bool        { return true }
func (Bool) Clone() Type          { return Bool{} }
func (b Bool) Equals(o Type) bool { _, ok := o.(Bool); return ok }

// Int is a signed integer of the given bit width (8/16/32/64).
type Int struct{ Width int }

func (i Int) String() string { return fmt.Sprintf("i%d", i.Width) }
func (i Int) Size() int      { return i.Width / 8 }
func (Int) IsSized() bool    { return true }
func (i Int) Clone() Type    { return Int{Width: i.Width} }
func (i Int) Equals(o Type) bool {
	other, ok := o.(Int)
	return ok && other.Width == i.Width
}

// BigInt is an arbitrary-precision signed integer: the type of a
// literal whose value doesn't fit in an i64, backed by math/big.Int
// all the way through lowering and codegen.
type BigInt struct{}

func (BigInt) String() string      { return "bigint" }
func (BigInt) Size() int           { return 0 }
func (BigInt) IsSized() bool       { return false }
func (BigInt) Clone() Type         { return BigInt{} }
func (b BigInt) Equals(o Type) bool { _, ok := o.(BigInt); return ok }

// UInt is an unsigned integer of the given bit width, or the
// pointer-sized "usize" when Width is 0.
type UInt struct{ Width int }

func (u UInt) String() string {
	if u.Width == 0 {
		return "usize"
	}
	return fmt.Sprintf("u%d", u.Width)
}
func (u UInt) Size() int {
	if u.Width == 0 {
		return 8
	}
	return u.Width / 8
}
func (UInt) IsSized() bool { return true }
func (u UInt) Clone() Type { return UInt{Width: u.Width} }
func (u UInt) Equals(o Type) bool {
	other, ok := o.(UInt)
	return ok && other.Width == u.Width
}

// Float is a floating point type of the given bit width (32/64).
type Float struct{ Width int }

func (f Float) String() string { return fmt.Sprintf("f%d", f.Width) }
func (f Float) Size() int      { return f.Width / 8 }
func (Float) IsSized() bool    { return true }
func (f Float) Clone() Type    { return Float{Width: f.Width} }
func (f Float) Equals(o Type) bool {
	other, ok := o.(Float)
	return ok && other.Width == f.Width
}

// Char is a single Unicode scalar value.
type Char struct{}

func (Char) String() string      { return "char" }
func (Char) Size() int           { return 4 }
func (Char) IsSized() bool       { return true }
func (Char) Clone() Type         { return Char{} }
func (c Char) Equals(o Type) bool { _, ok := o.(Char); return ok }

// Str is the borrowed, unsized string-slice type ("&str" minus the
// reference wrapper — the checker produces Ref{Inner: Str} for the
// full "&str" form).
type Str struct{}

func (Str) String() string      { return "str" }
func (Str) Size() int           { return 0 }
func (Str) IsSized() bool       { return false }
func (Str) Clone() Type         { return Str{} }
func (s Str) Equals(o Type) bool { _, ok := o.(Str); return ok }

// String is the owned, growable string type.
type String struct{}

func (String) String() string      { return "String" }
func (String) Size() int           { return 24 } // ptr + len + cap, conventional
func (String) IsSized() bool       { return true }
func (String) Clone() Type         { return String{} }
func (s String) Equals(o Type) bool { _, ok := o.(String); return ok }

// Array is a fixed-length, element-homogeneous type.
type Array struct {
	Elem Type
	Len  int
}

func (a Array) String() string { return fmt.Sprintf("[%s; %d]", a.Elem.String(), a.Len) }
func (a Array) Size() int      { return a.Elem.Size() * a.Len }
func (a Array) IsSized() bool  { return a.Elem.IsSized() }
func (a Array) Clone() Type    { return Array{Elem: a.Elem.Clone(), Len: a.Len} }
func (a Array) Equals(o Type) bool {
	other, ok := o.(Array)
	return ok && other.Len == a.Len && a.Elem.Equals(other.Elem)
}

// Slice is an unsized view over a contiguous run of Elem.
type Slice struct{ Elem Type }

func (s Slice) String() string { return fmt.Sprintf("[%s]", s.Elem.String()) }
func (Slice) Size() int        { return 0 }
func (Slice) IsSized() bool    { return false }
func (s Slice) Clone() Type    { return Slice{Elem: s.Elem.Clone()} }
func (s Slice) Equals(o Type) bool {
	other, ok := o.(Slice)
	return ok && s.Elem.Equals(other.Elem)
}

// Tuple is a fixed, heterogeneous, positional product type.
type Tuple struct{ Elems []Type }

func (t Tuple) String() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
func (t Tuple) Size() int {
	total := 0
	for _, e := range t.Elems {
		total += e.Size()
	}
	return total
}
func (t Tuple) IsSized() bool {
	for _, e := range t.Elems {
		if !e.IsSized() {
			return false
		}
	}
	return true
}
func (t Tuple) Clone() Type {
	elems := make([]Type, len(t.Elems))
	for i, e := range t.Elems {
		elems[i] = e.Clone()
	}
	return Tuple{Elems: elems}
}
func (t Tuple) Equals(o Type) bool {
	other, ok := o.(Tuple)
	if !ok || len(other.Elems) != len(t.Elems) {
		return false
	}
	for i := range t.Elems {
		if !t.Elems[i].Equals(other.Elems[i]) {
			return false
		}
	}
	return true
}

// StructField is a single named, typed struct member.
type StructField struct {
	Name string
	Type Type
}

// Struct is a named product type. Equality is nominal: two Structs
// are equal iff their Name matches, regardless of field identity
//.
type Struct struct {
	Name   string
	Fields []StructField
}

func (s Struct) String() string { return s.Name }
func (s Struct) Size() int {
	total := 0
	for _, f := range s.Fields {
		total += f.Type.Size()
	}
	return total
}
func (s Struct) IsSized() bool {
	for _, f := range s.Fields {
		if !f.Type.IsSized() {
			return false
		}
	}
	return true
}
func (s Struct) Clone() Type { return s }
func (s Struct) Equals(o Type) bool {
	other, ok := o.(Struct)
	return ok && other.Name == s.Name
}

// EnumVariant is a single named, optionally-payload-carrying variant.
type EnumVariant struct {
	Name    string
	Payload []Type
}

// Enum is a named sum type. Equality is nominal, like Struct.
type Enum struct {
	Name     string
	Variants []EnumVariant
}

func (e Enum) String() string { return e.Name }
func (e Enum) Size() int {
	max := 0
	for _, v := range e.Variants {
		sz := 0
		for _, p := range v.Payload {
			sz += p.Size()
		}
		if sz > max {
			max = sz
		}
	}
	return max
}
func (e Enum) IsSized() bool {
	for _, v := range e.Variants {
		for _, p := range v.Payload {
			if !p.IsSized() {
				return false
			}
		}
	}
	return true
}
func (e Enum) Clone() Type { return e }
func (e Enum) Equals(o Type) bool {
	other, ok := o.(Enum)
	return ok && other.Name == e.Name
}

// Function is a callable signature type.
type Function struct {
	Params []Type
	Ret    Type
}

func (f Function) String() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.String()
	}
	ret := "()"
	if f.Ret != nil {
		ret = f.Ret.String()
	}
	return "fn(" + strings.Join(parts, ", ") + ") -> " + ret
}
func (Function) Size() int     { return 0 }
func (Function) IsSized() bool { return false }
func (f Function) Clone() Type {
	params := make([]Type, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.Clone()
	}
	var ret Type
	if f.Ret != nil {
		ret = f.Ret.Clone()
	}
	return Function{Params: params, Ret: ret}
}
func (f Function) Equals(o Type) bool {
	other, ok := o.(Function)
	if !ok || len(other.Params) != len(f.Params) {
		return false
	}
	if (f.Ret == nil) != (other.Ret == nil) {
		return false
	}
	if f.Ret != nil && !f.Ret.Equals(other.Ret) {
		return false
	}
	for i := range f.Params {
		if !f.Params[i].Equals(other.Params[i]) {
			return false
		}
	}
	return true
}

// Ref is a borrowed reference, shared or mutable.
type Ref struct {
	Inner   Type
	Mutable bool
}

func (r Ref) String() string {
	if r.Mutable {
		return "&mut " + r.Inner.String()
	}
	return "&" + r.Inner.String()
}
func (Ref) Size() int      { return 8 }
func (Ref) IsSized() bool  { return true }
func (r Ref) Clone() Type  { return Ref{Inner: r.Inner.Clone(), Mutable: r.Mutable} }
func (r Ref) Equals(o Type) bool {
	other, ok := o.(Ref)
	return ok && other.Mutable == r.Mutable && r.Inner.Equals(other.Inner)
}

// Pointer is a raw pointer, const or mutable.
type Pointer struct {
	Inner   Type
	Mutable bool
}

func (p Pointer) String() string {
	if p.Mutable {
		return "*mut " + p.Inner.String()
	}
	return "*const " + p.Inner.String()
}
func (Pointer) Size() int     { return 8 }
func (Pointer) IsSized() bool { return true }
func (p Pointer) Clone() Type { return Pointer{Inner: p.Inner.Clone(), Mutable: p.Mutable} }
func (p Pointer) Equals(o Type) bool {
	other, ok := o.(Pointer)
	return ok && other.Mutable == p.Mutable && p.Inner.Equals(other.Inner)
}

// Generic is an unresolved named type applied to type arguments, e.g.
// Vec<T> or Option<i32>. Spec.md excludes monomorphization, so this
// is carried structurally rather than expanded.
type Generic struct {
	Name string
	Args []Type
}

func (g Generic) String() string {
	if len(g.Args) == 0 {
		return g.Name
	}
	parts := make([]string, len(g.Args))
	for i, a := range g.Args {
		parts[i] = a.String()
	}
	return g.Name + "<" + strings.Join(parts, ", ") + ">"
}
func (Generic) Size() int     { return 0 }
func (Generic) IsSized() bool { return false }
func (g Generic) Clone() Type {
	args := make([]Type, len(g.Args))
	for i, a := range g.Args {
		args[i] = a.Clone()
	}
	return Generic{Name: g.Name, Args: args}
}
func (g Generic) Equals(o Type) bool {
	other, ok := o.(Generic)
	if !ok || other.Name != g.Name || len(other.Args) != len(g.Args) {
		return false
	}
	for i := range g.Args {
		if !g.Args[i].Equals(other.Args[i]) {
			return false
		}
	}
	return true
}

// Unknown is the universal inference placeholder. It is never shared
// between two distinct failures — each occurrence is logically its
// own value even though the zero-value struct compares equal to
// itself.
type Unknown struct{}

func (Unknown) String() string      { return "?" }
func (Unknown) Size() int           { return 0 }
func (Unknown) IsSized() bool       { return false }
func (Unknown) Clone() Type         { return Unknown{} }
func (u Unknown) Equals(o Type) bool { _, ok := o.(Unknown); return ok }
