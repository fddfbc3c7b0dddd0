package typesystem

// Universe owns the canonical primitive singletons used throughout a
// single compilation. Constructed by Init and torn down by Cleanup,
// mirroring the types_init/types_cleanup lifecycle of the reference
// implementation this package's shape is grounded on.
type Universe struct {
	UnitT   Type
	BoolT   Type
	I8      Type
	I16     Type
	I32     Type
	I64     Type
	BigIntT Type
	U8      Type
	U16     Type
	U32     Type
	U64     Type
	USize   Type
	F32     Type
	F64     Type
	CharT   Type
	StrT    Type
	StringT Type
}

// Init constructs the canonical primitive set.
func Init() *Universe {
	return &Universe{
		UnitT:   Unit{},
		BoolT:   Bool{},
		I8:      Int{Width: 8},
		I16:     Int{Width: 16},
		I32:     Int{Width: 32},
		I64:     Int{Width: 64},
		BigIntT: BigInt{},
		U8:      UInt{Width: 8},
		U16:     UInt{Width: 16},
		U32:     UInt{Width: 32},
		U64:     UInt{Width: 64},
		USize:   UInt{Width: 0},
		F32:     Float{Width: 32},
		F64:     Float{Width: 64},
		CharT:   Char{},
		StrT:    Str{},
		StringT: String{},
	}
}

// Cleanup is a no-op under Go's garbage collector; it is retained so
// callers can bracket a compilation's type-universe lifetime the same
// way every other owning lifecycle in this compiler does.
func (u *Universe) Cleanup() {}

// IsCopy reports whether values of t are bitwise-copyable: every
// primitive plus tuples/arrays/structs composed entirely of Copy
// types. References are Copy (copying a reference duplicates the
// pointer, not the pointee); owned String, Slice, and Generic
// containers are not.
func IsCopy(t Type) bool {
	switch v := t.(type) {
	case Unit, Bool, Int, UInt, Float, Char:
		return true
	case Ref:
		return true
	case Pointer:
		return true
	case Tuple:
		for _, e := range v.Elems {
			if !IsCopy(e) {
				return false
			}
		}
		return true
	case Array:
		return IsCopy(v.Elem)
	case Struct:
		for _, f := range v.Fields {
			if !IsCopy(f.Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func IsNumeric(t Type) bool {
	return IsInteger(t) || IsFloat(t)
}

func IsInteger(t Type) bool {
	switch t.(type) {
	case Int, UInt, BigInt:
		return true
	default:
		return false
	}
}

func IsFloat(t Type) bool {
	_, ok := t.(Float)
	return ok
}

func IsBoolean(t Type) bool {
	_, ok := t.(Bool)
	return ok
}

func IsUnit(t Type) bool {
	_, ok := t.(Unit)
	return ok
}

func IsReference(t Type) bool {
	_, ok := t.(Ref)
	return ok
}

func IsPointer(t Type) bool {
	_, ok := t.(Pointer)
	return ok
}

// Width returns the bit width of an Int/UInt/Float type, or 0 if t
// isn't one of those kinds.
func Width(t Type) int {
	switch v := t.(type) {
	case Int:
		return v.Width
	case UInt:
		if v.Width == 0 {
			return 64
		}
		return v.Width
	case Float:
		return v.Width
	default:
		return 0
	}
}
