package config

// Version is the current riftc version.
var Version = "0.1.0"

// SourceFileExt is the recognized extension for source files.
const SourceFileExt = ".rs"

// DefaultMaxErrors is the diagnostics cap used when no project config
// overrides it (see ProjectConfig.MaxErrors).
const DefaultMaxErrors = 200

// TrimSourceExt removes the recognized source extension from a filename.
// Returns the original string if it doesn't match.
func TrimSourceExt(name string) string {
	if len(name) >= len(SourceFileExt) && name[len(name)-len(SourceFileExt):] == SourceFileExt {
		return name[:len(name)-len(SourceFileExt)]
	}
	return name
}

// HasSourceExt returns true if the path ends with the recognized source extension.
func HasSourceExt(path string) bool {
	return len(path) >= len(SourceFileExt) && path[len(path)-len(SourceFileExt):] == SourceFileExt
}

// IsTestMode indicates if the program is running under a test harness
// that wants deterministic, normalized output.
var IsTestMode = false

// Built-in function names registered in the stdlib registry.
const (
	PrintFuncName      = "print"
	PrintlnFuncName    = "println"
	LenFuncName        = "len"
	ConcatFuncName     = "concat"
	FormatFuncName     = "format"
	AssertFuncName     = "assert"
	VecNewFuncName     = "Vec::new"
	VecWithCapFuncName = "Vec::with_capacity"
	VecPushFuncName    = "push"
	VecGetFuncName     = "get"
	ResultOkFuncName   = "Result::Ok"
	ResultErrFuncName  = "Result::Err"
)
