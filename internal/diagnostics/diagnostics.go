// Package diagnostics implements the compiler's shared diagnostics
// sink: an append-only, capped, ordered
// collection of user-visible messages that every pipeline stage
// reports into instead of raising.
package diagnostics

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/1cbyc/rust-compiler/internal/token"
)

// Severity orders messages from informational to pipeline-halting.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
	Fatal
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Fatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Kind classifies which stage raised a diagnostic, taxonomy.
type Kind string

const (
	Lexical      Kind = "Lexical"
	Syntax       Kind = "Syntax"
	TypeError    Kind = "Type"
	Semantic     Kind = "Semantic"
	CodeGen      Kind = "CodeGen"
	Optimization Kind = "Optimization"
	Stdlib       Kind = "Stdlib"
)

// code returns the stage-prefixed diagnostic code used in Format's
// "[CODE]" slot, grounded on this ErrA001-style codes and
// other_examples' varavelio-vdl CodeXXX convention.
func (k Kind) code() string {
	switch k {
	case Lexical:
		return "L"
	case Syntax:
		return "P"
	case TypeError:
		return "T"
	case Semantic:
		return "S"
	case CodeGen:
		return "C"
	case Optimization:
		return "O"
	case Stdlib:
		return "G"
	default:
		return "X"
	}
}

// Message is a single structured diagnostic.
type Message struct {
	Kind       Kind
	Severity   Severity
	Text       string
	Pos        token.Position
	Suggestion string
	Recovered  bool

	seq int // stable ordering key, assigned at Report time
}

// Sink collects diagnostics for one compilation. It is created once
// per compilation and never shared between compilations.
type Sink struct {
	SessionID uuid.UUID
	MaxErrors int

	messages      []*Message
	overCapWarned bool
	hadFatal      bool
	seq           int
}

// NewSink creates a Sink capped at maxErrors messages. A non-positive
// maxErrors falls back to 200, the same value as
// config.DefaultMaxErrors (this package does not import config).
func NewSink(maxErrors int) *Sink {
	if maxErrors <= 0 {
		maxErrors = 200
	}
	return &Sink{
		SessionID: uuid.New(),
		MaxErrors: maxErrors,
	}
}

// Report appends a diagnostic. It returns false once the cap has been
// reached; the first call past the cap queues a single "too many
// errors" warning and all subsequent calls are silently dropped.
func (s *Sink) Report(kind Kind, severity Severity, text string, pos token.Position, suggestion string) bool {
	if len(s.messages) >= s.MaxErrors {
		if !s.overCapWarned {
			s.overCapWarned = true
			s.seq++
			s.messages = append(s.messages, &Message{
				Kind:     kind,
				Severity: Warning,
				Text:     fmt.Sprintf("too many errors (cap %d reached), remaining diagnostics suppressed", s.MaxErrors),
				Pos:      pos,
				seq:      s.seq,
			})
		}
		return false
	}

	s.seq++
	msg := &Message{
		Kind:       kind,
		Severity:   severity,
		Text:       text,
		Pos:        pos,
		Suggestion: suggestion,
		seq:        s.seq,
	}
	s.messages = append(s.messages, msg)
	if severity == Fatal {
		s.hadFatal = true
	}
	return true
}

// CanRecover reports whether the pipeline may still proceed: no Fatal
// has been reported and the cap hasn't been reached.
func (s *Sink) CanRecover() bool {
	return !s.hadFatal && len(s.messages) < s.MaxErrors
}

// TryRecover is the stage-defined recovery gate. The
// mapping from Kind to policy is intentionally uniform here: any stage
// may continue as long as the sink can still recover overall. Stages
// that need a stricter per-kind policy (none currently do) can layer
// it on top of this.
func (s *Sink) TryRecover(_ Kind) bool {
	return s.CanRecover()
}

// EscalateWarnings promotes every recorded Warning to Error, for a
// project configured to treat warnings as build failures.
func (s *Sink) EscalateWarnings() {
	for _, m := range s.messages {
		if m.Severity == Warning {
			m.Severity = Error
		}
	}
}

// MarkRecovered flags a message as having been resynchronized past,
// so a later clear-pass can drop it from the printed summary.
func (m *Message) MarkRecovered() {
	m.Recovered = true
}

// Messages returns all collected diagnostics in report order.
func (s *Sink) Messages() []*Message {
	return s.messages
}

// ClearRecovered drops every message marked Recovered from the sink.
func (s *Sink) ClearRecovered() {
	kept := s.messages[:0]
	for _, m := range s.messages {
		if !m.Recovered {
			kept = append(kept, m)
		}
	}
	s.messages = kept
}

// Counts tallies messages by severity.
func (s *Sink) Counts() map[Severity]int {
	counts := make(map[Severity]int, 4)
	for _, m := range s.messages {
		counts[m.Severity]++
	}
	return counts
}

// HasErrors reports whether any Error or Fatal diagnostic was recorded.
func (s *Sink) HasErrors() bool {
	for _, m := range s.messages {
		if m.Severity == Error || m.Severity == Fatal {
			return true
		}
	}
	return false
}

// Format renders a single message stable format:
//
//	SEVERITY Category[CODE]: <text> at <file>:<line>:<column>
//	<source line>
//	     ^
//	Suggestion: …
func Format(m *Message, source string) string {
	var b strings.Builder
	file := m.Pos.File
	if file == "" {
		file = "<input>"
	}
	fmt.Fprintf(&b, "%s %s[%s]: %s at %s:%d:%d",
		strings.ToUpper(m.Severity.String()), m.Kind, m.Kind.code(), m.Text, file, m.Pos.Line, m.Pos.Column)

	if line, ok := sourceLine(source, m.Pos.Line); ok {
		b.WriteString("\n")
		b.WriteString(line)
		b.WriteString("\n")
		col := m.Pos.Column
		if col < 1 {
			col = 1
		}
		b.WriteString(strings.Repeat(" ", col-1))
		b.WriteString("^")
	}

	if m.Suggestion != "" {
		fmt.Fprintf(&b, "\nSuggestion: %s", m.Suggestion)
	}

	return b.String()
}

func sourceLine(source string, line int) (string, bool) {
	if line <= 0 {
		return "", false
	}
	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return "", false
	}
	return lines[line-1], true
}
