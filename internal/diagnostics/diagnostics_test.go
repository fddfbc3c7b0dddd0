package diagnostics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1cbyc/rust-compiler/internal/token"
)

func TestReportAppendsAndHasErrorsReflectsSeverity(t *testing.T) {
	sink := NewSink(10)
	assert.False(t, sink.HasErrors())

	sink.Report(Syntax, Warning, "unused variable", token.Position{Line: 1}, "")
	assert.False(t, sink.HasErrors())

	sink.Report(TypeError, Error, "type mismatch", token.Position{Line: 2}, "")
	assert.True(t, sink.HasErrors())
	require.Len(t, sink.Messages(), 2)
}

func TestReportCapsAtMaxErrorsWithOneOverflowWarning(t *testing.T) {
	sink := NewSink(2)
	sink.Report(Syntax, Error, "a", token.Position{}, "")
	sink.Report(Syntax, Error, "b", token.Position{}, "")
	sink.Report(Syntax, Error, "c", token.Position{}, "")
	sink.Report(Syntax, Error, "d", token.Position{}, "")

	msgs := sink.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, Warning, msgs[2].Severity)
}

func TestCanRecoverFalseAfterFatal(t *testing.T) {
	sink := NewSink(10)
	assert.True(t, sink.CanRecover())

	sink.Report(Lexical, Fatal, "unrecoverable input", token.Position{}, "")
	assert.False(t, sink.CanRecover())
}

func TestEscalateWarningsPromotesOnlyWarnings(t *testing.T) {
	sink := NewSink(10)
	sink.Report(Syntax, Info, "note", token.Position{}, "")
	sink.Report(Syntax, Warning, "careful", token.Position{}, "")
	sink.Report(Syntax, Error, "already an error", token.Position{}, "")

	sink.EscalateWarnings()

	msgs := sink.Messages()
	assert.Equal(t, Info, msgs[0].Severity)
	assert.Equal(t, Error, msgs[1].Severity)
	assert.Equal(t, Error, msgs[2].Severity)
	assert.True(t, sink.HasErrors())
}

func TestClearRecoveredDropsOnlyMarkedMessages(t *testing.T) {
	sink := NewSink(10)
	sink.Report(Syntax, Error, "kept", token.Position{}, "")
	sink.Report(Syntax, Error, "dropped", token.Position{}, "")
	sink.Messages()[1].MarkRecovered()

	sink.ClearRecovered()

	require.Len(t, sink.Messages(), 1)
	assert.Equal(t, "kept", sink.Messages()[0].Text)
}
