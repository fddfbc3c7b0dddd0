package lexer

import (
	"github.com/1cbyc/rust-compiler/internal/diagnostics"
	"github.com/1cbyc/rust-compiler/internal/pipeline"
	"github.com/1cbyc/rust-compiler/internal/token"
)

// maxConsecutiveIllegal bounds how many unrecognized bytes in a row
// the lexer stage tolerates before concluding the input isn't source
// text at all (binary data, wrong encoding) and giving up.
const maxConsecutiveIllegal = 20

// Processor runs the lexer to completion ahead of parsing, so a
// lexical failure is visible in the diagnostics sink even on a byte
// the parser's own internal re-lex never reaches.
type Processor struct{}

func (lp *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	lex := New(ctx.Source, ctx.FilePath)

	count := 0
	consecutiveIllegal := 0
	for {
		tok := lex.NextToken()
		count++

		if tok.Type == token.ILLEGAL {
			ctx.LexErrors++
			consecutiveIllegal++
			ctx.Sink.Report(diagnostics.Lexical, diagnostics.Error,
				"unrecognized input: "+tok.Lexeme, tok.Pos, "")
			if consecutiveIllegal >= maxConsecutiveIllegal {
				ctx.Sink.Report(diagnostics.Lexical, diagnostics.Fatal,
					"too much unrecognized input in a row; not scanning further", tok.Pos, "")
				break
			}
		} else {
			consecutiveIllegal = 0
		}

		if tok.Type == token.EOF {
			break
		}
		if !ctx.Sink.CanRecover() {
			break
		}
	}
	ctx.TokenCount = count

	return ctx
}
