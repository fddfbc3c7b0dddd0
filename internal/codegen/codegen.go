// Package codegen renders lowered IR as a textual stack-machine
// listing for the driver's --emit=asm output. There is no real target
// architecture or execution behind it; mnemonics follow a
// push/operate/store discipline so the listing reads like the
// disassembly of a small bytecode VM.
package codegen

import (
	"fmt"
	"strings"

	"github.com/1cbyc/rust-compiler/internal/ir"
)

// Generate walks root and returns one mnemonic per line.
func Generate(root ir.Node) string {
	var b strings.Builder
	g := &generator{out: &b}
	g.emit(root)
	return b.String()
}

type generator struct {
	out   *strings.Builder
	label int
}

func (g *generator) line(format string, args ...interface{}) {
	fmt.Fprintf(g.out, format+"\n", args...)
}

func (g *generator) newLabel(prefix string) string {
	g.label++
	return fmt.Sprintf("%s%d", prefix, g.label)
}

func (g *generator) emit(n ir.Node) {
	switch v := n.(type) {
	case nil:
		return
	case *ir.Block:
		g.emitBlock(v)
	case *ir.Assign:
		g.emit(v.Value)
		g.line("STORE %s", v.Name)
	case *ir.Const:
		g.line("PUSHC %v", v.Value)
	case *ir.Var:
		g.line("LOAD %s", v.Name)
	case *ir.Load:
		g.line("LOAD %s", v.Name)
	case *ir.Store:
		g.emit(v.Value)
		g.line("STORE %s", v.Name)
	case *ir.BinOp:
		g.emitBinOp(v)
	case *ir.Call:
		for _, a := range v.Args {
			g.emit(a)
		}
		g.line("CALL %s, %d", v.Name, len(v.Args))
	case *ir.Return:
		if v.Value != nil {
			g.emit(v.Value)
		}
		g.line("RET")
	case *ir.Jump:
		g.line("JMP %s", v.Label)
	case *ir.Label:
		g.line("%s:", v.Name)
	case *ir.Nop:
		g.line("NOP")
	default:
		g.line("; unhandled node %T", n)
	}
}

func (g *generator) emitBinOp(v *ir.BinOp) {
	if v.Right == nil {
		// a nil Right marks the unary-operator encoding the optimizer's
		// constant-folding pass also recognizes.
		g.emit(v.Left)
		g.line("%s", unaryMnemonic(v.Op))
		return
	}
	g.emit(v.Left)
	g.emit(v.Right)
	g.line("%s", binaryMnemonic(v.Op))
}

func binaryMnemonic(op string) string {
	switch op {
	case "+":
		return "ADD"
	case "-":
		return "SUB"
	case "*":
		return "MUL"
	case "/":
		return "DIV"
	case "%":
		return "MOD"
	case "==":
		return "EQ"
	case "!=":
		return "NE"
	case "<":
		return "LT"
	case "<=":
		return "LE"
	case ">":
		return "GT"
	case ">=":
		return "GE"
	case "&&":
		return "AND"
	case "||":
		return "OR"
	default:
		return "OP " + op
	}
}

func unaryMnemonic(op string) string {
	switch op {
	case "-":
		return "NEG"
	case "!":
		return "NOT"
	default:
		return "UOP " + op
	}
}

// emitBlock emits the tagged control-flow shapes the semantics stage
// produces (if/while/for/fn/program), falling back to a flat sequence
// for an untagged or "seq" block.
func (g *generator) emitBlock(b *ir.Block) {
	switch b.Tag {
	case "if":
		g.emitIf(b)
	case "while":
		g.emitWhile(b)
	case "for":
		g.emitFor(b)
	case "fn":
		g.line("; fn %s", b.Name)
		for _, s := range b.Stmts {
			g.emit(s)
		}
	default:
		for _, s := range b.Stmts {
			g.emit(s)
		}
	}
}

func (g *generator) emitIf(b *ir.Block) {
	if len(b.Stmts) == 0 {
		return
	}
	elseLabel := g.newLabel("Lelse")
	endLabel := g.newLabel("Lend")

	g.emit(b.Stmts[0]) // condition
	g.line("JFALSE %s", elseLabel)

	if len(b.Stmts) > 1 {
		g.emit(b.Stmts[1]) // then block
	}
	g.line("JMP %s", endLabel)
	g.line("%s:", elseLabel)
	if len(b.Stmts) > 2 {
		g.emit(b.Stmts[2]) // else block
	}
	g.line("%s:", endLabel)
}

func (g *generator) emitWhile(b *ir.Block) {
	if len(b.Stmts) == 0 {
		return
	}
	topLabel := g.newLabel("Lloop")
	endLabel := g.newLabel("Lend")

	g.line("%s:", topLabel)
	g.emit(b.Stmts[0]) // condition
	g.line("JFALSE %s", endLabel)
	if len(b.Stmts) > 1 {
		g.emit(b.Stmts[1]) // body
	}
	g.line("JMP %s", topLabel)
	g.line("%s:", endLabel)
}

func (g *generator) emitFor(b *ir.Block) {
	if len(b.Stmts) < 3 {
		return
	}
	topLabel := g.newLabel("Lloop")
	endLabel := g.newLabel("Lend")

	g.emit(b.Stmts[0]) // init assign
	g.line("%s:", topLabel)
	g.emit(b.Stmts[1]) // end expression, left on the stack as the bound
	g.line("JFALSE %s", endLabel)
	g.emit(b.Stmts[2]) // body
	g.line("JMP %s", topLabel)
	g.line("%s:", endLabel)
}
