// Package ir implements the lowered intermediate representation:
// a tree-shaped sum type with children in evaluation
// order, mirroring the AST with flattened expression trees, resolved
// names, and control flow made explicit through tagged Blocks.
package ir

import (
	"fmt"
	"strings"

	"github.com/1cbyc/rust-compiler/internal/typesystem"
)

// Kind tags which concrete IR node a Node value is.
type Kind int

const (
	BlockKind Kind = iota
	AssignKind
	ConstKind
	VarKind
	BinOpKind
	CallKind
	ReturnKind
	LoadKind
	StoreKind
	JumpKind
	LabelKind
	NopKind
)

func (k Kind) String() string {
	switch k {
	case BlockKind:
		return "Block"
	case AssignKind:
		return "Assign"
	case ConstKind:
		return "Const"
	case VarKind:
		return "Var"
	case BinOpKind:
		return "BinOp"
	case CallKind:
		return "Call"
	case ReturnKind:
		return "Return"
	case LoadKind:
		return "Load"
	case StoreKind:
		return "Store"
	case JumpKind:
		return "Jump"
	case LabelKind:
		return "Label"
	case NopKind:
		return "Nop"
	default:
		return "?"
	}
}

// Node is the common interface every IR kind satisfies. Ownership is
// tree-shaped: each node owns its children exclusively, mirroring the
// AST's ownership discipline.
type Node interface {
	Kind() Kind
	Type() typesystem.Type
	SetType(t typesystem.Type)
	Accept(v Visitor)
}

// Block is a sequence of statements evaluated in order. Tag records
// the structural role this Block was lowered from ("program" for the
// top level, "seq" for a plain statement list, "fn" for a function
// body, "impl" for an impl block, "if"/"while"/"for" for a control-flow
// construct and "if-then"/"if-else"/"while-body"/"for-body" for its
// bodies), so a later stage can tell a function's top-level
// block from a nested one without re-deriving it from context. Name
// carries the function name when Tag is "fn" ("Function lowers to
// Block{name} carrying body").
type Block struct {
	Name  string
	Tag   string
	Stmts []Node
	Typ   typesystem.Type
}

func (b *Block) Kind() Kind               { return BlockKind }
func (b *Block) Type() typesystem.Type    { return b.Typ }
func (b *Block) SetType(t typesystem.Type) { b.Typ = t }
func (b *Block) Accept(v Visitor)          { v.VisitBlock(b) }

// Assign is a first binding of a name to a value, lowered from a
// `let` declaration.
type Assign struct {
	Name  string
	Value Node
	Typ   typesystem.Type
}

func (a *Assign) Kind() Kind               { return AssignKind }
func (a *Assign) Type() typesystem.Type    { return a.Typ }
func (a *Assign) SetType(t typesystem.Type) { a.Typ = t }
func (a *Assign) Accept(v Visitor)          { v.VisitAssign(a) }

// Const is a literal value fixed at lowering time or produced by
// constant folding.
type Const struct {
	Value interface{}
	Typ   typesystem.Type
}

func (c *Const) Kind() Kind               { return ConstKind }
func (c *Const) Type() typesystem.Type    { return c.Typ }
func (c *Const) SetType(t typesystem.Type) { c.Typ = t }
func (c *Const) Accept(v Visitor)          { v.VisitConst(c) }

// Var is a read of a resolved (or, if resolution failed, still-named)
// variable. Unresolved names are still emitted here so optimization
// passes have something concrete to skip.
type Var struct {
	Name string
	Typ  typesystem.Type
}

func (vr *Var) Kind() Kind               { return VarKind }
func (vr *Var) Type() typesystem.Type    { return vr.Typ }
func (vr *Var) SetType(t typesystem.Type) { vr.Typ = t }
func (vr *Var) Accept(v Visitor)          { v.VisitVar(vr) }

// BinOp is a two-operand operation, lowered from ast.BinaryOp.
type BinOp struct {
	Op          string
	Left, Right Node
	Typ         typesystem.Type
}

func (b *BinOp) Kind() Kind               { return BinOpKind }
func (b *BinOp) Type() typesystem.Type    { return b.Typ }
func (b *BinOp) SetType(t typesystem.Type) { b.Typ = t }
func (b *BinOp) Accept(v Visitor)          { v.VisitBinOp(b) }

// Call is a function invocation with arguments evaluated in order.
type Call struct {
	Name string
	Args []Node
	Typ  typesystem.Type
}

func (c *Call) Kind() Kind               { return CallKind }
func (c *Call) Type() typesystem.Type    { return c.Typ }
func (c *Call) SetType(t typesystem.Type) { c.Typ = t }
func (c *Call) Accept(v Visitor)          { v.VisitCall(c) }

// Return carries an optional return value.
type Return struct {
	Value Node
	Typ   typesystem.Type
}

func (r *Return) Kind() Kind               { return ReturnKind }
func (r *Return) Type() typesystem.Type    { return r.Typ }
func (r *Return) SetType(t typesystem.Type) { r.Typ = t }
func (r *Return) Accept(v Visitor)          { v.VisitReturn(r) }

// Load marks a variable read already known to be current within its
// straight-line block — the redundant-load-elimination pass rewrites
// a Var it can prove redundant into a Load of the same name, so a
// later pass (or a pretty-printer) can see at a glance which reads
// were deduplicated.
type Load struct {
	Name string
	Typ  typesystem.Type
}

func (l *Load) Kind() Kind               { return LoadKind }
func (l *Load) Type() typesystem.Type    { return l.Typ }
func (l *Load) SetType(t typesystem.Type) { l.Typ = t }
func (l *Load) Accept(v Visitor)          { v.VisitLoad(l) }

// Store is a write to an already-bound name, lowered from an
// assignment expression (as opposed to Assign's first binding).
type Store struct {
	Name  string
	Value Node
	Typ   typesystem.Type
}

func (s *Store) Kind() Kind               { return StoreKind }
func (s *Store) Type() typesystem.Type    { return s.Typ }
func (s *Store) SetType(t typesystem.Type) { s.Typ = t }
func (s *Store) Accept(v Visitor)          { v.VisitStore(s) }

// Jump is an unconditional transfer of control to Label, available
// for a downstream code generator's own control-flow lowering; this
// front end's own lowering represents control flow with tagged Blocks
// instead (see Block.Tag) and does not itself emit Jump/Label nodes.
type Jump struct {
	Label string
	Typ   typesystem.Type
}

func (j *Jump) Kind() Kind               { return JumpKind }
func (j *Jump) Type() typesystem.Type    { return j.Typ }
func (j *Jump) SetType(t typesystem.Type) { j.Typ = t }
func (j *Jump) Accept(v Visitor)          { v.VisitJump(j) }

// Label names a Jump target.
type Label struct {
	Name string
	Typ  typesystem.Type
}

func (l *Label) Kind() Kind               { return LabelKind }
func (l *Label) Type() typesystem.Type    { return l.Typ }
func (l *Label) SetType(t typesystem.Type) { l.Typ = t }
func (l *Label) Accept(v Visitor)          { v.VisitLabel(l) }

// Nop is a placeholder: ill-typed input lowers here instead of
// aborting, and a struct/enum declaration lowers here
// too, since declarations are symbol-table-only.
type Nop struct {
	Name string
	Typ  typesystem.Type
}

func (n *Nop) Kind() Kind               { return NopKind }
func (n *Nop) Type() typesystem.Type    { return n.Typ }
func (n *Nop) SetType(t typesystem.Type) { n.Typ = t }
func (n *Nop) Accept(v Visitor)          { v.VisitNop(n) }

// Print renders a node as a compact s-expression, used by the CLI's
// --emit=ir textual output and by tests asserting lowering shape.
func Print(n Node) string {
	var b strings.Builder
	print(&b, n)
	return b.String()
}

func print(b *strings.Builder, n Node) {
	if n == nil {
		b.WriteString("<nil>")
		return
	}
	switch v := n.(type) {
	case *Block:
		fmt.Fprintf(b, "(Block %s", v.Tag)
		if v.Name != "" {
			fmt.Fprintf(b, ":%s", v.Name)
		}
		for _, s := range v.Stmts {
			b.WriteString(" ")
			print(b, s)
		}
		b.WriteString(")")
	case *Assign:
		fmt.Fprintf(b, "(Assign %s ", v.Name)
		print(b, v.Value)
		b.WriteString(")")
	case *Const:
		fmt.Fprintf(b, "(Const %v)", v.Value)
	case *Var:
		fmt.Fprintf(b, "(Var %s)", v.Name)
	case *BinOp:
		fmt.Fprintf(b, "(BinOp %s ", v.Op)
		print(b, v.Left)
		b.WriteString(" ")
		print(b, v.Right)
		b.WriteString(")")
	case *Call:
		fmt.Fprintf(b, "(Call %s", v.Name)
		for _, a := range v.Args {
			b.WriteString(" ")
			print(b, a)
		}
		b.WriteString(")")
	case *Return:
		b.WriteString("(Return")
		if v.Value != nil {
			b.WriteString(" ")
			print(b, v.Value)
		}
		b.WriteString(")")
	case *Load:
		fmt.Fprintf(b, "(Load %s)", v.Name)
	case *Store:
		fmt.Fprintf(b, "(Store %s ", v.Name)
		print(b, v.Value)
		b.WriteString(")")
	case *Jump:
		fmt.Fprintf(b, "(Jump %s)", v.Label)
	case *Label:
		fmt.Fprintf(b, "(Label %s)", v.Name)
	case *Nop:
		fmt.Fprintf(b, "(Nop %s)", v.Name)
	default:
		b.WriteString("?")
	}
}

// Walk invokes fn on n and every descendant, pre-order. It does not
// mutate the tree; passes that rewrite nodes use their own recursive
// rewrite functions instead, since Go has no generic in-place
// "replace self" operation on an interface value.
func Walk(n Node, fn func(Node)) {
	if n == nil {
		return
	}
	fn(n)
	switch v := n.(type) {
	case *Block:
		for _, s := range v.Stmts {
			Walk(s, fn)
		}
	case *Assign:
		Walk(v.Value, fn)
	case *BinOp:
		Walk(v.Left, fn)
		Walk(v.Right, fn)
	case *Call:
		for _, a := range v.Args {
			Walk(a, fn)
		}
	case *Return:
		Walk(v.Value, fn)
	case *Store:
		Walk(v.Value, fn)
	}
}
