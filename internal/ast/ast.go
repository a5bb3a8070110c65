// Package ast defines the uniform syntax tree node used by the parser,
// constant collector, and code emitter.
//
// Every production in September's grammar — literals, identifiers,
// unary/binary operators, calls, complex call chains, blocks — is
// represented by the same struct: a Kind discriminator, an optional
// literal Value, an ordered list of Children, and an optional
// name->index side table for productions more naturally addressed by
// name than position (a call's "target" and "args", say). This
// keeps the emitter's per-kind dispatch table small instead of growing
// one Go type per grammar production.
package ast

import "fmt"

// Kind discriminates what a Node represents.
type Kind string

const (
	// Id(name string)
	Id Kind = "Id"
	// Constant(value int64|float64|string)
	Constant Kind = "Constant"
	// UnaryOp(op string): [operand]
	UnaryOp Kind = "UnaryOp"
	// BinaryOp(op string): [left, right]
	BinaryOp Kind = "BinaryOp"
	// FunctionCall: [target, Arguments]
	FunctionCall Kind = "FunctionCall"
	// Arguments: [positional-or-NamedArg children...]
	Arguments Kind = "Arguments"
	// NamedArg(name string): [expression]
	NamedArg Kind = "NamedArg"
	// ComplexCall: [FunctionCall, Subcall, Subcall, ...]
	ComplexCall Kind = "ComplexCall"
	// Subcall(methodNameWithDots string): [Arguments]
	Subcall Kind = "Subcall"
	// Block: [Parameters, Body]
	Block Kind = "Block"
	// Parameters: [Parameter...]
	Parameters Kind = "Parameters"
	// Parameter(name string, Flags): [default expression] (optional)
	Parameter Kind = "Parameter"
	// Body: [statement...]
	Body Kind = "Body"
)

// ParamFlags records the modifiers carried by a Parameter's flag sigil.
type ParamFlags uint8

const (
	ParamLazy     ParamFlags = 1 << iota // `?` lazy-evaluated
	ParamPosSink                         // `...` positional-sink
	ParamNameSink                        // `:::` named-sink
	ParamOptional                        // has a default expression
)

func (f ParamFlags) Lazy() bool     { return f&ParamLazy != 0 }
func (f ParamFlags) PosSink() bool  { return f&ParamPosSink != 0 }
func (f ParamFlags) NameSink() bool { return f&ParamNameSink != 0 }
func (f ParamFlags) Optional() bool { return f&ParamOptional != 0 }

// String renders the sigils a flag set corresponds to, for debug output.
func (f ParamFlags) String() string {
	var sigils string
	if f.Lazy() {
		sigils += "?"
	}
	if f.PosSink() {
		sigils += "..."
	}
	if f.NameSink() {
		sigils += ":::"
	}
	if f.Optional() {
		sigils += "="
	}
	return sigils
}

// Node is the single AST node type for every September production.
type Node struct {
	Kind     Kind
	Value    any // identifier name, operator symbol, literal value, ...
	Children []*Node
	Names    map[string]int // optional name -> index into Children
	Flags    ParamFlags      // meaningful only when Kind == Parameter

	Line   int
	Column int
}

// New builds a node with the given kind, value and children in order.
func New(kind Kind, value any, children ...*Node) *Node {
	return &Node{Kind: kind, Value: value, Children: children}
}

// At sets the node's source location and returns it, for chaining at
// construction time.
func (n *Node) At(line, col int) *Node {
	n.Line, n.Column = line, col
	return n
}

// Named attaches a name->index side table entry.
func (n *Node) Named(name string, index int) *Node {
	if n.Names == nil {
		n.Names = make(map[string]int)
	}
	n.Names[name] = index
	return n
}

// Child returns the child stored under name, or nil if absent.
func (n *Node) Child(name string) *Node {
	if n == nil || n.Names == nil {
		return nil
	}
	if idx, ok := n.Names[name]; ok && idx < len(n.Children) {
		return n.Children[idx]
	}
	return nil
}

// First returns Children[0], or nil if there is none.
func (n *Node) First() *Node { return n.nth(0) }

// Second returns Children[1], or nil if there is none.
func (n *Node) Second() *Node { return n.nth(1) }

func (n *Node) nth(i int) *Node {
	if n == nil || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// Append adds a child and returns the node, used by op-parsers that
// discover a node's final shape only after consuming trailing tokens.
func (n *Node) Append(child *Node) *Node {
	n.Children = append(n.Children, child)
	return n
}

// Name returns Value as a string, for Id/Subcall/NamedArg/Parameter
// nodes whose Value always holds their name.
func (n *Node) Name() string {
	if n == nil {
		return ""
	}
	s, _ := n.Value.(string)
	return s
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.Value != nil {
		return fmt.Sprintf("%s(%v)", n.Kind, n.Value)
	}
	return string(n.Kind)
}

// Walk visits n and every descendant in pre-order, depth-first.
func Walk(n *Node, visit func(*Node)) {
	if n == nil {
		return
	}
	visit(n)
	for _, c := range n.Children {
		Walk(c, visit)
	}
}
