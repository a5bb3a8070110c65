// Package compiler walks a September AST and emits, per function, the
// NOP/PUSH/LAZY instruction stream spec.md §4.4 describes, then runs
// the two-pass peephole optimizer over each function's code.
package compiler

import (
	"fmt"

	"github.com/krajzeg/september/internal/ast"
	"github.com/krajzeg/september/internal/constants"
)

// Opcode is one of the three primitive operations a function's code
// stream is built from.
type Opcode byte

const (
	NOP   Opcode = 0x0
	PUSH  Opcode = 0x1
	LAZY  Opcode = 0x4
	EAGER Opcode = 0x5 // reserved; never emitted (spec.md §9 open question a)
)

// Flag is an OR-mask bit set into the opcode byte.
type Flag byte

const (
	FlagPushLocals     Flag = 0x80 // l, pre
	FlagFetchProperty  Flag = 0x40 // f, pre
	FlagCreateProperty Flag = 0x20 // c, pre
	FlagStoreValue     Flag = 0x10 // s, post
	FlagPopResult      Flag = 0x08 // v, post
)

const (
	preFlagMask  = FlagPushLocals | FlagFetchProperty | FlagCreateProperty
	postFlagMask = FlagStoreValue | FlagPopResult
)

// IsPreFlag reports whether f acts before the opcode.
func (f Flag) IsPreFlag() bool { return f&preFlagMask != 0 && f&^preFlagMask == 0 }

// IsPostFlag reports whether f acts after the opcode.
func (f Flag) IsPostFlag() bool { return f&postFlagMask != 0 && f&^postFlagMask == 0 }

// RefKind discriminates a Reference's target pool.
type RefKind int

const (
	ConstantRef RefKind = iota
	FunctionRef
	ArgnameRef
)

// Reference is a tagged union over the constant pool, the function
// table, and (for named arguments) a constant holding an argument name
// that precedes its value in the args list (spec.md §3).
type Reference struct {
	Kind  RefKind
	Index int // always the non-negative magnitude; sign is a wire concern
}

func constRef(i int) Reference   { return Reference{Kind: ConstantRef, Index: i} }
func funcRef(i int) Reference    { return Reference{Kind: FunctionRef, Index: i} }
func argnameRef(i int) Reference { return Reference{Kind: ArgnameRef, Index: i} }

// Instruction is one emitted operation: an opcode, a flag set, and
// three argument groups (pre-args act with the pre-flags, args are the
// opcode's own operands — variadic only for LAZY — and post-args act
// with the post-flags).
type Instruction struct {
	Op       Opcode
	Flags    Flag
	PreArgs  []Reference
	Args     []Reference
	PostArgs []Reference
}

// ParamInfo records a function's formal parameter for the debug dump
// only; the binary encoder always writes a parameter count of 0
// regardless of this list (spec.md §9 open question b).
type ParamInfo struct {
	Name    string
	Flags   ast.ParamFlags
	Default *Reference // nil if the parameter has no default
}

// CompiledFunction is one function's allocation index, formal
// parameter list (debug-only), and instruction stream.
type CompiledFunction struct {
	Index  int
	Params []ParamInfo
	Code   []Instruction
}

// Error reports a compiler-internal failure: an AST node kind with no
// registered emitter, or a constant missing from the pool. Both
// indicate a bug in the compiler itself, never a user-facing mistake.
type Error struct {
	Msg string
}

func (e *Error) Error() string { return fmt.Sprintf("compile error: %s", e.Msg) }

// Compiler holds the shared constant pool and the growing function
// table while walking the AST.
type Compiler struct {
	pool      *constants.Pool
	functions []*CompiledFunction
}

// New creates a Compiler over an already-collected constant pool.
func New(pool *constants.Pool) *Compiler {
	return &Compiler{pool: pool}
}

// Functions returns every function created so far, in allocation
// (1-based index) order.
func (c *Compiler) Functions() []*CompiledFunction { return c.functions }

// Compile builds the Main function from the top-level Body node and
// returns every function (Main first) after running the peephole
// optimizer over each.
func (c *Compiler) Compile(program *ast.Node) ([]*CompiledFunction, error) {
	if _, err := c.createFunction(program, nil); err != nil {
		return nil, err
	}
	for _, fn := range c.functions {
		optimize(fn)
	}
	return c.functions, nil
}

// createFunction allocates the next function index, appends it to the
// table immediately (so nested function creation during its own body's
// compilation receives later indices, matching allocation order), then
// compiles body as a sequence of statements. A non-Body node is
// compiled as if it were its own single-statement Body, which is how
// expression-functions (lazy arguments, binary-op operands) are built.
func (c *Compiler) createFunction(body *ast.Node, params *ast.Node) (*CompiledFunction, error) {
	fn := &CompiledFunction{Index: len(c.functions) + 1, Params: paramInfos(params)}
	c.functions = append(c.functions, fn)

	if params != nil {
		for i, p := range params.Children {
			if def := p.First(); def != nil {
				ref, err := c.argumentRef(def)
				if err != nil {
					return nil, err
				}
				fn.Params[i].Default = &ref
			}
		}
	}

	statements := []*ast.Node{body}
	if body.Kind == ast.Body {
		statements = body.Children
	}

	for _, stmt := range statements {
		if err := c.compileNode(fn, stmt); err != nil {
			return nil, err
		}
		fn.Code = append(fn.Code, Instruction{Op: NOP, Flags: FlagPopResult})
	}
	return fn, nil
}

func paramInfos(params *ast.Node) []ParamInfo {
	if params == nil {
		return nil
	}
	out := make([]ParamInfo, 0, len(params.Children))
	for _, p := range params.Children {
		out = append(out, ParamInfo{Name: p.Name(), Flags: p.Flags})
	}
	return out
}

func (c *Compiler) compileNode(fn *CompiledFunction, n *ast.Node) error {
	switch n.Kind {
	case ast.Id:
		fn.Code = append(fn.Code, Instruction{
			Op: NOP, Flags: FlagPushLocals | FlagFetchProperty,
			PreArgs: []Reference{c.constant(n.Value)},
		})
		return nil

	case ast.Constant:
		fn.Code = append(fn.Code, Instruction{Op: PUSH, Args: []Reference{c.constant(n.Value)}})
		return nil

	case ast.BinaryOp:
		return c.compileBinaryOp(fn, n)

	case ast.UnaryOp:
		if err := c.compileNode(fn, n.First()); err != nil {
			return err
		}
		fn.Code = append(fn.Code, Instruction{
			Op: LAZY, Flags: FlagFetchProperty,
			PreArgs: []Reference{c.constant(n.Value)},
		})
		return nil

	case ast.FunctionCall:
		if err := c.compileNode(fn, n.First()); err != nil {
			return err
		}
		args, err := c.extractArguments(n.Second())
		if err != nil {
			return err
		}
		fn.Code = append(fn.Code, Instruction{Op: LAZY, Args: args})
		return nil

	case ast.ComplexCall:
		for _, sub := range n.Children {
			if err := c.compileNode(fn, sub); err != nil {
				return err
			}
		}
		closer := ast.New(ast.Subcall, "..!", ast.New(ast.Arguments, nil))
		return c.compileNode(fn, closer)

	case ast.Subcall:
		args, err := c.extractArguments(n.First())
		if err != nil {
			return err
		}
		fn.Code = append(fn.Code, Instruction{
			Op: LAZY, Flags: FlagFetchProperty,
			PreArgs: []Reference{c.constant(n.Value)},
			Args:    args,
		})
		return nil

	case ast.Block:
		block, err := c.createFunction(n.Child("body"), n.Child("parameters"))
		if err != nil {
			return err
		}
		fn.Code = append(fn.Code, Instruction{Op: PUSH, Args: []Reference{funcRef(block.Index)}})
		return nil

	default:
		return &Error{Msg: fmt.Sprintf("uncompilable node kind: %s", n.Kind)}
	}
}

func (c *Compiler) compileBinaryOp(fn *CompiledFunction, n *ast.Node) error {
	op, _ := n.Value.(string)
	left, right := n.First(), n.Second()

	switch op {
	case "=":
		if err := c.compileNode(fn, left); err != nil {
			return err
		}
		if err := c.compileNode(fn, right); err != nil {
			return err
		}
		fn.Code = append(fn.Code, Instruction{Op: NOP, Flags: FlagStoreValue})
		return nil

	case ":=":
		if left.Kind != ast.Id {
			return &Error{Msg: ":= requires an identifier on the left"}
		}
		fn.Code = append(fn.Code, Instruction{
			Op: NOP, Flags: FlagPushLocals | FlagCreateProperty,
			PreArgs: []Reference{c.constant(left.Value)},
		})
		if err := c.compileNode(fn, right); err != nil {
			return err
		}
		fn.Code = append(fn.Code, Instruction{Op: NOP, Flags: FlagStoreValue})
		return nil

	default:
		if err := c.compileNode(fn, left); err != nil {
			return err
		}
		var arg Reference
		if right.Kind == ast.Constant {
			arg = c.constant(right.Value)
		} else {
			rfn, err := c.createFunction(right, nil)
			if err != nil {
				return err
			}
			arg = funcRef(rfn.Index)
		}
		fn.Code = append(fn.Code, Instruction{
			Op: LAZY, Flags: FlagFetchProperty,
			PreArgs: []Reference{c.constant(n.Value)},
			Args:    []Reference{arg},
		})
		return nil
	}
}

// extractArguments turns an Arguments node's children into the
// Reference list a call's LAZY instruction carries. A NamedArg
// contributes an ArgnameRef for its name immediately before its
// value's reference (spec.md §3's ArgnameRef union member).
func (c *Compiler) extractArguments(args *ast.Node) ([]Reference, error) {
	if args == nil {
		return nil, nil
	}
	var out []Reference
	for _, a := range args.Children {
		target := a
		if a.Kind == ast.NamedArg {
			out = append(out, argnameRef(c.constant(a.Value).Index))
			target = a.First()
		}
		ref, err := c.argumentRef(target)
		if err != nil {
			return nil, err
		}
		out = append(out, ref)
	}
	return out, nil
}

func (c *Compiler) argumentRef(n *ast.Node) (Reference, error) {
	switch n.Kind {
	case ast.Constant:
		return c.constant(n.Value), nil
	case ast.Block:
		fn, err := c.createFunction(n.Child("body"), n.Child("parameters"))
		if err != nil {
			return Reference{}, err
		}
		return funcRef(fn.Index), nil
	default:
		fn, err := c.createFunction(n, nil)
		if err != nil {
			return Reference{}, err
		}
		return funcRef(fn.Index), nil
	}
}

// constant looks up v in the shared pool. Every value Compile needs is
// normally already discovered by constants.Collect over the same tree
// (the "..!" closer arrives through the ComplexCall node's own value);
// Pool.Index appends any value that is not yet present.
func (c *Compiler) constant(v any) Reference {
	return constRef(c.pool.Index(v))
}
