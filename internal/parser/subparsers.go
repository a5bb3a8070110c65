package parser

import (
	"github.com/krajzeg/september/internal/ast"
	"github.com/krajzeg/september/internal/config"
	"github.com/krajzeg/september/internal/diagnostics"
	"github.com/krajzeg/september/internal/token"
)

// --- null sub-parsers -------------------------------------------------

func parseId(p *Parser, tok token.Token) (*ast.Node, *diagnostics.Error) {
	p.advance()
	return ast.New(ast.Id, tok.Raw).At(tok.Loc.Line, tok.Loc.Column), nil
}

func parseConstant(p *Parser, tok token.Token) (*ast.Node, *diagnostics.Error) {
	p.advance()
	return ast.New(ast.Constant, tok.Value).At(tok.Loc.Line, tok.Loc.Column), nil
}

func parseUnaryOp(p *Parser, tok token.Token) (*ast.Node, *diagnostics.Error) {
	if tok.Raw == ":=" {
		return nil, diagnostics.New(diagnostics.PhaseParse, diagnostics.ErrAssignNonIdentifier, tok.Loc, "nothing")
	}
	p.advance()
	operand, err := p.expression(config.PrecUnary)
	if err != nil {
		return nil, err
	}
	return ast.New(ast.UnaryOp, "unary"+tok.Raw, operand).At(tok.Loc.Line, tok.Loc.Column), nil
}

func parseParenthesised(p *Parser, tok token.Token) (*ast.Node, *diagnostics.Error) {
	p.advance()
	expr, err := p.expression(0)
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	p.advance()
	return expr, nil
}

// parseBlock builds a Block node. Called both as the null-parser for
// `|`/`{` and, with its own left-hand token, as FunctionCall's
// block-argument sub-case.
func parseBlock(p *Parser, tok token.Token) (*ast.Node, *diagnostics.Error) {
	params := ast.New(ast.Parameters, nil)
	if tok.Kind == token.Pipe {
		var err *diagnostics.Error
		params, err = parseParameterList(p)
		if err != nil {
			return nil, err
		}
	}

	if err := p.expect(token.LBrace); err != nil {
		return nil, err
	}
	p.advance()

	body := ast.New(ast.Body, nil)
	for p.cur().Kind != token.RBrace {
		if p.cur().Kind == token.EOF {
			return nil, diagnostics.New(diagnostics.PhaseParse, diagnostics.ErrExpectedToken, p.cur().Loc, token.RBrace, p.cur())
		}
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		body.Append(stmt)
	}
	p.advance()

	block := ast.New(ast.Block, nil, params, body).At(tok.Loc.Line, tok.Loc.Column)
	block.Named("parameters", 0).Named("body", 1)
	return block, nil
}

// parseParameterList parses `| flag? id (= default)?, ... |`. p.cur()
// must be the opening `|`.
func parseParameterList(p *Parser) (*ast.Node, *diagnostics.Error) {
	p.advance() // opening '|'
	params := ast.New(ast.Parameters, nil)

	for {
		var flags ast.ParamFlags
		if p.cur().Kind == token.Operator {
			switch p.cur().Raw {
			case "?":
				flags |= ast.ParamLazy
			case "...":
				flags |= ast.ParamPosSink
			case ":::":
				flags |= ast.ParamNameSink
			default:
				return nil, diagnostics.New(diagnostics.PhaseParse, diagnostics.ErrBadOperatorFlag, p.cur().Loc, p.cur().Raw)
			}
			p.advance()
		}

		if err := p.expect(token.Id); err != nil {
			return nil, err
		}
		name := p.cur().Raw
		loc := p.cur().Loc
		p.advance()

		var defaultExpr *ast.Node
		if p.cur().Kind == token.Operator && p.cur().Raw == "=" {
			p.advance()
			var err *diagnostics.Error
			defaultExpr, err = p.expression(0)
			if err != nil {
				return nil, err
			}
			flags |= ast.ParamOptional
		}

		param := ast.New(ast.Parameter, name).At(loc.Line, loc.Column)
		if defaultExpr != nil {
			param.Append(defaultExpr)
		}
		param.Flags = flags
		params.Append(param)

		if p.cur().Kind == token.Pipe {
			p.advance()
			break
		}
		if err := p.expect(token.Comma); err != nil {
			return nil, err
		}
		p.advance()
	}

	return params, nil
}

// parseBracketExpression desugars `[a, b]` into a call to a function
// named after the combined opener+closer text (spec.md §4.2, §9).
func parseBracketExpression(p *Parser, tok token.Token) (*ast.Node, *diagnostics.Error) {
	closer := bracketCloserText(tok)
	name := tok.Raw + closer
	p.advance()

	args, err := parseBracketArgs(p, closer)
	if err != nil {
		return nil, err
	}

	call := ast.New(ast.FunctionCall, nil, ast.New(ast.Id, name).At(tok.Loc.Line, tok.Loc.Column), args)
	call.Named("target", 0).Named("args", 1)
	return call, nil
}

func bracketCloserText(tok token.Token) string {
	if tok.Counterpart != nil {
		return tok.Counterpart.Raw
	}
	return ""
}

// parseBracketArgs parses a comma-separated argument list up to and
// including the matching closer, assuming the opener has already been
// consumed.
func parseBracketArgs(p *Parser, closer string) (*ast.Node, *diagnostics.Error) {
	args := ast.New(ast.Arguments, nil)
	if p.cur().Kind == token.CloseBracket && p.cur().Raw == closer {
		p.advance()
		return args, nil
	}
	for {
		arg, err := p.parseArgument()
		if err != nil {
			return nil, err
		}
		args.Append(arg)
		if p.cur().Kind == token.CloseBracket && p.cur().Raw == closer {
			p.advance()
			break
		}
		if err := p.expect(token.Comma); err != nil {
			return nil, err
		}
		p.advance()
	}
	return args, nil
}

// --- op sub-parsers ----------------------------------------------------

func parseBinaryOp(p *Parser, tok token.Token, left *ast.Node) (*ast.Node, bool, *diagnostics.Error) {
	if tok.Raw == ":=" && left.Kind != ast.Id {
		return nil, false, diagnostics.New(diagnostics.PhaseParse, diagnostics.ErrAssignNonIdentifier, tok.Loc, left.Kind)
	}
	p.advance()
	precedence := config.BinaryPrecedence(tok.Raw)
	right, err := p.expression(precedence)
	if err != nil {
		return nil, false, err
	}
	return ast.New(ast.BinaryOp, tok.Raw, left, right).At(tok.Loc.Line, tok.Loc.Column), true, nil
}

// callHost picks which node new arguments/blocks attach to: the call
// itself, the last link of an existing complex-call chain, or a
// brand-new call wrapping left.
func callHost(left *ast.Node) (host, returned *ast.Node) {
	switch left.Kind {
	case ast.FunctionCall:
		return left, left
	case ast.ComplexCall:
		return left.Children[len(left.Children)-1], left
	default:
		nc := newCallOn(left)
		return nc, nc
	}
}

func parseCallParenArgs(p *Parser, tok token.Token, left *ast.Node) (*ast.Node, bool, *diagnostics.Error) {
	host, returned := callHost(left)
	p.advance() // '('

	if p.cur().Kind == token.RParen {
		p.advance()
		return returned, true, nil
	}
	for {
		arg, err := p.parseArgument()
		if err != nil {
			return nil, false, err
		}
		argsNode(host).Append(arg)
		if p.cur().Kind == token.RParen {
			p.advance()
			break
		}
		if err := p.expect(token.Comma); err != nil {
			return nil, false, err
		}
		p.advance()
	}
	return returned, true, nil
}

func parseCallBlockArg(p *Parser, tok token.Token, left *ast.Node) (*ast.Node, bool, *diagnostics.Error) {
	host, returned := callHost(left)
	block, err := parseBlock(p, tok)
	if err != nil {
		return nil, false, err
	}
	argsNode(host).Append(block)
	return returned, true, nil
}

// parseCallIdentifierChain extends or starts a complex-call chain when
// left is already call-shaped; it declines otherwise so parseFlatCall
// (lower strength, same token kind) gets a turn (spec.md §4.2).
func parseCallIdentifierChain(p *Parser, tok token.Token, left *ast.Node) (*ast.Node, bool, *diagnostics.Error) {
	switch left.Kind {
	case ast.FunctionCall:
		target := left.First()
		if target.Kind != ast.Id {
			return nil, false, diagnostics.New(diagnostics.PhaseParse, diagnostics.ErrBadComplexReceiver, tok.Loc, target.Kind)
		}
		target.Value = target.Name() + ".."
		p.advance()
		newSub := ast.New(ast.Subcall, tok.Raw+"..", ast.New(ast.Arguments, nil)).At(tok.Loc.Line, tok.Loc.Column)
		complex := ast.New(ast.ComplexCall, "..!", left, newSub)
		return complex, true, nil

	case ast.ComplexCall:
		p.advance()
		newSub := ast.New(ast.Subcall, tok.Raw+"..", ast.New(ast.Arguments, nil)).At(tok.Loc.Line, tok.Loc.Column)
		left.Append(newSub)
		return left, true, nil

	default:
		return nil, false, nil
	}
}

// parseFlatCall forms `f arg` (spec.md §4.2); it declines once left is
// already call-shaped, since parseCallIdentifierChain already handles
// that continuation for `id` tokens.
func parseFlatCall(p *Parser, tok token.Token, left *ast.Node) (*ast.Node, bool, *diagnostics.Error) {
	switch left.Kind {
	case ast.FunctionCall, ast.ComplexCall, ast.Subcall:
		return nil, false, nil
	}
	arg, err := p.expression(config.PrecUnary)
	if err != nil {
		return nil, false, err
	}
	call := newCallOn(left)
	argsNode(call).Append(arg)
	return call, true, nil
}

// parseIndexOp desugars `x[i]` into a `.`-method call named after the
// combined opener+closer text (spec.md §4.2, §9).
func parseIndexOp(p *Parser, tok token.Token, left *ast.Node) (*ast.Node, bool, *diagnostics.Error) {
	closer := bracketCloserText(tok)
	name := tok.Raw + closer
	p.advance()

	args, err := parseBracketArgs(p, closer)
	if err != nil {
		return nil, false, err
	}

	member := ast.New(ast.BinaryOp, ".", left, ast.New(ast.Id, name).At(tok.Loc.Line, tok.Loc.Column)).At(tok.Loc.Line, tok.Loc.Column)
	call := ast.New(ast.FunctionCall, nil, member, args)
	call.Named("target", 0).Named("args", 1)
	return call, true, nil
}
