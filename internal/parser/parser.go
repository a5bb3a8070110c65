// Package parser implements a Top-Down Operator Precedence (Pratt)
// parser for September (spec.md §4.2): a token-kind-keyed registry of
// null sub-parsers (tokens starting an expression) and op sub-parsers
// (tokens continuing one with a left-hand side already in hand), each
// ranked by strength. When more than one sub-parser claims a token
// kind, they're tried in descending strength order; an op sub-parser
// may decline, handing the token to the next one in line.
package parser

import (
	"sort"

	"github.com/krajzeg/september/internal/ast"
	"github.com/krajzeg/september/internal/config"
	"github.com/krajzeg/september/internal/diagnostics"
	"github.com/krajzeg/september/internal/token"
)

// Parser walks a flat token slice with a single cursor; every
// sub-parser advances it directly rather than returning a remaining
// slice, mirroring original_source/py/sepparser.py's Parser class.
type Parser struct {
	tokens []token.Token
	pos    int
}

func (p *Parser) cur() token.Token { return p.peekAt(0) }

func (p *Parser) peekAt(n int) token.Token {
	i := p.pos + n
	if i >= len(p.tokens) {
		return token.Token{Kind: token.EOF}
	}
	return p.tokens[i]
}

func (p *Parser) advance() {
	if p.pos < len(p.tokens) {
		p.pos++
	}
}

func (p *Parser) expect(kind token.Kind) *diagnostics.Error {
	if p.cur().Kind != kind {
		return diagnostics.New(diagnostics.PhaseParse, diagnostics.ErrExpectedToken, p.cur().Loc, kind, p.cur())
	}
	return nil
}

// Parse turns a complete token stream (as produced by internal/lexer)
// into the top-level Body node.
func Parse(tokens []token.Token) (*ast.Node, *diagnostics.Error) {
	p := &Parser{tokens: tokens}
	body := ast.New(ast.Body, nil)
	for p.cur().Kind != token.EOF {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		body.Append(stmt)
	}
	return body, nil
}

// statement parses a terminated expression.
func (p *Parser) statement() (*ast.Node, *diagnostics.Error) {
	expr, err := p.expression(0)
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	p.advance()
	return expr, nil
}

// expression is the main Pratt loop (spec.md §4.2's "Main loop").
func (p *Parser) expression(minPrecedence int) (*ast.Node, *diagnostics.Error) {
	tok := p.cur()
	entries := nullParsers[tok.Kind]
	if len(entries) == 0 {
		return nil, diagnostics.New(diagnostics.PhaseParse, diagnostics.ErrUnexpectedToken, tok.Loc, tok)
	}
	left, err := entries[0].parse(p, tok)
	if err != nil {
		return nil, err
	}

	for {
		tok = p.cur()
		if tok.Kind == token.EOF {
			return left, nil
		}
		candidates := opParsers[tok.Kind]
		advanced := false
		for _, entry := range candidates {
			if entry.precedence(tok) <= minPrecedence {
				continue
			}
			node, ok, err := entry.parse(p, tok, left)
			if err != nil {
				return nil, err
			}
			if ok {
				left = node
				advanced = true
				break
			}
		}
		if !advanced {
			return left, nil
		}
	}
}

// parseArgument parses one element of a comma-separated argument list:
// a bare `id` immediately followed by `:` is a named argument, anything
// else is a plain expression (spec.md §4.2).
func (p *Parser) parseArgument() (*ast.Node, *diagnostics.Error) {
	if p.cur().Kind == token.Id && p.peekAt(1).Kind == token.Colon {
		name := p.cur().Raw
		loc := p.cur().Loc
		p.advance() // id
		p.advance() // colon
		val, err := p.expression(0)
		if err != nil {
			return nil, err
		}
		return ast.New(ast.NamedArg, name, val).At(loc.Line, loc.Column), nil
	}
	return p.expression(0)
}

// newCallOn wraps target in a fresh FunctionCall with an empty
// Arguments list.
func newCallOn(target *ast.Node) *ast.Node {
	c := ast.New(ast.FunctionCall, nil, target, ast.New(ast.Arguments, nil))
	c.Named("target", 0).Named("args", 1)
	return c
}

// argsNode returns the Arguments child of a FunctionCall or Subcall
// node, the two call-shaped kinds an argument can be appended to.
func argsNode(host *ast.Node) *ast.Node {
	switch host.Kind {
	case ast.FunctionCall:
		return host.Second()
	case ast.Subcall:
		return host.First()
	default:
		return nil
	}
}

// nullEntry is a registered null sub-parser: consumes a token with no
// left-hand context.
type nullEntry struct {
	strength int
	parse    func(p *Parser, tok token.Token) (*ast.Node, *diagnostics.Error)
}

// opEntry is a registered op sub-parser: consumes a token with a left
// expression already parsed. parse may decline by returning ok=false,
// in which case the next entry for the same token kind is tried.
type opEntry struct {
	strength   int
	precedence func(tok token.Token) int
	parse      func(p *Parser, tok token.Token, left *ast.Node) (*ast.Node, bool, *diagnostics.Error)
}

var nullParsers map[token.Kind][]nullEntry
var opParsers map[token.Kind][]opEntry

func init() {
	nullParsers = buildNullRegistry([]struct {
		kinds []token.Kind
		nullEntry
	}{
		{[]token.Kind{token.Id}, nullEntry{0, parseId}},
		{[]token.Kind{token.Int, token.Float, token.Str}, nullEntry{0, parseConstant}},
		{[]token.Kind{token.Operator}, nullEntry{0, parseUnaryOp}},
		{[]token.Kind{token.LParen}, nullEntry{0, parseParenthesised}},
		{[]token.Kind{token.Pipe, token.LBrace}, nullEntry{0, parseBlock}},
		{[]token.Kind{token.OpenBracket}, nullEntry{0, parseBracketExpression}},
	})

	opParsers = buildOpRegistry([]struct {
		kinds []token.Kind
		opEntry
	}{
		{[]token.Kind{token.Operator}, opEntry{0, binaryOpPrecedence, parseBinaryOp}},
		{[]token.Kind{token.LParen}, opEntry{0, callPrecedence, parseCallParenArgs}},
		{[]token.Kind{token.LBrace}, opEntry{0, callPrecedence, parseCallBlockArg}},
		{[]token.Kind{token.Id}, opEntry{20, callPrecedence, parseCallIdentifierChain}},
		{[]token.Kind{token.OpenBracket}, opEntry{0, callPrecedence, parseIndexOp}},
		{[]token.Kind{token.Id, token.Str, token.Float, token.Int}, opEntry{10, flatCallPrecedence, parseFlatCall}},
	})
}

func buildNullRegistry(descs []struct {
	kinds []token.Kind
	nullEntry
}) map[token.Kind][]nullEntry {
	m := make(map[token.Kind][]nullEntry)
	for _, d := range descs {
		for _, k := range d.kinds {
			m[k] = append(m[k], d.nullEntry)
		}
	}
	for k := range m {
		sort.SliceStable(m[k], func(i, j int) bool { return m[k][i].strength > m[k][j].strength })
	}
	return m
}

func buildOpRegistry(descs []struct {
	kinds []token.Kind
	opEntry
}) map[token.Kind][]opEntry {
	m := make(map[token.Kind][]opEntry)
	for _, d := range descs {
		for _, k := range d.kinds {
			m[k] = append(m[k], d.opEntry)
		}
	}
	for k := range m {
		sort.SliceStable(m[k], func(i, j int) bool { return m[k][i].strength > m[k][j].strength })
	}
	return m
}

func callPrecedence(token.Token) int     { return config.PrecCall }
func flatCallPrecedence(token.Token) int { return config.PrecFlatCall }
func binaryOpPrecedence(tok token.Token) int {
	return config.BinaryPrecedence(tok.Raw)
}
