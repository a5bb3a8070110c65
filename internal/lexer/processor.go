package lexer

import (
	"strings"

	"github.com/krajzeg/september/internal/diagnostics"
	"github.com/krajzeg/september/internal/pipeline"
	"github.com/krajzeg/september/internal/token"
)

// Processor runs the lexer once over the whole source, batch-style,
// and stores every token on the context for the parser stage.
type Processor struct{}

func (p *Processor) Process(ctx *pipeline.CompileContext) *pipeline.CompileContext {
	tokens, err := Lex(ctx.Source)
	if err != nil {
		lexErr, ok := err.(*Error)
		if !ok {
			return ctx.Fail(diagnostics.New(diagnostics.PhaseLex, diagnostics.ErrUnrecognizedInput, token.Location{}, err.Error()))
		}
		return ctx.Fail(diagnostics.New(diagnostics.PhaseLex, codeFor(lexErr), lexErr.Loc, lexErr.Msg))
	}
	ctx.Tokens = tokens
	return ctx
}

func codeFor(err *Error) diagnostics.Code {
	switch {
	case strings.HasPrefix(err.Msg, "unmatched closing bracket"):
		return diagnostics.ErrUnmatchedCloser
	case strings.HasPrefix(err.Msg, "mismatched brackets"):
		return diagnostics.ErrMismatchedCloser
	default:
		return diagnostics.ErrUnrecognizedInput
	}
}
