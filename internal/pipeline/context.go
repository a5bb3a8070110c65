package pipeline

import (
	"github.com/krajzeg/september/internal/ast"
	"github.com/krajzeg/september/internal/compiler"
	"github.com/krajzeg/september/internal/constants"
	"github.com/krajzeg/september/internal/diagnostics"
	"github.com/krajzeg/september/internal/token"
)

// CompileContext threads everything one compile run produces between
// pipeline stages: source text in, a finished module's pieces out.
// Each stage owns the field it fills in and leaves everything earlier
// untouched (spec.md §5 — state is transferred by value, never shared
// mutably between stages).
type CompileContext struct {
	Source   string
	FilePath string

	Tokens []token.Token
	AST    *ast.Node

	Pool      *constants.Pool
	Functions []*compiler.CompiledFunction

	Module []byte // the finished ".09" bytes, once the encoder stage runs

	Errors []*diagnostics.Error
}

// NewCompileContext seeds a context with source text ready for the
// first stage.
func NewCompileContext(source, filePath string) *CompileContext {
	return &CompileContext{Source: source, FilePath: filePath}
}

// Fail appends a diagnostic to ctx and returns ctx, the idiom every
// stage uses to report a fatal error without panicking.
func (ctx *CompileContext) Fail(err *diagnostics.Error) *CompileContext {
	ctx.Errors = append(ctx.Errors, err)
	return ctx
}

// Failed reports whether any stage has recorded an error yet.
func (ctx *CompileContext) Failed() bool {
	return len(ctx.Errors) > 0
}
