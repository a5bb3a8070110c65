package compiler

import (
	"github.com/krajzeg/september/internal/diagnostics"
	"github.com/krajzeg/september/internal/pipeline"
	"github.com/krajzeg/september/internal/token"
)

// Processor compiles the context's AST against its already-collected
// constant pool and stores the resulting function table.
type Processor struct{}

func (p *Processor) Process(ctx *pipeline.CompileContext) *pipeline.CompileContext {
	c := New(ctx.Pool)
	functions, err := c.Compile(ctx.AST)
	if err != nil {
		return ctx.Fail(diagnostics.New(diagnostics.PhaseCompile, diagnostics.ErrInternal, token.Location{}, err.Error()))
	}
	ctx.Functions = functions
	return ctx
}
