package constants

import "github.com/krajzeg/september/internal/pipeline"

// Processor walks the parsed AST and stores the resulting constant
// pool on the context for the compiler stage.
type Processor struct{}

func (p *Processor) Process(ctx *pipeline.CompileContext) *pipeline.CompileContext {
	ctx.Pool = Collect(ctx.AST)
	return ctx
}
