package parser

import "github.com/krajzeg/september/internal/pipeline"

// Processor runs the parser over the context's token stream and
// stores the resulting Body node.
type Processor struct{}

func (pr *Processor) Process(ctx *pipeline.CompileContext) *pipeline.CompileContext {
	root, err := Parse(ctx.Tokens)
	if err != nil {
		return ctx.Fail(err)
	}
	ctx.AST = root
	return ctx
}
