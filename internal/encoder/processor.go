package encoder

import (
	"github.com/krajzeg/september/internal/diagnostics"
	"github.com/krajzeg/september/internal/pipeline"
	"github.com/krajzeg/september/internal/token"
)

// Processor renders the context's pool and compiled functions into the
// final ".09" module bytes, the pipeline's last stage.
type Processor struct{}

func (p *Processor) Process(ctx *pipeline.CompileContext) *pipeline.CompileContext {
	module, err := Encode(ctx.Pool, ctx.Functions)
	if err != nil {
		if diagErr, ok := err.(*diagnostics.Error); ok {
			return ctx.Fail(diagErr)
		}
		return ctx.Fail(diagnostics.New(diagnostics.PhaseCompile, diagnostics.ErrInternal, token.Location{}, err.Error()))
	}
	ctx.Module = module
	return ctx
}
