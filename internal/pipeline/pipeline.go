package pipeline

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline, stopping at the first stage that records
// an error (spec.md §5: the compiler never partially emits on failure).
func (p *Pipeline) Run(initialCtx *CompileContext) *CompileContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
		if ctx.Failed() {
			break
		}
	}
	return ctx
}
