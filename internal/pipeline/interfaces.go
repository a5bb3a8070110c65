package pipeline

// Processor is any pipeline stage that can transform a CompileContext.
type Processor interface {
	Process(ctx *CompileContext) *CompileContext
}
