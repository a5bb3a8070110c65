// Package encoder assembles a compiled September module into the
// binary ".09" file format spec.md §4.5 defines: a "SEPT" magic
// header, the varint-framed constant pool, each function's
// instruction stream, and a trailing footer byte.
//
// Every section is built as a funbit segment list and flattened with a
// single funbit.Build call, rather than writing bytes by hand, so the
// bit-level framing goes through the same segment/builder machinery
// the rest of the pack uses for binary assembly.
package encoder

import (
	"github.com/funvibe/funbit/pkg/funbit"

	"github.com/krajzeg/september/internal/compiler"
	"github.com/krajzeg/september/internal/config"
	"github.com/krajzeg/september/internal/constants"
	"github.com/krajzeg/september/internal/diagnostics"
	"github.com/krajzeg/september/internal/token"
)

const (
	constInt    = 0x01
	constString = 0x02
)

// Encode renders pool and functions into a complete module file.
func Encode(pool *constants.Pool, functions []*compiler.CompiledFunction) ([]byte, error) {
	b := funbit.NewBuilder()

	funbit.AddBinary(b, []byte(config.ModuleMagic))

	if err := writeConstants(b, pool); err != nil {
		return nil, err
	}
	for _, fn := range functions {
		writeFunction(b, fn)
	}

	funbit.AddInteger(b, config.FileFooter, funbit.WithSize(8))

	bs, err := funbit.Build(b)
	if err != nil {
		return nil, diagnostics.IOError(err)
	}
	return bs.ToBytes(), nil
}

func writeConstants(b *funbit.Builder, pool *constants.Pool) error {
	funbit.AddBinary(b, encodeVarint(int64(pool.Len())))

	for _, v := range pool.Values() {
		switch value := v.(type) {
		case int64:
			funbit.AddInteger(b, constInt, funbit.WithSize(8))
			funbit.AddBinary(b, encodeVarint(value))
		case int:
			funbit.AddInteger(b, constInt, funbit.WithSize(8))
			funbit.AddBinary(b, encodeVarint(int64(value)))
		case string:
			funbit.AddInteger(b, constString, funbit.WithSize(8))
			data := []byte(value)
			funbit.AddBinary(b, encodeVarint(int64(len(data))))
			funbit.AddBinary(b, data)
		default:
			return diagnostics.New(diagnostics.PhaseCompile, diagnostics.ErrInternal, token.Location{},
				"binary module format has no constant type for this value; September's encoder, like the original, only writes int and string constants")
		}
	}
	return nil
}

func writeFunction(b *funbit.Builder, fn *compiler.CompiledFunction) {
	funbit.AddBinary(b, encodeVarint(0)) // param count: spec.md §9 open question (b)

	for _, ins := range fn.Code {
		writeInstruction(b, ins)
	}
	funbit.AddInteger(b, config.FunctionTerminator, funbit.WithSize(8))
}

func writeInstruction(b *funbit.Builder, ins compiler.Instruction) {
	funbit.AddInteger(b, int(ins.Op)|int(ins.Flags), funbit.WithSize(8))

	writeRefs(b, ins.PreArgs)
	if ins.Op == compiler.LAZY {
		funbit.AddBinary(b, encodeVarint(int64(len(ins.Args))))
	}
	writeRefs(b, ins.Args)
	writeRefs(b, ins.PostArgs)
}

func writeRefs(b *funbit.Builder, refs []compiler.Reference) {
	for _, r := range refs {
		funbit.AddBinary(b, encodeVarint(refValue(r)))
	}
}

// refValue turns a Reference into the signed varint the wire format
// wants: constant and argname indices are positive, function indices
// are written negative (spec.md §3).
func refValue(r compiler.Reference) int64 {
	if r.Kind == compiler.FunctionRef {
		return -int64(r.Index)
	}
	return int64(r.Index)
}
