// Package prettyprinter renders a compiled module as the assembly-like
// listing septc's "-d" flag prints: a constant pool header followed by
// one FUNC block per compiled function, in the column layout
// original_source/py/sepcompiler.py's StringOutput uses.
package prettyprinter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/krajzeg/september/internal/compiler"
	"github.com/krajzeg/september/internal/constants"
)

const operationColumn = 14

var opcodeNames = map[compiler.Opcode]string{
	compiler.NOP:   "NOP",
	compiler.PUSH:  "PUSH",
	compiler.LAZY:  "LAZY",
	compiler.EAGER: "EAGER",
}

// flagLetters lists every flag bit in the order original_source/py
// concatenates them in: pre-flags (push-locals, fetch-property,
// create-property) followed by post-flags (store-value, pop-result).
var flagLetters = []struct {
	bit    compiler.Flag
	letter byte
}{
	{compiler.FlagPushLocals, 'l'},
	{compiler.FlagFetchProperty, 'f'},
	{compiler.FlagCreateProperty, 'c'},
	{compiler.FlagStoreValue, 's'},
	{compiler.FlagPopResult, 'v'},
}

// Dump renders pool and functions as a human-readable listing and
// reports the finished module's size, humanized, in its closing line.
// When buildID is non-empty, it is emitted as a leading "; build" comment.
func Dump(pool *constants.Pool, functions []*compiler.CompiledFunction, moduleSize int, buildID string) string {
	var b strings.Builder

	if buildID != "" {
		fmt.Fprintf(&b, "; build %s\n", buildID)
	}
	fmt.Fprintf(&b, "CONSTANTS(%d):\n", pool.Len())
	for _, v := range pool.Values() {
		fmt.Fprintf(&b, "\tdefine\t%s\n", formatConstant(v))
	}
	b.WriteString("\n===\n\n")

	for _, fn := range functions {
		writeFunction(&b, fn)
	}

	fmt.Fprintf(&b, "module size: %s\n", humanize.Bytes(uint64(moduleSize)))
	return b.String()
}

func writeFunction(b *strings.Builder, fn *compiler.CompiledFunction) {
	names := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		names[i] = p.Name + paramFlagSuffix(p)
	}
	fmt.Fprintf(b, "FUNC(%s):\n", strings.Join(names, ","))

	for _, ins := range fn.Code {
		writeInstruction(b, ins)
	}
	b.WriteString("\n")
}

func writeInstruction(b *strings.Builder, ins compiler.Instruction) {
	op := "\t" + opcodeNames[ins.Op]
	if flags := flagString(ins.Flags); flags != "" {
		op += "." + flags
	}
	if len(op) < operationColumn {
		op += strings.Repeat(" ", operationColumn-len(op))
	}
	b.WriteString(op)

	operands := make([]string, 0, len(ins.PreArgs)+len(ins.Args)+len(ins.PostArgs))
	for _, r := range append(append(append([]compiler.Reference{}, ins.PreArgs...), ins.Args...), ins.PostArgs...) {
		operands = append(operands, formatRef(r))
	}
	b.WriteString(strings.Join(operands, ", "))
	b.WriteString("\n")
}

func flagString(f compiler.Flag) string {
	var letters []byte
	for _, entry := range flagLetters {
		if f&entry.bit != 0 {
			letters = append(letters, entry.letter)
		}
	}
	return string(letters)
}

// formatRef renders a reference as its single-letter pool tag followed
// by its index: c (constant), f (function), a (argname).
func formatRef(r compiler.Reference) string {
	switch r.Kind {
	case compiler.FunctionRef:
		return "f" + strconv.Itoa(r.Index)
	case compiler.ArgnameRef:
		return "a" + strconv.Itoa(r.Index)
	default:
		return "c" + strconv.Itoa(r.Index)
	}
}

func formatConstant(v any) string {
	switch val := v.(type) {
	case string:
		return strconv.Quote(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func paramFlagSuffix(p compiler.ParamInfo) string {
	var suffix string
	if p.Flags != 0 {
		suffix = "(" + p.Flags.String() + ")"
	}
	return suffix
}
