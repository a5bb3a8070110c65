package compiler

// optimize runs the two-pass peephole optimizer over fn's code
// (spec.md §4.4): forward-merging pure-pre-flag NOPs into the
// following instruction, then backward-merging pure-post-flag NOPs
// into the preceding one. Each merge is only valid when the two
// instructions' flag sets are disjoint, so the combined flags stay a
// set (no letter doubles up).
func optimize(fn *CompiledFunction) {
	fn.Code = mergeForward(fn.Code)
	fn.Code = mergeBackward(fn.Code)
}

func mergeForward(code []Instruction) []Instruction {
	i := 0
	for i < len(code) {
		cur := code[i]
		if cur.Op == NOP && cur.Flags.IsPreFlag() && i < len(code)-1 {
			next := code[i+1]
			if cur.Flags&next.Flags == 0 {
				merged := Instruction{
					Op:       next.Op,
					Flags:    cur.Flags | next.Flags,
					PreArgs:  append(append([]Reference{}, cur.PreArgs...), next.PreArgs...),
					Args:     append(append([]Reference{}, cur.Args...), next.Args...),
					PostArgs: append(append([]Reference{}, cur.PostArgs...), next.PostArgs...),
				}
				code = append(code[:i], code[i+1:]...)
				code[i] = merged
				continue
			}
		}
		i++
	}
	return code
}

func mergeBackward(code []Instruction) []Instruction {
	i := 0
	for i < len(code) {
		cur := code[i]
		if cur.Op == NOP && cur.Flags.IsPostFlag() && i > 0 {
			prev := code[i-1]
			if cur.Flags&prev.Flags == 0 {
				code[i-1] = Instruction{
					Op:       prev.Op,
					Flags:    prev.Flags | cur.Flags,
					PreArgs:  append(append([]Reference{}, prev.PreArgs...), cur.PreArgs...),
					Args:     append(append([]Reference{}, prev.Args...), cur.Args...),
					PostArgs: append(append([]Reference{}, prev.PostArgs...), cur.PostArgs...),
				}
				code = append(code[:i], code[i+1:]...)
				continue
			}
		}
		i++
	}
	return code
}
