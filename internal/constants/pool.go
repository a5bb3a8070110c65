// Package constants builds the frequency-ordered constant pool the
// code emitter and binary encoder share (spec.md §4.3).
package constants

import (
	"golang.org/x/exp/slices"

	"github.com/krajzeg/september/internal/ast"
)

// countedKinds are the node kinds that contribute to the constant
// pool. Every other kind is skipped during the walk.
var countedKinds = map[ast.Kind]bool{
	ast.Id:          true,
	ast.Constant:    true,
	ast.UnaryOp:     true,
	ast.BinaryOp:    true,
	ast.ComplexCall: true,
	ast.Subcall:     true,
	ast.NamedArg:    true,
}

// Pool is the insertion-order (by first occurrence), frequency-sorted
// list of distinct constant values discovered in an AST, together with
// the value->index mapping the emitter consults.
//
// Values are either int64, float64, or string. A single map[any]int
// is sufficient here, unlike the two-dict split original_source/py
// uses, because Go's interface equality already distinguishes dynamic
// types: an int64(5) key and a string("5") key never collide even
// though Python's dict would hash them compatibly under ==.
type Pool struct {
	values []any
	index  map[any]int
}

// Collect walks root and returns the resulting pool. The synthetic
// ComplexCall-closing Subcall("..!") the emitter injects is not part
// of the tree Collect sees, but its "..!" value still reaches the pool
// here, because the parser stores "..!" as the ComplexCall node's own
// value and ComplexCall is a counted kind.
func Collect(root *ast.Node) *Pool {
	freq := make(map[any]int)
	var order []any
	seen := make(map[any]bool)

	ast.Walk(root, func(n *ast.Node) {
		if !countedKinds[n.Kind] {
			return
		}
		v := n.Value
		if !seen[v] {
			seen[v] = true
			order = append(order, v)
		}
		freq[v]++
	})

	slices.SortStableFunc(order, func(a, b any) int {
		return freq[b] - freq[a]
	})

	p := &Pool{index: make(map[any]int, len(order))}
	for i, v := range order {
		p.values = append(p.values, v)
		p.index[v] = i + 1
	}
	return p
}

// Index returns the 1-based pool index for v, adding it to the pool
// (at the end, below any value discovered by the original walk) if it
// has not been seen before. Used by the emitter for synthetic values
// that don't appear verbatim in the source AST, like the "..!" marker.
func (p *Pool) Index(v any) int {
	if idx, ok := p.index[v]; ok {
		return idx
	}
	idx := len(p.values) + 1
	p.values = append(p.values, v)
	p.index[v] = idx
	return idx
}

// Values returns the pool's values in final index order (Values()[0]
// is pool index 1).
func (p *Pool) Values() []any { return p.values }

// Len returns the number of distinct constants in the pool.
func (p *Pool) Len() int { return len(p.values) }
