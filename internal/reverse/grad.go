package reverse

import (
	"github.com/born-ml/bambanta/internal/validate"
)

// grad returns the total derivative of node id, computing and caching it for
// every uncached node reachable through its edges.
//
// Algorithm (iterative post-order, equivalent to the recursive definition
// der = Σ weight · child.der):
//  1. Return immediately if der is cached
//  2. Visit children first; a child seeded by Outer or already swept is reused
//  3. Sum weighted child derivatives and cache the result
func (g *Graph) grad(id int) []float64 {
	if d := g.nodes[id].der; d != nil {
		return d
	}

	type frame struct {
		id       int
		expanded bool
	}
	stack := []frame{{id: id}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		e := &g.nodes[f.id]
		if e.der != nil {
			continue
		}

		if f.expanded {
			sum := make([]float64, len(e.val))
			for _, ed := range e.edges {
				accumulate(sum, ed.weight, g.nodes[ed.to].der)
			}
			e.der = sum
			continue
		}

		stack = append(stack, frame{id: f.id, expanded: true})
		for _, ed := range e.edges {
			if g.nodes[ed.to].der == nil {
				stack = append(stack, frame{id: ed.to})
			}
		}
	}

	return g.nodes[id].der
}

// accumulate adds weight ⊙ der into sum.
//
// weight and der are length 1 or the length k of the downstream node. A node
// of length 1 that fed a longer result receives the sum of all k
// contributions.
func accumulate(sum, weight, der []float64) {
	k := max(len(weight), len(der))
	at := func(s []float64, i int) float64 {
		if len(s) == 1 {
			return s[0]
		}
		return s[i]
	}

	switch {
	case len(sum) == k:
		for i := range sum {
			sum[i] += at(weight, i) * at(der, i)
		}
	case len(sum) == 1:
		for i := 0; i < k; i++ {
			sum[0] += at(weight, i) * at(der, i)
		}
	default:
		panic(validate.Dimension("reverse.Grad", "cannot accumulate %d contributions into %d entries", k, len(sum)))
	}
}
