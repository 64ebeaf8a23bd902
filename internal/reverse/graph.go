// Package reverse implements reverse-mode automatic differentiation.
//
// Nodes live in a Graph arena and are addressed by stable indices. Every
// operation appends a new node and records, on each operand, an edge
// (local derivative, result index). After the expression is built, Outer
// seeds the output and Grad accumulates each node's total derivative lazily,
// caching it so shared subexpressions are swept exactly once.
//
// Usage:
//
//	g := reverse.NewGraph()
//	xs, _ := g.Create([]float64{5, 7})
//	z := xs[0].Mul(xs[1])
//	z.Outer()
//	xs[0].Partial() // 7
//	xs[1].Partial() // 5
//
// Edges always point from an operand to a node created after it, so the
// graph is acyclic by construction. A Graph is not safe for concurrent use:
// building must complete before the sweep starts.
package reverse

import (
	"github.com/born-ml/bambanta/internal/validate"
	"github.com/pkg/errors"
)

// ErrForeignNode is raised when operands from different graphs are combined.
var ErrForeignNode = errors.New("operand belongs to a different graph")

// Graph is the arena that owns every node of one or more expressions.
type Graph struct {
	nodes []entry
}

type entry struct {
	val   []float64
	edges []edge    // one per use as an operand, append-only
	der   []float64 // nil until seeded by Outer or computed by Grad
}

// edge records that node `to` depends on the owner with local derivative weight.
type edge struct {
	weight []float64
	to     int
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make([]entry, 0, 64),
	}
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Var adds an independent variable holding a scalar or vector value.
func (g *Graph) Var(value any) (Node, error) {
	v, err := validate.Value("reverse.Var", value)
	if err != nil {
		return Node{}, err
	}
	return g.add(v), nil
}

// Create adds seed variables for values.
//
//   - scalar: one node
//   - vector of length k: k scalar nodes
//   - k×d matrix: k vector nodes, one per row
func (g *Graph) Create(values any) ([]Node, error) {
	a, err := validate.Flatten("reverse.Create", values)
	if err != nil {
		return nil, err
	}
	if len(a.Data) == 0 {
		return nil, validate.Dimension("reverse.Create", "values cannot be empty")
	}

	switch a.NDim() {
	case 0:
		return []Node{g.add(a.Data)}, nil
	case 1:
		nodes := make([]Node, len(a.Data))
		for i, v := range a.Data {
			nodes[i] = g.add([]float64{v})
		}
		return nodes, nil
	case 2:
		rows, cols := a.Shape[0], a.Shape[1]
		nodes := make([]Node, rows)
		for i := 0; i < rows; i++ {
			nodes[i] = g.add(append([]float64(nil), a.Data[i*cols:(i+1)*cols]...))
		}
		return nodes, nil
	}
	return nil, validate.Dimension("reverse.Create", "values must be at most 2-D, got shape %v", a.Shape)
}

// Reset clears the cached derivative and the edge list of each node so the
// same inputs can seed a new expression.
func (g *Graph) Reset(nodes ...Node) {
	for _, n := range nodes {
		g.own(n)
		e := &g.nodes[n.id]
		e.der = nil
		e.edges = nil
	}
}

// ResetAll clears derivatives and edges of every node in the graph.
func (g *Graph) ResetAll() {
	for i := range g.nodes {
		g.nodes[i].der = nil
		g.nodes[i].edges = nil
	}
}

// ClearGrads drops every cached derivative but keeps the edges, so the same
// graph can be swept again from a different output.
func (g *Graph) ClearGrads() {
	for i := range g.nodes {
		g.nodes[i].der = nil
	}
}

func (g *Graph) add(val []float64) Node {
	g.nodes = append(g.nodes, entry{val: val})
	return Node{g: g, id: len(g.nodes) - 1}
}

// link records that node `to` depends on node `from` with local derivative w.
func (g *Graph) link(from, to int, w []float64) {
	g.nodes[from].edges = append(g.nodes[from].edges, edge{weight: w, to: to})
}

func (g *Graph) own(n Node) {
	if n.g != g {
		panic(errors.WithStack(ErrForeignNode))
	}
}
