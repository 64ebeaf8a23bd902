package forward

import (
	"github.com/born-ml/bambanta/internal/validate"
	"gonum.org/v1/gonum/mat"
)

// Create builds seed nodes for values.
//
//   - scalar: one node with derivative [1]
//   - vector of length k: k nodes, node i seeded with the i-th one-hot row
//   - k×d matrix: k nodes, node i has value row i and every one of its d
//     outputs seeded with the i-th one-hot row of length k
func Create(values any) ([]*Node, error) {
	a, err := validate.Flatten("forward.Create", values)
	if err != nil {
		return nil, err
	}
	if len(a.Data) == 0 {
		return nil, validate.Dimension("forward.Create", "values cannot be empty")
	}

	switch a.NDim() {
	case 0:
		return []*Node{seed(a.Data[0], 0, 1)}, nil

	case 1:
		nodes := make([]*Node, len(a.Data))
		for i, v := range a.Data {
			nodes[i] = seed(v, i, len(a.Data))
		}
		return nodes, nil

	case 2:
		rows, cols := a.Shape[0], a.Shape[1]
		nodes := make([]*Node, rows)
		for i := 0; i < rows; i++ {
			parts := make([]*Node, cols)
			for j := 0; j < cols; j++ {
				parts[j] = seed(a.Data[i*cols+j], i, rows)
			}
			s, err := Stack(parts...)
			if err != nil {
				return nil, err
			}
			nodes[i] = s
		}
		return nodes, nil
	}

	return nil, validate.Dimension("forward.Create", "values must be at most 2-D, got shape %v", a.Shape)
}

// seed returns a single-output node whose derivative is the i-th one-hot row
// of length n.
func seed(v float64, i, n int) *Node {
	der := mat.NewDense(1, n, nil)
	der.Set(0, i, 1)
	return build("forward.Create", []float64{v}, der)
}

// Stack concatenates the values of nodes and stacks their Jacobian rows into
// one node. All nodes must track the same number of seed variables.
func Stack(nodes ...*Node) (*Node, error) {
	if len(nodes) == 0 {
		return nil, validate.Dimension("forward.Stack", "no nodes to stack")
	}
	n := nodes[0].NumVars()
	var val []float64
	for i, node := range nodes {
		if node.NumVars() != n {
			return nil, validate.Dimension("forward.Stack", "node %d tracks %d seed variables, want %d", i, node.NumVars(), n)
		}
		val = append(val, node.val...)
	}

	der := mat.NewDense(len(val), n, nil)
	row := 0
	for _, node := range nodes {
		r, _ := node.der.Dims()
		for i := 0; i < r; i++ {
			der.SetRow(row, node.der.RawRowView(i))
			row++
		}
	}
	return build("forward.Stack", val, der), nil
}
