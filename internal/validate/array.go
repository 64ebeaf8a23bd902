// Package validate normalizes user supplied values and derivatives into the
// canonical shapes used by the differentiation engines.
//
// It is the single place dimensional correctness is enforced: values are
// scalars or vectors, derivatives are m×n Jacobians whose row count matches
// the value length. Inputs may be Go numeric scalars, (nested) slices or
// arrays of numbers, []any, or gonum mat.Vector / mat.Matrix values.
package validate

import (
	"reflect"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// Array is a dense row-major view of a numeric input.
type Array struct {
	Data  []float64
	Shape []int // Empty for scalars
}

// NDim returns the number of logical dimensions.
func (a *Array) NDim() int {
	return len(a.Shape)
}

// Flatten converts v into an Array.
//
// Ragged nested sequences are rejected with ErrDimension, non-numeric
// elements (strings, bools, nil, structs) with ErrTypeKind.
func Flatten(op string, v any) (*Array, error) {
	switch m := v.(type) {
	case nil:
		return nil, typeKind(op, "nil is not a number")
	case mat.Vector:
		n := m.Len()
		data := make([]float64, n)
		for i := range data {
			data[i] = m.AtVec(i)
		}
		return &Array{Data: data, Shape: []int{n}}, nil
	case mat.Matrix:
		r, c := m.Dims()
		data := make([]float64, 0, r*c)
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				data = append(data, m.At(i, j))
			}
		}
		return &Array{Data: data, Shape: []int{r, c}}, nil
	}

	a := &Array{}
	shape, err := flatten(op, reflect.ValueOf(v), &a.Data)
	if err != nil {
		return nil, err
	}
	a.Shape = shape
	return a, nil
}

func flatten(op string, rv reflect.Value, data *[]float64) ([]int, error) {
	switch rv.Kind() {
	case reflect.Interface, reflect.Pointer:
		if rv.IsNil() {
			return nil, typeKind(op, "nil is not a number")
		}
		return flatten(op, rv.Elem(), data)

	case reflect.Float32, reflect.Float64:
		*data = append(*data, rv.Float())
		return []int{}, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		*data = append(*data, float64(rv.Int()))
		return []int{}, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		*data = append(*data, float64(rv.Uint()))
		return []int{}, nil

	case reflect.Slice, reflect.Array:
		n := rv.Len()
		if n == 0 {
			return []int{0}, nil
		}
		var inner []int
		for i := 0; i < n; i++ {
			s, err := flatten(op, rv.Index(i), data)
			if err != nil {
				return nil, err
			}
			if i == 0 {
				inner = s
				continue
			}
			if !slices.Equal(inner, s) {
				return nil, Dimension(op, "ragged sequence: element %d has shape %v, want %v", i, s, inner)
			}
		}
		return append([]int{n}, inner...), nil

	case reflect.Invalid:
		return nil, typeKind(op, "nil is not a number")

	default:
		return nil, typeKind(op, "element of kind %s is not a number", rv.Kind())
	}
}
