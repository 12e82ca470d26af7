package environment

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gorgonia.org/tensor"
)

// SpecType determines what kind of specification a Spec is. A Spec can
// specify the layout of an acion, an observation, a discount, or a reward
type SpecType int

const (
	Action SpecType = iota
	Observation
	Discount
	Reward
)

func (s SpecType) String() string {
	switch s {
	case Action:
		return "Action"
	case Observation:
		return "Observation"
	case Discount:
		return "Discount"
	default:
		return "Reward"
	}
}

// Cardinality determines the cardinality of a number (discrete or continuous)
type Cardinality string

const (
	Continuous Cardinality = "Continuous"
	Discrete   Cardinality = "Discrete"
)

// Spec implements an environment specification, which tells the type,
// shape, and bounds of an action, observation, discount, or reward in
// an environment.
//
// Shape holds one entry per dimension of the data, e.g. an observation
// tensor of shape (10, 30, 5) has Shape [10, 30, 5]. The bounds hold
// one entry per dimension as well and bound every element in that
// dimension.
type Spec struct {
	Shape      mat.Vector
	Type       SpecType
	LowerBound mat.Vector
	UpperBound mat.Vector
	Cardinality

	// Dtype is the element type of tensor valued data. It is nil for
	// specs describing scalars or gonum vectors.
	Dtype tensor.Dtype
}

// NewSpec constructs a new environment specification
// The shape argument outlines the shape of the data described by the
// specification. The argument t outlines what the specification is
// describing (e.g. actions, observations, etc.). The cardinality
// arguments describes whether the values that the spec describes are
// continuous or discrete.
func NewSpec(shape mat.Vector, t SpecType, lowerBound,
	upperBound mat.Vector, cardinality Cardinality) Spec {
	if shape.Len() != lowerBound.Len() {
		panic(fmt.Sprintf("newSpec: shape length %v must match lower bounds "+
			"length %v", shape.Len(), lowerBound.Len()))
	}
	if shape.Len() != upperBound.Len() {
		panic(fmt.Sprintf("newSpec: shape length %v must match upper bounds "+
			"length %v", shape.Len(), upperBound.Len()))
	}
	return Spec{
		Shape:       shape,
		Type:        t,
		LowerBound:  lowerBound,
		UpperBound:  upperBound,
		Cardinality: cardinality,
	}
}

// NewTensorSpec constructs a specification of tensor valued data with
// the given shape and element type. Every element of the tensor lies
// in [low, high].
func NewTensorSpec(shape tensor.Shape, t SpecType, low, high float64,
	dtype tensor.Dtype, cardinality Cardinality) Spec {
	dims := make([]float64, len(shape))
	lows := make([]float64, len(shape))
	highs := make([]float64, len(shape))
	for i := range shape {
		dims[i] = float64(shape[i])
		lows[i] = low
		highs[i] = high
	}

	s := NewSpec(mat.NewVecDense(len(dims), dims), t,
		mat.NewVecDense(len(lows), lows), mat.NewVecDense(len(highs), highs),
		cardinality)
	s.Dtype = dtype
	return s
}

// TensorShape returns the Shape of the Spec as a tensor.Shape
func (s Spec) TensorShape() tensor.Shape {
	shape := make(tensor.Shape, s.Shape.Len())
	for i := range shape {
		shape[i] = int(s.Shape.AtVec(i))
	}
	return shape
}
