package tensor

import (
	"fmt"

	"github.com/amikos-tech/pure-shape/shape"
)

// Tensor represents a tensor with row-major data of type T
type Tensor[T any] struct {
	shape shape.Shape
	data  []T
}

// New creates a new tensor with the given shape and data.
// The tensor keeps a reference to data; the shape is copied.
func New[T any](s shape.Shape, data []T) (*Tensor[T], error) {
	if _, _, err := elementTypeAndSize[T](); err != nil {
		return nil, err
	}

	shapeCopy := s.Clone()
	elementCount, err := shape.ElementCount(shapeCopy)
	if err != nil {
		return nil, err
	}
	if len(data) != elementCount {
		return nil, fmt.Errorf("data length mismatch: got %d elements, expected %d for shape %v", len(data), elementCount, []int64(shapeCopy))
	}

	return &Tensor[T]{shape: shapeCopy, data: data}, nil
}

// NewEmpty creates a new zero-filled tensor with the given shape
func NewEmpty[T any](s shape.Shape) (*Tensor[T], error) {
	if _, _, err := elementTypeAndSize[T](); err != nil {
		return nil, err
	}

	shapeCopy := s.Clone()
	elementCount, err := shape.ElementCount(shapeCopy)
	if err != nil {
		return nil, err
	}

	return &Tensor[T]{shape: shapeCopy, data: make([]T, elementCount)}, nil
}

// Data returns the tensor data. Calling on a nil receiver returns nil.
func (t *Tensor[T]) Data() []T {
	if t == nil {
		return nil
	}
	return t.data
}

// Shape returns a copy of the tensor shape
func (t *Tensor[T]) Shape() shape.Shape {
	if t == nil {
		return nil
	}
	return t.shape.Clone()
}

// Rank returns the number of dimensions; 0 for scalars.
func (t *Tensor[T]) Rank() int {
	if t == nil {
		return 0
	}
	return len(t.shape)
}

// ElementType returns the element type of the tensor data.
func (t *Tensor[T]) ElementType() ElementType {
	elementType, _, _ := elementTypeAndSize[T]()
	return elementType
}

// ByteSize returns the size of the tensor data in bytes.
func (t *Tensor[T]) ByteSize() (uintptr, error) {
	_, elementSize, err := elementTypeAndSize[T]()
	if err != nil {
		return 0, err
	}
	return dataByteSize(len(t.Data()), elementSize)
}

// View returns a nested array-like view of the tensor that shares its data.
// Resolving the view yields the tensor shape up to the first zero dimension.
// Scalars have no view.
func (t *Tensor[T]) View() (shape.ArrayLike, bool) {
	if t == nil || len(t.shape) == 0 {
		return nil, false
	}
	return view[T]{dims: t.shape, data: t.data}, true
}

type view[T any] struct {
	dims shape.Shape
	data []T
}

func (v view[T]) Len() int {
	return int(v.dims[0])
}

func (v view[T]) At(i int) any {
	if len(v.dims) == 1 {
		return v.data[i]
	}
	stride := len(v.data) / int(v.dims[0])
	return view[T]{dims: v.dims[1:], data: v.data[i*stride : (i+1)*stride]}
}
