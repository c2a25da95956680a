package tensor

import "github.com/amikos-tech/pure-shape/shape"

// Buffer is a fixed-width typed buffer. It is array-like, so it can appear
// anywhere in a nested value passed to shape.Resolve or FromNested.
type Buffer[T any] []T

var _ shape.ArrayLike = Buffer[float64](nil)

// NewBuffer copies values into a new buffer after checking that T is a
// supported element type.
func NewBuffer[T any](values ...T) (Buffer[T], error) {
	if _, _, err := elementTypeAndSize[T](); err != nil {
		return nil, err
	}
	b := make(Buffer[T], len(values))
	copy(b, values)
	return b, nil
}

// Len returns the number of elements in the buffer.
func (b Buffer[T]) Len() int {
	return len(b)
}

// At returns the element at index i.
func (b Buffer[T]) At(i int) any {
	return b[i]
}

// ElementType returns the buffer element type, or ElementTypeUndefined when T
// is not a supported element type.
func (b Buffer[T]) ElementType() ElementType {
	elementType, _, _ := elementTypeAndSize[T]()
	return elementType
}
