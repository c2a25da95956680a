package shape

import (
	"fmt"
	"strconv"
	"strings"
)

// Shape represents the per-dimension extents of a nested array-like value
type Shape []int64

// New creates a new shape from dimensions
func New(dims ...int64) Shape {
	if len(dims) == 0 {
		return Shape{}
	}
	return Shape(dims).Clone()
}

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// Clone returns a copy of the shape. A nil or empty shape clones to a non-nil
// rank-0 shape.
func (s Shape) Clone() Shape {
	if len(s) == 0 {
		return Shape{}
	}
	c := make(Shape, len(s))
	copy(c, s)
	return c
}

// Equal reports whether both shapes have the same dimensions.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

func (s Shape) String() string {
	if len(s) == 0 {
		return "scalar"
	}
	parts := make([]string, len(s))
	for i, dim := range s {
		parts[i] = strconv.FormatInt(dim, 10)
	}
	return strings.Join(parts, "x")
}

// ElementCount returns the total element count for a shape.
// Dimensions must be non-negative; zero dimensions produce a count of zero.
func ElementCount(s Shape) (int, error) {
	maxInt := int(^uint(0) >> 1)

	count := 1
	for i, dim := range s {
		if dim < 0 {
			return 0, fmt.Errorf("invalid shape dimension at index %d: %d (must be >= 0)", i, dim)
		}

		if dim == 0 {
			count = 0
			continue
		}

		if count == 0 {
			continue
		}

		if dim > int64(maxInt) {
			return 0, fmt.Errorf("shape dimension at index %d is too large: %d", i, dim)
		}

		dimInt := int(dim)
		if count > maxInt/dimInt {
			return 0, fmt.Errorf("shape %v exceeds maximum supported element count", []int64(s))
		}

		count *= dimInt
	}

	return count, nil
}

// Parse parses a comma-separated shape string (for example: "3,3").
func Parse(raw string) (Shape, error) {
	parts := strings.Split(raw, ",")
	s := make(Shape, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("empty dimension")
		}

		dim, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse dimension %q: %w", part, err)
		}
		if dim < 0 {
			return nil, fmt.Errorf("negative dimension %d", dim)
		}
		s = append(s, dim)
	}

	return s, nil
}
