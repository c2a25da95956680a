package tensor

import (
	"fmt"
	"math"
	"reflect"

	"github.com/amikos-tech/pure-shape/shape"
)

// FromNested builds a tensor from a nested array-like value such as
// [][]float64 or []any{[]any{1, 2}, []any{3, 4}}.
//
// The shape is resolved with shape.WithSiblingCheck added to opts, so every
// container at a level must agree in length. Leaves are converted to T when
// the conversion is exact; fractional, out-of-range and non-numeric leaves are
// errors.
func FromNested[T any](x any, opts ...shape.Option) (*Tensor[T], error) {
	if _, _, err := elementTypeAndSize[T](); err != nil {
		return nil, err
	}

	opts = append(opts[:len(opts):len(opts)], shape.WithSiblingCheck())
	r, err := shape.NewResolver(opts...)
	if err != nil {
		return nil, err
	}

	dims, err := r.Resolve(x)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve nested shape: %w", err)
	}
	elementCount, err := shape.ElementCount(dims)
	if err != nil {
		return nil, err
	}

	root, _ := r.AsArrayLike(x)
	data := make([]T, 0, elementCount)
	if err := flatten(r, root, dims, nil, &data); err != nil {
		return nil, err
	}

	return New(dims, data)
}

func flatten[T any](r *shape.Resolver, a shape.ArrayLike, dims shape.Shape, path []int, out *[]T) error {
	for i := 0; i < a.Len(); i++ {
		index := append(path, i)
		elem := a.At(i)

		if len(dims) > 1 {
			child, ok := r.AsArrayLike(elem)
			if !ok {
				return fmt.Errorf("element at index %v is not array-like", index)
			}
			if err := flatten(r, child, dims[1:], index, out); err != nil {
				return err
			}
			continue
		}

		v, err := convertScalar[T](elem)
		if err != nil {
			return fmt.Errorf("element at index %v: %w", index, err)
		}
		*out = append(*out, v)
	}
	return nil
}

func convertScalar[T any](v any) (T, error) {
	var zero T
	if typed, ok := v.(T); ok {
		return typed, nil
	}
	if v == nil {
		return zero, fmt.Errorf("nil cannot be stored as %T", zero)
	}

	src := reflect.ValueOf(v)
	dst := reflect.New(reflect.TypeOf(zero)).Elem()
	if !isNumericKind(src.Kind()) || !isNumericKind(dst.Kind()) {
		return zero, fmt.Errorf("cannot store %T as %T", v, zero)
	}

	switch dst.Kind() {
	case reflect.Float32, reflect.Float64:
		f := floatValue(src)
		if dst.OverflowFloat(f) {
			return zero, fmt.Errorf("value %v overflows %T", v, zero)
		}
		dst.SetFloat(f)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := intValue(src)
		if err != nil {
			return zero, err
		}
		if dst.OverflowInt(i) {
			return zero, fmt.Errorf("value %v overflows %T", v, zero)
		}
		dst.SetInt(i)
	default:
		u, err := uintValue(src)
		if err != nil {
			return zero, err
		}
		if dst.OverflowUint(u) {
			return zero, fmt.Errorf("value %v overflows %T", v, zero)
		}
		dst.SetUint(u)
	}

	return dst.Interface().(T), nil
}

func isNumericKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func floatValue(v reflect.Value) float64 {
	switch {
	case v.CanInt():
		return float64(v.Int())
	case v.CanUint():
		return float64(v.Uint())
	default:
		return v.Float()
	}
}

func intValue(v reflect.Value) (int64, error) {
	switch {
	case v.CanInt():
		return v.Int(), nil
	case v.CanUint():
		u := v.Uint()
		if u > math.MaxInt64 {
			return 0, fmt.Errorf("value %d overflows int64", u)
		}
		return int64(u), nil
	default:
		f := v.Float()
		if f != math.Trunc(f) || math.IsInf(f, 0) {
			return 0, fmt.Errorf("value %v is not an integer", f)
		}
		if f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, fmt.Errorf("value %v overflows int64", f)
		}
		return int64(f), nil
	}
}

func uintValue(v reflect.Value) (uint64, error) {
	switch {
	case v.CanInt():
		i := v.Int()
		if i < 0 {
			return 0, fmt.Errorf("negative value %d cannot be stored as unsigned", i)
		}
		return uint64(i), nil
	case v.CanUint():
		return v.Uint(), nil
	default:
		f := v.Float()
		if f != math.Trunc(f) || math.IsInf(f, 0) {
			return 0, fmt.Errorf("value %v is not an integer", f)
		}
		if f < 0 {
			return 0, fmt.Errorf("negative value %v cannot be stored as unsigned", f)
		}
		if f >= math.MaxUint64 {
			return 0, fmt.Errorf("value %v overflows uint64", f)
		}
		return uint64(f), nil
	}
}
