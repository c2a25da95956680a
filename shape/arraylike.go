package shape

import "reflect"

// ArrayLike is a container exposing a non-negative length and integer-indexed
// element access.
type ArrayLike interface {
	// Len returns the number of elements.
	Len() int
	// At returns the element at index i, 0 <= i < Len().
	At(i int) any
}

// Predicate reports whether v is array-like and, if so, returns an accessor
// for it.
type Predicate func(v any) (ArrayLike, bool)

// AsArrayLike is the default Predicate.
//
// Values implementing ArrayLike are returned as is. Go slices and arrays of any
// element type, and non-nil pointers to arrays, are wrapped with a reflection
// accessor. Strings are not array-like, nor are maps, structs, funcs, channels,
// scalars or untyped nil.
func AsArrayLike(v any) (ArrayLike, bool) {
	switch v := v.(type) {
	case nil:
		return nil, false
	case ArrayLike:
		if isNilPointer(v) {
			return nil, false
		}
		return v, true
	case []any:
		return anySlice(v), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return reflectArray{value: rv}, true
	case reflect.Pointer:
		if rv.IsNil() || rv.Elem().Kind() != reflect.Array {
			return nil, false
		}
		return reflectArray{value: rv.Elem()}, true
	default:
		return nil, false
	}
}

// IsArrayLike reports whether AsArrayLike accepts v.
func IsArrayLike(v any) bool {
	_, ok := AsArrayLike(v)
	return ok
}

// isNilPointer reports typed nil pointers, whose methods may not be callable.
// Nil slices stay array-like with length 0.
func isNilPointer(v ArrayLike) bool {
	value := reflect.ValueOf(v)
	switch value.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Func, reflect.Chan:
		return value.IsNil()
	default:
		return false
	}
}

type anySlice []any

func (s anySlice) Len() int     { return len(s) }
func (s anySlice) At(i int) any { return s[i] }

type reflectArray struct {
	value reflect.Value
}

func (a reflectArray) Len() int {
	return a.value.Len()
}

func (a reflectArray) At(i int) any {
	elem := a.value.Index(i)
	if !elem.CanInterface() {
		return nil
	}
	return elem.Interface()
}
