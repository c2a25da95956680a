package tensor

import (
	"fmt"
	"unsafe"
)

// ElementType represents the data type of tensor elements.
// Values follow the ONNX TensorProto numbering.
type ElementType int

const (
	ElementTypeUndefined ElementType = iota
	ElementTypeFloat
	ElementTypeUint8
	ElementTypeInt8
	ElementTypeUint16
	ElementTypeInt16
	ElementTypeInt32
	ElementTypeInt64
	ElementTypeString
	ElementTypeBool
	ElementTypeFloat16
	ElementTypeDouble
	ElementTypeUint32
	ElementTypeUint64
)

var elementTypeNames = map[ElementType]string{
	ElementTypeUndefined: "undefined",
	ElementTypeFloat:     "float32",
	ElementTypeUint8:     "uint8",
	ElementTypeInt8:      "int8",
	ElementTypeUint16:    "uint16",
	ElementTypeInt16:     "int16",
	ElementTypeInt32:     "int32",
	ElementTypeInt64:     "int64",
	ElementTypeString:    "string",
	ElementTypeBool:      "bool",
	ElementTypeFloat16:   "float16",
	ElementTypeDouble:    "float64",
	ElementTypeUint32:    "uint32",
	ElementTypeUint64:    "uint64",
}

func (t ElementType) String() string {
	if name, ok := elementTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ElementType(%d)", int(t))
}

// ElementTypeOf returns the element type stored by a Tensor[T] or Buffer[T].
func ElementTypeOf[T any]() (ElementType, error) {
	elementType, _, err := elementTypeAndSize[T]()
	return elementType, err
}

// elementTypeAndSize maps Go generic element type T to tensor element metadata.
// Supported types are the fixed-width numeric types and bool.
func elementTypeAndSize[T any]() (ElementType, uintptr, error) {
	var zero T

	switch any(zero).(type) {
	case float32:
		return ElementTypeFloat, unsafe.Sizeof(zero), nil
	case float64:
		return ElementTypeDouble, unsafe.Sizeof(zero), nil
	case int8:
		return ElementTypeInt8, unsafe.Sizeof(zero), nil
	case int16:
		return ElementTypeInt16, unsafe.Sizeof(zero), nil
	case int32:
		return ElementTypeInt32, unsafe.Sizeof(zero), nil
	case int64:
		return ElementTypeInt64, unsafe.Sizeof(zero), nil
	case uint8:
		return ElementTypeUint8, unsafe.Sizeof(zero), nil
	case uint16:
		return ElementTypeUint16, unsafe.Sizeof(zero), nil
	case uint32:
		return ElementTypeUint32, unsafe.Sizeof(zero), nil
	case uint64:
		return ElementTypeUint64, unsafe.Sizeof(zero), nil
	case bool:
		return ElementTypeBool, unsafe.Sizeof(zero), nil
	default:
		return ElementTypeUndefined, 0, fmt.Errorf("unsupported tensor element type %T", zero)
	}
}

func dataByteSize(elementCount int, elementSize uintptr) (uintptr, error) {
	if elementCount < 0 {
		return 0, fmt.Errorf("element count cannot be negative: %d", elementCount)
	}
	if elementCount == 0 {
		return 0, nil
	}
	if elementSize == 0 {
		return 0, fmt.Errorf("element size cannot be zero")
	}

	count := uintptr(elementCount)
	if count > ^uintptr(0)/elementSize {
		return 0, fmt.Errorf("tensor data size overflow: %d elements with element size %d", elementCount, elementSize)
	}

	return count * elementSize, nil
}
