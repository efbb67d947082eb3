package ua

import (
	"time"

	uuid "github.com/google/uuid"
)

// VariantTypes
const (
	VariantTypeNull byte = iota
	VariantTypeBoolean
	VariantTypeSByte
	VariantTypeByte
	VariantTypeInt16
	VariantTypeUInt16
	VariantTypeInt32
	VariantTypeUInt32
	VariantTypeInt64
	VariantTypeUInt64
	VariantTypeFloat
	VariantTypeDouble
	VariantTypeString
	VariantTypeDateTime
	VariantTypeGUID
	VariantTypeByteString
	VariantTypeNodeID
	VariantTypeStatusCode
	VariantTypeQualifiedName
	VariantTypeLocalizedText
)

/*
Variant stores a single value or a slice of one of the builtin types:

	bool, int8, uint8, int16, uint16, int32, uint32,
	int64, uint64, float32, float64, string,
	time.Time, uuid.UUID, ByteString,
	NodeID, StatusCode, QualifiedName, LocalizedText

The stored value is tagged with its variant type and shape. Accessors
require an exact match of both: there is no numeric widening or coercion.
Slices are copied on the way in and on the way out, so a Variant payload is
always independent of its source.
*/
type Variant struct {
	variantType byte
	isArray     bool
	arrayLength int
	value       any
}

// NilVariant is the null Variant. It has no type and holds no value.
var NilVariant = Variant{}

// NewVariantScalar stores a copy of value tagged with its builtin variant
// type. It returns BadInvalidArgument if the Go type of value is not one of
// the builtin types.
func NewVariantScalar(value any) (Variant, error) {
	vt := variantTypeOf(value)
	if vt == VariantTypeNull {
		return NilVariant, BadInvalidArgument
	}
	return Variant{variantType: vt, value: value}, nil
}

// NewVariantArray stores a copy of the slice values tagged with its builtin
// variant type. It returns BadInvalidArgument if values is not a slice of
// one of the builtin types.
func NewVariantArray(values any) (Variant, error) {
	switch a := values.(type) {
	case []bool:
		return newArrayVariant(VariantTypeBoolean, a), nil
	case []int8:
		return newArrayVariant(VariantTypeSByte, a), nil
	case []uint8:
		return newArrayVariant(VariantTypeByte, a), nil
	case []int16:
		return newArrayVariant(VariantTypeInt16, a), nil
	case []uint16:
		return newArrayVariant(VariantTypeUInt16, a), nil
	case []int32:
		return newArrayVariant(VariantTypeInt32, a), nil
	case []uint32:
		return newArrayVariant(VariantTypeUInt32, a), nil
	case []int64:
		return newArrayVariant(VariantTypeInt64, a), nil
	case []uint64:
		return newArrayVariant(VariantTypeUInt64, a), nil
	case []float32:
		return newArrayVariant(VariantTypeFloat, a), nil
	case []float64:
		return newArrayVariant(VariantTypeDouble, a), nil
	case []string:
		return newArrayVariant(VariantTypeString, a), nil
	case []time.Time:
		return newArrayVariant(VariantTypeDateTime, a), nil
	case []uuid.UUID:
		return newArrayVariant(VariantTypeGUID, a), nil
	case []ByteString:
		return newArrayVariant(VariantTypeByteString, a), nil
	case []NodeID:
		return newArrayVariant(VariantTypeNodeID, a), nil
	case []StatusCode:
		return newArrayVariant(VariantTypeStatusCode, a), nil
	case []QualifiedName:
		return newArrayVariant(VariantTypeQualifiedName, a), nil
	case []LocalizedText:
		return newArrayVariant(VariantTypeLocalizedText, a), nil
	default:
		return NilVariant, BadInvalidArgument
	}
}

func newArrayVariant[T any](vt byte, src []T) Variant {
	dst := make([]T, len(src))
	copy(dst, src)
	return Variant{variantType: vt, isArray: true, arrayLength: len(dst), value: dst}
}

// Type returns the variant type tag of the stored value, or VariantTypeNull
// for the null Variant.
func (v Variant) Type() byte {
	return v.variantType
}

// IsArray returns true if the Variant stores a slice.
func (v Variant) IsArray() bool {
	return v.isArray
}

// IsEmpty returns true if no value is stored.
func (v Variant) IsEmpty() bool {
	return v.variantType == VariantTypeNull
}

// Len returns the number of stored elements, or 0 for a scalar or null
// Variant.
func (v Variant) Len() int {
	return v.arrayLength
}

// Scalar returns the scalar stored in the Variant. The stored variant type
// and shape must exactly match T, otherwise BadTypeMismatch is returned.
func Scalar[T any](v Variant) (T, error) {
	var zero T
	if v.IsEmpty() || v.isArray {
		return zero, BadTypeMismatch
	}
	value, ok := v.value.(T)
	if !ok {
		return zero, BadTypeMismatch
	}
	return value, nil
}

// Array returns a copy of the slice stored in the Variant. The stored
// variant type and shape must exactly match T, otherwise BadTypeMismatch is
// returned.
func Array[T any](v Variant) ([]T, error) {
	if v.IsEmpty() || !v.isArray {
		return nil, BadTypeMismatch
	}
	src, ok := v.value.([]T)
	if !ok {
		return nil, BadTypeMismatch
	}
	dst := make([]T, len(src))
	copy(dst, src)
	return dst, nil
}

// variantTypeOf maps a scalar of a builtin Go type to its variant type tag.
// It returns VariantTypeNull for any other type.
func variantTypeOf(value any) byte {
	switch value.(type) {
	case bool:
		return VariantTypeBoolean
	case int8:
		return VariantTypeSByte
	case uint8:
		return VariantTypeByte
	case int16:
		return VariantTypeInt16
	case uint16:
		return VariantTypeUInt16
	case int32:
		return VariantTypeInt32
	case uint32:
		return VariantTypeUInt32
	case int64:
		return VariantTypeInt64
	case uint64:
		return VariantTypeUInt64
	case float32:
		return VariantTypeFloat
	case float64:
		return VariantTypeDouble
	case string:
		return VariantTypeString
	case time.Time:
		return VariantTypeDateTime
	case uuid.UUID:
		return VariantTypeGUID
	case ByteString:
		return VariantTypeByteString
	case NodeIDNumeric, NodeIDString, NodeIDGUID, NodeIDOpaque:
		return VariantTypeNodeID
	case StatusCode:
		return VariantTypeStatusCode
	case QualifiedName:
		return VariantTypeQualifiedName
	case LocalizedText:
		return VariantTypeLocalizedText
	default:
		return VariantTypeNull
	}
}
