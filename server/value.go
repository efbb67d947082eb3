package server

import (
	"time"

	"github.com/amine-amaach/uaspace/ua"
)

// ReadDataValue returns the current value envelope of a variable node,
// including its timestamps and status flags. A variable that has never
// been written reads back value-absent with an uncertain initial status.
// Fails with BadNotSupported if the node class has no Value attribute.
func (n Node) ReadDataValue() (ua.DataValue, error) {
	return n.space.getValue(n.id)
}

// WriteDataValue validates and commits a value envelope. The value, when
// present, must match the node's declared data type (exactly or as a
// registered subtype) and its shape must agree with the value rank;
// otherwise the write fails with BadTypeMismatch and the stored value is
// unchanged. Caller-supplied source timestamp fields pass through
// verbatim; server-side fields are populated by the store, and the status
// flag is cleared on success.
func (n Node) WriteDataValue(value ua.DataValue) error {
	return n.space.setValue(n.id, value)
}

// ReadValue returns the current value of a variable node.
func (n Node) ReadValue() (ua.Variant, error) {
	dv, err := n.ReadDataValue()
	if err != nil {
		return ua.NilVariant, err
	}
	return dv.Value, nil
}

// WriteValue wraps value in an envelope with the source timestamp set to
// now and commits it, with the same validation as WriteDataValue.
func (n Node) WriteValue(value ua.Variant) error {
	return n.WriteDataValue(ua.DataValue{
		Value:                value,
		HasValue:             !value.IsEmpty(),
		SourceTimestamp:      time.Now().UTC(),
		HasSourceTimestamp:   true,
		HasSourcePicoseconds: true,
	})
}

// ReadScalar reads the current scalar value of a variable node. The stored
// variant must hold a scalar of exactly T, otherwise the read fails with
// BadTypeMismatch.
func ReadScalar[T any](n Node) (T, error) {
	var zero T
	value, err := n.ReadValue()
	if err != nil {
		return zero, err
	}
	return ua.Scalar[T](value)
}

// ReadArray reads the current array value of a variable node. The stored
// variant must hold a slice of exactly T, otherwise the read fails with
// BadTypeMismatch.
func ReadArray[T any](n Node) ([]T, error) {
	value, err := n.ReadValue()
	if err != nil {
		return nil, err
	}
	return ua.Array[T](value)
}

// WriteScalar writes a scalar value to a variable node, with the same
// validation as WriteDataValue.
func WriteScalar[T any](n Node, value T) error {
	variant, err := ua.NewVariantScalar(value)
	if err != nil {
		return err
	}
	return n.WriteValue(variant)
}

// WriteArray writes an array value to a variable node, with the same
// validation as WriteDataValue.
func WriteArray[T any](n Node, values []T) error {
	variant, err := ua.NewVariantArray(values)
	if err != nil {
		return err
	}
	return n.WriteValue(variant)
}
