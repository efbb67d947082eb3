package ua

import (
	"fmt"
)

// StatusCode is the result of an operation on the address space. A non-good
// StatusCode satisfies the error interface, so operations return the code
// directly (possibly wrapped with context) and callers compare with
// errors.Is.
type StatusCode uint32

// IsGood returns true if the StatusCode is good.
func (c StatusCode) IsGood() bool {
	return (uint32(c) & SeverityMask) == SeverityGood
}

// IsBad returns true if the StatusCode is bad.
func (c StatusCode) IsBad() bool {
	return (uint32(c) & SeverityMask) == SeverityBad
}

// IsUncertain returns true if the StatusCode is uncertain.
func (c StatusCode) IsUncertain() bool {
	return (uint32(c) & SeverityMask) == SeverityUncertain
}

// Error implements the error interface.
func (c StatusCode) Error() string {
	if name, ok := statusCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("0x%08X", uint32(c))
}

const (
	// SeverityMask - .
	SeverityMask uint32 = 0xC0000000
	// SeverityGood - .
	SeverityGood uint32 = 0x00000000
	// SeverityUncertain - .
	SeverityUncertain uint32 = 0x40000000
	// SeverityBad - .
	SeverityBad uint32 = 0x80000000
)

const (
	// Good - The operation completed successfully.
	Good StatusCode = 0x00000000
	// UncertainInitialValue - The value is an initial value for a variable
	// that normally receives its value from another variable.
	UncertainInitialValue StatusCode = 0x40920000
	// BadUnexpectedError - An unexpected error occurred.
	BadUnexpectedError StatusCode = 0x80010000
	// BadInvalidArgument - One or more arguments are invalid.
	BadInvalidArgument StatusCode = 0x80AB0000
	// BadNodeIDInvalid - The syntax of the node id is not valid.
	BadNodeIDInvalid StatusCode = 0x80330000
	// BadNodeIDUnknown - The node id refers to a node that does not exist
	// in the address space.
	BadNodeIDUnknown StatusCode = 0x80340000
	// BadNodeIDExists - The requested node id is already used by another node.
	BadNodeIDExists StatusCode = 0x805E0000
	// BadAttributeIDInvalid - The attribute is not supported for the
	// specified node, or the attribute value violates an attribute invariant.
	BadAttributeIDInvalid StatusCode = 0x80350000
	// BadTypeMismatch - The value supplied for the attribute is not of the
	// same type as the attribute's value.
	BadTypeMismatch StatusCode = 0x80740000
	// BadNotSupported - The requested operation is not supported for the
	// node class.
	BadNotSupported StatusCode = 0x803D0000
	// BadNoMatch - The requested relative path cannot be resolved to a
	// target node.
	BadNoMatch StatusCode = 0x806F0000
	// BadNotWritable - The access level does not allow writing to the node.
	BadNotWritable StatusCode = 0x803B0000
	// BadNotReadable - The access level does not allow reading the node.
	BadNotReadable StatusCode = 0x803A0000
)

var statusCodeNames = map[StatusCode]string{
	Good:                  "Good",
	UncertainInitialValue: "UncertainInitialValue",
	BadUnexpectedError:    "BadUnexpectedError",
	BadInvalidArgument:    "BadInvalidArgument",
	BadNodeIDInvalid:      "BadNodeIDInvalid",
	BadNodeIDUnknown:      "BadNodeIDUnknown",
	BadNodeIDExists:       "BadNodeIDExists",
	BadAttributeIDInvalid: "BadAttributeIDInvalid",
	BadTypeMismatch:       "BadTypeMismatch",
	BadNotSupported:       "BadNotSupported",
	BadNoMatch:            "BadNoMatch",
	BadNotWritable:        "BadNotWritable",
	BadNotReadable:        "BadNotReadable",
}
