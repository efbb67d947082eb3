package ua

import (
	"time"
)

// DataValue holds the value binding of a variable node together with its
// quality and timestamps. Each field is independently optional: the
// corresponding Has flag tracks presence, and an absent field round-trips
// as absent. A successful write through the address space leaves
// HasStatusCode false; the status code is populated only to report an
// out-of-band condition.
type DataValue struct {
	Value             Variant
	StatusCode        StatusCode
	SourceTimestamp   time.Time
	SourcePicoseconds uint16
	ServerTimestamp   time.Time
	ServerPicoseconds uint16

	HasValue             bool
	HasStatusCode        bool
	HasSourceTimestamp   bool
	HasSourcePicoseconds bool
	HasServerTimestamp   bool
	HasServerPicoseconds bool
}

// NewDataValue constructs a DataValue with every field marked present,
// except that HasValue is false when value is the null Variant. Partial
// envelopes are built as struct literals with the wanted Has flags set.
func NewDataValue(value Variant, status StatusCode, sourceTimestamp time.Time, sourcePicoseconds uint16, serverTimestamp time.Time, serverPicoseconds uint16) DataValue {
	return DataValue{
		Value:                value,
		StatusCode:           status,
		SourceTimestamp:      sourceTimestamp,
		SourcePicoseconds:    sourcePicoseconds,
		ServerTimestamp:      serverTimestamp,
		ServerPicoseconds:    serverPicoseconds,
		HasValue:             !value.IsEmpty(),
		HasStatusCode:        true,
		HasSourceTimestamp:   true,
		HasSourcePicoseconds: true,
		HasServerTimestamp:   true,
		HasServerPicoseconds: true,
	}
}

// NilDataValue is the empty envelope. No field is present.
var NilDataValue = DataValue{}
