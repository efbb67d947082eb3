package ua

// WriteMasks set for the WriteMask attribute. Each bit marks one attribute
// as writable by external callers; internal API access is not gated.
const (
	WriteMaskAccessLevel             uint32 = 1 << 0
	WriteMaskArrayDimensions         uint32 = 1 << 1
	WriteMaskBrowseName              uint32 = 1 << 2
	WriteMaskContainsNoLoops         uint32 = 1 << 3
	WriteMaskDataType                uint32 = 1 << 4
	WriteMaskDescription             uint32 = 1 << 5
	WriteMaskDisplayName             uint32 = 1 << 6
	WriteMaskEventNotifier           uint32 = 1 << 7
	WriteMaskExecutable              uint32 = 1 << 8
	WriteMaskHistorizing             uint32 = 1 << 9
	WriteMaskInverseName             uint32 = 1 << 10
	WriteMaskIsAbstract              uint32 = 1 << 11
	WriteMaskMinimumSamplingInterval uint32 = 1 << 12
	WriteMaskNodeClass               uint32 = 1 << 13
	WriteMaskNodeID                  uint32 = 1 << 14
	WriteMaskSymmetric               uint32 = 1 << 15
	WriteMaskUserAccessLevel         uint32 = 1 << 16
	WriteMaskUserExecutable          uint32 = 1 << 17
	WriteMaskUserWriteMask           uint32 = 1 << 18
	WriteMaskValueForVariableType    uint32 = 1 << 19
	WriteMaskValueRank               uint32 = 1 << 20
	WriteMaskWriteMask               uint32 = 1 << 21
)
