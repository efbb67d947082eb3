package ua

// ValueRank constrains the rank of value that may be stored in the Value
// attribute of a variable or variable type node. Non-negative ranks greater
// than zero mean "exactly that many dimensions".
const (
	ValueRankScalarOrOneDimension = int32(-3)
	ValueRankAny                  = int32(-2)
	ValueRankScalar               = int32(-1)
	ValueRankOneOrMoreDimensions  = int32(0)
	ValueRankOneDimension         = int32(1)
	ValueRankTwoDimensions        = int32(2)
	ValueRankThreeDimensions      = int32(3)
)
