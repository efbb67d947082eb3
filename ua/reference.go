package ua

// Reference links a source node to a target node within one address space.
// IsInverse references point from the target back to the source, e.g. a
// HasComponent reference on the parent has a matching inverse reference on
// the child.
type Reference struct {
	ReferenceTypeID NodeID
	IsInverse       bool
	TargetID        NodeID
}

// NewReference constructs a forward or inverse Reference.
func NewReference(referenceTypeID NodeID, isInverse bool, targetID NodeID) Reference {
	return Reference{referenceTypeID, isInverse, targetID}
}
