package server

import (
	"github.com/amine-amaach/uaspace/ua"
)

// nodeRecord is the canonical attribute record of one node. Records are
// owned by the AddressSpace and only touched while holding its lock; Node
// handles never reference a record directly.
type nodeRecord struct {
	nodeID      ua.NodeID
	nodeClass   ua.NodeClass
	browseName  ua.QualifiedName
	displayName ua.LocalizedText
	description ua.LocalizedText
	writeMask   uint32
	references  []ua.Reference

	// Variable and VariableType only.
	value           ua.DataValue
	dataType        ua.NodeID
	valueRank       int32
	arrayDimensions []uint32
	accessLevel     byte
}

func newObjectRecord(id ua.NodeID, browseName ua.QualifiedName, displayName ua.LocalizedText) *nodeRecord {
	return &nodeRecord{
		nodeID:      id,
		nodeClass:   ua.NodeClassObject,
		browseName:  browseName,
		displayName: displayName,
	}
}

func newVariableRecord(id ua.NodeID, browseName ua.QualifiedName, displayName ua.LocalizedText) *nodeRecord {
	return &nodeRecord{
		nodeID:      id,
		nodeClass:   ua.NodeClassVariable,
		browseName:  browseName,
		displayName: displayName,
		value:       ua.DataValue{StatusCode: ua.UncertainInitialValue, HasStatusCode: true},
		dataType:    ua.DataTypeIDBaseDataType,
		valueRank:   ua.ValueRankAny,
		accessLevel: ua.AccessLevelsCurrentRead,
	}
}

func newTypeRecord(id ua.NodeID, nodeClass ua.NodeClass, browseName ua.QualifiedName) *nodeRecord {
	rec := &nodeRecord{
		nodeID:      id,
		nodeClass:   nodeClass,
		browseName:  browseName,
		displayName: ua.LocalizedText{Text: browseName.Name},
	}
	if nodeClass == ua.NodeClassVariableType {
		rec.value = ua.DataValue{StatusCode: ua.UncertainInitialValue, HasStatusCode: true}
		rec.dataType = ua.DataTypeIDBaseDataType
		rec.valueRank = ua.ValueRankAny
	}
	return rec
}

// addReference appends a reference to the record.
func (r *nodeRecord) addReference(ref ua.Reference) {
	r.references = append(r.references, ref)
}

// removeReferencesTo drops every reference whose target is the given node.
func (r *nodeRecord) removeReferencesTo(target ua.NodeID) {
	refs := r.references[:0]
	for _, ref := range r.references {
		if ref.TargetID != target {
			refs = append(refs, ref)
		}
	}
	r.references = refs
}

// superTypeID returns the target of the inverse HasSubtype reference, or
// nil if the record has none.
func (r *nodeRecord) superTypeID() ua.NodeID {
	for _, ref := range r.references {
		if ref.IsInverse && ref.ReferenceTypeID == ua.ReferenceTypeIDHasSubtype {
			return ref.TargetID
		}
	}
	return nil
}
