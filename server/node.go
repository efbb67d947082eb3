package server

import (
	"github.com/amine-amaach/uaspace/ua"
	"github.com/pkg/errors"
)

// Node is a handle to one entry of an AddressSpace. A handle carries only
// the NodeID and a reference to the store; every access re-derives the
// current state from the store, so a handle held across a Remove simply
// starts failing with BadNodeIDUnknown instead of going stale.
//
// Two handles are equal (==) iff they point at the same store and the same
// NodeID, regardless of attribute state.
type Node struct {
	space *AddressSpace
	id    ua.NodeID
}

// NodeID returns the NodeID the handle points at.
func (n Node) NodeID() ua.NodeID {
	return n.id
}

// AddressSpace returns the backing store of the handle.
func (n Node) AddressSpace() *AddressSpace {
	return n.space
}

// read runs fn on the current record under the store's read lock.
func (n Node) read(fn func(rec *nodeRecord) error) error {
	n.space.RLock()
	defer n.space.RUnlock()
	rec, ok := n.space.nodes[n.id]
	if !ok {
		return ua.BadNodeIDUnknown
	}
	return fn(rec)
}

// modify runs fn on the current record under the store's write lock. The
// record is updated in place only if fn succeeds, so a failed validation
// leaves the prior state untouched.
func (n Node) modify(fn func(rec *nodeRecord) error) error {
	n.space.Lock()
	defer n.space.Unlock()
	rec, ok := n.space.nodes[n.id]
	if !ok {
		return ua.BadNodeIDUnknown
	}
	return fn(rec)
}

// NodeClass returns the NodeClass attribute.
func (n Node) NodeClass() (ua.NodeClass, error) {
	var nodeClass ua.NodeClass
	err := n.read(func(rec *nodeRecord) error {
		nodeClass = rec.nodeClass
		return nil
	})
	return nodeClass, err
}

// BrowseName returns the BrowseName attribute. The browse name is assigned
// at creation and immutable thereafter.
func (n Node) BrowseName() (ua.QualifiedName, error) {
	var name ua.QualifiedName
	err := n.read(func(rec *nodeRecord) error {
		name = rec.browseName
		return nil
	})
	return name, err
}

// DisplayName returns the DisplayName attribute.
func (n Node) DisplayName() (ua.LocalizedText, error) {
	var name ua.LocalizedText
	err := n.read(func(rec *nodeRecord) error {
		name = rec.displayName
		return nil
	})
	return name, err
}

// SetDisplayName sets the DisplayName attribute.
func (n Node) SetDisplayName(name ua.LocalizedText) error {
	return n.modify(func(rec *nodeRecord) error {
		rec.displayName = name
		return nil
	})
}

// Description returns the Description attribute.
func (n Node) Description() (ua.LocalizedText, error) {
	var desc ua.LocalizedText
	err := n.read(func(rec *nodeRecord) error {
		desc = rec.description
		return nil
	})
	return desc, err
}

// SetDescription sets the Description attribute.
func (n Node) SetDescription(desc ua.LocalizedText) error {
	return n.modify(func(rec *nodeRecord) error {
		rec.description = desc
		return nil
	})
}

// WriteMask returns the WriteMask attribute.
func (n Node) WriteMask() (uint32, error) {
	var mask uint32
	err := n.read(func(rec *nodeRecord) error {
		mask = rec.writeMask
		return nil
	})
	return mask, err
}

// SetWriteMask sets the WriteMask attribute.
func (n Node) SetWriteMask(mask uint32) error {
	return n.modify(func(rec *nodeRecord) error {
		rec.writeMask = mask
		return nil
	})
}

// AccessLevel returns the AccessLevel attribute of a variable node.
func (n Node) AccessLevel() (byte, error) {
	var level byte
	err := n.read(func(rec *nodeRecord) error {
		if !rec.nodeClass.HasValueAttribute() {
			return ua.BadAttributeIDInvalid
		}
		level = rec.accessLevel
		return nil
	})
	return level, err
}

// SetAccessLevel sets the AccessLevel attribute of a variable node.
func (n Node) SetAccessLevel(level byte) error {
	return n.modify(func(rec *nodeRecord) error {
		if !rec.nodeClass.HasValueAttribute() {
			return ua.BadAttributeIDInvalid
		}
		rec.accessLevel = level
		return nil
	})
}

// DataType returns the DataType attribute of a variable node.
func (n Node) DataType() (ua.NodeID, error) {
	var dataType ua.NodeID
	err := n.read(func(rec *nodeRecord) error {
		if !rec.nodeClass.HasValueAttribute() {
			return ua.BadAttributeIDInvalid
		}
		dataType = rec.dataType
		return nil
	})
	return dataType, err
}

// SetDataType sets the DataType attribute of a variable node. The stored
// value is not revalidated against the new type here; the check happens at
// the next value read or write.
func (n Node) SetDataType(dataType ua.NodeID) error {
	if dataType == nil {
		return ua.BadNodeIDInvalid
	}
	return n.modify(func(rec *nodeRecord) error {
		if !rec.nodeClass.HasValueAttribute() {
			return ua.BadAttributeIDInvalid
		}
		rec.dataType = dataType
		return nil
	})
}

// ValueRank returns the ValueRank attribute of a variable node.
func (n Node) ValueRank() (int32, error) {
	var rank int32
	err := n.read(func(rec *nodeRecord) error {
		if !rec.nodeClass.HasValueAttribute() {
			return ua.BadAttributeIDInvalid
		}
		rank = rec.valueRank
		return nil
	})
	return rank, err
}

// SetValueRank sets the ValueRank attribute of a variable node. The new
// rank must be consistent with the stored array dimensions: empty
// dimensions are compatible with any rank, non-empty dimensions only with
// the fixed rank equal to their length. An inconsistent rank fails with
// BadAttributeIDInvalid and leaves both attributes unchanged.
func (n Node) SetValueRank(rank int32) error {
	return n.modify(func(rec *nodeRecord) error {
		if !rec.nodeClass.HasValueAttribute() {
			return ua.BadAttributeIDInvalid
		}
		if dims := len(rec.arrayDimensions); dims != 0 && int32(dims) != rank {
			return ua.BadAttributeIDInvalid
		}
		rec.valueRank = rank
		return nil
	})
}

// ArrayDimensions returns a copy of the ArrayDimensions attribute of a
// variable node.
func (n Node) ArrayDimensions() ([]uint32, error) {
	var dims []uint32
	err := n.read(func(rec *nodeRecord) error {
		if !rec.nodeClass.HasValueAttribute() {
			return ua.BadAttributeIDInvalid
		}
		dims = make([]uint32, len(rec.arrayDimensions))
		copy(dims, rec.arrayDimensions)
		return nil
	})
	return dims, err
}

// SetArrayDimensions sets the ArrayDimensions attribute of a variable node.
// The dimensions must be consistent with the current value rank: a rank of
// zero or below requires empty dimensions, a fixed rank N requires exactly
// N dimensions. An inconsistent sequence fails with BadAttributeIDInvalid
// and leaves the prior dimensions unchanged. A dimension of 0 means
// unbounded in that dimension.
func (n Node) SetArrayDimensions(dims []uint32) error {
	return n.modify(func(rec *nodeRecord) error {
		if !rec.nodeClass.HasValueAttribute() {
			return ua.BadAttributeIDInvalid
		}
		required := 0
		if rec.valueRank >= ua.ValueRankOneDimension {
			required = int(rec.valueRank)
		}
		if len(dims) != required {
			return ua.BadAttributeIDInvalid
		}
		rec.arrayDimensions = make([]uint32, len(dims))
		copy(rec.arrayDimensions, dims)
		return nil
	})
}

// ReadAttribute returns the attribute selected by attributeID, or
// BadAttributeIDInvalid if the node does not carry it.
func (n Node) ReadAttribute(attributeID uint32) (any, error) {
	switch attributeID {
	case ua.AttributeIDNodeID:
		return n.id, nil
	case ua.AttributeIDNodeClass:
		return n.NodeClass()
	case ua.AttributeIDBrowseName:
		return n.BrowseName()
	case ua.AttributeIDDisplayName:
		return n.DisplayName()
	case ua.AttributeIDDescription:
		return n.Description()
	case ua.AttributeIDWriteMask:
		return n.WriteMask()
	case ua.AttributeIDValue:
		value, err := n.ReadValue()
		if err != nil {
			return nil, err
		}
		return value, nil
	case ua.AttributeIDDataType:
		return n.DataType()
	case ua.AttributeIDValueRank:
		return n.ValueRank()
	case ua.AttributeIDArrayDimensions:
		return n.ArrayDimensions()
	case ua.AttributeIDAccessLevel:
		return n.AccessLevel()
	default:
		return nil, ua.BadAttributeIDInvalid
	}
}

// Child resolves the node at the given relative path, walking one browse
// name per hop along forward hierarchical references. An empty path or a
// hop without a matching child fails with BadNoMatch; there is no partial
// result.
func (n Node) Child(path []ua.QualifiedName) (Node, error) {
	n.space.RLock()
	defer n.space.RUnlock()
	rec, ok := n.space.nodes[n.id]
	if !ok {
		return Node{}, ua.BadNodeIDUnknown
	}
	if len(path) == 0 {
		return Node{}, ua.BadNoMatch
	}
	for _, browseName := range path {
		rec, ok = n.space.childByName(rec, browseName)
		if !ok {
			return Node{}, errors.Wrapf(ua.BadNoMatch, "no child with browse name %q", browseName)
		}
	}
	return Node{space: n.space, id: rec.nodeID}, nil
}

// AddObject creates an object node under this node, linked with a
// HasComponent reference. The browse name doubles as the display name.
// Fails with BadNodeIDExists if the requested id is already in use.
func (n Node) AddObject(id ua.NodeID, browseName ua.QualifiedName) (Node, error) {
	return n.addObject(id, browseName, ua.ReferenceTypeIDHasComponent)
}

// AddObjectFolder creates an object node under this node, linked with an
// Organizes reference as folders are.
func (n Node) AddObjectFolder(id ua.NodeID, browseName ua.QualifiedName) (Node, error) {
	return n.addObject(id, browseName, ua.ReferenceTypeIDOrganizes)
}

func (n Node) addObject(id ua.NodeID, browseName ua.QualifiedName, referenceTypeID ua.NodeID) (Node, error) {
	if id == nil {
		return Node{}, ua.BadNodeIDInvalid
	}
	rec := newObjectRecord(id, browseName, ua.LocalizedText{Text: browseName.Name})
	if err := n.space.addChild(n.id, rec, referenceTypeID); err != nil {
		return Node{}, err
	}
	return Node{space: n.space, id: id}, nil
}

// AddVariable creates a variable node under this node, linked with a
// HasComponent reference. The new node starts with the class defaults:
// data type BaseDataType, value rank Any, no array dimensions, current
// read access and an uncertain initial value. Fails with BadNodeIDExists
// if the requested id is already in use.
func (n Node) AddVariable(id ua.NodeID, browseName ua.QualifiedName) (Node, error) {
	if id == nil {
		return Node{}, ua.BadNodeIDInvalid
	}
	rec := newVariableRecord(id, browseName, ua.LocalizedText{Text: browseName.Name})
	if err := n.space.addChild(n.id, rec, ua.ReferenceTypeIDHasComponent); err != nil {
		return Node{}, err
	}
	return Node{space: n.space, id: id}, nil
}

// Remove deletes the node and its subtree from the store. Any outstanding
// handle to a deleted node subsequently fails with BadNodeIDUnknown.
func (n Node) Remove() error {
	return n.space.deleteSubtree(n.id)
}
