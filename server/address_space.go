package server

import (
	"sync"
	"time"

	"github.com/amine-amaach/uaspace/ua"
	"github.com/gammazero/deque"
)

// hierarchicalRefTypes are the reference types followed when browsing
// children by browse name and when deleting a subtree.
var hierarchicalRefTypes = []ua.NodeID{
	ua.ReferenceTypeIDOrganizes,
	ua.ReferenceTypeIDHasComponent,
	ua.ReferenceTypeIDHasProperty,
	ua.ReferenceTypeIDHasOrderedComponent,
	ua.ReferenceTypeIDHasSubtype,
}

// builtinDataTypeIDs maps a variant type tag to the NodeID of the builtin
// data type node it corresponds to.
var builtinDataTypeIDs = map[byte]ua.NodeID{
	ua.VariantTypeBoolean:       ua.DataTypeIDBoolean,
	ua.VariantTypeSByte:         ua.DataTypeIDSByte,
	ua.VariantTypeByte:          ua.DataTypeIDByte,
	ua.VariantTypeInt16:         ua.DataTypeIDInt16,
	ua.VariantTypeUInt16:        ua.DataTypeIDUInt16,
	ua.VariantTypeInt32:         ua.DataTypeIDInt32,
	ua.VariantTypeUInt32:        ua.DataTypeIDUInt32,
	ua.VariantTypeInt64:         ua.DataTypeIDInt64,
	ua.VariantTypeUInt64:        ua.DataTypeIDUInt64,
	ua.VariantTypeFloat:         ua.DataTypeIDFloat,
	ua.VariantTypeDouble:        ua.DataTypeIDDouble,
	ua.VariantTypeString:        ua.DataTypeIDString,
	ua.VariantTypeDateTime:      ua.DataTypeIDDateTime,
	ua.VariantTypeGUID:          ua.DataTypeIDGUID,
	ua.VariantTypeByteString:    ua.DataTypeIDByteString,
	ua.VariantTypeNodeID:        ua.DataTypeIDNodeID,
	ua.VariantTypeStatusCode:    ua.DataTypeIDStatusCode,
	ua.VariantTypeQualifiedName: ua.DataTypeIDQualifiedName,
	ua.VariantTypeLocalizedText: ua.DataTypeIDLocalizedText,
}

// AddressSpace is the backing store of the node graph. It owns the
// canonical record of every node and the namespace table, and serializes
// conflicting mutations: attribute invariants and value type checks are
// evaluated under the store lock, atomically with the commit.
type AddressSpace struct {
	sync.RWMutex
	namespaces []string
	nodes      map[ua.NodeID]*nodeRecord
}

// NewAddressSpace instantiates an AddressSpace preloaded with the standard
// namespace: the well-known folder objects, the builtin data type
// hierarchy, the hierarchical reference types and the base object and
// variable types.
func NewAddressSpace() *AddressSpace {
	s := &AddressSpace{
		namespaces: []string{"http://opcfoundation.org/UA/"},
		nodes:      make(map[ua.NodeID]*nodeRecord, 256),
	}
	s.loadStandardNodes()
	return s
}

// AddNamespace adds a namespace URI to the end of the table and returns its
// index. If the namespace already exists, its index is returned.
func (s *AddressSpace) AddNamespace(nsu string) uint16 {
	s.Lock()
	defer s.Unlock()
	for i, ns := range s.namespaces {
		if ns == nsu {
			return uint16(i)
		}
	}
	s.namespaces = append(s.namespaces, nsu)
	return uint16(len(s.namespaces) - 1)
}

// NamespaceURIs returns a copy of the namespace table.
func (s *AddressSpace) NamespaceURIs() []string {
	s.RLock()
	defer s.RUnlock()
	uris := make([]string, len(s.namespaces))
	copy(uris, s.namespaces)
	return uris
}

// Node returns a handle to the node with the given NodeID, or
// BadNodeIDUnknown if no such node exists.
func (s *AddressSpace) Node(id ua.NodeID) (Node, error) {
	if id == nil {
		return Node{}, ua.BadNodeIDInvalid
	}
	s.RLock()
	defer s.RUnlock()
	if _, ok := s.nodes[id]; !ok {
		return Node{}, ua.BadNodeIDUnknown
	}
	return Node{space: s, id: id}, nil
}

// Root returns a handle to the Root folder.
func (s *AddressSpace) Root() Node { return Node{space: s, id: ua.ObjectIDRootFolder} }

// Objects returns a handle to the Objects folder.
func (s *AddressSpace) Objects() Node { return Node{space: s, id: ua.ObjectIDObjectsFolder} }

// Types returns a handle to the Types folder.
func (s *AddressSpace) Types() Node { return Node{space: s, id: ua.ObjectIDTypesFolder} }

// Views returns a handle to the Views folder.
func (s *AddressSpace) Views() Node { return Node{space: s, id: ua.ObjectIDViewsFolder} }

// ObjectTypes returns a handle to the ObjectTypes folder.
func (s *AddressSpace) ObjectTypes() Node { return Node{space: s, id: ua.ObjectIDObjectTypesFolder} }

// VariableTypes returns a handle to the VariableTypes folder.
func (s *AddressSpace) VariableTypes() Node {
	return Node{space: s, id: ua.ObjectIDVariableTypesFolder}
}

// DataTypes returns a handle to the DataTypes folder.
func (s *AddressSpace) DataTypes() Node { return Node{space: s, id: ua.ObjectIDDataTypesFolder} }

// ReferenceTypes returns a handle to the ReferenceTypes folder.
func (s *AddressSpace) ReferenceTypes() Node {
	return Node{space: s, id: ua.ObjectIDReferenceTypesFolder}
}

// IsSubtype reports whether subtype is derived from supertype, following
// inverse HasSubtype references. A type is not a subtype of itself.
func (s *AddressSpace) IsSubtype(subtype, supertype ua.NodeID) bool {
	s.RLock()
	defer s.RUnlock()
	return s.isSubtype(subtype, supertype)
}

// isSubtype must be called with the lock held.
func (s *AddressSpace) isSubtype(subtype, supertype ua.NodeID) bool {
	id := subtype
	for i := 0; i < 100; i++ {
		rec, ok := s.nodes[id]
		if !ok {
			return false
		}
		super := rec.superTypeID()
		if super == nil {
			return false
		}
		if super == supertype {
			return true
		}
		id = super
	}
	return false
}

// childByName resolves one browse-name hop along the forward hierarchical
// references of rec. Must be called with the lock held.
func (s *AddressSpace) childByName(rec *nodeRecord, browseName ua.QualifiedName) (*nodeRecord, bool) {
	for _, ref := range rec.references {
		if ref.IsInverse || !containsNodeID(hierarchicalRefTypes, ref.ReferenceTypeID) {
			continue
		}
		if target, ok := s.nodes[ref.TargetID]; ok && target.browseName == browseName {
			return target, true
		}
	}
	return nil, false
}

// addChild creates a child record under parentID and links the pair with a
// forward reference of the given type plus the matching inverse reference.
func (s *AddressSpace) addChild(parentID ua.NodeID, child *nodeRecord, referenceTypeID ua.NodeID) error {
	s.Lock()
	defer s.Unlock()
	parent, ok := s.nodes[parentID]
	if !ok {
		return ua.BadNodeIDUnknown
	}
	if _, exists := s.nodes[child.nodeID]; exists {
		return ua.BadNodeIDExists
	}
	s.nodes[child.nodeID] = child
	parent.addReference(ua.Reference{ReferenceTypeID: referenceTypeID, TargetID: child.nodeID})
	child.addReference(ua.Reference{ReferenceTypeID: referenceTypeID, IsInverse: true, TargetID: parentID})
	return nil
}

// deleteSubtree removes the node and every node reachable over forward
// hierarchical references, then unlinks the remaining references to the
// deleted nodes.
func (s *AddressSpace) deleteSubtree(id ua.NodeID) error {
	s.Lock()
	defer s.Unlock()
	if _, ok := s.nodes[id]; !ok {
		return ua.BadNodeIDUnknown
	}
	doomed := make(map[ua.NodeID]bool)
	var queue deque.Deque[ua.NodeID]
	queue.PushBack(id)
	for queue.Len() > 0 {
		next := queue.PopFront()
		if doomed[next] {
			continue
		}
		doomed[next] = true
		rec, ok := s.nodes[next]
		if !ok {
			continue
		}
		for _, ref := range rec.references {
			if !ref.IsInverse && containsNodeID(hierarchicalRefTypes, ref.ReferenceTypeID) {
				queue.PushBack(ref.TargetID)
			}
		}
	}
	for nodeID := range doomed {
		delete(s.nodes, nodeID)
	}
	for _, rec := range s.nodes {
		for nodeID := range doomed {
			rec.removeReferencesTo(nodeID)
		}
	}
	return nil
}

// validateValue checks a proposed value against the declared data type and
// the effective value rank of the record. Must be called with the lock
// held.
func (s *AddressSpace) validateValue(rec *nodeRecord, v ua.Variant) error {
	if v.IsEmpty() {
		return nil
	}
	valueType, ok := builtinDataTypeIDs[v.Type()]
	if !ok {
		return ua.BadTypeMismatch
	}
	if valueType != rec.dataType && !s.isSubtype(valueType, rec.dataType) {
		return ua.BadTypeMismatch
	}
	if v.IsArray() {
		switch {
		case rec.valueRank >= ua.ValueRankOneDimension:
		case rec.valueRank == ua.ValueRankOneOrMoreDimensions:
		case rec.valueRank == ua.ValueRankAny:
		case rec.valueRank == ua.ValueRankScalarOrOneDimension:
		default:
			return ua.BadTypeMismatch
		}
	} else {
		switch rec.valueRank {
		case ua.ValueRankScalar, ua.ValueRankAny, ua.ValueRankScalarOrOneDimension:
		default:
			return ua.BadTypeMismatch
		}
	}
	return nil
}

// setValue validates and commits a value envelope. Caller source fields
// pass through verbatim; the server timestamp is stamped by the store, and
// a successful commit never carries a status code.
func (s *AddressSpace) setValue(id ua.NodeID, value ua.DataValue) error {
	s.Lock()
	defer s.Unlock()
	rec, ok := s.nodes[id]
	if !ok {
		return ua.BadNodeIDUnknown
	}
	if !rec.nodeClass.HasValueAttribute() {
		return ua.BadNotSupported
	}
	if value.HasValue {
		if err := s.validateValue(rec, value.Value); err != nil {
			return err
		}
	}
	value.StatusCode = ua.Good
	value.HasStatusCode = false
	value.ServerTimestamp = time.Now().UTC()
	value.HasServerTimestamp = true
	value.HasServerPicoseconds = true
	rec.value = value
	return nil
}

// getValue returns the current value envelope of a variable node.
func (s *AddressSpace) getValue(id ua.NodeID) (ua.DataValue, error) {
	s.RLock()
	defer s.RUnlock()
	rec, ok := s.nodes[id]
	if !ok {
		return ua.NilDataValue, ua.BadNodeIDUnknown
	}
	if !rec.nodeClass.HasValueAttribute() {
		return ua.NilDataValue, ua.BadNotSupported
	}
	return rec.value, nil
}

func containsNodeID(ids []ua.NodeID, id ua.NodeID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
