package server

import (
	"github.com/amine-amaach/uaspace/ua"
)

// loadStandardNodes populates the well-known nodes of namespace 0: the
// folder hierarchy under Root, the builtin data type tree, the hierarchical
// reference types and the base object and variable types. Called once from
// NewAddressSpace, before the store is shared.
func (s *AddressSpace) loadStandardNodes() {
	folder := func(id ua.NodeID, name string) *nodeRecord {
		return newObjectRecord(id, ua.QualifiedName{Name: name}, ua.LocalizedText{Text: name})
	}
	s.put(folder(ua.ObjectIDRootFolder, "Root"))
	s.put(folder(ua.ObjectIDObjectsFolder, "Objects"))
	s.put(folder(ua.ObjectIDTypesFolder, "Types"))
	s.put(folder(ua.ObjectIDViewsFolder, "Views"))
	s.put(folder(ua.ObjectIDObjectTypesFolder, "ObjectTypes"))
	s.put(folder(ua.ObjectIDVariableTypesFolder, "VariableTypes"))
	s.put(folder(ua.ObjectIDDataTypesFolder, "DataTypes"))
	s.put(folder(ua.ObjectIDReferenceTypesFolder, "ReferenceTypes"))

	s.organize(ua.ObjectIDRootFolder, ua.ObjectIDObjectsFolder)
	s.organize(ua.ObjectIDRootFolder, ua.ObjectIDTypesFolder)
	s.organize(ua.ObjectIDRootFolder, ua.ObjectIDViewsFolder)
	s.organize(ua.ObjectIDTypesFolder, ua.ObjectIDObjectTypesFolder)
	s.organize(ua.ObjectIDTypesFolder, ua.ObjectIDVariableTypesFolder)
	s.organize(ua.ObjectIDTypesFolder, ua.ObjectIDDataTypesFolder)
	s.organize(ua.ObjectIDTypesFolder, ua.ObjectIDReferenceTypesFolder)

	// Builtin data type tree.
	dataType := func(id ua.NodeID, name string) {
		s.put(newTypeRecord(id, ua.NodeClassDataType, ua.QualifiedName{Name: name}))
	}
	dataType(ua.DataTypeIDBaseDataType, "BaseDataType")
	dataType(ua.DataTypeIDBoolean, "Boolean")
	dataType(ua.DataTypeIDNumber, "Number")
	dataType(ua.DataTypeIDInteger, "Integer")
	dataType(ua.DataTypeIDUInteger, "UInteger")
	dataType(ua.DataTypeIDSByte, "SByte")
	dataType(ua.DataTypeIDByte, "Byte")
	dataType(ua.DataTypeIDInt16, "Int16")
	dataType(ua.DataTypeIDUInt16, "UInt16")
	dataType(ua.DataTypeIDInt32, "Int32")
	dataType(ua.DataTypeIDUInt32, "UInt32")
	dataType(ua.DataTypeIDInt64, "Int64")
	dataType(ua.DataTypeIDUInt64, "UInt64")
	dataType(ua.DataTypeIDFloat, "Float")
	dataType(ua.DataTypeIDDouble, "Double")
	dataType(ua.DataTypeIDString, "String")
	dataType(ua.DataTypeIDDateTime, "DateTime")
	dataType(ua.DataTypeIDGUID, "Guid")
	dataType(ua.DataTypeIDByteString, "ByteString")
	dataType(ua.DataTypeIDNodeID, "NodeId")
	dataType(ua.DataTypeIDStatusCode, "StatusCode")
	dataType(ua.DataTypeIDQualifiedName, "QualifiedName")
	dataType(ua.DataTypeIDLocalizedText, "LocalizedText")
	dataType(ua.DataTypeIDStructure, "Structure")
	dataType(ua.DataTypeIDEnumeration, "Enumeration")

	s.organize(ua.ObjectIDDataTypesFolder, ua.DataTypeIDBaseDataType)
	s.subtype(ua.DataTypeIDBaseDataType, ua.DataTypeIDBoolean)
	s.subtype(ua.DataTypeIDBaseDataType, ua.DataTypeIDNumber)
	s.subtype(ua.DataTypeIDBaseDataType, ua.DataTypeIDString)
	s.subtype(ua.DataTypeIDBaseDataType, ua.DataTypeIDDateTime)
	s.subtype(ua.DataTypeIDBaseDataType, ua.DataTypeIDGUID)
	s.subtype(ua.DataTypeIDBaseDataType, ua.DataTypeIDByteString)
	s.subtype(ua.DataTypeIDBaseDataType, ua.DataTypeIDNodeID)
	s.subtype(ua.DataTypeIDBaseDataType, ua.DataTypeIDStatusCode)
	s.subtype(ua.DataTypeIDBaseDataType, ua.DataTypeIDQualifiedName)
	s.subtype(ua.DataTypeIDBaseDataType, ua.DataTypeIDLocalizedText)
	s.subtype(ua.DataTypeIDBaseDataType, ua.DataTypeIDStructure)
	s.subtype(ua.DataTypeIDBaseDataType, ua.DataTypeIDEnumeration)
	s.subtype(ua.DataTypeIDNumber, ua.DataTypeIDInteger)
	s.subtype(ua.DataTypeIDNumber, ua.DataTypeIDUInteger)
	s.subtype(ua.DataTypeIDNumber, ua.DataTypeIDFloat)
	s.subtype(ua.DataTypeIDNumber, ua.DataTypeIDDouble)
	s.subtype(ua.DataTypeIDInteger, ua.DataTypeIDSByte)
	s.subtype(ua.DataTypeIDInteger, ua.DataTypeIDInt16)
	s.subtype(ua.DataTypeIDInteger, ua.DataTypeIDInt32)
	s.subtype(ua.DataTypeIDInteger, ua.DataTypeIDInt64)
	s.subtype(ua.DataTypeIDUInteger, ua.DataTypeIDByte)
	s.subtype(ua.DataTypeIDUInteger, ua.DataTypeIDUInt16)
	s.subtype(ua.DataTypeIDUInteger, ua.DataTypeIDUInt32)
	s.subtype(ua.DataTypeIDUInteger, ua.DataTypeIDUInt64)

	// Reference types.
	refType := func(id ua.NodeID, name string) {
		s.put(newTypeRecord(id, ua.NodeClassReferenceType, ua.QualifiedName{Name: name}))
	}
	refType(ua.ReferenceTypeIDReferences, "References")
	refType(ua.ReferenceTypeIDNonHierarchical, "NonHierarchicalReferences")
	refType(ua.ReferenceTypeIDHierarchicalReferences, "HierarchicalReferences")
	refType(ua.ReferenceTypeIDHasChild, "HasChild")
	refType(ua.ReferenceTypeIDOrganizes, "Organizes")
	refType(ua.ReferenceTypeIDHasTypeDefinition, "HasTypeDefinition")
	refType(ua.ReferenceTypeIDHasSubtype, "HasSubtype")
	refType(ua.ReferenceTypeIDHasProperty, "HasProperty")
	refType(ua.ReferenceTypeIDHasComponent, "HasComponent")
	refType(ua.ReferenceTypeIDHasOrderedComponent, "HasOrderedComponent")

	s.organize(ua.ObjectIDReferenceTypesFolder, ua.ReferenceTypeIDReferences)
	s.subtype(ua.ReferenceTypeIDReferences, ua.ReferenceTypeIDHierarchicalReferences)
	s.subtype(ua.ReferenceTypeIDReferences, ua.ReferenceTypeIDNonHierarchical)
	s.subtype(ua.ReferenceTypeIDHierarchicalReferences, ua.ReferenceTypeIDHasChild)
	s.subtype(ua.ReferenceTypeIDHierarchicalReferences, ua.ReferenceTypeIDOrganizes)
	s.subtype(ua.ReferenceTypeIDNonHierarchical, ua.ReferenceTypeIDHasTypeDefinition)
	s.subtype(ua.ReferenceTypeIDHasChild, ua.ReferenceTypeIDHasSubtype)
	s.subtype(ua.ReferenceTypeIDHasChild, ua.ReferenceTypeIDHasProperty)
	s.subtype(ua.ReferenceTypeIDHasChild, ua.ReferenceTypeIDHasComponent)
	s.subtype(ua.ReferenceTypeIDHasComponent, ua.ReferenceTypeIDHasOrderedComponent)

	// Base object and variable types.
	s.put(newTypeRecord(ua.ObjectTypeIDBaseObjectType, ua.NodeClassObjectType, ua.QualifiedName{Name: "BaseObjectType"}))
	s.put(newTypeRecord(ua.ObjectTypeIDFolderType, ua.NodeClassObjectType, ua.QualifiedName{Name: "FolderType"}))
	s.organize(ua.ObjectIDObjectTypesFolder, ua.ObjectTypeIDBaseObjectType)
	s.subtype(ua.ObjectTypeIDBaseObjectType, ua.ObjectTypeIDFolderType)

	s.put(newTypeRecord(ua.VariableTypeIDBaseVariableType, ua.NodeClassVariableType, ua.QualifiedName{Name: "BaseVariableType"}))
	s.put(newTypeRecord(ua.VariableTypeIDBaseDataVariableType, ua.NodeClassVariableType, ua.QualifiedName{Name: "BaseDataVariableType"}))
	s.put(newTypeRecord(ua.VariableTypeIDPropertyType, ua.NodeClassVariableType, ua.QualifiedName{Name: "PropertyType"}))
	s.organize(ua.ObjectIDVariableTypesFolder, ua.VariableTypeIDBaseVariableType)
	s.subtype(ua.VariableTypeIDBaseVariableType, ua.VariableTypeIDBaseDataVariableType)
	s.subtype(ua.VariableTypeIDBaseVariableType, ua.VariableTypeIDPropertyType)
}

func (s *AddressSpace) put(rec *nodeRecord) {
	s.nodes[rec.nodeID] = rec
}

func (s *AddressSpace) organize(parentID, childID ua.NodeID) {
	s.link(parentID, childID, ua.ReferenceTypeIDOrganizes)
}

func (s *AddressSpace) subtype(superID, subID ua.NodeID) {
	s.link(superID, subID, ua.ReferenceTypeIDHasSubtype)
}

func (s *AddressSpace) link(sourceID, targetID, referenceTypeID ua.NodeID) {
	source := s.nodes[sourceID]
	target := s.nodes[targetID]
	source.addReference(ua.Reference{ReferenceTypeID: referenceTypeID, TargetID: targetID})
	target.addReference(ua.Reference{ReferenceTypeID: referenceTypeID, IsInverse: true, TargetID: sourceID})
}
