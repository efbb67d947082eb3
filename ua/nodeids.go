package ua

// Well-known NodeIDs of namespace 0.
var (
	// Standard folder objects.
	ObjectIDRootFolder           = NodeIDNumeric{0, 84}
	ObjectIDObjectsFolder        = NodeIDNumeric{0, 85}
	ObjectIDTypesFolder          = NodeIDNumeric{0, 86}
	ObjectIDViewsFolder          = NodeIDNumeric{0, 87}
	ObjectIDObjectTypesFolder    = NodeIDNumeric{0, 88}
	ObjectIDVariableTypesFolder  = NodeIDNumeric{0, 89}
	ObjectIDDataTypesFolder      = NodeIDNumeric{0, 90}
	ObjectIDReferenceTypesFolder = NodeIDNumeric{0, 91}

	// Builtin data types.
	DataTypeIDBoolean         = NodeIDNumeric{0, 1}
	DataTypeIDSByte           = NodeIDNumeric{0, 2}
	DataTypeIDByte            = NodeIDNumeric{0, 3}
	DataTypeIDInt16           = NodeIDNumeric{0, 4}
	DataTypeIDUInt16          = NodeIDNumeric{0, 5}
	DataTypeIDInt32           = NodeIDNumeric{0, 6}
	DataTypeIDUInt32          = NodeIDNumeric{0, 7}
	DataTypeIDInt64           = NodeIDNumeric{0, 8}
	DataTypeIDUInt64          = NodeIDNumeric{0, 9}
	DataTypeIDFloat           = NodeIDNumeric{0, 10}
	DataTypeIDDouble          = NodeIDNumeric{0, 11}
	DataTypeIDString          = NodeIDNumeric{0, 12}
	DataTypeIDDateTime        = NodeIDNumeric{0, 13}
	DataTypeIDGUID            = NodeIDNumeric{0, 14}
	DataTypeIDByteString      = NodeIDNumeric{0, 15}
	DataTypeIDXMLElement      = NodeIDNumeric{0, 16}
	DataTypeIDNodeID          = NodeIDNumeric{0, 17}
	DataTypeIDExpandedNodeID  = NodeIDNumeric{0, 18}
	DataTypeIDStatusCode      = NodeIDNumeric{0, 19}
	DataTypeIDQualifiedName   = NodeIDNumeric{0, 20}
	DataTypeIDLocalizedText   = NodeIDNumeric{0, 21}
	DataTypeIDStructure       = NodeIDNumeric{0, 22}
	DataTypeIDDataValue       = NodeIDNumeric{0, 23}
	DataTypeIDBaseDataType    = NodeIDNumeric{0, 24}
	DataTypeIDDiagnosticInfo  = NodeIDNumeric{0, 25}
	DataTypeIDNumber          = NodeIDNumeric{0, 26}
	DataTypeIDInteger         = NodeIDNumeric{0, 27}
	DataTypeIDUInteger        = NodeIDNumeric{0, 28}
	DataTypeIDEnumeration     = NodeIDNumeric{0, 29}

	// Reference types.
	ReferenceTypeIDReferences             = NodeIDNumeric{0, 31}
	ReferenceTypeIDNonHierarchical        = NodeIDNumeric{0, 32}
	ReferenceTypeIDHierarchicalReferences = NodeIDNumeric{0, 33}
	ReferenceTypeIDHasChild               = NodeIDNumeric{0, 34}
	ReferenceTypeIDOrganizes              = NodeIDNumeric{0, 35}
	ReferenceTypeIDHasTypeDefinition      = NodeIDNumeric{0, 40}
	ReferenceTypeIDHasSubtype             = NodeIDNumeric{0, 45}
	ReferenceTypeIDHasProperty            = NodeIDNumeric{0, 46}
	ReferenceTypeIDHasComponent           = NodeIDNumeric{0, 47}
	ReferenceTypeIDHasOrderedComponent    = NodeIDNumeric{0, 49}

	// Object types.
	ObjectTypeIDBaseObjectType = NodeIDNumeric{0, 58}
	ObjectTypeIDFolderType     = NodeIDNumeric{0, 61}

	// Variable types.
	VariableTypeIDBaseVariableType     = NodeIDNumeric{0, 62}
	VariableTypeIDBaseDataVariableType = NodeIDNumeric{0, 63}
	VariableTypeIDPropertyType         = NodeIDNumeric{0, 68}
)
