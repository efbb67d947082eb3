package ua

// NodeClass is the class of a node in the address space. The class is
// assigned when the node is created and never changes.
type NodeClass uint32

// NodeClasses
const (
	NodeClassUnspecified   NodeClass = 0
	NodeClassObject        NodeClass = 1
	NodeClassVariable      NodeClass = 2
	NodeClassMethod        NodeClass = 4
	NodeClassObjectType    NodeClass = 8
	NodeClassVariableType  NodeClass = 16
	NodeClassReferenceType NodeClass = 32
	NodeClassDataType      NodeClass = 64
	NodeClassView          NodeClass = 128
)

// String returns the name of the node class, e.g. "Variable".
func (c NodeClass) String() string {
	switch c {
	case NodeClassObject:
		return "Object"
	case NodeClassVariable:
		return "Variable"
	case NodeClassMethod:
		return "Method"
	case NodeClassObjectType:
		return "ObjectType"
	case NodeClassVariableType:
		return "VariableType"
	case NodeClassReferenceType:
		return "ReferenceType"
	case NodeClassDataType:
		return "DataType"
	case NodeClassView:
		return "View"
	default:
		return "Unspecified"
	}
}

// HasValueAttribute returns true if nodes of this class carry the Value,
// DataType, ValueRank and ArrayDimensions attributes.
func (c NodeClass) HasValueAttribute() bool {
	return c == NodeClassVariable || c == NodeClassVariableType
}
