package server_test

import (
	"testing"

	"github.com/amine-amaach/uaspace/server"
	"github.com/amine-amaach/uaspace/ua"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddNamespace(t *testing.T) {
	space := server.NewAddressSpace()
	assert.Equal(t, []string{"http://opcfoundation.org/UA/"}, space.NamespaceURIs())

	nsi := space.AddNamespace("http://github.com/amine-amaach/uaspace")
	assert.Equal(t, uint16(1), nsi)

	// adding the same URI again returns the existing index
	assert.Equal(t, nsi, space.AddNamespace("http://github.com/amine-amaach/uaspace"))
	assert.Len(t, space.NamespaceURIs(), 2)
}

func TestIsSubtype(t *testing.T) {
	space := server.NewAddressSpace()

	assert.True(t, space.IsSubtype(ua.DataTypeIDDouble, ua.DataTypeIDNumber))
	assert.True(t, space.IsSubtype(ua.DataTypeIDInt32, ua.DataTypeIDInteger))
	assert.True(t, space.IsSubtype(ua.DataTypeIDInt32, ua.DataTypeIDNumber))
	assert.True(t, space.IsSubtype(ua.DataTypeIDInt32, ua.DataTypeIDBaseDataType))
	assert.True(t, space.IsSubtype(ua.DataTypeIDUInt64, ua.DataTypeIDUInteger))

	assert.False(t, space.IsSubtype(ua.DataTypeIDDouble, ua.DataTypeIDInteger))
	assert.False(t, space.IsSubtype(ua.DataTypeIDString, ua.DataTypeIDNumber))
	assert.False(t, space.IsSubtype(ua.DataTypeIDNumber, ua.DataTypeIDDouble))
	// a type is not its own subtype
	assert.False(t, space.IsSubtype(ua.DataTypeIDDouble, ua.DataTypeIDDouble))
	// unknown types have no supertypes
	assert.False(t, space.IsSubtype(ua.NodeIDString{NamespaceIndex: 1, ID: "nope"}, ua.DataTypeIDBaseDataType))
}

func TestBrowseStandardHierarchy(t *testing.T) {
	space := server.NewAddressSpace()

	types, err := space.Root().Child(ua.ParseBrowsePath("0:Types"))
	require.NoError(t, err)
	assert.Equal(t, space.Types(), types)

	baseDataType, err := space.Root().Child(ua.ParseBrowsePath("0:Types/0:DataTypes/0:BaseDataType"))
	require.NoError(t, err)
	assert.Equal(t, ua.NodeID(ua.DataTypeIDBaseDataType), baseDataType.NodeID())

	double, err := baseDataType.Child(ua.ParseBrowsePath("0:Number/0:Double"))
	require.NoError(t, err)
	nodeClass, err := double.NodeClass()
	require.NoError(t, err)
	assert.Equal(t, ua.NodeClassDataType, nodeClass)

	// a multi-hop path resolves to the same handle as a direct lookup
	direct, err := space.Node(ua.DataTypeIDDouble)
	require.NoError(t, err)
	assert.Equal(t, direct, double)
}

func TestReadAttribute(t *testing.T) {
	space := server.NewAddressSpace()
	node, err := space.Objects().AddVariable(
		ua.NodeIDString{NamespaceIndex: 1, ID: "attr"},
		ua.QualifiedName{NamespaceIndex: 1, Name: "attr"},
	)
	require.NoError(t, err)

	nodeClass, err := node.ReadAttribute(ua.AttributeIDNodeClass)
	require.NoError(t, err)
	assert.Equal(t, ua.NodeClassVariable, nodeClass)

	browseName, err := node.ReadAttribute(ua.AttributeIDBrowseName)
	require.NoError(t, err)
	assert.Equal(t, ua.QualifiedName{NamespaceIndex: 1, Name: "attr"}, browseName)

	rank, err := node.ReadAttribute(ua.AttributeIDValueRank)
	require.NoError(t, err)
	assert.Equal(t, ua.ValueRankAny, rank)

	_, err = node.ReadAttribute(ua.AttributeIDEventNotifier)
	require.ErrorIs(t, err, ua.BadAttributeIDInvalid)

	// value attributes are invalid on nodes without them
	_, err = space.Root().ReadAttribute(ua.AttributeIDDataType)
	require.ErrorIs(t, err, ua.BadAttributeIDInvalid)
	_, err = space.Root().ReadAttribute(ua.AttributeIDAccessLevel)
	require.ErrorIs(t, err, ua.BadAttributeIDInvalid)
}

func TestVariableAttributesInvalidOnObjects(t *testing.T) {
	space := server.NewAddressSpace()
	root := space.Root()

	_, err := root.DataType()
	assert.ErrorIs(t, err, ua.BadAttributeIDInvalid)
	_, err = root.ValueRank()
	assert.ErrorIs(t, err, ua.BadAttributeIDInvalid)
	_, err = root.ArrayDimensions()
	assert.ErrorIs(t, err, ua.BadAttributeIDInvalid)
	_, err = root.AccessLevel()
	assert.ErrorIs(t, err, ua.BadAttributeIDInvalid)

	assert.ErrorIs(t, root.SetDataType(ua.DataTypeIDDouble), ua.BadAttributeIDInvalid)
	assert.ErrorIs(t, root.SetValueRank(ua.ValueRankScalar), ua.BadAttributeIDInvalid)
	assert.ErrorIs(t, root.SetArrayDimensions(nil), ua.BadAttributeIDInvalid)
	assert.ErrorIs(t, root.SetAccessLevel(ua.AccessLevelsCurrentRead), ua.BadAttributeIDInvalid)
}
