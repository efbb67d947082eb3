package server_test

import (
	"testing"
	"time"

	"github.com/amine-amaach/uaspace/server"
	"github.com/amine-amaach/uaspace/ua"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeConstructor(t *testing.T) {
	space := server.NewAddressSpace()

	_, err := space.Node(ua.DataTypeIDBoolean)
	require.NoError(t, err)

	_, err = space.Node(ua.NodeIDString{NamespaceIndex: 0, ID: "DoesNotExist"})
	require.ErrorIs(t, err, ua.BadNodeIDUnknown)

	_, err = space.Node(nil)
	require.ErrorIs(t, err, ua.BadNodeIDInvalid)
}

func TestNodeAttributes(t *testing.T) {
	space := server.NewAddressSpace()
	node, err := space.Objects().AddVariable(
		ua.NodeIDString{NamespaceIndex: 1, ID: "testAttributes"},
		ua.QualifiedName{NamespaceIndex: 1, Name: "testAttributes"},
	)
	require.NoError(t, err)

	// default attributes
	nodeClass, err := node.NodeClass()
	require.NoError(t, err)
	assert.Equal(t, ua.NodeClassVariable, nodeClass)

	browseName, err := node.BrowseName()
	require.NoError(t, err)
	assert.Equal(t, ua.QualifiedName{NamespaceIndex: 1, Name: "testAttributes"}, browseName)

	displayName, err := node.DisplayName()
	require.NoError(t, err)
	assert.Equal(t, ua.LocalizedText{Text: "testAttributes"}, displayName)

	description, err := node.Description()
	require.NoError(t, err)
	assert.Empty(t, description.Text)
	assert.Empty(t, description.Locale)

	writeMask, err := node.WriteMask()
	require.NoError(t, err)
	assert.Zero(t, writeMask)

	dataType, err := node.DataType()
	require.NoError(t, err)
	assert.Equal(t, ua.NodeID(ua.DataTypeIDBaseDataType), dataType)

	valueRank, err := node.ValueRank()
	require.NoError(t, err)
	assert.Equal(t, ua.ValueRankAny, valueRank)

	dims, err := node.ArrayDimensions()
	require.NoError(t, err)
	assert.Empty(t, dims)

	accessLevel, err := node.AccessLevel()
	require.NoError(t, err)
	assert.Equal(t, ua.AccessLevelsCurrentRead, accessLevel)

	// set new attributes
	require.NoError(t, node.SetDisplayName(ua.NewLocalizedText("newDisplayName", "en-US")))
	require.NoError(t, node.SetDescription(ua.NewLocalizedText("newDescription", "de-DE")))
	require.NoError(t, node.SetWriteMask(11))
	require.NoError(t, node.SetDataType(ua.DataTypeIDSByte))
	require.NoError(t, node.SetValueRank(ua.ValueRankTwoDimensions))
	require.NoError(t, node.SetArrayDimensions([]uint32{3, 2}))
	require.NoError(t, node.SetAccessLevel(ua.AccessLevelsCurrentRead|ua.AccessLevelsCurrentWrite))

	// get new attributes
	displayName, err = node.DisplayName()
	require.NoError(t, err)
	assert.Equal(t, ua.NewLocalizedText("newDisplayName", "en-US"), displayName)

	description, err = node.Description()
	require.NoError(t, err)
	assert.Equal(t, ua.NewLocalizedText("newDescription", "de-DE"), description)

	writeMask, err = node.WriteMask()
	require.NoError(t, err)
	assert.Equal(t, uint32(11), writeMask)

	dataType, err = node.DataType()
	require.NoError(t, err)
	assert.Equal(t, ua.NodeID(ua.DataTypeIDSByte), dataType)

	valueRank, err = node.ValueRank()
	require.NoError(t, err)
	assert.Equal(t, ua.ValueRankTwoDimensions, valueRank)

	dims, err = node.ArrayDimensions()
	require.NoError(t, err)
	assert.Equal(t, []uint32{3, 2}, dims)

	accessLevel, err = node.AccessLevel()
	require.NoError(t, err)
	assert.Equal(t, ua.AccessLevelsCurrentRead|ua.AccessLevelsCurrentWrite, accessLevel)
}

func TestValueRankArrayDimensions(t *testing.T) {
	newTestNode := func(t *testing.T) server.Node {
		t.Helper()
		space := server.NewAddressSpace()
		node, err := space.Objects().AddVariable(
			ua.NodeIDString{NamespaceIndex: 1, ID: "testDimensions"},
			ua.QualifiedName{NamespaceIndex: 1, Name: "testDimensions"},
		)
		require.NoError(t, err)
		return node
	}

	t.Run("unspecified dimension (ValueRank <= 0)", func(t *testing.T) {
		flexibleRanks := map[string]int32{
			"Any":                  ua.ValueRankAny,
			"Scalar":               ua.ValueRankScalar,
			"ScalarOrOneDimension": ua.ValueRankScalarOrOneDimension,
			"OneOrMoreDimensions":  ua.ValueRankOneOrMoreDimensions,
		}
		for name, rank := range flexibleRanks {
			t.Run(name, func(t *testing.T) {
				node := newTestNode(t)
				require.NoError(t, node.SetValueRank(rank))
				assert.NoError(t, node.SetArrayDimensions([]uint32{}))
				assert.ErrorIs(t, node.SetArrayDimensions([]uint32{1}), ua.BadAttributeIDInvalid)
				assert.ErrorIs(t, node.SetArrayDimensions([]uint32{1, 2}), ua.BadAttributeIDInvalid)
				assert.ErrorIs(t, node.SetArrayDimensions([]uint32{1, 2, 3}), ua.BadAttributeIDInvalid)
			})
		}
	})

	fixedRanks := []struct {
		name string
		rank int32
		dims []uint32
	}{
		{"OneDimension", ua.ValueRankOneDimension, []uint32{1}},
		{"TwoDimensions", ua.ValueRankTwoDimensions, []uint32{1, 2}},
		{"ThreeDimensions", ua.ValueRankThreeDimensions, []uint32{1, 2, 3}},
	}
	for _, tc := range fixedRanks {
		t.Run(tc.name, func(t *testing.T) {
			node := newTestNode(t)
			require.NoError(t, node.SetValueRank(tc.rank))
			require.NoError(t, node.SetArrayDimensions(tc.dims))
			for length := 0; length <= 4; length++ {
				if length == len(tc.dims) {
					continue
				}
				err := node.SetArrayDimensions(make([]uint32, length))
				assert.ErrorIs(t, err, ua.BadAttributeIDInvalid)
			}
			// failed writes leave the prior dimensions unchanged
			dims, err := node.ArrayDimensions()
			require.NoError(t, err)
			assert.Equal(t, tc.dims, dims)
		})
	}
}

func TestNodeClassOfDefaultNodes(t *testing.T) {
	space := server.NewAddressSpace()
	for _, node := range []server.Node{
		space.Root(),
		space.Objects(),
		space.Types(),
		space.Views(),
		space.ObjectTypes(),
		space.VariableTypes(),
		space.DataTypes(),
		space.ReferenceTypes(),
	} {
		nodeClass, err := node.NodeClass()
		require.NoError(t, err)
		assert.Equal(t, ua.NodeClassObject, nodeClass)
	}
}

func TestGetChild(t *testing.T) {
	space := server.NewAddressSpace()

	_, err := space.Root().Child(nil)
	require.ErrorIs(t, err, ua.BadNoMatch)

	_, err = space.Root().Child([]ua.QualifiedName{{Name: "Invalid"}})
	require.ErrorIs(t, err, ua.BadNoMatch)

	child, err := space.Root().Child(ua.ParseBrowsePath("0:Types/0:ObjectTypes"))
	require.NoError(t, err)
	assert.Equal(t, space.ObjectTypes(), child)
	assert.True(t, child == space.ObjectTypes())
}

func TestReadWriteNonVariableNodeClass(t *testing.T) {
	space := server.NewAddressSpace()

	_, err := server.ReadScalar[int32](space.Root())
	require.ErrorIs(t, err, ua.BadNotSupported)

	err = server.WriteScalar(space.Root(), int32(0))
	require.ErrorIs(t, err, ua.BadNotSupported)
}

func TestReadWriteDataValue(t *testing.T) {
	space := server.NewAddressSpace()
	node, err := space.Root().AddVariable(
		ua.NodeIDString{NamespaceIndex: 1, ID: "testValue"},
		ua.QualifiedName{NamespaceIndex: 1, Name: "testValue"},
	)
	require.NoError(t, err)

	value, err := ua.NewVariantScalar(int32(11))
	require.NoError(t, err)

	sourceTimestamp := time.Now().UTC()
	valueWrite := ua.DataValue{
		Value:                value,
		HasValue:             true,
		SourceTimestamp:      sourceTimestamp,
		HasSourceTimestamp:   true,
		SourcePicoseconds:    1,
		HasSourcePicoseconds: true,
		StatusCode:           ua.Good,
		HasStatusCode:        true,
	}
	require.NoError(t, node.WriteDataValue(valueWrite))

	valueRead, err := node.ReadDataValue()
	require.NoError(t, err)

	assert.True(t, valueRead.HasValue)
	assert.True(t, valueRead.HasServerTimestamp)
	assert.True(t, valueRead.HasSourceTimestamp)
	assert.True(t, valueRead.HasServerPicoseconds)
	assert.True(t, valueRead.HasSourcePicoseconds)
	assert.False(t, valueRead.HasStatusCode) // doesn't contain an error code on success

	scalar, err := ua.Scalar[int32](valueRead.Value)
	require.NoError(t, err)
	assert.Equal(t, int32(11), scalar)
	assert.Equal(t, sourceTimestamp, valueRead.SourceTimestamp)
	assert.Equal(t, uint16(1), valueRead.SourcePicoseconds)
	assert.False(t, valueRead.ServerTimestamp.IsZero())
}

func TestReadValueNeverWritten(t *testing.T) {
	space := server.NewAddressSpace()
	node, err := space.Root().AddVariable(
		ua.NodeIDString{NamespaceIndex: 1, ID: "testInitial"},
		ua.QualifiedName{NamespaceIndex: 1, Name: "testInitial"},
	)
	require.NoError(t, err)

	dv, err := node.ReadDataValue()
	require.NoError(t, err)
	assert.False(t, dv.HasValue)
	assert.True(t, dv.HasStatusCode)
	assert.Equal(t, ua.UncertainInitialValue, dv.StatusCode)
	assert.True(t, dv.StatusCode.IsUncertain())
}

func TestReadWriteScalar(t *testing.T) {
	space := server.NewAddressSpace()
	node, err := space.Root().AddVariable(
		ua.NodeIDString{NamespaceIndex: 1, ID: "testScalar"},
		ua.QualifiedName{NamespaceIndex: 1, Name: "testScalar"},
	)
	require.NoError(t, err)
	require.NoError(t, node.SetDataType(ua.DataTypeIDFloat))

	// writes with wrong data type
	require.ErrorIs(t, server.WriteScalar(node, false), ua.BadTypeMismatch)
	require.ErrorIs(t, server.WriteScalar(node, int32(0)), ua.BadTypeMismatch)

	// failed writes leave the stored value unchanged
	dv, err := node.ReadDataValue()
	require.NoError(t, err)
	assert.False(t, dv.HasValue)

	// writes with the correct data type
	value := float32(11.11)
	require.NoError(t, server.WriteScalar(node, value))
	read, err := server.ReadScalar[float32](node)
	require.NoError(t, err)
	assert.Equal(t, value, read)

	// reads with the wrong requested type
	_, err = server.ReadScalar[float64](node)
	require.ErrorIs(t, err, ua.BadTypeMismatch)
	_, err = server.ReadArray[float32](node)
	require.ErrorIs(t, err, ua.BadTypeMismatch)
}

func TestReadWriteString(t *testing.T) {
	space := server.NewAddressSpace()
	node, err := space.Root().AddVariable(
		ua.NodeIDString{NamespaceIndex: 1, ID: "testString"},
		ua.QualifiedName{NamespaceIndex: 1, Name: "testString"},
	)
	require.NoError(t, err)
	require.NoError(t, node.SetDataType(ua.DataTypeIDString))

	require.NoError(t, server.WriteScalar(node, "test"))
	read, err := server.ReadScalar[string](node)
	require.NoError(t, err)
	assert.Equal(t, "test", read)
}

func TestReadWriteArray(t *testing.T) {
	space := server.NewAddressSpace()
	node, err := space.Root().AddVariable(
		ua.NodeIDString{NamespaceIndex: 1, ID: "testArray"},
		ua.QualifiedName{NamespaceIndex: 1, Name: "testArray"},
	)
	require.NoError(t, err)
	require.NoError(t, node.SetDataType(ua.DataTypeIDDouble))

	// writes with wrong data type
	require.ErrorIs(t, server.WriteArray(node, []int32{}), ua.BadTypeMismatch)
	require.ErrorIs(t, server.WriteArray(node, []float32{}), ua.BadTypeMismatch)

	// writes with the correct data type
	array := []float64{11.11, 22.22, 33.33}
	require.NoError(t, server.WriteArray(node, array))
	read, err := server.ReadArray[float64](node)
	require.NoError(t, err)
	assert.Equal(t, array, read)
}

func TestWriteSubtypeOfDeclaredDataType(t *testing.T) {
	space := server.NewAddressSpace()
	node, err := space.Root().AddVariable(
		ua.NodeIDString{NamespaceIndex: 1, ID: "testNumber"},
		ua.QualifiedName{NamespaceIndex: 1, Name: "testNumber"},
	)
	require.NoError(t, err)
	require.NoError(t, node.SetDataType(ua.DataTypeIDNumber))

	// Int32 and Double are subtypes of Number, String is not.
	require.NoError(t, server.WriteScalar(node, int32(7)))
	require.NoError(t, server.WriteScalar(node, 7.7))
	require.ErrorIs(t, server.WriteScalar(node, "7"), ua.BadTypeMismatch)
}

func TestWriteShapeVersusValueRank(t *testing.T) {
	space := server.NewAddressSpace()
	node, err := space.Root().AddVariable(
		ua.NodeIDString{NamespaceIndex: 1, ID: "testShape"},
		ua.QualifiedName{NamespaceIndex: 1, Name: "testShape"},
	)
	require.NoError(t, err)
	require.NoError(t, node.SetDataType(ua.DataTypeIDDouble))

	require.NoError(t, node.SetValueRank(ua.ValueRankScalar))
	require.NoError(t, server.WriteScalar(node, 1.0))
	require.ErrorIs(t, server.WriteArray(node, []float64{1, 2}), ua.BadTypeMismatch)

	// the failed array write left the scalar in place
	read, err := server.ReadScalar[float64](node)
	require.NoError(t, err)
	assert.Equal(t, 1.0, read)

	require.NoError(t, node.SetValueRank(ua.ValueRankOneDimension))
	require.ErrorIs(t, server.WriteScalar(node, 2.0), ua.BadTypeMismatch)
	require.NoError(t, server.WriteArray(node, []float64{1, 2}))
}

func TestAddNodeExistingNodeID(t *testing.T) {
	space := server.NewAddressSpace()
	id := ua.NodeIDString{NamespaceIndex: 1, ID: "duplicate"}

	_, err := space.Objects().AddObject(id, ua.QualifiedName{NamespaceIndex: 1, Name: "first"})
	require.NoError(t, err)

	_, err = space.Objects().AddObject(id, ua.QualifiedName{NamespaceIndex: 1, Name: "second"})
	require.ErrorIs(t, err, ua.BadNodeIDExists)

	_, err = space.Objects().AddVariable(id, ua.QualifiedName{NamespaceIndex: 1, Name: "second"})
	require.ErrorIs(t, err, ua.BadNodeIDExists)
}

func TestRemoveNode(t *testing.T) {
	space := server.NewAddressSpace()
	id := ua.NodeIDString{NamespaceIndex: 1, ID: "testObj"}

	node, err := space.Objects().AddObject(id, ua.QualifiedName{NamespaceIndex: 1, Name: "obj"})
	require.NoError(t, err)
	child, err := node.AddVariable(
		ua.NodeIDString{NamespaceIndex: 1, ID: "testObj.child"},
		ua.QualifiedName{NamespaceIndex: 1, Name: "child"},
	)
	require.NoError(t, err)

	_, err = space.Node(id)
	require.NoError(t, err)

	require.NoError(t, node.Remove())

	_, err = space.Node(id)
	require.ErrorIs(t, err, ua.BadNodeIDUnknown)

	// the subtree is gone as well, and stale handles fail on access
	_, err = space.Node(child.NodeID())
	require.ErrorIs(t, err, ua.BadNodeIDUnknown)
	_, err = child.BrowseName()
	require.ErrorIs(t, err, ua.BadNodeIDUnknown)
	_, err = node.NodeClass()
	require.ErrorIs(t, err, ua.BadNodeIDUnknown)

	// the parent no longer references the removed child
	_, err = space.Objects().Child([]ua.QualifiedName{{NamespaceIndex: 1, Name: "obj"}})
	require.ErrorIs(t, err, ua.BadNoMatch)
}

func TestNodeEquality(t *testing.T) {
	space := server.NewAddressSpace()
	assert.True(t, space.Root() == space.Root())
	assert.True(t, space.Root() != space.Objects())

	other := server.NewAddressSpace()
	assert.True(t, space.Root() != other.Root())
}
