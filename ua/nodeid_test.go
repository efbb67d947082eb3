package ua

import (
	"sort"
	"testing"

	uuid "github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNodeID(t *testing.T) {
	cases := []struct {
		s    string
		want NodeID
	}{
		{"i=85", NodeIDNumeric{0, 85}},
		{"ns=2;i=42", NodeIDNumeric{2, 42}},
		{"s=Demo", NodeIDString{0, "Demo"}},
		{"ns=2;s=Demo.Static.Scalar.Float", NodeIDString{2, "Demo.Static.Scalar.Float"}},
		{"ns=2;g=5ce9dbce-5d79-434c-9ac3-1cfba9a6e92c", NodeIDGUID{2, uuid.MustParse("5ce9dbce-5d79-434c-9ac3-1cfba9a6e92c")}},
		{"ns=2;b=YWJjZA==", NodeIDOpaque{2, ByteString("abcd")}},
	}
	for _, tc := range cases {
		t.Run(tc.s, func(t *testing.T) {
			got := ParseNodeID(tc.s)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestParseNodeIDMalformed(t *testing.T) {
	for _, s := range []string{
		"",
		"i=0",
		"i=abc",
		"x=1",
		"ns=2",
		"ns=abc;i=1",
		"ns=2;g=not-a-guid",
		"ns=2;b=%%%",
	} {
		assert.Nil(t, ParseNodeID(s), "input %q", s)
	}
}

func TestNodeIDString(t *testing.T) {
	assert.Equal(t, "i=85", NodeIDNumeric{0, 85}.String())
	assert.Equal(t, "ns=2;i=42", NodeIDNumeric{2, 42}.String())
	assert.Equal(t, "s=Demo", NodeIDString{0, "Demo"}.String())
	assert.Equal(t, "ns=2;s=Demo", NodeIDString{2, "Demo"}.String())
	assert.Equal(t, "ns=2;b=YWJjZA==", NodeIDOpaque{2, ByteString("abcd")}.String())
}

func TestNodeIDEquality(t *testing.T) {
	// NodeIDs are comparable and usable as map keys.
	nodes := map[NodeID]string{
		NodeIDNumeric{0, 85}:    "root",
		NodeIDString{2, "Demo"}: "demo",
	}
	assert.Equal(t, "root", nodes[NewNodeIDNumeric(0, 85)])
	assert.Equal(t, "demo", nodes[NewNodeIDString(2, "Demo")])

	assert.Equal(t, NodeID(NodeIDNumeric{0, 85}), NodeID(NewNodeIDNumeric(0, 85)))
	assert.NotEqual(t, NodeID(NodeIDNumeric{0, 85}), NodeID(NodeIDNumeric{1, 85}))
	assert.NotEqual(t, NodeID(NodeIDNumeric{0, 85}), NodeID(NodeIDString{0, "85"}))
}

func TestCompareNodeIDs(t *testing.T) {
	// namespace index first, then identifier kind, then identifier value
	ordered := []NodeID{
		NodeIDNumeric{0, 1},
		NodeIDNumeric{0, 85},
		NodeIDString{0, "a"},
		NodeIDString{0, "b"},
		NodeIDOpaque{0, ByteString("ab")},
		NodeIDNumeric{1, 3},
		NodeIDString{2, "Demo"},
	}
	shuffled := []NodeID{
		ordered[4], ordered[6], ordered[0], ordered[3], ordered[5], ordered[1], ordered[2],
	}
	sort.Slice(shuffled, func(i, j int) bool {
		return CompareNodeIDs(shuffled[i], shuffled[j]) < 0
	})
	require.Equal(t, ordered, shuffled)

	assert.Zero(t, CompareNodeIDs(NodeIDNumeric{0, 85}, NodeIDNumeric{0, 85}))
	assert.Equal(t, -1, CompareNodeIDs(NodeIDNumeric{0, 85}, NodeIDString{0, "85"}))
	assert.Equal(t, 1, CompareNodeIDs(NodeIDString{0, "85"}, NodeIDNumeric{0, 85}))
}
