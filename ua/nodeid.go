package ua

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	uuid "github.com/google/uuid"
)

// NodeID identifies a node in the address space. A NodeID is one of four
// concrete kinds: NodeIDNumeric, NodeIDString, NodeIDGUID or NodeIDOpaque.
// All kinds are comparable and immutable, so a NodeID can be used directly
// as a map key.
type NodeID interface {
	nodeID()
}

// NodeIDNumeric is a NodeID with a numeric identifier.
type NodeIDNumeric struct {
	NamespaceIndex uint16
	ID             uint32
}

// NewNodeIDNumeric makes a NodeID of numeric type.
func NewNodeIDNumeric(ns uint16, id uint32) NodeIDNumeric {
	return NodeIDNumeric{ns, id}
}

func (n NodeIDNumeric) nodeID() {}

// String returns a string representation, e.g. "i=85"
func (n NodeIDNumeric) String() string {
	if n.NamespaceIndex == 0 {
		return fmt.Sprintf("i=%d", n.ID)
	}
	return fmt.Sprintf("ns=%d;i=%d", n.NamespaceIndex, n.ID)
}

func (n NodeIDNumeric) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// NodeIDString is a NodeID with a string identifier.
type NodeIDString struct {
	NamespaceIndex uint16
	ID             string
}

// NewNodeIDString makes a NodeID of string type.
func NewNodeIDString(ns uint16, id string) NodeIDString {
	return NodeIDString{ns, id}
}

func (n NodeIDString) nodeID() {}

// String returns a string representation, e.g. "ns=2;s=Demo.Static.Scalar.Float"
func (n NodeIDString) String() string {
	if n.NamespaceIndex == 0 {
		return fmt.Sprintf("s=%s", n.ID)
	}
	return fmt.Sprintf("ns=%d;s=%s", n.NamespaceIndex, n.ID)
}

func (n NodeIDString) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// NodeIDGUID is a NodeID with a GUID identifier.
type NodeIDGUID struct {
	NamespaceIndex uint16
	ID             uuid.UUID
}

// NewNodeIDGUID makes a NodeID of GUID type.
func NewNodeIDGUID(ns uint16, id uuid.UUID) NodeIDGUID {
	return NodeIDGUID{ns, id}
}

func (n NodeIDGUID) nodeID() {}

// String returns a string representation, e.g. "ns=2;g=5ce9dbce-5d79-434c-9ac3-1cfba9a6e92c"
func (n NodeIDGUID) String() string {
	if n.NamespaceIndex == 0 {
		return fmt.Sprintf("g=%s", n.ID)
	}
	return fmt.Sprintf("ns=%d;g=%s", n.NamespaceIndex, n.ID)
}

func (n NodeIDGUID) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// NodeIDOpaque is a NodeID with an opaque (byte string) identifier.
type NodeIDOpaque struct {
	NamespaceIndex uint16
	ID             ByteString
}

// NewNodeIDOpaque makes a NodeID of opaque type.
func NewNodeIDOpaque(ns uint16, id ByteString) NodeIDOpaque {
	return NodeIDOpaque{ns, id}
}

func (n NodeIDOpaque) nodeID() {}

// String returns a string representation, e.g. "ns=2;b=YWJjZA=="
func (n NodeIDOpaque) String() string {
	if n.NamespaceIndex == 0 {
		return fmt.Sprintf("b=%s", base64.StdEncoding.EncodeToString([]byte(n.ID)))
	}
	return fmt.Sprintf("ns=%d;b=%s", n.NamespaceIndex, base64.StdEncoding.EncodeToString([]byte(n.ID)))
}

func (n NodeIDOpaque) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// ParseNodeID returns a NodeID from a string representation, or nil if the
// string is malformed.
//   - ParseNodeID("i=85") // numeric, assumes ns=0
//   - ParseNodeID("ns=2;s=Demo.Static.Scalar.Float") // string
//   - ParseNodeID("ns=2;g=5ce9dbce-5d79-434c-9ac3-1cfba9a6e92c") // guid
//   - ParseNodeID("ns=2;b=YWJjZA==") // opaque byte string
func ParseNodeID(s string) NodeID {
	var ns uint64
	var err error
	if strings.HasPrefix(s, "ns=") {
		pos := strings.Index(s, ";")
		if pos == -1 {
			return nil
		}
		ns, err = strconv.ParseUint(s[3:pos], 10, 16)
		if err != nil {
			return nil
		}
		s = s[pos+1:]
	}
	switch {
	case strings.HasPrefix(s, "i="):
		id, err := strconv.ParseUint(s[2:], 10, 32)
		if err != nil {
			return nil
		}
		if id == 0 && ns == 0 {
			return nil
		}
		return NodeIDNumeric{uint16(ns), uint32(id)}
	case strings.HasPrefix(s, "s="):
		return NodeIDString{uint16(ns), s[2:]}
	case strings.HasPrefix(s, "g="):
		id, err := uuid.Parse(s[2:])
		if err != nil {
			return nil
		}
		return NodeIDGUID{uint16(ns), id}
	case strings.HasPrefix(s, "b="):
		id, err := base64.StdEncoding.DecodeString(s[2:])
		if err != nil {
			return nil
		}
		return NodeIDOpaque{uint16(ns), ByteString(id)}
	}
	return nil
}

// nodeIDKind orders the NodeID kinds: numeric < string < guid < opaque.
func nodeIDKind(n NodeID) int {
	switch n.(type) {
	case NodeIDNumeric:
		return 0
	case NodeIDString:
		return 1
	case NodeIDGUID:
		return 2
	case NodeIDOpaque:
		return 3
	default:
		return 4
	}
}

func nodeIDNamespace(n NodeID) uint16 {
	switch n2 := n.(type) {
	case NodeIDNumeric:
		return n2.NamespaceIndex
	case NodeIDString:
		return n2.NamespaceIndex
	case NodeIDGUID:
		return n2.NamespaceIndex
	case NodeIDOpaque:
		return n2.NamespaceIndex
	default:
		return 0
	}
}

// CompareNodeIDs defines a total order over NodeIDs, suitable for sorted
// containers: by namespace index first, then identifier kind, then
// identifier value. It returns -1, 0 or +1.
func CompareNodeIDs(a, b NodeID) int {
	if c := compareUint64(uint64(nodeIDNamespace(a)), uint64(nodeIDNamespace(b))); c != 0 {
		return c
	}
	if c := compareInt(nodeIDKind(a), nodeIDKind(b)); c != 0 {
		return c
	}
	switch a2 := a.(type) {
	case NodeIDNumeric:
		return compareUint64(uint64(a2.ID), uint64(b.(NodeIDNumeric).ID))
	case NodeIDString:
		return strings.Compare(a2.ID, b.(NodeIDString).ID)
	case NodeIDGUID:
		b2 := b.(NodeIDGUID)
		return bytes.Compare(a2.ID[:], b2.ID[:])
	case NodeIDOpaque:
		return bytes.Compare([]byte(a2.ID), []byte(b.(NodeIDOpaque).ID))
	}
	return 0
}

func compareUint64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
