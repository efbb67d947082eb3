package ua

import (
	"fmt"
	"strconv"
	"strings"
)

// QualifiedName pairs a name and a namespace index.
type QualifiedName struct {
	NamespaceIndex uint16
	Name           string
}

// NewQualifiedName constructs a QualifiedName from a namespace index and a name.
func NewQualifiedName(ns uint16, name string) QualifiedName {
	return QualifiedName{ns, name}
}

// ParseQualifiedName returns a QualifiedName from a string, e.g. ParseQualifiedName("2:Demo")
func ParseQualifiedName(s string) QualifiedName {
	pos := strings.Index(s, ":")
	if pos == -1 {
		return QualifiedName{0, s}
	}
	ns, err := strconv.ParseUint(s[:pos], 10, 16)
	if err != nil {
		return QualifiedName{0, s}
	}
	return QualifiedName{uint16(ns), s[pos+1:]}
}

// ParseBrowsePath returns a slice of QualifiedNames from a string,
// e.g. ParseBrowsePath("0:Types/0:ObjectTypes")
func ParseBrowsePath(s string) []QualifiedName {
	if len(s) == 0 {
		return []QualifiedName{}
	}
	toks := strings.Split(s, "/")
	path := make([]QualifiedName, len(toks))
	for i, tok := range toks {
		path[i] = ParseQualifiedName(tok)
	}
	return path
}

// String returns a string representation, e.g. "2:Demo"
func (a QualifiedName) String() string {
	return fmt.Sprintf("%d:%s", a.NamespaceIndex, a.Name)
}

func (a QualifiedName) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}
