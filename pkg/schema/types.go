package schema

import "regexp"

// Kind classifies a schema node.
type Kind int

const (
	// KindMap validates a mapping with literal and/or regex-keyed children.
	KindMap Kind = iota
	// KindSequence validates a list whose elements share one element schema.
	KindSequence
	// KindScalar validates a single typed leaf value.
	KindScalar
)

func (k Kind) String() string {
	switch k {
	case KindMap:
		return "map"
	case KindSequence:
		return "seq"
	case KindScalar:
		return "scalar"
	default:
		return "unknown"
	}
}

// ScalarType names the runtime type a scalar node accepts.
type ScalarType string

const (
	ScalarString ScalarType = "str"
	ScalarInt    ScalarType = "int"
	ScalarBool   ScalarType = "bool"
)

// Definition is the raw, declarative form of a schema: a nested map literal
// with "type", "mapping", "sequence", "required", "enum", "tag" and "cases"
// directives. Map children whose key has the form "regex;(<pattern>)" admit
// any field name matching the pattern. Load compiles a Definition into an
// immutable Node tree.
type Definition map[string]any

// Pattern is a compiled regex-keyed child of a map node.
type Pattern struct {
	// Source is the pattern text as written in the definition.
	Source string
	// Regexp matches candidate field names. Anchored on both ends.
	Regexp *regexp.Regexp
	// Node is the schema every matching field validates against.
	Node *Node
}

// Node is one compiled validation rule. Exactly one of Children/Patterns
// (map), Elem (sequence) or Scalar (scalar) is meaningful per Kind.
//
// Patterns are held sorted by Source and tried in that order after literal
// children; the first match wins. Definitions are plain map literals and so
// carry no declaration order, which makes the sorted order the deterministic
// precedence contract.
type Node struct {
	Kind     Kind
	Scalar   ScalarType
	Required bool
	// Enum restricts a string scalar to a fixed set of literal values.
	Enum []string

	Children map[string]*Node
	Patterns []Pattern
	Elem     *Node

	// Tag names a sibling field whose string value selects which entry of
	// Cases this map node validates against. Fields recognized only by an
	// unselected case are skipped, not rejected.
	Tag   string
	Cases map[string]*Node
}

// allowsEnum reports whether enum membership applies to this node.
func (n *Node) allowsEnum() bool {
	return n.Kind == KindScalar && n.Scalar == ScalarString
}

// child returns the schema for a field name, trying literal children first
// and then each pattern in order. ok is false when nothing admits the name.
func (n *Node) child(name string) (node *Node, viaPattern bool, ok bool) {
	if c, found := n.Children[name]; found {
		return c, false, true
	}
	for _, p := range n.Patterns {
		if p.Regexp.MatchString(name) {
			return p.Node, true, true
		}
	}
	return nil, false, false
}
