package schema

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Registry holds a compiled schema tree. It is built once by Load and never
// mutated afterwards, so it is safe for concurrent use by any number of
// Validate calls.
type Registry struct {
	root *Node
}

// Root returns the top-level node of the compiled schema.
func (r *Registry) Root() *Node {
	return r.root
}

// Load compiles a Definition into a Registry. It returns a *SchemaError when
// the definition names an unknown kind, declares an enum on anything but a
// string scalar, carries a regex key that does not compile, or mixes
// directives that do not belong together.
func Load(def Definition) (*Registry, error) {
	root, err := compile(def, "")
	if err != nil {
		return nil, err
	}
	return &Registry{root: root}, nil
}

// MustLoad is Load for process-lifetime schemas; a malformed definition is a
// startup-fatal condition, so it panics instead of returning the error.
func MustLoad(def Definition) *Registry {
	r, err := Load(def)
	if err != nil {
		panic(err)
	}
	return r
}

const patternPrefix = "regex;("

func compile(def Definition, path string) (*Node, error) {
	kindStr, ok := def["type"].(string)
	if !ok {
		return nil, &SchemaError{Path: path, Reason: `missing or non-string "type"`}
	}

	n := &Node{}
	if req, present := def["required"]; present {
		b, isBool := req.(bool)
		if !isBool {
			return nil, &SchemaError{Path: path, Reason: `"required" must be a bool`}
		}
		n.Required = b
	}

	known := map[string]bool{"type": true, "required": true}

	switch kindStr {
	case "map":
		n.Kind = KindMap
		known["mapping"], known["tag"], known["cases"] = true, true, true
		if err := compileMap(def, n, path); err != nil {
			return nil, err
		}
	case "seq":
		n.Kind = KindSequence
		known["sequence"] = true
		elemDef, found := asDefinition(def["sequence"])
		if !found {
			return nil, &SchemaError{Path: path, Reason: `seq node requires a "sequence" element definition`}
		}
		elem, err := compile(elemDef, joinPath(path, "[]"))
		if err != nil {
			return nil, err
		}
		n.Elem = elem
	case "str", "int", "bool":
		n.Kind = KindScalar
		n.Scalar = ScalarType(kindStr)
		known["enum"] = true
	default:
		return nil, &SchemaError{Path: path, Reason: fmt.Sprintf("unknown kind %q", kindStr)}
	}

	if raw, present := def["enum"]; present {
		values, err := enumValues(raw)
		if err != nil {
			return nil, &SchemaError{Path: path, Reason: err.Error()}
		}
		if !n.allowsEnum() {
			return nil, &SchemaError{Path: path, Reason: fmt.Sprintf("enum is only valid on str scalars, not %s", kindStr)}
		}
		n.Enum = values
	}

	for key := range def {
		if !known[key] {
			return nil, &SchemaError{Path: path, Reason: fmt.Sprintf("unknown directive %q", key)}
		}
	}
	return n, nil
}

func compileMap(def Definition, n *Node, path string) error {
	tag, hasTag := def["tag"].(string)
	_, hasCases := def["cases"]
	if hasTag != hasCases {
		return &SchemaError{Path: path, Reason: `"tag" and "cases" must be declared together`}
	}

	if hasTag {
		if _, hasMapping := def["mapping"]; hasMapping {
			return &SchemaError{Path: path, Reason: `a variant map cannot also declare "mapping"`}
		}
		if tag == "" {
			return &SchemaError{Path: path, Reason: `"tag" must name a sibling field`}
		}
		casesDef, ok := asDefinition(def["cases"])
		if !ok {
			return &SchemaError{Path: path, Reason: `"cases" must be a map of definitions`}
		}
		n.Tag = tag
		n.Cases = make(map[string]*Node, len(casesDef))
		for name, raw := range casesDef {
			caseDef, ok := asDefinition(raw)
			if !ok {
				return &SchemaError{Path: joinPath(path, name), Reason: "case must be a definition"}
			}
			caseNode, err := compile(caseDef, joinPath(path, name))
			if err != nil {
				return err
			}
			if caseNode.Kind != KindMap {
				return &SchemaError{Path: joinPath(path, name), Reason: "variant cases must be map nodes"}
			}
			n.Cases[name] = caseNode
		}
		return nil
	}

	mappingRaw, hasMapping := def["mapping"]
	if !hasMapping {
		// A bare map accepts nothing; valid but rarely useful.
		return nil
	}
	mapping, ok := asDefinition(mappingRaw)
	if !ok {
		return &SchemaError{Path: path, Reason: `"mapping" must be a map of definitions`}
	}

	n.Children = make(map[string]*Node)
	for key, raw := range mapping {
		childDef, ok := asDefinition(raw)
		if !ok {
			return &SchemaError{Path: joinPath(path, key), Reason: "child must be a definition"}
		}
		if src, isPattern := patternSource(key); isPattern {
			re, err := regexp.Compile("^(?:" + src + ")$")
			if err != nil {
				return &SchemaError{Path: joinPath(path, key), Reason: fmt.Sprintf("invalid pattern: %v", err)}
			}
			child, cerr := compile(childDef, joinPath(path, key))
			if cerr != nil {
				return cerr
			}
			n.Patterns = append(n.Patterns, Pattern{Source: src, Regexp: re, Node: child})
			continue
		}
		child, err := compile(childDef, joinPath(path, key))
		if err != nil {
			return err
		}
		n.Children[key] = child
	}
	// Deterministic precedence for pattern children; see Node.Patterns.
	sort.Slice(n.Patterns, func(i, j int) bool { return n.Patterns[i].Source < n.Patterns[j].Source })
	return nil
}

// patternSource extracts the regex text from a "regex;(<pattern>)" map key.
func patternSource(key string) (string, bool) {
	if strings.HasPrefix(key, patternPrefix) && strings.HasSuffix(key, ")") {
		return key[len(patternPrefix) : len(key)-1], true
	}
	return "", false
}

func enumValues(raw any) ([]string, error) {
	switch vs := raw.(type) {
	case []string:
		return vs, nil
	case []any:
		out := make([]string, 0, len(vs))
		for _, v := range vs {
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("enum values must be strings, got %T", v)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf(`"enum" must be a list of strings`)
	}
}

func asDefinition(raw any) (Definition, bool) {
	switch d := raw.(type) {
	case Definition:
		return d, true
	case map[string]any:
		return d, true
	default:
		return nil, false
	}
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
