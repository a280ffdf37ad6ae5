package schema

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Option adjusts how Validate treats a document.
type Option func(*options)

type options struct {
	ignoreUnknown bool
}

// WithIgnoreUnknown makes Validate drop unrecognized map keys silently
// instead of recording UnknownKey/PatternMismatch violations. The default is
// strict rejection: the schema has no "additional properties" escape.
func WithIgnoreUnknown() Option {
	return func(o *options) {
		o.ignoreUnknown = true
	}
}

// Validate walks doc against the schema rooted at node and returns the typed
// configuration tree, or a *Errors aggregating every violation found. The
// walk never stops at the first problem: sibling fields are still visited
// after an error so one call surfaces all of them.
//
// The returned tree mirrors the document shape with type-checked leaves;
// integer leaves are normalized to int. Validate reads doc but never mutates
// it, holds no state between calls, and is safe for concurrent use against a
// shared Registry.
func Validate(doc map[string]any, node *Node, opts ...Option) (map[string]any, error) {
	w := &walker{}
	for _, opt := range opts {
		opt(&w.opts)
	}
	typed := w.walkMap(doc, node, "", nil)
	if len(w.errs) > 0 {
		return nil, &Errors{Violations: w.errs}
	}
	return typed, nil
}

type walker struct {
	opts options
	errs []*ValidationError
}

func (w *walker) record(path string, kind ErrorKind, format string, args ...any) {
	w.errs = append(w.errs, &ValidationError{
		Path:   path,
		Kind:   kind,
		Detail: fmt.Sprintf(format, args...),
	})
}

// walkMap validates one mapping level. skip, when non-nil, names keys to
// drop without validation (used for unselected variant cases).
func (w *walker) walkMap(doc map[string]any, n *Node, path string, skip func(string) bool) map[string]any {
	out := make(map[string]any, len(doc))

	// Only literal map keys carry required semantics.
	for _, name := range sortedChildNames(n) {
		if n.Children[name].Required {
			if _, present := doc[name]; !present {
				w.record(joinPath(path, name), MissingRequired, "required key %q is missing", name)
			}
		}
	}

	for _, key := range sortedKeys(doc) {
		if skip != nil && skip(key) {
			continue
		}
		childPath := joinPath(path, key)
		child, _, ok := n.child(key)
		if !ok {
			if w.opts.ignoreUnknown {
				continue
			}
			if len(n.Patterns) > 0 {
				w.record(childPath, PatternMismatch, "key %q matches no declared pattern (%s)", key, patternList(n))
			} else {
				w.record(childPath, UnknownKey, "unrecognized key %q", key)
			}
			continue
		}
		if child.Tag != "" {
			out[key] = w.walkVariant(doc[key], child, doc, childPath)
			continue
		}
		out[key] = w.walkValue(doc[key], child, childPath)
	}
	return out
}

// walkVariant validates a tagged-variant map: the sibling field named by
// n.Tag selects which case applies. Keys recognized only by an unselected
// case are ignored rather than rejected, preserving the permissiveness of
// the declarative schema. When the tag is absent or names no case, the
// contents are carried through unvalidated; any problem with the tag itself
// is reported at the tag's own path.
func (w *walker) walkVariant(value any, n *Node, parent map[string]any, path string) any {
	m, ok := asStringMap(value)
	if !ok {
		w.record(path, TypeMismatch, "expected map, got %s", typeName(value))
		return nil
	}

	tagValue, _ := parent[n.Tag].(string)
	selected, found := n.Cases[tagValue]
	if !found {
		return m
	}

	skip := func(key string) bool {
		// The selected case always wins, whether it admits the key as a
		// literal child or through a pattern.
		if _, _, admitted := selected.child(key); admitted {
			return false
		}
		for _, c := range n.Cases {
			if _, inOther := c.Children[key]; inOther {
				return true
			}
		}
		return false
	}
	return w.walkMap(m, selected, path, skip)
}

func (w *walker) walkValue(value any, n *Node, path string) any {
	switch n.Kind {
	case KindMap:
		m, ok := asStringMap(value)
		if !ok {
			w.record(path, TypeMismatch, "expected map, got %s", typeName(value))
			return nil
		}
		return w.walkMap(m, n, path, nil)
	case KindSequence:
		return w.walkSequence(value, n, path)
	case KindScalar:
		return w.walkScalar(value, n, path)
	default:
		return nil
	}
}

func (w *walker) walkSequence(value any, n *Node, path string) []any {
	if value == nil {
		return []any{}
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		w.record(path, TypeMismatch, "expected seq, got %s", typeName(value))
		return nil
	}
	out := make([]any, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		elemPath := path + "." + strconv.Itoa(i)
		out = append(out, w.walkValue(rv.Index(i).Interface(), n.Elem, elemPath))
	}
	return out
}

func (w *walker) walkScalar(value any, n *Node, path string) any {
	switch n.Scalar {
	case ScalarString:
		s, ok := value.(string)
		if !ok {
			w.record(path, TypeMismatch, "expected str, got %s", typeName(value))
			return nil
		}
		if len(n.Enum) > 0 && !contains(n.Enum, s) {
			w.record(path, EnumViolation, "value %q is not one of [%s]", s, strings.Join(n.Enum, ", "))
			return nil
		}
		return s
	case ScalarInt:
		// No coercion from strings or bools; whole floats are accepted
		// because JSON decoders produce float64 for every number.
		switch v := value.(type) {
		case int:
			return v
		case int64:
			return int(v)
		case uint64:
			return int(v)
		case float64:
			if v == float64(int64(v)) {
				return int(v)
			}
		}
		w.record(path, TypeMismatch, "expected int, got %s", typeName(value))
		return nil
	case ScalarBool:
		b, ok := value.(bool)
		if !ok {
			w.record(path, TypeMismatch, "expected bool, got %s", typeName(value))
			return nil
		}
		return b
	default:
		return nil
	}
}

// asStringMap treats nil as an empty mapping so that an empty YAML block
// still surfaces its missing required children.
func asStringMap(value any) (map[string]any, bool) {
	switch m := value.(type) {
	case nil:
		return map[string]any{}, true
	case map[string]any:
		return m, true
	default:
		return nil, false
	}
}

func typeName(value any) string {
	if value == nil {
		return "null"
	}
	return fmt.Sprintf("%T", value)
}

func patternList(n *Node) string {
	sources := make([]string, 0, len(n.Patterns))
	for _, p := range n.Patterns {
		sources = append(sources, p.Source)
	}
	return strings.Join(sources, ", ")
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedChildNames(n *Node) []string {
	names := make([]string, 0, len(n.Children))
	for name := range n.Children {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
