package schema

import (
	"strings"
	"testing"
)

func TestLoad_CompilesTree(t *testing.T) {
	reg, err := Load(Definition{
		"type": "map",
		"mapping": Definition{
			"location":   Definition{"type": "str", "required": true},
			"regex;(.+)": Definition{"type": "map"},
		},
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	root := reg.Root()
	if root.Kind != KindMap {
		t.Fatalf("root Kind = %v, want map", root.Kind)
	}
	child, ok := root.Children["location"]
	if !ok || !child.Required || child.Scalar != ScalarString {
		t.Errorf("location child compiled wrong: %+v", child)
	}
	if len(root.Patterns) != 1 || root.Patterns[0].Source != ".+" {
		t.Errorf("patterns compiled wrong: %+v", root.Patterns)
	}
}

func TestLoad_SchemaErrors(t *testing.T) {
	cases := []struct {
		name   string
		def    Definition
		reason string
	}{
		{
			name:   "Unknown Kind",
			def:    Definition{"type": "mapping"},
			reason: "unknown kind",
		},
		{
			name:   "Missing Type",
			def:    Definition{"mapping": Definition{}},
			reason: `missing or non-string "type"`,
		},
		{
			name: "Enum On Map",
			def: Definition{
				"type": "map",
				"enum": []string{"a"},
			},
			reason: "enum is only valid on str scalars",
		},
		{
			name: "Enum On Int Scalar",
			def: Definition{
				"type": "int",
				"enum": []string{"1"},
			},
			reason: "enum is only valid on str scalars",
		},
		{
			name: "Bad Regex",
			def: Definition{
				"type": "map",
				"mapping": Definition{
					"regex;([0-9+)": Definition{"type": "str"},
				},
			},
			reason: "invalid pattern",
		},
		{
			name: "Sequence Without Element",
			def: Definition{
				"type": "seq",
			},
			reason: `requires a "sequence" element definition`,
		},
		{
			name: "Required Not Bool",
			def: Definition{
				"type":     "str",
				"required": "yes",
			},
			reason: `"required" must be a bool`,
		},
		{
			name: "Stray Directive",
			def: Definition{
				"type":    "str",
				"mapping": Definition{},
			},
			reason: "unknown directive",
		},
		{
			name: "Cases Without Tag",
			def: Definition{
				"type":  "map",
				"cases": Definition{},
			},
			reason: `"tag" and "cases" must be declared together`,
		},
		{
			name: "Variant With Mapping",
			def: Definition{
				"type":    "map",
				"tag":     "type",
				"cases":   Definition{"a": Definition{"type": "map"}},
				"mapping": Definition{},
			},
			reason: `cannot also declare "mapping"`,
		},
		{
			name: "Non-Map Case",
			def: Definition{
				"type": "map",
				"tag":  "type",
				"cases": Definition{
					"a": Definition{"type": "str"},
				},
			},
			reason: "variant cases must be map nodes",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(tc.def)
			if err == nil {
				t.Fatal("Load() should fail")
			}
			se, ok := err.(*SchemaError)
			if !ok {
				t.Fatalf("error should be *SchemaError, got %T", err)
			}
			if !strings.Contains(se.Reason, tc.reason) {
				t.Errorf("Reason = %q, want it to contain %q", se.Reason, tc.reason)
			}
		})
	}
}

func TestLoad_ErrorPathPointsAtOffendingNode(t *testing.T) {
	_, err := Load(Definition{
		"type": "map",
		"mapping": Definition{
			"file_server": Definition{
				"type": "map",
				"mapping": Definition{
					"type": Definition{"type": "enum"},
				},
			},
		},
	})
	se, ok := err.(*SchemaError)
	if !ok {
		t.Fatalf("error should be *SchemaError, got %T", err)
	}
	if se.Path != "file_server.type" {
		t.Errorf("Path = %q, want file_server.type", se.Path)
	}
}

func TestMustLoad_PanicsOnBadDefinition(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustLoad() should panic on a malformed definition")
		}
	}()
	MustLoad(Definition{"type": "nope"})
}
