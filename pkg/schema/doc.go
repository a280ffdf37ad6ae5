/*
Package schema compiles declarative schema definitions and validates raw
configuration documents against them.

A schema is plain data: a nested map literal describing the permitted shape
of a document (map, seq and scalar nodes, required flags, enumerations,
regex-keyed map children, tagged variants). Load compiles that literal once
into an immutable Registry; Validate then walks any number of documents
against it concurrently.

	reg, err := schema.Load(schema.Definition{
	    "type": "map",
	    "mapping": schema.Definition{
	        "location": schema.Definition{"type": "str", "required": true},
	        "vm_count": schema.Definition{"type": "int"},
	    },
	})

	typed, err := schema.Validate(doc, reg.Root())
	for _, v := range schema.Violations(err) {
	    fmt.Println(v.Path, v.Detail)
	}

Validation accumulates: every violation in a document is reported in one
pass, each tagged with its dotted field path, so a user can fix a
configuration in a single edit-validate cycle. Only a malformed schema is
fatal; malformed input always comes back as a result value.

This package has no external dependencies and no opinion about where
documents come from; callers hand it the already-parsed tree.
*/
package schema
