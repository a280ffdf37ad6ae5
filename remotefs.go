package remotefs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/remotefs/pkg/schema"
	"github.com/aretw0/remotefs/pkg/settings"
)

// Version of the remotefs library.
const Version = "0.1.0"

// Parse reads a YAML configuration document into the raw tree the validator
// consumes. The physical format is the only thing Parse cares about; no
// schema checking happens here.
func Parse(data []byte) (map[string]any, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	return doc, nil
}

// Validate walks a raw document against the built-in remote_fs schema and
// returns the typed tree, or a *schema.Errors carrying every violation.
func Validate(doc map[string]any, opts ...schema.Option) (map[string]any, error) {
	return schema.Validate(doc, settings.Registry().Root(), opts...)
}

// Load reads, parses and validates a configuration file, materializes the
// typed settings and runs the cross-field checks. It is the one-call path
// for consumers that want a ready-to-use *settings.RemoteFS.
//
// Validation failures come back as *schema.Errors; use schema.Violations to
// enumerate them individually.
func Load(path string, opts ...schema.Option) (*settings.RemoteFS, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}
	typed, err := Validate(doc, opts...)
	if err != nil {
		return nil, err
	}
	rfs, err := settings.Decode(typed)
	if err != nil {
		return nil, err
	}
	if err := rfs.CrossCheck(); err != nil {
		return nil, err
	}
	return rfs, nil
}
