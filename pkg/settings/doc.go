// Package settings holds the canonical remote_fs schema definition and the
// typed configuration objects materialized from a validated document.
//
// The schema itself stays declarative data (see Definition); the compiled
// Registry is built once and shared for the process lifetime. Cross-field
// constraints that the declarative schema cannot express live here too, in
// RemoteFS.CrossCheck, keeping the schema walk itself permissive.
package settings
