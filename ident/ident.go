// Package ident describes identifiers of declarations in generated modules.
//
// A Path identifies one generated module. Two identifiers belong to the same
// module iff their paths are equal; gen.File uses this equality to decide
// whether a reference needs to be imported and fully qualified.
package ident

import "strings"

// Path is a module identifier such as "pkg.a_pb".
type Path string

// Ident returns an Ident with name that belongs to the module p.
func (p Path) Ident(name string) Ident {
	return Ident{Path: p, Name: name}
}

// Ident identifies a single declaration within a generated module.
type Ident struct {
	Path Path
	Name string
}

// String returns the fully qualified form of i.
func (i Ident) String() string {
	return string(i.Path) + "." + i.Name
}

// ImportFunc derives the module identifier for a proto file.
// It is called exactly once per file at tree construction time.
// Implementations must be pure: the same arguments always yield the same Path.
type ImportFunc func(filename, pkg string) Path

// DefaultImportFunc derives the module path from the proto file name:
// the ".proto" extension is replaced by a "_pb" suffix and path separators
// become dots, so "pkg/a.proto" maps to "pkg.a_pb".
func DefaultImportFunc(filename, pkg string) Path {
	return Path(strings.ReplaceAll(strings.TrimSuffix(filename, ".proto")+"_pb", "/", "."))
}
