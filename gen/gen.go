// Package gen provides the line buffer for generated output files.
//
// A File collects output lines and tracks every cross-module identifier
// written to it. References to other modules are rendered fully qualified
// and recorded in a deduplicated import set; at seal time the set is
// spliced into the position marked with MarkImports.
package gen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ktr0731/protogen/ident"
)

// File is the output buffer for one generated file. A File is open until
// Seal is called; a sealed File must not be written to again.
type File struct {
	name string
	path ident.Path

	lines      []string
	indent     int
	importMark int
	imports    map[ident.Path]struct{}
	sealed     bool
}

// NewFile returns an open buffer for a generated file with the given name.
// path is the module identity of the generated file itself; identifiers
// whose path equals it are rendered unqualified.
func NewFile(name string, path ident.Path) *File {
	return &File{
		name:       name,
		path:       path,
		importMark: -1,
		imports:    map[ident.Path]struct{}{},
	}
}

// Name returns the name of the generated file.
func (f *File) Name() string {
	return f.name
}

// P writes one line built from args. Parts are stringified and
// concatenated without separators. ident.Ident parts are rendered through
// QualifiedIdent, so writing a cross-module identifier records its import
// automatically. The current indentation is prepended to every line.
func (f *File) P(args ...interface{}) {
	f.mustBeOpen()
	var b strings.Builder
	for _, arg := range args {
		switch v := arg.(type) {
		case ident.Ident:
			b.WriteString(f.QualifiedIdent(v))
		default:
			fmt.Fprint(&b, v)
		}
	}
	f.lines = append(f.lines, indentLines(b.String(), f.indent))
}

// QualifiedIdent renders id relative to the file's own module. An
// identifier of the same module is rendered by bare name; anything else
// is rendered fully qualified and its module is added to the import set.
func (f *File) QualifiedIdent(id ident.Ident) string {
	f.mustBeOpen()
	if id.Path == f.path {
		return id.Name
	}
	f.imports[id.Path] = struct{}{}
	return id.String()
}

// SetIndent sets the indentation width applied to subsequently written
// lines and returns the previous width, so a caller can restore it when
// leaving a scope. SetIndent panics if width is negative.
func (f *File) SetIndent(width int) int {
	f.mustBeOpen()
	if width < 0 {
		panic(fmt.Sprintf("gen: negative indent width %d", width))
	}
	old := f.indent
	f.indent = width
	return old
}

// MarkImports records the current position as the place where the import
// set will be spliced in at seal time. A later call overwrites an earlier
// mark; only one splice position is supported. If MarkImports is never
// called, the collected imports are dropped silently, so any file that may
// reference another module should mark an import position.
func (f *File) MarkImports() {
	f.mustBeOpen()
	f.importMark = len(f.lines)
}

// Seal closes the buffer and returns the final content: the lines written
// before the import mark, one import line per referenced module, and the
// remaining lines. Import lines are ordered by module path. Seal must be
// called exactly once.
func (f *File) Seal() string {
	f.mustBeOpen()
	f.sealed = true

	lines := f.lines
	if f.importMark >= 0 && len(f.imports) > 0 {
		paths := make([]string, 0, len(f.imports))
		for p := range f.imports {
			paths = append(paths, string(p))
		}
		sort.Strings(paths)

		merged := make([]string, 0, len(lines)+len(paths))
		merged = append(merged, lines[:f.importMark]...)
		for _, p := range paths {
			merged = append(merged, "import "+p)
		}
		merged = append(merged, lines[f.importMark:]...)
		lines = merged
	}
	return strings.Join(lines, "\n")
}

func (f *File) mustBeOpen() {
	if f.sealed {
		panic(fmt.Sprintf("gen: generated file %q is already sealed", f.name))
	}
}

func indentLines(s string, width int) string {
	if width == 0 {
		return s
	}
	prefix := strings.Repeat(" ", width)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
