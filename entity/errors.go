package entity

import "fmt"

// ResolutionError is returned when a reference does not match any
// registered declaration.
type ResolutionError struct {
	// File is the proto file that contains the reference.
	File string
	// Ref is the full name of the referencing declaration.
	Ref string
	// TypeName is the unresolved reference text.
	TypeName string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("%s: failed to resolve %q referenced from %q", e.File, e.TypeName, e.Ref)
}

// InvalidDescriptorError is returned when a descriptor is structurally
// self-contradictory, e.g. a field of enum kind without a type name.
// It is detected before any registry lookup is attempted.
type InvalidDescriptorError struct {
	FullName string
	Reason   string
}

func (e *InvalidDescriptorError) Error() string {
	return fmt.Sprintf("invalid descriptor %q: %s", e.FullName, e.Reason)
}

// UnsupportedReferenceError is returned for type references that are not
// fully qualified (not starting with a "."). Relative, C++-style scoped
// references are not implemented; protoc always emits fully qualified
// references in code generator requests.
type UnsupportedReferenceError struct {
	TypeName string
}

func (e *UnsupportedReferenceError) Error() string {
	return fmt.Sprintf("unsupported relative type reference %q: only fully qualified references can be resolved", e.TypeName)
}
