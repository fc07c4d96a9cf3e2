package entity

import (
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/ktr0731/protogen/ident"
)

// Enum is a proto enum declaration.
type Enum struct {
	// Proto is the raw descriptor the node was built from.
	Proto *descriptorpb.EnumDescriptorProto

	// FullName is the dotted, package qualified name of the enum.
	FullName string

	// Ident identifies the enum in generated output.
	Ident ident.Ident

	// ParentFile is the file the enum is declared in.
	ParentFile *File

	// Parent is the enclosing message for nested enums, nil for top-level
	// enums.
	Parent *Message

	// Values are the enum values, in declaration order.
	Values []*EnumValue

	Location Location
}

func newEnum(proto *descriptorpb.EnumDescriptorProto, parentFile *File, parent *Message, path []int32) *Enum {
	e := &Enum{
		Proto:      proto,
		ParentFile: parentFile,
		Parent:     parent,
		Location:   parentFile.locs.resolve(path),
	}
	if parent != nil {
		e.FullName = parent.FullName + "." + proto.GetName()
		e.Ident = parentFile.Path.Ident(parent.Ident.Name + "." + proto.GetName())
	} else {
		e.FullName = parentFile.PackageName + "." + proto.GetName()
		e.Ident = parentFile.Path.Ident(proto.GetName())
	}

	e.Values = make([]*EnumValue, len(proto.GetValue()))
	for i, vd := range proto.GetValue() {
		e.Values[i] = newEnumValue(vd, e, childPath(path, enumValueField, int32(i)))
	}

	return e
}

// Name returns the unqualified enum name.
func (e *Enum) Name() string {
	return e.Proto.GetName()
}

// EnumValue is a single value of an enum.
type EnumValue struct {
	// Proto is the raw descriptor the node was built from.
	Proto *descriptorpb.EnumValueDescriptorProto

	// FullName is the qualified name of the value. Enum values are not
	// namespaced under the message enclosing their enum; the name is
	// always package, enum name and value name. A value RED of an enum
	// Color nested in message pkg.A is named "pkg.Color.RED", not
	// "pkg.A.Color.RED", while the enum itself keeps the full chain
	// "pkg.A.Color".
	FullName string

	// Ident identifies the value in generated output.
	Ident ident.Ident

	// Number is the numeric value.
	Number int32

	// Parent is the enum the value belongs to.
	Parent *Enum

	Location Location
}

func newEnumValue(proto *descriptorpb.EnumValueDescriptorProto, parent *Enum, path []int32) *EnumValue {
	return &EnumValue{
		Proto:    proto,
		FullName: parent.ParentFile.PackageName + "." + parent.Name() + "." + proto.GetName(),
		Ident:    parent.ParentFile.Path.Ident(parent.Ident.Name + "." + proto.GetName()),
		Number:   proto.GetNumber(),
		Parent:   parent,
		Location: parent.ParentFile.locs.resolve(path),
	}
}

// Name returns the unqualified value name.
func (v *EnumValue) Name() string {
	return v.Proto.GetName()
}
