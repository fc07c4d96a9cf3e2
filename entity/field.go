package entity

import (
	"google.golang.org/protobuf/types/descriptorpb"
)

// Field is a proto field declaration. Extension declarations are fields
// too; a top-level extension has no parent message.
type Field struct {
	// Proto is the raw descriptor the node was built from.
	Proto *descriptorpb.FieldDescriptorProto

	// FullName is the dotted, package qualified name of the field.
	FullName string

	// Parent is the message the field is declared in, nil for top-level
	// extensions.
	Parent *Message

	// ParentFile is the file the field is declared in.
	ParentFile *File

	// OneOf is the oneof the field belongs to, nil otherwise.
	OneOf *OneOf

	Kind        Kind
	Cardinality Cardinality

	// Extendee is the extended message for extension fields. Populated
	// during resolution.
	Extendee *Message

	// Enum is the field's enum type if Kind is KindEnum. Populated during
	// resolution.
	Enum *Enum

	// Message is the field's message type if Kind is KindMessage.
	// Populated during resolution.
	Message *Message

	Location Location
}

func newField(proto *descriptorpb.FieldDescriptorProto, parent *Message, parentFile *File, oneof *OneOf, path []int32) *Field {
	f := &Field{
		Proto:       proto,
		Parent:      parent,
		ParentFile:  parentFile,
		OneOf:       oneof,
		Kind:        newKind(proto.GetType()),
		Cardinality: newCardinality(proto.GetLabel()),
		Location:    parentFile.locs.resolve(path),
	}
	if parent != nil {
		f.FullName = parent.FullName + "." + proto.GetName()
	} else {
		f.FullName = parentFile.PackageName + "." + proto.GetName()
	}
	return f
}

// Name returns the unqualified field name.
func (f *Field) Name() string {
	return f.Proto.GetName()
}

// IsMap reports whether the field is a map field, i.e. its message type
// is a synthesized map entry.
func (f *Field) IsMap() bool {
	return f.Message != nil && f.Message.IsMapEntry()
}

// IsList reports whether the field is repeated and not a map field.
func (f *Field) IsList() bool {
	return f.Cardinality == CardinalityRepeated && !f.IsMap()
}

// MapKey returns the key field of a map field, nil if the field is not
// a map.
func (f *Field) MapKey() *Field {
	if !f.IsMap() {
		return nil
	}
	return f.Message.Fields[0]
}

// MapValue returns the value field of a map field, nil if the field is
// not a map.
func (f *Field) MapValue() *Field {
	if !f.IsMap() {
		return nil
	}
	return f.Message.Fields[1]
}

func (f *Field) resolve(reg *Registry) error {
	if extendee := f.Proto.GetExtendee(); extendee != "" {
		m, err := resolveMessage(reg, f.ParentFile.Name(), f.FullName, extendee)
		if err != nil {
			return err
		}
		f.Extendee = m
	}

	switch f.Kind {
	case KindEnum:
		if f.Proto.GetTypeName() == "" {
			return &InvalidDescriptorError{FullName: f.FullName, Reason: "field of kind enum has no type name"}
		}
		e, err := resolveEnum(reg, f.ParentFile.Name(), f.FullName, f.Proto.GetTypeName())
		if err != nil {
			return err
		}
		f.Enum = e
	case KindMessage:
		if f.Proto.GetTypeName() == "" {
			return &InvalidDescriptorError{FullName: f.FullName, Reason: "field of kind message has no type name"}
		}
		m, err := resolveMessage(reg, f.ParentFile.Name(), f.FullName, f.Proto.GetTypeName())
		if err != nil {
			return err
		}
		f.Message = m
	}

	return nil
}
