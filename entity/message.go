package entity

import (
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/ktr0731/protogen/ident"
)

// Message is a proto message declaration.
type Message struct {
	// Proto is the raw descriptor the node was built from.
	Proto *descriptorpb.DescriptorProto

	// FullName is the dotted, package qualified name of the message.
	FullName string

	// Ident identifies the message in generated output.
	Ident ident.Ident

	// ParentFile is the file the message is declared in.
	ParentFile *File

	// Parent is the enclosing message for nested messages, nil for
	// top-level messages.
	Parent *Message

	// Fields holds all field declarations, including fields that belong
	// to a oneof.
	Fields []*Field

	OneOfs []*OneOf

	// Messages are the nested message declarations. Synthesized map entry
	// messages are removed from this list during resolution; they stay
	// reachable through the map field that references them.
	Messages []*Message

	Enums      []*Enum
	Extensions []*Field

	Location Location
}

func newMessage(proto *descriptorpb.DescriptorProto, parentFile *File, parent *Message, path []int32) *Message {
	m := &Message{
		Proto:      proto,
		ParentFile: parentFile,
		Parent:     parent,
		Location:   parentFile.locs.resolve(path),
	}
	if parent != nil {
		m.FullName = parent.FullName + "." + proto.GetName()
		m.Ident = parentFile.Path.Ident(parent.Ident.Name + "." + proto.GetName())
	} else {
		m.FullName = parentFile.PackageName + "." + proto.GetName()
		m.Ident = parentFile.Path.Ident(proto.GetName())
	}

	// Oneofs are built before fields so that a field can be attached to
	// its owning oneof at construction time.
	m.OneOfs = make([]*OneOf, len(proto.GetOneofDecl()))
	for i, od := range proto.GetOneofDecl() {
		m.OneOfs[i] = newOneOf(od, m, childPath(path, messageOneOfField, int32(i)))
	}

	m.Fields = make([]*Field, len(proto.GetField()))
	for i, fd := range proto.GetField() {
		var oneof *OneOf
		if fd.OneofIndex != nil {
			oneof = m.OneOfs[fd.GetOneofIndex()]
		}
		field := newField(fd, m, parentFile, oneof, childPath(path, messageFieldField, int32(i)))
		if oneof != nil {
			oneof.Fields = append(oneof.Fields, field)
		}
		m.Fields[i] = field
	}

	m.Messages = make([]*Message, len(proto.GetNestedType()))
	for i, nd := range proto.GetNestedType() {
		m.Messages[i] = newMessage(nd, parentFile, m, childPath(path, messageNestedField, int32(i)))
	}

	m.Enums = make([]*Enum, len(proto.GetEnumType()))
	for i, ed := range proto.GetEnumType() {
		m.Enums[i] = newEnum(ed, parentFile, m, childPath(path, messageEnumField, int32(i)))
	}

	m.Extensions = make([]*Field, len(proto.GetExtension()))
	for i, xd := range proto.GetExtension() {
		m.Extensions[i] = newField(xd, m, parentFile, nil, childPath(path, messageExtensionField, int32(i)))
	}

	return m
}

// Name returns the unqualified message name.
func (m *Message) Name() string {
	return m.Proto.GetName()
}

// IsMapEntry reports whether the message is a synthesized map entry.
func (m *Message) IsMapEntry() bool {
	return isMapEntry(m.Proto)
}

func (m *Message) register(reg *Registry) {
	reg.registerMessage(m)
	for _, nested := range m.Messages {
		nested.register(reg)
	}
	for _, e := range m.Enums {
		reg.registerEnum(e)
	}
}

func (m *Message) resolve(reg *Registry) error {
	for _, nested := range m.Messages {
		if err := nested.resolve(reg); err != nil {
			return err
		}
	}
	for _, f := range m.Fields {
		if err := f.resolve(reg); err != nil {
			return err
		}
	}
	for _, x := range m.Extensions {
		if err := x.resolve(reg); err != nil {
			return err
		}
	}

	// Map entry messages are structural helpers, not declarations the
	// caller should generate code for. They are hidden once the fields
	// referencing them are linked.
	var visible []*Message
	for _, nested := range m.Messages {
		if nested.IsMapEntry() {
			continue
		}
		visible = append(visible, nested)
	}
	m.Messages = visible

	return nil
}
