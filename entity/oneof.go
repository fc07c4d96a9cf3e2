package entity

import (
	"google.golang.org/protobuf/types/descriptorpb"
)

// OneOf is a proto oneof declaration. Its member fields are also part of
// the owning message's field list.
type OneOf struct {
	// Proto is the raw descriptor the node was built from.
	Proto *descriptorpb.OneofDescriptorProto

	// FullName is the dotted, package qualified name of the oneof.
	FullName string

	// Parent is the message the oneof is declared in.
	Parent *Message

	// Fields are the member fields, in declaration order.
	Fields []*Field

	Location Location
}

func newOneOf(proto *descriptorpb.OneofDescriptorProto, parent *Message, path []int32) *OneOf {
	return &OneOf{
		Proto:    proto,
		FullName: parent.FullName + "." + proto.GetName(),
		Parent:   parent,
		Location: parent.ParentFile.locs.resolve(path),
	}
}

// Name returns the unqualified oneof name.
func (o *OneOf) Name() string {
	return o.Proto.GetName()
}
