// Package entity builds a cross-linked declaration tree from raw proto
// descriptors.
//
// Construction happens in two phases. First, every file of the compilation
// unit is turned into a tree of File, Message, Field, OneOf, Enum, EnumValue,
// Service and Method nodes and registered onto a Registry. Second, after all
// files are registered, each file is resolved: string type references on
// fields, extendees, method input/output types and file dependencies become
// direct links to the registered nodes. Resolution must not start before
// registration of the whole unit is complete, otherwise forward and circular
// references between files cannot be linked.
package entity

import (
	"google.golang.org/protobuf/types/descriptorpb"
)

// Field numbers of the repeated declaration fields inside descriptor
// records. They are dictated by descriptor.proto and are the building
// blocks of source code info paths.
const (
	fileMessageField   = 4 // FileDescriptorProto.message_type
	fileEnumField      = 5 // FileDescriptorProto.enum_type
	fileServiceField   = 6 // FileDescriptorProto.service
	fileExtensionField = 7 // FileDescriptorProto.extension

	messageFieldField     = 2 // DescriptorProto.field
	messageNestedField    = 3 // DescriptorProto.nested_type
	messageEnumField      = 4 // DescriptorProto.enum_type
	messageExtensionField = 6 // DescriptorProto.extension
	messageOneOfField     = 8 // DescriptorProto.oneof_decl

	enumValueField     = 2 // EnumDescriptorProto.value
	serviceMethodField = 2 // ServiceDescriptorProto.method
)

func isMapEntry(proto *descriptorpb.DescriptorProto) bool {
	return proto.GetOptions().GetMapEntry()
}

// childPath extends a source code info path by one (field, index) step.
// The slice is copied so sibling paths never alias each other.
func childPath(parent []int32, field, index int32) []int32 {
	path := make([]int32, 0, len(parent)+2)
	path = append(path, parent...)
	return append(path, field, index)
}
