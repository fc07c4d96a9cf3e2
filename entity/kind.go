package entity

import (
	"fmt"

	"google.golang.org/protobuf/types/descriptorpb"
)

// Kind is the proto type of a field. The values mirror
// FieldDescriptorProto.Type.
type Kind int32

const (
	KindDouble   Kind = 1
	KindFloat    Kind = 2
	KindInt64    Kind = 3
	KindUint64   Kind = 4
	KindInt32    Kind = 5
	KindFixed64  Kind = 6
	KindFixed32  Kind = 7
	KindBool     Kind = 8
	KindString   Kind = 9
	KindGroup    Kind = 10
	KindMessage  Kind = 11
	KindBytes    Kind = 12
	KindUint32   Kind = 13
	KindEnum     Kind = 14
	KindSfixed32 Kind = 15
	KindSfixed64 Kind = 16
	KindSint32   Kind = 17
	KindSint64   Kind = 18
)

var kindNames = map[Kind]string{
	KindDouble:   "double",
	KindFloat:    "float",
	KindInt64:    "int64",
	KindUint64:   "uint64",
	KindInt32:    "int32",
	KindFixed64:  "fixed64",
	KindFixed32:  "fixed32",
	KindBool:     "bool",
	KindString:   "string",
	KindGroup:    "group",
	KindMessage:  "message",
	KindBytes:    "bytes",
	KindUint32:   "uint32",
	KindEnum:     "enum",
	KindSfixed32: "sfixed32",
	KindSfixed64: "sfixed64",
	KindSint32:   "sint32",
	KindSint64:   "sint64",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int32(k))
}

func newKind(t descriptorpb.FieldDescriptorProto_Type) Kind {
	switch t {
	case descriptorpb.FieldDescriptorProto_TYPE_DOUBLE:
		return KindDouble
	case descriptorpb.FieldDescriptorProto_TYPE_FLOAT:
		return KindFloat
	case descriptorpb.FieldDescriptorProto_TYPE_INT64:
		return KindInt64
	case descriptorpb.FieldDescriptorProto_TYPE_UINT64:
		return KindUint64
	case descriptorpb.FieldDescriptorProto_TYPE_INT32:
		return KindInt32
	case descriptorpb.FieldDescriptorProto_TYPE_FIXED64:
		return KindFixed64
	case descriptorpb.FieldDescriptorProto_TYPE_FIXED32:
		return KindFixed32
	case descriptorpb.FieldDescriptorProto_TYPE_BOOL:
		return KindBool
	case descriptorpb.FieldDescriptorProto_TYPE_STRING:
		return KindString
	case descriptorpb.FieldDescriptorProto_TYPE_GROUP:
		return KindGroup
	case descriptorpb.FieldDescriptorProto_TYPE_MESSAGE:
		return KindMessage
	case descriptorpb.FieldDescriptorProto_TYPE_BYTES:
		return KindBytes
	case descriptorpb.FieldDescriptorProto_TYPE_UINT32:
		return KindUint32
	case descriptorpb.FieldDescriptorProto_TYPE_ENUM:
		return KindEnum
	case descriptorpb.FieldDescriptorProto_TYPE_SFIXED32:
		return KindSfixed32
	case descriptorpb.FieldDescriptorProto_TYPE_SFIXED64:
		return KindSfixed64
	case descriptorpb.FieldDescriptorProto_TYPE_SINT32:
		return KindSint32
	case descriptorpb.FieldDescriptorProto_TYPE_SINT64:
		return KindSint64
	default:
		panic(fmt.Sprintf("entity: unknown field type %v", t))
	}
}

// Cardinality describes how often a field may occur.
type Cardinality int32

const (
	CardinalityOptional Cardinality = 1
	CardinalityRequired Cardinality = 2
	CardinalityRepeated Cardinality = 3
)

func (c Cardinality) String() string {
	switch c {
	case CardinalityOptional:
		return "optional"
	case CardinalityRequired:
		return "required"
	case CardinalityRepeated:
		return "repeated"
	default:
		return fmt.Sprintf("Cardinality(%d)", int32(c))
	}
}

func newCardinality(l descriptorpb.FieldDescriptorProto_Label) Cardinality {
	switch l {
	case descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL:
		return CardinalityOptional
	case descriptorpb.FieldDescriptorProto_LABEL_REQUIRED:
		return CardinalityRequired
	case descriptorpb.FieldDescriptorProto_LABEL_REPEATED:
		return CardinalityRepeated
	default:
		panic(fmt.Sprintf("entity: unknown field label %v", l))
	}
}
