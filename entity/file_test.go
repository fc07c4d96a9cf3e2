package entity_test

import (
	"errors"
	"testing"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/ktr0731/protogen/entity"
	"github.com/ktr0731/protogen/ident"
)

// colorFileProto is the descriptor of:
//
//	// pkg/a.proto
//	package pkg;
//	message A {
//	  string name = 1;
//	  enum Color { RED = 0; GREEN = 1; }
//	}
func colorFileProto() *descriptorpb.FileDescriptorProto {
	return &descriptorpb.FileDescriptorProto{
		Name:    proto.String("pkg/a.proto"),
		Package: proto.String("pkg"),
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name: proto.String("A"),
				Field: []*descriptorpb.FieldDescriptorProto{
					{
						Name:   proto.String("name"),
						Number: proto.Int32(1),
						Type:   descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum(),
						Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
					},
				},
				EnumType: []*descriptorpb.EnumDescriptorProto{
					{
						Name: proto.String("Color"),
						Value: []*descriptorpb.EnumValueDescriptorProto{
							{Name: proto.String("RED"), Number: proto.Int32(0)},
							{Name: proto.String("GREEN"), Number: proto.Int32(1)},
						},
					},
				},
			},
		},
	}
}

func TestNewFile(t *testing.T) {
	f := entity.NewFile(colorFileProto(), true, ident.DefaultImportFunc)

	if f.Name() != "pkg/a.proto" {
		t.Errorf("expected file name 'pkg/a.proto', but got %q", f.Name())
	}
	if f.GeneratedFilenamePrefix != "pkg/a" {
		t.Errorf("expected generated filename prefix 'pkg/a', but got %q", f.GeneratedFilenamePrefix)
	}
	if f.Path != ident.Path("pkg.a_pb") {
		t.Errorf("expected module path 'pkg.a_pb', but got %q", f.Path)
	}
	if !f.Generate {
		t.Error("expected the generate flag to be set")
	}

	msg := f.Messages[0]
	cases := map[string]struct {
		got, want string
	}{
		"message":    {got: msg.FullName, want: "pkg.A"},
		"field":      {got: msg.Fields[0].FullName, want: "pkg.A.name"},
		"enum":       {got: msg.Enums[0].FullName, want: "pkg.A.Color"},
		"enum value": {got: msg.Enums[0].Values[0].FullName, want: "pkg.Color.RED"},
	}
	for name, c := range cases {
		c := c
		t.Run(name, func(t *testing.T) {
			if c.got != c.want {
				t.Errorf("expected full name %q, but got %q", c.want, c.got)
			}
		})
	}
}

func TestNewFile_ParentLinks(t *testing.T) {
	f := entity.NewFile(colorFileProto(), false, ident.DefaultImportFunc)

	msg := f.Messages[0]
	if msg.Parent != nil {
		t.Error("top-level message must not have a parent message")
	}
	if msg.ParentFile != f {
		t.Error("message must link back to its file")
	}
	if msg.Fields[0].Parent != msg {
		t.Error("field must link back to its message")
	}
	if msg.Enums[0].Parent != msg {
		t.Error("nested enum must link back to its message")
	}
	if msg.Enums[0].Values[0].Parent != msg.Enums[0] {
		t.Error("enum value must link back to its enum")
	}
}

func TestFile_Resolve_Dependencies(t *testing.T) {
	_, files := libraryUnit(t)

	lib := files["library.proto"]
	if len(lib.Dependencies) != 1 {
		t.Fatalf("expected 1 dependency, but got %d", len(lib.Dependencies))
	}
	if lib.Dependencies[0] != files["book.proto"] {
		t.Error("dependency must be the registered book.proto file")
	}
}

func TestFile_Resolve_MissingDependency(t *testing.T) {
	protos := parseFiles(t, "library.proto", "book.proto")

	// Register only library.proto; its import of book.proto cannot link.
	reg := entity.NewRegistry()
	lib := entity.NewFile(protos[0], true, ident.DefaultImportFunc)
	lib.Register(reg)

	err := lib.Resolve(reg)
	if err == nil {
		t.Fatal("resolving without the dependency registered must fail")
	}
	var resErr *entity.ResolutionError
	if !errors.As(err, &resErr) {
		t.Fatalf("expected a ResolutionError, but got %T: %s", err, err)
	}
	if resErr.File != "library.proto" {
		t.Errorf("expected the error to carry the referencing file, but got %q", resErr.File)
	}
	if resErr.TypeName != "book.proto" {
		t.Errorf("expected the error to carry the unresolved name, but got %q", resErr.TypeName)
	}
}

func TestFile_Resolve_ForwardReferenceAcrossFiles(t *testing.T) {
	protos := parseFiles(t, "library.proto", "book.proto")

	// Register both files before resolving either; the reference from
	// library.proto to book.Book must link regardless of registration
	// order.
	reg := entity.NewRegistry()
	lib := entity.NewFile(protos[0], true, ident.DefaultImportFunc)
	lib.Register(reg)
	book := entity.NewFile(protos[1], false, ident.DefaultImportFunc)
	book.Register(reg)

	if err := lib.Resolve(reg); err != nil {
		t.Fatalf("failed to resolve library.proto: %s", err)
	}

	featured := lib.Messages[0].Fields[3]
	if featured.Name() != "featured" {
		t.Fatalf("expected the 4th field to be 'featured', but got %q", featured.Name())
	}
	if featured.Message != book.Messages[0] {
		t.Error("featured must link to the Book message of book.proto")
	}
}
