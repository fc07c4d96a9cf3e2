package entity

import (
	"strings"

	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/ktr0731/protogen/ident"
)

// File is the root of the declaration tree built from one
// FileDescriptorProto.
type File struct {
	// Proto is the raw descriptor the tree was built from.
	Proto *descriptorpb.FileDescriptorProto

	// GeneratedFilenamePrefix is the file name without the ".proto"
	// extension, the conventional base name for generated output.
	GeneratedFilenamePrefix string

	// PackageName is the proto package the file declares.
	PackageName string

	// Path is the module identifier derived by the import function.
	Path ident.Path

	// Generate reports whether code generation was requested for this file.
	Generate bool

	// Dependencies are the files imported by this file. Populated during
	// Resolve only.
	Dependencies []*File

	Messages   []*Message
	Enums      []*Enum
	Services   []*Service
	Extensions []*Field

	locs *locationIndex
}

// NewFile builds the declaration tree for proto. Every node gets its full
// name, structural path and comments assigned, but type references stay
// unresolved until Resolve is called.
func NewFile(proto *descriptorpb.FileDescriptorProto, generate bool, importFunc ident.ImportFunc) *File {
	f := &File{
		Proto:                   proto,
		GeneratedFilenamePrefix: strings.TrimSuffix(proto.GetName(), ".proto"),
		PackageName:             proto.GetPackage(),
		Path:                    importFunc(proto.GetName(), proto.GetPackage()),
		Generate:                generate,
		locs:                    newLocationIndex(proto),
	}

	f.Messages = make([]*Message, len(proto.GetMessageType()))
	for i, md := range proto.GetMessageType() {
		f.Messages[i] = newMessage(md, f, nil, childPath(nil, fileMessageField, int32(i)))
	}

	f.Enums = make([]*Enum, len(proto.GetEnumType()))
	for i, ed := range proto.GetEnumType() {
		f.Enums[i] = newEnum(ed, f, nil, childPath(nil, fileEnumField, int32(i)))
	}

	f.Services = make([]*Service, len(proto.GetService()))
	for i, sd := range proto.GetService() {
		f.Services[i] = newService(sd, f, childPath(nil, fileServiceField, int32(i)))
	}

	f.Extensions = make([]*Field, len(proto.GetExtension()))
	for i, xd := range proto.GetExtension() {
		f.Extensions[i] = newField(xd, nil, f, nil, childPath(nil, fileExtensionField, int32(i)))
	}

	return f
}

// Name returns the logical proto file name, e.g. "pkg/a.proto".
func (f *File) Name() string {
	return f.Proto.GetName()
}

// Register adds the file and, recursively, every message, enum and service
// it declares to the registry.
func (f *File) Register(reg *Registry) {
	reg.registerFile(f)
	for _, m := range f.Messages {
		m.register(reg)
	}
	for _, e := range f.Enums {
		reg.registerEnum(e)
	}
	for _, s := range f.Services {
		reg.registerService(s)
	}
}

// Resolve links the file's dependencies and every type reference in its
// subtree against the registry. All files of the compilation unit must be
// registered before any of them is resolved.
func (f *File) Resolve(reg *Registry) error {
	for _, depName := range f.Proto.GetDependency() {
		dep, ok := reg.FileByName(depName)
		if !ok {
			return &ResolutionError{File: f.Name(), Ref: f.Name(), TypeName: depName}
		}
		f.Dependencies = append(f.Dependencies, dep)
	}

	for _, m := range f.Messages {
		if err := m.resolve(reg); err != nil {
			return err
		}
	}
	for _, s := range f.Services {
		if err := s.resolve(reg); err != nil {
			return err
		}
	}
	for _, x := range f.Extensions {
		if err := x.resolve(reg); err != nil {
			return err
		}
	}
	return nil
}
