package entity

import (
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/ktr0731/protogen/ident"
)

// Service is a proto service declaration.
type Service struct {
	// Proto is the raw descriptor the node was built from.
	Proto *descriptorpb.ServiceDescriptorProto

	// FullName is the dotted, package qualified name of the service.
	FullName string

	// Ident identifies the service in generated output.
	Ident ident.Ident

	// ParentFile is the file the service is declared in.
	ParentFile *File

	// Methods are the service's methods, in declaration order.
	Methods []*Method

	Location Location
}

func newService(proto *descriptorpb.ServiceDescriptorProto, parentFile *File, path []int32) *Service {
	s := &Service{
		Proto:      proto,
		FullName:   parentFile.PackageName + "." + proto.GetName(),
		Ident:      parentFile.Path.Ident(proto.GetName()),
		ParentFile: parentFile,
		Location:   parentFile.locs.resolve(path),
	}

	s.Methods = make([]*Method, len(proto.GetMethod()))
	for i, md := range proto.GetMethod() {
		s.Methods[i] = newMethod(md, s, childPath(path, serviceMethodField, int32(i)))
	}

	return s
}

// Name returns the unqualified service name.
func (s *Service) Name() string {
	return s.Proto.GetName()
}

func (s *Service) resolve(reg *Registry) error {
	for _, m := range s.Methods {
		if err := m.resolve(reg); err != nil {
			return err
		}
	}
	return nil
}

// Method is a single method of a service.
type Method struct {
	// Proto is the raw descriptor the node was built from.
	Proto *descriptorpb.MethodDescriptorProto

	// FullName is the dotted, package qualified name of the method.
	FullName string

	// GRPCPath is the full dispatch path of the method, in the form
	// "/<package>.<service>/<method>".
	GRPCPath string

	// Parent is the service the method belongs to.
	Parent *Service

	// Input is the request message type. Populated during resolution.
	Input *Message

	// Output is the response message type. Populated during resolution.
	Output *Message

	Location Location
}

func newMethod(proto *descriptorpb.MethodDescriptorProto, parent *Service, path []int32) *Method {
	return &Method{
		Proto:    proto,
		FullName: parent.FullName + "." + proto.GetName(),
		GRPCPath: "/" + parent.FullName + "/" + proto.GetName(),
		Parent:   parent,
		Location: parent.ParentFile.locs.resolve(path),
	}
}

// Name returns the unqualified method name.
func (m *Method) Name() string {
	return m.Proto.GetName()
}

func (m *Method) resolve(reg *Registry) error {
	file := m.Parent.ParentFile.Name()

	input, err := resolveMessage(reg, file, m.FullName, m.Proto.GetInputType())
	if err != nil {
		return err
	}
	m.Input = input

	output, err := resolveMessage(reg, file, m.FullName, m.Proto.GetOutputType())
	if err != nil {
		return err
	}
	m.Output = output

	return nil
}
