// Package loader builds code generator requests directly from .proto
// source files, so plugins can be run and tested without invoking protoc.
package loader

import (
	"context"

	"github.com/bufbuild/protocompile"
	"github.com/bufbuild/protocompile/protoutil"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/pluginpb"
)

// Load compiles fnames, looked up in importPaths, into a
// CodeGeneratorRequest equivalent to the one protoc would send to a
// plugin: fnames become the files to generate, and the proto_file list
// carries every compiled file and its transitive dependencies, with
// source info, dependencies first.
func Load(ctx context.Context, importPaths, fnames []string) (*pluginpb.CodeGeneratorRequest, error) {
	c := &protocompile.Compiler{
		Resolver: protocompile.WithStandardImports(&protocompile.SourceResolver{
			ImportPaths: importPaths,
		}),
		SourceInfoMode: protocompile.SourceInfoStandard,
	}
	compiled, err := c.Compile(ctx, fnames...)
	if err != nil {
		return nil, errors.Wrap(err, "loader: failed to compile proto files")
	}

	seen := map[string]struct{}{}
	var protos []*descriptorpb.FileDescriptorProto
	for _, fd := range compiled {
		protos = appendFile(protos, fd, seen)
	}

	return &pluginpb.CodeGeneratorRequest{
		FileToGenerate: fnames,
		ProtoFile:      protos,
	}, nil
}

// appendFile appends fd and its imports to protos in dependency order,
// skipping files that were appended already.
func appendFile(protos []*descriptorpb.FileDescriptorProto, fd protoreflect.FileDescriptor, seen map[string]struct{}) []*descriptorpb.FileDescriptorProto {
	if _, ok := seen[fd.Path()]; ok {
		return protos
	}
	seen[fd.Path()] = struct{}{}

	imports := fd.Imports()
	for i := 0; i < imports.Len(); i++ {
		protos = appendFile(protos, imports.Get(i).FileDescriptor, seen)
	}
	return append(protos, protoutil.ProtoFromFileDescriptor(fd))
}
