package entity_test

import (
	"testing"

	"github.com/jhump/protoreflect/desc/protoparse"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/ktr0731/protogen/entity"
	"github.com/ktr0731/protogen/ident"
)

// parseFiles compiles fixtures from testdata into raw file descriptors,
// including source code info so location tests see real comments.
func parseFiles(t *testing.T, fnames ...string) []*descriptorpb.FileDescriptorProto {
	t.Helper()
	p := protoparse.Parser{
		ImportPaths:           []string{"testdata"},
		IncludeSourceCodeInfo: true,
	}
	fds, err := p.ParseFiles(fnames...)
	if err != nil {
		t.Fatalf("failed to parse %v: %s", fnames, err)
	}
	protos := make([]*descriptorpb.FileDescriptorProto, len(fds))
	for i, fd := range fds {
		protos[i] = fd.AsFileDescriptorProto()
	}
	return protos
}

// buildUnit registers all files, then resolves all files, and returns the
// built trees keyed by file name.
func buildUnit(t *testing.T, protos ...*descriptorpb.FileDescriptorProto) (*entity.Registry, map[string]*entity.File) {
	t.Helper()
	reg := entity.NewRegistry()
	files := make(map[string]*entity.File, len(protos))
	ordered := make([]*entity.File, 0, len(protos))
	for _, fd := range protos {
		f := entity.NewFile(fd, true, ident.DefaultImportFunc)
		f.Register(reg)
		files[f.Name()] = f
		ordered = append(ordered, f)
	}
	for _, f := range ordered {
		if err := f.Resolve(reg); err != nil {
			t.Fatalf("failed to resolve %q: %s", f.Name(), err)
		}
	}
	return reg, files
}

func libraryUnit(t *testing.T) (*entity.Registry, map[string]*entity.File) {
	t.Helper()
	return buildUnit(t, parseFiles(t, "library.proto", "book.proto")...)
}
