package protogen

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/pluginpb"

	"github.com/ktr0731/protogen/entity"
	"github.com/ktr0731/protogen/gen"
	"github.com/ktr0731/protogen/ident"
)

// Plugin is one plugin invocation: the resolved compilation unit plus the
// output files created during generation.
type Plugin struct {
	// Parameter holds the generator parameters passed by protoc,
	// already split into key/value pairs.
	Parameter map[string]string

	// Files are all files of the compilation unit, in request order.
	Files []*entity.File

	// FilesToGenerate are the files code generation was requested for,
	// in request order.
	FilesToGenerate []*entity.File

	// Registry indexes every declaration of the compilation unit by
	// fully qualified name.
	Registry *entity.Registry

	genFiles []*gen.File
	err      error
}

// NewGeneratedFile creates a new output buffer with the given file name
// and module identity and adds it to the plugin's response.
func (p *Plugin) NewGeneratedFile(name string, path ident.Path) *gen.File {
	g := gen.NewFile(name, path)
	p.genFiles = append(p.genFiles, g)
	return g
}

// Error records a generation error. Only the first recorded error is
// reported back to protoc; later calls are no-ops.
func (p *Plugin) Error(err error) {
	if p.err == nil {
		p.err = err
	}
}

// Response seals every generated file and assembles the response. If an
// error was recorded the response carries only the error message and no
// files. Response must be called at most once.
func (p *Plugin) Response() *pluginpb.CodeGeneratorResponse {
	if p.err != nil {
		return errorResponse(p.err)
	}
	resp := &pluginpb.CodeGeneratorResponse{}
	for _, g := range p.genFiles {
		resp.File = append(resp.File, &pluginpb.CodeGeneratorResponse_File{
			Name:    proto.String(g.Name()),
			Content: proto.String(g.Seal()),
		})
	}
	return resp
}
