// Package protogen provides the runtime for writing protoc plugins.
//
// A plugin is a function that receives a Plugin value carrying the fully
// resolved declaration trees of one code generator request and writes its
// output through generated file buffers:
//
//	func main() {
//		opts := &protogen.Options{}
//		if err := opts.Run(func(p *protogen.Plugin) error {
//			for _, f := range p.FilesToGenerate {
//				g := p.NewGeneratedFile(f.GeneratedFilenamePrefix+".out", f.Path)
//				g.MarkImports()
//				for _, m := range f.Messages {
//					g.P("declare ", m.Ident)
//				}
//			}
//			return nil
//		}); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// Run reads the serialized CodeGeneratorRequest from the input, builds and
// resolves the declaration trees, invokes the generation function, and
// writes the serialized CodeGeneratorResponse to the output. Any failure
// surfaces as the response's error field; protoc reports it and discards
// all output.
package protogen

import (
	"io"
	"os"

	"github.com/ktr0731/go-multierror"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/pluginpb"

	"github.com/ktr0731/protogen/entity"
	"github.com/ktr0731/protogen/ident"
	"github.com/ktr0731/protogen/logger"
)

// Options configures a plugin invocation.
type Options struct {
	// ImportFunc derives module identifiers from proto file names.
	// ident.DefaultImportFunc is used if nil.
	ImportFunc ident.ImportFunc

	// Input is the source of the serialized request. os.Stdin is used
	// if nil.
	Input io.Reader

	// Output is the destination of the serialized response. os.Stdout is
	// used if nil.
	Output io.Writer
}

// Run executes one plugin invocation: it decodes the request, runs gen
// through Generate and encodes the response. The returned error covers
// I/O and codec failures only; generation failures are reported inside
// the response.
func (o *Options) Run(gen func(*Plugin) error) error {
	input := o.Input
	if input == nil {
		input = os.Stdin
	}
	output := o.Output
	if output == nil {
		output = os.Stdout
	}

	in, err := io.ReadAll(input)
	if err != nil {
		return errors.Wrap(err, "failed to read the code generator request")
	}
	var req pluginpb.CodeGeneratorRequest
	if err := proto.Unmarshal(in, &req); err != nil {
		return errors.Wrap(err, "failed to unmarshal the code generator request")
	}

	resp := o.Generate(&req, gen)

	out, err := proto.Marshal(resp)
	if err != nil {
		return errors.Wrap(err, "failed to marshal the code generator response")
	}
	if _, err := output.Write(out); err != nil {
		return errors.Wrap(err, "failed to write the code generator response")
	}
	return nil
}

// Generate runs one generation pass over req. It never fails: resolution
// errors, errors returned by gen and panics recovered from gen all turn
// into a response that carries an error message and no files.
func (o *Options) Generate(req *pluginpb.CodeGeneratorRequest, gen func(*Plugin) error) (resp *pluginpb.CodeGeneratorResponse) {
	p, err := o.New(req)
	if err != nil {
		return errorResponse(err)
	}
	defer func() {
		if r := recover(); r != nil {
			resp = errorResponse(errors.Errorf("panic during code generation: %v", r))
		}
	}()
	if err := gen(p); err != nil {
		p.Error(err)
	}
	return p.Response()
}

// New builds the resolved declaration trees for req. Every file is
// registered onto a fresh registry before any file is resolved, so
// forward and circular references between files always link.
func (o *Options) New(req *pluginpb.CodeGeneratorRequest) (*Plugin, error) {
	importFunc := o.ImportFunc
	if importFunc == nil {
		importFunc = ident.DefaultImportFunc
	}

	generate := make(map[string]struct{}, len(req.GetFileToGenerate()))
	for _, name := range req.GetFileToGenerate() {
		generate[name] = struct{}{}
	}

	reg := entity.NewRegistry()
	files := make([]*entity.File, 0, len(req.GetProtoFile()))
	for _, fd := range req.GetProtoFile() {
		_, gen := generate[fd.GetName()]
		f := entity.NewFile(fd, gen, importFunc)
		f.Register(reg)
		files = append(files, f)
	}
	logger.Printf("registered %d files", len(files))

	var rerr error
	for _, f := range files {
		if err := f.Resolve(reg); err != nil {
			rerr = multierror.Append(rerr, err)
		}
	}
	if rerr != nil {
		return nil, errors.Wrap(rerr, "failed to resolve the compilation unit")
	}

	var filesToGenerate []*entity.File
	for _, f := range files {
		if f.Generate {
			filesToGenerate = append(filesToGenerate, f)
		}
	}
	logger.Printf("resolved %d files (%d to generate)", len(files), len(filesToGenerate))

	return &Plugin{
		Parameter:       parseParameter(req.GetParameter()),
		Files:           files,
		FilesToGenerate: filesToGenerate,
		Registry:        reg,
	}, nil
}

func errorResponse(err error) *pluginpb.CodeGeneratorResponse {
	return &pluginpb.CodeGeneratorResponse{Error: proto.String(err.Error())}
}
