package main

import (
	"strings"

	"github.com/ktr0731/protogen"
	"github.com/ktr0731/protogen/entity"
	"github.com/ktr0731/protogen/gen"
)

const indentWidth = 2

// generate writes one description file per file to generate. Identifiers
// of other modules are written as idents so their imports are collected
// automatically.
func generate(p *protogen.Plugin) error {
	suffix := p.Parameter["suffix"]
	if suffix == "" {
		suffix = ".describe.txt"
	}

	for _, f := range p.FilesToGenerate {
		g := p.NewGeneratedFile(f.GeneratedFilenamePrefix+suffix, f.Path)
		g.P("// Code generated by protoc-gen-describe. DO NOT EDIT.")
		g.P("// source: ", f.Name())
		g.P("package ", f.PackageName)
		g.MarkImports()
		g.P()
		for _, m := range f.Messages {
			describeMessage(g, m, 0)
		}
		for _, e := range f.Enums {
			describeEnum(g, e, 0)
		}
		for _, s := range f.Services {
			describeService(g, s)
		}
	}
	return nil
}

func describeMessage(g *gen.File, m *entity.Message, width int) {
	old := g.SetIndent(width)
	defer g.SetIndent(old)

	writeComments(g, m.Location)
	g.P("message ", m.Name(), " {")

	inner := g.SetIndent(width + indentWidth)
	for _, o := range m.OneOfs {
		names := make([]string, len(o.Fields))
		for i, fd := range o.Fields {
			names[i] = fd.Name()
		}
		g.P("oneof ", o.Name(), ": ", strings.Join(names, ", "))
	}
	for _, fd := range m.Fields {
		describeField(g, fd)
	}
	g.SetIndent(inner)

	for _, nested := range m.Messages {
		describeMessage(g, nested, width+indentWidth)
	}
	for _, e := range m.Enums {
		describeEnum(g, e, width+indentWidth)
	}

	g.SetIndent(width)
	g.P("}")
}

func describeField(g *gen.File, f *entity.Field) {
	writeComments(g, f.Location)
	switch {
	case f.IsMap():
		g.P("map<", f.MapKey().Kind, ", ", typeRef(f.MapValue()), "> ", f.Name(), " = ", f.Proto.GetNumber(), ";")
	case f.IsList():
		g.P("repeated ", typeRef(f), " ", f.Name(), " = ", f.Proto.GetNumber(), ";")
	default:
		g.P(typeRef(f), " ", f.Name(), " = ", f.Proto.GetNumber(), ";")
	}
}

// typeRef returns the part of a field's declaration line that names its
// type. Message and enum types are returned as idents so that gen.File
// qualifies them against the module being generated.
func typeRef(f *entity.Field) interface{} {
	switch f.Kind {
	case entity.KindMessage:
		return f.Message.Ident
	case entity.KindEnum:
		return f.Enum.Ident
	default:
		return f.Kind
	}
}

func describeEnum(g *gen.File, e *entity.Enum, width int) {
	old := g.SetIndent(width)
	defer g.SetIndent(old)

	writeComments(g, e.Location)
	g.P("enum ", e.Name(), " {")
	inner := g.SetIndent(width + indentWidth)
	for _, v := range e.Values {
		writeComments(g, v.Location)
		g.P(v.Name(), " = ", v.Number, ";")
	}
	g.SetIndent(inner)
	g.P("}")
}

func describeService(g *gen.File, s *entity.Service) {
	writeComments(g, s.Location)
	g.P("service ", s.Name(), " {")
	old := g.SetIndent(indentWidth)
	for _, m := range s.Methods {
		writeComments(g, m.Location)
		g.P("rpc ", m.Name(), " (", m.Input.Ident, ") returns (", m.Output.Ident, "); // ", m.GRPCPath)
	}
	g.SetIndent(old)
	g.P("}")
}

func writeComments(g *gen.File, loc entity.Location) {
	for _, block := range loc.LeadingDetachedComments {
		writeCommentBlock(g, block)
		g.P()
	}
	writeCommentBlock(g, loc.LeadingComments)
}

func writeCommentBlock(g *gen.File, block string) {
	if block == "" {
		return
	}
	for _, line := range strings.Split(strings.TrimSuffix(block, "\n"), "\n") {
		g.P("// ", line)
	}
}
