package loader_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ktr0731/protogen"
	"github.com/ktr0731/protogen/loader"
)

func TestLoad(t *testing.T) {
	req, err := loader.Load(context.Background(), []string{"testdata"}, []string{"greet.proto"})
	if err != nil {
		t.Fatalf("Load must not return an error, but got '%s'", err)
	}

	if diff := cmp.Diff([]string{"greet.proto"}, req.GetFileToGenerate()); diff != "" {
		t.Errorf("unexpected files to generate (-want +got):\n%s", diff)
	}

	var names []string
	for _, fd := range req.GetProtoFile() {
		names = append(names, fd.GetName())
	}
	// Dependencies come before their importers.
	want := []string{"message.proto", "greet.proto"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("unexpected proto files (-want +got):\n%s", diff)
	}

	for _, fd := range req.GetProtoFile() {
		if fd.GetSourceCodeInfo() == nil {
			t.Errorf("%q must carry source info", fd.GetName())
		}
	}
}

func TestLoad_ResolvableByPlugin(t *testing.T) {
	req, err := loader.Load(context.Background(), []string{"testdata"}, []string{"greet.proto"})
	if err != nil {
		t.Fatalf("Load must not return an error, but got '%s'", err)
	}

	p, err := (&protogen.Options{}).New(req)
	if err != nil {
		t.Fatalf("the loaded request must resolve, but got '%s'", err)
	}

	svc, ok := p.Registry.ServiceByName("greet.Greeter")
	if !ok {
		t.Fatal("greet.Greeter must be registered")
	}
	if svc.Methods[0].Input.FullName != "hello.Hello" {
		t.Errorf("unexpected method input %q", svc.Methods[0].Input.FullName)
	}
}

func TestLoad_UnknownFile(t *testing.T) {
	_, err := loader.Load(context.Background(), []string{"testdata"}, []string{"missing.proto"})
	if err == nil {
		t.Error("Load must return an error for unknown files")
	}
}
