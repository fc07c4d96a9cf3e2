// Command protoc-gen-describe is a protoc plugin that emits a plain text
// description of each generated file's declarations. It doubles as the
// reference plugin for the protogen library.
//
// Invoked by protoc it behaves like any other plugin:
//
//	protoc --plugin=protoc-gen-describe=./protoc-gen-describe --describe_out=./out a.proto
//
// Invoked with proto file arguments it compiles them itself and writes
// the generated files below --out:
//
//	protoc-gen-describe -I ./protos -o ./out a.proto
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ktr0731/protogen"
	"github.com/ktr0731/protogen/loader"
	"github.com/ktr0731/protogen/logger"
	"github.com/ktr0731/protogen/meta"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cmd := newCommand()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", meta.AppName, err)
		return 1
	}
	return 0
}

type flags struct {
	importPaths []string
	outDir      string
	verbose     bool
}

func (f *flags) register(fs *pflag.FlagSet) {
	fs.StringSliceVarP(&f.importPaths, "proto-path", "I", nil, "directories to search for proto imports")
	fs.StringVarP(&f.outDir, "out", "o", ".", "output directory for standalone mode")
	fs.BoolVar(&f.verbose, "verbose", false, "write debug logs to stderr")
}

func newCommand() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           meta.AppName + " [flags] [proto files]",
		Short:         "describe compiled proto declarations",
		Version:       meta.Version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.verbose {
				logger.SetOutput(cmd.ErrOrStderr())
			}
			opts := &protogen.Options{}
			if len(args) == 0 {
				// Plugin mode: protoc talks to us over stdin/stdout.
				return opts.Run(generate)
			}

			req, err := loader.Load(cmd.Context(), f.importPaths, args)
			if err != nil {
				return err
			}
			resp := opts.Generate(req, generate)
			if respErr := resp.GetError(); respErr != "" {
				return errors.New(respErr)
			}
			for _, file := range resp.GetFile() {
				name := filepath.Join(f.outDir, file.GetName())
				if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
					return errors.Wrap(err, "failed to create the output directory")
				}
				if err := os.WriteFile(name, []byte(file.GetContent()), 0o644); err != nil {
					return errors.Wrapf(err, "failed to write %q", name)
				}
			}
			return nil
		},
	}
	f.register(cmd.Flags())
	return cmd
}
