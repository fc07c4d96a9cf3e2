// Package meta holds build metadata shared by the command line tools.
package meta

import version "github.com/hashicorp/go-version"

const AppName = "protoc-gen-describe"

var (
	Version = version.Must(version.NewSemver("0.1.0"))
)
