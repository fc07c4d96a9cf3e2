package protogen

import "strings"

// parseParameter splits the parameter string protoc assembles from all
// --<plugin>_opt and --<plugin>_out flags. The flags are joined with
// commas, each token has the form "k", "k=v" or "k=v1=v2":
//
//	--plugin_opt=key1=value1
//	--plugin_opt=key2=value2,key3
//
// becomes "key1=value1,key2=value2,key3". Empty tokens are dropped, the
// first "=" splits key from value and later "=" characters stay part of
// the value. A token without "=" maps to the empty string.
func parseParameter(parameter string) map[string]string {
	params := map[string]string{}
	for _, p := range strings.Split(parameter, ",") {
		if p == "" {
			continue
		}
		k, v, _ := strings.Cut(p, "=")
		params[k] = v
	}
	return params
}
