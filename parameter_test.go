package protogen

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseParameter(t *testing.T) {
	cases := map[string]struct {
		in   string
		want map[string]string
	}{
		"empty": {
			in:   "",
			want: map[string]string{},
		},
		"single key": {
			in:   "paths",
			want: map[string]string{"paths": ""},
		},
		"mixed tokens": {
			in: "k1=v1,k2=v2=v3,k4,,,k5",
			want: map[string]string{
				"k1": "v1",
				"k2": "v2=v3",
				"k4": "",
				"k5": "",
			},
		},
		"later key wins": {
			in:   "k=a,k=b",
			want: map[string]string{"k": "b"},
		},
	}

	for name, c := range cases {
		c := c
		t.Run(name, func(t *testing.T) {
			got := parseParameter(c.in)
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("unexpected parameters (-want +got):\n%s", diff)
			}
		})
	}
}
