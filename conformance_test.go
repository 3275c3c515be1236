package regexparse

import (
	"os"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// conformanceCase is one entry of testdata/conformance.yaml. Each case either
// expects a successful parse whose Dump() contains every string in
// WantDumpContains, or expects a parse failure of kind WantError.
type conformanceCase struct {
	Name             string   `yaml:"name"`
	Pattern          string   `yaml:"pattern"`
	Opts             []string `yaml:"opts,omitempty"`
	WantDumpContains []string `yaml:"want_dump_contains,omitempty"`
	WantError        string   `yaml:"want_error,omitempty"`
}

var conformanceOptionNames = map[string]SyntaxOptions{
	"ExperimentalQuotes":    ExperimentalQuotes,
	"ExperimentalComments":  ExperimentalComments,
	"ExperimentalRanges":    ExperimentalRanges,
	"ExperimentalCaptures":  ExperimentalCaptures,
	"NonSemanticWhitespace": NonSemanticWhitespace,
}

func resolveConformanceOptions(t *testing.T, names []string) SyntaxOptions {
	t.Helper()
	opts := Traditional
	for _, name := range names {
		flag, ok := conformanceOptionNames[name]
		if !ok {
			t.Fatalf("testdata/conformance.yaml: unknown option name %q", name)
		}
		opts = opts.With(flag)
	}
	return opts
}

func TestConformance(t *testing.T) {
	raw, err := os.ReadFile("testdata/conformance.yaml")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	var cases []conformanceCase
	if err := yaml.Unmarshal(raw, &cases); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	if len(cases) == 0 {
		t.Fatal("testdata/conformance.yaml contains no cases")
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			opts := resolveConformanceOptions(t, tc.Opts)
			root, err := Parse(tc.Pattern, opts)

			if tc.WantError != "" {
				if err == nil {
					t.Fatalf("Parse(%q) succeeded, want error %s", tc.Pattern, tc.WantError)
				}
				pe, ok := err.(*ParseError)
				if !ok {
					t.Fatalf("Parse(%q) error = %v (%T), want *ParseError", tc.Pattern, err, err)
				}
				if pe.Kind.String() != tc.WantError {
					t.Fatalf("Parse(%q) error kind = %s, want %s", tc.Pattern, pe.Kind.String(), tc.WantError)
				}
				return
			}

			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tc.Pattern, err)
			}
			dump := Dump(root)
			for _, want := range tc.WantDumpContains {
				if !strings.Contains(dump, want) {
					t.Fatalf("Dump(Parse(%q)) = %s\nwant to contain %q", tc.Pattern, dump, want)
				}
			}
		})
	}
}
