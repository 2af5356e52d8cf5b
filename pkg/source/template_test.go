package source_test

import (
	"testing"

	"github.com/goliatone/go-blitmask/pkg/source"
)

func TestKindFromFilename(t *testing.T) {
	cases := map[string]source.Kind{
		"blitmask.tmpl.go":                     source.KindProduction,
		"templates/blitmask_constants.tmpl.go": source.KindProduction,
		"blitmask_unittest_test.tmpl.go":       source.KindTest,
		`templates\blitmask_test.tmpl.go`:      source.KindTest,
		"blitmask_test.go":                     source.KindProduction,
	}
	for name, want := range cases {
		if got := source.KindFromFilename(name); got != want {
			t.Errorf("KindFromFilename(%q) = %s, want %s", name, got, want)
		}
	}
}

func TestNewTemplate(t *testing.T) {
	code := []byte("//go:build blitmask_template\n\n//blitgen:template BlitMaskTemplate\n\npackage blitmask\n")
	tmpl, err := source.NewTemplate(source.SourceFromFS("blitmask.tmpl.go"), code)
	if err != nil {
		t.Fatalf("new template: %v", err)
	}
	if tmpl.Name != "BlitMaskTemplate" {
		t.Fatalf("name = %q", tmpl.Name)
	}

	code[0] = 'x'
	if tmpl.Code[0] != '/' {
		t.Fatal("template must own a copy of its code")
	}

	if _, err := source.NewTemplate(nil, code); err == nil {
		t.Fatal("expected error for nil source")
	}
	if _, err := source.NewTemplate(source.SourceFromFS("empty.tmpl.go"), nil); err == nil {
		t.Fatal("expected error for empty code")
	}
}
