package orchestrator_test

import (
	"testing"

	"github.com/goliatone/go-blitmask/pkg/orchestrator"
	"github.com/goliatone/go-blitmask/pkg/source"
	"github.com/goliatone/go-blitmask/pkg/widths"
)

func TestOutputNaming(t *testing.T) {
	cases := []struct {
		template string
		width    widths.Width
		kind     source.Kind
		name     string
		path     string
	}{
		{"BlitMaskTemplate", widths.W8, source.KindProduction, "BlitMask8", "blitmask8.gen.go"},
		{"BlitMaskConstantsTemplate", widths.W16, source.KindProduction, "BlitMaskConstants16", "blitmaskconstants16.gen.go"},
		{"BlitMaskUnitTestTemplate", widths.W64, source.KindTest, "BlitMaskUnitTest64", "blitmaskunittest64_gen_test.go"},
		{"TemplateFlags", widths.W32, source.KindProduction, "Flags32", "flags32.gen.go"},
		{"Plain", widths.W32, source.KindProduction, "Plain32", "plain32.gen.go"},
	}
	for _, tc := range cases {
		name := orchestrator.OutputName(tc.template, tc.width)
		if name != tc.name {
			t.Errorf("OutputName(%s, %d) = %s, want %s", tc.template, tc.width, name, tc.name)
		}
		if path := orchestrator.OutputPath(name, tc.kind); path != tc.path {
			t.Errorf("OutputPath(%s) = %s, want %s", name, path, tc.path)
		}
	}
}
