package orchestrator

import (
	"strings"

	"github.com/goliatone/go-blitmask/pkg/source"
	"github.com/goliatone/go-blitmask/pkg/widths"
)

// TemplateMarker is removed from template names when deriving artifact names.
const TemplateMarker = "Template"

const (
	productionSuffix = ".gen.go"
	testSuffix       = "_gen_test.go"
)

// OutputName derives the artifact name for a template and width:
// BlitMaskConstantsTemplate at 16 bits becomes BlitMaskConstants16.
func OutputName(template string, w widths.Width) string {
	base := template
	if strings.HasSuffix(base, TemplateMarker) {
		base = strings.TrimSuffix(base, TemplateMarker)
	} else {
		base = strings.Replace(base, TemplateMarker, "", 1)
	}
	return base + w.String()
}

// OutputPath derives the file name an artifact is written to. Test artifacts
// end in _test.go so the go tool only compiles them into test binaries.
func OutputPath(name string, kind source.Kind) string {
	suffix := productionSuffix
	if kind == source.KindTest {
		suffix = testSuffix
	}
	return strings.ToLower(name) + suffix
}
