package source

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/goliatone/go-blitmask/pkg/rewrite"
)

// Extension is the suffix every template file carries.
const Extension = ".tmpl.go"

// TestExtension marks templates whose instances belong to test builds.
const TestExtension = "_test" + Extension

// Kind separates production templates from test-only ones. The two sets are
// mutually exclusive: a build context instantiates exactly one of them.
type Kind int

const (
	KindProduction Kind = iota
	KindTest
)

func (k Kind) String() string {
	switch k {
	case KindProduction:
		return "production"
	case KindTest:
		return "test"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// KindFromFilename infers a template kind from its file name.
func KindFromFilename(name string) Kind {
	if strings.HasSuffix(path.Base(filepathToSlash(name)), TestExtension) {
		return KindTest
	}
	return KindProduction
}

// IsTemplateFile reports whether name looks like a template file.
func IsTemplateFile(name string) bool {
	return strings.HasSuffix(name, Extension)
}

// Template is one template definition: its canonical name, its kind and the
// Go source written against the placeholder storage type.
type Template struct {
	Name   string
	Kind   Kind
	Source Source
	Code   []byte
}

// NewTemplate builds a Template from raw code. The canonical name comes from
// the //blitgen:template directive and the kind from the source location.
func NewTemplate(src Source, code []byte) (Template, error) {
	if src == nil {
		return Template{}, errors.New("source: source is required")
	}
	if len(code) == 0 {
		return Template{}, fmt.Errorf("source: template %s is empty", src.Location())
	}
	name := rewrite.TemplateDirective(code)
	if name == "" {
		return Template{}, fmt.Errorf("source: template %s has no %stemplate directive", src.Location(), rewrite.DirectivePrefix)
	}

	clone := append([]byte(nil), code...)
	return Template{
		Name:   name,
		Kind:   KindFromFilename(src.Location()),
		Source: src,
		Code:   clone,
	}, nil
}

// MustNewTemplate panics if the template cannot be created. Useful for tests.
func MustNewTemplate(src Source, code []byte) Template {
	tmpl, err := NewTemplate(src, code)
	if err != nil {
		panic(err)
	}
	return tmpl
}

// Location returns the origin of the template, or its name when the source
// is unknown.
func (t Template) Location() string {
	if t.Source == nil {
		return t.Name
	}
	return t.Source.Location()
}

func filepathToSlash(name string) string {
	return strings.ReplaceAll(name, "\\", "/")
}
