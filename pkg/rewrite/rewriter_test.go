package rewrite_test

import (
	"bytes"
	"errors"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-blitmask/pkg/rewrite"
	"github.com/goliatone/go-blitmask/pkg/widths"
)

const template = `//go:build blitmask_template

//blitgen:template BlitMaskTemplate

package p

// BlitMaskTemplate wraps a uint32.
type BlitMaskTemplate struct{ value uint32 }

// None has no flags set.
var None = BlitMaskTemplate{}

func NewBlitMaskTemplate(value uint32) BlitMaskTemplate { return BlitMaskTemplate{value: value} }

// ToUint32 returns the raw uint32.
func (m BlitMaskTemplate) ToUint32() uint32 { return m.value }

func use() uint32 {
	var x uint32 = uint32(7)
	m := NewBlitMaskTemplate(x)
	return m.ToUint32() + None.ToUint32()
}

var BlitMaskTemplateExtra = 1
`

func parse(t *testing.T, src string) (*token.FileSet, *ast.File) {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "template.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return fset, file
}

func render(t *testing.T, fset *token.FileSet, file *ast.File) string {
	t.Helper()
	var buf bytes.Buffer
	if err := format.Node(&buf, fset, file); err != nil {
		t.Fatalf("format: %v", err)
	}
	return buf.String()
}

func newRewriter(t *testing.T, w widths.Width, options ...rewrite.Option) *rewrite.Rewriter {
	t.Helper()
	renames, err := rewrite.BuildRenameMap(rewrite.DefaultNames(), w)
	if err != nil {
		t.Fatalf("rename map: %v", err)
	}
	storage, err := w.StorageType()
	if err != nil {
		t.Fatalf("storage: %v", err)
	}
	rw, err := rewrite.New(renames, "uint32", storage, options...)
	if err != nil {
		t.Fatalf("new rewriter: %v", err)
	}
	return rw
}

func TestRewrite_RenamesEveryRole(t *testing.T) {
	fset, file := parse(t, template)
	if removed := rewrite.StripDirectives(file); removed != 2 {
		t.Fatalf("expected 2 directives stripped, got %d", removed)
	}

	res, err := newRewriter(t, widths.W8, rewrite.WithRequired("BlitMaskTemplate")).Rewrite(file)
	if err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	for _, role := range rewrite.RenameRoles() {
		if res.Renamed[role] == 0 {
			t.Errorf("role %s was never renamed", role)
		}
	}
	if !res.Retyped.Covers(rewrite.RoleParamType, rewrite.RoleResultType, rewrite.RoleFieldType, rewrite.RoleValueType, rewrite.RoleConversion) {
		t.Errorf("storage type roles not covered: %v", res.Retyped)
	}
	if res.Leftovers != 0 {
		t.Errorf("expected no leftover placeholder types, got %d", res.Leftovers)
	}

	out := render(t, fset, file)
	for _, want := range []string{
		"// BlitMask8 wraps a uint8.",
		"type BlitMask8 struct{ value uint8 }",
		"var None8 = BlitMask8{}",
		"func NewBlitMask8(value uint8) BlitMask8",
		"// ToUint8 returns the raw uint8.",
		"func (m BlitMask8) ToUint8() uint8",
		"var x uint8 = uint8(7)",
		"m.ToUint8() + None8.ToUint8()",
		"var BlitMaskTemplateExtra = 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	for _, unwanted := range []string{"go:build", "blitgen:", "uint32", "ToUint32"} {
		if strings.Contains(out, unwanted) {
			t.Errorf("output still contains %q:\n%s", unwanted, out)
		}
	}
}

func TestRewrite_Idempotent(t *testing.T) {
	outputs := make([]string, 2)
	for i := range outputs {
		fset, file := parse(t, template)
		rewrite.StripDirectives(file)
		if _, err := newRewriter(t, widths.W16).Rewrite(file); err != nil {
			t.Fatalf("rewrite: %v", err)
		}
		outputs[i] = render(t, fset, file)
	}
	if diff := cmp.Diff(outputs[0], outputs[1]); diff != "" {
		t.Fatalf("rewrite not deterministic (-first +second):\n%s", diff)
	}
}

func TestRewrite_PlaceholderWidthKeepsStorage(t *testing.T) {
	fset, file := parse(t, template)
	res, err := newRewriter(t, widths.W32).Rewrite(file)
	if err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	if res.Retyped.Total() != 0 {
		t.Fatalf("expected no storage rewrites at the placeholder width, got %v", res.Retyped)
	}
	out := render(t, fset, file)
	if !strings.Contains(out, "func (m BlitMask32) ToUint32() uint32") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestRewrite_MissingRenameTarget(t *testing.T) {
	_, file := parse(t, template)
	res, err := newRewriter(t, widths.W64, rewrite.WithRequired("BlitMaskConstantsTemplate")).Rewrite(file)
	if !errors.Is(err, rewrite.ErrMissingRenameTarget) {
		t.Fatalf("expected ErrMissingRenameTarget, got %v", err)
	}
	if diff := cmp.Diff([]string{"BlitMaskConstantsTemplate"}, res.Missing); diff != "" {
		t.Fatalf("missing mismatch (-want +got):\n%s", diff)
	}
}

func TestNew_RequiredNameWithoutRename(t *testing.T) {
	renames, err := rewrite.BuildRenameMap(rewrite.DefaultNames(), widths.W8)
	if err != nil {
		t.Fatalf("rename map: %v", err)
	}
	_, err = rewrite.New(renames, "uint32", "uint8", rewrite.WithRequired("FlagSetTemplate"))
	if !errors.Is(err, rewrite.ErrMissingRenameTarget) {
		t.Fatalf("expected ErrMissingRenameTarget, got %v", err)
	}
	if !strings.Contains(err.Error(), `"FlagSetTemplate"`) {
		t.Fatalf("error should name the template: %v", err)
	}
}

func TestRewrite_ReferenceOnlyIsNotADeclaration(t *testing.T) {
	src := `package p

var x = BlitMaskConstantsTemplate.Zero
`
	_, file := parse(t, src)
	_, err := newRewriter(t, widths.W8, rewrite.WithRequired("BlitMaskConstantsTemplate")).Rewrite(file)
	if !errors.Is(err, rewrite.ErrMissingRenameTarget) {
		t.Fatalf("expected ErrMissingRenameTarget, got %v", err)
	}
}

func TestRewrite_CommentsKeepProse(t *testing.T) {
	src := `package p

// None is the empty mask. None of the flags are set.
var None = BlitMaskTemplate{}

// Everything has every flag set; see [None].
var Everything = BlitMaskTemplate{}

func use() {
	// None of the flags is checked here, and Everything stays as prose.
	_ = None
}
`
	fset, file := parse(t, src)
	if _, err := newRewriter(t, widths.W8).Rewrite(file); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	out := render(t, fset, file)
	for _, want := range []string{
		"// None8 is the empty mask. None of the flags are set.",
		"// Everything8 has every flag set; see [None8].",
		"// None of the flags is checked here, and Everything stays as prose.",
		"var None8 = BlitMask8{}",
		"_ = None8",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRewrite_RetypesConstraints(t *testing.T) {
	src := `package p

type BlitMaskTemplate struct{ value uint32 }

func BlitMaskTemplateFromValue[T ~uint32](value T) BlitMaskTemplate {
	return BlitMaskTemplate{value: uint32(value)}
}

type Set[T ~uint32 | ~uint64] []T
`
	fset, file := parse(t, src)
	res, err := newRewriter(t, widths.W8).Rewrite(file)
	if err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	if got := res.Retyped[rewrite.RoleConstraint]; got != 2 {
		t.Errorf("constraint retypes = %d, want 2", got)
	}
	if res.Leftovers != 0 {
		t.Errorf("expected no leftover placeholder types, got %d", res.Leftovers)
	}

	out := render(t, fset, file)
	for _, want := range []string{
		"func BlitMask8FromValue[T ~uint8](value T) BlitMask8 {",
		"return BlitMask8{value: uint8(value)}",
		"type Set[T ~uint8 | ~uint64] []T",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRewrite_WithoutComments(t *testing.T) {
	fset, file := parse(t, template)
	if _, err := newRewriter(t, widths.W8, rewrite.WithoutComments()).Rewrite(file); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	out := render(t, fset, file)
	if !strings.Contains(out, "// BlitMaskTemplate wraps a uint32.") {
		t.Fatalf("comment should be untouched:\n%s", out)
	}
}

func TestTemplateDirective(t *testing.T) {
	if got := rewrite.TemplateDirective([]byte(template)); got != "BlitMaskTemplate" {
		t.Fatalf("want BlitMaskTemplate, got %q", got)
	}
	if got := rewrite.TemplateDirective([]byte("package p\n")); got != "" {
		t.Fatalf("want empty directive, got %q", got)
	}
}
