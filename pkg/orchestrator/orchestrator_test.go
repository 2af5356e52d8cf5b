package orchestrator_test

import (
	"context"
	"errors"
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goliatone/go-blitmask/pkg/literal"
	"github.com/goliatone/go-blitmask/pkg/orchestrator"
	"github.com/goliatone/go-blitmask/pkg/render/template"
	"github.com/goliatone/go-blitmask/pkg/source"
	"github.com/goliatone/go-blitmask/pkg/testsupport"
	"github.com/goliatone/go-blitmask/pkg/widths"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const miniTemplate = `//go:build blitmask_template

//blitgen:template BlitMaskTemplate

package blitmask

// BlitMaskTemplate wraps a uint32.
type BlitMaskTemplate struct{ value uint32 }

// None is empty.
var None = BlitMaskTemplate{value: 0x00000000}

// ToUint32 returns the raw uint32.
func (m BlitMaskTemplate) ToUint32() uint32 { return m.value }
`

const miniWant8 = `// Code generated by blitgen from BlitMaskTemplate for 8-bit masks. DO NOT EDIT.

package blitmask

// BlitMask8 wraps a uint8.
type BlitMask8 struct{ value uint8 }

// None8 is empty.
var None8 = BlitMask8{value: 0x00}

// ToUint8 returns the raw uint8.
func (m BlitMask8) ToUint8() uint8 { return m.value }
`

func TestGenerate_MiniTemplate(t *testing.T) {
	tmpl := testsupport.TemplateFromString(t, "blitmask.tmpl.go", miniTemplate)

	batch, err := orchestrator.New().Generate(testsupport.Context(), orchestrator.Request{
		Templates: []source.Template{tmpl},
		Widths:    []widths.Width{widths.W8, widths.W64},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if diff := testsupport.CompareGolden([]string{"blitmask8.gen.go", "blitmask64.gen.go"}, batch.Paths()); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}

	got, _ := batch.Lookup("blitmask8.gen.go")
	if diff := testsupport.CompareGolden(miniWant8, string(got.Code)); diff != "" {
		t.Fatalf("8-bit output mismatch (-want +got):\n%s", diff)
	}
	if got.Name != "BlitMask8" || got.Literals != 1 {
		t.Fatalf("unexpected artifact metadata: %+v", got)
	}

	wide, _ := batch.Lookup("blitmask64.gen.go")
	if !strings.Contains(string(wide.Code), "var None64 = BlitMask64{value: 0x0000000000000000}") {
		t.Fatalf("64-bit output missing widened literal:\n%s", wide.Code)
	}
}

func TestGenerate_EmbeddedProduction(t *testing.T) {
	batch, err := orchestrator.New(orchestrator.WithConcurrency(8)).Generate(testsupport.Context(), orchestrator.Request{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	want := []string{
		"blitmask8.gen.go", "blitmask16.gen.go", "blitmask32.gen.go", "blitmask64.gen.go",
		"blitmaskconstants8.gen.go", "blitmaskconstants16.gen.go", "blitmaskconstants32.gen.go", "blitmaskconstants64.gen.go",
		"blitmaskextensions8.gen.go", "blitmaskextensions16.gen.go", "blitmaskextensions32.gen.go", "blitmaskextensions64.gen.go",
	}
	if diff := testsupport.CompareGolden(want, batch.Paths()); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}

	for _, a := range batch.Artifacts {
		code := string(a.Code)
		if !strings.HasPrefix(code, "// Code generated by blitgen from "+a.Template) {
			t.Errorf("%s: missing generated header", a.Path)
		}
		if strings.Contains(code, "blitmask_template") || strings.Contains(code, "//blitgen:") {
			t.Errorf("%s: directives leaked into output", a.Path)
		}
		body := code[strings.Index(code, "\npackage "):]
		if strings.Contains(body, "Template") {
			t.Errorf("%s: canonical name left in output", a.Path)
		}
		if a.Width != widths.W32 && strings.Contains(code, "uint32") {
			t.Errorf("%s: placeholder storage type left in output", a.Path)
		}
		foreign, err := literal.Foreign(a.Code, a.Width)
		if err != nil {
			t.Fatalf("%s: scan: %v", a.Path, err)
		}
		if len(foreign) > 0 {
			t.Errorf("%s: literals of other widths: %v", a.Path, foreign)
		}
		if _, err := parser.ParseFile(token.NewFileSet(), a.Path, a.Code, parser.ParseComments); err != nil {
			t.Errorf("%s: output does not parse: %v", a.Path, err)
		}
	}

	constants, _ := batch.Lookup("blitmaskconstants64.gen.go")
	if !strings.Contains(string(constants.Code), "return 0xFFFFFFFFFFFFFFFF") {
		t.Fatalf("64-bit constants missing complement literal:\n%s", constants.Code)
	}
}

func TestGenerate_TestBuild(t *testing.T) {
	test := true
	batch, err := orchestrator.New().Generate(testsupport.Context(), orchestrator.Request{TestBuild: &test})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	want := []string{
		"blitmaskunittest8_gen_test.go", "blitmaskunittest16_gen_test.go",
		"blitmaskunittest32_gen_test.go", "blitmaskunittest64_gen_test.go",
	}
	if diff := testsupport.CompareGolden(want, batch.Paths()); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}
	for _, a := range batch.Artifacts {
		if a.Kind != source.KindTest {
			t.Errorf("%s: kind = %s, want test", a.Path, a.Kind)
		}
	}
}

func TestGenerate_KindsAreMutuallyExclusive(t *testing.T) {
	production := testsupport.TemplateFromString(t, "blitmask.tmpl.go", miniTemplate)

	test := true
	batch, err := orchestrator.New().Generate(testsupport.Context(), orchestrator.Request{
		Templates: []source.Template{production},
		TestBuild: &test,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if batch.Len() != 0 {
		t.Fatalf("production template emitted in test build: %v", batch.Paths())
	}
}

func TestGenerate_Idempotent(t *testing.T) {
	first, err := orchestrator.New(orchestrator.WithConcurrency(1)).Generate(testsupport.Context(), orchestrator.Request{})
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := orchestrator.New(orchestrator.WithConcurrency(16)).Generate(testsupport.Context(), orchestrator.Request{})
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if diff := testsupport.CompareGolden(first.Files(), second.Files()); diff != "" {
		t.Fatalf("runs differ (-first +second):\n%s", diff)
	}
}

func TestGenerate_UnsupportedWidth(t *testing.T) {
	_, err := orchestrator.New().Generate(testsupport.Context(), orchestrator.Request{
		Widths: []widths.Width{widths.W8, widths.Width(12)},
	})
	if !errors.Is(err, orchestrator.ErrUnsupportedWidth) {
		t.Fatalf("expected ErrUnsupportedWidth, got %v", err)
	}
}

func TestGenerate_DuplicateOutput(t *testing.T) {
	tmpl := testsupport.TemplateFromString(t, "blitmask.tmpl.go", miniTemplate)
	copied := testsupport.TemplateFromString(t, "copy/blitmask.tmpl.go", miniTemplate)

	cases := map[string]orchestrator.Request{
		"same template twice": {Templates: []source.Template{tmpl, copied}, Widths: []widths.Width{widths.W16}},
		"same width twice":    {Templates: []source.Template{tmpl}, Widths: []widths.Width{widths.W16, widths.W16}},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			batch, err := orchestrator.New().Generate(testsupport.Context(), req)
			if !errors.Is(err, orchestrator.ErrDuplicateOutput) {
				t.Fatalf("expected ErrDuplicateOutput, got %v", err)
			}
			if batch.Len() != 0 {
				t.Fatalf("partial batch returned: %v", batch.Paths())
			}
		})
	}
}

func TestGenerate_MissingRenameTarget(t *testing.T) {
	malformed := strings.Replace(miniTemplate, "//blitgen:template BlitMaskTemplate", "//blitgen:template BlitMaskConstantsTemplate", 1)
	tmpl := testsupport.TemplateFromString(t, "blitmask_constants.tmpl.go", malformed)

	batch, err := orchestrator.New().Generate(testsupport.Context(), orchestrator.Request{
		Templates: []source.Template{tmpl},
	})
	if !errors.Is(err, orchestrator.ErrMissingRenameTarget) {
		t.Fatalf("expected ErrMissingRenameTarget, got %v", err)
	}
	var genErr *orchestrator.GenerateError
	if !errors.As(err, &genErr) || genErr.Template != "BlitMaskConstantsTemplate" {
		t.Fatalf("expected GenerateError for BlitMaskConstantsTemplate, got %v", err)
	}
	if batch.Len() != 0 {
		t.Fatalf("partial batch returned: %v", batch.Paths())
	}
}

func TestGenerate_TemplateWithoutRename(t *testing.T) {
	renamed := strings.ReplaceAll(miniTemplate, "BlitMaskTemplate", "FlagSetTemplate")
	tmpl := testsupport.TemplateFromString(t, "flagset.tmpl.go", renamed)

	batch, err := orchestrator.New().Generate(testsupport.Context(), orchestrator.Request{
		Templates: []source.Template{tmpl},
		Widths:    []widths.Width{widths.W8},
	})
	if !errors.Is(err, orchestrator.ErrMissingRenameTarget) {
		t.Fatalf("expected ErrMissingRenameTarget, got %v", err)
	}
	var genErr *orchestrator.GenerateError
	if !errors.As(err, &genErr) || genErr.Template != "FlagSetTemplate" {
		t.Fatalf("expected GenerateError for FlagSetTemplate, got %v", err)
	}
	if batch.Len() != 0 {
		t.Fatalf("partial batch returned: %v", batch.Paths())
	}
}

func TestGenerate_Options(t *testing.T) {
	tmpl := testsupport.TemplateFromString(t, "blitmask.tmpl.go", miniTemplate)
	header := template.HeaderFunc(func(data template.HeaderData) (string, error) {
		return "// Code generated by test for " + data.Type + " in " + data.Package + ". DO NOT EDIT.\n", nil
	})

	batch, err := orchestrator.New(
		orchestrator.WithWidths(widths.W16),
		orchestrator.WithPackageName("flags"),
		orchestrator.WithHeaderRenderer(header),
	).Generate(testsupport.Context(), orchestrator.Request{Templates: []source.Template{tmpl}})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	code := string(batch.Artifacts[0].Code)
	if !strings.HasPrefix(code, "// Code generated by test for uint16 in flags. DO NOT EDIT.\n\npackage flags\n") {
		t.Fatalf("unexpected prologue:\n%s", code)
	}
}

func TestGenerate_InvalidHeader(t *testing.T) {
	tmpl := testsupport.TemplateFromString(t, "blitmask.tmpl.go", miniTemplate)
	header := template.HeaderFunc(func(data template.HeaderData) (string, error) {
		return template.NormalizeHeader("// hand written\n")
	})

	_, err := orchestrator.New(orchestrator.WithHeaderRenderer(header)).Generate(testsupport.Context(), orchestrator.Request{
		Templates: []source.Template{tmpl},
	})
	if !errors.Is(err, template.ErrInvalidHeader) {
		t.Fatalf("expected ErrInvalidHeader, got %v", err)
	}
}

func TestGenerate_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := orchestrator.New().Generate(ctx, orchestrator.Request{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestGenerate_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	tmpl := testsupport.TemplateFromString(t, "blitmask.tmpl.go", miniTemplate)

	_, err := orchestrator.New(orchestrator.WithLogger(zap.New(core))).Generate(testsupport.Context(), orchestrator.Request{
		Templates: []source.Template{tmpl},
		Widths:    []widths.Width{widths.W8},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	entries := logs.FilterMessage("instantiated template").All()
	if len(entries) != 1 {
		t.Fatalf("expected one instantiation entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["artifact"] != "blitmask8.gen.go" || fields["template"] != "BlitMaskTemplate" {
		t.Fatalf("unexpected fields: %v", fields)
	}
	if logs.FilterMessage("generated batch").Len() != 1 {
		t.Fatal("expected a batch summary entry")
	}
}

func TestGenerate_CommittedPackageUpToDate(t *testing.T) {
	for _, test := range []bool{false, true} {
		batch, err := orchestrator.New().Generate(testsupport.Context(), orchestrator.Request{TestBuild: &test})
		if err != nil {
			t.Fatalf("generate (test=%v): %v", test, err)
		}
		for _, a := range batch.Artifacts {
			path := filepath.Join("..", "blitmask", a.Path)
			if testsupport.WriteMaybeGolden(t, path, a.Code) {
				continue
			}
			want := testsupport.MustReadGoldenString(t, path)
			if diff := testsupport.CompareGolden(want, string(a.Code)); diff != "" {
				t.Errorf("%s is stale, run go generate ./pkg/blitmask (-committed +generated):\n%s", a.Path, diff)
			}
		}
	}
}
