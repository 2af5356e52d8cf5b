package testsupport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-blitmask/pkg/source"
)

// UpdateGoldensEnv enables golden rewrites when set to any non-empty value.
const UpdateGoldensEnv = "UPDATE_GOLDENS"

// LoadTemplate reads a template fixture from disk. Testing helpers fail the
// test on error to keep contract tests concise.
func LoadTemplate(t *testing.T, path string) source.Template {
	t.Helper()

	tmpl, err := LoadTemplateFromPath(path)
	if err != nil {
		t.Fatalf("load template: %v", err)
	}
	return tmpl
}

// LoadTemplateFromPath returns a Template without requiring testing.T, allowing
// callers to wire fixtures in setup functions.
func LoadTemplateFromPath(path string) (source.Template, error) {
	if path == "" {
		return source.Template{}, errors.New("testsupport: template path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return source.Template{}, fmt.Errorf("testsupport: read template: %w", err)
	}
	tmpl, err := source.NewTemplate(source.SourceFromFile(path), data)
	if err != nil {
		return source.Template{}, fmt.Errorf("testsupport: new template: %w", err)
	}
	return tmpl, nil
}

// TemplateFromString builds an in-memory template whose kind follows name.
func TemplateFromString(t *testing.T, name, code string) source.Template {
	t.Helper()

	tmpl, err := source.NewTemplate(source.SourceFromFS(name), []byte(code))
	if err != nil {
		t.Fatalf("template %s: %v", name, err)
	}
	return tmpl
}

// WriteGolden writes value as indented JSON when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv(UpdateGoldensEnv) == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	WriteMaybeGolden(t, path, payload)
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv(UpdateGoldensEnv) == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
