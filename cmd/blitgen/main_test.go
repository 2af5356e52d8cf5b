package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/goliatone/go-blitmask/pkg/config"
	"github.com/goliatone/go-blitmask/pkg/orchestrator"
	"github.com/goliatone/go-blitmask/pkg/prompt"
	"github.com/goliatone/go-blitmask/pkg/widths"
)

type harness struct {
	wd     string
	stdout bytes.Buffer
	stderr bytes.Buffer
	driver *prompt.Scripted
}

func newHarness(t *testing.T, answers ...prompt.Answer) *harness {
	t.Helper()
	return &harness{wd: t.TempDir(), driver: prompt.NewScripted(answers...)}
}

func (h *harness) run(args ...string) error {
	h.stdout.Reset()
	h.stderr.Reset()
	a := newApp(&h.stdout, &h.stderr)
	a.driver = h.driver
	a.newLogger = func(bool, io.Writer) (*zap.Logger, error) { return zap.NewNop(), nil }
	a.getwd = func() (string, error) { return h.wd, nil }

	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(context.Background())
}

func TestGenerate_Stdout(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.run("generate", "--widths", "8", "--emitter", "stdout"))

	out := h.stdout.String()
	assert.Contains(t, out, "// file: blitmask8.gen.go\n")
	assert.Contains(t, out, "// file: blitmaskconstants8.gen.go\n")
	assert.Contains(t, out, "// file: blitmaskextensions8.gen.go\n")
	assert.Contains(t, out, "type BlitMask8 struct")
	assert.NotContains(t, out, "uint32")
}

func TestGenerate_DirThenCheck(t *testing.T) {
	h := newHarness(t)
	out := filepath.Join(h.wd, "flags")

	require.NoError(t, h.run("generate", "--widths", "16", "--out", out, "--package", "flags"))
	assert.Contains(t, h.stderr.String(), "generated 3 files")

	code, err := os.ReadFile(filepath.Join(out, "blitmask16.gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(code), "package flags")

	require.NoError(t, h.run("check", "--widths", "16", "--out", out, "--package", "flags"))
	assert.Contains(t, h.stdout.String(), "3 files up to date")

	target := filepath.Join(out, "blitmaskconstants16.gen.go")
	require.NoError(t, os.WriteFile(target, []byte("package flags\n"), 0o644))
	err = h.run("check", "--widths", "16", "--out", out, "--package", "flags")
	require.ErrorIs(t, err, errDrift)
	assert.Contains(t, h.stdout.String(), "stale "+target)
	assert.Contains(t, h.stderr.String(), "1 of 3 files out of date")
}

func TestGenerate_TestBuild(t *testing.T) {
	h := newHarness(t)
	out := filepath.Join(h.wd, "gen")

	require.NoError(t, h.run("generate", "--test", "--widths", "32,64", "--out", out))

	for _, name := range []string{"blitmaskunittest32_gen_test.go", "blitmaskunittest64_gen_test.go"} {
		_, err := os.Stat(filepath.Join(out, name))
		assert.NoError(t, err, name)
	}
	_, err := os.Stat(filepath.Join(out, "blitmask32.gen.go"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCheck_MissingFiles(t *testing.T) {
	h := newHarness(t)
	err := h.run("check", "--widths", "8", "--out", filepath.Join(h.wd, "nowhere"))
	require.ErrorIs(t, err, errDrift)
	assert.Contains(t, h.stdout.String(), "missing ")
}

func TestGenerate_UnsupportedWidth(t *testing.T) {
	h := newHarness(t)
	err := h.run("generate", "--widths", "8,12", "--emitter", "stdout")
	require.ErrorIs(t, err, widths.ErrUnsupportedWidth)
	assert.Empty(t, h.stdout.String())
}

func TestGenerate_RepeatedWidth(t *testing.T) {
	h := newHarness(t)
	err := h.run("generate", "--widths", "8,8", "--emitter", "stdout")
	require.ErrorIs(t, err, orchestrator.ErrDuplicateOutput)
	assert.Empty(t, h.stdout.String())
}

func TestGenerate_UsesConfigFile(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, os.WriteFile(filepath.Join(h.wd, config.DefaultFileName), []byte(
		"widths: [8]\noutput: gen\npackage: masks\n"), 0o644))

	require.NoError(t, h.run("generate"))

	code, err := os.ReadFile(filepath.Join(h.wd, "gen", "blitmask8.gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(code), "package masks")
}

func TestGenerate_BrokenConfig(t *testing.T) {
	h := newHarness(t)
	path := filepath.Join(h.wd, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("widths: [7]\n"), 0o644))

	err := h.run("--config", path, "generate")
	require.ErrorIs(t, err, widths.ErrUnsupportedWidth)
}

func TestGenerate_CustomTemplates(t *testing.T) {
	h := newHarness(t)
	dir := filepath.Join(h.wd, "templates")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "blitmask_constants.tmpl.go"), []byte(`//go:build blitmask_template

//blitgen:template BlitMaskConstantsTemplate

package blitmask

type BlitMaskConstantsTemplate struct{}

func (BlitMaskConstantsTemplate) Zero() uint32 { return 0x00000000 }
`), 0o644))

	require.NoError(t, h.run("generate", "--templates", dir, "--widths", "64", "--emitter", "stdout"))
	out := h.stdout.String()
	assert.Contains(t, out, "// file: blitmaskconstants64.gen.go\n")
	assert.Contains(t, out, "func (BlitMaskConstants64) Zero() uint64 { return 0x0000000000000000 }")
}

func TestGenerate_EmptyTemplatesDir(t *testing.T) {
	h := newHarness(t)
	err := h.run("generate", "--templates", h.wd, "--emitter", "stdout")
	require.ErrorContains(t, err, "no .tmpl.go templates")
}

func TestInit_Defaults(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.run("init", "--yes"))

	path := filepath.Join(h.wd, config.DefaultFileName)
	assert.Contains(t, h.stdout.String(), "wrote "+path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, widths.Supported(), cfg.Widths)
	assert.Equal(t, config.EmitterDir, cfg.Emitter)

	require.ErrorContains(t, h.run("init", "--yes"), "already exists")
	require.NoError(t, h.run("init", "--yes", "--force"))
}

func TestInit_Wizard(t *testing.T) {
	h := newHarness(t,
		prompt.Answer{Indices: []int{1}},
		prompt.Answer{},
		prompt.Answer{Text: "bits"},
		prompt.Answer{Text: "out"},
		prompt.Answer{Index: 0},
		prompt.Answer{Bool: false},
		prompt.Answer{Text: "2"},
	)
	require.NoError(t, h.run("init"))

	cfg, err := config.Load(filepath.Join(h.wd, config.DefaultFileName))
	require.NoError(t, err)
	assert.Equal(t, []widths.Width{widths.W16}, cfg.Widths)
	assert.Equal(t, "bits", cfg.Package)
	assert.Equal(t, filepath.Join(h.wd, "out"), cfg.Output)
	assert.Equal(t, 2, cfg.Concurrency)
}

func TestInit_Aborted(t *testing.T) {
	h := newHarness(t, prompt.Answer{Err: prompt.ErrAborted})
	require.ErrorIs(t, h.run("init"), prompt.ErrAborted)

	_, err := os.Stat(filepath.Join(h.wd, config.DefaultFileName))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWatch_RequiresTemplates(t *testing.T) {
	h := newHarness(t)
	require.ErrorContains(t, h.run("watch", "--emitter", "stdout"), "templates directory")
}
