package template

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultHeaderTemplate names the header template shipped with the gotemplate
// engine.
const DefaultHeaderTemplate = "generated"

// ErrInvalidHeader reports a rendered header that is not a Go line comment
// block carrying the generated-code marker.
var ErrInvalidHeader = errors.New("template: invalid generated header")

// generatedMarker is the convention tools use to recognise generated files.
var generatedMarker = regexp.MustCompile(`(?m)^// Code generated .* DO NOT EDIT\.$`)

// HeaderData is the context a header template is rendered with.
type HeaderData struct {
	Template string
	Width    int
	Type     string
	Output   string
	Package  string
}

// Context exposes the data as template variables. Numbers are passed as
// strings so engines that round-trip through JSON print them verbatim.
func (d HeaderData) Context() map[string]any {
	return map[string]any{
		"template": d.Template,
		"width":    strconv.Itoa(d.Width),
		"type":     d.Type,
		"output":   d.Output,
		"package":  d.Package,
	}
}

// HeaderRenderer produces the banner placed above a generated file.
type HeaderRenderer interface {
	RenderHeader(data HeaderData) (string, error)
}

// HeaderFunc adapts a function to HeaderRenderer.
type HeaderFunc func(data HeaderData) (string, error)

func (f HeaderFunc) RenderHeader(data HeaderData) (string, error) {
	return f(data)
}

// EngineHeader renders headers through a TemplateRenderer. Name is either a
// template name known to the engine or inline template content.
type EngineHeader struct {
	Engine TemplateRenderer
	Name   string
}

// RenderHeader renders and validates the header.
func (h EngineHeader) RenderHeader(data HeaderData) (string, error) {
	if h.Engine == nil {
		return "", errors.New("template: header engine is nil")
	}
	name := h.Name
	if strings.TrimSpace(name) == "" {
		name = DefaultHeaderTemplate
	}
	out, err := h.Engine.Render(name, data.Context())
	if err != nil {
		return "", fmt.Errorf("template: render header for %s: %w", data.Template, err)
	}
	return NormalizeHeader(out)
}

// StaticHeader renders the default banner without a template engine.
func StaticHeader(data HeaderData) (string, error) {
	return NormalizeHeader(fmt.Sprintf("// Code generated by blitgen from %s for %d-bit masks. DO NOT EDIT.\n", data.Template, data.Width))
}

// NormalizeHeader trims blank lines around header, ensures it ends with a
// single newline and checks that it is a block of line comments containing
// the generated-code marker.
func NormalizeHeader(header string) (string, error) {
	trimmed := strings.Trim(header, "\n")
	if trimmed == "" {
		return "", fmt.Errorf("%w: header is empty", ErrInvalidHeader)
	}
	for _, line := range strings.Split(trimmed, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if line != "" && !strings.HasPrefix(line, "//") {
			return "", fmt.Errorf("%w: %q is not a line comment", ErrInvalidHeader, line)
		}
	}
	if !generatedMarker.MatchString(trimmed) {
		return "", fmt.Errorf("%w: missing \"// Code generated ... DO NOT EDIT.\" line", ErrInvalidHeader)
	}
	return trimmed + "\n", nil
}
