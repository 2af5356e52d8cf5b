package orchestrator

import (
	"bytes"
	"fmt"
	"go/format"
	"go/parser"
	"go/token"

	"go.uber.org/zap"

	"github.com/goliatone/go-blitmask/pkg/literal"
	"github.com/goliatone/go-blitmask/pkg/render/template"
	"github.com/goliatone/go-blitmask/pkg/rewrite"
	"github.com/goliatone/go-blitmask/pkg/source"
	"github.com/goliatone/go-blitmask/pkg/widths"
)

// instantiate rewrites one template for one width. Identifiers and types are
// rewritten on the syntax tree first; literals are replaced on the printed
// text afterwards so they see the renamed source.
func (o *Orchestrator) instantiate(tmpl source.Template, w widths.Width) (Artifact, error) {
	placeholder, err := widths.Placeholder.StorageType()
	if err != nil {
		return Artifact{}, err
	}
	target, err := w.StorageType()
	if err != nil {
		return Artifact{}, err
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, tmpl.Location(), tmpl.Code, parser.ParseComments)
	if err != nil {
		return Artifact{}, fmt.Errorf("parse template: %w", err)
	}
	rewrite.StripDirectives(file)

	renames, err := rewrite.BuildRenameMap(o.names, w)
	if err != nil {
		return Artifact{}, err
	}
	rewriter, err := rewrite.New(renames, placeholder, target, rewrite.WithRequired(tmpl.Name))
	if err != nil {
		return Artifact{}, err
	}
	result, err := rewriter.Rewrite(file)
	if err != nil {
		return Artifact{}, err
	}
	if o.packageName != "" {
		file.Name.Name = o.packageName
	}

	var printed bytes.Buffer
	if err := format.Node(&printed, fset, file); err != nil {
		return Artifact{}, fmt.Errorf("print rewritten template: %w", err)
	}

	code, stats, err := literal.Rewrite(printed.Bytes(), w)
	if err != nil {
		return Artifact{}, err
	}

	name := OutputName(tmpl.Name, w)
	path := OutputPath(name, tmpl.Kind)
	header, err := o.header.RenderHeader(template.HeaderData{
		Template: tmpl.Name,
		Width:    int(w),
		Type:     target,
		Output:   path,
		Package:  file.Name.Name,
	})
	if err != nil {
		return Artifact{}, err
	}

	var out bytes.Buffer
	out.WriteString(header)
	out.WriteString("\n")
	out.Write(code)
	formatted, err := format.Source(out.Bytes())
	if err != nil {
		return Artifact{}, fmt.Errorf("format %s: %w", path, err)
	}

	fields := []zap.Field{
		zap.String("template", tmpl.Name),
		zap.Int("width", int(w)),
		zap.String("artifact", path),
		zap.Int("renames", result.Renamed.Total()),
		zap.Int("retypes", result.Retyped.Total()),
		zap.Int("literals", stats.Total()),
	}
	if result.Leftovers > 0 {
		o.logger.Warn("placeholder type left outside type positions", append(fields, zap.Int("leftovers", result.Leftovers))...)
	} else {
		o.logger.Debug("instantiated template", fields...)
	}

	return Artifact{
		Name:     name,
		Path:     path,
		Template: tmpl.Name,
		Width:    w,
		Kind:     tmpl.Kind,
		Code:     formatted,
		Renames:  result.Renamed.Total(),
		Literals: stats.Total(),
	}, nil
}
