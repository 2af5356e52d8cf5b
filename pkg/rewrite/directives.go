package rewrite

import (
	"go/ast"
	"strings"
)

// DirectivePrefix introduces blitgen directives inside templates.
const DirectivePrefix = "//blitgen:"

// TemplateDirective returns the value of a //blitgen:template directive in
// src, or "" when the template does not declare one.
func TemplateDirective(src []byte) string {
	for _, line := range strings.Split(string(src), "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, DirectivePrefix+"template") {
			continue
		}
		fields := strings.Fields(strings.TrimPrefix(trimmed, DirectivePrefix+"template"))
		if len(fields) > 0 {
			return fields[0]
		}
	}
	return ""
}

// StripDirectives removes build constraints and blitgen directives so the
// generated output compiles under the default build. It returns the number of
// comment lines removed.
func StripDirectives(file *ast.File) int {
	if file == nil {
		return 0
	}
	removed := 0
	kept := file.Comments[:0]
	for _, group := range file.Comments {
		list := group.List[:0]
		for _, c := range group.List {
			if isDirective(c.Text) {
				removed++
				continue
			}
			list = append(list, c)
		}
		group.List = list
		if len(group.List) == 0 {
			if file.Doc == group {
				file.Doc = nil
			}
			continue
		}
		kept = append(kept, group)
	}
	file.Comments = kept
	return removed
}

func isDirective(text string) bool {
	return strings.HasPrefix(text, "//go:build") ||
		strings.HasPrefix(text, "// +build") ||
		strings.HasPrefix(text, DirectivePrefix)
}
