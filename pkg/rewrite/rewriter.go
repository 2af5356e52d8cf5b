package rewrite

import (
	"fmt"
	"go/ast"
	"go/token"
	"regexp"
	"sort"
	"strings"
)

// Role is the syntactic position an identifier was rewritten in.
type Role int

// Rename roles.
const (
	RoleTypeDecl Role = iota + 1
	RoleFuncDecl
	RoleMethodDecl
	RoleValueDecl
	RoleSelector
	RoleReference
	RoleComment
)

// Storage type roles.
const (
	RoleResultType Role = iota + 100
	RoleParamType
	RoleFieldType
	RoleValueType
	RoleConversion
	RoleTypeArgument
	RoleUnderlying
	RoleCompositeType
	RoleConstraint
)

var roleNames = map[Role]string{
	RoleTypeDecl:      "type-decl",
	RoleFuncDecl:      "func-decl",
	RoleMethodDecl:    "method-decl",
	RoleValueDecl:     "value-decl",
	RoleSelector:      "selector",
	RoleReference:     "reference",
	RoleComment:       "comment",
	RoleResultType:    "result-type",
	RoleParamType:     "param-type",
	RoleFieldType:     "field-type",
	RoleValueType:     "value-type",
	RoleConversion:    "conversion",
	RoleTypeArgument:  "type-argument",
	RoleUnderlying:    "underlying-type",
	RoleCompositeType: "composite-type",
	RoleConstraint:    "constraint",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("role(%d)", int(r))
}

// RenameRoles lists the syntactic roles a canonical name can be declared or
// referenced in. A rename over a template that uses every role is complete
// only once each of them has been rewritten.
func RenameRoles() []Role {
	return []Role{RoleTypeDecl, RoleFuncDecl, RoleMethodDecl, RoleValueDecl, RoleSelector, RoleReference}
}

// TypeRoles lists the positions the placeholder storage type is swapped in.
func TypeRoles() []Role {
	return []Role{RoleResultType, RoleParamType, RoleFieldType, RoleValueType, RoleConversion, RoleTypeArgument, RoleUnderlying, RoleCompositeType, RoleConstraint}
}

func isDeclRole(r Role) bool {
	switch r {
	case RoleTypeDecl, RoleFuncDecl, RoleMethodDecl, RoleValueDecl:
		return true
	}
	return false
}

// RoleCounts tallies rewrites per role.
type RoleCounts map[Role]int

// Covers reports whether every role in roles has at least one rewrite.
func (c RoleCounts) Covers(roles ...Role) bool {
	for _, r := range roles {
		if c[r] == 0 {
			return false
		}
	}
	return true
}

// Total returns the number of rewrites.
func (c RoleCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Result summarises one rewrite pass.
type Result struct {
	Renamed   RoleCounts
	Retyped   RoleCounts
	Matched   map[string]RoleCounts
	Missing   []string
	Leftovers int
}

// Option customises a Rewriter.
type Option func(*Rewriter)

// WithRequired marks canonical names the template must declare. Names that
// never match in a declaration role are reported as missing.
func WithRequired(names ...string) Option {
	return func(r *Rewriter) {
		for _, name := range names {
			if trimmed := strings.TrimSpace(name); trimmed != "" {
				r.required = append(r.required, trimmed)
			}
		}
	}
}

// WithoutComments disables rewriting canonical names inside comments.
func WithoutComments() Option {
	return func(r *Rewriter) {
		r.comments = false
	}
}

// Rewriter applies whole-identifier renames and swaps the placeholder storage
// type on a parsed template. Identifiers are edited in place so attached
// comments and positions survive.
type Rewriter struct {
	renames     *RenameMap
	placeholder string
	target      string
	required    []string
	comments    bool
	commentExpr *regexp.Regexp
}

// New constructs a Rewriter. placeholder is the template's storage type name
// and target the type it becomes; they may be equal.
func New(renames *RenameMap, placeholder, target string, options ...Option) (*Rewriter, error) {
	if !token.IsIdentifier(placeholder) || !token.IsIdentifier(target) {
		return nil, fmt.Errorf("rewrite: invalid storage types %q -> %q", placeholder, target)
	}
	r := &Rewriter{
		renames:     renames,
		placeholder: placeholder,
		target:      target,
		comments:    true,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	for _, name := range r.required {
		if _, ok := renames.Lookup(name); !ok {
			return nil, fmt.Errorf("%w: required name %q has no rename", ErrMissingRenameTarget, name)
		}
	}
	r.commentExpr = r.buildCommentExpr()
	return r, nil
}

// Rewrite mutates file in place. A missing required name yields an error
// wrapping ErrMissingRenameTarget alongside the populated Result.
func (r *Rewriter) Rewrite(file *ast.File) (Result, error) {
	res := Result{
		Renamed: make(RoleCounts),
		Retyped: make(RoleCounts),
		Matched: make(map[string]RoleCounts),
	}
	if file == nil {
		return res, fmt.Errorf("rewrite: file is nil")
	}

	if r.placeholder != r.target {
		r.retypeFile(file, &res)
	}
	r.renameFile(file, &res)
	if r.comments {
		r.rewriteComments(file, &res)
	}

	if r.placeholder != r.target {
		ast.Inspect(file, func(n ast.Node) bool {
			if id, ok := n.(*ast.Ident); ok && id.Name == r.placeholder {
				res.Leftovers++
			}
			return true
		})
	}

	for _, name := range r.required {
		declared := false
		for role, n := range res.Matched[name] {
			if n > 0 && isDeclRole(role) {
				declared = true
				break
			}
		}
		if !declared {
			res.Missing = append(res.Missing, name)
		}
	}
	if len(res.Missing) > 0 {
		return res, fmt.Errorf("%w: %s", ErrMissingRenameTarget, strings.Join(res.Missing, ", "))
	}
	return res, nil
}

func (r *Rewriter) renameFile(file *ast.File, res *Result) {
	roles := make(map[*ast.Ident]Role)
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if d.Recv != nil {
				roles[d.Name] = RoleMethodDecl
			} else {
				roles[d.Name] = RoleFuncDecl
			}
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				switch s := spec.(type) {
				case *ast.TypeSpec:
					roles[s.Name] = RoleTypeDecl
				case *ast.ValueSpec:
					for _, name := range s.Names {
						roles[name] = RoleValueDecl
					}
				}
			}
		}
	}

	ast.Inspect(file, func(n ast.Node) bool {
		switch node := n.(type) {
		case *ast.SelectorExpr:
			if _, seen := roles[node.Sel]; !seen {
				roles[node.Sel] = RoleSelector
			}
		case *ast.DeclStmt:
			// Local declarations inside function bodies.
			if gen, ok := node.Decl.(*ast.GenDecl); ok {
				for _, spec := range gen.Specs {
					switch s := spec.(type) {
					case *ast.TypeSpec:
						roles[s.Name] = RoleTypeDecl
					case *ast.ValueSpec:
						for _, name := range s.Names {
							roles[name] = RoleValueDecl
						}
					}
				}
			}
		case *ast.Ident:
			replacement, ok := r.renames.Lookup(node.Name)
			if !ok {
				return true
			}
			role, known := roles[node]
			if !known {
				role = RoleReference
			}
			old := node.Name
			node.Name = replacement
			res.Renamed[role]++
			counts := res.Matched[old]
			if counts == nil {
				counts = make(RoleCounts)
				res.Matched[old] = counts
			}
			counts[role]++
		}
		return true
	})
}

func (r *Rewriter) retypeFile(file *ast.File, res *Result) {
	ast.Inspect(file, func(n ast.Node) bool {
		switch node := n.(type) {
		case *ast.FuncType:
			r.retypeConstraints(node.TypeParams, res)
			if node.Params != nil {
				for _, field := range node.Params.List {
					r.retype(field.Type, RoleParamType, res)
				}
			}
			if node.Results != nil {
				for _, field := range node.Results.List {
					r.retype(field.Type, RoleResultType, res)
				}
			}
		case *ast.StructType:
			if node.Fields != nil {
				for _, field := range node.Fields.List {
					r.retype(field.Type, RoleFieldType, res)
				}
			}
		case *ast.ValueSpec:
			if node.Type != nil {
				r.retype(node.Type, RoleValueType, res)
			}
		case *ast.TypeSpec:
			r.retypeConstraints(node.TypeParams, res)
			r.retype(node.Type, RoleUnderlying, res)
		case *ast.CallExpr:
			if id, ok := node.Fun.(*ast.Ident); ok && id.Name == r.placeholder && len(node.Args) == 1 {
				r.retype(id, RoleConversion, res)
			}
		case *ast.CompositeLit:
			if node.Type != nil {
				r.retype(node.Type, RoleCompositeType, res)
			}
		case *ast.IndexExpr:
			r.retype(node.Index, RoleTypeArgument, res)
		case *ast.IndexListExpr:
			for _, index := range node.Indices {
				r.retype(index, RoleTypeArgument, res)
			}
		}
		return true
	})
}

func (r *Rewriter) retypeConstraints(params *ast.FieldList, res *Result) {
	if params == nil {
		return
	}
	for _, field := range params.List {
		r.retype(field.Type, RoleConstraint, res)
	}
}

func (r *Rewriter) retype(expr ast.Expr, role Role, res *Result) {
	switch e := expr.(type) {
	case *ast.Ident:
		if e.Name == r.placeholder {
			e.Name = r.target
			res.Retyped[role]++
		}
	case *ast.StarExpr:
		r.retype(e.X, role, res)
	case *ast.ArrayType:
		r.retype(e.Elt, role, res)
	case *ast.Ellipsis:
		r.retype(e.Elt, role, res)
	case *ast.MapType:
		r.retype(e.Key, role, res)
		r.retype(e.Value, role, res)
	case *ast.ChanType:
		r.retype(e.Value, role, res)
	case *ast.ParenExpr:
		r.retype(e.X, role, res)
	case *ast.UnaryExpr:
		if e.Op == token.TILDE {
			r.retype(e.X, role, res)
		}
	case *ast.BinaryExpr:
		if e.Op == token.OR {
			r.retype(e.X, role, res)
			r.retype(e.Y, role, res)
		}
	}
}

func (r *Rewriter) buildCommentExpr() *regexp.Regexp {
	words := make([]string, 0, r.renames.Len()+1)
	for _, p := range r.renames.Pairs() {
		words = append(words, regexp.QuoteMeta(p.Old))
	}
	if r.placeholder != r.target {
		words = append(words, regexp.QuoteMeta(r.placeholder))
	}
	if len(words) == 0 {
		return nil
	}
	sort.SliceStable(words, func(i, j int) bool { return len(words[i]) > len(words[j]) })
	return regexp.MustCompile(`\b(?:` + strings.Join(words, "|") + `)\b`)
}

// rewriteComments renames canonical names in comment text. Names that read
// as an ordinary word (None, Everything) are only rewritten where they refer
// to the identifier: inside a [Name] doc link, or as the first word of the
// doc comment on the declaration of that name.
func (r *Rewriter) rewriteComments(file *ast.File, res *Result) {
	if r.commentExpr == nil {
		return
	}
	leads := docLeads(file)
	for _, group := range file.Comments {
		declared := leads[group]
		for i, c := range group.List {
			c.Text = r.rewriteComment(c.Text, i == 0, declared, res)
		}
	}
}

func (r *Rewriter) rewriteComment(text string, first bool, declared map[string]bool, res *Result) string {
	locs := r.commentExpr.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return text
	}
	var b strings.Builder
	last := 0
	for _, loc := range locs {
		word := text[loc[0]:loc[1]]
		replacement, ok := r.replacement(word)
		if !ok {
			continue
		}
		if isPlainWord(word) && !isDocLink(text, loc) && !(first && declared[replacement] && isLeadWord(text, loc[0])) {
			continue
		}
		b.WriteString(text[last:loc[0]])
		b.WriteString(replacement)
		last = loc[1]
		res.Renamed[RoleComment]++
	}
	b.WriteString(text[last:])
	return b.String()
}

func (r *Rewriter) replacement(word string) (string, bool) {
	if word == r.placeholder && r.placeholder != r.target {
		return r.target, true
	}
	return r.renames.Lookup(word)
}

// docLeads maps each doc comment group to the names of the declarations it
// documents, as they are named after renaming.
func docLeads(file *ast.File) map[*ast.CommentGroup]map[string]bool {
	leads := make(map[*ast.CommentGroup]map[string]bool)
	add := func(doc *ast.CommentGroup, names ...*ast.Ident) {
		if doc == nil {
			return
		}
		set := leads[doc]
		if set == nil {
			set = make(map[string]bool)
			leads[doc] = set
		}
		for _, name := range names {
			set[name.Name] = true
		}
	}
	ast.Inspect(file, func(n ast.Node) bool {
		switch d := n.(type) {
		case *ast.FuncDecl:
			add(d.Doc, d.Name)
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				switch s := spec.(type) {
				case *ast.TypeSpec:
					add(d.Doc, s.Name)
				case *ast.ValueSpec:
					add(d.Doc, s.Names...)
				}
			}
		case *ast.TypeSpec:
			add(d.Doc, d.Name)
		case *ast.ValueSpec:
			add(d.Doc, d.Names...)
		case *ast.Field:
			add(d.Doc, d.Names...)
		}
		return true
	})
	return leads
}

// isPlainWord reports a capitalised single word such as None.
func isPlainWord(word string) bool {
	if len(word) < 2 || word[0] < 'A' || word[0] > 'Z' {
		return false
	}
	for i := 1; i < len(word); i++ {
		if word[i] < 'a' || word[i] > 'z' {
			return false
		}
	}
	return true
}

func isDocLink(text string, loc []int) bool {
	return loc[0] > 0 && text[loc[0]-1] == '[' && loc[1] < len(text) && text[loc[1]] == ']'
}

func isLeadWord(text string, start int) bool {
	prefix := strings.TrimPrefix(strings.TrimPrefix(text[:start], "//"), "/*")
	return strings.TrimSpace(prefix) == ""
}
