package rewrite

import (
	"errors"
	"fmt"
	"go/token"
	"strings"

	"github.com/goliatone/go-blitmask/pkg/widths"
)

// WidthPlaceholder is substituted with the decimal width in name patterns.
const WidthPlaceholder = "{width}"

// Name is one entry of the canonical-name table: the identifier a template
// uses and the pattern its per-width replacement is built from.
type Name struct {
	Canonical string `json:"canonical" yaml:"canonical"`
	Pattern   string `json:"pattern" yaml:"pattern"`
}

// DefaultNames is the canonical-name table for the BlitMask templates. Order
// matters only for lookups that could match more than one entry, which the
// whole-identifier rule rules out in practice.
func DefaultNames() []Name {
	return []Name{
		{Canonical: "BlitMaskConstantsTemplate", Pattern: "BlitMaskConstants{width}"},
		{Canonical: "BlitMaskExtensionsTemplate", Pattern: "BlitMaskExtensions{width}"},
		{Canonical: "BlitMaskUnitTestTemplate", Pattern: "BlitMaskUnitTests{width}"},
		{Canonical: "TestBlitMaskUnitTestTemplate", Pattern: "TestBlitMaskUnitTests{width}"},
		{Canonical: "NewBlitMaskTemplate", Pattern: "NewBlitMask{width}"},
		{Canonical: "BlitMaskTemplateFromFlags", Pattern: "BlitMask{width}FromFlags"},
		{Canonical: "BlitMaskTemplateFromValue", Pattern: "BlitMask{width}FromValue"},
		{Canonical: "BlitMaskTemplateAll", Pattern: "BlitMask{width}All"},
		{Canonical: "BlitMaskTemplate", Pattern: "BlitMask{width}"},
		{Canonical: "ToUint32", Pattern: "ToUint{width}"},
		{Canonical: "None", Pattern: "None{width}"},
		{Canonical: "Everything", Pattern: "Everything{width}"},
	}
}

// Pair is a single resolved rename.
type Pair struct {
	Old string
	New string
}

// RenameMap is an ordered old -> new identifier mapping with unique keys.
type RenameMap struct {
	pairs []Pair
	index map[string]int
}

// NewRenameMap builds a RenameMap from explicit pairs. Keys must be unique
// valid identifiers.
func NewRenameMap(pairs ...Pair) (*RenameMap, error) {
	m := &RenameMap{index: make(map[string]int, len(pairs))}
	for _, p := range pairs {
		if err := m.add(p); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// BuildRenameMap resolves a canonical-name table for one width.
func BuildRenameMap(names []Name, w widths.Width) (*RenameMap, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	m := &RenameMap{index: make(map[string]int, len(names))}
	for _, n := range names {
		pattern := strings.TrimSpace(n.Pattern)
		if !strings.Contains(pattern, WidthPlaceholder) {
			return nil, fmt.Errorf("rewrite: pattern %q for %q has no %s placeholder", n.Pattern, n.Canonical, WidthPlaceholder)
		}
		if err := m.add(Pair{
			Old: strings.TrimSpace(n.Canonical),
			New: strings.ReplaceAll(pattern, WidthPlaceholder, w.String()),
		}); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *RenameMap) add(p Pair) error {
	if !token.IsIdentifier(p.Old) {
		return fmt.Errorf("rewrite: %q is not a valid identifier", p.Old)
	}
	if !token.IsIdentifier(p.New) {
		return fmt.Errorf("rewrite: replacement %q for %q is not a valid identifier", p.New, p.Old)
	}
	if _, exists := m.index[p.Old]; exists {
		return fmt.Errorf("rewrite: duplicate rename key %q", p.Old)
	}
	m.index[p.Old] = len(m.pairs)
	m.pairs = append(m.pairs, p)
	return nil
}

// Lookup returns the replacement for an identifier.
func (m *RenameMap) Lookup(name string) (string, bool) {
	if m == nil {
		return "", false
	}
	i, ok := m.index[name]
	if !ok {
		return "", false
	}
	return m.pairs[i].New, true
}

// Pairs returns the renames in insertion order.
func (m *RenameMap) Pairs() []Pair {
	if m == nil {
		return nil
	}
	return append([]Pair(nil), m.pairs...)
}

// Len reports the number of renames.
func (m *RenameMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.pairs)
}

// ErrMissingRenameTarget reports a canonical name a template was expected to
// declare but never did.
var ErrMissingRenameTarget = errors.New("rewrite: missing rename target")
