// Package literal retargets the width-dependent integer literals of an
// already renamed template. It works on serialized source text but tokenises
// it with go/scanner, so only integer literals spelled exactly like a
// canonical form are replaced; comments, strings and longer literals that
// share digits are left alone.
package literal

import (
	"bytes"
	"fmt"
	"go/scanner"
	"go/token"

	"github.com/goliatone/go-blitmask/pkg/widths"
)

// Stats counts replacements per literal class.
type Stats map[widths.LiteralClass]int

// Total returns the number of replaced literals.
func (s Stats) Total() int {
	total := 0
	for _, n := range s {
		total += n
	}
	return total
}

// Rewrite replaces every canonical literal in src with the spelling for w.
func Rewrite(src []byte, w widths.Width) ([]byte, Stats, error) {
	replacements, err := w.Literals()
	if err != nil {
		return nil, nil, err
	}
	classes := make(map[string]widths.LiteralClass, len(replacements))
	for _, class := range widths.Classes() {
		classes[class.Canonical()] = class
	}

	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(src))

	var errs scanner.ErrorList
	var s scanner.Scanner
	s.Init(file, src, func(pos token.Position, msg string) {
		errs.Add(pos, msg)
	}, scanner.ScanComments)

	var (
		out   bytes.Buffer
		last  int
		stats = make(Stats)
	)
	out.Grow(len(src))

	for {
		pos, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}
		if tok != token.INT {
			continue
		}
		class, ok := classes[lit]
		if !ok {
			continue
		}
		offset := file.Offset(pos)
		out.Write(src[last:offset])
		out.WriteString(replacements[lit])
		last = offset + len(lit)
		stats[class]++
	}
	if errs.Len() > 0 {
		errs.Sort()
		return nil, nil, fmt.Errorf("literal: scan source: %w", errs.Err())
	}
	out.Write(src[last:])

	return out.Bytes(), stats, nil
}

// Foreign reports literal spellings in src that belong to a width other than
// w for the same class. A correct rewrite yields an empty result.
func Foreign(src []byte, w widths.Width) ([]string, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	own, err := w.Literals()
	if err != nil {
		return nil, err
	}
	ownSet := make(map[string]struct{}, len(own))
	for _, lit := range own {
		ownSet[lit] = struct{}{}
	}

	foreign := make(map[string]struct{})
	for _, other := range widths.Supported() {
		if other == w {
			continue
		}
		lits, err := other.Literals()
		if err != nil {
			return nil, err
		}
		for _, lit := range lits {
			if _, mine := ownSet[lit]; !mine {
				foreign[lit] = struct{}{}
			}
		}
	}

	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(src))
	var s scanner.Scanner
	s.Init(file, src, nil, 0)

	var found []string
	for {
		_, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}
		if tok != token.INT {
			continue
		}
		if _, bad := foreign[lit]; bad {
			found = append(found, lit)
		}
	}
	return found, nil
}
