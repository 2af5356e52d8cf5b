package orchestrator

import (
	"github.com/goliatone/go-blitmask/pkg/source"
	"github.com/goliatone/go-blitmask/pkg/widths"
)

// Artifact is one generated source file.
type Artifact struct {
	// Name is the derived artifact name, e.g. BlitMask16.
	Name string
	// Path is the file name the artifact should be written to.
	Path     string
	Template string
	Width    widths.Width
	Kind     source.Kind
	Code     []byte
	// Renames counts rewritten identifiers, comments included.
	Renames int
	// Literals counts replaced canonical literals.
	Literals int
}

// Batch is the complete output of one Generate call, ordered by template
// then width.
type Batch struct {
	Artifacts []Artifact
}

// Len returns the number of artifacts.
func (b Batch) Len() int {
	return len(b.Artifacts)
}

// Paths lists the artifact paths in batch order.
func (b Batch) Paths() []string {
	paths := make([]string, 0, len(b.Artifacts))
	for _, a := range b.Artifacts {
		paths = append(paths, a.Path)
	}
	return paths
}

// Lookup returns the artifact written to path.
func (b Batch) Lookup(path string) (Artifact, bool) {
	for _, a := range b.Artifacts {
		if a.Path == path {
			return a, true
		}
	}
	return Artifact{}, false
}

// Files maps artifact paths to their code.
func (b Batch) Files() map[string][]byte {
	files := make(map[string][]byte, len(b.Artifacts))
	for _, a := range b.Artifacts {
		files[a.Path] = a.Code
	}
	return files
}
