package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-blitmask/pkg/rewrite"
	"github.com/goliatone/go-blitmask/pkg/widths"
)

// DefaultFileName is the config file looked up when none is named.
const DefaultFileName = "blitgen.yaml"

// Emitter names accepted in the emitter field.
const (
	EmitterDir    = "dir"
	EmitterStdout = "stdout"
	EmitterMemory = "memory"
)

// ErrNotFound reports that no config file exists where one was looked up.
var ErrNotFound = errors.New("config: no config file found")

// candidates are tried in order by Find.
var candidates = []string{DefaultFileName, "blitgen.yml", "blitgen.json"}

// File is the on-disk shape of a config file.
type File struct {
	Templates   string         `json:"templates,omitempty" yaml:"templates,omitempty"`
	Widths      []int          `json:"widths,omitempty" yaml:"widths,omitempty,flow"`
	Test        bool           `json:"test,omitempty" yaml:"test,omitempty"`
	Package     string         `json:"package,omitempty" yaml:"package,omitempty"`
	Output      string         `json:"output,omitempty" yaml:"output,omitempty"`
	Emitter     string         `json:"emitter,omitempty" yaml:"emitter,omitempty"`
	Concurrency int            `json:"concurrency,omitempty" yaml:"concurrency,omitempty"`
	Header      string         `json:"header,omitempty" yaml:"header,omitempty"`
	Names       []rewrite.Name `json:"names,omitempty" yaml:"names,omitempty"`
}

// Config is a validated configuration. Relative paths are resolved against
// the directory of the file it was loaded from.
type Config struct {
	// Templates is a directory of *.tmpl.go files. Empty means the embedded
	// templates.
	Templates   string
	Widths      []widths.Width
	Test        bool
	Package     string
	Output      string
	Emitter     string
	Concurrency int
	// Header is a header template name or inline template content. Empty
	// means the built-in banner.
	Header string
	Names  []rewrite.Name
	// Source is the file the config came from, empty for defaults.
	Source string
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Widths:      widths.Supported(),
		Output:      ".",
		Emitter:     EmitterDir,
		Concurrency: 4,
	}
}

// Load reads and validates the config file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data, path)
	if err != nil {
		return Config{}, err
	}
	return cfg.resolve(filepath.Dir(path)), nil
}

// LoadFS reads and validates a config file inside fsys. Paths are left as
// written.
func LoadFS(fsys fs.FS, name string) (Config, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", name, err)
	}
	return Parse(data, name)
}

// Find returns the first config file present in dir.
func Find(dir string) (string, error) {
	for _, name := range candidates {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w in %s", ErrNotFound, dir)
}

// Parse decodes JSON first and falls back to YAML, then applies defaults and
// validates the result.
func Parse(data []byte, source string) (Config, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Config{}, fmt.Errorf("config: file %s is empty", source)
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		file = File{}
		if yerr := yaml.Unmarshal(data, &file); yerr != nil {
			return Config{}, fmt.Errorf("config: parse %s: invalid JSON or YAML: %w", source, yerr)
		}
	}

	cfg, err := file.normalise()
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", source, err)
	}
	cfg.Source = source
	return cfg, nil
}

// Marshal renders cfg as YAML in the File shape.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg.File())
}

// File converts cfg back to its on-disk shape.
func (c Config) File() File {
	list := make([]int, 0, len(c.Widths))
	for _, w := range c.Widths {
		list = append(list, int(w))
	}
	return File{
		Templates:   c.Templates,
		Widths:      list,
		Test:        c.Test,
		Package:     c.Package,
		Output:      c.Output,
		Emitter:     c.Emitter,
		Concurrency: c.Concurrency,
		Header:      c.Header,
		Names:       append([]rewrite.Name(nil), c.Names...),
	}
}

// Validate checks widths, emitter and rename patterns.
func (c Config) Validate() error {
	if err := widths.ValidateList(c.Widths); err != nil {
		return err
	}
	switch c.Emitter {
	case EmitterDir, EmitterStdout, EmitterMemory:
	default:
		return fmt.Errorf("unknown emitter %q", c.Emitter)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be positive, got %d", c.Concurrency)
	}
	if len(c.Names) > 0 {
		if _, err := rewrite.BuildRenameMap(c.Names, widths.Placeholder); err != nil {
			return err
		}
	}
	return nil
}

func (f File) normalise() (Config, error) {
	cfg := Default()
	cfg.Templates = strings.TrimSpace(f.Templates)
	cfg.Test = f.Test
	cfg.Package = strings.TrimSpace(f.Package)
	cfg.Header = f.Header
	if out := strings.TrimSpace(f.Output); out != "" {
		cfg.Output = out
	}
	if emitter := strings.ToLower(strings.TrimSpace(f.Emitter)); emitter != "" {
		cfg.Emitter = emitter
	}
	if f.Concurrency != 0 {
		cfg.Concurrency = f.Concurrency
	}
	if len(f.Widths) > 0 {
		cfg.Widths = make([]widths.Width, 0, len(f.Widths))
		for _, w := range f.Widths {
			cfg.Widths = append(cfg.Widths, widths.Width(w))
		}
	}
	cfg.Names = append([]rewrite.Name(nil), f.Names...)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) resolve(base string) Config {
	if c.Templates != "" && !filepath.IsAbs(c.Templates) {
		c.Templates = filepath.Join(base, c.Templates)
	}
	if c.Output != "" && !filepath.IsAbs(c.Output) {
		c.Output = filepath.Join(base, c.Output)
	}
	return c
}
