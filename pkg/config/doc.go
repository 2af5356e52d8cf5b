// Package config loads blitgen.yaml, the project file describing which
// templates to instantiate, for which widths and where the output goes.
// Files may be written in YAML or JSON.
package config
