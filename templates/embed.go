// Package templates embeds the default BlitMask templates. Each file is Go
// source written against the uint32 placeholder and excluded from normal
// builds by the blitmask_template constraint.
package templates

import (
	"embed"
	"io/fs"
)

//go:embed *.tmpl.go
var files embed.FS

// FS returns the embedded templates.
func FS() fs.FS {
	return files
}
