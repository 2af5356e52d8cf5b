// Package widths holds the closed table of supported container widths: the Go
// storage type, the conversion method name and the literal spellings each
// width substitutes for the canonical 32-bit template forms.
package widths
