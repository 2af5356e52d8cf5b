// Package rewrite retargets a parsed Go template to one container width. It
// renames the canonical identifiers listed in a RenameMap wherever they are
// declared or referenced, swaps the placeholder storage type in type
// positions, and keeps doc comments in step with the new names. Renames are
// whole-identifier only; nothing outside the table is touched.
package rewrite
