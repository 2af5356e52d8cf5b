// Package orchestrator instantiates BlitMask templates for a list of bit
// widths. Generate filters templates by build context, rewrites every
// (template, width) pair and returns the artifacts as one batch: either every
// artifact is returned or an error is.
package orchestrator
