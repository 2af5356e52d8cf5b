// Package template defines the renderer seam used to produce the banner at the
// top of every generated file, and the data that banner is rendered from.
package template
