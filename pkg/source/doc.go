// Package source describes where BlitMask templates come from and the loader
// contract that turns a Source into a Template ready for instantiation.
package source
