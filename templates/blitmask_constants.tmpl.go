//go:build blitmask_template

//blitgen:template BlitMaskConstantsTemplate

package blitmask

// BlitMaskConstantsTemplate holds the raw uint32 values BlitMaskTemplate is
// built from. It has no state; use the zero value.
type BlitMaskConstantsTemplate struct{}

// None has no flags set.
var None = BlitMaskConstantsTemplate{}.NoneMask()

// Everything has every flag set.
var Everything = BlitMaskConstantsTemplate{}.EverythingMask()

// Zero is the uint32 with no bits set.
func (BlitMaskConstantsTemplate) Zero() uint32 {
	return 0x00000000
}

// Complement is the uint32 with every bit set.
func (BlitMaskConstantsTemplate) Complement() uint32 {
	return 0xFFFFFFFF
}

// FirstBit is the uint32 with only bit zero set.
func (BlitMaskConstantsTemplate) FirstBit() uint32 {
	return 0x00000001
}

// One is the numeric one of uint32.
func (BlitMaskConstantsTemplate) One() uint32 {
	return 0x00000001
}

// NoneMask returns a mask with no flags set.
func (c BlitMaskConstantsTemplate) NoneMask() BlitMaskTemplate {
	return NewBlitMaskTemplate(c.Zero())
}

// EverythingMask returns a mask with every flag set.
func (c BlitMaskConstantsTemplate) EverythingMask() BlitMaskTemplate {
	return NewBlitMaskTemplate(c.Complement())
}
