//go:build blitmask_template

//blitgen:template BlitMaskExtensionsTemplate

package blitmask

// BlitMaskExtensionsTemplate exposes the flag operations of BlitMaskTemplate
// as functions over an explicit mask argument, for call sites that hold the
// operations as values. Read operations take the mask by value; mutating
// operations take a pointer and change it in place.
type BlitMaskExtensionsTemplate struct{}

func (BlitMaskExtensionsTemplate) HasFlag(mask BlitMaskTemplate, flag int) bool {
	return mask.HasFlag(flag)
}

func (BlitMaskExtensionsTemplate) SetFlag(mask *BlitMaskTemplate, flag int) {
	mask.SetFlag(flag)
}

func (BlitMaskExtensionsTemplate) ClearFlag(mask *BlitMaskTemplate, flag int) {
	mask.ClearFlag(flag)
}

func (BlitMaskExtensionsTemplate) ToggleFlag(mask *BlitMaskTemplate, flag int) {
	mask.ToggleFlag(flag)
}

func (BlitMaskExtensionsTemplate) SetFlags(mask *BlitMaskTemplate, flags ...int) {
	mask.SetFlags(flags...)
}

func (BlitMaskExtensionsTemplate) ClearFlags(mask *BlitMaskTemplate, flags ...int) {
	mask.ClearFlags(flags...)
}

func (BlitMaskExtensionsTemplate) ToggleFlags(mask *BlitMaskTemplate, flags ...int) {
	mask.ToggleFlags(flags...)
}

func (BlitMaskExtensionsTemplate) HasAnyFlag(mask BlitMaskTemplate, flags uint32) bool {
	return mask.HasAnyFlag(flags)
}

func (BlitMaskExtensionsTemplate) HasAllFlags(mask BlitMaskTemplate, flags uint32) bool {
	return mask.HasAllFlags(flags)
}

func (BlitMaskExtensionsTemplate) SetAllFlags(mask *BlitMaskTemplate, set bool) {
	mask.SetAllFlags(set)
}
