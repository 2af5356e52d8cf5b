package blitmask

// Mask is satisfied by every generated BlitMask width.
type Mask[M any] interface {
	comparable
	Len() int
	Raw() uint64
	fromRaw(uint64) M
}

// Convert returns from's bit pattern in the To width. Converting to a
// narrower mask drops the high bits; converting to a wider one zero-extends.
//
//	wide := blitmask.Convert[blitmask.BlitMask64](blitmask.Everything8) // 0xFF
func Convert[To Mask[To], From Mask[From]](from From) To {
	var to To
	return to.fromRaw(from.Raw())
}
