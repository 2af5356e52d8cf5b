// Package blitmask provides fixed-width bit-flag containers.
//
// BlitMask8, BlitMask16, BlitMask32 and BlitMask64 are generated from the
// single template in the templates directory and differ only in their
// storage integer, names and literal constants. Each is a struct holding one
// unsigned integer, so it has the size and alignment of that integer and is
// comparable with ==.
//
//	m := blitmask.BlitMask32FromFlags(0, 1, 3)
//	m.SetFlag(7)
//	m.HasFlag(3) // true
//	m.ToUint32() // 139
//
// Bit positions outside the mask's range panic with an *OutOfRangeError.
// Convert moves a bit pattern between widths, truncating or zero-extending
// as needed.
package blitmask
