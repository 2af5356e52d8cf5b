//go:build blitmask_template

//blitgen:template BlitMaskTemplate

package blitmask

import (
	"fmt"
	"math/bits"
	"reflect"
	"strconv"
	"strings"
	"unsafe"

	"golang.org/x/text/message"
)

// BlitMaskTemplate is a set of independent flags stored in a single uint32,
// one flag per bit position. Its only state is the uint32 itself, so the
// memory layout is that of a uint32 and the value can be handed to code that
// expects the raw integer. The zero value has no flags set.
//
// Flag positions must lie in [0, Len()). Methods taking a position panic with
// an *OutOfRangeError otherwise.
type BlitMaskTemplate struct {
	value uint32
}

// NewBlitMaskTemplate wraps value verbatim.
func NewBlitMaskTemplate(value uint32) BlitMaskTemplate {
	return BlitMaskTemplate{value: value}
}

// BlitMaskTemplateFromFlags returns a mask with every listed flag set and all
// other flags clear.
func BlitMaskTemplateFromFlags(flags ...int) BlitMaskTemplate {
	m := BlitMaskTemplate{value: BlitMaskConstantsTemplate{}.Zero()}
	for _, flag := range flags {
		m.value |= m.bit(flag)
	}
	return m
}

// BlitMaskTemplateFromValue wraps a value of any type whose underlying type is
// uint32, such as a typed flag enum, without an explicit conversion.
func BlitMaskTemplateFromValue[T ~uint32](value T) BlitMaskTemplate {
	return BlitMaskTemplate{value: uint32(value)}
}

// BlitMaskTemplateAll returns a mask with every flag set when all is true and
// no flag set otherwise.
func BlitMaskTemplateAll(all bool) BlitMaskTemplate {
	var m BlitMaskTemplate
	m.SetAllFlags(all)
	return m
}

// Len returns the number of flags the mask holds.
func (m BlitMaskTemplate) Len() int {
	return int(unsafe.Sizeof(m.value)) * 8
}

// UnderlyingType returns the type of the backing integer.
func (BlitMaskTemplate) UnderlyingType() reflect.Type {
	return reflect.TypeOf(uint32(0))
}

// ToUint32 returns the raw uint32 value.
func (m BlitMaskTemplate) ToUint32() uint32 {
	return m.value
}

// Raw returns the value zero-extended to 64 bits.
func (m BlitMaskTemplate) Raw() uint64 {
	return uint64(m.value)
}

func (BlitMaskTemplate) fromRaw(raw uint64) BlitMaskTemplate {
	return BlitMaskTemplate{value: uint32(raw)}
}

func (m BlitMaskTemplate) bit(flag int) uint32 {
	checkFlag(flag, m.Len())
	return BlitMaskConstantsTemplate{}.FirstBit() << uint(flag)
}

// HasFlag reports whether flag is set.
func (m BlitMaskTemplate) HasFlag(flag int) bool {
	return m.value&m.bit(flag) != BlitMaskConstantsTemplate{}.Zero()
}

// SetFlag sets flag.
func (m *BlitMaskTemplate) SetFlag(flag int) {
	m.value |= m.bit(flag)
}

// ClearFlag clears flag.
func (m *BlitMaskTemplate) ClearFlag(flag int) {
	m.value &^= m.bit(flag)
}

// ToggleFlag flips flag.
func (m *BlitMaskTemplate) ToggleFlag(flag int) {
	m.value ^= m.bit(flag)
}

// SetFlags sets every listed flag.
func (m *BlitMaskTemplate) SetFlags(flags ...int) {
	*m = m.Or(BlitMaskTemplateFromFlags(flags...))
}

// ClearFlags clears every listed flag.
func (m *BlitMaskTemplate) ClearFlags(flags ...int) {
	*m = m.AndNot(BlitMaskTemplateFromFlags(flags...))
}

// ToggleFlags flips every listed flag.
func (m *BlitMaskTemplate) ToggleFlags(flags ...int) {
	*m = m.Xor(BlitMaskTemplateFromFlags(flags...))
}

// HasAnyFlag reports whether at least one bit of mask is set.
func (m BlitMaskTemplate) HasAnyFlag(mask uint32) bool {
	return m.value&mask != BlitMaskConstantsTemplate{}.Zero()
}

// HasAllFlags reports whether every bit of mask is set.
func (m BlitMaskTemplate) HasAllFlags(mask uint32) bool {
	return m.value&mask == mask
}

// SetAllFlags sets every flag when set is true and clears every flag
// otherwise.
func (m *BlitMaskTemplate) SetAllFlags(set bool) {
	if set {
		m.value = BlitMaskConstantsTemplate{}.Complement()
		return
	}
	m.value = BlitMaskConstantsTemplate{}.Zero()
}

// Count returns the number of set flags.
func (m BlitMaskTemplate) Count() int {
	return bits.OnesCount64(m.Raw())
}

// IsZero reports whether no flag is set.
func (m BlitMaskTemplate) IsZero() bool {
	return m.value == BlitMaskConstantsTemplate{}.Zero()
}

// Or returns the flags set in either mask.
func (m BlitMaskTemplate) Or(other BlitMaskTemplate) BlitMaskTemplate {
	return BlitMaskTemplate{value: m.value | other.value}
}

// Add is Or under its additive name.
func (m BlitMaskTemplate) Add(other BlitMaskTemplate) BlitMaskTemplate {
	return m.Or(other)
}

// AndNot returns m without the flags set in other.
func (m BlitMaskTemplate) AndNot(other BlitMaskTemplate) BlitMaskTemplate {
	return BlitMaskTemplate{value: m.value &^ other.value}
}

// Xor returns the flags set in exactly one of the masks.
func (m BlitMaskTemplate) Xor(other BlitMaskTemplate) BlitMaskTemplate {
	return BlitMaskTemplate{value: m.value ^ other.value}
}

// Not returns the inverted mask.
func (m BlitMaskTemplate) Not() BlitMaskTemplate {
	return BlitMaskTemplate{value: ^m.value}
}

// Equal reports whether both masks hold the same bit pattern.
func (m BlitMaskTemplate) Equal(other BlitMaskTemplate) bool {
	return m.value == other.value
}

// String returns the decimal value.
func (m BlitMaskTemplate) String() string {
	return strconv.FormatUint(uint64(m.value), 10)
}

// Format implements fmt.Formatter by formatting the raw value; %v and %s
// print it in decimal.
func (m BlitMaskTemplate) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		verb = 'd'
	}
	fmt.Fprintf(f, fmt.FormatString(f, verb), m.value)
}

// Text formats the raw value with an fmt verb string such as "%08b". A blank
// format means "%d". A nil printer formats locale-invariantly; otherwise the
// printer's locale applies.
func (m BlitMaskTemplate) Text(format string, p *message.Printer) string {
	if strings.TrimSpace(format) == "" {
		format = "%d"
	}
	if p == nil {
		return fmt.Sprintf(format, m.value)
	}
	return p.Sprintf(format, m.value)
}
