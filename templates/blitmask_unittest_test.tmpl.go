//go:build blitmask_template

//blitgen:template BlitMaskUnitTestTemplate

package blitmask

import (
	"fmt"
	"reflect"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

// BlitMaskUnitTestTemplate groups the property checks for BlitMaskTemplate.
type BlitMaskUnitTestTemplate struct{}

func TestBlitMaskUnitTestTemplate(t *testing.T) {
	var suite BlitMaskUnitTestTemplate
	t.Run("Layout", suite.layout)
	t.Run("SetHasClearToggle", suite.setHasClearToggle)
	t.Run("ToggleInvolution", suite.toggleInvolution)
	t.Run("ClearIdempotent", suite.clearIdempotent)
	t.Run("SetAllFlags", suite.setAllFlags)
	t.Run("AnyAndAll", suite.anyAndAll)
	t.Run("FromFlags", suite.fromFlags)
	t.Run("FromValue", suite.fromValue)
	t.Run("BulkOperations", suite.bulkOperations)
	t.Run("Operators", suite.operators)
	t.Run("Equality", suite.equality)
	t.Run("Formatting", suite.formatting)
	t.Run("OutOfRange", suite.outOfRange)
	t.Run("Extensions", suite.extensions)
}

func (BlitMaskUnitTestTemplate) layout(t *testing.T) {
	require.Equal(t, unsafe.Sizeof(uint32(0)), unsafe.Sizeof(BlitMaskTemplate{}))
	require.Equal(t, unsafe.Alignof(uint32(0)), unsafe.Alignof(BlitMaskTemplate{}))
	require.Equal(t, int(unsafe.Sizeof(uint32(0)))*8, BlitMaskTemplate{}.Len())
}

func (BlitMaskUnitTestTemplate) setHasClearToggle(t *testing.T) {
	var m BlitMaskTemplate
	for flag := 0; flag < m.Len(); flag++ {
		require.False(t, m.HasFlag(flag))

		m.SetFlag(flag)
		require.True(t, m.HasFlag(flag))
		require.Equal(t, 1, m.Count())

		m.ClearFlag(flag)
		require.False(t, m.HasFlag(flag))

		m.ToggleFlag(flag)
		require.True(t, m.HasFlag(flag))
		m.ToggleFlag(flag)
		require.True(t, m.IsZero())
	}
}

func (BlitMaskUnitTestTemplate) toggleInvolution(t *testing.T) {
	original := BlitMaskTemplateFromFlags(0, 2, 5)
	for flag := 0; flag < original.Len(); flag++ {
		m := original
		m.ToggleFlag(flag)
		require.NotEqual(t, original, m)
		m.ToggleFlag(flag)
		require.Equal(t, original, m)
	}
}

func (BlitMaskUnitTestTemplate) clearIdempotent(t *testing.T) {
	m := BlitMaskTemplateAll(true)
	m.ClearFlag(3)
	once := m
	m.ClearFlag(3)
	require.Equal(t, once, m)
	require.False(t, m.HasFlag(3))
}

func (BlitMaskUnitTestTemplate) setAllFlags(t *testing.T) {
	var m BlitMaskTemplate
	m.SetAllFlags(true)
	require.Equal(t, BlitMaskConstantsTemplate{}.Complement(), m.ToUint32())
	require.Equal(t, Everything, m)
	require.Equal(t, m.Len(), m.Count())

	m.SetAllFlags(false)
	require.Equal(t, BlitMaskConstantsTemplate{}.Zero(), m.ToUint32())
	require.Equal(t, None, m)
	require.Equal(t, BlitMaskTemplateAll(false), m)
}

func (BlitMaskUnitTestTemplate) anyAndAll(t *testing.T) {
	m := BlitMaskTemplateFromFlags(1, 4)
	other := BlitMaskTemplateFromFlags(1, 6).ToUint32()
	both := BlitMaskTemplateFromFlags(1, 4).ToUint32()

	require.True(t, m.HasAnyFlag(other))
	require.False(t, m.HasAllFlags(other))
	require.True(t, m.HasAllFlags(both))
	require.False(t, m.HasAnyFlag(BlitMaskConstantsTemplate{}.Zero()))
	require.True(t, m.HasAllFlags(BlitMaskConstantsTemplate{}.Zero()))
}

func (BlitMaskUnitTestTemplate) fromFlags(t *testing.T) {
	m := BlitMaskTemplateFromFlags(0, 1, 3)
	require.Equal(t, uint32(11), m.ToUint32())
	require.Equal(t, uint64(11), m.Raw())
	require.Equal(t, NewBlitMaskTemplate(11), m)
	require.False(t, m.HasFlag(2))
	for flag := 4; flag < m.Len(); flag++ {
		require.False(t, m.HasFlag(flag))
	}
	require.True(t, BlitMaskTemplateFromFlags().IsZero())
	require.Equal(t, BlitMaskConstantsTemplate{}.One(), BlitMaskTemplateFromFlags(0).ToUint32())
}

func (BlitMaskUnitTestTemplate) fromValue(t *testing.T) {
	type flag uint32
	const (
		first flag = 1 << iota
		second
	)
	require.Equal(t, BlitMaskTemplateFromFlags(0, 1), BlitMaskTemplateFromValue(first|second))
	require.Equal(t, NewBlitMaskTemplate(3), BlitMaskTemplateFromValue(uint32(3)))
}

func (BlitMaskUnitTestTemplate) bulkOperations(t *testing.T) {
	m := BlitMaskTemplateFromFlags(0, 1)

	m.SetFlags(2, 3)
	require.Equal(t, BlitMaskTemplateFromFlags(0, 1, 2, 3), m)

	m.ClearFlags(0, 3)
	require.Equal(t, BlitMaskTemplateFromFlags(1, 2), m)

	m.ToggleFlags(1, 7)
	require.Equal(t, BlitMaskTemplateFromFlags(2, 7), m)
}

func (BlitMaskUnitTestTemplate) operators(t *testing.T) {
	a := BlitMaskTemplateFromFlags(0, 1)
	b := BlitMaskTemplateFromFlags(1, 2)

	require.Equal(t, BlitMaskTemplateFromFlags(0, 1, 2), a.Or(b))
	require.Equal(t, a.Or(b), a.Add(b))
	require.Equal(t, BlitMaskTemplateFromFlags(0), a.AndNot(b))
	require.Equal(t, BlitMaskTemplateFromFlags(0, 2), a.Xor(b))
	require.Equal(t, Everything, None.Not())
	require.Equal(t, a, a.Not().Not())
	require.Equal(t, BlitMaskTemplateFromFlags(0, 1), a, "operators must not mutate the receiver")
}

func (BlitMaskUnitTestTemplate) equality(t *testing.T) {
	a := BlitMaskTemplateFromFlags(2, 5)
	b := NewBlitMaskTemplate(a.ToUint32())

	require.True(t, a == b)
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(None))

	seen := map[BlitMaskTemplate]int{a: 1}
	seen[b]++
	require.Len(t, seen, 1)
	require.Equal(t, 2, seen[a])
}

func (BlitMaskUnitTestTemplate) formatting(t *testing.T) {
	m := NewBlitMaskTemplate(5)
	require.Equal(t, "5", m.String())
	require.Equal(t, "5", fmt.Sprint(m))
	require.Equal(t, "5", fmt.Sprintf("%v", m))
	require.Equal(t, "00000101", fmt.Sprintf("%08b", m))
	require.Equal(t, fmt.Sprintf("%x", Everything.ToUint32()), fmt.Sprintf("%x", Everything))
	require.Equal(t, "0x0005", m.Text("%#04x", nil))
	require.Equal(t, "5", m.Text("", nil))
	require.Equal(t, reflect.TypeOf(uint32(0)), m.UnderlyingType())
}

func (BlitMaskUnitTestTemplate) outOfRange(t *testing.T) {
	var m BlitMaskTemplate
	for _, flag := range []int{-1, m.Len(), m.Len() + 1} {
		func() {
			defer func() {
				err, ok := recover().(error)
				require.True(t, ok, "flag %d must panic with an error", flag)
				require.ErrorIs(t, err, ErrOutOfRange)
			}()
			m.SetFlag(flag)
		}()
	}
	require.True(t, m.IsZero())
}

func (BlitMaskUnitTestTemplate) extensions(t *testing.T) {
	var ext BlitMaskExtensionsTemplate
	var m BlitMaskTemplate

	ext.SetFlag(&m, 3)
	require.True(t, ext.HasFlag(m, 3))
	ext.ToggleFlag(&m, 3)
	require.False(t, ext.HasFlag(m, 3))

	ext.SetFlags(&m, 0, 1, 2)
	ext.ClearFlag(&m, 1)
	require.Equal(t, BlitMaskTemplateFromFlags(0, 2), m)
	ext.ToggleFlags(&m, 0, 4)
	ext.ClearFlags(&m, 2)
	require.Equal(t, BlitMaskTemplateFromFlags(4), m)

	require.True(t, ext.HasAnyFlag(m, BlitMaskTemplateFromFlags(4, 5).ToUint32()))
	require.False(t, ext.HasAllFlags(m, BlitMaskTemplateFromFlags(4, 5).ToUint32()))

	ext.SetAllFlags(&m, true)
	require.Equal(t, Everything, m)
}
