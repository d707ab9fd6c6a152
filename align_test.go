package osunits

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlignUp(t *testing.T) {
	tests := []struct {
		name string
		b    Bytes
		want Bytes
	}{
		{"zero", ZeroBytes, ZeroBytes},
		{"one byte", NewBytes(1), NewBytes(4096)},
		{"just below boundary", NewBytes(4095), NewBytes(4096)},
		{"on boundary", NewBytes(4096), NewBytes(4096)},
		{"just past boundary", NewBytes(4097), NewBytes(8192)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.b.AlignUp(Size4KiB))
		})
	}

	t.Run("overflow panics", func(t *testing.T) {
		assert.Panics(t, func() { NewBytes(math.MaxUint64).AlignUp(Size4KiB) })
	})

	t.Run("zero page size panics", func(t *testing.T) {
		assert.Panics(t, func() { NewBytes(1).AlignUp(0) })
	})
}

func TestAlignDown(t *testing.T) {
	assert.Equal(t, ZeroBytes, NewBytes(4095).AlignDown(Size4KiB))
	assert.Equal(t, NewBytes(4096), NewBytes(4096).AlignDown(Size4KiB))
	assert.Equal(t, NewBytes(4096), NewBytes(8191).AlignDown(Size4KiB))

	assert.Panics(t, func() { NewBytes(1).AlignDown(0) })
}

func TestIsAligned(t *testing.T) {
	assert.True(t, ZeroBytes.IsAligned(Size4KiB))
	assert.True(t, NewBytes(8192).IsAligned(Size4KiB))
	assert.False(t, NewBytes(8191).IsAligned(Size4KiB))

	assert.Panics(t, func() { NewBytes(1).IsAligned(0) })
}

func TestAlignmentBrackets(t *testing.T) {
	// AlignDown(b) <= b <= AlignUp(b), and both results are aligned.
	for _, v := range []uint64{0, 1, 4095, 4096, 4097, 314159, 1 << 40} {
		b := NewBytes(v)
		down, up := b.AlignDown(Size4KiB), b.AlignUp(Size4KiB)

		assert.LessOrEqual(t, down.Uint64(), b.Uint64())
		assert.GreaterOrEqual(t, up.Uint64(), b.Uint64())
		assert.True(t, down.IsAligned(Size4KiB))
		assert.True(t, up.IsAligned(Size4KiB))
	}
}
