package osunits

import "fmt"

// AlignUp rounds b up to the next multiple of ps. Aligned input is returned
// unchanged. Panics when ps is zero or the aligned value does not fit in
// 64 bits.
func (b Bytes) AlignUp(ps PageSize) Bytes {
	return b.Pages(ps).Bytes(ps)
}

// AlignDown rounds b down to the previous multiple of ps. Aligned input is
// returned unchanged. Panics when ps is zero.
func (b Bytes) AlignDown(ps PageSize) Bytes {
	if ps == 0 {
		panic(fmt.Errorf("align %v: %w", b, ErrZeroPageSize))
	}
	return b - b%Bytes(ps)
}

// IsAligned reports whether b is a whole multiple of ps. Panics when ps is
// zero.
func (b Bytes) IsAligned(ps PageSize) bool {
	if ps == 0 {
		panic(fmt.Errorf("align %v: %w", b, ErrZeroPageSize))
	}
	return b%Bytes(ps) == 0
}
