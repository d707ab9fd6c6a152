package osunits

import (
	"cmp"
	"fmt"

	"github.com/hupe1980/osunits/internal/hash"
)

// Bytes is a quantity of memory expressed in bytes.
//
// Bytes is an immutable value type: every operation returns a new value.
// The magnitude is a uint64 regardless of platform, so the representable
// range is identical everywhere.
type Bytes uint64

// ZeroBytes is the byte quantity of magnitude 0.
const ZeroBytes Bytes = 0

// Common binary sizes.
const (
	KiB Bytes = 1 << 10
	MiB Bytes = 1 << 20
	GiB Bytes = 1 << 30
)

// NewBytes wraps a raw magnitude in a byte quantity.
func NewBytes(v uint64) Bytes {
	return Bytes(v)
}

// Uint64 returns the raw magnitude.
func (b Bytes) Uint64() uint64 {
	return uint64(b)
}

// Add returns b + o. Panics on overflow.
func (b Bytes) Add(o Bytes) Bytes {
	v, err := b.CheckedAdd(o)
	if err != nil {
		panic(err)
	}
	return v
}

// Sub returns b - o. Panics when o > b: magnitudes are unsigned and
// underflow never wraps around.
func (b Bytes) Sub(o Bytes) Bytes {
	v, err := b.CheckedSub(o)
	if err != nil {
		panic(err)
	}
	return v
}

// Mul scales b by a dimensionless factor n. Panics on overflow.
//
// There is intentionally no Bytes-by-Bytes multiplication: the result
// would be an unmodeled squared unit.
func (b Bytes) Mul(n uint64) Bytes {
	v, err := b.CheckedMul(n)
	if err != nil {
		panic(err)
	}
	return v
}

// Div scales b down by a dimensionless divisor n, truncating toward zero.
// Panics when n is zero.
func (b Bytes) Div(n uint64) Bytes {
	v, err := b.CheckedDiv(n)
	if err != nil {
		panic(err)
	}
	return v
}

// Pages converts the byte quantity to the number of pages of size ps needed
// to hold it, rounding up: a partially filled page still occupies a whole
// page. Panics when ps is zero.
func (b Bytes) Pages(ps PageSize) Pages {
	p, err := b.CheckedPages(ps)
	if err != nil {
		panic(err)
	}
	return p
}

// CheckedPages is the non-panicking variant of Pages.
func (b Bytes) CheckedPages(ps PageSize) (Pages, error) {
	if ps == 0 {
		return 0, fmt.Errorf("%v to pages: %w", b, ErrZeroPageSize)
	}
	// Divide before rounding so the computation cannot overflow, unlike
	// the textbook (b + ps - 1) / ps.
	n := uint64(b) / uint64(ps)
	if uint64(b)%uint64(ps) != 0 {
		n++
	}
	return Pages(n), nil
}

// Cmp compares two byte quantities by magnitude. The result is -1 when
// b < o, 0 when b == o, and +1 when b > o.
func (b Bytes) Cmp(o Bytes) int {
	return cmp.Compare(uint64(b), uint64(o))
}

// Hash returns a deterministic digest of the magnitude. Equal quantities
// always hash equal, and the digest is stable across platforms.
func (b Bytes) Hash() uint32 {
	return hash.Magnitude(uint64(b))
}

// String renders the quantity for diagnostics, e.g. "314159 bytes".
// It is not a wire format.
func (b Bytes) String() string {
	if b == 1 {
		return "1 byte"
	}
	return fmt.Sprintf("%d bytes", uint64(b))
}
