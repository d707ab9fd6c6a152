package osunits

import (
	"cmp"
	"fmt"
	"math/bits"

	"github.com/hupe1980/osunits/internal/hash"
)

// Pages is a quantity of fixed-size memory pages.
//
// The page size itself is not part of the type; it is supplied at each
// conversion to or from Bytes. Pages of different sizes therefore compare
// and add freely — callers are responsible for not mixing page-size
// classes, exactly as with any other count.
type Pages uint64

// ZeroPages is the page quantity of magnitude 0.
const ZeroPages Pages = 0

// NewPages wraps a raw magnitude in a page quantity.
func NewPages(v uint64) Pages {
	return Pages(v)
}

// Uint64 returns the raw magnitude.
func (p Pages) Uint64() uint64 {
	return uint64(p)
}

// Add returns p + o. Panics on overflow.
func (p Pages) Add(o Pages) Pages {
	v, err := p.CheckedAdd(o)
	if err != nil {
		panic(err)
	}
	return v
}

// Sub returns p - o. Panics when o > p: magnitudes are unsigned and
// underflow never wraps around.
func (p Pages) Sub(o Pages) Pages {
	v, err := p.CheckedSub(o)
	if err != nil {
		panic(err)
	}
	return v
}

// Mul scales p by a dimensionless factor n. Panics on overflow.
func (p Pages) Mul(n uint64) Pages {
	v, err := p.CheckedMul(n)
	if err != nil {
		panic(err)
	}
	return v
}

// Div scales p down by a dimensionless divisor n, truncating toward zero.
// Panics when n is zero.
func (p Pages) Div(n uint64) Pages {
	v, err := p.CheckedDiv(n)
	if err != nil {
		panic(err)
	}
	return v
}

// Bytes converts the page quantity to bytes for the given page size.
// The conversion is exact. Panics on overflow or when ps is zero: a
// silently wrapped byte count is a memory-safety incident waiting to
// happen downstream.
func (p Pages) Bytes(ps PageSize) Bytes {
	b, err := p.CheckedBytes(ps)
	if err != nil {
		panic(err)
	}
	return b
}

// CheckedBytes is the non-panicking variant of Bytes.
func (p Pages) CheckedBytes(ps PageSize) (Bytes, error) {
	if ps == 0 {
		return 0, fmt.Errorf("%v to bytes: %w", p, ErrZeroPageSize)
	}
	hi, lo := bits.Mul64(uint64(p), uint64(ps))
	if hi != 0 {
		return 0, fmt.Errorf("%v of %v: %w", p, ps, ErrOverflow)
	}
	return Bytes(lo), nil
}

// Cmp compares two page quantities by magnitude. The result is -1 when
// p < o, 0 when p == o, and +1 when p > o.
func (p Pages) Cmp(o Pages) int {
	return cmp.Compare(uint64(p), uint64(o))
}

// Hash returns a deterministic digest of the magnitude. Equal quantities
// always hash equal, and the digest is stable across platforms.
func (p Pages) Hash() uint32 {
	return hash.Magnitude(uint64(p))
}

// String renders the quantity for diagnostics, e.g. "77 pages".
// It is not a wire format.
func (p Pages) String() string {
	if p == 1 {
		return "1 page"
	}
	return fmt.Sprintf("%d pages", uint64(p))
}
