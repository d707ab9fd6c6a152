package osunits

import (
	"fmt"
	"math/bits"
)

// Checked arithmetic for callers that want an error instead of a panic.
// Each variant mirrors the panicking method of the same name and wraps the
// matching package sentinel, so errors.Is works against ErrOverflow,
// ErrUnderflow, and ErrZeroDivisor.

// CheckedAdd is the non-panicking variant of Add.
func (b Bytes) CheckedAdd(o Bytes) (Bytes, error) {
	sum, carry := bits.Add64(uint64(b), uint64(o), 0)
	if carry != 0 {
		return 0, fmt.Errorf("%v + %v: %w", b, o, ErrOverflow)
	}
	return Bytes(sum), nil
}

// CheckedSub is the non-panicking variant of Sub.
func (b Bytes) CheckedSub(o Bytes) (Bytes, error) {
	diff, borrow := bits.Sub64(uint64(b), uint64(o), 0)
	if borrow != 0 {
		return 0, fmt.Errorf("%v - %v: %w", b, o, ErrUnderflow)
	}
	return Bytes(diff), nil
}

// CheckedMul is the non-panicking variant of Mul.
func (b Bytes) CheckedMul(n uint64) (Bytes, error) {
	hi, lo := bits.Mul64(uint64(b), n)
	if hi != 0 {
		return 0, fmt.Errorf("%v * %d: %w", b, n, ErrOverflow)
	}
	return Bytes(lo), nil
}

// CheckedDiv is the non-panicking variant of Div.
func (b Bytes) CheckedDiv(n uint64) (Bytes, error) {
	if n == 0 {
		return 0, fmt.Errorf("%v / 0: %w", b, ErrZeroDivisor)
	}
	return Bytes(uint64(b) / n), nil
}

// CheckedAdd is the non-panicking variant of Add.
func (p Pages) CheckedAdd(o Pages) (Pages, error) {
	sum, carry := bits.Add64(uint64(p), uint64(o), 0)
	if carry != 0 {
		return 0, fmt.Errorf("%v + %v: %w", p, o, ErrOverflow)
	}
	return Pages(sum), nil
}

// CheckedSub is the non-panicking variant of Sub.
func (p Pages) CheckedSub(o Pages) (Pages, error) {
	diff, borrow := bits.Sub64(uint64(p), uint64(o), 0)
	if borrow != 0 {
		return 0, fmt.Errorf("%v - %v: %w", p, o, ErrUnderflow)
	}
	return Pages(diff), nil
}

// CheckedMul is the non-panicking variant of Mul.
func (p Pages) CheckedMul(n uint64) (Pages, error) {
	hi, lo := bits.Mul64(uint64(p), n)
	if hi != 0 {
		return 0, fmt.Errorf("%v * %d: %w", p, n, ErrOverflow)
	}
	return Pages(lo), nil
}

// CheckedDiv is the non-panicking variant of Div.
func (p Pages) CheckedDiv(n uint64) (Pages, error) {
	if n == 0 {
		return 0, fmt.Errorf("%v / 0: %w", p, ErrZeroDivisor)
	}
	return Pages(uint64(p) / n), nil
}
