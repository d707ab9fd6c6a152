package osunits

import "errors"

var (
	// ErrOverflow indicates a result that does not fit in 64 bits.
	ErrOverflow = errors.New("quantity overflows 64 bits")

	// ErrUnderflow indicates subtraction of a larger quantity from a
	// smaller one. Magnitudes are unsigned and never wrap around.
	ErrUnderflow = errors.New("quantity underflow")

	// ErrZeroDivisor indicates division of a quantity by zero.
	ErrZeroDivisor = errors.New("division by zero")

	// ErrZeroPageSize indicates a conversion or alignment with a zero
	// page size. Page sizes must be positive.
	ErrZeroPageSize = errors.New("page size must be positive")
)
