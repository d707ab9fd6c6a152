// Package osunits provides unit-safe byte and page quantities for low-level
// memory code.
//
// Code that manages physical memory constantly converts between "how many
// bytes" and "how many pages". Keeping both as bare integers makes it easy
// to add a byte count to a page count without the compiler noticing. This
// package wraps each magnitude in its own type so that mixing units is a
// compile error, and the one legal bridge between them — conversion through
// an explicit page size — is a named operation with well-defined rounding.
//
// # Quick Start
//
//	kernelImage := osunits.NewBytes(314159)
//
//	pages := kernelImage.Pages(osunits.Size4KiB) // rounds up: 77 pages
//	total := pages.Bytes(osunits.Size4KiB)       // exact: 315392 bytes
//
// Byte→page conversion always rounds up, because a partially filled page
// still occupies a whole page of physical memory. Page→byte conversion is
// exact.
//
// # Fail-Fast Arithmetic
//
// Quantities are unsigned. Overflow, underflow, and division by zero are
// programmer errors in the code this package targets, so the primary
// methods panic rather than silently wrapping:
//
//	osunits.NewBytes(5).Sub(osunits.NewBytes(10)) // panics: underflow
//	osunits.NewBytes(100).Pages(0)                // panics: zero page size
//
// Every panicking method has a Checked* counterpart that returns an error
// instead. The error wraps one of the package sentinels (ErrOverflow,
// ErrUnderflow, ErrZeroDivisor, ErrZeroPageSize), so errors.Is works in
// both styles — a recovered panic value satisfies the same checks.
//
// # Page Sizes
//
// The page size is not part of the quantity types; it is supplied at each
// conversion. Constants are provided for the x86-64 page-size classes
// (Size4KiB, Size2MiB, Size1GiB), and HostPageSize reports the operating
// system's own page size.
//
// # What Is Deliberately Missing
//
// Multiplying a quantity by another quantity of the same unit is not
// provided: the result would be "square bytes", a unit this package does
// not model. Scaling by a dimensionless integer (Mul, Div) covers every
// legitimate use. Do not add quantity-by-quantity multiplication back.
//
// All types are immutable comparable values; each operation returns a new
// value, so they are safe to share across goroutines without coordination.
package osunits
