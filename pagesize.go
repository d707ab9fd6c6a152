package osunits

import (
	"fmt"
	"os"
)

// PageSize is the size of a single memory page in bytes.
//
// It is supplied by the caller at each conversion — typically a constant
// obtained from the platform's paging abstraction — and is deliberately not
// stored inside Bytes or Pages.
type PageSize uint64

// The x86-64 page-size classes.
const (
	Size4KiB PageSize = 1 << 12
	Size2MiB PageSize = 1 << 21
	Size1GiB PageSize = 1 << 30
)

// HostPageSize returns the page size of the operating system the process
// is running on.
func HostPageSize() PageSize {
	return PageSize(os.Getpagesize())
}

// Bytes returns the size of one page as a byte quantity.
func (ps PageSize) Bytes() Bytes {
	return Bytes(ps)
}

// String renders exact binary sizes in IEC units, e.g. "4 KiB", "2 MiB",
// "1 GiB". Sizes that are not a whole number of KiB render as raw bytes.
func (ps PageSize) String() string {
	v := uint64(ps)
	switch {
	case v != 0 && v%uint64(GiB) == 0:
		return fmt.Sprintf("%d GiB", v/uint64(GiB))
	case v != 0 && v%uint64(MiB) == 0:
		return fmt.Sprintf("%d MiB", v/uint64(MiB))
	case v != 0 && v%uint64(KiB) == 0:
		return fmt.Sprintf("%d KiB", v/uint64(KiB))
	default:
		return fmt.Sprintf("%d B", v)
	}
}
