// Package tsf implements the time-slice volume format.
//
// A time-slice volume stores three-component ground-motion history over a
// gridded plane: a fixed 60-byte header followed by 3*nx*ny*nz*nt float32
// samples with no padding. The format carries no magic and no endianness
// tag; the header byte order is declared out-of-band by whoever opens the
// file. Sample payloads are always little-endian.
package tsf

import (
	"encoding/binary"
	"fmt"
	"strings"
)

const (
	// Components is the number of ground-motion channels stored per cell.
	Components = 3

	// SampleSize is the on-disk size of one sample in bytes.
	SampleSize = 4
)

// Layout selects the physical ordering of the volume body. The format
// header does not record it; producer and consumer must agree out-of-band,
// exactly like the byte order.
type Layout int

const (
	// LayoutTimeMajor orders the body as one full 3-component grid plane
	// per time sample: it*3*nx*ny + c*nx*ny + iy*nx + ix. This is the
	// canonical layout; it is what the insertion stride of the legacy
	// toolchain assumed.
	LayoutTimeMajor Layout = iota

	// LayoutCellMajor orders the body as one record per grid cell, each
	// record holding three contiguous nt-sample component blocks:
	// (iy*nx+ix)*3*nt + c*nt + it. Retained for volumes produced by the
	// legacy zero-initializer's record structure.
	LayoutCellMajor
)

func (l Layout) String() string {
	switch l {
	case LayoutTimeMajor:
		return "time"
	case LayoutCellMajor:
		return "cell"
	default:
		return fmt.Sprintf("layout(%d)", int(l))
	}
}

// ParseLayout converts a layout name ("time" or "cell") to a Layout.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "time", "time-major", "":
		return LayoutTimeMajor, nil
	case "cell", "cell-major":
		return LayoutCellMajor, nil
	}
	return 0, fmt.Errorf("tsf: unknown layout %q", s)
}

// FloatIndex returns the flat float32 index of sample it for component c at
// grid cell (ix, iy). The body byte offset is FloatIndex*SampleSize past the
// header.
func (l Layout) FloatIndex(h *Header, c, ix, iy, it int) int64 {
	nx, ny := int64(h.NX), int64(h.NY)
	switch l {
	case LayoutCellMajor:
		nt := int64(h.NT)
		return (int64(iy)*nx+int64(ix))*Components*nt + int64(c)*nt + int64(it)
	default:
		plane := nx * ny
		return int64(it)*Components*plane + int64(c)*plane + int64(iy)*nx + int64(ix)
	}
}

// byteOrder normalizes a possibly-nil order to the little-endian default.
func byteOrder(order binary.ByteOrder) binary.ByteOrder {
	if order == nil {
		return binary.LittleEndian
	}
	return order
}
