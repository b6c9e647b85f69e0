package tsf

import (
	"encoding/binary"
	"fmt"
	"os"
)

const zeroBufSize = 1 << 20 // 1 MiB

// Zero creates a new volume at path: the encoded header followed by
// nx*ny*nz records of 3*nt zero samples. The resulting file size is exactly
// hdr.FileSize(). Any existing file at path is truncated.
//
// The header must describe a usable volume; callers applying NT/DT
// overrides must do so before calling Zero.
func Zero(path string, hdr Header, order binary.ByteOrder) error {
	if !hdr.Valid() {
		return fmt.Errorf("%w: nx=%d ny=%d nz=%d nt=%d",
			ErrBadDims, hdr.NX, hdr.NY, hdr.NZ, hdr.NT)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	var raw [HeaderSize]byte
	encodeHeader(raw[:], hdr, byteOrder(order))
	if err := writeFull(f, raw[:]); err != nil {
		return err
	}

	buf := make([]byte, zeroBufSize)
	remaining := hdr.BodySize()
	for remaining > 0 {
		n := int64(len(buf))
		if n > remaining {
			n = remaining
		}
		if err := writeFull(f, buf[:n]); err != nil {
			return err
		}
		remaining -= n
	}

	if err := f.Sync(); err != nil {
		return err
	}
	return f.Close()
}
