package tsf

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"golang.org/x/sys/unix"
)

// File is a read-only view of a volume, mmapped where the platform allows
// it. The body slice indexes are only meaningful together with the layout
// the volume was written with.
type File struct {
	Header  Header
	Layout  Layout
	data    []byte
	mmapped bool
}

// ReadHeader reads just the header record of the volume at path using the
// given byte order.
func ReadHeader(path string, order binary.ByteOrder) (Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return Header{}, err
	}
	defer func() { _ = f.Close() }()
	return readHeader(f, byteOrder(order))
}

// Open maps the volume at path read-only and validates that its size
// matches the header's declared extents. If mmap is unavailable it falls
// back to reading the whole file. The returned File must be closed to
// release any mapping.
func Open(path string, order binary.ByteOrder, layout Layout) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := stat.Size()
	if size < HeaderSize {
		return nil, fmt.Errorf("%w: %s", ErrShortHeader, path)
	}
	if size > int64(int(^uint(0)>>1)) {
		// cannot index this file as []byte on this architecture.
		return nil, fmt.Errorf("%w: %s", ErrBodyTooLarge, path)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err == nil {
		vf, verr := newFile(data, true, order, layout)
		if verr != nil {
			_ = unix.Munmap(data)
			return nil, fmt.Errorf("%s: %w", path, verr)
		}
		return vf, nil
	}

	data, err = readAllAt(f, int(size))
	if err != nil {
		return nil, err
	}
	vf, verr := newFile(data, false, order, layout)
	if verr != nil {
		return nil, fmt.Errorf("%s: %w", path, verr)
	}
	return vf, nil
}

func newFile(data []byte, mmapped bool, order binary.ByteOrder, layout Layout) (*File, error) {
	hdr, ok := decodeHeader(data, byteOrder(order))
	if !ok {
		return nil, ErrShortHeader
	}
	if !hdr.Valid() {
		return nil, fmt.Errorf("%w: nx=%d ny=%d nz=%d nt=%d",
			ErrBadDims, hdr.NX, hdr.NY, hdr.NZ, hdr.NT)
	}
	if int64(len(data)) != hdr.FileSize() {
		return nil, fmt.Errorf("%w: have %d bytes, header declares %d",
			ErrSizeMismatch, len(data), hdr.FileSize())
	}
	return &File{Header: hdr, Layout: layout, data: data, mmapped: mmapped}, nil
}

func readAllAt(r io.ReaderAt, size int) ([]byte, error) {
	out := make([]byte, size)
	var off int64
	for off < int64(size) {
		n, err := r.ReadAt(out[off:], off)
		off += int64(n)
		if err == nil {
			continue
		}
		if err == io.EOF && off == int64(size) {
			break
		}
		return nil, err
	}
	return out, nil
}

// Body returns the raw sample payload. The caller must not retain the
// slice after Close.
func (f *File) Body() []byte {
	return f.data[HeaderSize:]
}

// Sample returns the sample for component c at grid cell (ix, iy), time
// index it, under the file's layout.
func (f *File) Sample(c, ix, iy, it int) float32 {
	idx := f.Layout.FloatIndex(&f.Header, c, ix, iy, it)
	off := HeaderSize + idx*SampleSize
	return math.Float32frombits(binary.LittleEndian.Uint32(f.data[off : off+4]))
}

// Close releases the mapping, if any.
func (f *File) Close() error {
	if f == nil || f.data == nil {
		return nil
	}
	var err error
	if f.mmapped {
		err = unix.Munmap(f.data)
	}
	f.data = nil
	f.mmapped = false
	return err
}
