package tsf

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestZeroVolume(t *testing.T) {
	t.Parallel()

	hdr := Header{NX: 4, NY: 3, NZ: 1, NT: 2, DT: 0.025}
	path := filepath.Join(t.TempDir(), "vol.ts")
	if err := Zero(path, hdr, binary.LittleEndian); err != nil {
		t.Fatalf("zero: %v", err)
	}

	st, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	wantSize := int64(HeaderSize) + 4*3*1*3*2*SampleSize
	if st.Size() != wantSize {
		t.Fatalf("file size: got %d want %d", st.Size(), wantSize)
	}
	if wantSize != hdr.FileSize() {
		t.Fatalf("FileSize(): got %d want %d", hdr.FileSize(), wantSize)
	}

	vf, err := Open(path, binary.LittleEndian, LayoutTimeMajor)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = vf.Close() }()

	if vf.Header != hdr {
		t.Fatalf("header mismatch: got %+v want %+v", vf.Header, hdr)
	}
	for i, b := range vf.Body() {
		if b != 0 {
			t.Fatalf("body byte %d is %#x, want zero", i, b)
		}
	}
}

func TestZeroBigEndianHeader(t *testing.T) {
	t.Parallel()

	hdr := Header{NX: 2, NY: 2, NZ: 1, NT: 3, DT: 0.1}
	path := filepath.Join(t.TempDir(), "vol.ts")
	if err := Zero(path, hdr, binary.BigEndian); err != nil {
		t.Fatalf("zero: %v", err)
	}

	got, err := ReadHeader(path, binary.BigEndian)
	if err != nil {
		t.Fatalf("read header: %v", err)
	}
	if got != hdr {
		t.Fatalf("header mismatch: got %+v want %+v", got, hdr)
	}

	// Reading with the wrong order must not reproduce the header.
	wrong, err := ReadHeader(path, binary.LittleEndian)
	if err != nil {
		t.Fatalf("read header: %v", err)
	}
	if wrong == hdr {
		t.Fatalf("byte order is not being applied to the header")
	}
}

func TestZeroRejectsBadDims(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "vol.ts")
	err := Zero(path, Header{NX: 4, NY: 3, NZ: 1, NT: 0}, binary.LittleEndian)
	if !errors.Is(err, ErrBadDims) {
		t.Fatalf("expected ErrBadDims, got %v", err)
	}
	if _, statErr := os.Stat(path); statErr == nil {
		t.Fatalf("no file should exist after a rejected zero")
	}
}

func TestOpenSizeMismatch(t *testing.T) {
	t.Parallel()

	hdr := Header{NX: 2, NY: 2, NZ: 1, NT: 2}
	path := filepath.Join(t.TempDir(), "vol.ts")
	if err := Zero(path, hdr, binary.LittleEndian); err != nil {
		t.Fatalf("zero: %v", err)
	}
	if err := os.Truncate(path, hdr.FileSize()-4); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	_, err := Open(path, binary.LittleEndian, LayoutTimeMajor)
	if !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("expected ErrSizeMismatch, got %v", err)
	}
}
