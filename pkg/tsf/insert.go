package tsf

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/samcharles93/tsvol/internal/seis"
)

// Options configures an inserter. The zero value selects a little-endian
// header, the canonical time-major layout, binary seismogram input, and no
// NT/DT overrides.
type Options struct {
	// Order is the header byte order of the destination volume.
	// nil means little-endian.
	Order binary.ByteOrder

	// Layout is the physical ordering of the volume body.
	Layout Layout

	// NT and DT override the header values when positive.
	NT int32
	DT float32

	// Text selects text-form seismogram input files.
	Text bool
}

// Entry is one insertion target: a grid cell and the three component
// seismogram files for it.
type Entry struct {
	IX, IY int
	Paths  [Components]string
}

// Inserter places three-component seismogram triples into an existing
// volume. Implementations are single-use and not safe for concurrent use;
// one inserter exclusively owns the destination file for its lifetime.
type Inserter interface {
	Header() Header
	Insert(e Entry) error
	Close() error
}

// loadTraces reads the three component seismograms of an entry.
func loadTraces(e Entry, text bool) ([Components]*seis.Trace, error) {
	var traces [Components]*seis.Trace
	for c, path := range e.Paths {
		tr, err := seis.Read(path, !text)
		if err != nil {
			return traces, fmt.Errorf("component %d: %w", c+1, err)
		}
		traces[c] = tr
	}
	return traces, nil
}

// sampleCount limits an insertion to the samples both the trace and the
// volume can hold.
func sampleCount(tr *seis.Trace, nt int32) int {
	n := len(tr.Samples)
	if int32(n) > nt {
		n = int(nt)
	}
	return n
}

// Buffered is the in-memory insertion strategy: the whole volume body is
// loaded once, every entry is overlaid in memory, and Flush writes the body
// back in a single pass. Suited to many insertions into one volume when the
// body fits in memory.
type Buffered struct {
	f      *os.File
	hdr    Header
	layout Layout
	text   bool
	body   []byte
	closed bool
}

// OpenBuffered opens an existing volume for read-modify-write and loads
// its entire body.
func OpenBuffered(path string, opts Options) (*Buffered, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}

	hdr, err := readHeader(f, byteOrder(opts.Order))
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	hdr.ApplyOverrides(opts.NT, opts.DT)
	if !hdr.Valid() {
		_ = f.Close()
		return nil, fmt.Errorf("%w: nx=%d ny=%d nz=%d nt=%d",
			ErrBadDims, hdr.NX, hdr.NY, hdr.NZ, hdr.NT)
	}

	size := hdr.BodySize()
	if size > int64(int(^uint(0)>>1)) {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %d bytes", ErrBodyTooLarge, size)
	}
	body := make([]byte, size)
	if _, err := readFullAt(f, body, HeaderSize); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s", ErrTruncatedBody, path)
	}

	return &Buffered{f: f, hdr: hdr, layout: opts.Layout, text: opts.Text, body: body}, nil
}

func readFullAt(f *os.File, p []byte, off int64) (int, error) {
	var read int
	for read < len(p) {
		n, err := f.ReadAt(p[read:], off+int64(read))
		read += n
		if err != nil {
			return read, err
		}
	}
	return read, nil
}

// Header returns the volume header with any overrides applied.
func (b *Buffered) Header() Header { return b.hdr }

// Insert overlays one seismogram triple at its grid cell in the in-memory
// body. Nothing reaches disk until Flush.
func (b *Buffered) Insert(e Entry) error {
	traces, err := loadTraces(e, b.text)
	if err != nil {
		return err
	}
	for c, tr := range traces {
		n := sampleCount(tr, b.hdr.NT)
		for it := 0; it < n; it++ {
			idx := b.layout.FloatIndex(&b.hdr, c, e.IX, e.IY, it)
			binary.LittleEndian.PutUint32(
				b.body[idx*SampleSize:], math.Float32bits(tr.Samples[it]))
		}
	}
	return nil
}

// Flush writes the whole body back to the file in one contiguous write.
func (b *Buffered) Flush() error {
	if b.closed {
		return errors.New("tsf: inserter closed")
	}
	if _, err := b.f.Seek(HeaderSize, 0); err != nil {
		return err
	}
	return writeFull(b.f, b.body)
}

// Close flushes the body and closes the file.
func (b *Buffered) Close() error {
	if b.closed {
		return nil
	}
	if err := b.Flush(); err != nil {
		_ = b.f.Close()
		b.closed = true
		return err
	}
	b.closed = true
	return b.f.Close()
}

// Streaming is the direct-write insertion strategy: every sample is written
// at its computed absolute offset, one WriteAt per sample. No body
// buffering; suited to very large volumes or a single insertion, at the
// cost of many small writes.
//
// A single file handle replaces the legacy triple-open of the destination:
// the three per-component cursors are just computed seek targets.
type Streaming struct {
	f      *os.File
	hdr    Header
	layout Layout
	text   bool
	closed bool
}

// OpenStreaming opens an existing volume for seek-based insertion.
func OpenStreaming(path string, opts Options) (*Streaming, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}

	hdr, err := readHeader(f, byteOrder(opts.Order))
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	hdr.ApplyOverrides(opts.NT, opts.DT)
	if !hdr.Valid() {
		_ = f.Close()
		return nil, fmt.Errorf("%w: nx=%d ny=%d nz=%d nt=%d",
			ErrBadDims, hdr.NX, hdr.NY, hdr.NZ, hdr.NT)
	}

	return &Streaming{f: f, hdr: hdr, layout: opts.Layout, text: opts.Text}, nil
}

// Header returns the volume header with any overrides applied.
func (s *Streaming) Header() Header { return s.hdr }

// Insert writes one seismogram triple directly into the file, sample by
// sample. All three traces are loaded before the first write so a bad
// input file cannot leave a partially-inserted cell.
func (s *Streaming) Insert(e Entry) error {
	traces, err := loadTraces(e, s.text)
	if err != nil {
		return err
	}
	var buf [SampleSize]byte
	for c, tr := range traces {
		n := sampleCount(tr, s.hdr.NT)
		for it := 0; it < n; it++ {
			idx := s.layout.FloatIndex(&s.hdr, c, e.IX, e.IY, it)
			binary.LittleEndian.PutUint32(buf[:], math.Float32bits(tr.Samples[it]))
			if _, err := s.f.WriteAt(buf[:], HeaderSize+idx*SampleSize); err != nil {
				return err
			}
		}
	}
	return nil
}

// Close closes the file; all writes have already landed.
func (s *Streaming) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.f.Close()
}
