// Package seis reads and writes single-component seismogram trace files.
//
// A trace is a station/component identification, a timing header, and a
// run of float32 ground-motion samples. Two encodings exist: a fixed
// little-endian binary form and a whitespace-delimited text form. Volume
// insertion consumes only the sample count and the samples themselves.
package seis

import "fmt"

const (
	// statLen and compLen are the fixed widths of the station and
	// component fields in the binary header.
	statLen = 8
	compLen = 4

	// binHeaderSize is the size of the binary trace header:
	// stat[8] comp[4], then nt, dt, hr, min, sec, edist, az, baz
	// as eight 4-byte fields.
	binHeaderSize = statLen + compLen + 8*4
)

// Trace is one single-component time series.
type Trace struct {
	Stat string
	Comp string

	NT  int32
	DT  float32
	Hr  int32
	Min int32
	Sec float32

	Edist float32
	Az    float32
	Baz   float32

	Samples []float32
}

// Validate reports whether the header is internally consistent with the
// sample slice.
func (t *Trace) Validate() error {
	if t.NT < 0 {
		return fmt.Errorf("seis: negative sample count %d", t.NT)
	}
	if int(t.NT) != len(t.Samples) {
		return fmt.Errorf("seis: header declares %d samples, have %d",
			t.NT, len(t.Samples))
	}
	if len(t.Stat) > statLen {
		return fmt.Errorf("seis: station name %q longer than %d bytes", t.Stat, statLen)
	}
	if len(t.Comp) > compLen {
		return fmt.Errorf("seis: component name %q longer than %d bytes", t.Comp, compLen)
	}
	return nil
}
