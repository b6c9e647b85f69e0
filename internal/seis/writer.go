package seis

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"math"
	"os"
)

// Write stores tr at path in the binary form.
func Write(path string, tr *Trace) error {
	if err := tr.Validate(); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	var raw [binHeaderSize]byte
	copy(raw[0:statLen], tr.Stat)
	copy(raw[statLen:statLen+compLen], tr.Comp)
	le := binary.LittleEndian
	p := raw[statLen+compLen:]
	le.PutUint32(p[0:4], uint32(tr.NT))
	le.PutUint32(p[4:8], math.Float32bits(tr.DT))
	le.PutUint32(p[8:12], uint32(tr.Hr))
	le.PutUint32(p[12:16], uint32(tr.Min))
	le.PutUint32(p[16:20], math.Float32bits(tr.Sec))
	le.PutUint32(p[20:24], math.Float32bits(tr.Edist))
	le.PutUint32(p[24:28], math.Float32bits(tr.Az))
	le.PutUint32(p[28:32], math.Float32bits(tr.Baz))
	if _, err := f.Write(raw[:]); err != nil {
		return err
	}

	buf := make([]byte, len(tr.Samples)*4)
	for i, s := range tr.Samples {
		le.PutUint32(buf[i*4:], math.Float32bits(s))
	}
	if _, err := f.Write(buf); err != nil {
		return err
	}
	return f.Close()
}

// WriteText stores tr at path in the text form, six samples per line.
func WriteText(path string, tr *Trace) error {
	if err := tr.Validate(); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%s %s\n", tr.Stat, tr.Comp)
	fmt.Fprintf(w, "%d %g %d %d %g %g %g %g\n",
		tr.NT, tr.DT, tr.Hr, tr.Min, tr.Sec, tr.Edist, tr.Az, tr.Baz)
	for i, s := range tr.Samples {
		if i > 0 && i%6 == 0 {
			fmt.Fprintln(w)
		} else if i > 0 {
			fmt.Fprint(w, " ")
		}
		fmt.Fprintf(w, "%g", s)
	}
	if len(tr.Samples) > 0 {
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return f.Close()
}
