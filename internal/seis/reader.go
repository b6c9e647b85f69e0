package seis

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Read loads the trace at path. bin selects the binary form; otherwise the
// text form is parsed.
func Read(path string, bin bool) (*Trace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var tr *Trace
	if bin {
		tr, err = readBinary(f)
	} else {
		tr, err = readText(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tr, nil
}

func readBinary(r io.Reader) (*Trace, error) {
	var raw [binHeaderSize]byte
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, fmt.Errorf("seis: short trace header")
		}
		return nil, err
	}

	tr := &Trace{
		Stat: trimField(raw[0:statLen]),
		Comp: trimField(raw[statLen : statLen+compLen]),
	}
	le := binary.LittleEndian
	p := raw[statLen+compLen:]
	tr.NT = int32(le.Uint32(p[0:4]))
	tr.DT = math.Float32frombits(le.Uint32(p[4:8]))
	tr.Hr = int32(le.Uint32(p[8:12]))
	tr.Min = int32(le.Uint32(p[12:16]))
	tr.Sec = math.Float32frombits(le.Uint32(p[16:20]))
	tr.Edist = math.Float32frombits(le.Uint32(p[20:24]))
	tr.Az = math.Float32frombits(le.Uint32(p[24:28]))
	tr.Baz = math.Float32frombits(le.Uint32(p[28:32]))

	if tr.NT < 0 {
		return nil, fmt.Errorf("seis: negative sample count %d", tr.NT)
	}

	buf := make([]byte, int(tr.NT)*4)
	if _, err := io.ReadFull(r, buf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, fmt.Errorf("seis: truncated samples, want %d", tr.NT)
		}
		return nil, err
	}
	tr.Samples = make([]float32, tr.NT)
	for i := range tr.Samples {
		tr.Samples[i] = math.Float32frombits(le.Uint32(buf[i*4:]))
	}
	return tr, nil
}

func trimField(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return strings.TrimSpace(string(b))
}

// readText parses the text form: a title line "stat comp", a header line
// "nt dt hr min sec edist az baz" (trailing fields optional), then nt
// whitespace-separated samples across any number of lines.
func readText(r io.Reader) (*Trace, error) {
	br := bufio.NewReader(r)

	title, err := readLine(br)
	if err != nil {
		return nil, fmt.Errorf("seis: missing title line: %w", err)
	}
	tr := &Trace{}
	if fields := strings.Fields(title); len(fields) > 0 {
		tr.Stat = fields[0]
		if len(fields) > 1 {
			tr.Comp = fields[1]
		}
	}

	hdrLine, err := readLine(br)
	if err != nil {
		return nil, fmt.Errorf("seis: missing header line: %w", err)
	}
	if err := tr.parseTextHeader(hdrLine); err != nil {
		return nil, err
	}

	tr.Samples = make([]float32, 0, tr.NT)
	sc := bufio.NewScanner(br)
	sc.Split(bufio.ScanWords)
	for int32(len(tr.Samples)) < tr.NT && sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 32)
		if err != nil {
			return nil, fmt.Errorf("seis: sample %d: %w", len(tr.Samples), err)
		}
		tr.Samples = append(tr.Samples, float32(v))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if int32(len(tr.Samples)) != tr.NT {
		return nil, fmt.Errorf("seis: header declares %d samples, found %d",
			tr.NT, len(tr.Samples))
	}
	return tr, nil
}

func (t *Trace) parseTextHeader(line string) error {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return fmt.Errorf("seis: header line needs at least nt and dt, found %q", line)
	}

	nt, err := strconv.ParseInt(fields[0], 10, 32)
	if err != nil || nt < 0 {
		return fmt.Errorf("seis: bad sample count %q", fields[0])
	}
	t.NT = int32(nt)

	dt, err := strconv.ParseFloat(fields[1], 32)
	if err != nil {
		return fmt.Errorf("seis: bad time step %q", fields[1])
	}
	t.DT = float32(dt)

	ints := []*int32{&t.Hr, &t.Min}
	floats := []*float32{&t.Sec, &t.Edist, &t.Az, &t.Baz}
	rest := fields[2:]
	for i, dst := range ints {
		if i >= len(rest) {
			return nil
		}
		v, err := strconv.ParseInt(rest[i], 10, 32)
		if err != nil {
			return fmt.Errorf("seis: bad header field %q", rest[i])
		}
		*dst = int32(v)
	}
	rest = rest[len(ints):]
	for i, dst := range floats {
		if i >= len(rest) {
			return nil
		}
		v, err := strconv.ParseFloat(rest[i], 32)
		if err != nil {
			return fmt.Errorf("seis: bad header field %q", rest[i])
		}
		*dst = float32(v)
	}
	return nil
}

func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
