package tsf

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// readHeader reads and decodes the header record at the current position
// of f, leaving the file positioned at the start of the body.
func readHeader(f *os.File, order binary.ByteOrder) (Header, error) {
	var raw [HeaderSize]byte
	if _, err := io.ReadFull(f, raw[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return Header{}, fmt.Errorf("%w: %s", ErrShortHeader, f.Name())
		}
		return Header{}, err
	}
	h, _ := decodeHeader(raw[:], order)
	return h, nil
}

func writeFull(f *os.File, p []byte) error {
	for len(p) > 0 {
		n, err := f.Write(p)
		if err != nil {
			return err
		}
		p = p[n:]
	}
	return nil
}
