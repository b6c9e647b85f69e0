package tsf

import (
	"encoding/binary"
	"math"
)

// HeaderSize is the fixed size of the encoded header in bytes.
const HeaderSize = 60

// encodeHeader writes h into dst using the given byte order. Every one of
// the fifteen fields is encoded with the same order; there is no partial
// encoding. Returns false if dst is too small.
func encodeHeader(dst []byte, h Header, order binary.ByteOrder) bool {
	if len(dst) < HeaderSize {
		return false
	}
	order.PutUint32(dst[0:4], uint32(h.IX0))
	order.PutUint32(dst[4:8], uint32(h.IY0))
	order.PutUint32(dst[8:12], uint32(h.IZ0))
	order.PutUint32(dst[12:16], uint32(h.IT0))
	order.PutUint32(dst[16:20], uint32(h.NX))
	order.PutUint32(dst[20:24], uint32(h.NY))
	order.PutUint32(dst[24:28], uint32(h.NZ))
	order.PutUint32(dst[28:32], uint32(h.NT))
	order.PutUint32(dst[32:36], math.Float32bits(h.DX))
	order.PutUint32(dst[36:40], math.Float32bits(h.DY))
	order.PutUint32(dst[40:44], math.Float32bits(h.DZ))
	order.PutUint32(dst[44:48], math.Float32bits(h.DT))
	order.PutUint32(dst[48:52], math.Float32bits(h.ModelRot))
	order.PutUint32(dst[52:56], math.Float32bits(h.ModelLat))
	order.PutUint32(dst[56:60], math.Float32bits(h.ModelLon))
	return true
}

// decodeHeader reads a header from src using the given byte order.
// Returns false if src is too small.
func decodeHeader(src []byte, order binary.ByteOrder) (Header, bool) {
	var h Header
	if len(src) < HeaderSize {
		return h, false
	}
	h.IX0 = int32(order.Uint32(src[0:4]))
	h.IY0 = int32(order.Uint32(src[4:8]))
	h.IZ0 = int32(order.Uint32(src[8:12]))
	h.IT0 = int32(order.Uint32(src[12:16]))
	h.NX = int32(order.Uint32(src[16:20]))
	h.NY = int32(order.Uint32(src[20:24]))
	h.NZ = int32(order.Uint32(src[24:28]))
	h.NT = int32(order.Uint32(src[28:32]))
	h.DX = math.Float32frombits(order.Uint32(src[32:36]))
	h.DY = math.Float32frombits(order.Uint32(src[36:40]))
	h.DZ = math.Float32frombits(order.Uint32(src[40:44]))
	h.DT = math.Float32frombits(order.Uint32(src[44:48]))
	h.ModelRot = math.Float32frombits(order.Uint32(src[48:52]))
	h.ModelLat = math.Float32frombits(order.Uint32(src[52:56]))
	h.ModelLon = math.Float32frombits(order.Uint32(src[56:60]))
	return h, true
}

// SwapWords reverses the byte order of each aligned 4-byte word in b.
// Applying it twice restores the original bytes. len(b) must be a multiple
// of 4; any trailing bytes are left untouched. It is meant for header
// bytes only; the sample payload is defined little-endian and never
// swapped.
func SwapWords(b []byte) {
	for i := 0; i+4 <= len(b); i += 4 {
		b[i], b[i+3] = b[i+3], b[i]
		b[i+1], b[i+2] = b[i+2], b[i+1]
	}
}
