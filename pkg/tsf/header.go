package tsf

// Header is the fixed 60-byte record at the start of every volume file.
// Field order matches the on-disk layout exactly: eight int32 fields
// followed by seven float32 fields.
type Header struct {
	IX0 int32
	IY0 int32
	IZ0 int32
	IT0 int32
	NX  int32
	NY  int32
	NZ  int32
	NT  int32

	DX       float32
	DY       float32
	DZ       float32
	DT       float32
	ModelRot float32
	ModelLat float32
	ModelLon float32
}

// Valid reports whether the grid extents describe a usable volume.
func (h *Header) Valid() bool {
	return h.NX > 0 && h.NY > 0 && h.NZ > 0 && h.NT > 0
}

// ApplyOverrides replaces NT and DT with the supplied values when they are
// positive. The stored samples are untouched; keeping the overridden
// metadata consistent with them is the caller's responsibility.
func (h *Header) ApplyOverrides(nt int32, dt float32) {
	if nt > 0 {
		h.NT = nt
	}
	if dt > 0 {
		h.DT = dt
	}
}

// CellCount returns the number of grid cells, nx*ny*nz.
func (h *Header) CellCount() int64 {
	return int64(h.NX) * int64(h.NY) * int64(h.NZ)
}

// BodySize returns the size in bytes of the sample payload.
func (h *Header) BodySize() int64 {
	return h.CellCount() * Components * int64(h.NT) * SampleSize
}

// FileSize returns the exact on-disk size of a volume with this header.
func (h *Header) FileSize() int64 {
	return HeaderSize + h.BodySize()
}
