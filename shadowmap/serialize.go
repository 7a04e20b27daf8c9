package shadowmap

import (
	"encoding/binary"
	"fmt"
	"io"
)

// WriteTo serializes the map as little-endian raw u32 in row-major
// order, y slowest, x middle, λ fastest. No header is written; callers
// needing width/height/numWavelengths to interpret the bytes must carry
// that metadata out of band (a sibling manifest, a filename convention,
// or similar).
func (s *ShadowMap) WriteTo(w io.Writer) (int64, error) {
	buf := make([]byte, 4*len(s.Data))
	for i, v := range s.Data {
		binary.LittleEndian.PutUint32(buf[i*4:], v)
	}
	n, err := w.Write(buf)
	if err != nil {
		return int64(n), fmt.Errorf("shadowmap: writing serialized map: %w", err)
	}
	return int64(n), nil
}
