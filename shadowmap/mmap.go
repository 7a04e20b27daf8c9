package shadowmap

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/exp/mmap"
)

// MappedMap is a read-only view of a serialized shadow map backed by an
// mmap'd file instead of a fully in-core buffer. At W=1024, Nλ=360 the
// dense buffer is close to 1.4 GiB; OpenMapped lets a consumer (such as a
// downstream renderer) sample single bins without paying that residency
// cost up front.
type MappedMap struct {
	reader          *mmap.ReaderAt
	Width           int
	Height          int
	NumWavelengths  int
	MinWavelengthNM int
}

// OpenMapped opens the little-endian u32 serialization written by
// ShadowMap.WriteTo. Callers must supply the width/height/numWavelengths
// metadata out of band, since the serialization carries no header.
func OpenMapped(path string, width, height, numWavelengths, minWavelengthNM int) (*MappedMap, error) {
	reader, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("shadowmap: opening mapped shadow map: %w", err)
	}
	return &MappedMap{
		reader:          reader,
		Width:           width,
		Height:          height,
		NumWavelengths:  numWavelengths,
		MinWavelengthNM: minWavelengthNM,
	}, nil
}

// At reads the single u32 bin at (x, y, λ) via a 4-byte ReadAt, never
// materializing the rest of the buffer.
func (m *MappedMap) At(x, y, wavelengthNM int) (uint32, error) {
	idx := y*m.Width*m.NumWavelengths + x*m.NumWavelengths + (wavelengthNM - m.MinWavelengthNM)
	var buf [4]byte
	if _, err := m.reader.ReadAt(buf[:], int64(idx)*4); err != nil {
		return 0, fmt.Errorf("shadowmap: reading mapped bin: %w", err)
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// Close releases the underlying mapping.
func (m *MappedMap) Close() error {
	return m.reader.Close()
}
