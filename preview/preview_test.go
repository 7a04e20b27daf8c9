package preview

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/eclipseshadow/shadowtrace/shadowmap"
)

func flatMap(width, height, numWavelengths, minWavelengthNM int, fill uint32) *shadowmap.ShadowMap {
	data := make([]uint32, width*height*numWavelengths)
	for i := range data {
		data[i] = fill
	}
	return &shadowmap.ShadowMap{
		Width:           width,
		Height:          height,
		NumWavelengths:  numWavelengths,
		MinWavelengthNM: minWavelengthNM,
		Data:            data,
	}
}

func TestRenderProducesDecodablePNGAtNativeSize(t *testing.T) {
	m := flatMap(8, 8, 4, 500, 10)

	var buf bytes.Buffer
	if err := Render(&buf, m, 8, 8); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 8 {
		t.Fatalf("decoded image bounds = %v, want 8x8", img.Bounds())
	}
}

func TestRenderDownsamples(t *testing.T) {
	m := flatMap(64, 64, 4, 500, 10)

	var buf bytes.Buffer
	if err := Render(&buf, m, 16, 16); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 16 {
		t.Fatalf("decoded image bounds = %v, want 16x16", img.Bounds())
	}
}

func TestGradientEndpoints(t *testing.T) {
	lo := gradient(0)
	hi := gradient(1)
	if lo != stops[0] {
		t.Fatalf("gradient(0) = %+v, want first stop %+v", lo, stops[0])
	}
	if hi != stops[len(stops)-1] {
		t.Fatalf("gradient(1) = %+v, want last stop %+v", hi, stops[len(stops)-1])
	}
}
