// Command shadowpreview renders a false-color PNG preview of a shadow
// map produced by shadowgen. It reads the file through a memory mapping,
// bin by bin, but copies every bin into an in-memory ShadowMap before
// rendering, so the whole (potentially gigabyte-scale) buffer is resident
// while it runs.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/eclipseshadow/shadowtrace/preview"
	"github.com/eclipseshadow/shadowtrace/shadowmap"
)

func main() {
	in := flag.String("in", "shadowmap.bin", "Input shadow-map file path (shadowgen's -out)")
	out := flag.String("out", "shadowmap_preview.png", "Output PNG file path")
	width := flag.Int("width", 1024, "Shadow-map texture width (must match the build it was generated with)")
	minWavelength := flag.Int("min-wavelength", 380, "Minimum wavelength in nm used for the build")
	maxWavelength := flag.Int("max-wavelength", 740, "Maximum wavelength in nm used for the build")
	outSize := flag.Int("out-size", 512, "Output PNG width/height in pixels")
	flag.Parse()

	numWavelengths := *maxWavelength - *minWavelength

	mapped, err := shadowmap.OpenMapped(*in, *width, *width, numWavelengths, *minWavelength)
	if err != nil {
		log.Fatalf("opening %s: %v", *in, err)
	}
	defer mapped.Close()

	w := *width
	data := make([]uint32, w*w*numWavelengths)
	for y := 0; y < w; y++ {
		for x := 0; x < w; x++ {
			for lambda := 0; lambda < numWavelengths; lambda++ {
				v, err := mapped.At(x, y, *minWavelength+lambda)
				if err != nil {
					log.Fatalf("reading bin (%d,%d,%d): %v", x, y, *minWavelength+lambda, err)
				}
				data[y*w*numWavelengths+x*numWavelengths+lambda] = v
			}
		}
	}

	m := &shadowmap.ShadowMap{
		Width:           w,
		Height:          w,
		NumWavelengths:  numWavelengths,
		MinWavelengthNM: *minWavelength,
		Data:            data,
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("creating %s: %v", *out, err)
	}
	defer f.Close()

	if err := preview.Render(f, m, *outSize, *outSize); err != nil {
		log.Fatalf("rendering preview: %v", err)
	}
}
