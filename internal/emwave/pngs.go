package emwave

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"strings"
)

// EncodePNG writes one frame as a lossless PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(w, img)
}

// pngFrameName returns "<prefix>_<k>.png" with k zero-padded to fit n frames.
func pngFrameName(prefix string, k, n int) string {
	width := 1
	if n > 1 {
		width = int(math.Log10(Real(n-1))) + 1
	}
	return fmt.Sprintf("%s_%0*d.png", prefix, width, k)
}

// SavePNGSequence writes one PNG per frame. A trailing ".png" is stripped from
// path to form the file prefix, so "out/wave.png" yields out/wave_000.png, ...
func SavePNGSequence(frames []*image.Paletted, path string) error {
	prefix := path
	if strings.EqualFold(prefix[max(0, len(prefix)-4):], ".png") {
		prefix = prefix[:len(prefix)-4]
	}
	n := len(frames)
	step := imax(1, n/100)
	for k, img := range frames {
		if k%step == 0 {
			DebugLog("[PNG]  %.2f%%", Real(k+1)*100/Real(n))
		}
		f, err := os.Create(pngFrameName(prefix, k, n))
		if err != nil {
			return err
		}
		if err := EncodePNG(f, img); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}
