package emwave

import (
	"bufio"
	"image"
	"image/gif"
	"io"
	"math"
	"os"
)

// gifDelay converts fps into GIF frame delay (100ths of a second), at least 1.
func gifDelay(fps int) int {
	if fps <= 0 {
		return 1
	}
	return imax(1, int(math.Round(100/Real(fps))))
}

// EncodeAnimatedGIF writes frames as a looping GIF played at fps.
func EncodeAnimatedGIF(w io.Writer, frames []*image.Paletted, fps int) error {
	n := len(frames)
	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, n),
		Delay:     make([]int, 0, n),
		LoopCount: 0,
	}
	delay := gifDelay(fps)
	step := imax(1, n/100)
	for k, img := range frames {
		if k%step == 0 { // ~1% steps
			DebugLog("[GIF] %.2f%%", Real(k+1)*100/Real(n))
		}
		out.Image = append(out.Image, img)
		out.Delay = append(out.Delay, delay)
	}
	return gif.EncodeAll(w, out)
}

// SaveAnimatedGIF writes a GIF with one image per animation frame.
func SaveAnimatedGIF(frames []*image.Paletted, path string, fps int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	if err := EncodeAnimatedGIF(w, frames, fps); err != nil {
		return err
	}
	return w.Flush()
}
