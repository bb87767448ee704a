package emwave

import (
	"image/color"
	"math"
)

// RGB stores color components; each should be in [0,1].
type RGB struct {
	R, G, B Real
}

// clamp01 clamps each channel to [0,1].
func (c RGB) clamp01() RGB {
	cl := func(x Real) Real {
		if x < 0 {
			return 0
		}
		if x > 1 {
			return 1
		}
		return x
	}
	return RGB{cl(c.R), cl(c.G), cl(c.B)}
}

func (c RGB) NRGBA() color.NRGBA {
	c = c.clamp01()
	return color.NRGBA{
		R: uint8(math.Round(c.R * 255)),
		G: uint8(math.Round(c.G * 255)),
		B: uint8(math.Round(c.B * 255)),
		A: 255,
	}
}

func hexRGB(v uint32) RGB {
	return RGB{Real(v>>16&0xff) / 255, Real(v>>8&0xff) / 255, Real(v&0xff) / 255}
}

// Palette indices.
const (
	colBackground = iota
	colText
	colGrid
	colAxis
	colTraces // first of len(traceColors) entries
)

// matplotlib "tab" cycle, one per animated medium
var traceColors = []RGB{
	hexRGB(0xd62728), // red
	hexRGB(0x1f77b4), // blue
	hexRGB(0x2ca02c), // green
	hexRGB(0xff7f0e), // orange
	hexRGB(0x9467bd), // purple
	hexRGB(0x8c564b), // brown
}

var plotPalette = func() color.Palette {
	p := color.Palette{
		RGB{1, 1, 1}.NRGBA(),
		RGB{0.1, 0.1, 0.1}.NRGBA(),
		RGB{0.85, 0.85, 0.85}.NRGBA(),
		RGB{0.45, 0.45, 0.45}.NRGBA(),
	}
	for _, c := range traceColors {
		p = append(p, c.NRGBA())
	}
	return p
}()

func traceColorIndex(i int) uint8 {
	return uint8(colTraces + i%len(traceColors))
}
