package emwave

import (
	"context"
	"fmt"
	"image"
	"math"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// plot box proportions (x is the propagation axis)
var boxAspect = Vector3{1.6, 1, 1}

const (
	marginTop    = 34
	marginBottom = 26
	marginSide   = 14
	lineHeight   = 14
)

// Renderer rasterizes animation frames as an orthographic 3D line plot.
// It holds no per-frame state and may be shared between goroutines.
type Renderer struct {
	Width, Height int
	limits        AxisLimits
	view          Mat3
	scale         Real
	cx, cy        Real
	face          font.Face
}

func NewRenderer(width, height int, limits AxisLimits) *Renderer {
	r := &Renderer{
		Width:  width,
		Height: height,
		limits: limits,
		view:   viewMatrix(ViewElevation, ViewAzimuth),
		face:   basicfont.Face7x13,
	}

	// fit the projected plot box into the drawable area
	minU, maxU := math.Inf(1), math.Inf(-1)
	minV, maxV := math.Inf(1), math.Inf(-1)
	for _, sx := range []Real{-1, 1} {
		for _, sy := range []Real{-1, 1} {
			for _, sz := range []Real{-1, 1} {
				q := r.view.MulVec(Vector3{sx * boxAspect.X, sy * boxAspect.Y, sz * boxAspect.Z})
				minU, maxU = math.Min(minU, q.X), math.Max(maxU, q.X)
				minV, maxV = math.Min(minV, q.Y), math.Max(maxV, q.Y)
			}
		}
	}
	availW := Real(width - 2*marginSide)
	availH := Real(height - marginTop - marginBottom)
	r.scale = math.Min(availW/(maxU-minU), availH/(maxV-minV))
	r.cx = Real(width)/2 - r.scale*(minU+maxU)/2
	r.cy = Real(marginTop) + availH/2 + r.scale*(minV+maxV)/2
	DebugLogOnce("Renderer %dx%d, scale=%.3f, limits=%+v", width, height, r.scale, limits)
	return r
}

// normalize maps plot coordinates into the box [-aspect, aspect] on each axis.
func (r *Renderer) normalize(p Vector3) Vector3 {
	n := func(v Real, lim [2]Real, half Real) Real {
		span := lim[1] - lim[0]
		if !(span > 0) || !isFinite(span) {
			return 0
		}
		return half * (2*(v-lim[0])/span - 1)
	}
	return Vector3{
		n(p.X, r.limits.X, boxAspect.X),
		n(p.Y, r.limits.Y, boxAspect.Y),
		n(p.Z, r.limits.Z, boxAspect.Z),
	}
}

// Project returns the pixel position of a point in plot coordinates.
func (r *Renderer) Project(p Vector3) (int, int) {
	q := r.view.MulVec(r.normalize(p))
	return int(math.Round(r.cx + r.scale*q.X)), int(math.Round(r.cy - r.scale*q.Y))
}

// Render draws one frame.
func (r *Renderer) Render(a *Animation, f *Frame) *image.Paletted {
	start := time.Now()
	img := image.NewPaletted(image.Rect(0, 0, r.Width, r.Height), plotPalette)

	r.drawBox(img)
	pol := a.Wave.Polarization
	for m, s := range f.Snapshots {
		col := traceColorIndex(m)
		e, b := Traces(s, pol)
		r.polyline(img, e, col, 0)
		r.polyline(img, b, col, DashLen)
	}

	r.text(img, (r.Width-font.MeasureString(r.face, a.Title()).Round())/2, lineHeight, colText, a.Title())
	r.text(img, marginSide, 2*lineHeight, colText, fmt.Sprintf("t = %.2f s", f.Time))
	r.legend(img, a)
	r.progress(img, f.Index, a.FrameCount())

	framesRendered.Inc()
	renderDurationSeconds.Observe(time.Since(start).Seconds())
	return img
}

// RenderAll draws every frame in parallel.
func (r *Renderer) RenderAll(ctx context.Context, a *Animation, frames []*Frame) ([]*image.Paletted, error) {
	images := make([]*image.Paletted, len(frames))
	err := parallelFor(ctx, len(frames), func(i int) error {
		images[i] = r.Render(a, frames[i])
		return nil
	})
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (r *Renderer) drawBox(img *image.Paletted) {
	l := r.limits
	xs, ys, zs := l.X, l.Y, l.Z
	edge := func(a, b Vector3, col uint8) {
		x0, y0 := r.Project(a)
		x1, y1 := r.Project(b)
		drawLine(img, x0, y0, x1, y1, col, 0, nil)
	}
	for _, y := range ys {
		for _, z := range zs {
			edge(Vector3{xs[0], y, z}, Vector3{xs[1], y, z}, colGrid)
		}
	}
	for _, x := range xs {
		for _, z := range zs {
			edge(Vector3{x, ys[0], z}, Vector3{x, ys[1], z}, colGrid)
		}
		for _, y := range ys {
			edge(Vector3{x, y, zs[0]}, Vector3{x, y, zs[1]}, colGrid)
		}
	}
	// propagation axis and the two field axes through its start
	edge(Vector3{xs[0], 0, 0}, Vector3{xs[1], 0, 0}, colAxis)
	edge(Vector3{xs[0], ys[0], 0}, Vector3{xs[0], ys[1], 0}, colAxis)
	edge(Vector3{xs[0], 0, zs[0]}, Vector3{xs[0], 0, zs[1]}, colAxis)

	x, y := r.Project(Vector3{xs[1], 0, 0})
	r.text(img, x-60, y+lineHeight, colAxis, "x (propagation)")
	x, y = r.Project(Vector3{xs[0], ys[1], 0})
	r.text(img, x+4, y, colAxis, "E field (y)")
	x, y = r.Project(Vector3{xs[0], 0, zs[1]})
	r.text(img, x+4, y, colAxis, "B field (z)")
}

func (r *Renderer) polyline(img *image.Paletted, pts []Vector3, col uint8, dash int) {
	run := 0
	for i := 1; i < len(pts); i++ {
		if !isFinite(pts[i-1].Y) || !isFinite(pts[i].Y) || !isFinite(pts[i-1].Z) || !isFinite(pts[i].Z) {
			continue
		}
		x0, y0 := r.Project(pts[i-1])
		x1, y1 := r.Project(pts[i])
		drawLine(img, x0, y0, x1, y1, col, dash, &run)
	}
}

func (r *Renderer) legend(img *image.Paletted, a *Animation) {
	const swatch = 22
	y := marginTop + lineHeight
	x := r.Width - marginSide - 150
	for m, med := range a.Mediums {
		col := traceColorIndex(m)
		run := 0
		drawLine(img, x, y-4, x+swatch, y-4, col, 0, &run)
		r.text(img, x+swatch+6, y, colText, "E ("+med.Name()+")")
		y += lineHeight
		run = 0
		drawLine(img, x, y-4, x+swatch, y-4, col, DashLen/2, &run)
		r.text(img, x+swatch+6, y, colText, "B ("+med.Name()+")")
		y += lineHeight
	}
}

func (r *Renderer) progress(img *image.Paletted, index, count int) {
	if count <= 0 {
		return
	}
	y := r.Height - marginBottom/2
	w := (r.Width - 2*marginSide) * (index + 1) / count
	drawLine(img, marginSide, y, marginSide+w, y, colAxis, 0, nil)
}

func (r *Renderer) text(img *image.Paletted, x, y int, col uint8, s string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(plotPalette[col]),
		Face: r.face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// drawLine draws a 2px Bresenham line. With dash > 0 the line alternates dash
// pixels on and off; run carries the pattern across consecutive segments.
func drawLine(img *image.Paletted, x0, y0, x1, y1 int, col uint8, dash int, run *int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	if run == nil {
		run = new(int)
	}
	errv := dx + dy
	for {
		if dash <= 0 || (*run/dash)%2 == 0 {
			img.SetColorIndex(x0, y0, col)
			if dx >= -dy {
				img.SetColorIndex(x0, y0+1, col)
			} else {
				img.SetColorIndex(x0+1, y0, col)
			}
		}
		*run++
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * errv
		if e2 >= dy {
			errv += dy
			x0 += sx
		}
		if e2 <= dx {
			errv += dx
			y0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
