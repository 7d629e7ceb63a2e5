package processor

import (
	"image"

	"golang.org/x/image/vector"
)

// kappa places cubic control points so the curve approximates a quarter circle.
const kappa = 0.5522847498

// RoundedMask returns a w x h alpha mask that is opaque inside a rounded
// rectangle covering the whole image and transparent outside. Edges are
// anti-aliased.
func RoundedMask(w, h int, radius float64) *image.Alpha {
	return roundedRect(w, h, 0, 0, float64(w), float64(h), radius)
}

// roundedRect rasterises the rounded rectangle (x0,y0)-(x1,y1) into a
// w x h alpha image.
func roundedRect(w, h int, x0, y0, x1, y1, r float64) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 || x1 <= x0 || y1 <= y0 {
		return mask
	}

	z := vector.NewRasterizer(w, h)
	roundedRectPath(z, x0, y0, x1, y1, r)
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

func roundedRectPath(z *vector.Rasterizer, x0, y0, x1, y1, r float64) {
	r = min(r, (x1-x0)/2, (y1-y0)/2)
	if r <= 0 {
		z.MoveTo(f32(x0), f32(y0))
		z.LineTo(f32(x1), f32(y0))
		z.LineTo(f32(x1), f32(y1))
		z.LineTo(f32(x0), f32(y1))
		z.ClosePath()
		return
	}

	k := r * kappa
	z.MoveTo(f32(x0+r), f32(y0))
	z.LineTo(f32(x1-r), f32(y0))
	z.CubeTo(f32(x1-r+k), f32(y0), f32(x1), f32(y0+r-k), f32(x1), f32(y0+r))
	z.LineTo(f32(x1), f32(y1-r))
	z.CubeTo(f32(x1), f32(y1-r+k), f32(x1-r+k), f32(y1), f32(x1-r), f32(y1))
	z.LineTo(f32(x0+r), f32(y1))
	z.CubeTo(f32(x0+r-k), f32(y1), f32(x0), f32(y1-r+k), f32(x0), f32(y1-r))
	z.LineTo(f32(x0), f32(y0+r))
	z.CubeTo(f32(x0), f32(y0+r-k), f32(x0+r-k), f32(y0), f32(x0+r), f32(y0))
	z.ClosePath()
}

func f32(v float64) float32 { return float32(v) }
