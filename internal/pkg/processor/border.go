package processor

import (
	"fmt"
	"image"
	"math"

	"github.com/ds124wfegd/roundimage/internal/entity"
)

// dashPattern returns the segment and gap lengths walked along the border.
// A zero gap means a continuous ring.
func dashPattern(b entity.Border) (seg, gap float64, err error) {
	w := float64(b.Width)
	switch b.Style {
	case entity.BorderSolid, "":
		return w, 0, nil
	case entity.BorderDashed:
		return 3 * w, 2 * w, nil
	case entity.BorderDotted:
		return w, 2 * w, nil
	default:
		return 0, 0, fmt.Errorf("%w: %q", entity.ErrInvalidBorderStyle, b.Style)
	}
}

// borderLayer renders the border ring on a canvas-sized layer. The ring lies
// outside the rounded rectangle anchored at (pad, pad) with size w x h: its
// outer edge has radius radius+width and the inner edge is cut out with inner,
// so no ring pixel covers the image interior.
func borderLayer(cw, ch, pad, w, h int, radius float64, inner *image.Alpha, b entity.Border) (*image.NRGBA, error) {
	seg, gap, err := dashPattern(b)
	if err != nil {
		return nil, err
	}

	bw := float64(b.Width)
	p := float64(pad)
	outer := roundedRect(cw, ch, p-bw, p-bw, p+float64(w)+bw, p+float64(h)+bw, radius+bw)

	// Dashes are measured along the centre line of the ring.
	mid := perimeter{
		x0: p - bw/2, y0: p - bw/2,
		x1: p + float64(w) + bw/2, y1: p + float64(h) + bw/2,
		r: radius + bw/2,
	}
	period := seg + gap

	layer := image.NewNRGBA(image.Rect(0, 0, cw, ch))
	for y := 0; y < ch; y++ {
		for x := 0; x < cw; x++ {
			a := uint32(outer.AlphaAt(x, y).A)
			if a == 0 {
				continue
			}
			ix, iy := x-pad, y-pad
			if ix >= 0 && iy >= 0 && ix < w && iy < h {
				a = a * (0xff - uint32(inner.AlphaAt(ix, iy).A)) / 0xff
			}
			if a == 0 {
				continue
			}
			if gap > 0 {
				s := mid.position(float64(x)+0.5, float64(y)+0.5)
				if math.Mod(s, period) >= seg {
					continue
				}
			}

			i := layer.PixOffset(x, y)
			layer.Pix[i+0] = b.Color.R
			layer.Pix[i+1] = b.Color.G
			layer.Pix[i+2] = b.Color.B
			layer.Pix[i+3] = uint8(a * uint32(b.Color.A) / 0xff)
		}
	}
	return layer, nil
}

// perimeter is a rounded rectangle outline walked clockwise starting at the
// left end of the top edge.
type perimeter struct {
	x0, y0, x1, y1 float64
	r              float64
}

// position returns the arc length along the outline of the point on it
// nearest to (px, py).
func (pm perimeter) position(px, py float64) float64 {
	r := pm.r
	lx := math.Max(0, pm.x1-pm.x0-2*r)
	ly := math.Max(0, pm.y1-pm.y0-2*r)
	arc := math.Pi / 2 * r

	left, right := pm.x0+r, pm.x1-r
	top, bottom := pm.y0+r, pm.y1-r
	dx := px - math.Max(left, math.Min(px, right))
	dy := py - math.Max(top, math.Min(py, bottom))

	if dx == 0 && dy == 0 {
		// Inside the straight section: snap to the closest edge.
		dTop, dBottom := py-pm.y0, pm.y1-py
		dLeft, dRight := px-pm.x0, pm.x1-px
		switch math.Min(math.Min(dTop, dBottom), math.Min(dLeft, dRight)) {
		case dTop:
			dy = -1
		case dBottom:
			dy = 1
		case dRight:
			dx = 1
		default:
			dx = -1
		}
	}

	switch {
	case dx == 0 && dy < 0: // top edge
		return px - left
	case dx > 0 && dy < 0: // top-right corner
		return lx + r*math.Atan2(dx, -dy)
	case dx > 0 && dy == 0: // right edge
		return lx + arc + (py - top)
	case dx > 0 && dy > 0: // bottom-right corner
		return lx + arc + ly + r*math.Atan2(dy, dx)
	case dx == 0 && dy > 0: // bottom edge
		return lx + 2*arc + ly + (right - px)
	case dx < 0 && dy > 0: // bottom-left corner
		return 2*lx + 2*arc + ly + r*math.Atan2(-dx, dy)
	case dx < 0 && dy == 0: // left edge
		return 2*lx + 3*arc + ly + (bottom - py)
	default: // top-left corner
		return 2*lx + 3*arc + 2*ly + r*math.Atan2(-dy, -dx)
	}
}
