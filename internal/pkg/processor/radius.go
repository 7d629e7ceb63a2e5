package processor

import (
	"math"

	"github.com/ds124wfegd/roundimage/internal/entity"
)

// shadowMargin is extra room left around a blurred shadow so its tail is not cut.
const shadowMargin = 10

// RadiusPx converts a radius specification into pixels for a w x h image.
// The result is always within [0, min(w,h)/2].
func RadiusPx(w, h int, r entity.Radius) float64 {
	base := float64(min(w, h))
	maxRadius := base / 2

	px := r.Value
	if r.Unit == entity.UnitPercent {
		px = r.Value / 100 * base
	}
	if math.IsNaN(px) {
		return 0
	}
	return math.Max(0, math.Min(px, maxRadius))
}

// Padding returns the transparent margin added on every side of the source
// image so that neither the shadow nor the border gets clipped.
func Padding(opts entity.Options) int {
	pad := 0
	if s := opts.Shadow; s != nil {
		pad += s.Blur + s.Offset + shadowMargin
	}
	if b := opts.Border; b != nil {
		pad += b.Width
	}
	return pad
}
