package processor

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strings"

	"github.com/ds124wfegd/roundimage/internal/entity"
)

// ParseHexColor parses "#rrggbb" into an opaque color.
func ParseHexColor(s string) (color.NRGBA, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(raw) != 6 {
		return color.NRGBA{}, fmt.Errorf("%w: %q", entity.ErrInvalidColor, s)
	}

	b, err := hex.DecodeString(raw)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", entity.ErrInvalidColor, s)
	}
	return color.NRGBA{R: b[0], G: b[1], B: b[2], A: 0xff}, nil
}
