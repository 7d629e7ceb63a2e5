// Package options turns the textual rounding parameters accepted by the
// command line and the HTTP form into entity.Options.
package options

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ds124wfegd/roundimage/internal/entity"
	"github.com/ds124wfegd/roundimage/internal/pkg/processor"
)

const (
	legacyArgs   = 4
	extendedArgs = 12
)

// Effects is the extended argument group in its raw form.
type Effects struct {
	ShadowEnabled string
	ShadowColor   string
	ShadowBlur    string
	ShadowOffset  string
	BorderEnabled string
	BorderColor   string
	BorderWidth   string
	BorderStyle   string
}

// FromArgs parses the positional forms
//
//	<input> <output> <radius> <unit>
//	<input> <output> <radius> <unit> <shadow> <shadow_color> <shadow_blur> <shadow_offset> <border> <border_color> <border_width> <border_style>
func FromArgs(args []string) (input, output string, opts entity.Options, err error) {
	var effects *Effects
	switch len(args) {
	case legacyArgs:
	case extendedArgs:
		effects = &Effects{
			ShadowEnabled: args[4],
			ShadowColor:   args[5],
			ShadowBlur:    args[6],
			ShadowOffset:  args[7],
			BorderEnabled: args[8],
			BorderColor:   args[9],
			BorderWidth:   args[10],
			BorderStyle:   args[11],
		}
	default:
		return "", "", entity.Options{}, fmt.Errorf("%w: expected %d or %d, got %d",
			entity.ErrInvalidArguments, legacyArgs, extendedArgs, len(args))
	}

	opts, err = Parse(args[2], args[3], effects)
	if err != nil {
		return "", "", entity.Options{}, err
	}
	return args[0], args[1], opts, nil
}

// Parse builds Options from a radius value, its unit and an optional effect
// group. Any unit other than "percent" means absolute pixels.
func Parse(radius, unit string, effects *Effects) (entity.Options, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(radius), 64)
	if err != nil {
		return entity.Options{}, fmt.Errorf("radius: %w", err)
	}

	opts := entity.Options{Radius: entity.Radius{Value: value, Unit: ParseUnit(unit)}}
	if effects == nil {
		return opts, nil
	}

	if opts.Shadow, err = parseShadow(effects); err != nil {
		return entity.Options{}, err
	}
	if opts.Border, err = parseBorder(effects); err != nil {
		return entity.Options{}, err
	}
	return opts, nil
}

func ParseUnit(s string) entity.Unit {
	if strings.EqualFold(strings.TrimSpace(s), string(entity.UnitPercent)) {
		return entity.UnitPercent
	}
	return entity.UnitPixels
}

func parseShadow(e *Effects) (*entity.Shadow, error) {
	enabled, err := parseEnabled(e.ShadowEnabled)
	if err != nil || !enabled {
		return nil, err
	}

	c, err := processor.ParseHexColor(e.ShadowColor)
	if err != nil {
		return nil, fmt.Errorf("shadow color: %w", err)
	}
	blur, err := strconv.Atoi(strings.TrimSpace(e.ShadowBlur))
	if err != nil {
		return nil, fmt.Errorf("shadow blur: %w", err)
	}
	offset, err := strconv.Atoi(strings.TrimSpace(e.ShadowOffset))
	if err != nil {
		return nil, fmt.Errorf("shadow offset: %w", err)
	}
	return &entity.Shadow{Color: c, Blur: blur, Offset: offset}, nil
}

func parseBorder(e *Effects) (*entity.Border, error) {
	enabled, err := parseEnabled(e.BorderEnabled)
	if err != nil || !enabled {
		return nil, err
	}

	c, err := processor.ParseHexColor(e.BorderColor)
	if err != nil {
		return nil, fmt.Errorf("border color: %w", err)
	}
	width, err := strconv.Atoi(strings.TrimSpace(e.BorderWidth))
	if err != nil {
		return nil, fmt.Errorf("border width: %w", err)
	}

	style := entity.BorderStyle(strings.ToLower(strings.TrimSpace(e.BorderStyle)))
	switch style {
	case entity.BorderSolid, entity.BorderDashed, entity.BorderDotted:
	default:
		return nil, fmt.Errorf("%w: %q", entity.ErrInvalidBorderStyle, e.BorderStyle)
	}
	return &entity.Border{Color: c, Width: width, Style: style}, nil
}

// parseEnabled treats an empty string as false.
func parseEnabled(s string) (bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return false, nil
	}
	enabled, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("%w: %q is not a boolean", entity.ErrInvalidArguments, s)
	}
	return enabled, nil
}
