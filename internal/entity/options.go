package entity

import "image/color"

// Unit selects how Radius.Value is interpreted.
type Unit string

const (
	UnitPercent Unit = "percent"
	UnitPixels  Unit = "px"
)

type Radius struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

type BorderStyle string

const (
	BorderSolid  BorderStyle = "solid"
	BorderDashed BorderStyle = "dashed"
	BorderDotted BorderStyle = "dotted"
)

type Shadow struct {
	Color  color.NRGBA `json:"color"`
	Blur   int         `json:"blur"`
	Offset int         `json:"offset"`
}

type Border struct {
	Color color.NRGBA `json:"color"`
	Width int         `json:"width"`
	Style BorderStyle `json:"style"`
}

// Options is the full configuration of one rounding run.
// A nil Shadow or Border disables that effect entirely.
type Options struct {
	Radius Radius  `json:"radius"`
	Shadow *Shadow `json:"shadow,omitempty"`
	Border *Border `json:"border,omitempty"`
}
