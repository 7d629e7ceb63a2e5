package processor

import (
	"bytes"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/ds124wfegd/roundimage/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.NRGBA{A: 255}
	red   = color.NRGBA{R: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
)

// TestRadiusPx проверяет вычисление радиуса и ограничение половиной меньшей стороны
func TestRadiusPx(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		radius entity.Radius
		want   float64
	}{
		{
			name:   "twenty percent of square",
			width:  200,
			height: 200,
			radius: entity.Radius{Value: 20, Unit: entity.UnitPercent},
			want:   40,
		},
		{
			name:   "percent uses smaller side",
			width:  400,
			height: 100,
			radius: entity.Radius{Value: 10, Unit: entity.UnitPercent},
			want:   10,
		},
		{
			name:   "percent clamped at half",
			width:  100,
			height: 50,
			radius: entity.Radius{Value: 100, Unit: entity.UnitPercent},
			want:   25,
		},
		{
			name:   "absolute pixels",
			width:  200,
			height: 200,
			radius: entity.Radius{Value: 16, Unit: entity.UnitPixels},
			want:   16,
		},
		{
			name:   "absolute clamped at half",
			width:  200,
			height: 120,
			radius: entity.Radius{Value: 500, Unit: entity.UnitPixels},
			want:   60,
		},
		{
			name:   "negative clamped to zero",
			width:  200,
			height: 200,
			radius: entity.Radius{Value: -5, Unit: entity.UnitPixels},
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, RadiusPx(tt.width, tt.height, tt.radius), 1e-9)
		})
	}
}

// TestRadiusPxPercentMonotonic проверяет монотонность процентного радиуса
func TestRadiusPxPercentMonotonic(t *testing.T) {
	prev := -1.0
	for v := 0.0; v <= 150; v += 2.5 {
		got := RadiusPx(320, 180, entity.Radius{Value: v, Unit: entity.UnitPercent})
		assert.GreaterOrEqual(t, got, prev)
		assert.LessOrEqual(t, got, 90.0)
		if v >= 50 {
			assert.Equal(t, 90.0, got)
		}
		prev = got
	}
}

// TestPadding проверяет расчет полей холста для каждого эффекта
func TestPadding(t *testing.T) {
	shadow := &entity.Shadow{Color: black, Blur: 10, Offset: 5}
	border := &entity.Border{Color: red, Width: 3, Style: entity.BorderSolid}

	assert.Equal(t, 0, Padding(entity.Options{}))
	assert.Equal(t, 25, Padding(entity.Options{Shadow: shadow}))
	assert.Equal(t, 3, Padding(entity.Options{Border: border}))
	assert.Equal(t, 28, Padding(entity.Options{Shadow: shadow, Border: border}))
}

// TestComposeRoundedOnly проверяет режим без эффектов
func TestComposeRoundedOnly(t *testing.T) {
	src := imaging.New(200, 200, white)
	opts := entity.Options{Radius: entity.Radius{Value: 20, Unit: entity.UnitPercent}}

	out, err := Compose(src, opts)
	require.NoError(t, err)

	assert.Equal(t, 200, out.Bounds().Dx())
	assert.Equal(t, 200, out.Bounds().Dy())

	for _, p := range []image.Point{{0, 0}, {199, 0}, {0, 199}, {199, 199}} {
		assert.Equal(t, uint8(0), out.NRGBAAt(p.X, p.Y).A, "corner %v", p)
	}
	assert.Equal(t, white, out.NRGBAAt(100, 100))

	// Alpha of an opaque source follows the mask exactly.
	mask := RoundedMask(200, 200, 40)
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			require.Equal(t, mask.AlphaAt(x, y).A, out.NRGBAAt(x, y).A)
		}
	}
}

// TestComposeZeroRadius проверяет, что нулевой радиус не меняет изображение
func TestComposeZeroRadius(t *testing.T) {
	src := imaging.New(40, 30, blue)

	out, err := Compose(src, entity.Options{Radius: entity.Radius{Value: 0, Unit: entity.UnitPixels}})
	require.NoError(t, err)

	for y := 0; y < 30; y++ {
		for x := 0; x < 40; x++ {
			require.Equal(t, blue, out.NRGBAAt(x, y))
		}
	}
}

// TestComposeKeepsSourceAlpha проверяет, что прозрачность исходника сохраняется
func TestComposeKeepsSourceAlpha(t *testing.T) {
	half := color.NRGBA{R: 10, G: 20, B: 30, A: 128}
	src := imaging.New(50, 50, half)

	out, err := Compose(src, entity.Options{Radius: entity.Radius{Value: 10, Unit: entity.UnitPixels}})
	require.NoError(t, err)

	assert.Equal(t, half, out.NRGBAAt(25, 25))
	assert.Equal(t, uint8(0), out.NRGBAAt(0, 0).A)
}

// TestComposeShadow проверяет размер холста и видимость тени
func TestComposeShadow(t *testing.T) {
	src := imaging.New(200, 200, white)
	opts := entity.Options{
		Radius: entity.Radius{Value: 20, Unit: entity.UnitPercent},
		Shadow: &entity.Shadow{Color: black, Blur: 10, Offset: 5},
	}

	out, err := Compose(src, opts)
	require.NoError(t, err)

	assert.Equal(t, 250, out.Bounds().Dx())
	assert.Equal(t, 250, out.Bounds().Dy())

	imgX := Padding(opts)
	require.Equal(t, 25, imgX)

	// The image stays on top.
	assert.Equal(t, white, out.NRGBAAt(imgX+100, imgX+100))

	// Right of the image the shifted shadow shows through.
	shadow := out.NRGBAAt(imgX+200+2, imgX+100)
	assert.Greater(t, shadow.A, uint8(0))
	assert.Equal(t, uint8(0), shadow.R)
	assert.Equal(t, uint8(0), shadow.G)
	assert.Equal(t, uint8(0), shadow.B)

	// Below-right the shadow is visible, above-left it is not.
	assert.Greater(t, out.NRGBAAt(imgX+100, imgX+200+2).A, uint8(0))
	assert.Equal(t, uint8(0), out.NRGBAAt(0, 0).A)
	assert.Equal(t, uint8(0), out.NRGBAAt(imgX+100, 2).A)
}

// TestComposeBorderSolid проверяет сплошную рамку
func TestComposeBorderSolid(t *testing.T) {
	src := imaging.New(200, 200, blue)
	opts := entity.Options{
		Radius: entity.Radius{Value: 20, Unit: entity.UnitPercent},
		Border: &entity.Border{Color: red, Width: 3, Style: entity.BorderSolid},
	}

	out, err := Compose(src, opts)
	require.NoError(t, err)

	assert.Equal(t, 206, out.Bounds().Dx())
	assert.Equal(t, 206, out.Bounds().Dy())

	// Ring along each straight edge, outside the image.
	assert.Equal(t, red, out.NRGBAAt(103, 1))
	assert.Equal(t, red, out.NRGBAAt(103, 204))
	assert.Equal(t, red, out.NRGBAAt(1, 103))
	assert.Equal(t, red, out.NRGBAAt(204, 103))

	// Outer corners stay transparent.
	assert.Equal(t, uint8(0), out.NRGBAAt(0, 0).A)
	assert.Equal(t, uint8(0), out.NRGBAAt(205, 205).A)

	// The ring never touches the interior of the rounded image.
	mask := RoundedMask(200, 200, 40)
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			if mask.AlphaAt(x, y).A == 0xff {
				require.Equal(t, blue, out.NRGBAAt(x+3, y+3), "pixel %d,%d", x, y)
			}
		}
	}
}

// TestComposeBorderStyles проверяет пунктирные и точечные рамки
func TestComposeBorderStyles(t *testing.T) {
	src := imaging.New(200, 200, blue)

	count := func(style entity.BorderStyle) int {
		out, err := Compose(src, entity.Options{
			Radius: entity.Radius{Value: 15, Unit: entity.UnitPercent},
			Border: &entity.Border{Color: red, Width: 4, Style: style},
		})
		require.NoError(t, err)

		n := 0
		b := out.Bounds()
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				if out.NRGBAAt(x, y) == red {
					n++
				}
			}
		}
		return n
	}

	solid := count(entity.BorderSolid)
	dashed := count(entity.BorderDashed)
	dotted := count(entity.BorderDotted)

	assert.Greater(t, dotted, 0)
	assert.Less(t, dashed, solid)
	assert.Less(t, dotted, dashed)
}

// TestComposeInvalidBorderStyle проверяет ошибку неизвестного стиля рамки
func TestComposeInvalidBorderStyle(t *testing.T) {
	src := imaging.New(20, 20, blue)
	_, err := Compose(src, entity.Options{
		Border: &entity.Border{Color: red, Width: 2, Style: "wavy"},
	})
	assert.ErrorIs(t, err, entity.ErrInvalidBorderStyle)
}

// TestComposeShadowAndBorder проверяет порядок слоев при обоих эффектах
func TestComposeShadowAndBorder(t *testing.T) {
	src := imaging.New(100, 100, white)
	opts := entity.Options{
		Radius: entity.Radius{Value: 10, Unit: entity.UnitPixels},
		Shadow: &entity.Shadow{Color: black, Blur: 4, Offset: 3},
		Border: &entity.Border{Color: red, Width: 2, Style: entity.BorderSolid},
	}

	out, err := Compose(src, opts)
	require.NoError(t, err)

	pad := Padding(opts)
	require.Equal(t, 4+3+10+2, pad)
	assert.Equal(t, 100+2*pad, out.Bounds().Dx())

	assert.Equal(t, white, out.NRGBAAt(pad+50, pad+50))
	// The border is drawn over the shadow.
	assert.Equal(t, red, out.NRGBAAt(pad+50, pad+100+1))
}

// TestPerimeterPosition проверяет позицию точки вдоль контура
func TestPerimeterPosition(t *testing.T) {
	pm := perimeter{x0: 0, y0: 0, x1: 100, y1: 50, r: 10}
	arc := math.Pi / 2 * 10

	assert.InDelta(t, 0, pm.position(10, -1), 1e-9)
	assert.InDelta(t, 40, pm.position(50, 1), 1e-9)
	assert.InDelta(t, 80+arc/2, pm.position(90+10, 0), 1e-6)
	assert.InDelta(t, 80+arc+15, pm.position(101, 25), 1e-9)
	assert.InDelta(t, 80+2*arc+30+30, pm.position(60, 51), 1e-9)
	assert.InDelta(t, 160+3*arc+30+20, pm.position(-1, 20), 1e-9)

	// Walking clockwise never decreases the position.
	points := []image.Point{{20, 0}, {95, 2}, {100, 30}, {98, 48}, {40, 50}, {2, 48}, {0, 20}}
	prev := -1.0
	for _, p := range points {
		s := pm.position(float64(p.X), float64(p.Y))
		assert.Greater(t, s, prev, "point %v", p)
		prev = s
	}
}

// TestProcessFile проверяет полный цикл чтения и записи файла
func TestProcessFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.jpg")
	output := filepath.Join(dir, "output.png")
	require.NoError(t, imaging.Save(imaging.New(120, 80, white), input))

	processor := NewImageProcessor()
	err := processor.Process(input, output, entity.Options{
		Radius: entity.Radius{Value: 25, Unit: entity.UnitPercent},
		Border: &entity.Border{Color: red, Width: 2, Style: entity.BorderDotted},
	})
	require.NoError(t, err)

	result, err := imaging.Open(output)
	require.NoError(t, err)
	assert.Equal(t, 124, result.Bounds().Dx())
	assert.Equal(t, 84, result.Bounds().Dy())
}

// TestProcessErrors проверяет ошибки чтения и записи
func TestProcessErrors(t *testing.T) {
	dir := t.TempDir()
	processor := NewImageProcessor()
	opts := entity.Options{Radius: entity.Radius{Value: 10, Unit: entity.UnitPercent}}

	t.Run("missing input", func(t *testing.T) {
		output := filepath.Join(dir, "missing.png")
		err := processor.Process(filepath.Join(dir, "nope.png"), output, opts)
		assert.ErrorIs(t, err, entity.ErrDecode)
		assert.NoFileExists(t, output)
	})

	t.Run("not an image", func(t *testing.T) {
		input := filepath.Join(dir, "notes.txt")
		require.NoError(t, os.WriteFile(input, []byte("hello"), 0644))
		err := processor.Process(input, filepath.Join(dir, "notes.png"), opts)
		assert.ErrorIs(t, err, entity.ErrDecode)
	})

	t.Run("unwritable output", func(t *testing.T) {
		input := filepath.Join(dir, "ok.png")
		require.NoError(t, imaging.Save(imaging.New(10, 10, white), input))
		err := processor.Process(input, filepath.Join(dir, "no", "such", "dir.png"), opts)
		assert.ErrorIs(t, err, entity.ErrEncode)
	})
}

// TestRoundMatchesLegacy проверяет побайтовое совпадение без эффектов
func TestRoundMatchesLegacy(t *testing.T) {
	var src bytes.Buffer
	require.NoError(t, imaging.Encode(&src, imaging.New(64, 48, blue), imaging.PNG))

	opts := entity.Options{Radius: entity.Radius{Value: 30, Unit: entity.UnitPercent}}

	var got bytes.Buffer
	res, err := NewImageProcessor().Round(bytes.NewReader(src.Bytes()), &got, opts)
	require.NoError(t, err)
	assert.Equal(t, 64, res.Width)
	assert.Equal(t, 48, res.Height)
	assert.InDelta(t, 14.4, res.RadiusPx, 1e-9)

	// Rounded-only output: the source with the mask as its alpha.
	legacy := imaging.Clone(imaging.New(64, 48, blue))
	mask := RoundedMask(64, 48, RadiusPx(64, 48, opts.Radius))
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			legacy.Pix[legacy.PixOffset(x, y)+3] = mask.AlphaAt(x, y).A
		}
	}

	decoded, err := imaging.Decode(bytes.NewReader(got.Bytes()))
	require.NoError(t, err)
	out := imaging.Clone(decoded)
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			want := legacy.NRGBAAt(x, y)
			have := out.NRGBAAt(x, y)
			require.Equal(t, want.A, have.A)
			if want.A > 0 {
				require.Equal(t, want, have)
			}
		}
	}

	var again bytes.Buffer
	_, err = NewImageProcessor().Round(bytes.NewReader(src.Bytes()), &again, entity.Options{
		Radius: opts.Radius,
		Shadow: nil,
		Border: nil,
	})
	require.NoError(t, err)
	assert.Equal(t, got.Bytes(), again.Bytes())
}
