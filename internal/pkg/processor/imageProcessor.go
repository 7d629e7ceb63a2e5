package processor

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"github.com/disintegration/imaging"
	"github.com/ds124wfegd/roundimage/internal/entity"
	"github.com/sirupsen/logrus"
	_ "golang.org/x/image/webp"
)

type ImageProcessor interface {
	Process(inputPath, outputPath string, opts entity.Options) error
	Round(r io.Reader, w io.Writer, opts entity.Options) (*Result, error)
}

// Result describes a rounded image.
type Result struct {
	Width    int
	Height   int
	RadiusPx float64
}

type imageProcessor struct{}

func NewImageProcessor() ImageProcessor {
	return &imageProcessor{}
}

// Process reads the image at inputPath, rounds it and writes a PNG to outputPath.
func (p *imageProcessor) Process(inputPath, outputPath string, opts entity.Options) error {
	img, err := imaging.Open(inputPath)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", entity.ErrDecode, inputPath, err)
	}

	out, err := Compose(img, opts)
	if err != nil {
		return err
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("%w: %v", entity.ErrEncode, err)
	}
	if err := Encode(file, out); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: %v", entity.ErrEncode, err)
	}
	return nil
}

// Round decodes an image from r, rounds it and writes the PNG to w.
func (p *imageProcessor) Round(r io.Reader, w io.Writer, opts entity.Options) (*Result, error) {
	img, err := Decode(r)
	if err != nil {
		return nil, err
	}

	out, err := Compose(img, opts)
	if err != nil {
		return nil, err
	}
	if err := Encode(w, out); err != nil {
		return nil, err
	}

	b := out.Bounds()
	return &Result{
		Width:    b.Dx(),
		Height:   b.Dy(),
		RadiusPx: RadiusPx(img.Bounds().Dx(), img.Bounds().Dy(), opts.Radius),
	}, nil
}

// Decode reads any format imaging understands. Animated inputs yield their
// first frame.
func Decode(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrDecode, err)
	}
	return img, nil
}

// Encode writes img as a PNG, keeping the alpha channel.
func Encode(w io.Writer, img image.Image) error {
	if err := imaging.Encode(w, img, imaging.PNG); err != nil {
		return fmt.Errorf("%w: %v", entity.ErrEncode, err)
	}
	return nil
}

// Compose rounds the corners of src and layers the optional shadow and
// border around it. Layers are combined with source-over blending in this
// order: shadow, image, border.
func Compose(src image.Image, opts entity.Options) (*image.NRGBA, error) {
	img := imaging.Clone(src)
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	radius := RadiusPx(w, h, opts.Radius)
	pad := Padding(opts)
	anchor := image.Pt(pad, pad)

	logrus.WithFields(logrus.Fields{
		"width":     w,
		"height":    h,
		"radius_px": radius,
		"padding":   pad,
		"shadow":    opts.Shadow != nil,
		"border":    opts.Border != nil,
	}).Debug("Rounding image")

	mask := RoundedMask(w, h, radius)
	canvas := imaging.New(w+2*pad, h+2*pad, color.NRGBA{})

	if s := opts.Shadow; s != nil {
		layer := shadowLayer(mask, *s)
		spread := shadowSpread(*s)
		at := anchor.Add(image.Pt(s.Offset-spread, s.Offset-spread))
		canvas = imaging.Overlay(canvas, layer, at, 1.0)
	}

	applyMask(img, mask)
	canvas = imaging.Overlay(canvas, img, anchor, 1.0)

	if b := opts.Border; b != nil {
		cb := canvas.Bounds()
		ring, err := borderLayer(cb.Dx(), cb.Dy(), pad, w, h, radius, mask, *b)
		if err != nil {
			return nil, err
		}
		canvas = imaging.Overlay(canvas, ring, image.Point{}, 1.0)
	}

	return canvas, nil
}

// applyMask scales the alpha of img by mask. Both start at the origin.
func applyMask(img *image.NRGBA, mask *image.Alpha) {
	b := img.Bounds()
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			i := img.PixOffset(x, y) + 3
			m := uint32(mask.AlphaAt(x, y).A)
			img.Pix[i] = uint8((uint32(img.Pix[i])*m + 127) / 0xff)
		}
	}
}

// shadowSpread is how far the blurred shadow layer reaches past the shape.
func shadowSpread(s entity.Shadow) int {
	return max(s.Blur, 0) + shadowMargin
}

// shadowLayer paints the mask shape in the shadow colour and blurs it. The
// layer is larger than the mask by shadowSpread on every side so the blur
// tail survives; the shape itself sits at (spread, spread).
func shadowLayer(mask *image.Alpha, s entity.Shadow) *image.NRGBA {
	spread := shadowSpread(s)
	mb := mask.Bounds()
	layer := image.NewNRGBA(image.Rect(0, 0, mb.Dx()+2*spread, mb.Dy()+2*spread))

	for y := 0; y < mb.Dy(); y++ {
		for x := 0; x < mb.Dx(); x++ {
			m := uint32(mask.AlphaAt(x, y).A)
			if m == 0 {
				continue
			}
			i := layer.PixOffset(x+spread, y+spread)
			layer.Pix[i+0] = s.Color.R
			layer.Pix[i+1] = s.Color.G
			layer.Pix[i+2] = s.Color.B
			layer.Pix[i+3] = uint8(m * uint32(s.Color.A) / 0xff)
		}
	}

	if s.Blur > 0 {
		return imaging.Blur(layer, float64(s.Blur))
	}
	return layer
}
