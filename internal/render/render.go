package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"iss-display-gadget/internal/domain"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Panel size of the gadget's display in pixels.
const (
	Width  = 128
	Height = 64
)

var face = basicfont.Face7x13

// Rasterize draws frame as white text on black. Each line's (X, Y) is the
// top-left of its text; Scale magnifies the 7x13 font with nearest
// neighbour sampling. Text running off the panel is clipped.
func Rasterize(frame domain.Frame, width, height int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))

	for _, l := range frame.Lines {
		drawLine(img, l)
	}
	return img
}

func drawLine(dst *image.Gray, l domain.TextLine) {
	if l.Text == "" {
		return
	}
	scale := l.Scale
	if scale < 1 {
		scale = 1
	}

	adv := font.MeasureString(face, l.Text).Ceil()
	glyphs := image.NewAlpha(image.Rect(0, 0, adv, face.Height))
	d := font.Drawer{
		Dst:  glyphs,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(l.Text)

	dr := image.Rect(l.X, l.Y, l.X+adv*scale, l.Y+face.Height*scale)
	draw.NearestNeighbor.Scale(dst, dr, glyphs, glyphs.Bounds(), draw.Over, nil)
}

// PNG encodes the frame as the panel shows it, backlight included.
func PNG(frame domain.Frame) ([]byte, error) {
	var buf bytes.Buffer
	img := Tint(Rasterize(frame, Width, Height), frame.Backlight)
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("render png: %w", err)
	}
	return buf.Bytes(), nil
}

// Lit reports whether the pixel at (x, y) is drawn.
func Lit(img *image.Gray, x, y int) bool {
	return img.GrayAt(x, y).Y >= 0x80
}

// Tint colours a rasterised frame with the backlight, the way the panel
// looks with its RGB light behind it.
func Tint(img *image.Gray, c domain.Color) *image.RGBA {
	out := image.NewRGBA(img.Bounds())
	bg := color.RGBA{R: c.R / 4, G: c.G / 4, B: c.B / 4, A: 0xff}
	fg := color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
	if c == domain.Off {
		fg = color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff}
	}

	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if Lit(img, x, y) {
				out.SetRGBA(x, y, fg)
			} else {
				out.SetRGBA(x, y, bg)
			}
		}
	}
	return out
}
