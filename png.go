// File: png.go
package main

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

const pngContentType = "image/png"

// PNGRenderer rasterises the same layout as SVGRenderer with gg.
type PNGRenderer struct {
	opts RenderOptions
	font *truetype.Font
	rnd  *lockedRand
}

func NewPNGRenderer(opts RenderOptions, rnd *lockedRand) (*PNGRenderer, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	if rnd == nil {
		rnd = newLockedRand(0)
	}
	return &PNGRenderer{opts: opts, font: f, rnd: rnd}, nil
}

func (r *PNGRenderer) ContentType() string { return pngContentType }

func (r *PNGRenderer) Render(text string) ([]byte, error) {
	dc := gg.NewContext(r.opts.Width, r.opts.Height)
	if r.opts.Background != "" {
		dc.SetHexColor(r.opts.Background)
	} else {
		dc.SetRGB(1, 1, 1)
	}
	dc.Clear()

	// faces keep a glyph cache and are not safe to share across requests
	face := truetype.NewFace(r.font, &truetype.Options{Size: r.opts.FontSize})
	defer face.Close()
	dc.SetFontFace(face)

	chars := []rune(text)
	spacing := (float64(r.opts.Width) - 2) / float64(len(chars)+1)
	cy := float64(r.opts.Height) / 2
	for i, ch := range chars {
		cx := spacing * float64(i+1)
		dc.Push()
		dc.RotateAbout(gg.Radians(r.rnd.floatRange(-r.opts.MaxRotation, r.opts.MaxRotation)), cx, cy)
		dc.SetHexColor(r.rnd.glyphColor(r.opts.Color))
		dc.DrawStringAnchored(string(ch), cx, cy, 0.5, 0.35)
		dc.Pop()
	}

	dc.SetLineWidth(1.5)
	for i := 0; i < r.opts.Noise; i++ {
		start, mid1, mid2, end := noiseCurve(r.rnd, r.opts.Width, r.opts.Height)
		dc.MoveTo(float64(start[0]), float64(start[1]))
		dc.CubicTo(float64(mid1[0]), float64(mid1[1]), float64(mid2[0]), float64(mid2[1]), float64(end[0]), float64(end[1]))
		dc.SetHexColor(r.rnd.glyphColor(r.opts.Color))
		dc.Stroke()
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
