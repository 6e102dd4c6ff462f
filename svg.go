// File: svg.go
package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

const svgContentType = "image/svg+xml; charset=utf-8"

var ErrMissingGlyph = errors.New("font has no glyph for character")

// SVGRenderer draws each character as a filled outline path so the
// expression never appears as plain text in the markup.
type SVGRenderer struct {
	opts RenderOptions
	font *sfnt.Font
	rnd  *lockedRand
}

// NewSVGRenderer loads the embedded Go Regular font.
func NewSVGRenderer(opts RenderOptions, rnd *lockedRand) (*SVGRenderer, error) {
	f, err := sfnt.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	if rnd == nil {
		rnd = newLockedRand(0)
	}
	return &SVGRenderer{opts: opts, font: f, rnd: rnd}, nil
}

func (r *SVGRenderer) ContentType() string { return svgContentType }

// Render lays glyphs out evenly across the canvas, rotates each one about
// its own centre and mixes noise curves in between.
func (r *SVGRenderer) Render(text string) ([]byte, error) {
	chars := []rune(text)
	w, h := float64(r.opts.Width), float64(r.opts.Height)
	spacing := (w - 2) / float64(len(chars)+1)

	// one Buffer per call, sfnt.Font is shared between requests
	var buf sfnt.Buffer
	elems := make([]string, 0, len(chars)+r.opts.Noise)
	for i, ch := range chars {
		d, err := r.glyphPath(&buf, ch, spacing*float64(i+1), h/2)
		if err != nil {
			return nil, err
		}
		elems = append(elems, fmt.Sprintf(`<path fill="%s" d="%s"/>`, r.rnd.glyphColor(r.opts.Color), d))
	}
	for i := 0; i < r.opts.Noise; i++ {
		elems = append(elems, r.noisePath())
	}
	r.rnd.shuffle(len(elems), func(i, j int) { elems[i], elems[j] = elems[j], elems[i] })

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0,0,%d,%d">`,
		r.opts.Width, r.opts.Height, r.opts.Width, r.opts.Height)
	if r.opts.Background != "" {
		fmt.Fprintf(&sb, `<rect width="100%%" height="100%%" fill="%s"/>`, r.opts.Background)
	}
	for _, e := range elems {
		sb.WriteString(e)
	}
	sb.WriteString("</svg>")
	return []byte(sb.String()), nil
}

// glyphPath returns path data for ch centred on (cx, cy).
func (r *SVGRenderer) glyphPath(buf *sfnt.Buffer, ch rune, cx, cy float64) (string, error) {
	idx, err := r.font.GlyphIndex(buf, ch)
	if err != nil {
		return "", fmt.Errorf("glyph index %q: %w", ch, err)
	}
	if idx == 0 {
		return "", fmt.Errorf("%w %q", ErrMissingGlyph, ch)
	}
	ppem := fixed.Int26_6(math.Round(r.opts.FontSize * 64))
	bounds, _, err := r.font.GlyphBounds(buf, idx, ppem, font.HintingNone)
	if err != nil {
		return "", fmt.Errorf("glyph bounds %q: %w", ch, err)
	}
	segs, err := r.font.LoadGlyph(buf, idx, ppem, nil)
	if err != nil {
		return "", fmt.Errorf("load glyph %q: %w", ch, err)
	}

	gx := float64(bounds.Min.X+bounds.Max.X) / 128
	gy := float64(bounds.Min.Y+bounds.Max.Y) / 128
	theta := r.rnd.floatRange(-r.opts.MaxRotation, r.opts.MaxRotation) * math.Pi / 180
	sin, cos := math.Sincos(theta)

	var d strings.Builder
	point := func(p fixed.Point26_6) {
		x := float64(p.X)/64 - gx
		y := float64(p.Y)/64 - gy
		d.WriteByte(' ')
		d.WriteString(formatCoord(cx + x*cos - y*sin))
		d.WriteByte(' ')
		d.WriteString(formatCoord(cy + x*sin + y*cos))
	}
	for i, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if i > 0 {
				d.WriteString("Z")
			}
			d.WriteString("M")
			point(seg.Args[0])
		case sfnt.SegmentOpLineTo:
			d.WriteString("L")
			point(seg.Args[0])
		case sfnt.SegmentOpQuadTo:
			d.WriteString("Q")
			point(seg.Args[0])
			point(seg.Args[1])
		case sfnt.SegmentOpCubeTo:
			d.WriteString("C")
			point(seg.Args[0])
			point(seg.Args[1])
			point(seg.Args[2])
		}
	}
	if len(segs) > 0 {
		d.WriteString("Z")
	}
	return d.String(), nil
}

// noisePath is a cubic curve crossing the canvas from left to right.
func (r *SVGRenderer) noisePath() string {
	start, mid1, mid2, end := noiseCurve(r.rnd, r.opts.Width, r.opts.Height)
	return fmt.Sprintf(`<path d="M%d %d C%d %d %d %d %d %d" stroke="%s" fill="none"/>`,
		start[0], start[1], mid1[0], mid1[1], mid2[0], mid2[1], end[0], end[1],
		r.rnd.glyphColor(r.opts.Color))
}

// noiseCurve picks the control points for one noise stroke.
func noiseCurve(rnd *lockedRand, width, height int) (start, mid1, mid2, end [2]int) {
	start = [2]int{rnd.intRange(1, 21), rnd.intRange(1, height-1)}
	end = [2]int{rnd.intRange(width-21, width-1), rnd.intRange(1, height-1)}
	mid1 = [2]int{rnd.intRange(width/2-21, width/2+21), rnd.intRange(1, height-1)}
	mid2 = [2]int{rnd.intRange(width/2-21, width/2+21), rnd.intRange(1, height-1)}
	return
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
