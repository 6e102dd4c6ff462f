package main

import (
	"bytes"
	"encoding/xml"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultRenderOptions() RenderOptions {
	return RenderOptions{
		Width:       150,
		Height:      50,
		FontSize:    56,
		Noise:       1,
		MaxRotation: 15,
	}
}

// svgElements parses doc and counts start elements by local name.
func svgElements(t *testing.T, doc []byte) (root xml.StartElement, counts map[string]int) {
	t.Helper()
	counts = map[string]int{}
	dec := xml.NewDecoder(bytes.NewReader(doc))
	first := true
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		require.NoError(t, err, "markup must be well-formed XML")
		if se, ok := tok.(xml.StartElement); ok {
			if first {
				root = se.Copy()
				first = false
			}
			counts[se.Name.Local]++
		}
	}
	return root, counts
}

func attr(se xml.StartElement, name string) string {
	for _, a := range se.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

func TestSVGRenderer_Render(t *testing.T) {
	r, err := NewSVGRenderer(defaultRenderOptions(), newLockedRand(1))
	require.NoError(t, err)

	doc, err := r.Render("12+7")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("<svg")))

	root, counts := svgElements(t, doc)
	assert.Equal(t, "svg", root.Name.Local)
	assert.Equal(t, "http://www.w3.org/2000/svg", root.Name.Space)
	assert.Equal(t, "150", attr(root, "width"))
	assert.Equal(t, "50", attr(root, "height"))
	assert.Equal(t, "0,0,150,50", attr(root, "viewBox"))

	// four glyphs plus one noise curve, no readable text
	assert.Equal(t, 5, counts["path"])
	assert.Zero(t, counts["text"])
	assert.NotContains(t, string(doc), "12+7")
}

func TestSVGRenderer_Background(t *testing.T) {
	opts := defaultRenderOptions()
	opts.Background = "#f0f0f0"
	opts.Noise = 3
	opts.Color = true
	r, err := NewSVGRenderer(opts, nil)
	require.NoError(t, err)

	doc, err := r.Render("5-3")
	require.NoError(t, err)

	_, counts := svgElements(t, doc)
	assert.Equal(t, 1, counts["rect"])
	assert.Equal(t, 6, counts["path"])
	assert.Contains(t, string(doc), `fill="#f0f0f0"`)
}

func TestSVGRenderer_Varies(t *testing.T) {
	r, err := NewSVGRenderer(defaultRenderOptions(), nil)
	require.NoError(t, err)

	a, err := r.Render("40+2")
	require.NoError(t, err)
	b, err := r.Render("40+2")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestSVGRenderer_MissingGlyph(t *testing.T) {
	r, err := NewSVGRenderer(defaultRenderOptions(), nil)
	require.NoError(t, err)

	_, err = r.Render("1+字")
	assert.ErrorIs(t, err, ErrMissingGlyph)
}

func TestSVGRenderer_ContentType(t *testing.T) {
	r, err := NewSVGRenderer(defaultRenderOptions(), nil)
	require.NoError(t, err)
	assert.Equal(t, "image/svg+xml; charset=utf-8", r.ContentType())
}
