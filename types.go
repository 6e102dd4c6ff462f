// File: types.go
package main

// Captcha is one generated challenge. It lives for a single response and is
// never stored.
type Captcha struct {
	Answer      int    // evaluated result of the expression
	Text        string // expression as rendered, e.g. "12+7"
	Data        []byte // rendered image document
	ContentType string // MIME type of Data
}

// Generator produces a fresh captcha whose expression stays inside
// [minBound, maxBound].
type Generator interface {
	Generate(minBound, maxBound int) (*Captcha, error)
}

// Renderer turns expression text into an image document.
type Renderer interface {
	Render(text string) ([]byte, error)
	ContentType() string
}

// RenderOptions controls image layout and distortion.
type RenderOptions struct {
	Width, Height int     // canvas size in px
	FontSize      float64 // glyph size in px
	Noise         int     // number of noise strokes
	Color         bool    // random colours instead of greys
	Background    string  // hex colour, empty for transparent (svg) or white (png)
	MaxRotation   float64 // max glyph rotation in degrees, either direction
}

// HealthResponse is returned by /healthz
type HealthResponse struct {
	Status string `json:"status"`
}
