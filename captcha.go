// File: captcha.go
package main

import "fmt"

// MathCaptcha renders a random arithmetic expression. The answer is handed
// back to the caller only; nothing is retained between calls.
type MathCaptcha struct {
	expr     *ExprGenerator
	renderer Renderer
}

func NewMathCaptcha(expr *ExprGenerator, renderer Renderer) *MathCaptcha {
	return &MathCaptcha{expr: expr, renderer: renderer}
}

// NewMathCaptchaFromConfig wires the expression generator and the renderer
// selected by cfg.Format.
func NewMathCaptchaFromConfig(cfg *Config) (*MathCaptcha, error) {
	rnd := newLockedRand(0)
	expr, err := NewExprGenerator(cfg.MathOperator, rnd)
	if err != nil {
		return nil, err
	}
	opts := cfg.RenderOptions()
	var renderer Renderer
	switch cfg.Format {
	case FormatPNG:
		renderer, err = NewPNGRenderer(opts, rnd)
	default:
		renderer, err = NewSVGRenderer(opts, rnd)
	}
	if err != nil {
		return nil, err
	}
	return NewMathCaptcha(expr, renderer), nil
}

func (m *MathCaptcha) Generate(minBound, maxBound int) (*Captcha, error) {
	e, err := m.expr.Next(minBound, maxBound)
	if err != nil {
		return nil, err
	}
	text := e.Text()
	data, err := m.renderer.Render(text)
	if err != nil {
		return nil, fmt.Errorf("render %q: %w", text, err)
	}
	return &Captcha{
		Answer:      e.Answer(),
		Text:        text,
		Data:        data,
		ContentType: m.renderer.ContentType(),
	}, nil
}
