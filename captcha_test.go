package main

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Port:            3000,
		MathMin:         1,
		MathMax:         1256,
		MathOperator:    "+",
		Format:          FormatSVG,
		Width:           150,
		Height:          50,
		FontSize:        56,
		Noise:           1,
		MaxRotation:     15,
		LogLevel:        "info",
		LogFormat:       "json",
		ShutdownTimeout: defaultShutdownTimeout,
	}
}

func TestMathCaptcha_Generate(t *testing.T) {
	gen, err := NewMathCaptchaFromConfig(testConfig())
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		c, err := gen.Generate(1, 1256)
		require.NoError(t, err)
		assert.Equal(t, svgContentType, c.ContentType)
		assert.True(t, strings.HasPrefix(string(c.Data), "<svg"))

		left, right, ok := strings.Cut(c.Text, "+")
		require.True(t, ok, c.Text)
		l, err := strconv.Atoi(left)
		require.NoError(t, err)
		r, err := strconv.Atoi(right)
		require.NoError(t, err)
		assert.Equal(t, l+r, c.Answer)
		assert.GreaterOrEqual(t, c.Answer, 1)
		assert.LessOrEqual(t, c.Answer, 1256)
	}
}

func TestMathCaptcha_GenerateInvalidBounds(t *testing.T) {
	gen, err := NewMathCaptchaFromConfig(testConfig())
	require.NoError(t, err)

	c, err := gen.Generate(1256, 1)
	assert.ErrorIs(t, err, ErrInvalidBounds)
	assert.Nil(t, c)
}

func TestNewMathCaptchaFromConfig_PNG(t *testing.T) {
	cfg := testConfig()
	cfg.Format = FormatPNG
	gen, err := NewMathCaptchaFromConfig(cfg)
	require.NoError(t, err)

	c, err := gen.Generate(1, 20)
	require.NoError(t, err)
	assert.Equal(t, pngContentType, c.ContentType)
	assert.Equal(t, "\x89PNG", string(c.Data[:4]))
}

func TestNewMathCaptchaFromConfig_BadOperator(t *testing.T) {
	cfg := testConfig()
	cfg.MathOperator = "/"
	_, err := NewMathCaptchaFromConfig(cfg)
	assert.ErrorIs(t, err, ErrInvalidOperator)
}
