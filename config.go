// File: config.go
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	envPrefix = "captcha"

	FormatSVG = "svg"
	FormatPNG = "png"

	defaultShutdownTimeout = 5 * time.Second
)

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Config is read once at startup from CAPTCHA_* environment variables.
type Config struct {
	Port int `envconfig:"PORT" default:"3000"`

	MathMin      int    `envconfig:"MATH_MIN" default:"1"`
	MathMax      int    `envconfig:"MATH_MAX" default:"1256"`
	MathOperator string `envconfig:"MATH_OPERATOR" default:"+"`

	Format      string  `envconfig:"FORMAT" default:"svg"`
	Width       int     `envconfig:"WIDTH" default:"150"`
	Height      int     `envconfig:"HEIGHT" default:"50"`
	FontSize    float64 `envconfig:"FONT_SIZE" default:"56"`
	Noise       int     `envconfig:"NOISE" default:"1"`
	Color       bool    `envconfig:"COLOR" default:"false"`
	Background  string  `envconfig:"BACKGROUND"`
	MaxRotation float64 `envconfig:"MAX_ROTATION" default:"15"`

	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat       string        `envconfig:"LOG_FORMAT" default:"console"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`
}

// LoadConfig reads envFile into the environment (existing variables win)
// and then processes CAPTCHA_* variables. A missing envFile is only an
// error when required is set.
func LoadConfig(envFile string, required bool) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if required || !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("load env file %s: %w", envFile, err)
			}
		}
	}
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}
	return &cfg, nil
}

// Validate checks settings that would break the listener or the renderer.
// Math bounds are left alone: bad bounds fail per request.
func (c *Config) Validate() error {
	var errs []error
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range", c.Port))
	}
	switch c.MathOperator {
	case "+", "-", "+-", "-+":
	default:
		errs = append(errs, fmt.Errorf("%w: got %q", ErrInvalidOperator, c.MathOperator))
	}
	if c.Format != FormatSVG && c.Format != FormatPNG {
		errs = append(errs, fmt.Errorf("format %q must be %q or %q", c.Format, FormatSVG, FormatPNG))
	}
	if c.Width < 44 || c.Height < 2 {
		errs = append(errs, fmt.Errorf("canvas %dx%d too small", c.Width, c.Height))
	}
	if c.FontSize <= 0 {
		errs = append(errs, errors.New("font size must be positive"))
	}
	if c.Noise < 0 {
		errs = append(errs, errors.New("noise must not be negative"))
	}
	if c.MaxRotation < 0 || c.MaxRotation > 180 {
		errs = append(errs, fmt.Errorf("max rotation %v outside [0, 180]", c.MaxRotation))
	}
	if c.Background != "" && !hexColor.MatchString(c.Background) {
		errs = append(errs, fmt.Errorf("background %q is not a hex colour", c.Background))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("shutdown timeout must be positive"))
	}
	return errors.Join(errs...)
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c *Config) RenderOptions() RenderOptions {
	return RenderOptions{
		Width:       c.Width,
		Height:      c.Height,
		FontSize:    c.FontSize,
		Noise:       c.Noise,
		Color:       c.Color,
		Background:  c.Background,
		MaxRotation: c.MaxRotation,
	}
}
