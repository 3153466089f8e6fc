package scatter

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	"github.com/tdewolff/canvas"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

// Margin is the space between the surface border and the plot area.
type Margin struct {
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
}

// Offset is the displacement of the tooltip from the mark that triggered it.
type Offset struct {
	Top  float64 `yaml:"top"`
	Left float64 `yaml:"left"`
}

// Config holds the layout and style of a chart. All lengths are in surface units (pixels for the web output).
type Config struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Margin Margin  `yaml:"margin"`

	// Headroom multiplies the largest percentRenting to obtain the top of the y domain.
	Headroom float64 `yaml:"headroom"`

	Radius          float64 `yaml:"radius"`
	Fill            string  `yaml:"fill"`
	LabelColor      string  `yaml:"labelColor"`
	LabelFontSize   float64 `yaml:"labelFontSize"`
	AxisFontSize    float64 `yaml:"axisFontSize"`
	CaptionFontSize float64 `yaml:"captionFontSize"`
	Background      string  `yaml:"background"`

	XTitle string `yaml:"xTitle"`
	YTitle string `yaml:"yTitle"`

	TooltipOffset Offset `yaml:"tooltipOffset"`
}

// DefaultHeadroom leaves space above the highest point.
const DefaultHeadroom = 1.2

var DefaultConfig = Config{
	Width:           960.0,
	Height:          500.0,
	Margin:          Margin{Top: 20.0, Right: 40.0, Bottom: 60.0, Left: 100.0},
	Headroom:        DefaultHeadroom,
	Radius:          10.0,
	Fill:            "cyan",
	LabelColor:      "black",
	LabelFontSize:   10.0,
	AxisFontSize:    10.0,
	CaptionFontSize: 14.0,
	Background:      "white",
	XTitle:          "Number of households received food stamps (past 12 months)",
	YTitle:          "People renting homes (%)",
	TooltipOffset:   Offset{Top: 80.0, Left: -60.0},
}

// LoadConfig decodes a YAML config on top of DefaultConfig.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// PlotWidth is the width of the area inside the margins.
func (cfg Config) PlotWidth() float64 {
	return cfg.Width - cfg.Margin.Left - cfg.Margin.Right
}

// PlotHeight is the height of the area inside the margins.
func (cfg Config) PlotHeight() float64 {
	return cfg.Height - cfg.Margin.Top - cfg.Margin.Bottom
}

// Validate returns an error wrapping ErrInvalidConfig for unusable settings.
func (cfg Config) Validate() error {
	if !(0.0 < cfg.PlotWidth()) || !(0.0 < cfg.PlotHeight()) {
		return fmt.Errorf("%w: plot area %gx%g must be positive", ErrInvalidConfig, cfg.PlotWidth(), cfg.PlotHeight())
	} else if !(0.0 < cfg.Headroom) || math.IsInf(cfg.Headroom, 0) {
		return fmt.Errorf("%w: headroom %g must be positive", ErrInvalidConfig, cfg.Headroom)
	} else if cfg.Radius < 0.0 {
		return fmt.Errorf("%w: radius %g must not be negative", ErrInvalidConfig, cfg.Radius)
	} else if !(0.0 < cfg.LabelFontSize) || !(0.0 < cfg.AxisFontSize) || !(0.0 < cfg.CaptionFontSize) {
		return fmt.Errorf("%w: font sizes must be positive", ErrInvalidConfig)
	}
	for _, s := range []string{cfg.Fill, cfg.LabelColor, cfg.Background} {
		if _, err := ParseColor(s); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}

// ParseColor parses a CSS color name, "transparent", or a #rgb or #rrggbb hex color.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "transparent" {
		return color.RGBA{}, nil
	} else if c, ok := colornames.Map[s]; ok {
		return c, nil
	} else if strings.HasPrefix(s, "#") && (len(s) == 4 || len(s) == 7) {
		if strings.Trim(s[1:], "0123456789abcdef") != "" {
			return color.RGBA{}, fmt.Errorf("bad color '%s'", s)
		}
		return canvas.Hex(s), nil
	}
	return color.RGBA{}, fmt.Errorf("unknown color '%s'", s)
}

func mustColor(s string) color.RGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
