package scatter

import (
	"image/color"
)

// Orientation is the side of the plot area an axis is placed on.
type Orientation int

// see Orientation
const (
	Bottom Orientation = iota
	Left
)

func (o Orientation) String() string {
	switch o {
	case Bottom:
		return "Bottom"
	case Left:
		return "Left"
	}
	return "Invalid"
}

// Axis sizes, in surface units.
const (
	TickSize      = 6.0
	MinorTickSize = 3.0
	TickPadding   = 3.0
)

// Axis is a scale drawn along one side of the plot area.
type Axis struct {
	Orientation
	Scale LinearScale
	Ticks []Tick
	// Offset is the distance of the axis line from the plot origin, the plot height for the bottom axis.
	Offset float64
}

// TickEnd returns the end point of a tick line at pos, in plot coordinates. The line starts on the axis.
func (a Axis) TickEnd(t Tick) (float64, float64) {
	size := TickSize
	if t.IsMinor() {
		size = MinorTickSize
	}
	if a.Orientation == Bottom {
		return t.Pos, a.Offset + size
	}
	return a.Offset - size, t.Pos
}

// LabelOffset is the offset of the tick label baseline from the end of its tick line.
func (a Axis) LabelOffset(fontSize float64) (float64, float64) {
	if a.Orientation == Bottom {
		return 0.0, TickPadding + 0.71*fontSize
	}
	return -TickPadding, 0.32 * fontSize
}

// DomainPath returns the outline of the axis line including its outer ticks, in plot coordinates.
func (a Axis) DomainPath() [][2]float64 {
	r0, r1 := a.Scale.Range[0], a.Scale.Range[1]
	if a.Orientation == Bottom {
		return [][2]float64{{r0, a.Offset + TickSize}, {r0, a.Offset}, {r1, a.Offset}, {r1, a.Offset + TickSize}}
	}
	return [][2]float64{{a.Offset - TickSize, r0}, {a.Offset, r0}, {a.Offset, r1}, {a.Offset - TickSize, r1}}
}

// Caption is a static text on the surface.
type Caption struct {
	Text   string
	X, Y   float64 // start of the baseline in plot coordinates
	Rotate float64 // in degrees, counter clockwise on screen for negative values
	Size   float64
}

// Chart is a scatter plot of a dataset ready to be drawn.
type Chart struct {
	Config
	Dataset Dataset

	X, Y         LinearScale
	Marks        []Mark
	XAxis, YAxis Axis
	Captions     []Caption

	fonts *fonts
}

// New lays out the chart of the dataset.
func New(ds Dataset, cfg Config) (*Chart, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	fonts, err := loadFonts()
	if err != nil {
		return nil, err
	}

	x, y := BuildScales(ds, cfg)
	return &Chart{
		Config:  cfg,
		Dataset: ds,
		X:       x,
		Y:       y,
		Marks:   Marks(ds, x, y, cfg),
		XAxis: Axis{
			Orientation: Bottom,
			Scale:       x,
			Ticks:       x.Ticks(),
			Offset:      cfg.PlotHeight(),
		},
		YAxis: Axis{
			Orientation: Left,
			Scale:       y,
			Ticks:       y.Ticks(),
		},
		Captions: []Caption{{
			Text:   cfg.YTitle,
			X:      -cfg.Margin.Left + 40.0 + cfg.CaptionFontSize,
			Y:      cfg.PlotHeight() / 1.9,
			Rotate: -90.0,
			Size:   cfg.CaptionFontSize,
		}, {
			Text: cfg.XTitle,
			X:    cfg.PlotWidth() / 2.0,
			Y:    cfg.PlotHeight() + cfg.Margin.Top + 30.0,
			Size: cfg.CaptionFontSize,
		}},
		fonts: fonts,
	}, nil
}

// Tooltip returns a hidden tooltip for the chart's marks.
func (ch *Chart) Tooltip() *Tooltip {
	return NewTooltip(ch.Config)
}

// Colors returns the parsed background and label colors.
func (ch *Chart) Colors() (color.RGBA, color.RGBA) {
	return mustColor(ch.Background), mustColor(ch.LabelColor)
}
