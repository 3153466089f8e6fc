package scatter

import (
	"image/color"
	"math"
	"strconv"
	"strings"
)

// Mark is the circle and text label drawn for a record.
type Mark struct {
	Record
	X, Y  float64 // center in plot coordinates
	R     float64
	Fill  color.Color
	Label string
}

// Finite is true when the mark has a drawable position.
func (m Mark) Finite() bool {
	return !math.IsNaN(m.X) && !math.IsNaN(m.Y) && !math.IsInf(m.X, 0) && !math.IsInf(m.Y, 0)
}

// Marks returns one mark per record, in dataset order.
func Marks(ds Dataset, x, y LinearScale, cfg Config) []Mark {
	fill := mustColor(cfg.Fill)
	marks := make([]Mark, len(ds))
	for i, r := range ds {
		marks[i] = Mark{
			Record: r,
			X:      x.Map(r.FoodstampsNum),
			Y:      y.Map(r.PercentRenting),
			R:      cfg.Radius,
			Fill:   fill,
			Label:  r.StateAbbr,
		}
	}
	return marks
}

// FormatNumber formats v as the shortest decimal that round-trips, with NaN and Infinity spelled out.
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0.0:
		return "0"
	}
	if abs := math.Abs(v); abs < 1e-6 || 1e21 <= abs {
		s := strconv.FormatFloat(v, 'g', -1, 64)
		return strings.NewReplacer("e-0", "e-", "e+0", "e+").Replace(s)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// TooltipHTML returns the tooltip content of a record.
func TooltipHTML(r Record) string {
	return r.Geography + "<br> Percent Renting: " + FormatNumber(r.PercentRenting) + "<br> Food Stamps: " + FormatNumber(r.FoodstampsNum)
}

// Tooltip is the overlay showing the details of a clicked mark. It is either hidden or visible at a position on the surface.
type Tooltip struct {
	Offset  Offset
	Margin  Margin
	Visible bool
	X, Y    float64 // top-left corner in surface coordinates
	HTML    string
}

// NewTooltip returns a hidden tooltip.
func NewTooltip(cfg Config) *Tooltip {
	return &Tooltip{
		Offset: cfg.TooltipOffset,
		Margin: cfg.Margin,
	}
}

// Show makes the tooltip visible next to m with the details of its record.
func (t *Tooltip) Show(m Mark) {
	t.Visible = true
	t.HTML = TooltipHTML(m.Record)
	t.X = t.Margin.Left + m.X + t.Offset.Left
	t.Y = t.Margin.Top + m.Y + t.Offset.Top
}

// Hide hides the tooltip, its content is kept until the next Show.
func (t *Tooltip) Hide() {
	t.Visible = false
}

// Opacity is 1 when visible and 0 when hidden.
func (t *Tooltip) Opacity() float64 {
	if t.Visible {
		return 1.0
	}
	return 0.0
}
