package scatter

import (
	"cmp"
	"math"
	"slices"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
	"gonum.org/v1/plot"
)

// LinearScale maps values from the domain linearly to the range.
type LinearScale struct {
	Domain [2]float64
	Range  [2]float64
}

// Map returns the range position of v. A degenerate domain maps to the start of the range.
func (s LinearScale) Map(v float64) float64 {
	d := s.Domain[1] - s.Domain[0]
	var t float64
	if math.IsNaN(d) {
		return math.NaN()
	} else if d == 0.0 {
		t = 0.0
	} else {
		t = (v - s.Domain[0]) / d
	}
	return s.Range[0] + t*(s.Range[1]-s.Range[0])
}

// Invert returns the domain value at range position px.
func (s LinearScale) Invert(px float64) float64 {
	r := s.Range[1] - s.Range[0]
	if r == 0.0 {
		return (s.Domain[0] + s.Domain[1]) / 2.0
	}
	return s.Domain[0] + (px-s.Range[0])/r*(s.Domain[1]-s.Domain[0])
}

// BuildScales returns the x and y scales for the dataset. Both domains start at zero, the y domain tops at Headroom times the largest percentage and is inverted so that larger values are higher.
func BuildScales(ds Dataset, cfg Config) (LinearScale, LinearScale) {
	xmax := ds.Max(func(r Record) float64 { return r.FoodstampsNum })
	ymax := ds.Max(func(r Record) float64 { return r.PercentRenting }) * cfg.Headroom
	x := LinearScale{
		Domain: [2]float64{0.0, xmax},
		Range:  [2]float64{0.0, cfg.PlotWidth()},
	}
	y := LinearScale{
		Domain: [2]float64{0.0, ymax},
		Range:  [2]float64{cfg.PlotHeight(), 0.0},
	}
	return x, y
}

// Tick is a position along an axis. Minor ticks have no label.
type Tick struct {
	Value float64
	Pos   float64
	Label string
}

func (t Tick) IsMinor() bool {
	return t.Label == ""
}

var tickPrinter = message.NewPrinter(language.English)

// Ticks returns the ticks within the domain, labelled with thousands separators.
func (s LinearScale) Ticks() []Tick {
	min, max := math.Min(s.Domain[0], s.Domain[1]), math.Max(s.Domain[0], s.Domain[1])
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return nil
	} else if min == max {
		return []Tick{{Value: min, Pos: s.Map(min), Label: formatTick(min, 0)}}
	}

	gticks := []plot.Tick{}
	majors := []float64{}
	for _, t := range (plot.DefaultTicks{}).Ticks(min, max) {
		if min <= t.Value && t.Value <= max {
			gticks = append(gticks, t)
			if !t.IsMinor() {
				majors = append(majors, t.Value)
			}
		}
	}

	decimals := 0
	if 1 < len(majors) {
		decimals = tickDecimals(majors[1] - majors[0])
	}
	ticks := make([]Tick, 0, len(gticks))
	for _, t := range gticks {
		tick := Tick{Value: t.Value, Pos: s.Map(t.Value)}
		if !t.IsMinor() {
			tick.Label = formatTick(t.Value, decimals)
		}
		ticks = append(ticks, tick)
	}
	// minor ticks come after the majors
	slices.SortFunc(ticks, func(a, b Tick) int {
		return cmp.Compare(a.Value, b.Value)
	})
	return ticks
}

// tickDecimals returns the number of fraction digits needed to show multiples of step.
func tickDecimals(step float64) int {
	step = math.Abs(step)
	for d := 0; d < 10; d++ {
		if f := step * math.Pow10(d); math.Abs(f-math.Round(f)) < 1e-6*f {
			return d
		}
	}
	return 10
}

func formatTick(v float64, decimals int) string {
	if v == 0.0 {
		v = 0.0 // -0
	}
	return tickPrinter.Sprint(number.Decimal(v, number.MinFractionDigits(decimals), number.MaxFractionDigits(decimals)))
}
