package web

import (
	"bytes"
	"fmt"
	"html"
	htmlTemplate "html/template"
	"image/color"
	"io"
	"math"
	"regexp"
	"strings"

	svgo "github.com/ajstarks/svgo"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	minifyHTML "github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
	minifySVG "github.com/tdewolff/minify/v2/svg"
	"github.com/tdewolff/scatter"
)

type Options struct {
	Title  string
	Minify bool
}

var DefaultOptions = Options{
	Title:  "Renting vs. food stamps",
	Minify: true,
}

var page = htmlTemplate.Must(htmlTemplate.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
.chart { position: relative; width: {{.Width}}px; height: {{.Height}}px; font-family: sans-serif; }
.tooltip { position: absolute; opacity: 0; pointer-events: none; padding: 6px 8px; background: #fff; border: 1px solid #333; border-radius: 4px; font-size: 12px; line-height: 1.4; }
.axisText { font-size: {{.CaptionFontSize}}px; }
</style>
</head>
<body>
<div class="chart">
{{.SVG}}
<div class="tooltip"></div>
</div>
<script>
(function() {
	var tip = document.querySelector(".chart .tooltip");
	var left = {{.Left}}, top = {{.Top}};
	document.querySelectorAll(".chart circle[data-tip]").forEach(function(c) {
		c.addEventListener("click", function() {
			tip.innerHTML = c.dataset.tip;
			tip.style.left = (left + parseFloat(c.dataset.x)) + "px";
			tip.style.top = (top + parseFloat(c.dataset.y)) + "px";
			tip.style.opacity = 1;
		});
		c.addEventListener("mouseout", function() {
			tip.style.opacity = 0;
		});
	});
})();
</script>
</body>
</html>
`))

// Write writes the chart as an HTML page with an inline SVG and a tooltip that shows the details of a mark when clicked.
func Write(w io.Writer, ch *scatter.Chart, opts *Options) error {
	if opts == nil {
		defaultOptions := DefaultOptions
		opts = &defaultOptions
	}

	svg := &bytes.Buffer{}
	writeSVG(svg, ch)

	data := struct {
		Title           string
		Width, Height   float64
		CaptionFontSize float64
		SVG             htmlTemplate.HTML
		Left, Top       float64
	}{
		Title:           opts.Title,
		Width:           ch.Width,
		Height:          ch.Height,
		CaptionFontSize: ch.CaptionFontSize,
		SVG:             htmlTemplate.HTML(svg.String()),
		Left:            ch.Margin.Left + ch.TooltipOffset.Left,
		Top:             ch.Margin.Top + ch.TooltipOffset.Top,
	}

	if !opts.Minify {
		return page.Execute(w, data)
	}

	buf := &bytes.Buffer{}
	if err := page.Execute(buf, data); err != nil {
		return err
	}
	if err := newMinifier().Minify("text/html", w, buf); err != nil {
		return fmt.Errorf("failed to minify page: %w", err)
	}
	return nil
}

func newMinifier() *minify.M {
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("text/html", minifyHTML.Minify)
	m.AddFunc("image/svg+xml", minifySVG.Minify)
	m.AddFuncRegexp(regexp.MustCompile("^(application|text)/(x-)?(java|ecma)script$"), js.Minify)
	return m
}

// writeSVG writes the SVG element of the chart without XML prolog.
func writeSVG(w *bytes.Buffer, ch *scatter.Chart) {
	buf := &bytes.Buffer{}
	s := svgo.New(buf)
	s.Start(px(ch.Width), px(ch.Height))
	background, labelColor := ch.Colors()
	if background.A != 0 {
		s.Rect(0, 0, px(ch.Width), px(ch.Height), "fill:"+cssColor(background))
	}
	s.Gtransform(fmt.Sprintf("translate(%d,%d)", px(ch.Margin.Left), px(ch.Margin.Top)))

	for _, m := range ch.Marks {
		if !m.Finite() {
			continue
		}
		s.Circle(px(m.X), px(m.Y), px(m.R),
			`fill="`+cssColor(m.Fill)+`"`,
			`data-x="`+num(m.X)+`"`,
			`data-y="`+num(m.Y)+`"`,
			`data-tip="`+attr(tooltipHTML(m.Record))+`"`)
	}
	s.Group(`font-family="sans-serif"`, fmt.Sprintf(`font-size="%s"`, num(ch.LabelFontSize)), `text-anchor="middle"`, `fill="`+cssColor(labelColor)+`"`, `pointer-events="none"`)
	for _, m := range ch.Marks {
		if !m.Finite() || m.Label == "" {
			continue
		}
		s.Text(px(m.X), px(m.Y), m.Label)
	}
	s.Gend()

	writeAxis(s, ch, ch.XAxis)
	writeAxis(s, ch, ch.YAxis)

	for _, caption := range ch.Captions {
		style := `class="axisText"`
		if caption.Rotate != 0.0 {
			s.TranslateRotate(px(caption.X), px(caption.Y), caption.Rotate)
			s.Text(0, 0, caption.Text, style)
			s.Gend()
		} else {
			s.Text(px(caption.X), px(caption.Y), caption.Text, style)
		}
	}
	s.Gend()
	s.End()

	b := buf.Bytes()
	if i := bytes.Index(b, []byte("<svg")); i != -1 {
		b = b[i:]
	}
	w.Write(b)
}

func writeAxis(s *svgo.SVG, ch *scatter.Chart, axis scatter.Axis) {
	anchor := "middle"
	if axis.Orientation == scatter.Left {
		anchor = "end"
	}
	dx, dy := axis.LabelOffset(ch.AxisFontSize)
	s.Group(`fill="none"`, fmt.Sprintf(`font-size="%s"`, num(ch.AxisFontSize)), `font-family="sans-serif"`, `text-anchor="`+anchor+`"`)

	d := &strings.Builder{}
	for i, pt := range axis.DomainPath() {
		if i == 0 {
			d.WriteString("M")
		} else {
			d.WriteString("L")
		}
		fmt.Fprintf(d, "%s %s", num(pt[0]), num(pt[1]))
	}
	s.Path(d.String(), `stroke="#000"`)

	for _, tick := range axis.Ticks {
		x1, y1 := tick.Pos, axis.Offset
		if axis.Orientation == scatter.Left {
			x1, y1 = axis.Offset, tick.Pos
		}
		x2, y2 := axis.TickEnd(tick)
		s.Line(px(x1), px(y1), px(x2), px(y2), `stroke="#000"`)
		if !tick.IsMinor() {
			s.Text(px(x2+dx), px(y2+dy), tick.Label, `fill="#000"`)
		}
	}
	s.Gend()
}

// tooltipHTML is the tooltip content with the geography escaped, since the content is set as inner HTML.
func tooltipHTML(r scatter.Record) string {
	r.Geography = html.EscapeString(r.Geography)
	return scatter.TooltipHTML(r)
}

func attr(s string) string {
	return html.EscapeString(s)
}

func px(f float64) int {
	return int(math.Round(f))
}

func num(f float64) string {
	return scatter.FormatNumber(math.Round(f*100.0) / 100.0)
}

func cssColor(c color.Color) string {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return "none"
	}
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
