package scatter

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/go-fonts/latin-modern/lmsans10regular"
	"github.com/tdewolff/canvas"
)

// canvas font sizes are in points while surface units are millimeters
const ptPerUnit = 72.0 / 25.4

type fonts struct {
	family *canvas.FontFamily
}

var (
	fontsOnce   sync.Once
	sansFonts   *fonts
	sansFontErr error
)

func loadFonts() (*fonts, error) {
	fontsOnce.Do(func() {
		family := canvas.NewFontFamily("Latin Modern Sans")
		if err := family.LoadFont(lmsans10regular.TTF, 0, canvas.FontRegular); err != nil {
			sansFontErr = fmt.Errorf("failed to load font: %w", err)
			return
		}
		sansFonts = &fonts{family}
	})
	return sansFonts, sansFontErr
}

func (f *fonts) face(size float64, col color.Color) *canvas.FontFace {
	return f.family.Face(size*ptPerUnit, col, canvas.FontRegular, canvas.FontNormal)
}

// Canvas returns a new canvas of the surface size with the chart drawn on it.
func (ch *Chart) Canvas() *canvas.Canvas {
	c := canvas.New(ch.Width, ch.Height)
	ctx := canvas.NewContext(c)
	ch.Draw(ctx)
	return c
}

// Draw draws the chart on the context, the surface origin is placed at the top-left of the context. Marks without a finite position are skipped.
func (ch *Chart) Draw(ctx *canvas.Context) {
	background, labelColor := ch.Colors()

	ctx.Push()
	defer ctx.Pop()
	ctx.SetCoordSystem(canvas.CartesianIV)

	if background.A != 0 {
		ctx.SetStrokeColor(canvas.Transparent)
		ctx.SetFillColor(background)
		ctx.DrawPath(0.0, 0.0, canvas.Rectangle(ch.Width, ch.Height))
	}

	ctx.ComposeView(canvas.Identity.Translate(ch.Margin.Left, ch.Margin.Top))

	// marks
	ctx.SetStrokeColor(canvas.Transparent)
	for _, m := range ch.Marks {
		if !m.Finite() {
			continue
		}
		ctx.SetFillColor(m.Fill)
		ctx.DrawPath(m.X, m.Y, canvas.Circle(m.R))
	}
	labelFace := ch.fonts.face(ch.LabelFontSize, labelColor)
	for _, m := range ch.Marks {
		if !m.Finite() || m.Label == "" {
			continue
		}
		ctx.DrawText(m.X, m.Y, canvas.NewTextLine(labelFace, m.Label, canvas.Center))
	}

	ch.drawAxis(ctx, ch.XAxis)
	ch.drawAxis(ctx, ch.YAxis)

	// captions
	for _, caption := range ch.Captions {
		face := ch.fonts.face(caption.Size, canvas.Black)
		ctx.Push()
		ctx.ComposeView(canvas.Identity.Translate(caption.X, caption.Y).Rotate(caption.Rotate))
		ctx.DrawText(0.0, 0.0, canvas.NewTextLine(face, caption.Text, canvas.Left))
		ctx.Pop()
	}
}

func (ch *Chart) drawAxis(ctx *canvas.Context, axis Axis) {
	lines := &canvas.Path{}
	for i, pt := range axis.DomainPath() {
		if i == 0 {
			lines.MoveTo(pt[0], pt[1])
		} else {
			lines.LineTo(pt[0], pt[1])
		}
	}

	face := ch.fonts.face(ch.AxisFontSize, canvas.Black)
	for _, tick := range axis.Ticks {
		x1, y1 := tick.Pos, axis.Offset
		if axis.Orientation == Left {
			x1, y1 = axis.Offset, tick.Pos
		}
		x2, y2 := axis.TickEnd(tick)
		lines.MoveTo(x1, y1)
		lines.LineTo(x2, y2)
		if tick.IsMinor() {
			continue
		}

		align := canvas.Center
		if axis.Orientation == Left {
			align = canvas.Right
		}
		dx, dy := axis.LabelOffset(ch.AxisFontSize)
		ctx.DrawText(x2+dx, y2+dy, canvas.NewTextLine(face, tick.Label, align))
	}

	ctx.Push()
	ctx.SetFillColor(canvas.Transparent)
	ctx.SetStrokeColor(canvas.Black)
	ctx.SetStrokeWidth(1.0)
	ctx.DrawPath(0.0, 0.0, lines)
	ctx.Pop()
}
