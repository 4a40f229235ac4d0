// plot turns composed Hershey text into vector graphics through
// github.com/tdewolff/canvas, keeping the output as stroked paths all
// the way down to the SVG or PDF file. Nothing here rasterizes: the
// glyph polylines survive as polylines, which is the whole point of a
// plotter font.
//
// Render options are taken from the font as-is. For upright output
// you will usually want to call [hershey.Font.Normalize]() first.
package plot

import "image/color"
import "io"
import "math"

import "github.com/tdewolff/canvas"
import "github.com/tdewolff/canvas/renderers/pdf"
import "github.com/tdewolff/canvas/renderers/svg"

import "github.com/apshu/hershey"

// Options adjusts how text is placed and stroked on a canvas.
type Options struct {
	// Pen width of the stroked polylines. The zero value means 0.4.
	StrokeWidth float64

	// Stroke color. Nil means black.
	Color color.Color

	// Empty space left around the text by [WriteSVG] and [WritePDF].
	Margin float64
}

func (self *Options) fillDefaults() Options {
	opts := Options{StrokeWidth: 0.4, Color: canvas.Black}
	if self == nil {
		return opts
	}
	if self.StrokeWidth > 0 {
		opts.StrokeWidth = self.StrokeWidth
	}
	if self.Color != nil {
		opts.Color = self.Color
	}
	opts.Margin = self.Margin
	return opts
}

// Converts the positioned strokes of the given text into a single
// [canvas.Path] made of MoveTo/LineTo runs, one run per stroke.
func TextPath(font *hershey.Font, text string) *canvas.Path {
	path := &canvas.Path{}
	font.EachStroke(text, func(stroke hershey.Stroke) {
		if len(stroke) == 0 {
			return
		}
		path.MoveTo(stroke[0].X, stroke[0].Y)
		for _, point := range stroke[1:] {
			path.LineTo(point.X, point.Y)
		}
	})
	return path
}

// Strokes the given text onto a canvas context with its origin
// translated to (x, y). The path is stroked, never filled: Hershey
// glyphs are open polylines, not closed outlines.
func Draw(ctx *canvas.Context, x, y float64, font *hershey.Font, text string, options *Options) {
	opts := options.fillDefaults()
	ctx.SetFillColor(color.RGBA{})
	ctx.SetStrokeColor(opts.Color)
	ctx.SetStrokeWidth(opts.StrokeWidth)
	ctx.SetStrokeCapper(canvas.RoundCap)
	ctx.SetStrokeJoiner(canvas.RoundJoin)
	ctx.DrawPath(x, y, TextPath(font, text))
}

// Renders the given text to a standalone SVG document sized to fit
// it. The font's render options should already place text upright
// (see [hershey.Font.Normalize]()).
func WriteSVG(writer io.Writer, font *hershey.Font, text string, options *Options) error {
	c, finish := layoutCanvas(font, text, options)
	target := svg.New(writer, c.W, c.H, nil)
	finish(target)
	return target.Close()
}

// The PDF counterpart of [WriteSVG].
func WritePDF(writer io.Writer, font *hershey.Font, text string, options *Options) error {
	c, finish := layoutCanvas(font, text, options)
	target := pdf.New(writer, c.W, c.H, nil)
	finish(target)
	return target.Close()
}

// layoutCanvas sizes a canvas around the text and draws it, returning
// the canvas and a hook that replays it onto the output renderer.
func layoutCanvas(font *hershey.Font, text string, options *Options) (*canvas.Canvas, func(canvas.Renderer)) {
	opts := options.fillDefaults()
	fontOpts := font.Options()
	height := math.Abs(fontOpts.ScaledCapLine() - fontOpts.ScaledBottomLine())
	width := font.TextWidth(text)
	c := canvas.New(width+2*opts.Margin, height+2*opts.Margin)
	ctx := canvas.NewContext(c)
	Draw(ctx, opts.Margin, opts.Margin, font, text, options)
	return c, func(target canvas.Renderer) { c.RenderTo(target) }
}
