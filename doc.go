// hershey is a package for loading and rendering the classic Hershey
// fonts, a public domain collection of more than 2000 vector glyph
// descriptions digitized by Dr. A. V. Hershey at the US National
// Bureau of Standards. Hershey glyphs are plain point-to-point
// polylines rather than filled outlines, which makes them a natural
// fit for pen plotters, engravers, CNC machines and vector displays.
//
// Common usage depends only on the [Font] type and a few methods:
//
//	font := hershey.New()
//	name, err := font.LoadDefault("") // or "futural", "rowmans"...
//	if err != nil { ... }
//	font.Normalize(30) // upright text, 30 units tall
//	for _, segment := range font.LinesForText("Hello world!") {
//	    plotter.Line(segment[0].X, segment[0].Y, segment[1].X, segment[1].Y)
//	}
//
// The built-in font collection lives in the fontdata subpackage, and
// the plot subpackage can turn composed text into SVG or PDF through
// a vector canvas.
//
// Fonts are plain in-memory structures with no I/O or locking in the
// composition path. A loaded [Font] can be read from multiple
// goroutines, but loading or changing options concurrently with
// composition is not safe: serialize those, or treat loaded fonts as
// immutable and swap whole instances on reload.
package hershey
