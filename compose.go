package hershey

// A Point is a coordinate in output space, after render options have
// been applied.
type Point struct {
	X, Y float64
}

// A Stroke is one continuous pen-down polyline in output space.
type Stroke []Point

// A Line is a single segment between two adjacent stroke points.
type Line [2]Point

// Returns the glyphs for the given text, in text order. Characters
// the font has no glyph for are skipped silently.
func (self *Font) GlyphsForText(text string) []*Glyph {
	var glyphs []*Glyph
	for _, codePoint := range text {
		if glyph, found := self.glyphs[codePoint]; found {
			glyphs = append(glyphs, glyph)
		}
	}
	return glyphs
}

// Composes the given text and calls fn for every resulting stroke, in
// glyph and stroke order. Each call starts a fresh pen at the
// configured x offset; no iteration state survives between calls, so
// repeating a call reproduces identical output.
//
// Characters without a glyph contribute no strokes and no horizontal
// advance. Glyphs without strokes (whitespace) still advance the pen.
func (self *Font) EachStroke(text string, fn func(Stroke)) {
	opts := self.opts
	penX := opts.XOffset
	for _, codePoint := range text {
		glyph, found := self.glyphs[codePoint]
		if !found {
			continue
		}
		for _, raw := range glyph.strokes {
			stroke := make(Stroke, len(raw))
			for i, point := range raw {
				stroke[i] = Point{
					X: penX + float64(point.X-glyph.leftSide)*opts.ScaleX,
					Y: opts.YOffset + float64(point.Y)*opts.ScaleY,
				}
			}
			fn(stroke)
		}
		penX += opts.Spacing + opts.ScaleX*float64(glyph.Width())
	}
}

// Returns the positioned strokes for the given text. See
// [Font.EachStroke]() for the composition rules.
func (self *Font) StrokesForText(text string) []Stroke {
	var strokes []Stroke
	self.EachStroke(text, func(stroke Stroke) {
		strokes = append(strokes, stroke)
	})
	return strokes
}

// Composes the given text and calls fn for every line segment, in
// stroke and point order. A stroke of N points yields N - 1 segments.
func (self *Font) EachLine(text string, fn func(Line)) {
	self.EachStroke(text, func(stroke Stroke) {
		for i := 0; i+1 < len(stroke); i++ {
			fn(Line{stroke[i], stroke[i+1]})
		}
	})
}

// Returns the positioned line segments for the given text. This is
// [Font.StrokesForText]() flattened into consecutive point pairs.
func (self *Font) LinesForText(text string) []Line {
	var lines []Line
	self.EachLine(text, func(line Line) {
		lines = append(lines, line)
	})
	return lines
}

// Returns the total horizontal advance of the given text under the
// current render options, including inter-glyph spacing. Characters
// without a glyph contribute nothing.
func (self *Font) TextWidth(text string) float64 {
	width := 0.0
	for _, codePoint := range text {
		if glyph, found := self.glyphs[codePoint]; found {
			width += self.opts.Spacing + self.opts.ScaleX*float64(glyph.Width())
		}
	}
	return width
}
