package hershey

import "encoding/json"
import "strconv"
import "strings"

// Hershey data encodes every numeric value as a single printable
// character relative to capital R: 'R' is zero, characters before it
// are negative, characters after it are positive.
const valueZero = 'R'

func charToVal(c byte) int { return int(c) - valueZero }

// A GlyphPoint is a coordinate in raw glyph space. Hershey glyph
// coordinates are small signed integers with Y growing downwards.
type GlyphPoint struct {
	X, Y int
}

// A Glyph is the decoded vector description of a single symbol.
// Glyphs are built once while loading a [Font] and never modified
// afterwards, so they can be shared freely.
//
// The glyph's typographic box (side bearings, reference lines) is
// independent from its ink bounding box: a glyph may paint outside
// its advance width, and whitespace glyphs have width but no ink.
type Glyph struct {
	charcode   int
	leftSide   int
	rightSide  int
	strokes    [][]GlyphPoint
	xmin, ymin int
	xmax, ymax int
	capLine    float64
	baseLine   float64
	bottomLine float64
}

// Returns the Hershey charcode embedded in the glyph's source line.
// This is the font-internal identifier, not necessarily the rune the
// glyph is stored under (see [LoadConfig.UseCharcodes]).
func (self *Glyph) Charcode() int { return self.charcode }

// Returns the left side bearing of the glyph. This is a typographic
// boundary and may differ from the ink bounding box.
func (self *Glyph) LeftSide() int { return self.leftSide }

// Returns the right side bearing of the glyph.
func (self *Glyph) RightSide() int { return self.rightSide }

// Returns the advance width of the glyph (right side minus left side).
// The format does not guarantee non-negative widths; negative values
// are preserved as found in the data.
func (self *Glyph) Width() int { return self.rightSide - self.leftSide }

// Returns the glyph's strokes in raw glyph space. Each stroke is one
// continuous pen-down polyline; the pen is lifted between strokes.
// The returned slices are internal and must not be modified.
func (self *Glyph) Strokes() [][]GlyphPoint { return self.strokes }

// Returns the glyph's strokes decomposed into individual line
// segments, still in raw glyph space. A stroke of N points yields
// N - 1 segments; strokes with a single point yield none.
func (self *Glyph) Lines() [][2]GlyphPoint {
	var lines [][2]GlyphPoint
	for _, stroke := range self.strokes {
		for i := 0; i+1 < len(stroke); i++ {
			lines = append(lines, [2]GlyphPoint{stroke[i], stroke[i+1]})
		}
	}
	return lines
}

// Returns the tight ink bounding box over all stroke points, as
// (min, max) corners. Glyphs without strokes report a zero box.
func (self *Glyph) DrawBox() (GlyphPoint, GlyphPoint) {
	return GlyphPoint{self.xmin, self.ymin}, GlyphPoint{self.xmax, self.ymax}
}

// Returns the typographic box of the glyph, as (left, bottom line)
// and (right, cap line) corners. This box can be wider or narrower
// than [Glyph.DrawBox]().
func (self *Glyph) CharBox() (Point, Point) {
	p0 := Point{X: float64(self.leftSide), Y: self.bottomLine}
	p1 := Point{X: float64(self.rightSide), Y: self.capLine}
	return p0, p1
}

// Returns the cap line of the glyph, e.g. the horizontal hat of the
// letter T. The value may lie outside the glyph's ink bounding box.
func (self *Glyph) CapLine() float64 { return self.capLine }

// Returns the base line of the glyph, e.g. the horizontal leg of the
// letter L.
func (self *Glyph) BaseLine() float64 { return self.baseLine }

// Returns the bottom line of the glyph, e.g. the lowest point of the
// letter j.
func (self *Glyph) BottomLine() float64 { return self.bottomLine }

// ---- data line parsing ----

// A directive is the decoded form of a '#'-prefixed metadata line.
// All keys are optional; define_* keys act at font scope while
// glyph_* keys only adjust the defaults of subsequent glyphs.
type directive struct {
	GlyphCapLine     *float64 `json:"glyph_cap_line"`
	GlyphBaseLine    *float64 `json:"glyph_base_line"`
	GlyphBottomLine  *float64 `json:"glyph_bottom_line"`
	DefineCapLine    *float64 `json:"define_cap_line"`
	DefineBaseLine   *float64 `json:"define_base_line"`
	DefineBottomLine *float64 `json:"define_bottom_line"`
}

func parseDirective(line string) (directive, error) {
	var dir directive
	err := json.Unmarshal([]byte(line[1:]), &dir)
	return dir, err
}

// Per-load metadata context. Directives mutate it as they are
// encountered; glyphs parsed afterwards take their fallback line
// values from it.
type lineDefaults struct {
	capLine    optValue
	baseLine   optValue
	bottomLine optValue
}

type optValue struct {
	value float64
	isSet bool
}

func (self *optValue) set(ptr *float64) {
	if ptr != nil {
		*self = optValue{value: *ptr, isSet: true}
	}
}

func (self optValue) or(fallback float64) float64 {
	if self.isSet {
		return self.value
	}
	return fallback
}

// parseGlyphLine decodes one Hershey data line into a glyph. The
// second return value is false for lines that don't describe a glyph
// (blank, truncated or otherwise unusable lines); such lines are
// skipped without error, as the format demands.
//
// Layout of a data line:
//
//	cols 0-4   glyph charcode, decimal
//	cols 5-7   vertex count (present in the format but unused here;
//	           decoding relies on stroke separators instead)
//	col  8     left side bearing
//	col  9     right side bearing
//	cols 10+   stroke payload, strokes separated by the literal " R"
func parseGlyphLine(line string, defaults lineDefaults) (*Glyph, bool) {
	line = strings.TrimRight(line, " \t\r\n\v\f")
	if len(line) < 10 {
		return nil, false
	}
	charcode, err := strconv.Atoi(strings.TrimSpace(line[0:5]))
	if err != nil {
		return nil, false
	}

	glyph := &Glyph{
		charcode:   charcode,
		leftSide:   charToVal(line[8]),
		rightSide:  charToVal(line[9]),
		capLine:    defaults.capLine.or(DefaultCapLine),
		baseLine:   defaults.baseLine.or(DefaultBaseLine),
		bottomLine: defaults.bottomLine.or(DefaultBottomLine),
	}

	// empty segments (leading, trailing or doubled separators)
	// contribute no stroke
	for _, segment := range strings.Split(line[10:], " R") {
		var stroke []GlyphPoint
		for i := 0; i+1 < len(segment); i += 2 {
			stroke = append(stroke, GlyphPoint{
				X: charToVal(segment[i]),
				Y: charToVal(segment[i+1]),
			})
		}
		if len(stroke) == 0 {
			continue
		}
		if len(glyph.strokes) == 0 {
			glyph.xmin, glyph.ymin = stroke[0].X, stroke[0].Y
			glyph.xmax, glyph.ymax = stroke[0].X, stroke[0].Y
		}
		for _, point := range stroke {
			glyph.xmin = min(glyph.xmin, point.X)
			glyph.ymin = min(glyph.ymin, point.Y)
			glyph.xmax = max(glyph.xmax, point.X)
			glyph.ymax = max(glyph.ymax, point.Y)
		}
		glyph.strokes = append(glyph.strokes, stroke)
	}
	return glyph, true
}
