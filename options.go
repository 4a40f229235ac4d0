package hershey

import "errors"
import "fmt"

// Hard-coded metric defaults, used for glyphs and fonts that don't
// declare their own reference lines.
const (
	DefaultCapLine    = -12.0
	DefaultBaseLine   = 9.0
	DefaultBottomLine = 16.0
)

// RenderOptions holds the numeric parameters applied when converting
// glyph space coordinates into output space. The zero value is not
// useful (zero scales collapse everything); start from
// [DefaultRenderOptions]() or a loaded [Font] instead.
//
// CapLine, BaseLine and BottomLine store the raw font-wide reference
// lines as aggregated during loading. Use the Scaled* methods to see
// them in output space.
type RenderOptions struct {
	XOffset    float64
	YOffset    float64
	ScaleX     float64
	ScaleY     float64
	Spacing    float64 // extra advance added between glyphs
	CapLine    float64
	BaseLine   float64
	BottomLine float64
}

// Returns the configuration every [Font] starts with: no offsets, unit
// scales, no extra spacing and the hard-coded reference lines.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		ScaleX:     1,
		ScaleY:     1,
		CapLine:    DefaultCapLine,
		BaseLine:   DefaultBaseLine,
		BottomLine: DefaultBottomLine,
	}
}

// Returns the cap line in output space (raw cap line times ScaleY).
func (self RenderOptions) ScaledCapLine() float64 { return self.CapLine * self.ScaleY }

// Returns the base line in output space.
func (self RenderOptions) ScaledBaseLine() float64 { return self.BaseLine * self.ScaleY }

// Returns the bottom line in output space.
func (self RenderOptions) ScaledBottomLine() float64 { return self.BottomLine * self.ScaleY }

// Returned by [Font.SetOption]() and [Font.UpdateOptions]() when given
// an option name outside the fixed schema.
var ErrUnknownOption = errors.New("unknown render option")

// The key-value surface over [RenderOptions]. These short names are the
// ones accepted by [Font.SetOption]() and [Font.UpdateOptions]().
func (self *RenderOptions) field(name string) *float64 {
	switch name {
	case "xofs":
		return &self.XOffset
	case "yofs":
		return &self.YOffset
	case "scalex":
		return &self.ScaleX
	case "scaley":
		return &self.ScaleY
	case "spacing":
		return &self.Spacing
	case "cap_line":
		return &self.CapLine
	case "base_line":
		return &self.BaseLine
	case "bottom_line":
		return &self.BottomLine
	default:
		return nil
	}
}

// Returns a copy of the font's current render options.
func (self *Font) Options() RenderOptions {
	self.initIfZero()
	return self.opts
}

// Replaces the font's render options wholesale.
func (self *Font) SetOptions(opts RenderOptions) {
	self.initIfZero()
	self.opts = opts
}

// Sets a single render option by its external name. Valid names are
// "xofs", "yofs", "scalex", "scaley", "spacing", "cap_line",
// "base_line" and "bottom_line"; any other name fails with
// [ErrUnknownOption].
func (self *Font) SetOption(name string, value float64) error {
	return self.UpdateOptions(map[string]float64{name: value})
}

// Applies a batch of named render option updates. The update is
// all-or-nothing: if any key is unknown, [ErrUnknownOption] is
// returned and no option is modified.
func (self *Font) UpdateOptions(values map[string]float64) error {
	self.initIfZero()
	updated := self.opts
	for name, value := range values {
		field := updated.field(name)
		if field == nil {
			return fmt.Errorf("%w %q", ErrUnknownOption, name)
		}
		*field = value
	}
	self.opts = updated
	return nil
}

// Normalize configures the render options so text comes out upright
// (Y grows upwards, unlike the raw glyph data) with the vertical span
// between the bottom line and the cap line mapped to factor units,
// and the bottom line sitting at y = 0.
func (self *Font) Normalize(factor float64) {
	self.initIfZero()
	scale := factor / (self.opts.BottomLine - self.opts.CapLine)
	self.opts.ScaleY = -scale
	self.opts.ScaleX = scale
	self.opts.YOffset = self.opts.BottomLine * scale
	self.opts.XOffset = 0
}
