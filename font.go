package hershey

import "bufio"
import "fmt"
import "io"
import "io/fs"
import "os"
import "strings"

import "golang.org/x/exp/slices"

import "github.com/apshu/hershey/fontdata"

// A Font maps runes to their [Glyph] descriptions and carries the
// render options used when composing text. The zero value is an empty
// font with default options, ready to load data into.
//
// Fonts are not safe for concurrent mutation: don't load or
// reconfigure while other goroutines compose text with the same
// instance.
type Font struct {
	glyphs map[rune]*Glyph
	opts   RenderOptions
	valid  bool // tells apart the zero value from initialized fonts
}

// Creates a new, empty [Font] with default render options.
func New() *Font {
	return &Font{
		glyphs: make(map[rune]*Glyph),
		opts:   DefaultRenderOptions(),
		valid:  true,
	}
}

func (self *Font) initIfZero() {
	if !self.valid {
		self.glyphs = make(map[rune]*Glyph)
		self.opts = DefaultRenderOptions()
		self.valid = true
	}
}

// Returns the number of glyphs currently loaded.
func (self *Font) NumGlyphs() int { return len(self.glyphs) }

// Returns the glyph stored for the given rune, or nil if the font has
// none for it.
func (self *Font) Glyph(codePoint rune) *Glyph { return self.glyphs[codePoint] }

// Returns a copy of the full rune to glyph mapping. The glyphs
// themselves are shared, but they are immutable once loaded.
func (self *Font) Glyphs() map[rune]*Glyph {
	glyphs := make(map[rune]*Glyph, len(self.glyphs))
	for codePoint, glyph := range self.glyphs {
		glyphs[codePoint] = glyph
	}
	return glyphs
}

// LoadConfig adjusts how [Font.LoadWith]() stores the glyphs it reads.
type LoadConfig struct {
	// Rune the first glyph in the data is stored under when not using
	// embedded charcodes. Further glyphs get consecutive runes. The
	// zero value means ' ' (space), the start of the printable ASCII
	// range that stock Hershey fonts are sequenced for.
	FirstCode rune

	// Store each glyph under its own embedded charcode instead of
	// assigning sequential runes from FirstCode.
	UseCharcodes bool

	// Merge into the currently loaded glyphs instead of replacing
	// them. New glyphs win on collisions.
	Merge bool
}

// Reads a font from Hershey font description lines, replacing any
// previously loaded glyphs. Equivalent to LoadWith(reader,
// LoadConfig{}).
func (self *Font) Load(reader io.Reader) error {
	return self.LoadWith(reader, LoadConfig{})
}

// Reads a font from Hershey font description lines.
//
// Lines starting with '#' are JSON metadata directives; invalid JSON
// aborts the load. Lines too short to describe a glyph are skipped
// silently, but still consume one sequential code slot so positional
// rune assignment stays stable. Anything else is decoded as a glyph.
func (self *Font) LoadWith(reader io.Reader, config LoadConfig) error {
	self.initIfZero()
	if config.FirstCode == 0 {
		config.FirstCode = ' '
	}
	if !config.Merge {
		self.glyphs = make(map[rune]*Glyph)
	}

	var defaults lineDefaults
	var fontCap, fontBase, fontBottom optValue
	var capValues, baseValues, bottomValues []float64
	nextCode := config.FirstCode

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			dir, err := parseDirective(line)
			if err != nil {
				return fmt.Errorf("invalid font directive %q: %w", line, err)
			}
			// font scope directives also become the fallback for
			// glyphs parsed from here on
			fontCap.set(dir.DefineCapLine)
			fontBase.set(dir.DefineBaseLine)
			fontBottom.set(dir.DefineBottomLine)
			defaults.capLine.set(dir.DefineCapLine)
			defaults.baseLine.set(dir.DefineBaseLine)
			defaults.bottomLine.set(dir.DefineBottomLine)
			defaults.capLine.set(dir.GlyphCapLine)
			defaults.baseLine.set(dir.GlyphBaseLine)
			defaults.bottomLine.set(dir.GlyphBottomLine)
			continue
		}

		code := nextCode
		nextCode += 1 // every data line takes a slot, stored or not
		glyph, ok := parseGlyphLine(line, defaults)
		if !ok {
			continue
		}
		if config.UseCharcodes {
			code = rune(glyph.charcode)
		}
		self.glyphs[code] = glyph
		capValues = append(capValues, glyph.capLine)
		baseValues = append(baseValues, glyph.baseLine)
		bottomValues = append(bottomValues, glyph.bottomLine)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	self.opts.CapLine = aggregateLine(fontCap, capValues, DefaultCapLine)
	self.opts.BaseLine = aggregateLine(fontBase, baseValues, DefaultBaseLine)
	self.opts.BottomLine = aggregateLine(fontBottom, bottomValues, DefaultBottomLine)
	logger().Debug(
		"hershey font loaded",
		"glyphs", len(self.glyphs),
		"capLine", self.opts.CapLine,
		"baseLine", self.opts.BaseLine,
		"bottomLine", self.opts.BottomLine,
	)
	return nil
}

// Loads a font from a .jhf file on disk, replacing any previously
// loaded glyphs.
func (self *Font) LoadFromPath(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return self.Load(file)
}

// Same as [Font.LoadFromPath](), but for embedded filesystems.
func (self *Font) LoadFromFS(filesys fs.FS, path string) error {
	file, err := filesys.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return self.Load(file)
}

// Loads one of the built-in fonts by name and returns the name of the
// font actually loaded. An empty name selects the collection's
// default font. Unknown names fail with [fontdata.ErrFontNotFound],
// leaving the currently loaded glyphs untouched.
//
// Use [fontdata.Default]().Names() to discover the available names.
func (self *Font) LoadDefault(name string) (string, error) {
	catalog := fontdata.Default()
	if name == "" {
		firstName, err := catalog.First()
		if err != nil {
			return "", err
		}
		name = firstName
	}
	reader, err := catalog.Open(name)
	if err != nil {
		return "", err
	}
	return name, self.Load(reader)
}

// ---- font wide metric aggregation ----

// aggregateLine resolves a font-wide reference line: an explicit
// font scope directive wins outright; otherwise the statistical mode
// of the per-glyph values is used, with ties broken by taking the
// median of the modal set. No values at all falls back to the
// hard-coded default, so the options always end up fully populated.
func aggregateLine(override optValue, values []float64, fallback float64) float64 {
	if override.isSet {
		return override.value
	}
	if len(values) == 0 {
		return fallback
	}
	return median(multimode(values))
}

// multimode returns every value tied for the highest frequency.
func multimode(values []float64) []float64 {
	counts := make(map[float64]int, len(values))
	best := 0
	for _, value := range values {
		counts[value] += 1
		if counts[value] > best {
			best = counts[value]
		}
	}
	var modes []float64
	seen := make(map[float64]bool, len(counts))
	for _, value := range values {
		if counts[value] == best && !seen[value] {
			modes = append(modes, value)
			seen[value] = true
		}
	}
	return modes
}

func median(values []float64) float64 {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
