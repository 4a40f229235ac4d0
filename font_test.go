package hershey

import "errors"
import "math"
import "strings"
import "testing"

import "github.com/apshu/hershey/fontdata"

func loadFont(t *testing.T, data string, config LoadConfig) *Font {
	t.Helper()
	font := New()
	if err := font.LoadWith(strings.NewReader(data), config); err != nil {
		t.Fatalf("unexpected load error: %s", err.Error())
	}
	return font
}

func TestSequentialCodes(t *testing.T) {
	font := loadFont(t, strings.Join([]string{
		spaceLine,
		exclamLine,
		quoteLine,
	}, "\n"), LoadConfig{})

	if font.NumGlyphs() != 3 {
		t.Fatalf("expected 3 glyphs, got %d", font.NumGlyphs())
	}
	if font.Glyph(' ') == nil || font.Glyph('!') == nil || font.Glyph('"') == nil {
		t.Fatal("expected glyphs at ' ', '!' and '\"'")
	}
	if font.Glyph('#') != nil {
		t.Fatal("unexpected glyph at '#'")
	}
}

func TestInertLinesConsumeCodeSlots(t *testing.T) {
	// the short middle line stores nothing but still burns a code,
	// so positional rune assignment stays stable
	font := loadFont(t, spaceLine+"\nshort\n"+quoteLine, LoadConfig{FirstCode: 'a'})
	if font.NumGlyphs() != 2 {
		t.Fatalf("expected 2 glyphs, got %d", font.NumGlyphs())
	}
	if font.Glyph('b') != nil {
		t.Fatal("inert lines shouldn't store glyphs")
	}
	if font.Glyph('c') == nil {
		t.Fatal("expected the second glyph at 'c'")
	}
}

func TestUseCharcodes(t *testing.T) {
	font := loadFont(t, strings.Join([]string{
		"   65  1JZ",
		"   90  1JZ",
	}, "\n"), LoadConfig{UseCharcodes: true})

	if font.Glyph('A') == nil || font.Glyph('Z') == nil {
		t.Fatal("expected glyphs stored under their embedded charcodes")
	}
	if font.Glyph(' ') != nil {
		t.Fatal("sequential codes shouldn't apply with UseCharcodes")
	}
}

func TestMergeAndReplace(t *testing.T) {
	font := loadFont(t, spaceLine, LoadConfig{FirstCode: 'a'})
	if err := font.LoadWith(strings.NewReader(exclamLine), LoadConfig{FirstCode: 'b', Merge: true}); err != nil {
		t.Fatalf("unexpected merge error: %s", err.Error())
	}
	if font.Glyph('a') == nil || font.Glyph('b') == nil {
		t.Fatal("merge should keep old glyphs and add new ones")
	}

	// merged collisions overwrite
	if err := font.LoadWith(strings.NewReader(quoteLine), LoadConfig{FirstCode: 'a', Merge: true}); err != nil {
		t.Fatalf("unexpected merge error: %s", err.Error())
	}
	if len(font.Glyph('a').Strokes()) != 2 {
		t.Fatal("merge collisions should overwrite the old glyph")
	}

	// a plain load replaces everything
	if err := font.Load(strings.NewReader(spaceLine)); err != nil {
		t.Fatalf("unexpected load error: %s", err.Error())
	}
	if font.NumGlyphs() != 1 || font.Glyph(' ') == nil {
		t.Fatal("plain loads should discard the previous mapping")
	}
}

func TestMetricAggregationMode(t *testing.T) {
	// two glyphs at cap -10, one at cap -11: the mode wins
	font := loadFont(t, strings.Join([]string{
		`#{"glyph_cap_line": -10}`,
		spaceLine,
		spaceLine,
		`#{"glyph_cap_line": -11}`,
		spaceLine,
	}, "\n"), LoadConfig{})
	if got := font.Options().CapLine; got != -10 {
		t.Fatalf("expected cap line -10, got %g", got)
	}
}

func TestMetricAggregationModalTie(t *testing.T) {
	// two modes (-10 and -11) tie; the median of the modal set breaks it
	font := loadFont(t, strings.Join([]string{
		`#{"glyph_cap_line": -10}`,
		spaceLine,
		spaceLine,
		`#{"glyph_cap_line": -11}`,
		spaceLine,
		spaceLine,
	}, "\n"), LoadConfig{})
	if got := font.Options().CapLine; got != -10.5 {
		t.Fatalf("expected cap line -10.5, got %g", got)
	}
}

func TestMetricAggregationUniform(t *testing.T) {
	// every glyph agreeing on a value makes it the font value exactly
	font := loadFont(t, strings.Join([]string{
		`#{"glyph_bottom_line": 14}`,
		spaceLine,
		exclamLine,
		quoteLine,
	}, "\n"), LoadConfig{})
	if got := font.Options().BottomLine; got != 14 {
		t.Fatalf("expected bottom line 14, got %g", got)
	}
}

func TestFontScopeOverrideWins(t *testing.T) {
	font := loadFont(t, strings.Join([]string{
		`#{"define_base_line": 5}`,
		spaceLine,
		exclamLine,
	}, "\n"), LoadConfig{})
	if got := font.Options().BaseLine; got != 5 {
		t.Fatalf("expected base line 5, got %g", got)
	}

	// the scaled view multiplies by ScaleY
	if err := font.SetOption("scaley", 2); err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	if got := font.Options().ScaledBaseLine(); got != 10 {
		t.Fatalf("expected scaled base line 10, got %g", got)
	}
}

func TestEmptyLoadKeepsOptionsPopulated(t *testing.T) {
	font := loadFont(t, "", LoadConfig{})
	if font.NumGlyphs() != 0 {
		t.Fatal("expected an empty font")
	}
	if font.Options() != DefaultRenderOptions() {
		t.Fatalf("expected default options, got %+v", font.Options())
	}
}

func TestInvalidDirectiveAbortsLoad(t *testing.T) {
	font := New()
	err := font.Load(strings.NewReader("#this is not json\n" + spaceLine))
	if err == nil {
		t.Fatal("expected a load error")
	}
}

func TestUpdateOptions(t *testing.T) {
	font := New()
	names := []string{"xofs", "yofs", "scalex", "scaley", "spacing", "cap_line", "base_line", "bottom_line"}
	for i, name := range names {
		if err := font.SetOption(name, float64(i+1)); err != nil {
			t.Fatalf("unexpected error setting %q: %s", name, err.Error())
		}
	}
	opts := font.Options()
	got := []float64{
		opts.XOffset, opts.YOffset, opts.ScaleX, opts.ScaleY,
		opts.Spacing, opts.CapLine, opts.BaseLine, opts.BottomLine,
	}
	for i, value := range got {
		if value != float64(i+1) {
			t.Fatalf("option %q didn't stick: got %g", names[i], value)
		}
	}
}

func TestUpdateOptionsAllOrNothing(t *testing.T) {
	font := New()
	err := font.UpdateOptions(map[string]float64{"xofs": 123, "warp_factor": 9})
	if !errors.Is(err, ErrUnknownOption) {
		t.Fatalf("expected ErrUnknownOption, got %v", err)
	}
	if font.Options().XOffset != 0 {
		t.Fatal("a failed update must not mutate any option")
	}
}

func TestNormalize(t *testing.T) {
	font := New()
	if _, err := font.LoadDefault(""); err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	const factor = 30.0
	font.Normalize(factor)
	opts := font.Options()

	span := math.Abs((opts.BottomLine - opts.CapLine) * opts.ScaleY)
	if math.Abs(span-factor) > 1e-9 {
		t.Fatalf("expected a vertical span of %g, got %g", factor, span)
	}
	bottom := opts.YOffset + opts.BottomLine*opts.ScaleY
	if math.Abs(bottom) > 1e-9 {
		t.Fatalf("expected the bottom line at y=0, got %g", bottom)
	}
	if opts.ScaleX != -opts.ScaleY {
		t.Fatal("expected a Y flip with uniform magnitude")
	}
	if opts.XOffset != 0 {
		t.Fatal("expected a zero x offset")
	}
}

func TestLoadDefaultEmbedded(t *testing.T) {
	font := New()
	name, err := font.LoadDefault("")
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	if name != "futural" {
		t.Fatalf(`expected the default font to be "futural", got %q`, name)
	}
	if font.NumGlyphs() != 96 {
		t.Fatalf("expected 96 glyphs, got %d", font.NumGlyphs())
	}
	// stock fonts are sequenced over printable ASCII
	for _, r := range "Ajz09!~" {
		if font.Glyph(r) == nil {
			t.Fatalf("missing glyph for %q", r)
		}
	}
}

func TestLoadDefaultUnknownName(t *testing.T) {
	font := New()
	if _, err := font.LoadDefault(""); err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	loaded := font.NumGlyphs()

	_, err := font.LoadDefault("surely-not-a-real-font")
	if !errors.Is(err, fontdata.ErrFontNotFound) {
		t.Fatalf("expected ErrFontNotFound, got %v", err)
	}
	if font.NumGlyphs() != loaded {
		t.Fatal("a failed load must leave the glyph mapping untouched")
	}
}

func TestLoadAllEmbedded(t *testing.T) {
	names, err := fontdata.Default().Names()
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	if len(names) == 0 {
		t.Fatal("expected built-in fonts")
	}
	for _, name := range names {
		font := New()
		loadedName, err := font.LoadDefault(name)
		if err != nil {
			t.Fatalf("loading %q: %s", name, err.Error())
		}
		if loadedName != name {
			t.Fatalf("expected to load %q, got %q", name, loadedName)
		}
		if font.NumGlyphs() == 0 {
			t.Fatalf("font %q loaded empty", name)
		}
	}
}
