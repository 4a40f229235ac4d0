// Command hershey-svg renders a text string with one of the built-in
// Hershey fonts into a standalone SVG (or PDF) file of stroked
// polylines, ready for a pen plotter.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/apshu/hershey"
	"github.com/apshu/hershey/fontdata"
	"github.com/apshu/hershey/plot"
)

func main() {
	fontName := flag.String("font", "", "built-in font name; empty means the default font")
	text := flag.String("text", "Pack my box with five dozen liquor jugs.", "text to render")
	outPath := flag.String("out", "out.svg", "output file (.svg or .pdf)")
	size := flag.Float64("size", 30, "text height in output units")
	strokeWidth := flag.Float64("stroke", 0.4, "pen width")
	margin := flag.Float64("margin", 5, "empty space around the text")
	listFonts := flag.Bool("list", false, "list the built-in font names and exit")
	flag.Parse()

	if *listFonts {
		names, err := fontdata.Default().Names()
		if err != nil {
			log.Fatalf("listing fonts: %v", err)
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	if err := run(*fontName, *text, *outPath, *size, *strokeWidth, *margin); err != nil {
		log.Fatalf("render failed: %v", err)
	}
}

func run(fontName, text, outPath string, size, strokeWidth, margin float64) error {
	font := hershey.New()
	loadedName, err := font.LoadDefault(fontName)
	if err != nil {
		return err
	}
	font.Normalize(size)

	file, err := os.Create(outPath)
	if err != nil {
		return err
	}
	opts := &plot.Options{StrokeWidth: strokeWidth, Margin: margin}
	switch strings.ToLower(filepath.Ext(outPath)) {
	case ".pdf":
		err = plot.WritePDF(file, font, text, opts)
	default:
		err = plot.WriteSVG(file, font, text, opts)
	}
	if err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	fmt.Printf("rendered %q with font %q to %q\n", text, loadedName, outPath)
	return nil
}
