// Command hershey-extract unpacks a Hershey font archive into plain
// .jhf font description files, defaulting to the collection embedded
// in the library. Useful for remixing the built-in fonts.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/apshu/hershey/fontdata"
)

func main() {
	archivePath := flag.String("archive", "", "font archive to extract (tar or tar.bz2); empty means the embedded collection")
	outDir := flag.String("out", ".", "directory the .jhf files are written to")
	flag.Parse()

	if err := run(*archivePath, *outDir); err != nil {
		log.Fatalf("extract failed: %v", err)
	}
}

func run(archivePath, outDir string) error {
	catalog := fontdata.Default()
	if archivePath != "" {
		blob, err := os.ReadFile(archivePath)
		if err != nil {
			return err
		}
		catalog = fontdata.NewCatalog(blob, nil)
	}

	names, err := catalog.Names()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	for _, name := range names {
		target := filepath.Join(outDir, filepath.Base(name)+".jhf")
		if err := extractOne(catalog, name, target); err != nil {
			return fmt.Errorf("extracting %q: %w", name, err)
		}
		fmt.Printf("%q -> %q\n", name, target)
	}
	fmt.Printf("%d font files extracted\n", len(names))
	return nil
}

func extractOne(catalog *fontdata.Catalog, name, target string) error {
	reader, err := catalog.Open(name)
	if err != nil {
		return err
	}
	file, err := os.Create(target)
	if err != nil {
		return err
	}
	if _, err := io.Copy(file, reader); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
