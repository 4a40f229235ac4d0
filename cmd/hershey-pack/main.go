// Command hershey-pack bundles a directory of .jhf font description
// files into a tar archive consumable by the fontdata catalog. Entry
// names are the file names with the extension stripped, and the
// default font is placed first in the archive.
//
// The archive is written uncompressed: the standard library can read
// bzip2 but not write it, and the catalog accepts both forms.
package main

import (
	"archive/tar"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/slices"
)

func main() {
	inDir := flag.String("in", ".", "directory holding the .jhf files to pack")
	outPath := flag.String("out", "hershey_font_resource.tar", "archive file to write")
	defaultFont := flag.String("default", "futural", "font placed first in the archive (the catalog's default)")
	flag.Parse()

	if err := run(*inDir, *outPath, *defaultFont); err != nil {
		log.Fatalf("pack failed: %v", err)
	}
}

func run(inDir, outPath, defaultFont string) error {
	names, err := fontFiles(inDir)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return fmt.Errorf("no .jhf files found in %q", inDir)
	}
	// the default font leads the archive; if the requested one is
	// absent, whatever sorts first stays in front
	if i := slices.Index(names, defaultFont); i > 0 {
		names = append([]string{defaultFont}, append(names[:i:i], names[i+1:]...)...)
	}
	fmt.Printf("default font: %q\n", names[0])

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	archive := tar.NewWriter(out)
	for _, name := range names {
		if err := packOne(archive, inDir, name); err != nil {
			_ = out.Close()
			return fmt.Errorf("adding %q: %w", name, err)
		}
		fmt.Printf("added %q\n", name)
	}
	if err := archive.Close(); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	fmt.Printf("%d fonts packed into %q\n", len(names), outPath)
	return nil
}

// fontFiles lists the .jhf entry names (extension stripped) found in
// dir, sorted.
func fontFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".jhf") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())))
	}
	slices.Sort(names)
	return names, nil
}

func packOne(archive *tar.Writer, dir, name string) error {
	data, err := os.ReadFile(filepath.Join(dir, name+".jhf"))
	if err != nil {
		return err
	}
	header := &tar.Header{
		Name: name,
		Mode: 0o644,
		Size: int64(len(data)),
	}
	if err := archive.WriteHeader(header); err != nil {
		return err
	}
	_, err = archive.Write(data)
	return err
}
