// fontdata bundles the stock Hershey font collection and exposes it
// through a small named-resource catalog. The fonts travel as a
// bzip2-compressed tar archive of .jhf font description files, the
// same container the original distribution uses.
//
// The archive format is deliberately pluggable: a [Catalog] only
// needs a [Decoder] that can list and open entries of an opaque byte
// blob, so tests and tools can feed it custom archives.
package fontdata

import "archive/tar"
import "bytes"
import "compress/bzip2"
import "errors"
import "fmt"
import "io"

// Returned when a requested font name is not present in the catalog.
var ErrFontNotFound = errors.New("font not found")

// A Decoder turns an opaque resource blob into named font entries.
type Decoder interface {
	// Entries lists the entry names in the blob, in archive order.
	Entries(blob []byte) ([]string, error)

	// Open returns a reader over the named entry's content.
	Open(blob []byte, name string) (io.Reader, error)
}

// A Catalog is a named collection of font description resources. The
// first entry in archive order is the collection's default font.
//
// The entry listing is decoded lazily and memoized per instance, so
// independent catalogs (and their tests) never share hidden state.
type Catalog struct {
	blob    []byte
	decoder Decoder
	names   []string
}

// Creates a [Catalog] over the given blob. A nil decoder selects
// [TarDecoder].
func NewCatalog(blob []byte, decoder Decoder) *Catalog {
	if decoder == nil {
		decoder = TarDecoder{}
	}
	return &Catalog{blob: blob, decoder: decoder}
}

// Returns the font names available in the catalog, in archive order.
func (self *Catalog) Names() ([]string, error) {
	if self.names == nil {
		names, err := self.decoder.Entries(self.blob)
		if err != nil {
			return nil, err
		}
		self.names = names
	}
	return append([]string(nil), self.names...), nil
}

// Returns the name of the catalog's default font (its first entry),
// or [ErrFontNotFound] for an empty catalog.
func (self *Catalog) First() (string, error) {
	names, err := self.Names()
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", fmt.Errorf("%w: empty catalog has no default font", ErrFontNotFound)
	}
	return names[0], nil
}

// Returns a reader over the named font's description lines, or an
// error wrapping [ErrFontNotFound] if the catalog has no entry with
// that name.
func (self *Catalog) Open(name string) (io.Reader, error) {
	names, err := self.Names()
	if err != nil {
		return nil, err
	}
	for _, known := range names {
		if known == name {
			return self.decoder.Open(self.blob, name)
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrFontNotFound, name)
}

// TarDecoder reads font blobs packed as tar archives, either
// bzip2-compressed (as the embedded collection is) or plain (as
// produced by packing tools without a bzip2 writer at hand).
type TarDecoder struct{}

func (TarDecoder) archive(blob []byte) *tar.Reader {
	var reader io.Reader = bytes.NewReader(blob)
	if bytes.HasPrefix(blob, []byte("BZh")) {
		reader = bzip2.NewReader(reader)
	}
	return tar.NewReader(reader)
}

// Entries implements [Decoder], listing the archive member names.
func (self TarDecoder) Entries(blob []byte) ([]string, error) {
	var names []string
	archive := self.archive(blob)
	for {
		header, err := archive.Next()
		if err == io.EOF {
			return names, nil
		}
		if err != nil {
			return nil, err
		}
		names = append(names, header.Name)
	}
}

// Open implements [Decoder], returning a reader positioned at the
// named archive member.
func (self TarDecoder) Open(blob []byte, name string) (io.Reader, error) {
	archive := self.archive(blob)
	for {
		header, err := archive.Next()
		if err == io.EOF {
			return nil, fmt.Errorf("%w: %q", ErrFontNotFound, name)
		}
		if err != nil {
			return nil, err
		}
		if header.Name == name {
			return archive, nil
		}
	}
}
