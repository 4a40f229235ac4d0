package fontdata

import _ "embed"

// The stock Hershey font collection: 32 occidental, oriental and
// symbol fonts. The default font, futural, comes first.
//
//go:embed fonts.tar.bz2
var embeddedFonts []byte

// Returns a fresh [Catalog] over the embedded font collection. Each
// call creates an independent instance; the underlying bytes are
// shared and read-only.
func Default() *Catalog {
	return NewCatalog(embeddedFonts, nil)
}
